package generator

import (
	"strings"

	"github.com/tordrt/schemats/internal/naming"
	"github.com/tordrt/schemats/internal/schema"
)

// Shape selects which of the two declarations of a table is being built.
type Shape int

const (
	// Full mirrors every column as stored, for rows read back from the database.
	Full Shape = iota
	// WithDefaults makes every column the database can fill in optional, for inserts.
	WithDefaults
)

// Member is a single property of a generated declaration, with every
// decision already taken. Rendering it is purely textual.
type Member struct {
	Name     string
	Type     string
	Optional bool
	// Nullable adds "| null" to Type.
	Nullable bool
	Doc      string
}

// Members derives the properties of one declaration from the table columns,
// preserving column order.
func Members(columns []schema.Column, shape Shape, cfg Config) []Member {
	members := make([]Member, 0, len(columns))
	for _, col := range columns {
		members = append(members, newMember(col, shape, cfg))
	}
	return members
}

func newMember(col schema.Column, shape Shape, cfg Config) Member {
	withDefaults := shape == WithDefaults

	canOmit := col.Nullable
	if withDefaults {
		canOmit = col.Nullable || col.Defaulted()
	}

	return Member{
		Name:     naming.Normalize(col.Name),
		Type:     col.HostType,
		Optional: (withDefaults && canOmit) || (canOmit && cfg.relaxesNullable()),
		// The insert shape keeps "| null" regardless of the null switches so
		// callers can still pass an explicit null for an omittable column.
		Nullable: col.Nullable && !(!withDefaults && cfg.NullAsUndefined),
		Doc:      memberDoc(col, withDefaults),
	}
}

func memberDoc(col schema.Column, withDefaults bool) string {
	var parts []string
	if col.Comment != nil {
		if c := strings.TrimSpace(*col.Comment); c != "" {
			parts = append(parts, c)
		}
	}
	if withDefaults && col.Defaulted() {
		if col.DefaultValue != nil {
			parts = append(parts, "Defaults to: "+*col.DefaultValue)
		} else {
			parts = append(parts, "Generated by the database.")
		}
	}
	return strings.Join(parts, " ")
}
