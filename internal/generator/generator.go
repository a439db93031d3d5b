// Package generator renders table metadata as TypeScript declarations.
//
// Every table yields two declarations: the full row shape (e.g. SQLOrders)
// and an insert shape (SQLOrdersWithDefaults) where columns the database can
// fill in on its own are optional.
package generator

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/tordrt/schemats/internal/naming"
	"github.com/tordrt/schemats/internal/schema"
)

// JSONType is the host type json columns resolve to.
const JSONType = "JSONValue"

// JSONHeader declares JSONValue and its helpers. SchemaToTS emits it once,
// ahead of the tables, when any column uses JSONValue.
const JSONHeader = `export type JSONPrimitive = string | number | boolean | null
export type JSONValue = JSONPrimitive | JSONObject | JSONArray
export type JSONObject = { [member: string]: JSONValue }
export type JSONArray = Array<JSONValue>
`

// maxConcurrentTables bounds how many tables SchemaToTS renders at once.
const maxConcurrentTables = 8

// DeclarationName returns the name of the full-shape declaration for a table.
func DeclarationName(tableName, prefix string) string {
	return prefix + naming.Camelize(naming.Normalize(tableName))
}

// TableToTS renders both declarations for a table. The output depends only on
// its arguments, so repeated calls return identical text.
func TableToTS(table schema.Table, cfg Config) string {
	name := DeclarationName(table.Name, cfg.Prefix)

	var sb strings.Builder

	sb.WriteString("/**\n")
	fmt.Fprintf(&sb, " * Exposes all fields present in %s as a typescript\n", table.Name)
	sb.WriteString(" * type.\n")
	if table.Comment != "" {
		fmt.Fprintf(&sb, " * %s\n", escapeDoc(table.Comment))
	}
	sb.WriteString(" * This is especially useful for SELECT * FROM\n")
	sb.WriteString(" */\n")
	writeDeclaration(&sb, name, Members(table.Columns, Full, cfg), cfg.OutputAsTypes)

	sb.WriteString("\n")

	sb.WriteString("/**\n")
	fmt.Fprintf(&sb, " * Exposes the same fields as %s,\n", name)
	sb.WriteString(" * but makes every field containing a DEFAULT value optional.\n")
	sb.WriteString(" *\n")
	sb.WriteString(" * This is especially useful when generating inserts, as you\n")
	sb.WriteString(" * should be able to omit these fields if you'd like\n")
	sb.WriteString(" */\n")
	writeDeclaration(&sb, name+"WithDefaults", Members(table.Columns, WithDefaults, cfg), cfg.OutputAsTypes)

	return sb.String()
}

// SchemaToTS renders every table of the schema and concatenates the results
// in schema order, separated by a blank line.
func SchemaToTS(ctx context.Context, s *schema.Schema, cfg Config) (string, error) {
	rendered := make([]string, len(s.Tables))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentTables)
	for i := range s.Tables {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rendered[i] = TableToTS(s.Tables[i], cfg)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return "", fmt.Errorf("failed to generate types: %w", err)
	}

	var sb strings.Builder
	if UsesJSON(s) {
		sb.WriteString(JSONHeader)
		sb.WriteString("\n")
	}
	sb.WriteString(strings.Join(rendered, "\n"))
	return sb.String(), nil
}

// UsesJSON reports whether any column of the schema resolves to JSONValue.
func UsesJSON(s *schema.Schema) bool {
	for _, table := range s.Tables {
		if TableUsesJSON(table) {
			return true
		}
	}
	return false
}

// TableUsesJSON reports whether any column of the table resolves to JSONValue.
func TableUsesJSON(table schema.Table) bool {
	for _, col := range table.Columns {
		if strings.Contains(col.HostType, JSONType) {
			return true
		}
	}
	return false
}

func writeDeclaration(sb *strings.Builder, name string, members []Member, asType bool) {
	if asType {
		fmt.Fprintf(sb, "export type %s = {\n", name)
	} else {
		fmt.Fprintf(sb, "export interface %s {\n", name)
	}
	for _, m := range members {
		writeMember(sb, m)
	}
	sb.WriteString("}\n")
}

func writeMember(sb *strings.Builder, m Member) {
	if m.Doc != "" {
		fmt.Fprintf(sb, "  /** %s */\n", escapeDoc(m.Doc))
	}

	optional := ""
	if m.Optional {
		optional = "?"
	}
	nullable := ""
	if m.Nullable {
		nullable = " | null"
	}
	fmt.Fprintf(sb, "  %s%s: %s%s\n", m.Name, optional, m.Type, nullable)
}

// escapeDoc keeps a comment from closing the surrounding doc block early.
func escapeDoc(s string) string {
	s = strings.ReplaceAll(s, "*/", "* /")
	return strings.Join(strings.Fields(s), " ")
}
