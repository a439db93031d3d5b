package schema

// Schema represents a complete database schema
type Schema struct {
	Tables []Table
}

// Table represents a database table
type Table struct {
	Name    string
	Comment string
	Columns []Column
}

// Column represents a table column.
// Columns keep the order in which the database declares them.
type Column struct {
	Name string
	// Type is the storage type as reported by the database (e.g. "varchar(255)", "int4").
	Type string
	// HostType is the TypeScript type the storage type resolves to (e.g. "string", "number").
	HostType     string
	Nullable     bool
	DefaultValue *string
	Comment      *string
	EnumValues   []string
	// HasDefault is set when the engine supplies a value on insert even without a
	// literal default, e.g. auto_increment or generated columns.
	HasDefault bool
}

// Defaulted reports whether the database supplies a value when none is given.
func (c Column) Defaulted() bool {
	return c.HasDefault || c.DefaultValue != nil
}

// TableNames returns the table names in schema order
func (s *Schema) TableNames() []string {
	names := make([]string, 0, len(s.Tables))
	for _, t := range s.Tables {
		names = append(names, t.Name)
	}
	return names
}
