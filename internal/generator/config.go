package generator

// Config controls how columns are rendered into TypeScript declarations.
// It is built once before generation and passed by value, so a run never
// observes it changing.
type Config struct {
	// Prefix is prepended to every declaration name, e.g. "SQL" -> SQLOrders.
	Prefix string

	// NullAsUndefined makes nullable columns optional in the full shape and
	// drops their "| null" there.
	NullAsUndefined bool

	// NullPlusUndefined makes nullable columns optional in the full shape
	// while keeping their "| null".
	NullPlusUndefined bool

	// OutputAsTypes emits "export type X = {...}" instead of "export interface X {...}".
	OutputAsTypes bool
}

// relaxesNullable reports whether nullable columns may be omitted in the full shape.
func (c Config) relaxesNullable() bool {
	return c.NullAsUndefined || c.NullPlusUndefined
}
