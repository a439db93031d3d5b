package typemap

import "strings"

// Postgres maps a PostgreSQL udt name (e.g. "int4", "varchar", "_text") to a
// TypeScript type. Array udt names start with an underscore.
// User-defined enum types should go through EnumUnion with their labels.
func Postgres(udtName string, opts Options) string {
	if elem, ok := strings.CutPrefix(udtName, "_"); ok {
		return ArrayOf(Postgres(elem, opts))
	}

	switch strings.ToLower(udtName) {
	case "bpchar", "char", "varchar", "text", "citext", "uuid", "name",
		"time", "timetz", "interval", "inet", "cidr", "macaddr", "macaddr8",
		"tsvector", "xml", "bit", "varbit":
		return TypeString
	case "int2", "int4", "int8", "float4", "float8", "numeric", "money", "oid":
		return TypeNumber
	case "bool":
		return TypeBoolean
	case "json", "jsonb":
		return TypeJSON
	case "date", "timestamp", "timestamptz":
		return TypeDate
	case "bytea":
		return opts.binary()
	default:
		return TypeAny
	}
}
