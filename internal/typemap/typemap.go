// Package typemap resolves database storage types to TypeScript types.
package typemap

import (
	"strings"
)

// TypeScript types produced by the mappers.
const (
	TypeString  = "string"
	TypeNumber  = "number"
	TypeBoolean = "boolean"
	TypeDate    = "Date"
	TypeBuffer  = "Buffer"
	TypeJSON    = "JSONValue"
	TypeAny     = "any"
)

// Options tweak how ambiguous storage types are mapped.
type Options struct {
	// TinyIntAsBoolean maps MySQL tinyint columns to boolean instead of number.
	TinyIntAsBoolean bool
	// BinaryAsBuffer maps binary and blob columns to Buffer instead of string.
	BinaryAsBuffer bool
}

func (o Options) binary() string {
	if o.BinaryAsBuffer {
		return TypeBuffer
	}
	return TypeString
}

// EnumUnion renders enum values as a union of string literals, e.g. 'a' | 'b'.
// An enum without values maps to string.
func EnumUnion(values []string) string {
	if len(values) == 0 {
		return TypeString
	}
	quoted := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.ReplaceAll(v, `\`, `\\`)
		v = strings.ReplaceAll(v, "'", `\'`)
		quoted = append(quoted, "'"+v+"'")
	}
	return strings.Join(quoted, " | ")
}

// ArrayOf wraps a type as an array, parenthesising unions.
func ArrayOf(elem string) string {
	if strings.Contains(elem, "|") {
		return "(" + elem + ")[]"
	}
	return elem + "[]"
}

// baseType strips length/precision and modifiers: "varchar(255)" -> "varchar",
// "int unsigned" -> "int".
func baseType(t string) string {
	t = strings.ToLower(strings.TrimSpace(t))
	if i := strings.IndexAny(t, "( "); i >= 0 {
		t = t[:i]
	}
	return t
}
