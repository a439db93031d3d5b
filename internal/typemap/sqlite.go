package typemap

import "strings"

// SQLite maps a declared SQLite column type to a TypeScript type following
// SQLite's type affinity rules, with BOOL and DATE/TIME names recognised first.
func SQLite(declared string, opts Options) string {
	t := strings.ToUpper(declared)

	switch {
	case strings.Contains(t, "BOOL"):
		return TypeBoolean
	case strings.Contains(t, "INT"):
		return TypeNumber
	case strings.Contains(t, "CHAR"), strings.Contains(t, "CLOB"), strings.Contains(t, "TEXT"):
		return TypeString
	case strings.Contains(t, "JSON"):
		return TypeJSON
	case t == "", strings.Contains(t, "BLOB"):
		return opts.binary()
	case strings.Contains(t, "REAL"), strings.Contains(t, "FLOA"), strings.Contains(t, "DOUB"):
		return TypeNumber
	case strings.Contains(t, "DATE"), strings.Contains(t, "TIME"):
		return TypeDate
	default:
		return TypeNumber
	}
}
