package typemap

// MySQL maps a MySQL column type (information_schema COLUMN_TYPE, e.g.
// "varchar(64)", "tinyint(1)", "int unsigned") to a TypeScript type.
// Enum columns should go through EnumUnion with their parsed values.
func MySQL(columnType string, opts Options) string {
	switch baseType(columnType) {
	case "char", "varchar", "text", "tinytext", "mediumtext", "longtext",
		"time", "geometry", "point", "linestring", "polygon", "set", "enum":
		return TypeString
	case "integer", "int", "smallint", "mediumint", "bigint",
		"double", "decimal", "numeric", "float", "real", "year":
		return TypeNumber
	case "tinyint":
		if opts.TinyIntAsBoolean {
			return TypeBoolean
		}
		return TypeNumber
	case "bool", "boolean":
		return TypeBoolean
	case "date", "datetime", "timestamp":
		return TypeDate
	case "json":
		return TypeJSON
	case "tinyblob", "mediumblob", "longblob", "blob", "binary", "varbinary", "bit":
		return opts.binary()
	default:
		return TypeAny
	}
}
