package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/tordrt/schemats/internal/schema"
	"github.com/tordrt/schemats/internal/typemap"
)

// Extractor handles schema extraction from PostgreSQL
type Extractor struct {
	client *PostgresClient
	schema string
	opts   typemap.Options
}

// NewExtractor creates a new schema extractor
func NewExtractor(client *PostgresClient, schemaName string, opts typemap.Options) *Extractor {
	return &Extractor{
		client: client,
		schema: schemaName,
		opts:   opts,
	}
}

// ExtractSchema extracts the complete schema for specified tables
// If tables is empty, extracts all tables in the schema
func (e *Extractor) ExtractSchema(ctx context.Context, tables []string) (*schema.Schema, error) {
	var extractedTables []schema.Table

	tableNames, err := e.getTableNames(ctx, tables)
	if err != nil {
		return nil, fmt.Errorf("failed to get table names: %w", err)
	}

	for _, tableName := range tableNames {
		table, err := e.extractTable(ctx, tableName)
		if err != nil {
			return nil, fmt.Errorf("failed to extract table %s: %w", tableName, err)
		}
		extractedTables = append(extractedTables, *table)
	}

	return &schema.Schema{Tables: extractedTables}, nil
}

// getTableNames returns the list of tables to extract
func (e *Extractor) getTableNames(ctx context.Context, requestedTables []string) ([]string, error) {
	if len(requestedTables) > 0 {
		return requestedTables, nil
	}

	query := `
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = $1 AND table_type IN ('BASE TABLE', 'VIEW')
		ORDER BY table_name
	`

	rows, err := e.client.GetConnection().Query(ctx, query, e.schema)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var tableName string
		if err := rows.Scan(&tableName); err != nil {
			return nil, err
		}
		tables = append(tables, tableName)
	}

	return tables, rows.Err()
}

func (e *Extractor) extractTable(ctx context.Context, tableName string) (*schema.Table, error) {
	table := &schema.Table{Name: tableName}

	comment, err := e.extractTableComment(ctx, tableName)
	if err != nil {
		return nil, fmt.Errorf("failed to extract table comment: %w", err)
	}
	table.Comment = comment

	columns, err := e.extractColumns(ctx, tableName)
	if err != nil {
		return nil, fmt.Errorf("failed to extract columns: %w", err)
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("table %s.%s not found or has no columns", e.schema, tableName)
	}
	table.Columns = columns

	return table, nil
}

func (e *Extractor) extractTableComment(ctx context.Context, tableName string) (string, error) {
	query := `
		SELECT obj_description(c.oid, 'pg_class')
		FROM pg_class c
		JOIN pg_namespace n ON n.oid = c.relnamespace
		WHERE n.nspname = $1 AND c.relname = $2
	`

	var comment *string
	rows, err := e.client.GetConnection().Query(ctx, query, e.schema, tableName)
	if err != nil {
		return "", err
	}
	defer rows.Close()

	if rows.Next() {
		if err := rows.Scan(&comment); err != nil {
			return "", err
		}
	}
	if err := rows.Err(); err != nil {
		return "", err
	}

	if comment == nil {
		return "", nil
	}
	return *comment, nil
}

// extractColumns extracts column information for a table in declaration order
func (e *Extractor) extractColumns(ctx context.Context, tableName string) ([]schema.Column, error) {
	query := `
		SELECT
			c.column_name,
			c.data_type,
			c.udt_name,
			c.is_nullable,
			c.column_default,
			c.is_identity,
			c.is_generated,
			col_description(
				format('%I.%I', c.table_schema, c.table_name)::regclass::oid,
				c.ordinal_position
			) AS column_comment
		FROM information_schema.columns c
		WHERE c.table_schema = $1 AND c.table_name = $2
		ORDER BY c.ordinal_position
	`

	rows, err := e.client.GetConnection().Query(ctx, query, e.schema, tableName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var columns []schema.Column
	var userTypes []string

	// First pass: collect all columns and the user-defined type names they use
	for rows.Next() {
		var col schema.Column
		var dataType, udtName, nullable, isIdentity, isGenerated string

		if err := rows.Scan(&col.Name, &dataType, &udtName, &nullable, &col.DefaultValue,
			&isIdentity, &isGenerated, &col.Comment); err != nil {
			return nil, err
		}

		col.Type = udtName
		col.Nullable = nullable == "YES"
		col.HasDefault = isIdentity == "YES" || isGenerated == "ALWAYS"

		switch dataType {
		case "USER-DEFINED":
			userTypes = append(userTypes, udtName)
		case "ARRAY":
			userTypes = append(userTypes, strings.TrimPrefix(udtName, "_"))
		}

		columns = append(columns, col)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Second pass: fetch labels for the enum types among them
	enumValuesMap, err := e.extractEnumValuesMap(ctx, userTypes)
	if err != nil {
		return nil, err
	}

	for i := range columns {
		columns[i].HostType = e.hostType(&columns[i], enumValuesMap)
	}

	return columns, nil
}

func (e *Extractor) hostType(col *schema.Column, enums map[string][]string) string {
	if values, ok := enums[col.Type]; ok {
		col.EnumValues = values
		return typemap.EnumUnion(values)
	}
	if elem, ok := strings.CutPrefix(col.Type, "_"); ok {
		if values, ok := enums[elem]; ok {
			col.EnumValues = values
			return typemap.ArrayOf(typemap.EnumUnion(values))
		}
	}
	return typemap.Postgres(col.Type, e.opts)
}

// extractEnumValuesMap extracts enum values for multiple enum types at once
func (e *Extractor) extractEnumValuesMap(ctx context.Context, enumTypeNames []string) (map[string][]string, error) {
	if len(enumTypeNames) == 0 {
		return make(map[string][]string), nil
	}

	query := `
		SELECT t.typname, e.enumlabel
		FROM pg_type t
		JOIN pg_enum e ON t.oid = e.enumtypid
		JOIN pg_namespace n ON t.typnamespace = n.oid
		WHERE n.nspname = $1 AND t.typname = ANY($2)
		ORDER BY t.typname, e.enumsortorder
	`

	rows, err := e.client.GetConnection().Query(ctx, query, e.schema, enumTypeNames)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make(map[string][]string)
	for rows.Next() {
		var typName, enumLabel string
		if err := rows.Scan(&typName, &enumLabel); err != nil {
			return nil, err
		}
		result[typName] = append(result[typName], enumLabel)
	}

	return result, rows.Err()
}
