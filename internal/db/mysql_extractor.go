package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/tordrt/schemats/internal/schema"
	"github.com/tordrt/schemats/internal/typemap"
)

// MySQLExtractor handles schema extraction from MySQL
type MySQLExtractor struct {
	client     *MySQLClient
	schemaName string
	opts       typemap.Options
}

// NewMySQLExtractor creates a new MySQL schema extractor
func NewMySQLExtractor(client *MySQLClient, schemaName string, opts typemap.Options) *MySQLExtractor {
	return &MySQLExtractor{
		client:     client,
		schemaName: schemaName,
		opts:       opts,
	}
}

// ExtractSchema extracts the complete schema for specified tables
// If tables is empty, extracts all tables in the schema
func (e *MySQLExtractor) ExtractSchema(ctx context.Context, tables []string) (*schema.Schema, error) {
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
func (e *MySQLExtractor) getTableNames(ctx context.Context, requestedTables []string) ([]string, error) {
	if len(requestedTables) > 0 {
		return requestedTables, nil
	}

	query := `
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = ? AND table_type IN ('BASE TABLE', 'VIEW')
		ORDER BY table_name
	`

	rows, err := e.client.GetDB().QueryContext(ctx, query, e.schemaName)
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

func (e *MySQLExtractor) extractTable(ctx context.Context, tableName string) (*schema.Table, error) {
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
		return nil, fmt.Errorf("table %s.%s not found or has no columns", e.schemaName, tableName)
	}
	table.Columns = columns

	return table, nil
}

func (e *MySQLExtractor) extractTableComment(ctx context.Context, tableName string) (string, error) {
	query := `
		SELECT table_comment
		FROM information_schema.tables
		WHERE table_schema = ? AND table_name = ?
	`

	var comment sql.NullString
	err := e.client.GetDB().QueryRowContext(ctx, query, e.schemaName, tableName).Scan(&comment)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return comment.String, nil
}

// extractColumns extracts column information for a table in declaration order
func (e *MySQLExtractor) extractColumns(ctx context.Context, tableName string) ([]schema.Column, error) {
	query := `
		SELECT
			c.column_name,
			c.column_type,
			c.data_type,
			c.is_nullable,
			c.column_default,
			c.column_comment,
			c.extra
		FROM information_schema.columns c
		WHERE c.table_schema = ? AND c.table_name = ?
		ORDER BY c.ordinal_position
	`

	rows, err := e.client.GetDB().QueryContext(ctx, query, e.schemaName, tableName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var columns []schema.Column

	for rows.Next() {
		var col schema.Column
		var dataType, nullable, comment, extra string
		var defaultVal sql.NullString

		if err := rows.Scan(&col.Name, &col.Type, &dataType, &nullable, &defaultVal, &comment, &extra); err != nil {
			return nil, err
		}

		col.Nullable = nullable == "YES"
		if defaultVal.Valid {
			col.DefaultValue = &defaultVal.String
		}
		if comment != "" {
			col.Comment = &comment
		}
		col.HasDefault = hasGeneratedValue(extra)

		if dataType == "enum" {
			values, err := parseEnumValues(col.Type)
			if err != nil {
				return nil, err
			}
			col.EnumValues = values
			col.HostType = typemap.EnumUnion(values)
		} else {
			col.HostType = typemap.MySQL(col.Type, e.opts)
		}

		columns = append(columns, col)
	}

	return columns, rows.Err()
}

// hasGeneratedValue reports whether the EXTRA column marks a value the server
// fills in on insert.
func hasGeneratedValue(extra string) bool {
	extra = strings.ToLower(extra)
	return strings.Contains(extra, "auto_increment") ||
		strings.Contains(extra, "default_generated") ||
		strings.Contains(extra, "virtual generated") ||
		strings.Contains(extra, "stored generated")
}

// parseEnumValues parses enum values from the column type string
// MySQL stores enum types as "enum('value1','value2','value3')"
func parseEnumValues(columnType string) ([]string, error) {
	if !strings.HasPrefix(strings.ToLower(columnType), "enum(") {
		return nil, nil
	}

	start := strings.Index(columnType, "(")
	end := strings.LastIndex(columnType, ")")
	if start == -1 || end == -1 || start >= end {
		return nil, fmt.Errorf("invalid enum type format: %s", columnType)
	}

	body := columnType[start+1 : end]

	// Values are single quoted; a quote inside a value is doubled.
	var values []string
	var current strings.Builder
	inQuote := false
	for i := 0; i < len(body); i++ {
		ch := body[i]
		switch {
		case ch == '\'' && inQuote && i+1 < len(body) && body[i+1] == '\'':
			current.WriteByte('\'')
			i++
		case ch == '\'':
			inQuote = !inQuote
			if !inQuote {
				values = append(values, current.String())
				current.Reset()
			}
		case inQuote:
			current.WriteByte(ch)
		}
	}
	if inQuote {
		return nil, fmt.Errorf("invalid enum type format: %s", columnType)
	}

	return values, nil
}
