package db

import (
	"context"

	"github.com/tordrt/schemats/internal/schema"
)

// SchemaExtractor reads table and column metadata from a database, with host
// types already resolved. Tables come back in the requested order, or sorted
// by name when none are requested.
type SchemaExtractor interface {
	ExtractSchema(ctx context.Context, tables []string) (*schema.Schema, error)
}

var (
	_ SchemaExtractor = (*Extractor)(nil)
	_ SchemaExtractor = (*MySQLExtractor)(nil)
	_ SchemaExtractor = (*SQLiteExtractor)(nil)
)
