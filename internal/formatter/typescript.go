package formatter

import (
	"context"
	"fmt"
	"io"

	"github.com/tordrt/schemats/internal/generator"
	"github.com/tordrt/schemats/internal/schema"
)

// TypeScriptFormatter writes all declarations of a schema to a single stream
type TypeScriptFormatter struct {
	writer io.Writer
	config generator.Config
}

// NewTypeScriptFormatter creates a new single-stream formatter
func NewTypeScriptFormatter(w io.Writer, cfg generator.Config) *TypeScriptFormatter {
	return &TypeScriptFormatter{writer: w, config: cfg}
}

// Format writes the schema as TypeScript declarations
func (f *TypeScriptFormatter) Format(ctx context.Context, s *schema.Schema) error {
	code, err := generator.SchemaToTS(ctx, s, f.config)
	if err != nil {
		return err
	}

	if _, err := io.WriteString(f.writer, code); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
