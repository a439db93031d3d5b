package formatter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tordrt/schemats/internal/generator"
	"github.com/tordrt/schemats/internal/schema"
)

const (
	jsonModule  = "json"
	indexModule = "index"
	fileExt     = ".ts"
)

// MultiFileFormatter writes one TypeScript module per table into a directory,
// plus an index module re-exporting all of them.
type MultiFileFormatter struct {
	OutputDir string
	Config    generator.Config
}

// NewMultiFileFormatter creates a new multi-file formatter
func NewMultiFileFormatter(outputDir string, cfg generator.Config) *MultiFileFormatter {
	return &MultiFileFormatter{
		OutputDir: outputDir,
		Config:    cfg,
	}
}

// Format writes the schema to multiple files
func (f *MultiFileFormatter) Format(ctx context.Context, s *schema.Schema) error {
	usesJSON := generator.UsesJSON(s)
	tableModules, err := f.moduleNames(s, usesJSON)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(f.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	modules := make([]string, 0, len(s.Tables)+1)

	if usesJSON {
		if err := f.writeFile(jsonModule, generator.JSONHeader); err != nil {
			return fmt.Errorf("failed to write JSON helpers: %w", err)
		}
		modules = append(modules, jsonModule)
	}

	for i, table := range s.Tables {
		if err := ctx.Err(); err != nil {
			return err
		}
		module := tableModules[i]
		if err := f.writeFile(module, f.tableModule(table)); err != nil {
			return fmt.Errorf("failed to write table file for %s: %w", table.Name, err)
		}
		modules = append(modules, module)
	}

	if err := f.writeFile(indexModule, indexContent(modules)); err != nil {
		return fmt.Errorf("failed to write index: %w", err)
	}

	return nil
}

// moduleNames returns the module name of every table. Names are compared case
// folded so no two files collide on a case-insensitive filesystem, and the
// index and json modules are reserved.
func (f *MultiFileFormatter) moduleNames(s *schema.Schema, usesJSON bool) ([]string, error) {
	reserved := map[string]string{strings.ToLower(indexModule): indexModule}
	if usesJSON {
		reserved[strings.ToLower(jsonModule)] = jsonModule
	}

	owners := make(map[string]string, len(s.Tables))
	names := make([]string, len(s.Tables))
	for i, table := range s.Tables {
		module := generator.DeclarationName(table.Name, f.Config.Prefix)
		key := strings.ToLower(module)
		if r, ok := reserved[key]; ok {
			return nil, fmt.Errorf("table %s maps to %s%s, which clashes with the %s module", table.Name, module, fileExt, r)
		}
		if owner, ok := owners[key]; ok {
			return nil, fmt.Errorf("tables %s and %s both map to %s%s", owner, table.Name, module, fileExt)
		}
		owners[key] = table.Name
		names[i] = module
	}
	return names, nil
}

func (f *MultiFileFormatter) tableModule(table schema.Table) string {
	code := generator.TableToTS(table, f.Config)
	if generator.TableUsesJSON(table) {
		code = fmt.Sprintf("import type { %s } from './%s'\n\n", generator.JSONType, jsonModule) + code
	}
	return code
}

func indexContent(modules []string) string {
	var sb strings.Builder
	for _, m := range modules {
		fmt.Fprintf(&sb, "export * from './%s'\n", m)
	}
	return sb.String()
}

func (f *MultiFileFormatter) writeFile(module, content string) error {
	filename := filepath.Join(f.OutputDir, module+fileExt)
	return os.WriteFile(filename, []byte(content), 0644)
}
