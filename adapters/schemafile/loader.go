package schemafile

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"goeda/domain/schema"
)

// fieldDecl is the on-disk shape of one schema entry
type fieldDecl struct {
	Type        string   `json:"type"`
	Categories  []string `json:"categories,omitempty"`
	DateFormat  string   `json:"date_format,omitempty"`
	Min         *float64 `json:"min,omitempty"`
	Max         *float64 `json:"max,omitempty"`
	Nullable    *bool    `json:"nullable,omitempty"`
	Description string   `json:"description,omitempty"`
}

// Loader reads a JSON schema file mapping column names to type
// declarations:
//
//	{"age": {"type": "numeric", "min": 0}, "status": {"type": "categorical", "categories": ["a", "b"]}}
type Loader struct{}

func NewLoader() *Loader {
	return &Loader{}
}

// Load reads a schema declaration from disk
func (l *Loader) Load(ctx context.Context, path string) (*schema.Schema, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open schema file: %w", err)
	}
	defer f.Close()
	return l.LoadFrom(ctx, f, filepath.Base(path))
}

// LoadFrom reads a schema declaration from a reader
func (l *Loader) LoadFrom(_ context.Context, r io.Reader, source string) (*schema.Schema, error) {
	var decls map[string]fieldDecl
	if err := json.NewDecoder(r).Decode(&decls); err != nil {
		return nil, fmt.Errorf("failed to parse schema %s: %w", source, err)
	}

	fields := make(map[string]schema.FieldSpec, len(decls))
	for name, decl := range decls {
		fields[name] = schema.FieldSpec{
			Type: schema.FieldType(decl.Type),
			Constraints: schema.Constraints{
				AllowedCategories: decl.Categories,
				DateFormat:        decl.DateFormat,
				Min:               decl.Min,
				Max:               decl.Max,
				Nullable:          decl.Nullable,
			},
		}
	}

	return schema.New(source, fields)
}
