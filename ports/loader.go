package ports

import (
	"context"
	"io"

	"goeda/domain/schema"
	"goeda/domain/table"
)

// DatasetLoader reads a raw tabular dataset from a source file. Every cell
// comes back as an untyped string value; type resolution happens in the
// enforcement pass.
type DatasetLoader interface {
	Load(ctx context.Context, path string) (*table.Dataset, error)
	LoadFrom(ctx context.Context, r io.Reader, name string) (*table.Dataset, error)
}

// SchemaLoader reads a casting schema declaration
type SchemaLoader interface {
	Load(ctx context.Context, path string) (*schema.Schema, error)
	LoadFrom(ctx context.Context, r io.Reader, source string) (*schema.Schema, error)
}
