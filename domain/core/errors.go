package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Not found errors
	ErrNotFound         = errors.New("resource not found")
	ErrDocumentNotFound = fmt.Errorf("%w: report document", ErrNotFound)
	ErrUnknownColumn    = fmt.Errorf("%w: column", ErrNotFound)

	// Schema and casting errors
	ErrSchemaInvalid  = errors.New("invalid schema definition")
	ErrSchemaMismatch = errors.New("schema column mismatch")
	ErrCastFailure    = errors.New("column cast failure")

	// Dataset shape errors
	ErrEmptyDataset     = errors.New("dataset has no columns")
	ErrRaggedDataset    = errors.New("dataset columns have unequal lengths")
	ErrInsufficientData = errors.New("insufficient data for analysis")
)

// NewUnknownColumnError reports a request for a column the dataset does not contain
func NewUnknownColumnError(name string) error {
	return fmt.Errorf("%w: %q", ErrUnknownColumn, name)
}

// NewSchemaInvalidError reports a schema definition defect
func NewSchemaInvalidError(field string, reason string) error {
	return fmt.Errorf("%w: field %q: %s", ErrSchemaInvalid, field, reason)
}

// Error checking helpers
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsSchemaError(err error) bool {
	return errors.Is(err, ErrSchemaInvalid) || errors.Is(err, ErrSchemaMismatch)
}
