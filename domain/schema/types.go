package schema

import (
	"goeda/domain/core"
)

// FieldType is the declared semantic type of a column
type FieldType string

const (
	FieldNumeric     FieldType = "numeric"
	FieldCategorical FieldType = "categorical"
	FieldDatetime    FieldType = "datetime"
	FieldText        FieldType = "text"
	FieldBoolean     FieldType = "boolean"
)

// valid field types, for definition validation
var validFieldTypes = map[FieldType]bool{
	FieldNumeric:     true,
	FieldCategorical: true,
	FieldDatetime:    true,
	FieldText:        true,
	FieldBoolean:     true,
}

// IsValid reports whether t names a known field type
func (t FieldType) IsValid() bool { return validFieldTypes[t] }

// Constraints narrows the values a declared column may carry.
// All fields are optional; zero values mean "no constraint".
type Constraints struct {
	AllowedCategories []string `json:"allowed_categories,omitempty"`
	DateFormat        string   `json:"date_format,omitempty"` // Go reference layout
	Min               *float64 `json:"min,omitempty"`
	Max               *float64 `json:"max,omitempty"`
	Nullable          *bool    `json:"nullable,omitempty"` // default true
}

// AllowsCategory reports whether a category value is inside the allowed set.
// An empty allowed set allows everything.
func (c Constraints) AllowsCategory(value string) bool {
	if len(c.AllowedCategories) == 0 {
		return true
	}
	for _, allowed := range c.AllowedCategories {
		if allowed == value {
			return true
		}
	}
	return false
}

// InBounds reports whether a numeric value satisfies the declared bounds
func (c Constraints) InBounds(v float64) bool {
	if c.Min != nil && v < *c.Min {
		return false
	}
	if c.Max != nil && v > *c.Max {
		return false
	}
	return true
}

// FieldSpec declares the expected type and constraints for one column
type FieldSpec struct {
	Type        FieldType   `json:"type"`
	Constraints Constraints `json:"constraints,omitempty"`
}

// Schema is a declarative mapping from column name to expected type.
// It is loaded once per run and immutable thereafter.
type Schema struct {
	Source string               `json:"source"` // file path, "default", or "inferred"
	Fields map[string]FieldSpec `json:"fields"`
}

// New creates a validated schema from a field mapping
func New(source string, fields map[string]FieldSpec) (*Schema, error) {
	for name, spec := range fields {
		if !spec.Type.IsValid() {
			return nil, core.NewSchemaInvalidError(name, "unknown field type "+string(spec.Type))
		}
	}
	return &Schema{Source: source, Fields: fields}, nil
}

// IsEmpty reports whether the schema declares no columns (inference mode)
func (s *Schema) IsEmpty() bool {
	return s == nil || len(s.Fields) == 0
}

// Lookup returns the declared spec for a column, if any
func (s *Schema) Lookup(column string) (FieldSpec, bool) {
	if s == nil {
		return FieldSpec{}, false
	}
	spec, ok := s.Fields[column]
	return spec, ok
}
