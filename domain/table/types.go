package table

import (
	"fmt"
	"time"

	"goeda/domain/core"
)

// Value represents a typed cell value with deterministic coercion
type Value struct {
	Type         ValueType  `json:"type"`
	StringVal    *string    `json:"string_val,omitempty"`
	NumericVal   *float64   `json:"numeric_val,omitempty"`
	BooleanVal   *bool      `json:"boolean_val,omitempty"`
	TimestampVal *time.Time `json:"timestamp_val,omitempty"`
	IsMissing    bool       `json:"is_missing"`
}

// ValueType defines the storage type for values
type ValueType string

const (
	ValueTypeString    ValueType = "string"
	ValueTypeNumeric   ValueType = "numeric"
	ValueTypeBoolean   ValueType = "boolean"
	ValueTypeTimestamp ValueType = "timestamp"
	ValueTypeMissing   ValueType = "missing"
)

// NewStringValue creates a string value
func NewStringValue(s string) Value {
	if s == "" {
		return Value{Type: ValueTypeMissing, IsMissing: true}
	}
	return Value{Type: ValueTypeString, StringVal: &s}
}

// NewNumericValue creates a numeric value
func NewNumericValue(n float64) Value {
	return Value{Type: ValueTypeNumeric, NumericVal: &n}
}

// NewBooleanValue creates a boolean value
func NewBooleanValue(b bool) Value {
	return Value{Type: ValueTypeBoolean, BooleanVal: &b}
}

// NewTimestampValue creates a timestamp value
func NewTimestampValue(t time.Time) Value {
	return Value{Type: ValueTypeTimestamp, TimestampVal: &t}
}

// NewMissingValue creates a missing value
func NewMissingValue() Value {
	return Value{Type: ValueTypeMissing, IsMissing: true}
}

// String returns the string representation of the value
func (v Value) String() string {
	switch v.Type {
	case ValueTypeString:
		if v.StringVal != nil {
			return *v.StringVal
		}
	case ValueTypeNumeric:
		if v.NumericVal != nil {
			return fmt.Sprintf("%.6g", *v.NumericVal)
		}
	case ValueTypeBoolean:
		if v.BooleanVal != nil {
			return fmt.Sprintf("%t", *v.BooleanVal)
		}
	case ValueTypeTimestamp:
		if v.TimestampVal != nil {
			return v.TimestampVal.Format(time.RFC3339)
		}
	case ValueTypeMissing:
		return "<missing>"
	}
	return "<invalid>"
}

// IsNumeric returns true if the value represents a valid number
func (v Value) IsNumeric() bool {
	return v.Type == ValueTypeNumeric && v.NumericVal != nil
}

// IsString returns true if the value represents a valid string
func (v Value) IsString() bool {
	return v.Type == ValueTypeString && v.StringVal != nil
}

// IsBoolean returns true if the value represents a valid boolean
func (v Value) IsBoolean() bool {
	return v.Type == ValueTypeBoolean && v.BooleanVal != nil
}

// IsTimestamp returns true if the value represents a valid timestamp
func (v Value) IsTimestamp() bool {
	return v.Type == ValueTypeTimestamp && v.TimestampVal != nil
}

// AsFloat64 returns the numeric value as float64, or 0 if not numeric
func (v Value) AsFloat64() float64 {
	if v.NumericVal != nil {
		return *v.NumericVal
	}
	return 0.0
}

// AsString returns the string value, or empty string if not a string
func (v Value) AsString() string {
	if v.StringVal != nil {
		return *v.StringVal
	}
	return ""
}

// AsBoolean returns the boolean value, or false if not a boolean
func (v Value) AsBoolean() bool {
	if v.BooleanVal != nil {
		return *v.BooleanVal
	}
	return false
}

// AsTime returns the timestamp value, or the zero time if not a timestamp
func (v Value) AsTime() time.Time {
	if v.TimestampVal != nil {
		return *v.TimestampVal
	}
	return time.Time{}
}

// Column is a named, ordered sequence of values
type Column struct {
	Name   string  `json:"name"`
	Values []Value `json:"values"`
}

// Len returns the number of values (including missing ones)
func (c Column) Len() int { return len(c.Values) }

// MissingCount returns the number of missing values
func (c Column) MissingCount() int {
	missing := 0
	for _, v := range c.Values {
		if v.IsMissing {
			missing++
		}
	}
	return missing
}

// AllMissing reports whether the column has no usable values at all
func (c Column) AllMissing() bool {
	return c.MissingCount() == len(c.Values)
}

// NonMissing returns the values that carry data, preserving order
func (c Column) NonMissing() []Value {
	out := make([]Value, 0, len(c.Values))
	for _, v := range c.Values {
		if !v.IsMissing {
			out = append(out, v)
		}
	}
	return out
}

// Dataset is an in-memory table: named columns in a stable order.
// Construction is the loader's job; the engine never reads files.
type Dataset struct {
	Name    string   `json:"name"`
	Columns []Column `json:"columns"`
}

// NewDataset creates a dataset from ordered columns
func NewDataset(name string, columns []Column) (*Dataset, error) {
	if len(columns) == 0 {
		return nil, core.ErrEmptyDataset
	}
	rows := columns[0].Len()
	for _, col := range columns[1:] {
		if col.Len() != rows {
			return nil, fmt.Errorf("%w: column %q has %d rows, expected %d",
				core.ErrRaggedDataset, col.Name, col.Len(), rows)
		}
	}
	return &Dataset{Name: name, Columns: columns}, nil
}

// Rows returns the row count
func (d *Dataset) Rows() int {
	if len(d.Columns) == 0 {
		return 0
	}
	return d.Columns[0].Len()
}

// ColumnNames returns the column names in dataset order
func (d *Dataset) ColumnNames() []string {
	names := make([]string, len(d.Columns))
	for i, col := range d.Columns {
		names[i] = col.Name
	}
	return names
}

// Column returns the named column, or an ErrUnknownColumn error
func (d *Dataset) Column(name string) (Column, error) {
	for _, col := range d.Columns {
		if col.Name == name {
			return col, nil
		}
	}
	return Column{}, core.NewUnknownColumnError(name)
}

// HasColumn reports whether the dataset contains the named column
func (d *Dataset) HasColumn(name string) bool {
	_, err := d.Column(name)
	return err == nil
}

// Fingerprint identifies this dataset's shape for report provenance
func (d *Dataset) Fingerprint() core.DatasetFingerprint {
	return core.ComputeDatasetFingerprint(d.ColumnNames(), d.Rows())
}
