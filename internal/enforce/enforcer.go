package enforce

import (
	"fmt"
	"sort"

	"goeda/domain/core"
	"goeda/domain/report"
	"goeda/domain/schema"
	"goeda/domain/table"
	"goeda/internal"
	"goeda/internal/coerce"
	"goeda/internal/config"
)

// Enforcer applies a declared schema to a dataset, casting columns to
// their declared types and recording one outcome per column. It never
// mutates the input dataset; the cast dataset is a new value.
type Enforcer struct {
	cfg config.AnalysisConfig
	log *internal.Logger
}

// NewEnforcer creates an enforcer with explicit configuration
func NewEnforcer(cfg config.AnalysisConfig, logger *internal.Logger) *Enforcer {
	if logger == nil {
		logger = internal.NewDefaultLogger()
	}
	return &Enforcer{cfg: cfg, log: logger}
}

// Enforce casts every schema-declared column to its declared type and
// passes the rest through. With an empty schema it falls back to type
// inference. Cast problems become enforcement outcomes, never errors;
// only a dataset with zero columns fails the call.
func (e *Enforcer) Enforce(ds *table.Dataset, sch *schema.Schema) (*table.Dataset, *report.EnforcementReport, error) {
	if ds == nil || len(ds.Columns) == 0 {
		return nil, nil, core.ErrEmptyDataset
	}

	source := "inferred"
	if !sch.IsEmpty() {
		source = sch.Source
	}

	castColumns := make([]table.Column, 0, len(ds.Columns))
	outcomes := make([]report.EnforcementOutcome, 0, len(ds.Columns))

	for _, col := range ds.Columns {
		spec, declared := sch.Lookup(col.Name)

		var cast table.Column
		var outcome report.EnforcementOutcome

		switch {
		case declared:
			cast, outcome = e.castColumn(col, spec)
		case sch.IsEmpty():
			cast, outcome = e.inferColumn(col)
		default:
			// Schema supplied but silent on this column: pass through
			// untouched; the classifier infers its variant downstream.
			cast = copyColumn(col)
			outcome = report.EnforcementOutcome{
				Column: col.Name,
				Status: report.StatusLeftAsIs,
				Reason: "no schema entry",
			}
		}

		e.log.Debug("enforce: column %q -> %s (%s)", col.Name, outcome.Status, outcome.Reason)
		castColumns = append(castColumns, cast)
		outcomes = append(outcomes, outcome)
	}

	// Schema entries with no dataset column are reported, never raised.
	if !sch.IsEmpty() {
		var unmatched []string
		for name := range sch.Fields {
			if !ds.HasColumn(name) {
				unmatched = append(unmatched, name)
			}
		}
		sort.Strings(unmatched)
		for _, name := range unmatched {
			e.log.Warn("enforce: schema entry %q has no dataset column", name)
			outcomes = append(outcomes, report.EnforcementOutcome{
				Column:   name,
				Declared: sch.Fields[name].Type,
				Status:   report.StatusUnmatched,
				Reason:   "unmatched schema entry",
			})
		}
	}

	castDS := &table.Dataset{Name: ds.Name, Columns: castColumns}
	enfReport := &report.EnforcementReport{SchemaSource: source, Outcomes: outcomes}
	return castDS, enfReport, nil
}

// castColumn applies the declared type to one column. A cast that fails
// for every value is cast_failed and leaves an all-missing column; a cast
// that succeeds for at least one value is cast_ok, with the failures
// turned missing and counted.
func (e *Enforcer) castColumn(col table.Column, spec schema.FieldSpec) (table.Column, report.EnforcementOutcome) {
	outcome := report.EnforcementOutcome{
		Column:   col.Name,
		Declared: spec.Type,
		Resolved: spec.Type,
	}

	values := make([]table.Value, len(col.Values))
	survived := 0

	for i, v := range col.Values {
		if v.IsMissing {
			values[i] = table.NewMissingValue()
			continue
		}
		cast, ok := castValue(v, spec)
		if !ok {
			values[i] = table.NewMissingValue()
			continue
		}
		values[i] = cast
		survived++

		switch spec.Type {
		case schema.FieldCategorical:
			if !spec.Constraints.AllowsCategory(cast.AsString()) {
				outcome.OutOfSet++
			}
		case schema.FieldNumeric:
			if !spec.Constraints.InBounds(cast.AsFloat64()) {
				outcome.OutOfBounds++
			}
		}
	}

	castCol := table.Column{Name: col.Name, Values: values}
	outcome.Missing = castCol.MissingCount()

	if survived == 0 {
		outcome.Status = report.StatusCastFailed
		outcome.Reason = fmt.Sprintf("no values castable to %s", spec.Type)
		return castCol, outcome
	}

	outcome.Status = report.StatusCastOK
	if outcome.Missing > 0 {
		outcome.Reason = fmt.Sprintf("%d values missing after cast", outcome.Missing)
	}
	return castCol, outcome
}

// castValue coerces a single value to the declared type. Values already
// carrying the target type pass through, which makes enforcement
// idempotent.
func castValue(v table.Value, spec schema.FieldSpec) (table.Value, bool) {
	switch spec.Type {
	case schema.FieldNumeric:
		if v.IsNumeric() {
			return v, true
		}
		if n, ok := coerce.TryNumeric(v.String()); ok {
			return table.NewNumericValue(n), true
		}
		return table.Value{}, false

	case schema.FieldDatetime:
		if v.IsTimestamp() {
			return v, true
		}
		if t, ok := coerce.TryDatetime(v.String(), spec.Constraints.DateFormat); ok {
			return table.NewTimestampValue(t), true
		}
		return table.Value{}, false

	case schema.FieldBoolean:
		if v.IsBoolean() {
			return v, true
		}
		if b, ok := coerce.TryBoolean(v.String()); ok {
			return table.NewBooleanValue(b), true
		}
		return table.Value{}, false

	case schema.FieldCategorical, schema.FieldText:
		// Direct string coercion never fails for a non-missing value.
		if v.IsString() {
			return v, true
		}
		return table.NewStringValue(v.String()), true
	}

	return table.Value{}, false
}

func copyColumn(col table.Column) table.Column {
	values := make([]table.Value, len(col.Values))
	copy(values, col.Values)
	return table.Column{Name: col.Name, Values: values}
}
