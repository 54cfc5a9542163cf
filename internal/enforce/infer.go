package enforce

import (
	"goeda/domain/report"
	"goeda/domain/schema"
	"goeda/domain/table"
	"goeda/internal/coerce"
)

// inferColumn handles the no-schema fallback: pick a type from the values,
// cast to it, and record the inferred type as the enforcement outcome.
func (e *Enforcer) inferColumn(col table.Column) (table.Column, report.EnforcementOutcome) {
	inferred := e.inferFieldType(col)
	cast, outcome := e.castColumn(col, schema.FieldSpec{Type: inferred})

	outcome.Declared = ""
	outcome.Status = report.StatusInferred
	outcome.Reason = "inferred"
	return cast, outcome
}

// inferFieldType applies the heuristic ladder: numeric when enough values
// parse as numbers, datetime when a majority parse as dates, categorical
// when cardinality is low, text otherwise. Numeric wins over categorical
// for low-cardinality numeric columns (a 0/1 flag stays numeric), and
// categorical wins over text below the cardinality threshold.
func (e *Enforcer) inferFieldType(col table.Column) schema.FieldType {
	if coerce.NumericRatio(col) >= e.cfg.NumericParseThreshold {
		return schema.FieldNumeric
	}
	if coerce.DatetimeRatio(col) >= e.cfg.DatetimeParseThreshold {
		return schema.FieldDatetime
	}
	if coerce.CardinalityRatio(col) < e.cfg.CardinalityThreshold {
		return schema.FieldCategorical
	}
	return schema.FieldText
}
