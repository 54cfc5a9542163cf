package classify

import (
	"goeda/domain/report"
	"goeda/domain/schema"
	"goeda/domain/table"
	"goeda/internal/coerce"
	"goeda/internal/config"
)

// Classifier routes a cast column to one of the five analysis variants.
// Enforcement is authoritative: when a column carries a resolved type from
// the schema pass, that type picks the variant. Columns without one (left
// as-is) are classified by inference with the same thresholds the
// enforcer uses.
type Classifier struct {
	cfg config.AnalysisConfig
}

// NewClassifier creates a classifier with explicit configuration
func NewClassifier(cfg config.AnalysisConfig) *Classifier {
	return &Classifier{cfg: cfg}
}

// Classify picks the analysis variant for a column. A column that is
// entirely missing after casting is forced to the missing variant
// regardless of its declared type: there is nothing to analyze.
func (c *Classifier) Classify(col table.Column, enforced schema.FieldType) report.Variant {
	if col.Len() == 0 || col.AllMissing() {
		return report.VariantMissing
	}

	switch enforced {
	case schema.FieldNumeric:
		return report.VariantNumeric
	case schema.FieldCategorical:
		return report.VariantCategorical
	case schema.FieldDatetime:
		return report.VariantDatetime
	case schema.FieldText:
		return report.VariantText
	case schema.FieldBoolean:
		// Booleans carry two categories; categorical statistics apply.
		return report.VariantCategorical
	}

	return c.inferVariant(col)
}

// inferVariant handles columns enforcement left untyped. Numeric takes
// priority over categorical: numeric statistics stay meaningful for a
// low-cardinality numeric column (a 0/1 flag) and subsume what the
// categorical analyzer would report. Categorical takes priority over text
// below the cardinality threshold.
func (c *Classifier) inferVariant(col table.Column) report.Variant {
	if coerce.NumericRatio(col) >= c.cfg.NumericParseThreshold {
		return report.VariantNumeric
	}
	if coerce.DatetimeRatio(col) >= c.cfg.DatetimeParseThreshold {
		return report.VariantDatetime
	}
	if coerce.CardinalityRatio(col) < c.cfg.CardinalityThreshold {
		return report.VariantCategorical
	}
	return report.VariantText
}
