package models

import "sort"

// CanonicalField is a fixed internal name for a recognized financial
// statement line item.
type CanonicalField string

// Income statement fields
const (
	FieldGrossFarmIncome   CanonicalField = "grossFarmIncome"
	FieldOperatingExpenses CanonicalField = "operatingExpenses"
	FieldInterestExpense   CanonicalField = "interestExpense"
	FieldDepreciation      CanonicalField = "depreciation"
	FieldNetFarmIncome     CanonicalField = "netFarmIncome"
)

// Balance sheet fields
const (
	FieldCash               CanonicalField = "cash"
	FieldCurrentAssets      CanonicalField = "currentAssets"
	FieldTotalAssets        CanonicalField = "totalAssets"
	FieldCurrentLiabilities CanonicalField = "currentLiabilities"
	FieldTotalLiabilities   CanonicalField = "totalLiabilities"
	FieldTotalEquity        CanonicalField = "totalEquity"
)

// IncomeFields lists the recognized income statement fields in display order.
var IncomeFields = []CanonicalField{
	FieldGrossFarmIncome,
	FieldOperatingExpenses,
	FieldInterestExpense,
	FieldDepreciation,
	FieldNetFarmIncome,
}

// BalanceFields lists the recognized balance sheet fields in display order.
var BalanceFields = []CanonicalField{
	FieldCash,
	FieldCurrentAssets,
	FieldTotalAssets,
	FieldCurrentLiabilities,
	FieldTotalLiabilities,
	FieldTotalEquity,
}

// Label returns a human readable label for prompt and chart rendering.
func (f CanonicalField) Label() string {
	switch f {
	case FieldGrossFarmIncome:
		return "Gross Farm Income"
	case FieldOperatingExpenses:
		return "Operating Expenses"
	case FieldInterestExpense:
		return "Interest Expense"
	case FieldDepreciation:
		return "Depreciation"
	case FieldNetFarmIncome:
		return "Net Farm Income"
	case FieldCash:
		return "Cash"
	case FieldCurrentAssets:
		return "Total Current Assets"
	case FieldTotalAssets:
		return "Total Assets"
	case FieldCurrentLiabilities:
		return "Total Current Liabilities"
	case FieldTotalLiabilities:
		return "Total Liabilities"
	case FieldTotalEquity:
		return "Total Equity"
	default:
		return string(f)
	}
}

// FinancialTimeSeries is the core extraction output: an ascending year axis
// plus, for every recognized field, a value slice aligned positionally to it.
// Invariant: len(Fields[f]) == len(Years) for every f. Values are
// non-negative magnitudes; sign direction is not modeled.
type FinancialTimeSeries struct {
	Years  []int                        `json:"years"`
	Fields map[CanonicalField][]float64 `json:"fields"`
}

// NewFinancialTimeSeries creates an empty series over the given year axis.
func NewFinancialTimeSeries(years []int) *FinancialTimeSeries {
	sorted := append([]int(nil), years...)
	sort.Ints(sorted)
	return &FinancialTimeSeries{
		Years:  sorted,
		Fields: make(map[CanonicalField][]float64),
	}
}

// Set stores values for a field, truncating or zero-padding to the year axis
// length so the series stays rectangular.
func (s *FinancialTimeSeries) Set(field CanonicalField, values []float64) {
	aligned := make([]float64, len(s.Years))
	copy(aligned, values)
	s.Fields[field] = aligned
}

// IsEmpty reports whether the series carries no usable data: either the year
// axis is empty or every value of every field is zero.
func (s *FinancialTimeSeries) IsEmpty() bool {
	if s == nil || len(s.Years) == 0 {
		return true
	}
	for _, vals := range s.Fields {
		for _, v := range vals {
			if v > 0 {
				return false
			}
		}
	}
	return true
}

// YearIndex returns the position of year on the axis, or -1.
func (s *FinancialTimeSeries) YearIndex(year int) int {
	for i, y := range s.Years {
		if y == year {
			return i
		}
	}
	return -1
}
