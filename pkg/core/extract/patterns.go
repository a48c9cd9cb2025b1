package extract

import (
	"regexp"

	"github.com/Vvijayaragupathy-uno/Aiccore-fcsa-sub000/pkg/models"
)

// fieldPattern binds a row-description regex to the canonical field it
// populates. Patterns are evaluated in slice order with first-match-wins
// semantics, so more specific labels must precede broader ones: "total
// current assets" has to be claimed before a bare "total assets" pattern
// could swallow it.
type fieldPattern struct {
	re    *regexp.Regexp
	field models.CanonicalField
}

var incomePatterns = []fieldPattern{
	{regexp.MustCompile(`gross\s+(farm\s+)?(income|revenue)|total\s+(farm\s+)?(income|revenue)|total\s+sales`), models.FieldGrossFarmIncome},
	{regexp.MustCompile(`net\s+(farm\s+)?income|net\s+earnings|net\s+profit`), models.FieldNetFarmIncome},
	{regexp.MustCompile(`(total\s+)?operating\s+expenses?`), models.FieldOperatingExpenses},
	{regexp.MustCompile(`interest\s+(expense|paid)`), models.FieldInterestExpense},
	{regexp.MustCompile(`depreciation`), models.FieldDepreciation},
}

var balancePatterns = []fieldPattern{
	{regexp.MustCompile(`(total\s+)?current\s+assets`), models.FieldCurrentAssets},
	{regexp.MustCompile(`total\s+assets`), models.FieldTotalAssets},
	{regexp.MustCompile(`(total\s+)?current\s+liabilit`), models.FieldCurrentLiabilities},
	{regexp.MustCompile(`total\s+liabilit`), models.FieldTotalLiabilities},
	{regexp.MustCompile(`total\s+(owner'?s?\s+)?equity|net\s+worth`), models.FieldTotalEquity},
	{regexp.MustCompile(`^cash\b|cash\s+(and|&)\s+equivalents|cash\s+on\s+hand`), models.FieldCash},
}

// patternsFor returns the ordered pattern table for a classification.
// Unknown sheets are scanned with the union of both vocabularies.
func patternsFor(class Classification) []fieldPattern {
	switch class {
	case ClassIncome:
		return incomePatterns
	case ClassBalance:
		return balancePatterns
	default:
		union := make([]fieldPattern, 0, len(incomePatterns)+len(balancePatterns))
		union = append(union, incomePatterns...)
		union = append(union, balancePatterns...)
		return union
	}
}
