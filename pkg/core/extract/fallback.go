package extract

import (
	"strings"
	"time"

	"github.com/Vvijayaragupathy-uno/Aiccore-fcsa-sub000/pkg/models"
)

// Sample statement figures used when extraction yields nothing usable.
// Downstream prompt construction and chart rendering assume non-empty data;
// these are labeled figures for a plausible mid-size farm operation, not an
// approximation of the user's document. Callers must pair the sample with
// StatusSampleFallback so the UI can show a warning banner.
var sampleIncome = map[models.CanonicalField][]float64{
	models.FieldGrossFarmIncome:   {1710000, 1788000, 1852000},
	models.FieldOperatingExpenses: {1333000, 1382000, 1419000},
	models.FieldInterestExpense:   {96000, 101000, 104000},
	models.FieldDepreciation:      {118000, 121000, 124000},
	models.FieldNetFarmIncome:     {163000, 184000, 205000},
}

var sampleBalance = map[models.CanonicalField][]float64{
	models.FieldCash:               {48000, 56000, 61000},
	models.FieldCurrentAssets:      {335000, 375000, 402000},
	models.FieldTotalAssets:        {3515000, 3712000, 3958000},
	models.FieldCurrentLiabilities: {208000, 221000, 229000},
	models.FieldTotalLiabilities:   {1485000, 1519000, 1561000},
	models.FieldTotalEquity:        {2030000, 2193000, 2397000},
}

// SampleSeries produces a complete synthetic 3-year statement labeled with
// the current year and the two preceding ones. The filename steers which
// statement flavor is produced; when the name hints at neither, both sides
// are filled so any downstream view has data.
func SampleSeries(filename string, now time.Time) *models.FinancialTimeSeries {
	series := models.NewFinancialTimeSeries(DefaultYears(now))

	name := strings.ToLower(filename)
	wantsIncome := containsAny(name, []string{"income", "revenue", "earnings", "profit"})
	wantsBalance := containsAny(name, []string{"balance", "asset", "liabilit", "equity", "net worth"})

	if wantsIncome || !wantsBalance {
		for f, vals := range sampleIncome {
			series.Set(f, vals)
		}
	}
	if wantsBalance || !wantsIncome {
		for f, vals := range sampleBalance {
			series.Set(f, vals)
		}
	}

	return series
}

func containsAny(s string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}
