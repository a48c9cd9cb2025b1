package extract

import (
	"sort"

	"github.com/Vvijayaragupathy-uno/Aiccore-fcsa-sub000/pkg/models"
)

// Assemble folds per-sheet extraction results into one series. Years are
// unioned into a single ascending axis and every field's values are
// re-indexed onto that axis by year label, so sheets reporting different
// year ranges stay aligned. When the same field appears in more than one
// sheet, the later sheet's values overwrite the earlier in full:
// last-sheet-wins, in input order, never by completion order.
func Assemble(sheets []SheetExtract) *models.FinancialTimeSeries {
	yearSet := make(map[int]struct{})
	for _, s := range sheets {
		for _, y := range s.Years {
			yearSet[y] = struct{}{}
		}
	}
	years := make([]int, 0, len(yearSet))
	for y := range yearSet {
		years = append(years, y)
	}
	sort.Ints(years)

	series := models.NewFinancialTimeSeries(years)

	for _, s := range sheets {
		for field, values := range s.Fields {
			aligned := make([]float64, len(series.Years))
			for i, y := range s.Years {
				if i >= len(values) {
					break
				}
				if pos := series.YearIndex(y); pos >= 0 {
					aligned[pos] = values[i]
				}
			}
			series.Fields[field] = aligned
		}
	}

	return series
}
