// Package extract turns uploaded spreadsheet workbooks into typed
// multi-year financial time series using keyword and regex heuristics.
// It never errors on dirty cells: malformed input degrades locally to
// zero or a skipped row so every caller receives a rectangular series.
package extract

import (
	"github.com/Vvijayaragupathy-uno/Aiccore-fcsa-sub000/pkg/models"
)

// Classification labels a worksheet by statement type.
type Classification string

const (
	ClassIncome  Classification = "income"
	ClassBalance Classification = "balance"
	ClassUnknown Classification = "unknown"
)

// RawSheet is one worksheet as read from an upload: an ordered 2-D grid of
// cell strings. It exists only for the duration of a single extraction call.
type RawSheet struct {
	Name string
	Rows [][]string
}

// SheetExtract is the per-sheet extraction result before assembly.
type SheetExtract struct {
	SheetName string                              `json:"sheet_name"`
	Class     Classification                      `json:"classification"`
	Years     []int                               `json:"years"`
	Fields    map[models.CanonicalField][]float64 `json:"fields"`
	// YearsDefaulted marks sheets where no year header was found and the
	// axis is a clock-derived label, not evidence from the document.
	YearsDefaulted bool `json:"years_defaulted"`
}

// Status tells the caller whether the series came out of the document or
// out of the built-in sample. Handlers surface this so a user never
// mistakes sample figures for their own statement.
type Status string

const (
	StatusExtracted      Status = "extracted"
	StatusSampleFallback Status = "sample_fallback"
)

// Result is the outcome of extracting one workbook.
type Result struct {
	Series *models.FinancialTimeSeries `json:"series"`
	Status Status                      `json:"status"`
	Sheets []SheetExtract              `json:"sheets"`
	Log    []string                    `json:"log"`
}
