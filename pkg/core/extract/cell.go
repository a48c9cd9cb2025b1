package extract

import (
	"strings"

	"github.com/shopspring/decimal"
)

// NormalizeCell converts a raw spreadsheet cell into a non-negative numeric
// magnitude. Currency symbols, thousands separators, parentheses, and
// whitespace are stripped before parsing. Parenthesized values mean negative
// in accounting statements but the sign is discarded; only the magnitude is
// kept. Non-parseable text yields 0 so the caller always gets a complete
// fixed-length numeric row.
func NormalizeCell(raw string) float64 {
	s := strings.TrimSpace(raw)
	if s == "" || s == "-" || s == "—" || strings.EqualFold(s, "n/a") {
		return 0
	}

	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.Trim(s, "()")
	s = strings.TrimSuffix(s, "%")

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0
	}
	f, _ := d.Abs().Float64()
	return f
}

// NormalizeRow normalizes a slice of cells into exactly n values, truncating
// or zero-padding as needed.
func NormalizeRow(cells []string, n int) []float64 {
	out := make([]float64, n)
	for i := 0; i < n && i < len(cells); i++ {
		out[i] = NormalizeCell(cells[i])
	}
	return out
}
