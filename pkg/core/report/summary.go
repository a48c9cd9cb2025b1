package report

import (
	"fmt"
	"strings"

	"github.com/Vvijayaragupathy-uno/Aiccore-fcsa-sub000/pkg/models"
)

// StatementSummary serializes a time series into the labeled text block
// handed to the model. Years run left to right in ascending order and
// only fields that were actually extracted appear.
func StatementSummary(ts *models.FinancialTimeSeries) string {
	if ts == nil || len(ts.Years) == 0 {
		return "No financial statement data was extracted."
	}

	var b strings.Builder

	yearLabels := make([]string, len(ts.Years))
	for i, y := range ts.Years {
		yearLabels[i] = fmt.Sprintf("%d", y)
	}
	b.WriteString("Fiscal years: " + strings.Join(yearLabels, ", ") + "\n")

	writeGroup := func(heading string, fields []models.CanonicalField) {
		var lines []string
		for _, f := range fields {
			vals, ok := ts.Fields[f]
			if !ok {
				continue
			}
			formatted := make([]string, len(vals))
			for i, v := range vals {
				formatted[i] = formatDollars(v)
			}
			lines = append(lines, fmt.Sprintf("  %s: %s", f.Label(), strings.Join(formatted, ", ")))
		}
		if len(lines) > 0 {
			b.WriteString(heading + "\n" + strings.Join(lines, "\n") + "\n")
		}
	}

	writeGroup("Income Statement:", models.IncomeFields)
	writeGroup("Balance Sheet:", models.BalanceFields)

	return b.String()
}

// formatDollars renders 1234567.89 as $1,234,568.
func formatDollars(v float64) string {
	n := int64(v + 0.5)
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return "$" + s
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	return "$" + strings.Join(parts, ",")
}
