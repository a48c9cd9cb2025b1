package models

// ChartDataPoint represents a single data point for charts
type ChartDataPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// ChartSeries is one named line or bar group across the shared year axis.
type ChartSeries struct {
	Field  CanonicalField `json:"field"`
	Label  string         `json:"label"`
	Values []float64      `json:"values"`
}

// ChartData represents data for a single rendered chart
type ChartData struct {
	ChartType string           `json:"chart_type"` // "line", "bar", "pie"
	Title     string           `json:"title"`
	Years     []int            `json:"years,omitempty"`
	Series    []ChartSeries    `json:"series,omitempty"`
	Slices    []ChartDataPoint `json:"slices,omitempty"`
}

// BuildCharts turns an extracted series into chart payloads the UI can
// render directly: income trend, balance sheet structure, and a latest-year
// asset/liability/equity composition pie when balance data is present.
func BuildCharts(ts *FinancialTimeSeries) []ChartData {
	if ts == nil || len(ts.Years) == 0 {
		return nil
	}

	var charts []ChartData

	income := collectSeries(ts, IncomeFields)
	if len(income) > 0 {
		charts = append(charts, ChartData{
			ChartType: "line",
			Title:     "Income Trend",
			Years:     ts.Years,
			Series:    income,
		})
	}

	balance := collectSeries(ts, BalanceFields)
	if len(balance) > 0 {
		charts = append(charts, ChartData{
			ChartType: "bar",
			Title:     "Balance Sheet Position",
			Years:     ts.Years,
			Series:    balance,
		})

		last := len(ts.Years) - 1
		var slices []ChartDataPoint
		for _, f := range []CanonicalField{FieldTotalAssets, FieldTotalLiabilities, FieldTotalEquity} {
			if vals, ok := ts.Fields[f]; ok && vals[last] > 0 {
				slices = append(slices, ChartDataPoint{Label: f.Label(), Value: vals[last]})
			}
		}
		if len(slices) > 0 {
			charts = append(charts, ChartData{
				ChartType: "pie",
				Title:     "Capital Structure (Latest Year)",
				Slices:    slices,
			})
		}
	}

	return charts
}

func collectSeries(ts *FinancialTimeSeries, fields []CanonicalField) []ChartSeries {
	var out []ChartSeries
	for _, f := range fields {
		if vals, ok := ts.Fields[f]; ok {
			out = append(out, ChartSeries{Field: f, Label: f.Label(), Values: vals})
		}
	}
	return out
}
