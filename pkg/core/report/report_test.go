package report

import (
	"strings"
	"testing"

	"github.com/Vvijayaragupathy-uno/Aiccore-fcsa-sub000/pkg/models"
)

func sampleSeries() *models.FinancialTimeSeries {
	ts := models.NewFinancialTimeSeries([]int{2022, 2023, 2024})
	ts.Set(models.FieldGrossFarmIncome, []float64{1710000, 1788000, 1852000})
	ts.Set(models.FieldNetFarmIncome, []float64{182000, 199000, 224000})
	ts.Set(models.FieldCurrentAssets, []float64{335000, 375000, 402000})
	ts.Set(models.FieldCurrentLiabilities, []float64{210000, 205000, 201000})
	ts.Set(models.FieldTotalAssets, []float64{3515000, 3712000, 3958000})
	ts.Set(models.FieldTotalLiabilities, []float64{1460000, 1430000, 1395000})
	return ts
}

func TestStatementSummaryLayout(t *testing.T) {
	summary := StatementSummary(sampleSeries())

	for _, want := range []string{
		"Fiscal years: 2022, 2023, 2024",
		"Income Statement:",
		"Balance Sheet:",
		"Total Assets: $3,515,000, $3,712,000, $3,958,000",
		"Net Farm Income: $182,000, $199,000, $224,000",
	} {
		if !strings.Contains(summary, want) {
			t.Errorf("summary missing %q:\n%s", want, summary)
		}
	}

	// Fields never extracted must not appear.
	if strings.Contains(summary, "Depreciation") {
		t.Error("summary lists a field that was never extracted")
	}
}

func TestStatementSummaryEmpty(t *testing.T) {
	got := StatementSummary(models.NewFinancialTimeSeries(nil))
	if !strings.Contains(got, "No financial statement data") {
		t.Errorf("unexpected empty summary: %q", got)
	}
}

func TestFormatDollars(t *testing.T) {
	cases := map[float64]string{
		0:          "$0",
		950:        "$950",
		1000:       "$1,000",
		1234567.89: "$1,234,568",
		3958000:    "$3,958,000",
	}
	for in, want := range cases {
		if got := formatDollars(in); got != want {
			t.Errorf("formatDollars(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestFallbackReportRatios(t *testing.T) {
	rep := fallbackReport(Input{Series: sampleSeries()})

	if !strings.Contains(rep.ExecutiveSummary, "time constraints") {
		t.Errorf("fallback summary should disclose degraded mode: %q", rep.ExecutiveSummary)
	}
	if rep.CreditGrade != "watch" {
		t.Errorf("fallback grade = %q, want watch", rep.CreditGrade)
	}

	metrics := map[string]Metric{}
	for _, sec := range rep.Sections {
		for _, m := range sec.Metrics {
			metrics[m.Name] = m
		}
	}

	// 402000 / 201000 = 2.00
	if m, ok := metrics["Current Ratio"]; !ok || m.Value != "2.00" {
		t.Errorf("current ratio metric = %+v", m)
	}
	// 1395000 / 3958000 = 35.2%
	if m, ok := metrics["Debt/Asset Ratio"]; !ok || m.Value != "35.2%" {
		t.Errorf("debt/asset metric = %+v", m)
	}
	if m, ok := metrics["Net Farm Income"]; !ok || m.Trend != "improving" {
		t.Errorf("net farm income metric = %+v", m)
	}
}

func TestFallbackReportSampleDataCaveat(t *testing.T) {
	rep := fallbackReport(Input{Series: sampleSeries(), SampleData: true})
	found := false
	for _, c := range rep.DataCaveats {
		if strings.Contains(c, "sample data") {
			found = true
		}
	}
	if !found {
		t.Error("sample data caveat missing from fallback report")
	}
}

func TestNormalizeGrade(t *testing.T) {
	rep := &CreditReport{CreditGrade: "AAA"}
	normalizeGrade(rep)
	if rep.CreditGrade != "watch" {
		t.Errorf("unknown grade should normalize to watch, got %q", rep.CreditGrade)
	}
	rep.CreditGrade = "strong"
	normalizeGrade(rep)
	if rep.CreditGrade != "strong" {
		t.Errorf("valid grade should pass through, got %q", rep.CreditGrade)
	}
}
