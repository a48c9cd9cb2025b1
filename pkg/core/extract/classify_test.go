package extract

import "testing"

func TestClassifyBalanceSheet(t *testing.T) {
	sheet := RawSheet{
		Name: "Balance Sheet",
		Rows: [][]string{
			{"", "2022", "2023"},
			{"Cash", "48000", "56000"},
			{"Total Current Assets", "335000", "375000"},
			{"Total Assets", "3515000", "3712000"},
			{"Total Current Liabilities", "208000", "221000"},
			{"Total Liabilities", "1485000", "1519000"},
			{"Total Equity", "2030000", "2193000"},
		},
	}

	if got := Classify(sheet); got != ClassBalance {
		t.Errorf("expected balance classification, got %s", got)
	}
}

func TestClassifyIncomeStatement(t *testing.T) {
	sheet := RawSheet{
		Name: "Income Statement",
		Rows: [][]string{
			{"", "2023"},
			{"Gross Farm Income", "1852000"},
			{"Operating Expenses", "1419000"},
			{"Net Farm Income", "205000"},
			{"Revenue from sales", "900000"},
		},
	}

	if got := Classify(sheet); got != ClassIncome {
		t.Errorf("expected income classification, got %s", got)
	}
}

func TestClassifyUnknownOnThinContent(t *testing.T) {
	// A couple of hits is below the threshold: never guess.
	sheet := RawSheet{
		Name: "Sheet1",
		Rows: [][]string{
			{"Cash", "100"},
			{"Misc", "200"},
		},
	}

	if got := Classify(sheet); got != ClassUnknown {
		t.Errorf("expected unknown classification, got %s", got)
	}
}
