package extract

import (
	"reflect"
	"testing"
	"time"

	"github.com/Vvijayaragupathy-uno/Aiccore-fcsa-sub000/pkg/models"
)

func fixedClock() time.Time {
	return time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
}

func TestExtractSheetsEndToEnd(t *testing.T) {
	e := &Extractor{Now: fixedClock}

	sheets := []RawSheet{{
		Name: "Balance Sheet",
		Rows: [][]string{
			{"", "2022", "2023", "2024"},
			{"Total Current Assets", "335000", "375000", "402000"},
			{"Total Assets", "3515000", "3712000", "3958000"},
		},
	}}

	result := e.ExtractSheets("balance.xlsx", sheets)

	if result.Status != StatusExtracted {
		t.Fatalf("expected extracted status, got %s", result.Status)
	}
	if !reflect.DeepEqual(result.Series.Years, []int{2022, 2023, 2024}) {
		t.Fatalf("years = %v", result.Series.Years)
	}
	if !reflect.DeepEqual(result.Series.Fields[models.FieldCurrentAssets], []float64{335000, 375000, 402000}) {
		t.Errorf("currentAssets = %v", result.Series.Fields[models.FieldCurrentAssets])
	}
	if !reflect.DeepEqual(result.Series.Fields[models.FieldTotalAssets], []float64{3515000, 3712000, 3958000}) {
		t.Errorf("totalAssets = %v", result.Series.Fields[models.FieldTotalAssets])
	}
}

func TestExtractSheetsSampleFallback(t *testing.T) {
	e := &Extractor{Now: fixedClock}

	// Nothing recognizable: triggers the sample, flagged as such.
	sheets := []RawSheet{{
		Name: "Sheet1",
		Rows: [][]string{
			{"hello", "world"},
		},
	}}

	result := e.ExtractSheets("statement.xlsx", sheets)

	if result.Status != StatusSampleFallback {
		t.Fatalf("expected sample fallback status, got %s", result.Status)
	}
	if len(result.Series.Years) != 3 {
		t.Fatalf("expected 3 sample years, got %v", result.Series.Years)
	}
	if result.Series.Years[2] != 2025 {
		t.Errorf("expected sample labeled with clock year, got %v", result.Series.Years)
	}

	gross := result.Series.Fields[models.FieldGrossFarmIncome]
	assets := result.Series.Fields[models.FieldTotalAssets]
	if len(gross) == 0 || gross[0] == 0 {
		t.Error("expected non-zero sample grossFarmIncome")
	}
	if len(assets) == 0 || assets[0] == 0 {
		t.Error("expected non-zero sample totalAssets")
	}
}

func TestSampleSeriesFilenameFlavor(t *testing.T) {
	now := fixedClock()

	income := SampleSeries("income_statement.xlsx", now)
	if _, ok := income.Fields[models.FieldGrossFarmIncome]; !ok {
		t.Error("income-named file should carry income fields")
	}
	if _, ok := income.Fields[models.FieldTotalAssets]; ok {
		t.Error("income-named file should not carry balance fields")
	}

	balance := SampleSeries("balance_sheet.xlsx", now)
	if _, ok := balance.Fields[models.FieldTotalAssets]; !ok {
		t.Error("balance-named file should carry balance fields")
	}

	both := SampleSeries("statement.xlsx", now)
	if _, ok := both.Fields[models.FieldGrossFarmIncome]; !ok {
		t.Error("neutral name should carry income fields")
	}
	if _, ok := both.Fields[models.FieldTotalAssets]; !ok {
		t.Error("neutral name should carry balance fields")
	}
}

func TestExtractSheetsMissingYearHeaderUsesClock(t *testing.T) {
	e := &Extractor{Now: fixedClock}

	sheets := []RawSheet{{
		Name: "Balance Sheet",
		Rows: [][]string{
			{"Total Assets", "3515000", "3712000", "3958000"},
		},
	}}

	result := e.ExtractSheets("balance.xlsx", sheets)

	if result.Status != StatusExtracted {
		t.Fatalf("expected extracted status, got %s", result.Status)
	}
	if !result.Sheets[0].YearsDefaulted {
		t.Error("expected defaulted year labeling to be flagged")
	}
	if !reflect.DeepEqual(result.Series.Years, []int{2023, 2024, 2025}) {
		t.Errorf("expected clock-derived years, got %v", result.Series.Years)
	}
}
