package extract

import (
	"reflect"
	"testing"

	"github.com/Vvijayaragupathy-uno/Aiccore-fcsa-sub000/pkg/models"
)

func TestAssembleUnionsYearsAndRealigns(t *testing.T) {
	sheets := []SheetExtract{
		{
			SheetName: "Income",
			Years:     []int{2022, 2023},
			Fields: map[models.CanonicalField][]float64{
				models.FieldNetFarmIncome: {184000, 205000},
			},
		},
		{
			SheetName: "Balance",
			Years:     []int{2023, 2024},
			Fields: map[models.CanonicalField][]float64{
				models.FieldTotalAssets: {3712000, 3958000},
			},
		},
	}

	series := Assemble(sheets)

	if !reflect.DeepEqual(series.Years, []int{2022, 2023, 2024}) {
		t.Fatalf("expected unioned years, got %v", series.Years)
	}

	// Income sheet values land on 2022/2023, zero for 2024
	wantIncome := []float64{184000, 205000, 0}
	if !reflect.DeepEqual(series.Fields[models.FieldNetFarmIncome], wantIncome) {
		t.Errorf("netFarmIncome = %v, want %v", series.Fields[models.FieldNetFarmIncome], wantIncome)
	}

	// Balance sheet values land on 2023/2024, zero for 2022
	wantAssets := []float64{0, 3712000, 3958000}
	if !reflect.DeepEqual(series.Fields[models.FieldTotalAssets], wantAssets) {
		t.Errorf("totalAssets = %v, want %v", series.Fields[models.FieldTotalAssets], wantAssets)
	}
}

func TestAssembleLastSheetWinsPerField(t *testing.T) {
	sheets := []SheetExtract{
		{
			Years:  []int{2023, 2024},
			Fields: map[models.CanonicalField][]float64{models.FieldTotalAssets: {1, 2}},
		},
		{
			Years:  []int{2023, 2024},
			Fields: map[models.CanonicalField][]float64{models.FieldTotalAssets: {100, 200}},
		},
	}

	series := Assemble(sheets)
	want := []float64{100, 200}
	if !reflect.DeepEqual(series.Fields[models.FieldTotalAssets], want) {
		t.Errorf("expected later sheet to win, got %v", series.Fields[models.FieldTotalAssets])
	}
}

func TestAssembleRectangularInvariant(t *testing.T) {
	sheets := []SheetExtract{
		{
			Years: []int{2022},
			Fields: map[models.CanonicalField][]float64{
				models.FieldCash: {48000},
			},
		},
		{
			Years: []int{2023, 2024},
			Fields: map[models.CanonicalField][]float64{
				models.FieldTotalEquity: {2193000, 2397000},
			},
		},
	}

	series := Assemble(sheets)
	for f, vals := range series.Fields {
		if len(vals) != len(series.Years) {
			t.Errorf("field %s has %d values for %d years", f, len(vals), len(series.Years))
		}
	}
}

func TestAssembleEmpty(t *testing.T) {
	series := Assemble(nil)
	if !series.IsEmpty() {
		t.Error("expected empty series from no sheets")
	}
}
