package extract

import (
	"testing"
	"time"
)

func TestLocateYearsFromHeaderRow(t *testing.T) {
	sheet := RawSheet{
		Name: "Balance Sheet",
		Rows: [][]string{
			{"", "2022", "2023", "2024"},
			{"Total Assets", "3515000", "3712000", "3958000"},
		},
	}

	years := LocateYears(sheet)
	if len(years) != 3 {
		t.Fatalf("expected 3 years, got %v", years)
	}
	for i, want := range []int{2022, 2023, 2024} {
		if years[i] != want {
			t.Errorf("years[%d] = %d, want %d", i, years[i], want)
		}
	}
}

func TestLocateYearsFirstRowWithTokensWins(t *testing.T) {
	sheet := RawSheet{
		Rows: [][]string{
			{"Prepared 2024"},
			{"", "2021", "2022"},
		},
	}

	years := LocateYears(sheet)
	if len(years) != 1 || years[0] != 2024 {
		t.Errorf("expected first matching row to win, got %v", years)
	}
}

func TestLocateYearsNoneFound(t *testing.T) {
	sheet := RawSheet{
		Rows: [][]string{
			{"Statement of Condition"},
			{"Cash", "100", "200"},
			{"FY 98", "FY 99"}, // pre-2000 years are outside the heuristic
		},
	}

	if years := LocateYears(sheet); len(years) != 0 {
		t.Errorf("expected no years, got %v", years)
	}
}

func TestLocateYearsDeduplicatesAndSorts(t *testing.T) {
	sheet := RawSheet{
		Rows: [][]string{
			{"", "2024", "2022", "2023", "2022"},
		},
	}

	years := LocateYears(sheet)
	if len(years) != 3 {
		t.Fatalf("expected 3 distinct years, got %v", years)
	}
	if years[0] != 2022 || years[2] != 2024 {
		t.Errorf("expected ascending order, got %v", years)
	}
}

func TestDefaultYears(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	years := DefaultYears(now)
	if len(years) != 3 || years[0] != 2023 || years[1] != 2024 || years[2] != 2025 {
		t.Errorf("expected [2023 2024 2025], got %v", years)
	}
}
