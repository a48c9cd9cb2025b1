package store

import (
	"context"
	"testing"

	"github.com/Vvijayaragupathy-uno/Aiccore-fcsa-sub000/pkg/core/report"
	"github.com/Vvijayaragupathy-uno/Aiccore-fcsa-sub000/pkg/models"
)

func TestFileCacheRoundTrip(t *testing.T) {
	cache := NewAnalysisCache(nil, t.TempDir())
	ctx := context.Background()

	ts := models.NewFinancialTimeSeries([]int{2023, 2024})
	ts.Set(models.FieldTotalAssets, []float64{3712000, 3958000})
	analysis := &report.Analysis{
		Report:      &report.CreditReport{ExecutiveSummary: "Solid borrower.", CreditGrade: "strong"},
		Series:      ts,
		Provider:    "openai",
		Fingerprint: "abc123",
	}

	if err := cache.Save(ctx, "abc123", analysis); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := cache.Get(ctx, "abc123")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got == nil {
		t.Fatal("expected cache hit")
	}
	if got.Report.ExecutiveSummary != "Solid borrower." {
		t.Errorf("summary = %q", got.Report.ExecutiveSummary)
	}
	if got.Series.Fields[models.FieldTotalAssets][1] != 3958000 {
		t.Errorf("series values did not survive round trip: %+v", got.Series)
	}
}

func TestFileCacheMiss(t *testing.T) {
	cache := NewAnalysisCache(nil, t.TempDir())
	got, err := cache.Get(context.Background(), "never-saved")
	if err != nil {
		t.Fatalf("miss should not error: %v", err)
	}
	if got != nil {
		t.Error("expected nil on cache miss")
	}
}

func TestFileCacheUpsert(t *testing.T) {
	cache := NewAnalysisCache(nil, t.TempDir())
	ctx := context.Background()

	first := &report.Analysis{Report: &report.CreditReport{CreditGrade: "watch"}, Provider: "local"}
	second := &report.Analysis{Report: &report.CreditReport{CreditGrade: "strong"}, Provider: "openai"}

	if err := cache.Save(ctx, "fp", first); err != nil {
		t.Fatal(err)
	}
	if err := cache.Save(ctx, "fp", second); err != nil {
		t.Fatal(err)
	}

	got, _ := cache.Get(ctx, "fp")
	if got == nil || got.Report.CreditGrade != "strong" {
		t.Errorf("expected second save to win, got %+v", got)
	}
}
