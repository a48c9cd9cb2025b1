package report

import (
	"fmt"

	"github.com/Vvijayaragupathy-uno/Aiccore-fcsa-sub000/pkg/models"
)

// fallbackReport builds a minimal report from locally computed ratios when
// the model is unreachable or returns garbage. Every narrative states that
// the analysis completed with time constraints so the reader knows the
// model pass was skipped.
func fallbackReport(in Input) *CreditReport {
	rep := &CreditReport{
		ExecutiveSummary: "Automated analysis completed with time constraints. The figures below " +
			"were computed directly from the extracted statement data; a full model-assisted " +
			"narrative was not available. Re-run the analysis to retry the full report.",
		CreditGrade: "watch",
		DataCaveats: []string{"Model-assisted narrative unavailable; ratios computed locally."},
	}
	if in.SampleData {
		rep.DataCaveats = append(rep.DataCaveats,
			"Statement extraction failed; figures are illustrative sample data.")
	}

	ts := in.Series
	latest := func(f models.CanonicalField) (float64, bool) {
		vals, ok := ts.Fields[f]
		if !ok || len(vals) == 0 {
			return 0, false
		}
		return vals[len(vals)-1], true
	}

	var liquidity Section
	liquidity.Topic = "liquidity"
	liquidity.Title = "Liquidity"
	if ca, ok1 := latest(models.FieldCurrentAssets); ok1 {
		if cl, ok2 := latest(models.FieldCurrentLiabilities); ok2 && cl > 0 {
			ratio := ca / cl
			liquidity.Metrics = append(liquidity.Metrics, Metric{
				Name:  "Current Ratio",
				Value: fmt.Sprintf("%.2f", ratio),
				Trend: "unknown",
			})
			liquidity.Narrative = fmt.Sprintf(
				"Latest current ratio is %.2f based on current assets of %s against current liabilities of %s.",
				ratio, formatDollars(ca), formatDollars(cl))
		}
	}
	if liquidity.Narrative == "" {
		liquidity.Narrative = "Current ratio could not be computed from the extracted data."
	}
	rep.Sections = append(rep.Sections, liquidity)

	var solvency Section
	solvency.Topic = "solvency"
	solvency.Title = "Solvency"
	if ta, ok1 := latest(models.FieldTotalAssets); ok1 && ta > 0 {
		if tl, ok2 := latest(models.FieldTotalLiabilities); ok2 {
			ratio := tl / ta
			solvency.Metrics = append(solvency.Metrics, Metric{
				Name:  "Debt/Asset Ratio",
				Value: fmt.Sprintf("%.1f%%", ratio*100),
				Trend: "unknown",
			})
			solvency.Narrative = fmt.Sprintf(
				"Latest debt/asset ratio is %.1f%% on total assets of %s.",
				ratio*100, formatDollars(ta))
		}
	}
	if solvency.Narrative == "" {
		solvency.Narrative = "Leverage ratios could not be computed from the extracted data."
	}
	rep.Sections = append(rep.Sections, solvency)

	var profit Section
	profit.Topic = "profitability"
	profit.Title = "Profitability"
	if nfi, ok := ts.Fields[models.FieldNetFarmIncome]; ok && len(nfi) > 0 {
		trend := "stable"
		if len(nfi) > 1 {
			switch {
			case nfi[len(nfi)-1] > nfi[0]:
				trend = "improving"
			case nfi[len(nfi)-1] < nfi[0]:
				trend = "declining"
			}
		}
		profit.Metrics = append(profit.Metrics, Metric{
			Name:  "Net Farm Income",
			Value: formatDollars(nfi[len(nfi)-1]),
			Trend: trend,
		})
		profit.Narrative = fmt.Sprintf("Latest net farm income is %s with a %s trend over the reported years.",
			formatDollars(nfi[len(nfi)-1]), trend)
	} else {
		profit.Narrative = "Net farm income was not found in the extracted data."
	}
	rep.Sections = append(rep.Sections, profit)

	rep.KeyFindings = []string{"Review the computed ratios above and re-run for a full narrative analysis."}
	return rep
}
