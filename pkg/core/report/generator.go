package report

import (
	"context"
	"fmt"
	"time"

	"github.com/Vvijayaragupathy-uno/Aiccore-fcsa-sub000/pkg/core/agent"
	"github.com/Vvijayaragupathy-uno/Aiccore-fcsa-sub000/pkg/core/prompt"
	"github.com/Vvijayaragupathy-uno/Aiccore-fcsa-sub000/pkg/core/utils"
	"github.com/Vvijayaragupathy-uno/Aiccore-fcsa-sub000/pkg/models"
)

// generateTimeout bounds one model round trip. Past it we fall back to a
// locally built report rather than holding the upload request open.
const generateTimeout = 30 * time.Second

// AgentCreditAnalyst is the agent routing key for report generation.
const AgentCreditAnalyst = "credit_analyst"

// Generator turns extracted statement data into a credit analysis report.
type Generator struct {
	agents *agent.Manager
}

func NewGenerator(agents *agent.Manager) *Generator {
	return &Generator{agents: agents}
}

// Input carries everything the generator needs for one analysis.
type Input struct {
	Series       *models.FinancialTimeSeries
	SampleData   bool   // extraction fell back to illustrative figures
	DocumentText string // optional flattened HTML document text
	Fingerprint  string
}

// Generate renders the credit report. Model failures degrade to a locally
// computed report instead of an error; the caller always gets an Analysis.
func (g *Generator) Generate(ctx context.Context, in Input) *Analysis {
	analysis := &Analysis{
		Series:      in.Series,
		Charts:      models.BuildCharts(in.Series),
		SampleData:  in.SampleData,
		Provider:    g.agents.GetActiveProvider(),
		Fingerprint: in.Fingerprint,
	}

	rep, err := g.callModel(ctx, in)
	if err != nil {
		fmt.Printf("[WARNING] Report generation degraded to local fallback: %v\n", err)
		rep = fallbackReport(in)
		analysis.Provider = "local"
	}
	analysis.Report = rep
	return analysis
}

func (g *Generator) callModel(ctx context.Context, in Input) (*CreditReport, error) {
	tmpl, err := prompt.Get().GetPrompt(prompt.IDCreditReport)
	if err != nil {
		return nil, fmt.Errorf("PROMPT_LOOKUP_ERROR: %w", err)
	}

	vars := map[string]interface{}{
		"StatementSummary": StatementSummary(in.Series),
		"DocumentText":     in.DocumentText,
		"SampleData":       in.SampleData,
	}
	userPrompt, err := prompt.RenderUserPrompt(tmpl, vars)
	if err != nil {
		return nil, fmt.Errorf("PROMPT_RENDER_ERROR: %w", err)
	}

	callCtx, cancel := context.WithTimeout(ctx, generateTimeout)
	defer cancel()

	fmt.Printf("[REPORT] Requesting credit analysis from provider %s\n", g.agents.GetActiveProvider())
	raw, err := g.agents.ExecutePrompt(callCtx, AgentCreditAnalyst, userPrompt, tmpl.SystemPrompt, map[string]interface{}{
		"response_format": map[string]interface{}{"type": "json_object"},
	})
	if err != nil {
		return nil, err
	}

	var rep CreditReport
	if err := utils.ParseLLMJSON(raw, &rep); err != nil {
		return nil, fmt.Errorf("REPORT_PARSE_ERROR: %w", err)
	}
	if rep.ExecutiveSummary == "" {
		return nil, fmt.Errorf("REPORT_EMPTY_ERROR: model returned no executive summary")
	}
	rep.ExecutiveSummary = utils.CleanNarrative(rep.ExecutiveSummary)
	for i := range rep.Sections {
		rep.Sections[i].Narrative = utils.CleanNarrative(rep.Sections[i].Narrative)
	}
	normalizeGrade(&rep)
	return &rep, nil
}

var validGrades = map[string]bool{
	"strong": true, "acceptable": true, "watch": true, "substandard": true,
}

func normalizeGrade(rep *CreditReport) {
	if !validGrades[rep.CreditGrade] {
		rep.CreditGrade = "watch"
	}
}
