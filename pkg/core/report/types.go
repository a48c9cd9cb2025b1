package report

import "github.com/Vvijayaragupathy-uno/Aiccore-fcsa-sub000/pkg/models"

// Metric is a single computed ratio or figure inside a report section.
type Metric struct {
	Name  string `json:"name"`
	Value string `json:"value"`
	Trend string `json:"trend"`
}

// Section is one analytical area of the credit report.
type Section struct {
	Topic           string   `json:"topic"`
	Title           string   `json:"title"`
	Narrative       string   `json:"narrative"`
	Metrics         []Metric `json:"metrics"`
	Recommendations []string `json:"recommendations"`
}

// CreditReport is the structured analysis returned by the model.
type CreditReport struct {
	ExecutiveSummary string    `json:"executive_summary"`
	CreditGrade      string    `json:"credit_grade"`
	Sections         []Section `json:"sections"`
	KeyFindings      []string  `json:"key_findings"`
	DataCaveats      []string  `json:"data_caveats"`
}

// Analysis bundles the report with the data it was computed from, ready
// for the API layer to serialize.
type Analysis struct {
	Report      *CreditReport               `json:"report"`
	Series      *models.FinancialTimeSeries `json:"series"`
	Charts      []models.ChartData          `json:"charts"`
	SampleData  bool                        `json:"sampleData"`
	Provider    string                      `json:"provider"`
	Fingerprint string                      `json:"fingerprint,omitempty"`
}
