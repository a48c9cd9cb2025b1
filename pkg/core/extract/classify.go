package extract

import "strings"

// classifyThreshold is the minimum keyword hit count a vocabulary must
// exceed before a sheet is labeled. Ties and sub-threshold counts resolve
// to Unknown rather than a guess.
const classifyThreshold = 2

var incomeVocabulary = []string{
	"income",
	"revenue",
	"sales",
	"gross income",
	"gross farm income",
	"net income",
	"net farm income",
	"operating expenses",
	"earnings",
	"expense",
}

var balanceVocabulary = []string{
	"assets",
	"liabilities",
	"equity",
	"current assets",
	"total assets",
	"current liabilities",
	"total liabilities",
	"net worth",
	"cash",
}

// Classify labels a sheet income-statement-like, balance-sheet-like, or
// unknown by counting vocabulary hits across the sheet name and all cell
// text. Whichever count strictly exceeds the other and the threshold wins.
func Classify(sheet RawSheet) Classification {
	var sb strings.Builder
	sb.WriteString(sheet.Name)
	for _, row := range sheet.Rows {
		for _, cell := range row {
			sb.WriteString(" ")
			sb.WriteString(cell)
		}
	}
	text := strings.ToLower(sb.String())

	incomeHits := countHits(text, incomeVocabulary)
	balanceHits := countHits(text, balanceVocabulary)

	switch {
	case incomeHits > balanceHits && incomeHits > classifyThreshold:
		return ClassIncome
	case balanceHits > incomeHits && balanceHits > classifyThreshold:
		return ClassBalance
	default:
		return ClassUnknown
	}
}

func countHits(text string, vocabulary []string) int {
	hits := 0
	for _, term := range vocabulary {
		if strings.Contains(text, term) {
			hits++
		}
	}
	return hits
}
