package document

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// maxPromptChars caps the text handed to the model so one oversized
// filing cannot blow the context window.
const maxPromptChars = 60000

// ExtractText flattens an HTML financial document into prompt-ready plain
// text. Tables become pipe-delimited rows, headings and paragraphs become
// single lines, and script/style noise is dropped.
func ExtractText(htmlContent string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return "", fmt.Errorf("DOCUMENT_PARSE_ERROR: failed to parse HTML: %w", err)
	}

	doc.Find("script, style, noscript, iframe, svg").Remove()

	var lines []string

	doc.Find("h1, h2, h3, h4, p, li, table").Each(func(i int, sel *goquery.Selection) {
		if goquery.NodeName(sel) == "table" {
			lines = append(lines, flattenTable(sel)...)
			return
		}
		// Skip text that lives inside a table; the table pass captures it.
		if sel.ParentsFiltered("table").Length() > 0 {
			return
		}
		text := collapseWhitespace(sel.Text())
		if text != "" {
			lines = append(lines, text)
		}
	})

	if len(lines) == 0 {
		// Element scan found nothing structured; fall back to body text.
		text := collapseWhitespace(doc.Find("body").Text())
		if text == "" {
			return "", fmt.Errorf("DOCUMENT_EMPTY_ERROR: no readable text in document")
		}
		lines = append(lines, text)
	}

	out := strings.Join(lines, "\n")
	if len(out) > maxPromptChars {
		out = out[:maxPromptChars]
	}
	return out, nil
}

// flattenTable renders each table row as a pipe-delimited line so the
// model sees column alignment without HTML markup.
func flattenTable(table *goquery.Selection) []string {
	var rows []string
	table.Find("tr").Each(func(i int, tr *goquery.Selection) {
		var cells []string
		tr.Find("th, td").Each(func(j int, cell *goquery.Selection) {
			cells = append(cells, collapseWhitespace(cell.Text()))
		})
		line := strings.TrimRight(strings.Join(cells, " | "), " |")
		if strings.TrimSpace(line) != "" {
			rows = append(rows, line)
		}
	})
	return rows
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// IsHTML reports whether the payload looks like an HTML document rather
// than a spreadsheet. Used to route uploads to the right extractor.
func IsHTML(filename string, data []byte) bool {
	lower := strings.ToLower(filename)
	if strings.HasSuffix(lower, ".html") || strings.HasSuffix(lower, ".htm") {
		return true
	}
	head := strings.ToLower(string(data[:min(len(data), 512)]))
	return strings.Contains(head, "<html") || strings.Contains(head, "<!doctype html")
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
