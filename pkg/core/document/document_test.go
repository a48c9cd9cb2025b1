package document

import (
	"strings"
	"testing"
)

func TestExtractTextTablesAndParagraphs(t *testing.T) {
	html := `<html><body>
		<h2>Balance Sheet</h2>
		<p>As of December 31, 2024</p>
		<table>
			<tr><th>Item</th><th>2024</th><th>2023</th></tr>
			<tr><td>Total Assets</td><td>3,958,000</td><td>3,712,000</td></tr>
		</table>
		<script>alert("noise")</script>
	</body></html>`

	text, err := ExtractText(html)
	if err != nil {
		t.Fatalf("ExtractText failed: %v", err)
	}

	for _, want := range []string{
		"Balance Sheet",
		"As of December 31, 2024",
		"Item | 2024 | 2023",
		"Total Assets | 3,958,000 | 3,712,000",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, text)
		}
	}
	if strings.Contains(text, "alert") {
		t.Error("script content leaked into extracted text")
	}
}

func TestExtractTextTableCellsNotDuplicated(t *testing.T) {
	html := `<table><tr><td><p>Cash</p></td><td>335,000</td></tr></table>`
	text, err := ExtractText(html)
	if err != nil {
		t.Fatalf("ExtractText failed: %v", err)
	}
	if got := strings.Count(text, "Cash"); got != 1 {
		t.Errorf("expected 'Cash' once, got %d times in:\n%s", got, text)
	}
}

func TestExtractTextEmptyDocument(t *testing.T) {
	if _, err := ExtractText("<html><body></body></html>"); err == nil {
		t.Error("expected error for document with no readable text")
	}
}

func TestIsHTML(t *testing.T) {
	if !IsHTML("report.html", nil) {
		t.Error("expected .html extension to be detected")
	}
	if !IsHTML("statement.dat", []byte("<!DOCTYPE html><html>")) {
		t.Error("expected doctype sniff to be detected")
	}
	if IsHTML("book.xlsx", []byte{0x50, 0x4b, 0x03, 0x04}) {
		t.Error("xlsx payload misdetected as HTML")
	}
}
