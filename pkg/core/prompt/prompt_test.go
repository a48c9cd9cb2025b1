package prompt

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRegisterDefaults(t *testing.T) {
	Get().Clear()
	RegisterDefaults()

	if Get().Count() != 2 {
		t.Errorf("expected 2 built-in prompts, got %d", Get().Count())
	}

	sys, err := Get().GetSystemPrompt(IDCreditReport)
	if err != nil {
		t.Fatalf("credit report prompt missing: %v", err)
	}
	if !strings.Contains(sys, "credit analyst") {
		t.Error("credit report system prompt lost its role framing")
	}
}

func TestRenderUserPromptSampleDataNote(t *testing.T) {
	Get().Clear()
	RegisterDefaults()

	tmpl, err := Get().GetPrompt(IDCreditReport)
	if err != nil {
		t.Fatal(err)
	}

	rendered, err := RenderUserPrompt(tmpl, map[string]interface{}{
		"StatementSummary": "Total Assets: $1,000",
		"DocumentText":     "",
		"SampleData":       true,
	})
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !strings.Contains(rendered, "Total Assets: $1,000") {
		t.Error("statement summary missing from rendered prompt")
	}
	if !strings.Contains(rendered, "illustrative") {
		t.Error("sample data note missing when SampleData is set")
	}

	rendered, err = RenderUserPrompt(tmpl, map[string]interface{}{
		"StatementSummary": "Total Assets: $1,000",
		"DocumentText":     "",
		"SampleData":       false,
	})
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(rendered, "illustrative") {
		t.Error("sample data note must not appear for real data")
	}
}

func TestLoadFromDirectoryOverridesDefaults(t *testing.T) {
	Get().Clear()
	RegisterDefaults()

	dir := t.TempDir()
	promptDir := filepath.Join(dir, "prompts", "chat")
	if err := os.MkdirAll(promptDir, 0755); err != nil {
		t.Fatal(err)
	}
	override := `{"id": "chat.followup", "name": "Override", "system_prompt": "You are terse."}`
	if err := os.WriteFile(filepath.Join(promptDir, "followup.json"), []byte(override), 0644); err != nil {
		t.Fatal(err)
	}

	if err := LoadFromDirectory(dir); err != nil {
		t.Fatalf("load failed: %v", err)
	}

	sys, err := Get().GetSystemPrompt(IDChatFollowup)
	if err != nil {
		t.Fatal(err)
	}
	if sys != "You are terse." {
		t.Errorf("file prompt did not override the built-in: %q", sys)
	}
}

func TestLoadFromDirectoryDerivesID(t *testing.T) {
	Get().Clear()

	dir := t.TempDir()
	promptDir := filepath.Join(dir, "prompts", "analysis")
	os.MkdirAll(promptDir, 0755)
	os.WriteFile(filepath.Join(promptDir, "stress_test.json"),
		[]byte(`{"system_prompt": "Stress the balance sheet."}`), 0644)

	if err := LoadFromDirectory(dir); err != nil {
		t.Fatal(err)
	}

	tmpl, err := Get().GetPrompt("analysis.stress_test")
	if err != nil {
		t.Fatalf("ID not derived from path: %v", err)
	}
	if tmpl.Category != "analysis" {
		t.Errorf("category = %q", tmpl.Category)
	}
}

func TestRegisterRejectsEmptyID(t *testing.T) {
	if err := Get().Register(&Template{Name: "anonymous"}); err == nil {
		t.Error("empty ID should be rejected")
	}
}
