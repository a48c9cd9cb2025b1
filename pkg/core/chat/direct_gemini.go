package chat

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const directGeminiModel = "gemini-2.0-flash"

// askGeminiDirect bypasses the provider layer and talks to Gemini with a
// dedicated client. Used as a second attempt when the routed provider fails
// mid-conversation.
func askGeminiDirect(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return "", fmt.Errorf("GEMINI_API_KEY environment variable not set")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return "", fmt.Errorf("failed to create Gemini client: %v", err)
	}
	defer client.Close()

	model := client.GenerativeModel(directGeminiModel)
	model.SetTemperature(0.4)

	fullPrompt := fmt.Sprintf("%s\n\nTask: %s", systemPrompt, userPrompt)

	resp, err := model.GenerateContent(ctx, genai.Text(fullPrompt))
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("GEMINI_EMPTY_RESPONSE: no candidates returned")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}
	answer := strings.TrimSpace(sb.String())
	if answer == "" {
		return "", fmt.Errorf("GEMINI_EMPTY_RESPONSE: candidate carried no text")
	}
	return answer, nil
}
