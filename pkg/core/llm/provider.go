package llm

import (
	"context"
)

// Provider is the interface for all LLM providers.
type Provider interface {
	GenerateResponse(ctx context.Context, prompt string, systemPrompt string, options map[string]interface{}) (string, error)
	// AdaptInstructions transforms raw instructions into model-specific formats
	AdaptInstructions(rawInstructions string) string
}

// Message is one chat turn in OpenAI-compatible request bodies.
type Message struct {
	Content string `json:"content"`
	Role    string `json:"role"`
}

// chatChoices is the shared response shape of OpenAI-compatible endpoints.
type chatChoices struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}
