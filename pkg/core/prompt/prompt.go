// Package prompt provides a centralized prompt library for LLM
// interactions. Prompts live in JSON files under resources/ and are loaded
// at runtime, so wording changes do not require code changes; built-in
// defaults cover a missing library.
package prompt

import (
	"fmt"
	"sync"
)

// Template is a reusable prompt with metadata.
type Template struct {
	ID             string `json:"id"`                   // e.g. "analysis.credit_report"
	Name           string `json:"name"`                 // Human-readable name
	Category       string `json:"category"`             // analysis, chat, ...
	Description    string `json:"description"`          // Purpose
	SystemPrompt   string `json:"system_prompt"`        // System prompt content
	UserPromptTmpl string `json:"user_prompt_template"` // Go template for the user prompt
	Version        string `json:"version"`
}

// Registry holds all loaded prompts.
type Registry struct {
	prompts map[string]*Template
	mu      sync.RWMutex
}

var (
	globalRegistry *Registry
	once           sync.Once
)

// Get returns the global registry singleton.
func Get() *Registry {
	once.Do(func() {
		globalRegistry = &Registry{prompts: make(map[string]*Template)}
	})
	return globalRegistry
}

// Register adds a template; an existing template with the same ID is
// replaced, which is how file-based prompts override the built-ins.
func (r *Registry) Register(t *Template) error {
	if t.ID == "" {
		return fmt.Errorf("prompt ID cannot be empty")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.prompts[t.ID] = t
	return nil
}

// GetPrompt retrieves a template by ID.
func (r *Registry) GetPrompt(id string) (*Template, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if p, ok := r.prompts[id]; ok {
		return p, nil
	}
	return nil, fmt.Errorf("prompt not found: %s", id)
}

// GetSystemPrompt is a convenience for the system prompt string only.
func (r *Registry) GetSystemPrompt(id string) (string, error) {
	t, err := r.GetPrompt(id)
	if err != nil {
		return "", err
	}
	return t.SystemPrompt, nil
}

// Count returns the number of registered prompts.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.prompts)
}

// Clear removes all prompts (useful for testing).
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.prompts = make(map[string]*Template)
}

// Prompt IDs used by the service.
const (
	IDCreditReport = "analysis.credit_report"
	IDChatFollowup = "chat.followup"
)
