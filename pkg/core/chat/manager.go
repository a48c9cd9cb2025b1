package chat

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/Vvijayaragupathy-uno/Aiccore-fcsa-sub000/pkg/core/agent"
	"github.com/Vvijayaragupathy-uno/Aiccore-fcsa-sub000/pkg/core/prompt"
	"github.com/Vvijayaragupathy-uno/Aiccore-fcsa-sub000/pkg/core/utils"

	"github.com/google/uuid"
)

const (
	// askTimeout bounds one model round trip for a follow-up question.
	askTimeout = 30 * time.Second
	// sessionTTL is how long an idle session survives before cleanup.
	sessionTTL = 24 * time.Hour
	// promptHistoryWindow caps how many prior turns ride along in the prompt.
	promptHistoryWindow = 10
)

// AgentChatAssistant is the agent routing key for follow-up answers.
const AgentChatAssistant = "chat_assistant"

// Manager is a singleton that owns all active chat sessions.
type Manager struct {
	sessions     map[string]*Session
	agentManager *agent.Manager
	mu           sync.RWMutex
}

var (
	instance *Manager
	once     sync.Once
)

// GetManager returns the singleton instance of Manager.
func GetManager() *Manager {
	once.Do(func() {
		instance = &Manager{
			sessions: make(map[string]*Session),
		}
		go instance.cleanup()
	})
	return instance
}

// SetAgentManager injects the global agent manager.
func (m *Manager) SetAgentManager(mgr *agent.Manager) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.agentManager = mgr
}

// StartSession opens a follow-up conversation around a completed analysis.
// reportContext is the serialized report the assistant answers from.
func (m *Manager) StartSession(reportContext string) string {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := uuid.New().String()
	now := time.Now()
	m.sessions[id] = &Session{
		ID:            id,
		ReportContext: reportContext,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	return id
}

// GetSession retrieves an existing session by ID.
func (m *Manager) GetSession(id string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, exists := m.sessions[id]
	return s, exists
}

// Ask records the question, asks the model, records and returns the answer.
// Model failures degrade to a locally built answer rather than an error.
func (m *Manager) Ask(ctx context.Context, sessionID, question string) (string, error) {
	session, exists := m.GetSession(sessionID)
	if !exists {
		return "", fmt.Errorf("SESSION_NOT_FOUND: no session with id %s", sessionID)
	}
	question = strings.TrimSpace(question)
	if question == "" {
		return "", fmt.Errorf("EMPTY_QUESTION: question must not be blank")
	}

	session.append("user", question)

	answer, err := m.askModel(ctx, session, question)
	if err != nil {
		fmt.Printf("[WARNING] Chat answer degraded to local fallback: %v\n", err)
		answer = fallbackAnswer(question)
	}

	session.append("assistant", answer)
	return answer, nil
}

func (m *Manager) askModel(ctx context.Context, session *Session, question string) (string, error) {
	m.mu.RLock()
	mgr := m.agentManager
	m.mu.RUnlock()
	if mgr == nil {
		return "", fmt.Errorf("AGENT_MANAGER_UNSET: chat manager has no provider")
	}

	systemPrompt, err := prompt.Get().GetSystemPrompt(prompt.IDChatFollowup)
	if err != nil {
		return "", fmt.Errorf("PROMPT_LOOKUP_ERROR: %w", err)
	}

	userPrompt := buildPrompt(session, question)

	callCtx, cancel := context.WithTimeout(ctx, askTimeout)
	defer cancel()

	answer, err := mgr.ExecutePrompt(callCtx, AgentChatAssistant, userPrompt, systemPrompt, nil)
	if err != nil {
		// Second attempt over the dedicated Gemini path before giving up.
		if direct, derr := askGeminiDirect(callCtx, systemPrompt, userPrompt); derr == nil {
			return direct, nil
		}
		return "", err
	}
	answer = utils.CleanNarrative(answer)
	if answer == "" {
		return "", fmt.Errorf("EMPTY_ANSWER: model returned no content")
	}
	return answer, nil
}

// buildPrompt assembles report context, a bounded history window, and the
// new question into one prompt body.
func buildPrompt(session *Session, question string) string {
	var b strings.Builder

	b.WriteString("Completed credit analysis:\n")
	b.WriteString(session.ReportContext)
	b.WriteString("\n\n")

	history := session.Transcript()
	// Drop the just-appended user turn; the question rides separately.
	if len(history) > 0 && history[len(history)-1].Role == "user" {
		history = history[:len(history)-1]
	}
	if len(history) > promptHistoryWindow {
		history = history[len(history)-promptHistoryWindow:]
	}
	if len(history) > 0 {
		b.WriteString("Conversation so far:\n")
		for _, turn := range history {
			b.WriteString(fmt.Sprintf("%s: %s\n", turn.Role, turn.Content))
		}
		b.WriteString("\n")
	}

	b.WriteString("Question: " + question)
	return b.String()
}

func fallbackAnswer(question string) string {
	return fmt.Sprintf("I could not reach the analysis model to answer %q right now. "+
		"The completed report above still reflects the extracted statement data; "+
		"please retry your question in a moment.", question)
}

// cleanup removes sessions idle longer than sessionTTL.
func (m *Manager) cleanup() {
	ticker := time.NewTicker(1 * time.Hour)
	for range ticker.C {
		m.mu.Lock()
		for id, s := range m.sessions {
			if time.Since(s.UpdatedAt) > sessionTTL {
				delete(m.sessions, id)
			}
		}
		m.mu.Unlock()
	}
}
