package chat

import (
	"sync"
	"time"
)

// Turn is one exchange entry in a session transcript.
type Turn struct {
	Role      string    `json:"role"` // "user" or "assistant"
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// Session holds the follow-up conversation attached to one completed
// analysis. ReportContext is the serialized report the model answers from.
type Session struct {
	ID            string    `json:"id"`
	ReportContext string    `json:"-"`
	History       []Turn    `json:"history"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`

	mu sync.Mutex
}

func (s *Session) append(role, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	s.History = append(s.History, Turn{Role: role, Content: content, Timestamp: now})
	s.UpdatedAt = now
}

// Transcript returns a copy of the history safe for serialization.
func (s *Session) Transcript() []Turn {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Turn, len(s.History))
	copy(out, s.History)
	return out
}
