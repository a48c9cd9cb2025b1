package chat

import (
	"encoding/json"
	"net/http"
	"strings"

	corechat "github.com/Vvijayaragupathy-uno/Aiccore-fcsa-sub000/pkg/core/chat"
	"github.com/Vvijayaragupathy-uno/Aiccore-fcsa-sub000/pkg/core/utils"
)

type StartRequest struct {
	ReportContext string `json:"reportContext"`
}

type StartResponse struct {
	SessionID string `json:"sessionId"`
}

type MessageRequest struct {
	SessionID string `json:"sessionId"`
	Message   string `json:"message"`
}

type MessageResponse struct {
	SessionID  string `json:"sessionId"`
	Answer     string `json:"answer"`
	AnswerHTML string `json:"answerHtml,omitempty"`
}

type HistoryResponse struct {
	SessionID string          `json:"sessionId"`
	History   []corechat.Turn `json:"history"`
}

// HandleStart opens a chat session around caller-supplied report context.
// The analyze endpoint opens sessions automatically; this exists for
// clients that restore a report from their own storage.
func HandleStart(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != "POST" {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req StartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.ReportContext) == "" {
		http.Error(w, "reportContext is required", http.StatusBadRequest)
		return
	}

	id := corechat.GetManager().StartSession(req.ReportContext)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(StartResponse{SessionID: id})
}

// HandleMessage answers one follow-up question inside an existing session.
func HandleMessage(w http.ResponseWriter, r *http.Request) {
	// CORS
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != "POST" {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req MessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	answer, err := corechat.GetManager().Ask(r.Context(), req.SessionID, req.Message)
	if err != nil {
		status := http.StatusBadRequest
		if strings.HasPrefix(err.Error(), "SESSION_NOT_FOUND") {
			status = http.StatusNotFound
		}
		http.Error(w, err.Error(), status)
		return
	}

	html, err := utils.RenderMarkdown(answer)
	if err != nil {
		html = ""
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(MessageResponse{SessionID: req.SessionID, Answer: answer, AnswerHTML: html})
}

// HandleHistory returns the transcript of a session.
func HandleHistory(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	id := r.URL.Query().Get("sessionId")
	if id == "" {
		http.Error(w, "sessionId query parameter required", http.StatusBadRequest)
		return
	}

	session, ok := corechat.GetManager().GetSession(id)
	if !ok {
		http.Error(w, "Session not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(HistoryResponse{SessionID: id, History: session.Transcript()})
}
