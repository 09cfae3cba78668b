package http

import (
	"time"

	"fish-classification-website/internal/chat"
)

// --- Request DTOs ---

type chatReq struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
}

func (r chatReq) validate() error {
	if r.Message == "" {
		return errNoMessage
	}
	return nil
}

func (r chatReq) toInput() chat.RespondInput {
	sessionID := r.SessionID
	if sessionID == "" {
		sessionID = chat.DefaultSessionID
	}
	return chat.RespondInput{
		SessionID: sessionID,
		Message:   r.Message,
	}
}

// ---

type clearReq struct {
	SessionID string `json:"session_id"`
}

func (r clearReq) sessionID() string {
	if r.SessionID == "" {
		return chat.DefaultSessionID
	}
	return r.SessionID
}

// --- Response DTOs ---

type messageResp struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

func newHistoryResp(out chat.HistoryOutput) []messageResp {
	history := make([]messageResp, len(out.Messages))
	for i, m := range out.Messages {
		history[i] = messageResp{
			Role:      string(m.Role),
			Content:   m.Content,
			Timestamp: m.Timestamp,
		}
	}
	return history
}
