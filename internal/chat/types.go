package chat

import "fish-classification-website/internal/model"

// DefaultSessionID is used when a request does not name a session.
const DefaultSessionID = "default"

// DefaultMaxMessages caps the retained history per session. Appends beyond
// the cap evict the oldest entries first; this also bounds the context window
// sent to the completion API.
const DefaultMaxMessages = 20

// --- UseCase Inputs ---

type RespondInput struct {
	SessionID string
	Message   string
}

// --- UseCase Outputs ---

type RespondOutput struct {
	SessionID string
	Reply     string
}

type HistoryOutput struct {
	SessionID string
	Messages  []model.Message
}
