package model

import "time"

// Role identifies who produced a conversation message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

// Message is a single conversation turn. Immutable once appended.
type Message struct {
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// SessionState is the full persisted form of a chat session.
// The backing file is overwritten with this snapshot on every mutation.
type SessionState struct {
	SessionID   string    `json:"session_id"`
	LastUpdated time.Time `json:"last_updated"`
	Messages    []Message `json:"messages"`
}
