package chat

import "errors"

var (
	// ErrNotConfigured means no completion API credential is available.
	ErrNotConfigured = errors.New("chat is not configured: missing completion API credential")

	// ErrUpstream means the completion API call failed. The user message has
	// already been persisted when this is returned.
	ErrUpstream = errors.New("completion API call failed")

	// ErrPersistence means the session's backing file could not be written.
	ErrPersistence = errors.New("failed to persist chat history")
)
