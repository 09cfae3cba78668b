package chat

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Respond appends the user message, persists it, asks the completion API
	// for a reply with the full retained history as context, and persists the
	// assistant reply. A failed completion call leaves only the user message
	// recorded and returns ErrUpstream.
	Respond(ctx context.Context, input RespondInput) (RespondOutput, error)

	// Clear empties the session's message log and persists the empty state.
	Clear(ctx context.Context, sessionID string) error

	// History returns the session's retained messages with system-role
	// entries filtered out.
	History(ctx context.Context, sessionID string) (HistoryOutput, error)
}
