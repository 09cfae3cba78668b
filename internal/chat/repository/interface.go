package repository

import (
	"context"

	"fish-classification-website/internal/model"
)

//go:generate mockery --name Repository
type Repository interface {
	// Load returns the persisted state for a session id. A missing or
	// malformed backing file yields an empty state, never an error.
	Load(ctx context.Context, sessionID string) (model.SessionState, error)

	// Save overwrites the session's backing file with the given snapshot.
	Save(ctx context.Context, state model.SessionState) error
}
