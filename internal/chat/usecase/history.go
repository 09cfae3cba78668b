package usecase

import (
	"context"

	"fish-classification-website/internal/chat"
	"fish-classification-website/internal/model"
)

// Clear empties the session's message log and persists the empty snapshot.
// The backing file is overwritten, not deleted.
func (uc *implUseCase) Clear(ctx context.Context, sessionID string) error {
	s := uc.getSession(ctx, sessionID)
	s.mu.Lock()
	defer s.mu.Unlock()

	s.messages = nil
	if err := uc.persist(ctx, s); err != nil {
		return err
	}

	uc.l.Infof(ctx, "chat: history cleared for session %q", sessionID)
	return nil
}

// History returns the retained messages with system-role entries filtered
// out, preserving the order of the rest.
func (uc *implUseCase) History(ctx context.Context, sessionID string) (chat.HistoryOutput, error) {
	s := uc.getSession(ctx, sessionID)
	s.mu.Lock()
	defer s.mu.Unlock()

	visible := make([]model.Message, 0, len(s.messages))
	for _, m := range s.messages {
		if m.Role == model.RoleSystem {
			continue
		}
		visible = append(visible, m)
	}

	return chat.HistoryOutput{SessionID: sessionID, Messages: visible}, nil
}
