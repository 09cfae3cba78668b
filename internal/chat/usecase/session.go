package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"fish-classification-website/internal/chat"
	"fish-classification-website/internal/model"
)

// session is the in-memory state of one conversation thread.
type session struct {
	mu       sync.Mutex
	id       string
	messages []model.Message
}

// getSession returns the live session for id, seeding it from the repository
// on first access. Sessions live for the process lifetime; clear empties them
// but never removes the map entry.
func (uc *implUseCase) getSession(ctx context.Context, id string) *session {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if s, ok := uc.sessions[id]; ok {
		return s
	}

	state, err := uc.repo.Load(ctx, id)
	if err != nil {
		uc.l.Warnf(ctx, "chat: load session %q: %v", id, err)
		state = model.SessionState{SessionID: id}
	}

	s := &session{id: id, messages: truncate(state.Messages, uc.cfg.MaxMessages)}
	uc.sessions[id] = s
	return s
}

// append adds a message and enforces the retention cap. Caller holds s.mu.
func (uc *implUseCase) append(s *session, role model.Role, content string) {
	s.messages = append(s.messages, model.Message{
		Role:      role,
		Content:   content,
		Timestamp: time.Now(),
	})
	s.messages = truncate(s.messages, uc.cfg.MaxMessages)
}

// persist writes the session's full state to disk. Caller holds s.mu.
func (uc *implUseCase) persist(ctx context.Context, s *session) error {
	state := model.SessionState{
		SessionID:   s.id,
		LastUpdated: time.Now(),
		Messages:    s.messages,
	}
	if err := uc.repo.Save(ctx, state); err != nil {
		uc.l.Errorf(ctx, "chat: persist session %q: %v", s.id, err)
		return fmt.Errorf("%w: %v", chat.ErrPersistence, err)
	}
	return nil
}

// truncate keeps the most recent max messages, preserving order.
func truncate(messages []model.Message, max int) []model.Message {
	if len(messages) > max {
		return messages[len(messages)-max:]
	}
	return messages
}
