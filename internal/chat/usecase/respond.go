package usecase

import (
	"context"
	"fmt"

	"fish-classification-website/internal/chat"
	"fish-classification-website/internal/model"
	"fish-classification-website/pkg/groq"
)

// Respond runs the full chat turn under the session lock:
// append user message → persist → completion call → append reply → persist.
func (uc *implUseCase) Respond(ctx context.Context, input chat.RespondInput) (chat.RespondOutput, error) {
	s := uc.getSession(ctx, input.SessionID)
	s.mu.Lock()
	defer s.mu.Unlock()

	// The user message is durably recorded before the remote call, so an
	// upstream failure never loses it.
	uc.append(s, model.RoleUser, input.Message)
	if err := uc.persist(ctx, s); err != nil {
		return chat.RespondOutput{}, err
	}

	if uc.llm == nil {
		return chat.RespondOutput{}, chat.ErrNotConfigured
	}

	callCtx, cancel := context.WithTimeout(ctx, uc.cfg.Timeout)
	defer cancel()

	resp, err := uc.llm.CreateChatCompletion(callCtx, &groq.Request{
		Messages:    toWireMessages(s.messages),
		Temperature: uc.cfg.Temperature,
		MaxTokens:   uc.cfg.MaxTokens,
	})
	if err != nil {
		uc.l.Errorf(ctx, "chat: completion call for session %q: %v", s.id, err)
		return chat.RespondOutput{}, fmt.Errorf("%w: %v", chat.ErrUpstream, err)
	}

	reply := resp.Text()
	if reply == "" {
		uc.l.Warnf(ctx, "chat: empty completion for session %q", s.id)
		return chat.RespondOutput{}, fmt.Errorf("%w: empty completion", chat.ErrUpstream)
	}

	uc.append(s, model.RoleAssistant, reply)
	if err := uc.persist(ctx, s); err != nil {
		return chat.RespondOutput{}, err
	}

	return chat.RespondOutput{SessionID: input.SessionID, Reply: reply}, nil
}

// toWireMessages maps the retained history to the completion API format.
func toWireMessages(messages []model.Message) []groq.Message {
	wire := make([]groq.Message, len(messages))
	for i, m := range messages {
		wire[i] = groq.Message{Role: string(m.Role), Content: m.Content}
	}
	return wire
}
