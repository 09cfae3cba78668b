package usecase

import (
	"sync"
	"time"

	"fish-classification-website/internal/chat"
	"fish-classification-website/internal/chat/repository"
	"fish-classification-website/pkg/groq"
	"fish-classification-website/pkg/log"
)

// Config tunes the completion calls and history retention.
type Config struct {
	Temperature float64
	MaxTokens   int
	MaxMessages int
	Timeout     time.Duration
}

// implUseCase is the private implementation of chat.UseCase.
// It owns the session map; each session carries its own lock so the
// append → persist → call → append → persist sequence never interleaves
// between concurrent requests to the same session.
type implUseCase struct {
	repo repository.Repository
	llm  groq.IGroq // nil when no API credential is configured
	l    log.Logger
	cfg  Config

	mu       sync.Mutex
	sessions map[string]*session
}

var _ chat.UseCase = (*implUseCase)(nil)

// New creates a new chat UseCase implementation. llm may be nil; chat
// requests then fail with chat.ErrNotConfigured instead of crashing startup.
func New(repo repository.Repository, llm groq.IGroq, l log.Logger, cfg Config) *implUseCase {
	if cfg.Temperature == 0 {
		cfg.Temperature = 0.7
	}
	if cfg.MaxTokens == 0 {
		cfg.MaxTokens = 1024
	}
	if cfg.MaxMessages <= 0 {
		cfg.MaxMessages = chat.DefaultMaxMessages
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	return &implUseCase{
		repo:     repo,
		llm:      llm,
		l:        l,
		cfg:      cfg,
		sessions: make(map[string]*session),
	}
}
