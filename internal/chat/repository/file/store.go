package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fish-classification-website/internal/chat/repository"
	"fish-classification-website/internal/model"
	"fish-classification-website/pkg/log"
)

type implRepository struct {
	dir string
	l   log.Logger
}

// New creates a file-backed session repository rooted at dir.
func New(dir string, l log.Logger) (repository.Repository, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("file repository: create data dir: %w", err)
	}
	return &implRepository{dir: dir, l: l}, nil
}

// Load reads the session's backing file. Missing or corrupt files are treated
// as empty history.
func (r *implRepository) Load(ctx context.Context, sessionID string) (model.SessionState, error) {
	empty := model.SessionState{SessionID: sessionID}

	data, err := os.ReadFile(r.path(sessionID))
	if err != nil {
		if !os.IsNotExist(err) {
			r.l.Warnf(ctx, "file repository: read session %q: %v", sessionID, err)
		}
		return empty, nil
	}

	var state model.SessionState
	if err := json.Unmarshal(data, &state); err != nil {
		r.l.Warnf(ctx, "file repository: malformed session file for %q, starting empty: %v", sessionID, err)
		return empty, nil
	}

	state.SessionID = sessionID
	return state, nil
}

// Save writes the full snapshot atomically: temp file in the same directory,
// then rename over the target.
func (r *implRepository) Save(ctx context.Context, state model.SessionState) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("file repository: marshal session %q: %w", state.SessionID, err)
	}

	target := r.path(state.SessionID)

	tmp, err := os.CreateTemp(r.dir, "session-*.tmp")
	if err != nil {
		return fmt.Errorf("file repository: create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("file repository: write session %q: %w", state.SessionID, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("file repository: close temp file: %w", err)
	}

	if err := os.Rename(tmpName, target); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("file repository: rename session %q: %w", state.SessionID, err)
	}

	return nil
}

func (r *implRepository) path(sessionID string) string {
	return filepath.Join(r.dir, "chat_history_"+sanitizeID(sessionID)+".json")
}

// sanitizeID keeps session-derived filenames inside the data dir. Anything
// outside [A-Za-z0-9_-] becomes an underscore.
func sanitizeID(sessionID string) string {
	if sessionID == "" {
		return "_"
	}
	var b strings.Builder
	b.Grow(len(sessionID))
	for _, c := range sessionID {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '_', c == '-':
			b.WriteRune(c)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}
