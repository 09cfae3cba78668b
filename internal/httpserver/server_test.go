package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fish-classification-website/internal/chat"
	"fish-classification-website/internal/classify"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockChatUC struct{}

func (m *mockChatUC) Respond(ctx context.Context, input chat.RespondInput) (chat.RespondOutput, error) {
	return chat.RespondOutput{SessionID: input.SessionID, Reply: "ok"}, nil
}
func (m *mockChatUC) Clear(ctx context.Context, sessionID string) error { return nil }
func (m *mockChatUC) History(ctx context.Context, sessionID string) (chat.HistoryOutput, error) {
	return chat.HistoryOutput{SessionID: sessionID}, nil
}

type mockClassifyUC struct{}

func (m *mockClassifyUC) Classify(ctx context.Context, input classify.ClassifyInput) (classify.ClassifyOutput, error) {
	return classify.ClassifyOutput{Label: "Puti", Confidence: 0.8, Method: classify.MethodFallback}, nil
}

func newTestServer(t *testing.T) *HTTPServer {
	t.Helper()

	staticDir := t.TempDir()
	files := map[string]string{
		"index.html":                       "<html>index</html>",
		"about.html":                       "<html>about</html>",
		"fish-classification-website.html": "<html>blocked</html>",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(staticDir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}

	srv, err := New(&mockLogger{}, Config{
		Logger:          &mockLogger{},
		Port:            8080,
		Mode:            "test",
		Environment:     "development",
		StaticDir:       staticDir,
		BlockedAsset:    "fish-classification-website.html",
		UploadDir:       t.TempDir(),
		ChatUseCase:     &mockChatUC{},
		ClassifyUseCase: &mockClassifyUC{},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return srv
}

func get(t *testing.T, srv *HTTPServer, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	srv.gin.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)

	w := get(t, srv, "/health")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["status"] != "healthy" {
		t.Errorf("expected status 'healthy', got %v", body["status"])
	}
	if body["service"] != ServiceName {
		t.Errorf("expected service %q, got %v", ServiceName, body["service"])
	}
}

func TestStaticAssets(t *testing.T) {
	srv := newTestServer(t)

	t.Run("index", func(t *testing.T) {
		w := get(t, srv, "/")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "index") {
			t.Errorf("unexpected index body: %s", w.Body.String())
		}
	})

	t.Run("named page", func(t *testing.T) {
		w := get(t, srv, "/about.html")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "about") {
			t.Errorf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("blocked asset is 404 even though it exists", func(t *testing.T) {
		w := get(t, srv, "/fish-classification-website.html")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		var body map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("blocked response is not JSON: %v", err)
		}
	})

	t.Run("missing asset", func(t *testing.T) {
		w := get(t, srv, "/nope.html")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		var body map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("404 response is not JSON: %v", err)
		}
		if body["error"] != "Resource not found" {
			t.Errorf("unexpected 404 body: %v", body)
		}
	})

	t.Run("nested paths are rejected", func(t *testing.T) {
		w := get(t, srv, "/sub/dir.html")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestDomainRoutesWired(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{"message": "hi"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	srv.gin.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["session_id"] != "default" {
		t.Errorf("expected default session, got %v", body["session_id"])
	}
}

func TestValidate(t *testing.T) {
	_, err := New(&mockLogger{}, Config{
		Logger: &mockLogger{},
		Mode:   "test",
		Port:   8080,
	})
	if err == nil {
		t.Fatal("expected validation error for missing dependencies")
	}
}
