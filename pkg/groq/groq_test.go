package groq

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	t.Run("missing api key", func(t *testing.T) {
		cfg := Config{}
		if err := cfg.Validate(); err == nil {
			t.Fatal("expected error for missing API key")
		}
	})

	t.Run("defaults filled", func(t *testing.T) {
		cfg := Config{APIKey: "test-key"}
		if err := cfg.Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Model != DefaultModel {
			t.Errorf("expected default model %s, got %s", DefaultModel, cfg.Model)
		}
		if cfg.BaseURL != DefaultBaseURL {
			t.Errorf("expected default base URL %s, got %s", DefaultBaseURL, cfg.BaseURL)
		}
		if cfg.HTTPClient == nil {
			t.Error("expected default HTTP client")
		}
	})
}

func TestCreateChatCompletion(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/chat/completions" {
				t.Errorf("unexpected path: %s", r.URL.Path)
			}
			if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
				t.Errorf("unexpected auth header: %s", got)
			}

			var req Request
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				t.Fatalf("decode request: %v", err)
			}
			if req.Model != DefaultModel {
				t.Errorf("expected model filled from client, got %q", req.Model)
			}
			if len(req.Messages) != 1 || req.Messages[0].Content != "hi" {
				t.Errorf("unexpected messages: %+v", req.Messages)
			}

			json.NewEncoder(w).Encode(Response{
				Model: DefaultModel,
				Choices: []Choice{
					{Message: Message{Role: "assistant", Content: "hello there"}},
				},
			})
		}))
		defer srv.Close()

		client, err := New(Config{APIKey: "test-key", BaseURL: srv.URL})
		if err != nil {
			t.Fatalf("New: %v", err)
		}

		resp, err := client.CreateChatCompletion(context.Background(), &Request{
			Messages: []Message{{Role: "user", Content: "hi"}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Text() != "hello there" {
			t.Errorf("expected 'hello there', got %q", resp.Text())
		}
	})

	t.Run("API error with structured body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":{"message":"invalid api key","type":"auth"}}`))
		}))
		defer srv.Close()

		client, err := New(Config{APIKey: "bad-key", BaseURL: srv.URL})
		if err != nil {
			t.Fatalf("New: %v", err)
		}

		_, err = client.CreateChatCompletion(context.Background(), &Request{
			Messages: []Message{{Role: "user", Content: "hi"}},
		})
		if err == nil {
			t.Fatal("expected error")
		}
		if !strings.Contains(err.Error(), "invalid api key") {
			t.Errorf("expected API error message in %q", err.Error())
		}
	})

	t.Run("context cancellation", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-r.Context().Done()
		}))
		defer srv.Close()

		client, err := New(Config{APIKey: "test-key", BaseURL: srv.URL})
		if err != nil {
			t.Fatalf("New: %v", err)
		}

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err = client.CreateChatCompletion(ctx, &Request{
			Messages: []Message{{Role: "user", Content: "hi"}},
		})
		if err == nil {
			t.Fatal("expected error for cancelled context")
		}
	})
}

func TestResponseText(t *testing.T) {
	var nilResp *Response
	if nilResp.Text() != "" {
		t.Error("expected empty text for nil response")
	}

	empty := &Response{}
	if empty.Text() != "" {
		t.Error("expected empty text for response without choices")
	}
}
