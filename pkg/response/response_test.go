package response_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"fish-classification-website/pkg/response"
)

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}
	return body
}

func TestResponses(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("OK merges payload next to success", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.OK(c, gin.H{"response": "hello", "session_id": "default"})

		if w.Code != http.StatusOK {
			t.Errorf("expected %d but got %d", http.StatusOK, w.Code)
		}

		body := decodeBody(t, w)
		if body["success"] != true {
			t.Errorf("expected success true, got %v", body["success"])
		}
		if body["response"] != "hello" {
			t.Errorf("expected response 'hello', got %v", body["response"])
		}
		if body["session_id"] != "default" {
			t.Errorf("expected session_id 'default', got %v", body["session_id"])
		}
	})

	t.Run("OK with nil payload", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.OK(c, nil)

		body := decodeBody(t, w)
		if body["success"] != true {
			t.Errorf("expected success true, got %v", body["success"])
		}
	})

	t.Run("Error", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.Error(c, errors.New("no message provided"))

		if w.Code != http.StatusBadRequest {
			t.Errorf("expected %d, got %d", http.StatusBadRequest, w.Code)
		}

		body := decodeBody(t, w)
		if body["success"] != false {
			t.Errorf("expected success false, got %v", body["success"])
		}
		if body["error"] != "no message provided" {
			t.Errorf("unexpected error message: %v", body["error"])
		}
	})

	t.Run("InternalError", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.InternalError(c, errors.New("upstream down"))

		if w.Code != http.StatusInternalServerError {
			t.Errorf("expected 500, got %d", w.Code)
		}

		body := decodeBody(t, w)
		if body["success"] != false {
			t.Errorf("expected success false, got %v", body["success"])
		}
		if body["error"] != "upstream down" {
			t.Errorf("unexpected error message: %v", body["error"])
		}
	})

	t.Run("NotFound", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.NotFound(c)

		if w.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["error"] != response.MessageNotFound {
			t.Errorf("unexpected body: %v", body)
		}
	})

	t.Run("ServerError hides failure detail", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.ServerError(c)

		if w.Code != http.StatusInternalServerError {
			t.Errorf("expected 500, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["error"] != response.MessageServerError {
			t.Errorf("unexpected body: %v", body)
		}
	})
}
