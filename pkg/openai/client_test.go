package openai_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"checkey/pkg/openai"
)

func TestComplete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/chat/completions" {
				t.Errorf("unexpected path %s", r.URL.Path)
			}
			if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
				t.Errorf("unexpected auth header %q", got)
			}

			var req openai.ChatRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				t.Fatalf("decode request: %v", err)
			}
			if len(req.Messages) != 2 || req.Messages[0].Role != "system" || req.Messages[1].Role != "user" {
				t.Errorf("unexpected messages: %+v", req.Messages)
			}
			if req.ResponseFormat == nil || req.ResponseFormat.Type != "json_object" {
				t.Errorf("expected json_object response format, got %+v", req.ResponseFormat)
			}

			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"  {\"type\":\"task\"}  "}}]}`))
		}))
		defer ts.Close()

		client := openai.NewClient("test-key")
		client.SetAPIURL(ts.URL)

		content, err := client.Complete(context.Background(), "system prompt", "user text")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if content != `{"type":"task"}` {
			t.Errorf("content not trimmed: %q", content)
		}
	})

	t.Run("api error", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer ts.Close()

		client := openai.NewClient("test-key")
		client.SetAPIURL(ts.URL)

		if _, err := client.Complete(context.Background(), "s", "u"); err == nil {
			t.Error("expected error on 500")
		}
	})

	t.Run("empty choices", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"choices":[]}`))
		}))
		defer ts.Close()

		client := openai.NewClient("test-key")
		client.SetAPIURL(ts.URL)

		if _, err := client.Complete(context.Background(), "s", "u"); err == nil {
			t.Error("expected error on empty choices")
		}
	})
}
