package anthropic_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"personal-assistant/pkg/anthropic"
)

func TestGenerateContent(t *testing.T) {
	var gotReq map[string]interface{}

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/messages" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.Header.Get("x-api-key") != "test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error": {"type": "authentication_error", "message": "invalid x-api-key"}}`))
			return
		}
		if r.Header.Get("anthropic-version") == "" {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error": {"type": "invalid_request_error", "message": "anthropic-version header is required"}}`))
			return
		}

		json.NewDecoder(r.Body).Decode(&gotReq)

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"id": "msg_01",
			"model": "claude-3-5-haiku-latest",
			"content": [
				{"type": "text", "text": "{\"action\": \"general_chat\", "},
				{"type": "text", "text": "\"response\": \"Hello!\"}"}
			],
			"stop_reason": "end_turn",
			"usage": {"input_tokens": 42, "output_tokens": 17}
		}`))
	}))
	defer ts.Close()

	client, err := anthropic.New(anthropic.Config{
		APIKey:  "test-key",
		BaseURL: ts.URL,
	})
	if err != nil {
		t.Fatalf("unexpected error creating client: %v", err)
	}

	resp, err := client.GenerateContent(context.Background(), &anthropic.Request{
		Messages:    []anthropic.Message{{Role: "user", Content: "Hi"}},
		Temperature: 0.1,
		MaxTokens:   500,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Text blocks are concatenated in order
	want := `{"action": "general_chat", "response": "Hello!"}`
	if resp.Text != want {
		t.Errorf("text = %q, want %q", resp.Text, want)
	}
	if resp.StopReason != "end_turn" {
		t.Errorf("stop reason = %q", resp.StopReason)
	}
	if resp.Usage.InputTokens != 42 || resp.Usage.OutputTokens != 17 {
		t.Errorf("usage = %+v", resp.Usage)
	}

	if gotReq["model"] != "claude-3-5-haiku-latest" {
		t.Errorf("request model = %v", gotReq["model"])
	}
	if gotReq["max_tokens"] != float64(500) {
		t.Errorf("request max_tokens = %v", gotReq["max_tokens"])
	}
	if gotReq["temperature"] != 0.1 {
		t.Errorf("request temperature = %v", gotReq["temperature"])
	}
}

func TestGenerateContent_DefaultMaxTokens(t *testing.T) {
	var gotReq map[string]interface{}

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotReq)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"content": [{"type": "text", "text": "ok"}], "stop_reason": "end_turn", "usage": {}}`))
	}))
	defer ts.Close()

	client, _ := anthropic.New(anthropic.Config{APIKey: "test-key", BaseURL: ts.URL})

	if _, err := client.GenerateContent(context.Background(), &anthropic.Request{
		Messages: []anthropic.Message{{Role: "user", Content: "Hi"}},
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotReq["max_tokens"] != float64(anthropic.DefaultMaxTokens) {
		t.Errorf("request max_tokens = %v, want default %d", gotReq["max_tokens"], anthropic.DefaultMaxTokens)
	}
	if _, ok := gotReq["temperature"]; ok {
		t.Error("temperature must be omitted when unset")
	}
}

func TestGenerateContent_APIError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error": {"type": "rate_limit_error", "message": "rate limit exceeded"}}`))
	}))
	defer ts.Close()

	client, _ := anthropic.New(anthropic.Config{APIKey: "test-key", BaseURL: ts.URL})

	_, err := client.GenerateContent(context.Background(), &anthropic.Request{
		Messages: []anthropic.Message{{Role: "user", Content: "Hi"}},
	})
	if err == nil {
		t.Fatal("expected error on 429")
	}
}

func TestNew_RequiresAPIKey(t *testing.T) {
	if _, err := anthropic.New(anthropic.Config{}); err == nil {
		t.Fatal("expected error when API key is missing")
	}
}

func TestModel(t *testing.T) {
	client, err := anthropic.New(anthropic.Config{APIKey: "test-key"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.Model() != anthropic.DefaultModel {
		t.Errorf("model = %q, want default %q", client.Model(), anthropic.DefaultModel)
	}
}
