package openai_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"personal-assistant/pkg/openai"
)

func newTestServer(t *testing.T) (*httptest.Server, *map[string]interface{}) {
	t.Helper()
	var gotReq map[string]interface{}

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error": {"message": "invalid api key", "type": "invalid_request_error"}}`))
			return
		}

		json.NewDecoder(r.Body).Decode(&gotReq)

		switch r.URL.Path {
		case "/chat/completions":
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{
				"id": "chatcmpl-1",
				"model": "gpt-4",
				"choices": [
					{"index": 0, "message": {"role": "assistant", "content": "Hello!"}, "finish_reason": "stop"}
				],
				"usage": {"prompt_tokens": 12, "completion_tokens": 3, "total_tokens": 15}
			}`))
		case "/embeddings":
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{
				"object": "list",
				"data": [
					{"object": "embedding", "embedding": [0.1, 0.2, 0.3], "index": 0},
					{"object": "embedding", "embedding": [0.4, 0.5, 0.6], "index": 1}
				],
				"model": "text-embedding-3-small",
				"usage": {"prompt_tokens": 8, "total_tokens": 8}
			}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))

	return ts, &gotReq
}

func TestGenerateContent(t *testing.T) {
	ts, gotReq := newTestServer(t)
	defer ts.Close()

	client, err := openai.New(openai.Config{APIKey: "test-key", BaseURL: ts.URL})
	if err != nil {
		t.Fatalf("unexpected error creating client: %v", err)
	}

	resp, err := client.GenerateContent(context.Background(), &openai.Request{
		Messages: []openai.ChatMessage{
			{Role: "system", Content: "You are helpful."},
			{Role: "user", Content: "Hi"},
		},
		MaxTokens: 500,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(resp.Choices) != 1 {
		t.Fatalf("expected 1 choice, got %d", len(resp.Choices))
	}
	if resp.Choices[0].Message.Content != "Hello!" {
		t.Errorf("content = %q", resp.Choices[0].Message.Content)
	}
	if resp.Usage.TotalTokens != 15 {
		t.Errorf("total tokens = %d", resp.Usage.TotalTokens)
	}

	// Default chat model is injected when the request leaves it empty
	if (*gotReq)["model"] != openai.DefaultModel {
		t.Errorf("request model = %v, want %q", (*gotReq)["model"], openai.DefaultModel)
	}
	if (*gotReq)["max_tokens"] != float64(500) {
		t.Errorf("request max_tokens = %v", (*gotReq)["max_tokens"])
	}
}

func TestEmbed(t *testing.T) {
	ts, gotReq := newTestServer(t)
	defer ts.Close()

	client, err := openai.New(openai.Config{APIKey: "test-key", BaseURL: ts.URL})
	if err != nil {
		t.Fatalf("unexpected error creating client: %v", err)
	}

	vectors, err := client.Embed(context.Background(), []string{"first", "second"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(vectors) != 2 {
		t.Fatalf("expected 2 vectors, got %d", len(vectors))
	}
	if len(vectors[0]) != 3 || vectors[0][0] != 0.1 {
		t.Errorf("first vector = %v", vectors[0])
	}
	if vectors[1][2] != 0.6 {
		t.Errorf("second vector = %v", vectors[1])
	}

	if (*gotReq)["model"] != openai.DefaultEmbeddingModel {
		t.Errorf("embedding model = %v, want %q", (*gotReq)["model"], openai.DefaultEmbeddingModel)
	}
}

func TestEmbed_EmptyInput(t *testing.T) {
	client, err := openai.New(openai.Config{APIKey: "test-key"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := client.Embed(context.Background(), nil); err == nil {
		t.Fatal("expected error for empty input")
	}
}

func TestGenerateContent_APIError(t *testing.T) {
	ts, _ := newTestServer(t)
	defer ts.Close()

	client, err := openai.New(openai.Config{APIKey: "wrong-key", BaseURL: ts.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = client.GenerateContent(context.Background(), &openai.Request{
		Messages: []openai.ChatMessage{{Role: "user", Content: "Hi"}},
	})
	if err == nil {
		t.Fatal("expected error on 401")
	}
}

func TestNew_RequiresAPIKey(t *testing.T) {
	if _, err := openai.New(openai.Config{}); err == nil {
		t.Fatal("expected error when API key is missing")
	}
}
