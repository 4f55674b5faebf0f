package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"personal-assistant/internal/assistant"
	"personal-assistant/internal/assistant/intent"
	knowrepo "personal-assistant/internal/knowledge/repository"
)

func ragResolution(query string) intent.Resolution {
	return intent.Resolution{
		Action:   intent.ActionQueryRAG,
		RagQuery: &intent.RagQueryAction{Action: intent.ActionQueryRAG, Query: query},
	}
}

func TestHandleRagQuerySynthesizesFromResults(t *testing.T) {
	llm := &mockLLM{text: "The Q3 budget was 50k."}
	vector := &mockVectorRepo{results: []knowrepo.SearchResult{
		{Content: "Q3 budget set at 50k.", Source: "finance.pdf", Score: 0.92},
		{Content: "Budget approved in July.", Source: "", Score: 0.81},
	}}
	resolver := &mockResolver{resolution: ragResolution("what was the Q3 budget?")}
	uc := newTestUseCase(Options{LLM: llm, Resolver: resolver, VectorRepo: vector})

	outcome, err := uc.ProcessMessage(context.Background(), testScope(), assistant.ProcessInput{Message: "budget?"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome.Response != "The Q3 budget was 50k." {
		t.Errorf("response = %q", outcome.Response)
	}

	prompt := llm.lastReq.Messages[0].Content
	if !strings.Contains(prompt, "Source: finance.pdf\nContent: Q3 budget set at 50k.") {
		t.Error("prompt missing first document block")
	}
	if !strings.Contains(prompt, "Source: Unknown\nContent: Budget approved in July.") {
		t.Error("prompt missing fallback source label")
	}
	if !strings.Contains(prompt, `"what was the Q3 budget?"`) {
		t.Error("prompt missing the extracted query")
	}
	if llm.lastReq.MaxTokens != MaxSynthesisTokens {
		t.Errorf("MaxTokens = %d, want %d", llm.lastReq.MaxTokens, MaxSynthesisTokens)
	}
}

func TestHandleRagQueryNoResults(t *testing.T) {
	llm := &mockLLM{text: "I cannot find that in the knowledge base."}
	vector := &mockVectorRepo{}
	resolver := &mockResolver{resolution: ragResolution("anything about dragons?")}
	uc := newTestUseCase(Options{LLM: llm, Resolver: resolver, VectorRepo: vector})

	if _, err := uc.ProcessMessage(context.Background(), testScope(), assistant.ProcessInput{Message: "dragons?"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	prompt := llm.lastReq.Messages[0].Content
	if !strings.Contains(prompt, NoKnowledgeFoundContext) {
		t.Errorf("empty search must inject the no-results sentence, prompt: %q", prompt)
	}
}

func TestHandleRagQuerySearchFailure(t *testing.T) {
	vector := &mockVectorRepo{searchErr: errors.New("qdrant unreachable")}
	resolver := &mockResolver{resolution: ragResolution("q")}
	uc := newTestUseCase(Options{Resolver: resolver, VectorRepo: vector})

	outcome, err := uc.ProcessMessage(context.Background(), testScope(), assistant.ProcessInput{Message: "q"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome.Error != ErrMsgRAGFailed {
		t.Errorf("error = %q, want %q", outcome.Error, ErrMsgRAGFailed)
	}
	if !strings.Contains(outcome.Details, "qdrant unreachable") {
		t.Errorf("details = %q", outcome.Details)
	}
}

func TestHandleRagQuerySynthesisFailure(t *testing.T) {
	llm := &mockLLM{err: errors.New("all providers failed")}
	vector := &mockVectorRepo{results: []knowrepo.SearchResult{{Content: "doc", Source: "s"}}}
	resolver := &mockResolver{resolution: ragResolution("q")}
	uc := newTestUseCase(Options{LLM: llm, Resolver: resolver, VectorRepo: vector})

	outcome, err := uc.ProcessMessage(context.Background(), testScope(), assistant.ProcessInput{Message: "q"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome.Error != ErrMsgRAGFailed {
		t.Errorf("error = %q, want %q", outcome.Error, ErrMsgRAGFailed)
	}
}

func TestHandleRagQueryWithoutVectorStore(t *testing.T) {
	resolver := &mockResolver{resolution: ragResolution("q")}
	uc := newTestUseCase(Options{Resolver: resolver})

	outcome, err := uc.ProcessMessage(context.Background(), testScope(), assistant.ProcessInput{Message: "q"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome.Error != ErrMsgNoKnowledge {
		t.Errorf("error = %q, want %q", outcome.Error, ErrMsgNoKnowledge)
	}
}

func TestSerializeOutcome(t *testing.T) {
	tests := []struct {
		name    string
		outcome assistant.Outcome
		want    string
	}{
		{
			name:    "flat response stored verbatim",
			outcome: assistant.Outcome{Response: "Hello!"},
			want:    "Hello!",
		},
		{
			name:    "error outcome stored as JSON",
			outcome: assistant.Outcome{Error: "Failed to send email.", Details: "smtp down"},
			want:    `{"error":"Failed to send email.","details":"smtp down"}`,
		},
		{
			name:    "history annotation never persisted",
			outcome: assistant.Outcome{Error: "x", HistoryError: "save failed"},
			want:    `{"error":"x"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := serializeOutcome(tt.outcome); got != tt.want {
				t.Errorf("serializeOutcome = %q, want %q", got, tt.want)
			}
		})
	}
}
