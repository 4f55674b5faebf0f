package repository

import (
	"testing"

	"personal-assistant/internal/model"
)

func TestRenderResponse(t *testing.T) {
	tests := []struct {
		name   string
		stored string
		want   string
	}{
		{
			name:   "flat text returned verbatim",
			stored: "Hello there!",
			want:   "Hello there!",
		},
		{
			name:   "object with response field is unwrapped",
			stored: `{"response": "The weather is sunny."}`,
			want:   "The weather is sunny.",
		},
		{
			name:   "object without response field is re-serialized",
			stored: `{"error": "handler failed", "details": "timeout"}`,
			want:   `{"details":"timeout","error":"handler failed"}`,
		},
		{
			name:   "array is re-serialized",
			stored: `[1, 2, 3]`,
			want:   `[1,2,3]`,
		},
		{
			name:   "malformed JSON-looking text returned verbatim",
			stored: `{not valid json`,
			want:   `{not valid json`,
		},
		{
			name:   "leading whitespace before brace still parsed",
			stored: `  {"response": "ok"}`,
			want:   "ok",
		},
		{
			name:   "numeric response value is stringified",
			stored: `{"response": 42}`,
			want:   `42`,
		},
		{
			name:   "boolean response value is stringified",
			stored: `{"response": true}`,
			want:   `true`,
		},
		{
			name:   "nested response value is serialized compactly",
			stored: `{"response": {"text": "hi"}}`,
			want:   `{"text":"hi"}`,
		},
		{
			name:   "empty string",
			stored: "",
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RenderResponse(tt.stored)
			if got != tt.want {
				t.Errorf("RenderResponse(%q) = %q, want %q", tt.stored, got, tt.want)
			}
		})
	}
}

func TestRenderTurns(t *testing.T) {
	entries := []model.ConversationEntry{
		{Message: "first question", Response: "first answer"},
		{Message: "second question", Response: `{"response": "second answer"}`},
	}

	turns := RenderTurns(entries)
	if len(turns) != 4 {
		t.Fatalf("expected 4 turns, got %d", len(turns))
	}

	want := []model.Turn{
		{Role: model.RoleUser, Content: "first question"},
		{Role: model.RoleAssistant, Content: "first answer"},
		{Role: model.RoleUser, Content: "second question"},
		{Role: model.RoleAssistant, Content: "second answer"},
	}
	for i, w := range want {
		if turns[i] != w {
			t.Errorf("turn %d = %+v, want %+v", i, turns[i], w)
		}
	}
}

func TestRenderTurnsEmpty(t *testing.T) {
	turns := RenderTurns(nil)
	if len(turns) != 0 {
		t.Errorf("expected no turns for empty history, got %d", len(turns))
	}
}
