package repository

import (
	"encoding/json"
	"strings"

	"personal-assistant/internal/model"
)

// RenderTurns expands stored entries (oldest first) into conversation
// turns suitable for prompt context.
func RenderTurns(entries []model.ConversationEntry) []model.Turn {
	turns := make([]model.Turn, 0, len(entries)*2)
	for _, e := range entries {
		turns = append(turns,
			model.Turn{Role: model.RoleUser, Content: e.Message},
			model.Turn{Role: model.RoleAssistant, Content: RenderResponse(e.Response)},
		)
	}
	return turns
}

// RenderResponse converts a stored assistant response into display text.
//
// Responses are persisted as either flat text or a serialized JSON
// object. A JSON object carrying a "response" field is unwrapped to
// that field's value; any other JSON value is re-serialized compactly.
// Text that merely looks like JSON but fails to parse is returned
// verbatim.
func RenderResponse(stored string) string {
	trimmed := strings.TrimSpace(stored)
	if !strings.HasPrefix(trimmed, "{") && !strings.HasPrefix(trimmed, "[") {
		return stored
	}

	var parsed interface{}
	if err := json.Unmarshal([]byte(trimmed), &parsed); err != nil {
		return stored
	}

	if obj, ok := parsed.(map[string]interface{}); ok {
		if resp, ok := obj["response"]; ok {
			if s, ok := resp.(string); ok {
				return s
			}
			// Non-string response values are still unwrapped, as their
			// compact serialization.
			if out, err := json.Marshal(resp); err == nil {
				return string(out)
			}
		}
	}

	out, err := json.Marshal(parsed)
	if err != nil {
		return stored
	}
	return string(out)
}
