package intent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"personal-assistant/internal/model"
	"personal-assistant/pkg/llmprovider"
)

// Resolve extracts a structured action from the latest user message.
//
// Resolution is total over model output: malformed JSON, an
// unrecognized tag, or a schema violation degrades to the unknown
// action instead of failing. Only a transport-level LLM failure
// returns an error.
func (r *implResolver) Resolve(ctx context.Context, message string, history []model.Turn) (Resolution, error) {
	prompt := fmt.Sprintf(PromptIntentTemplate, RenderHistoryBlock(history), message)

	resp, err := r.llm.GenerateContent(ctx, &llmprovider.Request{
		Messages:    []llmprovider.Message{{Role: "user", Content: prompt}},
		Temperature: IntentTemperature,
		MaxTokens:   MaxIntentTokens,
	})
	if err != nil {
		return Resolution{}, fmt.Errorf("%s: LLM call failed: %w", LogPrefixResolve, err)
	}

	text := stripCodeFences(resp.Text)
	if text == "" {
		r.l.Warnf(ctx, "%s: %s", LogPrefixResolve, ReasonEmptyResponse)
		return unknownResolution(ReasonEmptyResponse), nil
	}

	raw := firstJSONValue(text)

	if !json.Valid([]byte(raw)) {
		r.l.Warnf(ctx, "%s: %s: %q", LogPrefixResolve, ReasonNotJSON, truncate(text, 200))
		return unknownResolution(ReasonNotJSON), nil
	}

	resolution, err := decodeAction([]byte(raw))
	if err != nil {
		r.l.Warnf(ctx, "%s: %s: %v", LogPrefixResolve, ReasonSchemaMismatch, err)
		return unknownResolution(fmt.Sprintf("%s: %v", ReasonSchemaMismatch, err)), nil
	}

	r.l.Infof(ctx, "%s: resolved action=%s", LogPrefixResolve, resolution.Action)
	return resolution, nil
}

// RenderHistoryBlock renders history turns as "role: content" lines for
// prompt embedding, or the no-history sentinel when empty.
func RenderHistoryBlock(history []model.Turn) string {
	if len(history) == 0 {
		return NoHistoryText
	}
	lines := make([]string, 0, len(history))
	for _, turn := range history {
		lines = append(lines, fmt.Sprintf("%s: %s", turn.Role, turn.Content))
	}
	return strings.Join(lines, "\n")
}

// stripCodeFences removes a surrounding markdown code block if present
// (```json ... ``` or ``` ... ```).
func stripCodeFences(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimSuffix(text, "```")
		return strings.TrimSpace(text)
	}
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(text, "```")
		return strings.TrimSpace(text)
	}
	return text
}

// firstJSONValue returns the first balanced JSON object in text. Models
// occasionally emit several concatenated objects or trailing prose; the
// first complete object wins.
func firstJSONValue(text string) string {
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return text
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1]
			}
		}
	}
	return text[start:]
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
