package usecase

import (
	"encoding/json"

	"personal-assistant/internal/assistant"
)

// serializeOutcome produces the text persisted as the assistant's
// response. A plain conversational reply is stored verbatim; anything
// carrying error details is stored as the full JSON object so history
// rendering can unwrap or surface it later.
func serializeOutcome(outcome assistant.Outcome) string {
	if outcome.Error == "" && outcome.Response != "" {
		return outcome.Response
	}

	// HistoryError is set after persistence; it never makes it into
	// the stored copy.
	outcome.HistoryError = ""

	data, err := json.Marshal(outcome)
	if err != nil {
		return outcome.Response
	}
	return string(data)
}
