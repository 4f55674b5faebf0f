package assistant

// ProcessInput is the single entry point payload.
type ProcessInput struct {
	Message string
}

// Outcome is the result of processing one message. Exactly one of
// Response or Error is set for a given exchange; Details elaborates on
// Error. HistoryError is annotated after the fact when persisting the
// exchange failed, without altering the rest of the outcome.
type Outcome struct {
	Response     string `json:"response,omitempty"`
	Error        string `json:"error,omitempty"`
	Details      string `json:"details,omitempty"`
	HistoryError string `json:"history_error,omitempty"`
}
