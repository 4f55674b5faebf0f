package repository

// CreateEntryOptions holds parameters for appending a history entry.
type CreateEntryOptions struct {
	UserID   string
	Message  string
	Response string
}

// GetRecentTurnsOptions holds parameters for fetching a history window.
type GetRecentTurnsOptions struct {
	UserID string
	Limit  int // Max entries (not turns); defaults to 5 when <= 0
}
