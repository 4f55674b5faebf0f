package model

// Scope carries the identity of the caller through a request.
type Scope struct {
	UserID    string // Stable identifier for the end user
	RequestID string // Per-request correlation ID
}
