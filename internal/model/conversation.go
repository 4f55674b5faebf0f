package model

import "time"

// Role identifies the author of a conversation turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is a single utterance in a conversation, ordered oldest first
// when returned as part of a history window.
type Turn struct {
	Role    Role
	Content string
}

// ConversationEntry is one persisted request/response exchange.
// Each entry expands to two turns: the user message and the
// assistant response.
type ConversationEntry struct {
	ID        string // UUID assigned at insert time
	UserID    string
	Message   string // Raw user message as received
	Response  string // Serialized assistant response
	CreatedAt time.Time
}
