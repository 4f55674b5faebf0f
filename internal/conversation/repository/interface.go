package repository

import (
	"context"

	"personal-assistant/internal/model"
)

// Repository is the data store for conversation history.
type Repository interface {
	// CreateEntry appends one request/response exchange to the user's
	// history and returns the persisted entry.
	CreateEntry(ctx context.Context, opt CreateEntryOptions) (model.ConversationEntry, error)

	// GetRecentTurns returns the most recent exchanges for a user,
	// expanded into turns ordered oldest first. Each stored entry
	// yields a user turn and an assistant turn.
	GetRecentTurns(ctx context.Context, opt GetRecentTurnsOptions) ([]model.Turn, error)
}
