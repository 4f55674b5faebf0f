package postgre

import (
	"context"

	"github.com/google/uuid"

	repo "personal-assistant/internal/conversation/repository"
	"personal-assistant/internal/model"
)

const defaultHistoryLimit = 5

// CreateEntry inserts a new history row and returns the created entry.
func (r *implRepository) CreateEntry(ctx context.Context, opt repo.CreateEntryOptions) (model.ConversationEntry, error) {
	const query = `
		INSERT INTO conversation_history (id, user_id, message, response, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, user_id, message, response, created_at`

	var entry model.ConversationEntry
	err := r.db.QueryRowContext(ctx, query, uuid.NewString(), opt.UserID, opt.Message, opt.Response).Scan(
		&entry.ID, &entry.UserID, &entry.Message, &entry.Response, &entry.CreatedAt,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateEntry"), err)
		return model.ConversationEntry{}, repo.ErrFailedToInsert
	}
	return entry, nil
}

// GetRecentTurns fetches the newest entries for a user and expands them
// into turns ordered oldest first.
func (r *implRepository) GetRecentTurns(ctx context.Context, opt repo.GetRecentTurnsOptions) ([]model.Turn, error) {
	limit := opt.Limit
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	const query = `
		SELECT id, user_id, message, response, created_at
		FROM conversation_history
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2`

	rows, err := r.db.QueryContext(ctx, query, opt.UserID, limit)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetRecentTurns"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var entries []model.ConversationEntry
	for rows.Next() {
		var e model.ConversationEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.Message, &e.Response, &e.CreatedAt); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("GetRecentTurns"), err)
			return nil, repo.ErrFailedToList
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("GetRecentTurns"), err)
		return nil, repo.ErrFailedToList
	}

	// Query returns newest first; prompts need oldest first.
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}

	return repo.RenderTurns(entries), nil
}
