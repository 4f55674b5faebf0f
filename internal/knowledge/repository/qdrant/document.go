package qdrant

import (
	"context"

	"github.com/google/uuid"

	repo "personal-assistant/internal/knowledge/repository"
	"personal-assistant/pkg/qdrant"
)

const defaultSearchLimit = 3

// SearchDocuments embeds the query and runs a vector search.
func (r *implRepository) SearchDocuments(ctx context.Context, opt repo.SearchDocumentsOptions) ([]repo.SearchResult, error) {
	limit := opt.Limit
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	vectors, err := r.embedder.Embed(ctx, []string{opt.Query})
	if err != nil {
		r.l.Errorf(ctx, "%s embed: %v", r.dsn("SearchDocuments"), err)
		return nil, repo.ErrFailedToEmbed
	}
	if len(vectors) == 0 {
		return nil, repo.ErrFailedToEmbed
	}

	resp, err := r.client.SearchPoints(ctx, r.collection, qdrant.SearchRequest{
		Vector:      vectors[0],
		Limit:       limit,
		WithPayload: true,
	})
	if err != nil {
		r.l.Errorf(ctx, "%s search: %v", r.dsn("SearchDocuments"), err)
		return nil, repo.ErrFailedToSearch
	}

	results := make([]repo.SearchResult, 0, len(resp.Result))
	for _, point := range resp.Result {
		results = append(results, repo.SearchResult{
			Content: payloadString(point.Payload, "content"),
			Source:  payloadString(point.Payload, "source"),
			Score:   point.Score,
		})
	}
	return results, nil
}

// IndexDocument embeds the content and upserts it as a new point.
func (r *implRepository) IndexDocument(ctx context.Context, opt repo.IndexDocumentOptions) error {
	vectors, err := r.embedder.Embed(ctx, []string{opt.Content})
	if err != nil {
		r.l.Errorf(ctx, "%s embed: %v", r.dsn("IndexDocument"), err)
		return repo.ErrFailedToEmbed
	}
	if len(vectors) == 0 {
		return repo.ErrFailedToEmbed
	}

	err = r.client.UpsertPoints(ctx, r.collection, qdrant.UpsertPointsRequest{
		Points: []qdrant.Point{
			{
				ID:     uuid.NewString(),
				Vector: vectors[0],
				Payload: map[string]interface{}{
					"content": opt.Content,
					"source":  opt.Source,
				},
			},
		},
	})
	if err != nil {
		r.l.Errorf(ctx, "%s upsert: %v", r.dsn("IndexDocument"), err)
		return repo.ErrFailedToIndex
	}
	return nil
}

func payloadString(payload map[string]interface{}, key string) string {
	if v, ok := payload[key].(string); ok {
		return v
	}
	return ""
}
