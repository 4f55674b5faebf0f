package repository

import "context"

// VectorRepository is the semantic search store for the knowledge base.
type VectorRepository interface {
	// SearchDocuments embeds the query and returns the closest documents,
	// most relevant first. An empty result is not an error.
	SearchDocuments(ctx context.Context, opt SearchDocumentsOptions) ([]SearchResult, error)

	// IndexDocument embeds and upserts a document into the knowledge base.
	IndexDocument(ctx context.Context, opt IndexDocumentOptions) error
}
