package qdrant

import (
	"fmt"

	"personal-assistant/internal/knowledge/repository"
	"personal-assistant/pkg/log"
	"personal-assistant/pkg/openai"
	"personal-assistant/pkg/qdrant"
)

type implRepository struct {
	client     *qdrant.Client
	embedder   openai.IOpenAI
	collection string
	l          log.Logger
}

// New creates a Qdrant-backed VectorRepository. The embedder is used to
// turn queries and documents into vectors before hitting Qdrant.
func New(client *qdrant.Client, embedder openai.IOpenAI, collection string, l log.Logger) repository.VectorRepository {
	if client == nil {
		panic("knowledge/repository/qdrant: client is required")
	}
	if embedder == nil {
		panic("knowledge/repository/qdrant: embedder is required")
	}
	if collection == "" {
		collection = "documents"
	}
	return &implRepository{
		client:     client,
		embedder:   embedder,
		collection: collection,
		l:          l,
	}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("knowledge/repository/qdrant.%s", method)
}
