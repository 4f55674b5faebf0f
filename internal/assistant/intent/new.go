package intent

import (
	"context"

	"personal-assistant/internal/model"
	"personal-assistant/pkg/llmprovider"
	"personal-assistant/pkg/log"
)

// LLM is the generation surface the resolver needs. Satisfied by
// *llmprovider.Manager.
type LLM interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// Resolver turns a user message plus history into a validated action.
type Resolver interface {
	Resolve(ctx context.Context, message string, history []model.Turn) (Resolution, error)
}

type implResolver struct {
	llm LLM
	l   log.Logger
}

var _ Resolver = (*implResolver)(nil)

// New creates a new intent Resolver backed by the given LLM.
func New(llm LLM, l log.Logger) Resolver {
	if llm == nil {
		panic("assistant/intent: llm is required")
	}
	return &implResolver{llm: llm, l: l}
}
