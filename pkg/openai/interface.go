package openai

import "context"

// IOpenAI defines the interface for the OpenAI API client
type IOpenAI interface {
	// GenerateContent sends a chat completion request
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Embed generates embedding vectors for the given texts
	Embed(ctx context.Context, texts []string) ([][]float32, error)

	// Model returns the chat model being used
	Model() string
}
