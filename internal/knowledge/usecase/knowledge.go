package usecase

import (
	"context"
	"strings"

	"personal-assistant/internal/knowledge"
	"personal-assistant/internal/knowledge/repository"
)

const (
	defaultQueryK = 4

	// Chunking bounds for ingested text.
	chunkSize    = 1000
	chunkOverlap = 150
)

// Query runs a semantic search against the knowledge base.
func (uc *implUseCase) Query(ctx context.Context, ip knowledge.QueryInput) (knowledge.QueryOutput, error) {
	if strings.TrimSpace(ip.Query) == "" {
		return knowledge.QueryOutput{}, knowledge.ErrEmptyQuery
	}

	k := ip.K
	if k <= 0 {
		k = defaultQueryK
	}

	results, err := uc.repo.SearchDocuments(ctx, repository.SearchDocumentsOptions{
		Query: ip.Query,
		Limit: k,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.knowledge.usecase.Query: %v", err)
		return knowledge.QueryOutput{}, err
	}

	out := knowledge.QueryOutput{Results: make([]knowledge.QueryResult, 0, len(results))}
	for _, r := range results {
		out.Results = append(out.Results, knowledge.QueryResult{
			Content: r.Content,
			Source:  r.Source,
			Score:   r.Score,
		})
	}
	return out, nil
}

// AddText splits the text into overlapping chunks and indexes each one.
func (uc *implUseCase) AddText(ctx context.Context, ip knowledge.AddTextInput) (knowledge.AddTextOutput, error) {
	if strings.TrimSpace(ip.Text) == "" {
		return knowledge.AddTextOutput{}, knowledge.ErrEmptyText
	}

	chunks := chunkText(ip.Text, chunkSize, chunkOverlap)
	for _, chunk := range chunks {
		err := uc.repo.IndexDocument(ctx, repository.IndexDocumentOptions{
			Content: chunk,
			Source:  ip.Source,
		})
		if err != nil {
			uc.l.Errorf(ctx, "internal.knowledge.usecase.AddText: %v", err)
			return knowledge.AddTextOutput{}, err
		}
	}

	return knowledge.AddTextOutput{ChunksAdded: len(chunks)}, nil
}

// chunkText splits text into chunks of at most size runes, overlapping
// by overlap runes. Prefers breaking at whitespace near the boundary.
func chunkText(text string, size, overlap int) []string {
	runes := []rune(text)
	if len(runes) <= size {
		return []string{text}
	}

	var chunks []string
	step := size - overlap
	for start := 0; start < len(runes); start += step {
		end := start + size
		if end >= len(runes) {
			chunks = append(chunks, strings.TrimSpace(string(runes[start:])))
			break
		}

		// Walk back to the nearest whitespace so words stay intact.
		cut := end
		for cut > start+step && !isSpace(runes[cut-1]) {
			cut--
		}
		if cut == start+step {
			cut = end
		}
		chunks = append(chunks, strings.TrimSpace(string(runes[start:cut])))
	}

	// Drop empty chunks produced by whitespace-heavy input.
	out := chunks[:0]
	for _, c := range chunks {
		if c != "" {
			out = append(out, c)
		}
	}
	return out
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\n' || r == '\t' || r == '\r'
}
