package usecase

import (
	"context"
	"fmt"
	"strings"

	"personal-assistant/internal/assistant"
	"personal-assistant/internal/assistant/intent"
	knowrepo "personal-assistant/internal/knowledge/repository"
	"personal-assistant/internal/model"
	"personal-assistant/pkg/llmprovider"
)

// handleRagQuery answers a question from the knowledge base: search,
// build a grounded prompt, synthesize with the LLM.
func (uc *implUseCase) handleRagQuery(ctx context.Context, query string, history []model.Turn) assistant.Outcome {
	if uc.vectorRepo == nil {
		return assistant.Outcome{Error: ErrMsgNoKnowledge}
	}

	results, err := uc.vectorRepo.SearchDocuments(ctx, knowrepo.SearchDocumentsOptions{
		Query: query,
		Limit: SearchLimit,
	})
	if err != nil {
		uc.l.Errorf(ctx, "%s: search: %v", LogPrefixRAG, err)
		return assistant.Outcome{Error: ErrMsgRAGFailed, Details: err.Error()}
	}
	uc.l.Debugf(ctx, "%s: found %d relevant documents", LogPrefixRAG, len(results))

	prompt := fmt.Sprintf(PromptSynthesisTemplate,
		intent.RenderHistoryBlock(history), renderContextBlock(results), query)

	resp, err := uc.llm.GenerateContent(ctx, &llmprovider.Request{
		Messages:  []llmprovider.Message{{Role: "user", Content: prompt}},
		MaxTokens: MaxSynthesisTokens,
	})
	if err != nil {
		uc.l.Errorf(ctx, "%s: synthesis: %v", LogPrefixRAG, err)
		return assistant.Outcome{Error: ErrMsgRAGFailed, Details: err.Error()}
	}

	return assistant.Outcome{Response: resp.Text}
}

// renderContextBlock formats search results for the synthesis prompt,
// one source/content pair per document.
func renderContextBlock(results []knowrepo.SearchResult) string {
	if len(results) == 0 {
		return NoKnowledgeFoundContext
	}

	blocks := make([]string, 0, len(results))
	for _, doc := range results {
		source := doc.Source
		if source == "" {
			source = "Unknown"
		}
		blocks = append(blocks, fmt.Sprintf("Source: %s\nContent: %s", source, doc.Content))
	}
	return strings.Join(blocks, "\n\n")
}
