package repository

// SearchDocumentsOptions holds parameters for a semantic search.
type SearchDocumentsOptions struct {
	Query string
	Limit int // Max results; defaults to 3 when <= 0
}

// IndexDocumentOptions holds parameters for indexing a document.
type IndexDocumentOptions struct {
	Content string
	Source  string // Origin label stored alongside the content
}

// SearchResult is one matched document from the knowledge base.
type SearchResult struct {
	Content string
	Source  string
	Score   float64
}
