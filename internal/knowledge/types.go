package knowledge

// QueryInput is a direct semantic search request.
type QueryInput struct {
	Query string
	K     int // Max results; defaults to 4 when <= 0
}

// QueryResult is one matched document.
type QueryResult struct {
	Content string
	Source  string
	Score   float64
}

// QueryOutput carries search results, most relevant first.
type QueryOutput struct {
	Results []QueryResult
}

// AddTextInput ingests one text into the knowledge base. Long texts
// are split into overlapping chunks before indexing.
type AddTextInput struct {
	Text   string
	Source string
}

// AddTextOutput reports how many chunks were indexed.
type AddTextOutput struct {
	ChunksAdded int
}
