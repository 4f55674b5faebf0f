package knowledge

import "context"

// UseCase exposes direct knowledge-base operations: querying documents
// and ingesting text.
type UseCase interface {
	Query(ctx context.Context, ip QueryInput) (QueryOutput, error)
	AddText(ctx context.Context, ip AddTextInput) (AddTextOutput, error)
}
