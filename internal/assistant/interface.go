package assistant

import (
	"context"

	"personal-assistant/internal/model"
)

// UseCase orchestrates one conversational exchange: resolve intent,
// dispatch the action, persist the exchange.
type UseCase interface {
	ProcessMessage(ctx context.Context, sc model.Scope, ip ProcessInput) (Outcome, error)
}
