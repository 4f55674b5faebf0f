package usecase

import (
	"context"
	"strings"

	"personal-assistant/internal/assistant"
	convrepo "personal-assistant/internal/conversation/repository"
	"personal-assistant/internal/model"
)

// ProcessMessage runs one full exchange: fetch history, resolve the
// intent, dispatch the action, and persist the result.
//
// Action failures are reported inside the Outcome; the error return is
// reserved for invalid input. A persistence failure never alters the
// outcome beyond the HistoryError annotation.
func (uc *implUseCase) ProcessMessage(ctx context.Context, sc model.Scope, ip assistant.ProcessInput) (assistant.Outcome, error) {
	if strings.TrimSpace(ip.Message) == "" {
		return assistant.Outcome{}, assistant.ErrEmptyMessage
	}

	history, err := uc.historyRepo.GetRecentTurns(ctx, convrepo.GetRecentTurnsOptions{
		UserID: sc.UserID,
		Limit:  uc.historyLimit,
	})
	if err != nil {
		// Degrade to an empty window; the exchange must not fail
		// because past context is unavailable.
		uc.l.Warnf(ctx, "%s: history fetch failed, continuing without context: %v", LogPrefixProcess, err)
		history = nil
	}

	resolution, err := uc.resolver.Resolve(ctx, ip.Message, history)
	if err != nil {
		uc.l.Errorf(ctx, "%s: intent resolution failed: %v", LogPrefixProcess, err)
		outcome := assistant.Outcome{Error: ErrMsgLLMProcess, Details: err.Error()}
		uc.persistExchange(ctx, sc, ip.Message, &outcome)
		return outcome, nil
	}

	outcome := uc.dispatch(ctx, resolution, history)

	uc.persistExchange(ctx, sc, ip.Message, &outcome)
	return outcome, nil
}

// persistExchange appends the exchange to history. On failure the
// outcome is annotated, never replaced.
func (uc *implUseCase) persistExchange(ctx context.Context, sc model.Scope, message string, outcome *assistant.Outcome) {
	_, err := uc.historyRepo.CreateEntry(ctx, convrepo.CreateEntryOptions{
		UserID:   sc.UserID,
		Message:  message,
		Response: serializeOutcome(*outcome),
	})
	if err != nil {
		uc.l.Errorf(ctx, "%s: %s: %v", LogPrefixProcess, ErrMsgHistoryPersist, err)
		outcome.HistoryError = ErrMsgHistoryPersist + ": " + err.Error()
	}
}
