package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"personal-assistant/internal/assistant"
	"personal-assistant/internal/assistant/intent"
	"personal-assistant/internal/model"
	"personal-assistant/pkg/gcalendar"
)

// dispatch executes the resolved action. A panicking handler is
// contained and reported as an error outcome so one exchange can never
// take the process down.
func (uc *implUseCase) dispatch(ctx context.Context, res intent.Resolution, history []model.Turn) (outcome assistant.Outcome) {
	defer func() {
		if r := recover(); r != nil {
			uc.l.Errorf(ctx, "%s: handler panicked for action=%s: %v", LogPrefixDispatch, res.Action, r)
			outcome = assistant.Outcome{
				Error:   fmt.Sprintf("Internal error: action handler failed for %s", res.Action),
				Details: fmt.Sprint(r),
			}
		}
	}()

	switch res.Action {
	case intent.ActionQueryRAG:
		return uc.handleRagQuery(ctx, res.RagQuery.Query, history)

	case intent.ActionSendEmail:
		return uc.handleSendEmail(ctx, res.SendEmail)

	case intent.ActionScheduleMeeting:
		return uc.handleScheduleMeeting(ctx, res.ScheduleMeeting)

	case intent.ActionGeneralChat:
		return assistant.Outcome{Response: res.GeneralChat.Response}

	case intent.ActionUnknown:
		return assistant.Outcome{Response: MsgUnknownPrefix + res.Unknown.Reason}

	default:
		uc.l.Errorf(ctx, "%s: unhandled action type: %s", LogPrefixDispatch, res.Action)
		return assistant.Outcome{Error: fmt.Sprintf("Internal error: Unhandled action type: %s", res.Action)}
	}
}

func (uc *implUseCase) handleSendEmail(ctx context.Context, params *intent.SendEmailAction) assistant.Outcome {
	// Without a configured mailer the intent is still acknowledged; the
	// capability is optional and must not fail the exchange.
	if uc.mailer == nil {
		uc.l.Warnf(ctx, "%s: %s", LogPrefixDispatch, ErrMsgNoMailer)
		return assistant.Outcome{
			Response: fmt.Sprintf("OK. I will send an email to %s with subject '%s'. (Actual sending pending)",
				params.Recipient, params.Subject),
		}
	}

	if err := uc.mailer.Send(ctx, params.Recipient, params.Subject, params.Body); err != nil {
		uc.l.Errorf(ctx, "%s: send email: %v", LogPrefixDispatch, err)
		return assistant.Outcome{Error: ErrMsgEmailFailed, Details: err.Error()}
	}

	return assistant.Outcome{
		Response: fmt.Sprintf("OK. I sent an email to %s with subject '%s'.", params.Recipient, params.Subject),
	}
}

func (uc *implUseCase) handleScheduleMeeting(ctx context.Context, params *intent.ScheduleMeetingAction) assistant.Outcome {
	confirmation := fmt.Sprintf("OK. I'll schedule a meeting with %s for %s.",
		strings.Join(params.Participants, ", "), params.DateTime)

	// The proposed time is model-extracted free text. Only create a
	// calendar event when it parses to a concrete time; otherwise
	// confirm the intent without touching the calendar.
	startTime, ok := parseMeetingTime(params.DateTime)
	if !ok || uc.calendar == nil {
		if uc.calendar == nil {
			uc.l.Warnf(ctx, "%s: %s", LogPrefixDispatch, ErrMsgNoCalendar)
		}
		return assistant.Outcome{Response: confirmation}
	}

	summary := "Meeting with " + strings.Join(params.Participants, ", ")
	description := ""
	if params.Platform != "" {
		description = "Platform: " + params.Platform
	}

	event, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		Summary:     summary,
		Description: description,
		Attendees:   params.Participants,
		StartTime:   startTime,
		EndTime:     startTime.Add(defaultMeetingDuration * time.Minute),
	})
	if err != nil {
		uc.l.Errorf(ctx, "%s: create event: %v", LogPrefixDispatch, err)
		return assistant.Outcome{Error: ErrMsgMeetingFailed, Details: err.Error()}
	}

	response := fmt.Sprintf("OK. I scheduled a meeting with %s for %s.",
		strings.Join(params.Participants, ", "), params.DateTime)
	if event.HtmlLink != "" {
		response += " Event: " + event.HtmlLink
	}
	return assistant.Outcome{Response: response}
}

// parseMeetingTime accepts the concrete formats the model reliably
// emits. Relative phrases ("tomorrow at 3 PM") deliberately fail here.
func parseMeetingTime(s string) (time.Time, bool) {
	layouts := []string{
		time.RFC3339,
		"2006-01-02 15:04",
		"2006-01-02T15:04",
		"2006-01-02 15:04:05",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, strings.TrimSpace(s)); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
