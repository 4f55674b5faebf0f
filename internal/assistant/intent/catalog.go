package intent

import (
	"encoding/json"
	"fmt"
)

// decodeAction validates raw LLM JSON against the schema for the tag
// it carries. Match the tag first, then validate the full shape; an
// unrecognized tag or missing required field is a validation error,
// never a panic.
func decodeAction(raw []byte) (Resolution, error) {
	var probe struct {
		Action ActionType `json:"action"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return Resolution{}, fmt.Errorf("output is not a JSON object: %w", err)
	}

	switch probe.Action {
	case ActionQueryRAG:
		var a RagQueryAction
		if err := json.Unmarshal(raw, &a); err != nil {
			return Resolution{}, fmt.Errorf("invalid query_rag payload: %w", err)
		}
		if a.Query == "" {
			return Resolution{}, fmt.Errorf("query_rag requires a non-empty query")
		}
		return Resolution{Action: ActionQueryRAG, RagQuery: &a}, nil

	case ActionSendEmail:
		var a SendEmailAction
		if err := json.Unmarshal(raw, &a); err != nil {
			return Resolution{}, fmt.Errorf("invalid send_email payload: %w", err)
		}
		if a.Recipient == "" || a.Subject == "" || a.Body == "" {
			return Resolution{}, fmt.Errorf("send_email requires recipient, subject and body")
		}
		return Resolution{Action: ActionSendEmail, SendEmail: &a}, nil

	case ActionScheduleMeeting:
		var a ScheduleMeetingAction
		if err := json.Unmarshal(raw, &a); err != nil {
			return Resolution{}, fmt.Errorf("invalid schedule_meeting payload: %w", err)
		}
		if len(a.Participants) == 0 || a.DateTime == "" {
			return Resolution{}, fmt.Errorf("schedule_meeting requires participants and date_time")
		}
		return Resolution{Action: ActionScheduleMeeting, ScheduleMeeting: &a}, nil

	case ActionGeneralChat:
		var a GeneralChatAction
		if err := json.Unmarshal(raw, &a); err != nil {
			return Resolution{}, fmt.Errorf("invalid general_chat payload: %w", err)
		}
		if a.Response == "" {
			return Resolution{}, fmt.Errorf("general_chat requires a non-empty response")
		}
		return Resolution{Action: ActionGeneralChat, GeneralChat: &a}, nil

	case ActionUnknown:
		var a UnknownAction
		if err := json.Unmarshal(raw, &a); err != nil {
			return Resolution{}, fmt.Errorf("invalid unknown payload: %w", err)
		}
		if a.Reason == "" {
			a.Reason = "intent could not be determined"
		}
		return Resolution{Action: ActionUnknown, Unknown: &a}, nil

	default:
		return Resolution{}, fmt.Errorf("unrecognized action tag %q", probe.Action)
	}
}
