package intent

// ActionType discriminates the structured intents the resolver can
// produce. The value matches the "action" field of the LLM's JSON
// output.
type ActionType string

const (
	ActionQueryRAG        ActionType = "query_rag"
	ActionSendEmail       ActionType = "send_email"
	ActionScheduleMeeting ActionType = "schedule_meeting"
	ActionGeneralChat     ActionType = "general_chat"
	ActionUnknown         ActionType = "unknown"
)

// RagQueryAction asks a question against the knowledge base.
type RagQueryAction struct {
	Action ActionType `json:"action"`
	Query  string     `json:"query"`
}

// SendEmailAction requests an outbound email.
type SendEmailAction struct {
	Action    ActionType `json:"action"`
	Recipient string     `json:"recipient"`
	Subject   string     `json:"subject"`
	Body      string     `json:"body"`
}

// ScheduleMeetingAction requests a calendar event.
type ScheduleMeetingAction struct {
	Action       ActionType `json:"action"`
	Participants []string   `json:"participants"`
	DateTime     string     `json:"date_time"`
	Platform     string     `json:"platform,omitempty"`
}

// GeneralChatAction carries a direct conversational reply.
type GeneralChatAction struct {
	Action   ActionType `json:"action"`
	Response string     `json:"response"`
}

// UnknownAction is the resolver's degraded outcome: produced both when
// the model explicitly declines and when its output fails validation.
type UnknownAction struct {
	Action ActionType `json:"action"`
	Reason string     `json:"reason"`
}

// Resolution is the resolver's result. Exactly one variant pointer is
// non-nil, and Action names which one.
type Resolution struct {
	Action          ActionType
	RagQuery        *RagQueryAction
	SendEmail       *SendEmailAction
	ScheduleMeeting *ScheduleMeetingAction
	GeneralChat     *GeneralChatAction
	Unknown         *UnknownAction
}

func unknownResolution(reason string) Resolution {
	return Resolution{
		Action:  ActionUnknown,
		Unknown: &UnknownAction{Action: ActionUnknown, Reason: reason},
	}
}
