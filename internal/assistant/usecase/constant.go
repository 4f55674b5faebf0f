package usecase

// Log prefixes
const (
	LogPrefixProcess  = "internal.assistant.usecase.ProcessMessage"
	LogPrefixDispatch = "internal.assistant.usecase.dispatch"
	LogPrefixRAG      = "internal.assistant.usecase.handleRagQuery"
)

// User-facing messages
const (
	MsgUnknownPrefix = "Sorry, I couldn't understand that. Reason: "

	ErrMsgLLMProcess     = "Could not process request with LLM."
	ErrMsgRAGFailed      = "Failed to answer question using knowledge base."
	ErrMsgEmailFailed    = "Failed to send email."
	ErrMsgMeetingFailed  = "Failed to schedule meeting."
	ErrMsgNoKnowledge    = "Knowledge base is not configured."
	ErrMsgNoMailer       = "Email integration is not configured."
	ErrMsgNoCalendar     = "Calendar integration is not configured."
	ErrMsgHistoryPersist = "Failed to save interaction"
)

// Knowledge base synthesis
const (
	// NoKnowledgeFoundContext replaces the context block when the
	// search returns nothing.
	NoKnowledgeFoundContext = "No relevant information found in the knowledge base."

	// PromptSynthesisTemplate grounds the answer in history and
	// retrieved context only. Placeholders: history block, context
	// block, latest question.
	PromptSynthesisTemplate = `Conversation History:
<history>
%s
</history>

Relevant Context from Knowledge Base:
<context>
%s
</context>

Based *only* on the conversation history and the provided context from the knowledge base, answer the *latest user question*: "%s"

If the context does not contain the necessary information, explicitly state that the answer cannot be found in the knowledge base based on the provided context.
Do not make up information or use external knowledge beyond the provided history and context.

Answer:`

	MaxSynthesisTokens = 1000
	SearchLimit        = 3
)

// Meeting defaults
const (
	defaultMeetingDuration = 60 // minutes
)
