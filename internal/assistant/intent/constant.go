package intent

// Log prefixes
const (
	LogPrefixResolve = "internal.assistant.intent.Resolve"
)

// Prompt building
const (
	// NoHistoryText stands in for the history block when the
	// conversation has no prior turns.
	NoHistoryText = "No previous conversation history."

	// PromptIntentTemplate is the intent extraction prompt.
	// Placeholders: history block, latest user message.
	PromptIntentTemplate = `Consider the following conversation history:
<history>
%s
</history>

Now, analyze the latest user message: "%s"

Determine the primary intent and extract relevant entities based on the available actions, considering the context from the history.

Available actions and their required entities:
1.  **query_rag**: User is asking a question about their documents or knowledge base (e.g., "what did the report say about X?", "summarize the meeting notes").
    - **query**: The specific question being asked.
2.  **send_email**: User wants to send an email (e.g., "email John about the project update").
    - **recipient**: Email address or name of the recipient.
    - **subject**: Subject line of the email.
    - **body**: Main content of the email.
3.  **schedule_meeting**: User wants to schedule a meeting (e.g., "schedule a meeting with Jane tomorrow at 2 PM on Slack").
    - **participants**: List of people to invite.
    - **date_time**: Proposed date and time.
    - **platform**: (Optional) Platform like Zoom, Slack.
4.  **general_chat**: The user message is conversational, a greeting, small talk, or doesn't match other actions (e.g., "hello", "how are you?", "thanks"). Provide a suitable general response, considering the history.
5.  **unknown**: If the intent is unclear, ambiguous, or cannot be fulfilled. Provide a brief reason.

Determine the single most appropriate action for the *latest user message* and extract all necessary entities for that action.
Respond ONLY with a JSON object matching the structure for the chosen action (either query_rag, send_email, schedule_meeting, general_chat, or unknown).
Ensure the JSON is valid and complete according to the specified fields for the action.
For send_email, try to infer recipient, subject and body from the message and history. If crucial information is missing, ask for clarification using the 'unknown' action.
For query_rag, extract the core question from the latest message.
For general_chat, formulate a brief, appropriate response based on the latest message and history.

JSON Response:
`
)

// Resolver configuration
const (
	MaxIntentTokens   = 500
	IntentTemperature = 0.1
)

// Degraded-outcome reasons
const (
	ReasonNotJSON        = "could not parse model response as JSON"
	ReasonSchemaMismatch = "model output did not match any known action schema"
	ReasonEmptyResponse  = "model returned an empty response"
)
