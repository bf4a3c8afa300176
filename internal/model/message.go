package model

// Conversation roles. The bot role maps to "assistant" at the OpenAI
// boundary.
const (
	RoleUser = "user"
	RoleBot  = "bot"
)

// ChatMessage is a single role-tagged turn in the conversation history.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// TurnResult is the bundle returned to the caller after each turn.
type TurnResult struct {
	Message             string            `json:"message"`
	ConversationHistory []ChatMessage     `json:"conversation_history"`
	CollectedData       Profile           `json:"collected_data"`
	IsComplete          bool              `json:"is_complete"`
	NextField           string            `json:"next_field,omitempty"`
	MetabolicProfile    *MetabolicProfile `json:"metabolic_profile,omitempty"`
	DBFormat            *ProfileRecord    `json:"db_format,omitempty"`

	// Warning carries a soft diagnostic when the extraction call failed
	// and the turn degraded to an empty extraction. The conversation
	// stays resumable; this is informational only.
	Warning string `json:"warning,omitempty"`
}
