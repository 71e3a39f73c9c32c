package models

// Validation limits for assistant requests.
const (
	MaxEnhanceContentLength = 50000

	// Only the trailing window of conversation history is forwarded to the
	// model provider.
	MaxHistoryMessages = 20
)

// AssistMessage is one turn of assistant conversation history.
type AssistMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// CurriculumContext describes the curriculum being worked on, used to ground
// assistant prompts. All fields are optional.
type CurriculumContext struct {
	TargetAudience string          `json:"target_audience,omitempty"`
	Duration       string          `json:"duration,omitempty"`
	Type           string          `json:"type,omitempty"`
	CurrentContent string          `json:"current_content,omitempty"`
	ChatHistory    []AssistMessage `json:"chat_history,omitempty"`
}

// ChatAssistRequest asks the assistant a question grounded in the current
// curriculum and prior conversation turns.
type ChatAssistRequest struct {
	Message string            `json:"message"`
	Context CurriculumContext `json:"context"`
}

// EnhanceRequest asks the assistant to improve curriculum content.
type EnhanceRequest struct {
	Content string            `json:"content"`
	Context CurriculumContext `json:"context"`
}

// QuestionsRequest asks for clarifying questions about the curriculum
// being drafted.
type QuestionsRequest struct {
	Context CurriculumContext `json:"context"`
}

// QuestionCategory groups clarifying questions under a coarse topic.
type QuestionCategory struct {
	Name      string   `json:"name"`
	Questions []string `json:"questions"`
}

// TrimHistory returns the trailing window of history that is forwarded to the
// model provider.
func TrimHistory(history []AssistMessage) []AssistMessage {
	if len(history) <= MaxHistoryMessages {
		return history
	}
	return history[len(history)-MaxHistoryMessages:]
}
