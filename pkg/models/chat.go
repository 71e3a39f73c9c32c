package models

// Validation limits for chat messages.
const (
	MaxChatContentLength = 10000
)

// Chat message roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// AddChatMessageRequest contains fields for appending a message to a
// curriculum's saved conversation.
type AddChatMessageRequest struct {
	CurriculumID string `json:"curriculum_id"`
	Role         string `json:"role"`
	Content      string `json:"content"`
}
