package events

import "encoding/json"

// AuthenticatePayload is the client's authenticate request.
type AuthenticatePayload struct {
	Token string `json:"token"`
}

// RoomPayload identifies the curriculum for join/leave requests.
type RoomPayload struct {
	CurriculumID string `json:"curriculumId"`
}

// CurriculumUpdatePayload is a field-level edit event from a client.
type CurriculumUpdatePayload struct {
	CurriculumID string          `json:"curriculumId"`
	Field        string          `json:"field"`
	Value        json.RawMessage `json:"value"`
	Timestamp    string          `json:"timestamp"`
}

// ChatMessagePayload is a chat line relayed between collaborators.
type ChatMessagePayload struct {
	CurriculumID string `json:"curriculumId"`
	Role         string `json:"role"` // user or assistant
	Content      string `json:"content"`
	Timestamp    string `json:"timestamp"`
}

// TypingPayload is a client typing indicator. Not debounced server-side.
type TypingPayload struct {
	CurriculumID string `json:"curriculumId"`
	IsTyping     bool   `json:"isTyping"`
}

// AuthenticatedPayload confirms a successful authenticate.
type AuthenticatedPayload struct {
	UserID string `json:"userId"`
}

// AuthErrorPayload reports a failed authenticate. The connection stays open
// for another attempt.
type AuthErrorPayload struct {
	Message string `json:"message"`
}

// PresencePayload announces a user joining, leaving, or disconnecting.
// CurriculumID is empty for user_disconnected.
type PresencePayload struct {
	UserID       string `json:"userId"`
	CurriculumID string `json:"curriculumId,omitempty"`
}

// CurriculumUpdatedPayload is a relayed edit event with the sender's
// identity injected server-side.
type CurriculumUpdatedPayload struct {
	CurriculumUpdatePayload
	UserID string `json:"userId"`
}

// ChatMessageReceivedPayload is a relayed chat line with the sender's
// identity injected server-side.
type ChatMessageReceivedPayload struct {
	ChatMessagePayload
	UserID string `json:"userId"`
}

// TypingStatusPayload is a relayed typing indicator.
type TypingStatusPayload struct {
	UserID       string `json:"userId"`
	CurriculumID string `json:"curriculumId"`
	IsTyping     bool   `json:"isTyping"`
}

// ErrorPayload is a local protocol error, delivered only to the offending
// connection.
type ErrorPayload struct {
	Message string `json:"message"`
}
