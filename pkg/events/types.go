// Package events implements the realtime broadcast hub: authenticated
// WebSocket sessions grouped into per-user and per-curriculum rooms, with
// sender-excluded fan-out of edit, chat and presence events.
//
// Delivery is best-effort presence, not state sync. Nothing is persisted and
// there is no catch-up: a session that reconnects misses whatever was
// broadcast in the gap. Event rates are not limited server-side; clients are
// expected to debounce high-frequency events like typing.
package events

import "encoding/json"

// Client → server event names.
const (
	EventAuthenticate     = "authenticate"
	EventJoinCurriculum   = "join_curriculum"
	EventLeaveCurriculum  = "leave_curriculum"
	EventCurriculumUpdate = "curriculum_update"
	EventChatMessage      = "chat_message"
	EventTyping           = "typing"
	EventPing             = "ping"
)

// Server → client event names.
const (
	EventAuthenticated       = "authenticated"
	EventAuthError           = "auth_error"
	EventUserJoined          = "user_joined"
	EventUserLeft            = "user_left"
	EventUserDisconnected    = "user_disconnected"
	EventCurriculumUpdated   = "curriculum_updated"
	EventChatMessageReceived = "chat_message_received"
	EventTypingStatus        = "typing_status"
	EventError               = "error"
	EventPong                = "pong"
)

// Server-originated notifications pushed by REST handlers.
const (
	EventCurriculumDeleted = "curriculum_deleted"
	EventVersionRestored   = "version_restored"
)

// UserRoom returns the room name for a user's private notifications.
// Format: "user:{user_id}"
func UserRoom(userID string) string {
	return "user:" + userID
}

// CurriculumRoom returns the room name for a curriculum's collaborators.
// Format: "curriculum:{curriculum_id}"
func CurriculumRoom(curriculumID string) string {
	return "curriculum:" + curriculumID
}

// ClientMessage is the envelope for client → server WebSocket messages.
// Data is decoded per event by the dispatcher.
type ClientMessage struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// ServerMessage is the envelope for server → client WebSocket messages.
type ServerMessage struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data,omitempty"`
}
