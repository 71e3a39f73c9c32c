package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/lecternhq/lectern/pkg/auth"
)

// Hub manages WebSocket sessions and room membership. Each process has one
// Hub instance; rooms are purely in-memory.
type Hub struct {
	verifier auth.TokenVerifier
	logger   *slog.Logger

	// Active sessions: connection_id → *session
	sessions map[string]*session
	mu       sync.RWMutex

	// Room membership: room → set of connection_ids
	rooms  map[string]map[string]bool
	roomMu sync.RWMutex

	// Write timeout for WebSocket sends
	writeTimeout time.Duration
}

// session is a single WebSocket client.
//
// rooms is accessed WITHOUT a lock. This is safe because all reads and writes
// happen on the goroutine that owns the connection (HandleConnection's read
// loop and its deferred cleanup). userID is written once, before any event
// that reads it can be processed, on the same goroutine.
type session struct {
	id     string
	conn   *websocket.Conn
	userID string          // empty until authenticated
	rooms  map[string]bool // rooms this session has joined
	ctx    context.Context
	cancel context.CancelFunc
}

func (s *session) authenticated() bool {
	return s.userID != ""
}

// NewHub creates a Hub that authenticates sessions with the given verifier.
func NewHub(verifier auth.TokenVerifier, writeTimeout time.Duration, logger *slog.Logger) *Hub {
	return &Hub{
		verifier:     verifier,
		logger:       logger.With("component", "hub"),
		sessions:     make(map[string]*session),
		rooms:        make(map[string]map[string]bool),
		writeTimeout: writeTimeout,
	}
}

// HandleConnection manages the lifecycle of a single WebSocket connection.
// Called by the WebSocket HTTP handler after upgrade. Blocks until the
// connection closes.
func (h *Hub) HandleConnection(parentCtx context.Context, conn *websocket.Conn) {
	ctx, cancel := context.WithCancel(parentCtx)
	s := &session{
		id:     uuid.New().String(),
		conn:   conn,
		rooms:  make(map[string]bool),
		ctx:    ctx,
		cancel: cancel,
	}

	h.register(s)
	defer h.unregister(s)

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			return
		}

		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			h.logger.Warn("invalid websocket message", "connection_id", s.id, "error", err)
			h.sendEvent(s, EventError, ErrorPayload{Message: "invalid message"})
			continue
		}

		h.dispatch(s, &msg)
	}
}

// dispatch routes one client message. Before authentication only
// authenticate and ping are accepted; everything else yields a local error
// event and mutates nothing. Relay events additionally require the sender to
// have joined the target curriculum's room.
func (h *Hub) dispatch(s *session, msg *ClientMessage) {
	switch msg.Event {
	case EventAuthenticate:
		h.handleAuthenticate(s, msg.Data)

	case EventPing:
		h.sendEvent(s, EventPong, nil)

	case EventJoinCurriculum:
		var p RoomPayload
		if !h.requireAuth(s) || !h.decode(s, msg.Data, &p) {
			return
		}
		h.handleJoin(s, p.CurriculumID)

	case EventLeaveCurriculum:
		var p RoomPayload
		if !h.requireAuth(s) || !h.decode(s, msg.Data, &p) {
			return
		}
		h.handleLeave(s, p.CurriculumID)

	case EventCurriculumUpdate:
		var p CurriculumUpdatePayload
		if !h.requireAuth(s) || !h.decode(s, msg.Data, &p) || !h.requireMember(s, p.CurriculumID) {
			return
		}
		h.broadcastToRoom(CurriculumRoom(p.CurriculumID), s.id, ServerMessage{
			Event: EventCurriculumUpdated,
			Data:  CurriculumUpdatedPayload{CurriculumUpdatePayload: p, UserID: s.userID},
		})

	case EventChatMessage:
		var p ChatMessagePayload
		if !h.requireAuth(s) || !h.decode(s, msg.Data, &p) || !h.requireMember(s, p.CurriculumID) {
			return
		}
		h.broadcastToRoom(CurriculumRoom(p.CurriculumID), s.id, ServerMessage{
			Event: EventChatMessageReceived,
			Data:  ChatMessageReceivedPayload{ChatMessagePayload: p, UserID: s.userID},
		})

	case EventTyping:
		var p TypingPayload
		if !h.requireAuth(s) || !h.decode(s, msg.Data, &p) || !h.requireMember(s, p.CurriculumID) {
			return
		}
		h.broadcastToRoom(CurriculumRoom(p.CurriculumID), s.id, ServerMessage{
			Event: EventTypingStatus,
			Data: TypingStatusPayload{
				UserID:       s.userID,
				CurriculumID: p.CurriculumID,
				IsTyping:     p.IsTyping,
			},
		})

	default:
		h.sendEvent(s, EventError, ErrorPayload{Message: "unknown event"})
	}
}

// handleAuthenticate binds a user identity to the session and joins the
// user's private room. A failed attempt is terminal for that attempt only;
// the connection stays open and the client may retry.
func (h *Hub) handleAuthenticate(s *session, data json.RawMessage) {
	if s.authenticated() {
		h.sendEvent(s, EventError, ErrorPayload{Message: "already authenticated"})
		return
	}

	var p AuthenticatePayload
	if err := json.Unmarshal(data, &p); err != nil || p.Token == "" {
		h.sendEvent(s, EventAuthError, AuthErrorPayload{Message: "authentication failed"})
		return
	}

	identity, err := h.verifier.Verify(p.Token)
	if err != nil {
		h.logger.Info("websocket authentication failed", "connection_id", s.id)
		h.sendEvent(s, EventAuthError, AuthErrorPayload{Message: "authentication failed"})
		return
	}

	s.userID = identity.UserID
	h.joinRoom(s, UserRoom(identity.UserID))
	h.sendEvent(s, EventAuthenticated, AuthenticatedPayload{UserID: identity.UserID})
	h.logger.Info("websocket authenticated", "connection_id", s.id, "user_id", identity.UserID)
}

func (h *Hub) handleJoin(s *session, curriculumID string) {
	if curriculumID == "" {
		h.sendEvent(s, EventError, ErrorPayload{Message: "curriculumId is required"})
		return
	}
	room := CurriculumRoom(curriculumID)
	h.joinRoom(s, room)
	h.broadcastToRoom(room, s.id, ServerMessage{
		Event: EventUserJoined,
		Data:  PresencePayload{UserID: s.userID, CurriculumID: curriculumID},
	})
	h.logger.Info("user joined curriculum", "user_id", s.userID, "curriculum_id", curriculumID)
}

func (h *Hub) handleLeave(s *session, curriculumID string) {
	if curriculumID == "" {
		h.sendEvent(s, EventError, ErrorPayload{Message: "curriculumId is required"})
		return
	}
	room := CurriculumRoom(curriculumID)
	h.leaveRoom(s, room)
	h.broadcastToRoom(room, s.id, ServerMessage{
		Event: EventUserLeft,
		Data:  PresencePayload{UserID: s.userID, CurriculumID: curriculumID},
	})
	h.logger.Info("user left curriculum", "user_id", s.userID, "curriculum_id", curriculumID)
}

// requireMember sends a local error event if the session has not joined the
// curriculum's room. Relayed events never reach a room the sender is not in.
// Reading s.rooms here is lock-free; dispatch runs on the goroutine that owns
// the session.
func (h *Hub) requireMember(s *session, curriculumID string) bool {
	if !s.rooms[CurriculumRoom(curriculumID)] {
		h.sendEvent(s, EventError, ErrorPayload{Message: "not in curriculum room"})
		return false
	}
	return true
}

// requireAuth sends a local error event if the session has not authenticated.
func (h *Hub) requireAuth(s *session) bool {
	if !s.authenticated() {
		h.sendEvent(s, EventError, ErrorPayload{Message: "authentication required"})
		return false
	}
	return true
}

// decode unmarshals an event payload, reporting a local error on failure.
func (h *Hub) decode(s *session, data json.RawMessage, v interface{}) bool {
	if err := json.Unmarshal(data, v); err != nil {
		h.sendEvent(s, EventError, ErrorPayload{Message: "invalid payload"})
		return false
	}
	return true
}

// SendToUser delivers a server-originated event to every session the user
// has authenticated.
func (h *Hub) SendToUser(userID, event string, data interface{}) {
	h.broadcastToRoom(UserRoom(userID), "", ServerMessage{Event: event, Data: data})
}

// SendToCurriculum delivers a server-originated event to every session in a
// curriculum's room.
func (h *Hub) SendToCurriculum(curriculumID, event string, data interface{}) {
	h.broadcastToRoom(CurriculumRoom(curriculumID), "", ServerMessage{Event: event, Data: data})
}

// BroadcastAll delivers a server-originated event to every connected session.
func (h *Hub) BroadcastAll(event string, data interface{}) {
	msg := ServerMessage{Event: event, Data: data}

	h.mu.RLock()
	sessions := make([]*session, 0, len(h.sessions))
	for _, s := range h.sessions {
		sessions = append(sessions, s)
	}
	h.mu.RUnlock()

	for _, s := range sessions {
		h.sendMessage(s, msg)
	}
}

// ActiveConnections returns the count of open WebSocket sessions.
func (h *Hub) ActiveConnections() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sessions)
}

// CurriculumUsers returns the user IDs currently in a curriculum's room.
func (h *Hub) CurriculumUsers(curriculumID string) []string {
	room := CurriculumRoom(curriculumID)

	h.roomMu.RLock()
	ids := make([]string, 0, len(h.rooms[room]))
	for id := range h.rooms[room] {
		ids = append(ids, id)
	}
	h.roomMu.RUnlock()

	h.mu.RLock()
	defer h.mu.RUnlock()
	users := make([]string, 0, len(ids))
	for _, id := range ids {
		if s, ok := h.sessions[id]; ok {
			users = append(users, s.userID)
		}
	}
	return users
}

// Shutdown closes every open session. In-flight broadcasts are abandoned.
func (h *Hub) Shutdown() {
	h.mu.RLock()
	sessions := make([]*session, 0, len(h.sessions))
	for _, s := range h.sessions {
		sessions = append(sessions, s)
	}
	h.mu.RUnlock()

	for _, s := range sessions {
		_ = s.conn.Close(websocket.StatusGoingAway, "server shutting down")
	}
	h.logger.Info("hub shut down", "closed_connections", len(sessions))
}

// roomMemberCount returns the number of sessions in a room.
// Unexported — used by tests to poll instead of sleeping.
func (h *Hub) roomMemberCount(room string) int {
	h.roomMu.RLock()
	defer h.roomMu.RUnlock()
	return len(h.rooms[room])
}

// broadcastToRoom sends a message to every room member except exceptID.
// Pass an empty exceptID for server-originated events with no sender.
func (h *Hub) broadcastToRoom(room, exceptID string, msg ServerMessage) {
	h.roomMu.RLock()
	members, exists := h.rooms[room]
	if !exists {
		h.roomMu.RUnlock()
		return
	}
	ids := make([]string, 0, len(members))
	for id := range members {
		if id != exceptID {
			ids = append(ids, id)
		}
	}
	h.roomMu.RUnlock()

	// Snapshot session pointers under the lock, then release before sending
	// so a slow write (up to writeTimeout) cannot stall register/unregister.
	h.mu.RLock()
	sessions := make([]*session, 0, len(ids))
	for _, id := range ids {
		if s, ok := h.sessions[id]; ok {
			sessions = append(sessions, s)
		}
	}
	h.mu.RUnlock()

	for _, s := range sessions {
		h.sendMessage(s, msg)
	}
}

func (h *Hub) joinRoom(s *session, room string) {
	h.roomMu.Lock()
	if _, exists := h.rooms[room]; !exists {
		h.rooms[room] = make(map[string]bool)
	}
	h.rooms[room][s.id] = true
	h.roomMu.Unlock()

	s.rooms[room] = true
}

func (h *Hub) leaveRoom(s *session, room string) {
	h.roomMu.Lock()
	if members, exists := h.rooms[room]; exists {
		delete(members, s.id)
		if len(members) == 0 {
			delete(h.rooms, room)
		}
	}
	h.roomMu.Unlock()

	delete(s.rooms, room)
}

func (h *Hub) register(s *session) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.sessions[s.id] = s
}

// unregister broadcasts exactly one user_disconnected per curriculum room
// the session had joined, then discards all hub state for the connection.
func (h *Hub) unregister(s *session) {
	for room := range s.rooms {
		h.leaveRoom(s, room)
		if s.authenticated() && room != UserRoom(s.userID) {
			h.broadcastToRoom(room, s.id, ServerMessage{
				Event: EventUserDisconnected,
				Data:  PresencePayload{UserID: s.userID},
			})
		}
	}

	h.mu.Lock()
	delete(h.sessions, s.id)
	h.mu.Unlock()

	s.cancel()
	_ = s.conn.Close(websocket.StatusNormalClosure, "")
	h.logger.Info("websocket disconnected", "connection_id", s.id, "user_id", s.userID)
}

// sendEvent marshals and sends a single event to one session.
func (h *Hub) sendEvent(s *session, event string, data interface{}) {
	h.sendMessage(s, ServerMessage{Event: event, Data: data})
}

func (h *Hub) sendMessage(s *session, msg ServerMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		h.logger.Warn("failed to marshal websocket message", "connection_id", s.id, "error", err)
		return
	}
	writeCtx, cancel := context.WithTimeout(s.ctx, h.writeTimeout)
	defer cancel()
	if err := s.conn.Write(writeCtx, websocket.MessageText, data); err != nil {
		h.logger.Warn("failed to send websocket message", "connection_id", s.id, "error", err)
	}
}
