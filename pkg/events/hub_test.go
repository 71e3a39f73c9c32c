package events

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lecternhq/lectern/pkg/auth"
)

// staticVerifier maps fixed tokens to user IDs for tests.
type staticVerifier struct {
	users map[string]string
}

func (v staticVerifier) Verify(token string) (auth.Identity, error) {
	if userID, ok := v.users[token]; ok {
		return auth.Identity{UserID: userID}, nil
	}
	return auth.Identity{}, auth.ErrInvalidToken
}

func setupTestHub(t *testing.T) (*Hub, *httptest.Server) {
	t.Helper()

	verifier := staticVerifier{users: map[string]string{
		"token-alice": "alice",
		"token-bob":   "bob",
		"token-carol": "carol",
	}}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	hub := NewHub(verifier, 5*time.Second, logger)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			InsecureSkipVerify: true,
		})
		if err != nil {
			t.Logf("WebSocket accept error: %v", err)
			return
		}
		hub.HandleConnection(r.Context(), conn)
	}))

	t.Cleanup(func() { server.Close() })
	return hub, server
}

func connectWS(t *testing.T, server *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + server.URL[len("http"):]
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close(websocket.StatusNormalClosure, "") })
	return conn
}

func writeEvent(t *testing.T, conn *websocket.Conn, event string, data interface{}) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var raw json.RawMessage
	if data != nil {
		var err error
		raw, err = json.Marshal(data)
		require.NoError(t, err)
	}
	msg, err := json.Marshal(ClientMessage{Event: event, Data: raw})
	require.NoError(t, err)
	require.NoError(t, conn.Write(ctx, websocket.MessageText, msg))
}

func readJSON(t *testing.T, conn *websocket.Conn) map[string]interface{} {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, data, err := conn.Read(ctx)
	require.NoError(t, err)

	var msg map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &msg))
	return msg
}

func payloadOf(t *testing.T, msg map[string]interface{}) map[string]interface{} {
	t.Helper()
	data, ok := msg["data"].(map[string]interface{})
	require.True(t, ok, "message has no data object: %v", msg)
	return data
}

// assertSilent verifies no message arrived before this point. It sends a
// ping and asserts the next frame is the pong: the server processes frames in
// order, so anything wrongly broadcast earlier would have arrived first. A
// timed-out Read is not usable here because coder/websocket closes the whole
// connection when a read context expires.
func assertSilent(t *testing.T, conn *websocket.Conn) {
	t.Helper()
	writeEvent(t, conn, EventPing, nil)
	msg := readJSON(t, conn)
	assert.Equal(t, EventPong, msg["event"], "expected no message")
}

func authenticate(t *testing.T, conn *websocket.Conn, token string) {
	t.Helper()
	writeEvent(t, conn, EventAuthenticate, AuthenticatePayload{Token: token})
	msg := readJSON(t, conn)
	require.Equal(t, EventAuthenticated, msg["event"], "authenticate failed: %v", msg)
}

func joinCurriculum(t *testing.T, conn *websocket.Conn, curriculumID string) {
	t.Helper()
	writeEvent(t, conn, EventJoinCurriculum, RoomPayload{CurriculumID: curriculumID})
}

func TestHub_PingBeforeAuth(t *testing.T) {
	_, server := setupTestHub(t)
	conn := connectWS(t, server)

	writeEvent(t, conn, EventPing, nil)
	msg := readJSON(t, conn)
	assert.Equal(t, EventPong, msg["event"])
}

func TestHub_Authenticate(t *testing.T) {
	_, server := setupTestHub(t)
	conn := connectWS(t, server)

	writeEvent(t, conn, EventAuthenticate, AuthenticatePayload{Token: "token-alice"})
	msg := readJSON(t, conn)
	assert.Equal(t, EventAuthenticated, msg["event"])
	assert.Equal(t, "alice", payloadOf(t, msg)["userId"])
}

func TestHub_AuthenticateFailureAllowsRetry(t *testing.T) {
	_, server := setupTestHub(t)
	conn := connectWS(t, server)

	writeEvent(t, conn, EventAuthenticate, AuthenticatePayload{Token: "bogus"})
	msg := readJSON(t, conn)
	assert.Equal(t, EventAuthError, msg["event"])

	// Connection stays open; a second attempt with a valid token succeeds.
	writeEvent(t, conn, EventAuthenticate, AuthenticatePayload{Token: "token-alice"})
	msg = readJSON(t, conn)
	assert.Equal(t, EventAuthenticated, msg["event"])
}

func TestHub_SecondAuthenticateRejected(t *testing.T) {
	_, server := setupTestHub(t)
	conn := connectWS(t, server)
	authenticate(t, conn, "token-alice")

	writeEvent(t, conn, EventAuthenticate, AuthenticatePayload{Token: "token-bob"})
	msg := readJSON(t, conn)
	assert.Equal(t, EventError, msg["event"])
}

func TestHub_EventsRequireAuth(t *testing.T) {
	hub, server := setupTestHub(t)
	conn := connectWS(t, server)

	writeEvent(t, conn, EventJoinCurriculum, RoomPayload{CurriculumID: "c1"})
	msg := readJSON(t, conn)
	assert.Equal(t, EventError, msg["event"])
	assert.Contains(t, payloadOf(t, msg)["message"], "authentication required")

	// The rejected join must not create room state.
	assert.Equal(t, 0, hub.roomMemberCount(CurriculumRoom("c1")))
}

func TestHub_UnknownEvent(t *testing.T) {
	_, server := setupTestHub(t)
	conn := connectWS(t, server)
	authenticate(t, conn, "token-alice")

	writeEvent(t, conn, "teleport", nil)
	msg := readJSON(t, conn)
	assert.Equal(t, EventError, msg["event"])
}

func TestHub_InvalidJSON(t *testing.T) {
	_, server := setupTestHub(t)
	conn := connectWS(t, server)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, conn.Write(ctx, websocket.MessageText, []byte("{not json")))

	msg := readJSON(t, conn)
	assert.Equal(t, EventError, msg["event"])

	// Connection survives the bad frame.
	writeEvent(t, conn, EventPing, nil)
	msg = readJSON(t, conn)
	assert.Equal(t, EventPong, msg["event"])
}

func TestHub_JoinBroadcastsToOthers(t *testing.T) {
	_, server := setupTestHub(t)

	alice := connectWS(t, server)
	bob := connectWS(t, server)
	authenticate(t, alice, "token-alice")
	authenticate(t, bob, "token-bob")

	joinCurriculum(t, alice, "c1")
	time.Sleep(50 * time.Millisecond)

	joinCurriculum(t, bob, "c1")

	// Alice sees bob join; bob gets no echo of his own join.
	msg := readJSON(t, alice)
	assert.Equal(t, EventUserJoined, msg["event"])
	data := payloadOf(t, msg)
	assert.Equal(t, "bob", data["userId"])
	assert.Equal(t, "c1", data["curriculumId"])

	assertSilent(t, bob)
}

func TestHub_CurriculumUpdateExcludesSender(t *testing.T) {
	_, server := setupTestHub(t)

	alice := connectWS(t, server)
	bob := connectWS(t, server)
	authenticate(t, alice, "token-alice")
	authenticate(t, bob, "token-bob")

	joinCurriculum(t, alice, "c1")
	time.Sleep(50 * time.Millisecond)
	joinCurriculum(t, bob, "c1")
	readJSON(t, alice) // user_joined for bob
	time.Sleep(50 * time.Millisecond)

	writeEvent(t, alice, EventCurriculumUpdate, CurriculumUpdatePayload{
		CurriculumID: "c1",
		Field:        "title",
		Value:        json.RawMessage(`"Intro to Databases"`),
		Timestamp:    "2026-02-10T12:00:00Z",
	})

	msg := readJSON(t, bob)
	assert.Equal(t, EventCurriculumUpdated, msg["event"])
	data := payloadOf(t, msg)
	assert.Equal(t, "alice", data["userId"])
	assert.Equal(t, "title", data["field"])
	assert.Equal(t, "Intro to Databases", data["value"])

	assertSilent(t, alice)
}

func TestHub_ChatMessageRelay(t *testing.T) {
	_, server := setupTestHub(t)

	alice := connectWS(t, server)
	bob := connectWS(t, server)
	authenticate(t, alice, "token-alice")
	authenticate(t, bob, "token-bob")

	joinCurriculum(t, alice, "c1")
	time.Sleep(50 * time.Millisecond)
	joinCurriculum(t, bob, "c1")
	readJSON(t, alice) // user_joined for bob
	time.Sleep(50 * time.Millisecond)

	writeEvent(t, bob, EventChatMessage, ChatMessagePayload{
		CurriculumID: "c1",
		Role:         "user",
		Content:      "should week two be longer?",
		Timestamp:    "2026-02-10T12:00:00Z",
	})

	msg := readJSON(t, alice)
	assert.Equal(t, EventChatMessageReceived, msg["event"])
	data := payloadOf(t, msg)
	assert.Equal(t, "bob", data["userId"])
	assert.Equal(t, "should week two be longer?", data["content"])
}

func TestHub_TypingRelay(t *testing.T) {
	_, server := setupTestHub(t)

	alice := connectWS(t, server)
	bob := connectWS(t, server)
	authenticate(t, alice, "token-alice")
	authenticate(t, bob, "token-bob")

	joinCurriculum(t, alice, "c1")
	time.Sleep(50 * time.Millisecond)
	joinCurriculum(t, bob, "c1")
	readJSON(t, alice) // user_joined for bob
	time.Sleep(50 * time.Millisecond)

	writeEvent(t, alice, EventTyping, TypingPayload{CurriculumID: "c1", IsTyping: true})

	msg := readJSON(t, bob)
	assert.Equal(t, EventTypingStatus, msg["event"])
	data := payloadOf(t, msg)
	assert.Equal(t, "alice", data["userId"])
	assert.Equal(t, true, data["isTyping"])
}

func TestHub_RelayRequiresRoomMembership(t *testing.T) {
	_, server := setupTestHub(t)

	alice := connectWS(t, server)
	carol := connectWS(t, server)
	authenticate(t, alice, "token-alice")
	authenticate(t, carol, "token-carol")

	joinCurriculum(t, alice, "c1")
	time.Sleep(50 * time.Millisecond)

	// Carol authenticated but never joined c1; each relay event is rejected
	// locally and nothing reaches the room.
	writeEvent(t, carol, EventCurriculumUpdate, CurriculumUpdatePayload{
		CurriculumID: "c1",
		Field:        "title",
		Value:        json.RawMessage(`"Hijacked"`),
		Timestamp:    "2026-02-10T12:00:00Z",
	})
	msg := readJSON(t, carol)
	assert.Equal(t, EventError, msg["event"])
	assert.Contains(t, payloadOf(t, msg)["message"], "not in curriculum room")

	writeEvent(t, carol, EventChatMessage, ChatMessagePayload{
		CurriculumID: "c1",
		Role:         "user",
		Content:      "hello?",
		Timestamp:    "2026-02-10T12:00:00Z",
	})
	msg = readJSON(t, carol)
	assert.Equal(t, EventError, msg["event"])

	writeEvent(t, carol, EventTyping, TypingPayload{CurriculumID: "c1", IsTyping: true})
	msg = readJSON(t, carol)
	assert.Equal(t, EventError, msg["event"])

	assertSilent(t, alice)

	// After joining, the same update goes through.
	joinCurriculum(t, carol, "c1")
	readJSON(t, alice) // user_joined for carol
	time.Sleep(50 * time.Millisecond)

	writeEvent(t, carol, EventCurriculumUpdate, CurriculumUpdatePayload{
		CurriculumID: "c1",
		Field:        "title",
		Value:        json.RawMessage(`"Legit"`),
		Timestamp:    "2026-02-10T12:01:00Z",
	})
	msg = readJSON(t, alice)
	assert.Equal(t, EventCurriculumUpdated, msg["event"])
	assert.Equal(t, "carol", payloadOf(t, msg)["userId"])
}

func TestHub_LeaveBroadcastsUserLeft(t *testing.T) {
	_, server := setupTestHub(t)

	alice := connectWS(t, server)
	bob := connectWS(t, server)
	authenticate(t, alice, "token-alice")
	authenticate(t, bob, "token-bob")

	joinCurriculum(t, alice, "c1")
	time.Sleep(50 * time.Millisecond)
	joinCurriculum(t, bob, "c1")
	readJSON(t, alice) // user_joined for bob
	time.Sleep(50 * time.Millisecond)

	writeEvent(t, bob, EventLeaveCurriculum, RoomPayload{CurriculumID: "c1"})

	msg := readJSON(t, alice)
	assert.Equal(t, EventUserLeft, msg["event"])
	assert.Equal(t, "bob", payloadOf(t, msg)["userId"])

	// Bob no longer receives room traffic.
	time.Sleep(50 * time.Millisecond)
	writeEvent(t, alice, EventTyping, TypingPayload{CurriculumID: "c1", IsTyping: true})
	assertSilent(t, bob)
}

func TestHub_DisconnectBroadcastsOncePerRoom(t *testing.T) {
	hub, server := setupTestHub(t)

	alice := connectWS(t, server)
	bob := connectWS(t, server)
	authenticate(t, alice, "token-alice")
	authenticate(t, bob, "token-bob")

	// Bob shares two curriculum rooms with alice.
	joinCurriculum(t, alice, "c1")
	joinCurriculum(t, alice, "c2")
	time.Sleep(50 * time.Millisecond)
	joinCurriculum(t, bob, "c1")
	joinCurriculum(t, bob, "c2")
	readJSON(t, alice) // user_joined c1
	readJSON(t, alice) // user_joined c2
	time.Sleep(50 * time.Millisecond)

	bob.Close(websocket.StatusNormalClosure, "")

	// Exactly one user_disconnected per shared room, in either order.
	seen := map[string]int{}
	for i := 0; i < 2; i++ {
		msg := readJSON(t, alice)
		require.Equal(t, EventUserDisconnected, msg["event"])
		userID, _ := payloadOf(t, msg)["userId"].(string)
		seen[userID]++
	}
	assert.Equal(t, 2, seen["bob"])
	assertSilent(t, alice)

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, 1, hub.ActiveConnections())
	assert.Equal(t, 1, hub.roomMemberCount(CurriculumRoom("c1")))
}

func TestHub_SendToCurriculum(t *testing.T) {
	hub, server := setupTestHub(t)

	alice := connectWS(t, server)
	bob := connectWS(t, server)
	authenticate(t, alice, "token-alice")
	authenticate(t, bob, "token-bob")

	joinCurriculum(t, alice, "c1")
	time.Sleep(50 * time.Millisecond)
	joinCurriculum(t, bob, "c1")
	readJSON(t, alice) // user_joined for bob
	time.Sleep(50 * time.Millisecond)

	hub.SendToCurriculum("c1", EventCurriculumDeleted, map[string]string{"curriculumId": "c1"})

	// Server-originated events reach every member, no sender exclusion.
	for _, conn := range []*websocket.Conn{alice, bob} {
		msg := readJSON(t, conn)
		assert.Equal(t, EventCurriculumDeleted, msg["event"])
		assert.Equal(t, "c1", payloadOf(t, msg)["curriculumId"])
	}
}

func TestHub_SendToUser(t *testing.T) {
	hub, server := setupTestHub(t)

	alice := connectWS(t, server)
	bob := connectWS(t, server)
	authenticate(t, alice, "token-alice")
	authenticate(t, bob, "token-bob")
	time.Sleep(50 * time.Millisecond)

	hub.SendToUser("alice", EventVersionRestored, map[string]string{"curriculumId": "c1"})

	msg := readJSON(t, alice)
	assert.Equal(t, EventVersionRestored, msg["event"])
	assertSilent(t, bob)
}

func TestHub_SendToEmptyRoom(t *testing.T) {
	hub, _ := setupTestHub(t)

	// Should not panic with no members.
	assert.NotPanics(t, func() {
		hub.SendToCurriculum("ghost", EventCurriculumDeleted, nil)
	})
}

func TestHub_ActiveConnections(t *testing.T) {
	hub, server := setupTestHub(t)

	conn := connectWS(t, server)
	writeEvent(t, conn, EventPing, nil)
	readJSON(t, conn)
	assert.Equal(t, 1, hub.ActiveConnections())

	conn.Close(websocket.StatusNormalClosure, "")
	time.Sleep(200 * time.Millisecond)
	assert.Equal(t, 0, hub.ActiveConnections())
}

func TestHub_CurriculumUsers(t *testing.T) {
	hub, server := setupTestHub(t)

	alice := connectWS(t, server)
	bob := connectWS(t, server)
	authenticate(t, alice, "token-alice")
	authenticate(t, bob, "token-bob")

	joinCurriculum(t, alice, "c1")
	time.Sleep(50 * time.Millisecond)
	joinCurriculum(t, bob, "c1")
	readJSON(t, alice) // user_joined for bob
	time.Sleep(50 * time.Millisecond)

	users := hub.CurriculumUsers("c1")
	assert.ElementsMatch(t, []string{"alice", "bob"}, users)
}
