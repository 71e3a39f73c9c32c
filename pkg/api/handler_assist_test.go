package api

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lecternhq/lectern/pkg/llm"
)

// streamFrame is the superset of all assist stream frame shapes. raw keeps
// the undecoded JSON for assertions on which keys a frame carries.
type streamFrame struct {
	Type        string   `json:"type"`
	Message     string   `json:"message"`
	Content     string   `json:"content"`
	FullMessage string   `json:"fullMessage"`
	Suggestions []string `json:"suggestions"`
	raw         string
}

// parseSSE decodes every "data:" frame in an event-stream body.
func parseSSE(t *testing.T, body string) []streamFrame {
	t.Helper()
	var frames []streamFrame
	for _, line := range strings.Split(body, "\n") {
		data, ok := strings.CutPrefix(line, "data: ")
		if !ok {
			continue
		}
		var ev streamFrame
		require.NoError(t, json.Unmarshal([]byte(data), &ev))
		ev.raw = data
		frames = append(frames, ev)
	}
	return frames
}

func TestAssistChat(t *testing.T) {
	gen := &fakeGenerator{response: strings.Repeat("Here is a detailed eight week outline for your course. ", 4)}
	_, e := newTestServerWithGenerator(t, gen)

	rec := doJSON(t, e, http.MethodPost, "/api/v1/assist/chat", "token-alice", map[string]interface{}{
		"message": "draft an outline",
		"context": map[string]interface{}{"target_audience": "beginners"},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	body := decodeBody(t, rec)
	assert.Equal(t, gen.response, body["message"])
	assert.NotEmpty(t, body["suggestions"])
}

func TestAssistChatRateLimited(t *testing.T) {
	_, e := newTestServerWithGenerator(t, &fakeGenerator{err: llm.ErrRateLimited})

	rec := doJSON(t, e, http.MethodPost, "/api/v1/assist/chat", "token-alice", map[string]interface{}{
		"message": "draft an outline",
	})
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, CodeLLMRateLimited, errorCode(t, rec))
}

func TestAssistRateLimitSurfacesHealthWarning(t *testing.T) {
	_, e := newTestServerWithGenerator(t, &fakeGenerator{err: llm.ErrRateLimited})

	rec := doJSON(t, e, http.MethodPost, "/api/v1/assist/chat", "token-alice", map[string]interface{}{
		"message": "draft an outline",
	})
	require.Equal(t, http.StatusTooManyRequests, rec.Code)

	rec = doJSON(t, e, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	warnings, ok := decodeBody(t, rec)["warnings"].([]interface{})
	require.True(t, ok, "expected warnings in health response: %s", rec.Body.String())
	require.Len(t, warnings, 1)
	warning := warnings[0].(map[string]interface{})
	assert.Equal(t, "llm_provider", warning["category"])
}

func TestAssistChatQuotaExceeded(t *testing.T) {
	_, e := newTestServerWithGenerator(t, &fakeGenerator{err: llm.ErrQuotaExceeded})

	rec := doJSON(t, e, http.MethodPost, "/api/v1/assist/chat", "token-alice", map[string]interface{}{
		"message": "draft an outline",
	})
	require.Equal(t, http.StatusPaymentRequired, rec.Code)
	assert.Equal(t, CodeLLMQuotaExceeded, errorCode(t, rec))
}

func TestAssistChatValidation(t *testing.T) {
	_, e := newTestServer(t)

	rec := doJSON(t, e, http.MethodPost, "/api/v1/assist/chat", "token-alice", map[string]interface{}{
		"message": "",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, CodeValidationError, errorCode(t, rec))
}

func TestAssistStream(t *testing.T) {
	gen := &fakeGenerator{chunks: []string{"Hel", "lo ", "world"}}
	_, e := newTestServerWithGenerator(t, gen)

	rec := doJSON(t, e, http.MethodPost, "/api/v1/assist/stream", "token-alice", map[string]interface{}{
		"message": "say hello",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/event-stream")

	frames := parseSSE(t, rec.Body.String())
	require.Len(t, frames, 5)

	assert.Equal(t, "start", frames[0].Type)
	assert.Equal(t, "chunk", frames[1].Type)
	assert.Equal(t, "Hel", frames[1].Content)
	assert.Equal(t, "lo ", frames[2].Content)
	assert.Equal(t, "world", frames[3].Content)

	end := frames[4]
	assert.Equal(t, "end", end.Type)
	assert.Equal(t, "Hello world", end.FullMessage)
	// Short replies get no follow-up suggestions.
	assert.Empty(t, end.Suggestions)
}

func TestAssistStreamEmptyCompletionEndFrame(t *testing.T) {
	_, e := newTestServerWithGenerator(t, &fakeGenerator{})

	rec := doJSON(t, e, http.MethodPost, "/api/v1/assist/stream", "token-alice", map[string]interface{}{
		"message": "say nothing",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	frames := parseSSE(t, rec.Body.String())
	require.Len(t, frames, 2)
	assert.Equal(t, "start", frames[0].Type)

	// The end frame keeps a fixed shape even with zero chunks: fullMessage
	// and suggestions are present, not omitted.
	end := frames[1]
	assert.Equal(t, "end", end.Type)
	assert.Contains(t, end.raw, `"fullMessage":""`)
	assert.Contains(t, end.raw, `"suggestions":[]`)
}

func TestAssistStreamProviderError(t *testing.T) {
	_, e := newTestServerWithGenerator(t, &fakeGenerator{err: llm.ErrRateLimited})

	rec := doJSON(t, e, http.MethodPost, "/api/v1/assist/stream", "token-alice", map[string]interface{}{
		"message": "say hello",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	frames := parseSSE(t, rec.Body.String())
	require.Len(t, frames, 2, "expected start then a single error frame")
	assert.Equal(t, "start", frames[0].Type)
	assert.Equal(t, "error", frames[1].Type)
	assert.Contains(t, frames[1].Message, "rate limit")

	for _, f := range frames {
		assert.NotEqual(t, "end", f.Type)
	}
}

func TestAssistStreamValidation(t *testing.T) {
	_, e := newTestServer(t)

	rec := doJSON(t, e, http.MethodPost, "/api/v1/assist/stream", "token-alice", map[string]interface{}{})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, CodeValidationError, errorCode(t, rec))
}

func TestAssistEnhance(t *testing.T) {
	gen := &fakeGenerator{response: "# Improved outline\n\n- step one\n- step two"}
	_, e := newTestServerWithGenerator(t, gen)

	rec := doJSON(t, e, http.MethodPost, "/api/v1/assist/enhance", "token-alice", map[string]interface{}{
		"content": "outline: step one, step two",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	body := decodeBody(t, rec)
	assert.Equal(t, gen.response, body["enhanced_content"])
	assert.NotEmpty(t, body["improvements"])
}

func TestAssistEnhanceValidation(t *testing.T) {
	_, e := newTestServer(t)

	rec := doJSON(t, e, http.MethodPost, "/api/v1/assist/enhance", "token-alice", map[string]interface{}{
		"content": "",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAssistQuestions(t *testing.T) {
	gen := &fakeGenerator{response: "1. Who are the target learners?\n2. What tools will students use?\n3. How will you assess progress?"}
	_, e := newTestServerWithGenerator(t, gen)

	rec := doJSON(t, e, http.MethodPost, "/api/v1/assist/questions", "token-alice", map[string]interface{}{
		"context": map[string]interface{}{},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	body := decodeBody(t, rec)
	questions, ok := body["questions"].([]interface{})
	require.True(t, ok)
	assert.Len(t, questions, 3)
	assert.NotEmpty(t, body["categories"])
}
