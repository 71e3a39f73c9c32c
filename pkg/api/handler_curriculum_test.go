package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurriculumCRUD(t *testing.T) {
	_, e := newTestServer(t)

	var curriculumID string

	t.Run("create", func(t *testing.T) {
		rec := doJSON(t, e, http.MethodPost, "/api/v1/curricula", "token-alice", map[string]interface{}{
			"title":   "Go for Backend Engineers",
			"type":    "online",
			"content": map[string]interface{}{"summary": "An eight week course"},
		})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		body := decodeBody(t, rec)
		curriculumID, _ = body["id"].(string)
		require.NotEmpty(t, curriculumID)
		assert.Equal(t, "Go for Backend Engineers", body["title"])
		assert.Equal(t, "alice", body["user_id"])
	})

	t.Run("get", func(t *testing.T) {
		rec := doJSON(t, e, http.MethodGet, "/api/v1/curricula/"+curriculumID, "token-alice", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Go for Backend Engineers", decodeBody(t, rec)["title"])
	})

	t.Run("other user cannot read", func(t *testing.T) {
		rec := doJSON(t, e, http.MethodGet, "/api/v1/curricula/"+curriculumID, "token-bob", nil)
		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, CodeCurriculumNotFound, errorCode(t, rec))
	})

	t.Run("update", func(t *testing.T) {
		rec := doJSON(t, e, http.MethodPut, "/api/v1/curricula/"+curriculumID, "token-alice", map[string]interface{}{
			"title": "Go for Backend Engineers, 2nd edition",
		})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, "Go for Backend Engineers, 2nd edition", decodeBody(t, rec)["title"])
	})

	t.Run("list", func(t *testing.T) {
		rec := doJSON(t, e, http.MethodGet, "/api/v1/curricula?page=1&limit=10", "token-alice", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		body := decodeBody(t, rec)
		pagination, ok := body["pagination"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, float64(1), pagination["total"])
		assert.Equal(t, float64(1), pagination["page"])
		curricula, ok := body["curricula"].([]interface{})
		require.True(t, ok)
		assert.Len(t, curricula, 1)
	})

	t.Run("delete", func(t *testing.T) {
		rec := doJSON(t, e, http.MethodDelete, "/api/v1/curricula/"+curriculumID, "token-alice", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		rec = doJSON(t, e, http.MethodGet, "/api/v1/curricula/"+curriculumID, "token-alice", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestCurriculumValidationEnvelope(t *testing.T) {
	_, e := newTestServer(t)

	rec := doJSON(t, e, http.MethodPost, "/api/v1/curricula", "token-alice", map[string]interface{}{
		"content": map[string]interface{}{"summary": "missing title"},
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeBody(t, rec)
	errObj := body["error"].(map[string]interface{})
	assert.Equal(t, CodeValidationError, errObj["code"])
	details, ok := errObj["details"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "title", details["field"])
	assert.NotEmpty(t, body["timestamp"])
}

func TestAuthMiddleware(t *testing.T) {
	_, e := newTestServer(t)

	t.Run("missing header", func(t *testing.T) {
		rec := doJSON(t, e, http.MethodGet, "/api/v1/curricula", "", nil)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, CodeAuthTokenMissing, errorCode(t, rec))
	})

	t.Run("invalid token", func(t *testing.T) {
		rec := doJSON(t, e, http.MethodGet, "/api/v1/curricula", "garbage", nil)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, CodeAuthTokenInvalid, errorCode(t, rec))
	})
}

func TestSharedCurriculum(t *testing.T) {
	_, e := newTestServer(t)

	rec := doJSON(t, e, http.MethodPost, "/api/v1/curricula", "token-alice", map[string]interface{}{
		"title":   "Public Course",
		"content": map[string]interface{}{"summary": "shareable"},
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	id := decodeBody(t, rec)["id"].(string)

	t.Run("private curriculum is not shared", func(t *testing.T) {
		rec := doJSON(t, e, http.MethodGet, "/api/v1/shared/"+id, "", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("public curriculum readable without auth", func(t *testing.T) {
		rec := doJSON(t, e, http.MethodPut, "/api/v1/curricula/"+id, "token-alice", map[string]interface{}{
			"is_public": true,
		})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		rec = doJSON(t, e, http.MethodGet, "/api/v1/shared/"+id, "", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Public Course", decodeBody(t, rec)["title"])
	})
}

func TestDuplicateCurriculum(t *testing.T) {
	_, e := newTestServer(t)

	rec := doJSON(t, e, http.MethodPost, "/api/v1/curricula", "token-alice", map[string]interface{}{
		"title":   "Original",
		"content": map[string]interface{}{"summary": "the original"},
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	id := decodeBody(t, rec)["id"].(string)

	rec = doJSON(t, e, http.MethodPost, "/api/v1/curricula/"+id+"/duplicate", "token-alice", nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "Original (copy)", body["title"])
	assert.NotEqual(t, id, body["id"])
}

func TestVersionEndpoints(t *testing.T) {
	_, e := newTestServer(t)

	rec := doJSON(t, e, http.MethodPost, "/api/v1/curricula", "token-alice", map[string]interface{}{
		"title":   "Versioned",
		"content": map[string]interface{}{"summary": "v1"},
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	id := decodeBody(t, rec)["id"].(string)

	// Content change appends version 2.
	rec = doJSON(t, e, http.MethodPut, "/api/v1/curricula/"+id, "token-alice", map[string]interface{}{
		"content": map[string]interface{}{"summary": "v2"},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	t.Run("list versions newest first", func(t *testing.T) {
		rec := doJSON(t, e, http.MethodGet, "/api/v1/curricula/"+id+"/versions", "token-alice", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var versions []map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &versions))
		require.Len(t, versions, 2)
		assert.Equal(t, float64(2), versions[0]["version_number"])
		assert.Equal(t, float64(1), versions[1]["version_number"])
	})

	t.Run("restore appends new version", func(t *testing.T) {
		rec := doJSON(t, e, http.MethodPost,
			fmt.Sprintf("/api/v1/curricula/%s/versions/1/restore", id), "token-alice", nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		body := decodeBody(t, rec)
		assert.Equal(t, float64(3), body["current_version"])
		assert.Equal(t, float64(1), body["restored_from_version"])
	})

	t.Run("restore unknown version", func(t *testing.T) {
		rec := doJSON(t, e, http.MethodPost,
			fmt.Sprintf("/api/v1/curricula/%s/versions/99/restore", id), "token-alice", nil)
		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, CodeVersionNotFound, errorCode(t, rec))
	})

	t.Run("restore rejects bad version number", func(t *testing.T) {
		rec := doJSON(t, e, http.MethodPost,
			"/api/v1/curricula/"+id+"/versions/zero/restore", "token-alice", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestChatHistoryEndpoints(t *testing.T) {
	_, e := newTestServer(t)

	rec := doJSON(t, e, http.MethodPost, "/api/v1/curricula", "token-alice", map[string]interface{}{
		"title":   "Chat Course",
		"content": map[string]interface{}{"summary": "with history"},
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	id := decodeBody(t, rec)["id"].(string)

	t.Run("save message", func(t *testing.T) {
		rec := doJSON(t, e, http.MethodPost, "/api/v1/curricula/"+id+"/chat", "token-alice", map[string]interface{}{
			"role":    "user",
			"content": "make week two harder",
		})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	})

	t.Run("history", func(t *testing.T) {
		rec := doJSON(t, e, http.MethodGet, "/api/v1/curricula/"+id+"/chat", "token-alice", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var messages []map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &messages))
		require.Len(t, messages, 1)
		assert.Equal(t, "make week two harder", messages[0]["content"])
	})

	t.Run("clear", func(t *testing.T) {
		rec := doJSON(t, e, http.MethodDelete, "/api/v1/curricula/"+id+"/chat", "token-alice", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, float64(1), decodeBody(t, rec)["deleted"])
	})

	t.Run("invalid role rejected", func(t *testing.T) {
		rec := doJSON(t, e, http.MethodPost, "/api/v1/curricula/"+id+"/chat", "token-alice", map[string]interface{}{
			"role":    "system",
			"content": "nope",
		})
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, CodeValidationError, errorCode(t, rec))
	})
}
