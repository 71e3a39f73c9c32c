package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	echo "github.com/labstack/echo/v5"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/lecternhq/lectern/ent/enttest"
	"github.com/lecternhq/lectern/pkg/assist"
	"github.com/lecternhq/lectern/pkg/auth"
	"github.com/lecternhq/lectern/pkg/config"
	"github.com/lecternhq/lectern/pkg/events"
	"github.com/lecternhq/lectern/pkg/llm"
	"github.com/lecternhq/lectern/pkg/services"
)

// testVerifier maps fixed tokens to user IDs.
type testVerifier struct{}

func (testVerifier) Verify(token string) (auth.Identity, error) {
	switch token {
	case "token-alice":
		return auth.Identity{UserID: "alice"}, nil
	case "token-bob":
		return auth.Identity{UserID: "bob"}, nil
	default:
		return auth.Identity{}, auth.ErrInvalidToken
	}
}

// fakeGenerator is a canned llm.Generator.
type fakeGenerator struct {
	response string
	chunks   []string
	err      error
}

func (f *fakeGenerator) Generate(_ context.Context, _ llm.Request) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func (f *fakeGenerator) GenerateStream(_ context.Context, _ llm.Request) (<-chan llm.StreamChunk, <-chan error) {
	chunks := make(chan llm.StreamChunk, len(f.chunks))
	errs := make(chan error, 1)
	if f.err != nil {
		errs <- f.err
	} else {
		for _, content := range f.chunks {
			chunks <- llm.StreamChunk{Content: content}
		}
	}
	close(chunks)
	close(errs)
	return chunks, errs
}

func newTestServer(t *testing.T) (*Server, *echo.Echo) {
	return newTestServerWithGenerator(t, &fakeGenerator{response: "ok"})
}

func newTestServerWithGenerator(t *testing.T, gen llm.Generator) (*Server, *echo.Echo) {
	t.Helper()

	client := enttest.Open(t, "sqlite3",
		fmt.Sprintf("file:api_%s?mode=memory&cache=shared&_fk=1", t.Name()))
	t.Cleanup(func() { client.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{
		AllowedOrigins: []string{"http://localhost:3000"},
	}

	srv := NewServer(
		cfg,
		nil, // no Postgres pool in unit tests
		services.NewCurriculumService(client),
		services.NewChatHistoryService(client),
		assist.NewService(gen, logger),
		events.NewHub(testVerifier{}, 5*time.Second, logger),
		testVerifier{},
		logger,
	)
	srv.SetWarningsService(services.NewSystemWarningsService())
	return srv, srv.Handler()
}

// doJSON performs a request with an optional JSON body and bearer token.
func doJSON(t *testing.T, e *echo.Echo, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

// errorCode extracts the envelope error code from a response body.
func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	body := decodeBody(t, rec)
	errObj, ok := body["error"].(map[string]interface{})
	require.True(t, ok, "response has no error envelope: %s", rec.Body.String())
	code, _ := errObj["code"].(string)
	return code
}
