package assist

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/lecternhq/lectern/pkg/llm"
	"github.com/lecternhq/lectern/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeGenerator records the last request and returns canned output.
type fakeGenerator struct {
	response string
	chunks   []string
	err      error
	lastReq  llm.Request
}

func (f *fakeGenerator) Generate(_ context.Context, req llm.Request) (string, error) {
	f.lastReq = req
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func (f *fakeGenerator) GenerateStream(_ context.Context, req llm.Request) (<-chan llm.StreamChunk, <-chan error) {
	f.lastReq = req
	chunks := make(chan llm.StreamChunk, len(f.chunks))
	errs := make(chan error, 1)
	for _, c := range f.chunks {
		chunks <- llm.StreamChunk{Content: c}
	}
	if f.err != nil {
		errs <- f.err
	}
	close(chunks)
	close(errs)
	return chunks, errs
}

func newTestService(gen llm.Generator) *Service {
	return NewService(gen, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestService_Chat(t *testing.T) {
	gen := &fakeGenerator{response: strings.Repeat("A detailed answer. ", 10)}
	s := newTestService(gen)

	result, err := s.Chat(context.Background(), models.ChatAssistRequest{
		Message: "Draft a week one plan",
		Context: models.CurriculumContext{TargetAudience: "teachers"},
	})
	require.NoError(t, err)

	assert.Equal(t, gen.response, result.Message)
	assert.Len(t, result.Suggestions, 3)

	// System prompt carries the context; last message is the user's.
	assert.Contains(t, gen.lastReq.System, "teachers")
	require.NotEmpty(t, gen.lastReq.Messages)
	last := gen.lastReq.Messages[len(gen.lastReq.Messages)-1]
	assert.Equal(t, models.RoleUser, last.Role)
	assert.Equal(t, "Draft a week one plan", last.Content)
}

func TestService_Chat_HistoryWindow(t *testing.T) {
	gen := &fakeGenerator{response: "ok"}
	s := newTestService(gen)

	history := make([]models.AssistMessage, 30)
	for i := range history {
		history[i] = models.AssistMessage{Role: models.RoleUser, Content: "older"}
	}
	history[29].Content = "newest"

	_, err := s.Chat(context.Background(), models.ChatAssistRequest{
		Message: "next",
		Context: models.CurriculumContext{ChatHistory: history},
	})
	require.NoError(t, err)

	// 20 history turns plus the new message.
	require.Len(t, gen.lastReq.Messages, models.MaxHistoryMessages+1)
	assert.Equal(t, "newest", gen.lastReq.Messages[models.MaxHistoryMessages-1].Content)
}

func TestService_Chat_Error(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("provider down")}
	s := newTestService(gen)

	_, err := s.Chat(context.Background(), models.ChatAssistRequest{Message: "hi"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "provider down")
}

func TestService_ChatStream(t *testing.T) {
	gen := &fakeGenerator{chunks: []string{"Hel", "lo ", "world"}}
	s := newTestService(gen)

	chunks, errs := s.ChatStream(context.Background(), models.ChatAssistRequest{Message: "hi"})

	var full strings.Builder
	for chunk := range chunks {
		full.WriteString(chunk.Content)
	}
	require.NoError(t, <-errs)
	assert.Equal(t, "Hello world", full.String())
}

func TestService_Enhance(t *testing.T) {
	enhanced := "# Improved\n- point one\n- point two\n" + strings.Repeat("detail ", 20)
	gen := &fakeGenerator{response: enhanced}
	s := newTestService(gen)

	result, err := s.Enhance(context.Background(), models.EnhanceRequest{
		Content: "basic outline",
		Context: models.CurriculumContext{
			ChatHistory: []models.AssistMessage{{Role: models.RoleUser, Content: "earlier"}},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, enhanced, result.EnhancedContent)
	assert.Equal(t, len("basic outline"), result.OriginalLength)
	assert.Equal(t, len(enhanced), result.EnhancedLength)
	assert.NotEmpty(t, result.Improvements)

	// Enhancement is standalone: history must not be forwarded.
	require.Len(t, gen.lastReq.Messages, 1)
	assert.Contains(t, gen.lastReq.Messages[0].Content, "basic outline")
}

func TestService_Questions(t *testing.T) {
	gen := &fakeGenerator{response: "1. What level are the learners at?\n2. Which platform hosts the course?\n3. Anything else?"}
	s := newTestService(gen)

	result, err := s.Questions(context.Background(), models.QuestionsRequest{})
	require.NoError(t, err)

	require.Len(t, result.Questions, 3)
	assert.NotEmpty(t, result.Categories)
	assert.Contains(t, gen.lastReq.Messages[0].Content, "numbered")
}
