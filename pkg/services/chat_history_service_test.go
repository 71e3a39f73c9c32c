package services

import (
	"context"
	"strings"
	"testing"

	"github.com/lecternhq/lectern/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatHistoryService_SaveMessage(t *testing.T) {
	client := newTestClient(t)
	curriculumSvc := NewCurriculumService(client)
	svc := NewChatHistoryService(client)
	ctx := context.Background()

	c := createTestCurriculum(t, curriculumSvc, "owner", "Chatty")

	t.Run("saves message", func(t *testing.T) {
		msg, err := svc.SaveMessage(ctx, "owner", models.AddChatMessageRequest{
			CurriculumID: c.ID,
			Role:         models.RoleUser,
			Content:      "make week two harder",
		})
		require.NoError(t, err)
		assert.Equal(t, c.ID, msg.CurriculumID)
		assert.Equal(t, "user", string(msg.Role))
	})

	t.Run("validates role", func(t *testing.T) {
		_, err := svc.SaveMessage(ctx, "owner", models.AddChatMessageRequest{
			CurriculumID: c.ID,
			Role:         "system",
			Content:      "hi",
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("validates content required", func(t *testing.T) {
		_, err := svc.SaveMessage(ctx, "owner", models.AddChatMessageRequest{
			CurriculumID: c.ID,
			Role:         models.RoleUser,
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("validates content length", func(t *testing.T) {
		_, err := svc.SaveMessage(ctx, "owner", models.AddChatMessageRequest{
			CurriculumID: c.ID,
			Role:         models.RoleUser,
			Content:      strings.Repeat("a", models.MaxChatContentLength+1),
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("non-owner cannot save", func(t *testing.T) {
		_, err := svc.SaveMessage(ctx, "intruder", models.AddChatMessageRequest{
			CurriculumID: c.ID,
			Role:         models.RoleUser,
			Content:      "hello",
		})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestChatHistoryService_History(t *testing.T) {
	client := newTestClient(t)
	curriculumSvc := NewCurriculumService(client)
	svc := NewChatHistoryService(client)
	ctx := context.Background()

	c := createTestCurriculum(t, curriculumSvc, "owner", "Conversation")

	for _, content := range []string{"first", "second", "third"} {
		role := models.RoleUser
		if content == "second" {
			role = models.RoleAssistant
		}
		_, err := svc.SaveMessage(ctx, "owner", models.AddChatMessageRequest{
			CurriculumID: c.ID,
			Role:         role,
			Content:      content,
		})
		require.NoError(t, err)
	}

	t.Run("returns messages oldest first", func(t *testing.T) {
		messages, err := svc.History(ctx, "owner", c.ID)
		require.NoError(t, err)
		require.Len(t, messages, 3)
		assert.Equal(t, "first", messages[0].Content)
		assert.Equal(t, "assistant", string(messages[1].Role))
		assert.Equal(t, "third", messages[2].Content)
	})

	t.Run("non-owner cannot read", func(t *testing.T) {
		_, err := svc.History(ctx, "intruder", c.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("unknown curriculum", func(t *testing.T) {
		_, err := svc.History(ctx, "owner", "missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("clear removes all messages", func(t *testing.T) {
		deleted, err := svc.Clear(ctx, "owner", c.ID)
		require.NoError(t, err)
		assert.Equal(t, 3, deleted)

		messages, err := svc.History(ctx, "owner", c.ID)
		require.NoError(t, err)
		assert.Empty(t, messages)
	})

	t.Run("non-owner cannot clear", func(t *testing.T) {
		_, err := svc.Clear(ctx, "intruder", c.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
