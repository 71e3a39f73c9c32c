package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/lecternhq/lectern/ent"
	"github.com/lecternhq/lectern/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurriculumService_Create(t *testing.T) {
	svc := NewCurriculumService(newTestClient(t))
	ctx := context.Background()

	t.Run("creates curriculum with first version", func(t *testing.T) {
		c, err := svc.Create(ctx, models.CreateCurriculumRequest{
			UserID:  "user-1",
			Title:   "Intro to AI",
			Content: testContent("week one"),
		})
		require.NoError(t, err)
		assert.Equal(t, "user-1", c.UserID)
		assert.Equal(t, "Intro to AI", c.Title)
		assert.Equal(t, "online", string(c.Type))
		assert.False(t, c.IsPublic)

		versions, err := svc.ListVersions(ctx, "user-1", c.ID)
		require.NoError(t, err)
		require.Len(t, versions, 1)
		assert.Equal(t, 1, versions[0].VersionNumber)
		assert.Equal(t, c.Content, versions[0].Content)
	})

	t.Run("validates title required", func(t *testing.T) {
		_, err := svc.Create(ctx, models.CreateCurriculumRequest{
			UserID:  "user-1",
			Content: testContent("x"),
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("validates title length", func(t *testing.T) {
		_, err := svc.Create(ctx, models.CreateCurriculumRequest{
			UserID:  "user-1",
			Title:   strings.Repeat("a", models.MaxTitleLength+1),
			Content: testContent("x"),
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("validates type", func(t *testing.T) {
		_, err := svc.Create(ctx, models.CreateCurriculumRequest{
			UserID:  "user-1",
			Title:   "Bad type",
			Type:    "in-person",
			Content: testContent("x"),
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("validates content required", func(t *testing.T) {
		_, err := svc.Create(ctx, models.CreateCurriculumRequest{
			UserID: "user-1",
			Title:  "No content",
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestCurriculumService_GetOwnership(t *testing.T) {
	svc := NewCurriculumService(newTestClient(t))
	ctx := context.Background()

	c := createTestCurriculum(t, svc, "owner", "Mine")

	t.Run("owner can read", func(t *testing.T) {
		got, err := svc.Get(ctx, "owner", c.ID)
		require.NoError(t, err)
		assert.Equal(t, c.ID, got.ID)
	})

	t.Run("other user gets not found", func(t *testing.T) {
		_, err := svc.Get(ctx, "intruder", c.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("unknown id gets not found", func(t *testing.T) {
		_, err := svc.Get(ctx, "owner", "nope")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestCurriculumService_GetShared(t *testing.T) {
	client := newTestClient(t)
	svc := NewCurriculumService(client)
	ctx := context.Background()

	isPublic := true
	public, err := svc.Create(ctx, models.CreateCurriculumRequest{
		UserID:   "owner",
		Title:    "Public course",
		Content:  testContent("x"),
		IsPublic: &isPublic,
	})
	require.NoError(t, err)
	private := createTestCurriculum(t, svc, "owner", "Private course")

	t.Run("public curriculum readable without ownership", func(t *testing.T) {
		got, err := svc.GetShared(ctx, public.ID)
		require.NoError(t, err)
		assert.Equal(t, public.ID, got.ID)
	})

	t.Run("private curriculum is not shared", func(t *testing.T) {
		_, err := svc.GetShared(ctx, private.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestCurriculumService_List(t *testing.T) {
	svc := NewCurriculumService(newTestClient(t))
	ctx := context.Background()

	for i := 0; i < 15; i++ {
		createTestCurriculum(t, svc, "lister", "Course "+string(rune('A'+i)))
	}
	createTestCurriculum(t, svc, "someone-else", "Not mine")

	t.Run("paginates with defaults", func(t *testing.T) {
		result, err := svc.List(ctx, models.ListCurriculaRequest{UserID: "lister"})
		require.NoError(t, err)
		assert.Len(t, result.Curricula, 10)
		assert.Equal(t, 15, result.Pagination.Total)
		assert.Equal(t, 2, result.Pagination.TotalPages)
		assert.True(t, result.Pagination.HasNext)
		assert.False(t, result.Pagination.HasPrev)
	})

	t.Run("second page", func(t *testing.T) {
		result, err := svc.List(ctx, models.ListCurriculaRequest{UserID: "lister", Page: 2})
		require.NoError(t, err)
		assert.Len(t, result.Curricula, 5)
		assert.False(t, result.Pagination.HasNext)
		assert.True(t, result.Pagination.HasPrev)
	})

	t.Run("search by title", func(t *testing.T) {
		result, err := svc.List(ctx, models.ListCurriculaRequest{UserID: "lister", Search: "course a"})
		require.NoError(t, err)
		require.Len(t, result.Curricula, 1)
		assert.Equal(t, "Course A", result.Curricula[0].Title)
	})

	t.Run("sort by title ascending", func(t *testing.T) {
		result, err := svc.List(ctx, models.ListCurriculaRequest{
			UserID: "lister", SortBy: "title", SortOrder: "asc", Limit: 3,
		})
		require.NoError(t, err)
		require.Len(t, result.Curricula, 3)
		assert.Equal(t, "Course A", result.Curricula[0].Title)
		assert.Equal(t, "Course B", result.Curricula[1].Title)
	})

	t.Run("rejects unknown sort field", func(t *testing.T) {
		_, err := svc.List(ctx, models.ListCurriculaRequest{UserID: "lister", SortBy: "user_id"})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("filter by type", func(t *testing.T) {
		hybrid := models.TypeHybrid
		_, err := svc.Create(ctx, models.CreateCurriculumRequest{
			UserID:  "lister",
			Title:   "Hybrid course",
			Type:    hybrid,
			Content: testContent("x"),
		})
		require.NoError(t, err)

		result, err := svc.List(ctx, models.ListCurriculaRequest{UserID: "lister", Type: hybrid})
		require.NoError(t, err)
		require.Len(t, result.Curricula, 1)
		assert.Equal(t, "Hybrid course", result.Curricula[0].Title)
	})
}

func TestCurriculumService_Update(t *testing.T) {
	svc := NewCurriculumService(newTestClient(t))
	ctx := context.Background()

	t.Run("content change appends version", func(t *testing.T) {
		c := createTestCurriculum(t, svc, "editor", "Versioned")

		newContent := testContent("revised")
		updated, err := svc.Update(ctx, "editor", c.ID, models.UpdateCurriculumRequest{
			Content: newContent,
		})
		require.NoError(t, err)
		assert.Equal(t, newContent, updated.Content)

		versions, err := svc.ListVersions(ctx, "editor", c.ID)
		require.NoError(t, err)
		require.Len(t, versions, 2)
		assert.Equal(t, 2, versions[0].VersionNumber)
		assert.Equal(t, newContent, versions[0].Content)
	})

	t.Run("metadata-only change does not append version", func(t *testing.T) {
		c := createTestCurriculum(t, svc, "editor", "Stable")

		title := "Renamed"
		_, err := svc.Update(ctx, "editor", c.ID, models.UpdateCurriculumRequest{Title: &title})
		require.NoError(t, err)

		versions, err := svc.ListVersions(ctx, "editor", c.ID)
		require.NoError(t, err)
		assert.Len(t, versions, 1)
	})

	t.Run("non-owner cannot update", func(t *testing.T) {
		c := createTestCurriculum(t, svc, "editor", "Protected")
		title := "Hijacked"
		_, err := svc.Update(ctx, "intruder", c.ID, models.UpdateCurriculumRequest{Title: &title})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestCurriculumService_Delete(t *testing.T) {
	client := newTestClient(t)
	svc := NewCurriculumService(client)
	chatSvc := NewChatHistoryService(client)
	ctx := context.Background()

	c := createTestCurriculum(t, svc, "owner", "Doomed")
	_, err := chatSvc.SaveMessage(ctx, "owner", models.AddChatMessageRequest{
		CurriculumID: c.ID,
		Role:         models.RoleUser,
		Content:      "keep this?",
	})
	require.NoError(t, err)

	t.Run("non-owner cannot delete", func(t *testing.T) {
		err := svc.Delete(ctx, "intruder", c.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("delete removes curriculum and dependents", func(t *testing.T) {
		require.NoError(t, svc.Delete(ctx, "owner", c.ID))

		_, err := svc.Get(ctx, "owner", c.ID)
		assert.ErrorIs(t, err, ErrNotFound)

		_, err = chatSvc.History(ctx, "owner", c.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestCurriculumService_Duplicate(t *testing.T) {
	svc := NewCurriculumService(newTestClient(t))
	ctx := context.Background()

	original := createTestCurriculum(t, svc, "owner", "Original")
	// Advance the original's history so the copy's reset is observable.
	_, err := svc.Update(ctx, "owner", original.ID, models.UpdateCurriculumRequest{
		Content: testContent("v2"),
	})
	require.NoError(t, err)

	dup, err := svc.Duplicate(ctx, "owner", original.ID)
	require.NoError(t, err)

	assert.Equal(t, "Original (copy)", dup.Title)
	assert.NotEqual(t, original.ID, dup.ID)
	assert.Equal(t, testContent("v2"), dup.Content)

	versions, err := svc.ListVersions(ctx, "owner", dup.ID)
	require.NoError(t, err)
	require.Len(t, versions, 1)
	assert.Equal(t, 1, versions[0].VersionNumber)
}

func TestCurriculumService_VersionWriteFailureRollsBack(t *testing.T) {
	client := newTestClient(t)
	svc := NewCurriculumService(client)
	ctx := context.Background()

	c := createTestCurriculum(t, svc, "owner", "Atomic")

	// Fail every snapshot write from here on. The paired curriculum write
	// must roll back with it.
	client.CurriculumVersion.Use(func(next ent.Mutator) ent.Mutator {
		return ent.MutateFunc(func(ctx context.Context, m ent.Mutation) (ent.Value, error) {
			return nil, errors.New("snapshot write failed")
		})
	})

	t.Run("update leaves content untouched", func(t *testing.T) {
		_, err := svc.Update(ctx, "owner", c.ID, models.UpdateCurriculumRequest{
			Content: testContent("v2"),
		})
		require.Error(t, err)

		got, err := svc.Get(ctx, "owner", c.ID)
		require.NoError(t, err)
		assert.Equal(t, c.Content, got.Content)

		versions, err := svc.ListVersions(ctx, "owner", c.ID)
		require.NoError(t, err)
		assert.Len(t, versions, 1)
	})

	t.Run("create leaves no curriculum behind", func(t *testing.T) {
		_, err := svc.Create(ctx, models.CreateCurriculumRequest{
			UserID:  "owner",
			Title:   "Orphan",
			Content: testContent("x"),
		})
		require.Error(t, err)

		result, err := svc.List(ctx, models.ListCurriculaRequest{UserID: "owner"})
		require.NoError(t, err)
		require.Len(t, result.Curricula, 1)
		assert.Equal(t, "Atomic", result.Curricula[0].Title)
	})

	t.Run("duplicate leaves no copy behind", func(t *testing.T) {
		_, err := svc.Duplicate(ctx, "owner", c.ID)
		require.Error(t, err)

		result, err := svc.List(ctx, models.ListCurriculaRequest{UserID: "owner"})
		require.NoError(t, err)
		assert.Len(t, result.Curricula, 1)
	})

	t.Run("restore appends nothing", func(t *testing.T) {
		_, err := svc.RestoreVersion(ctx, "owner", c.ID, 1)
		require.Error(t, err)

		versions, err := svc.ListVersions(ctx, "owner", c.ID)
		require.NoError(t, err)
		assert.Len(t, versions, 1)
	})
}

func TestCurriculumService_RestoreVersion(t *testing.T) {
	svc := NewCurriculumService(newTestClient(t))
	ctx := context.Background()

	c := createTestCurriculum(t, svc, "owner", "History")
	v1Content := c.Content
	_, err := svc.Update(ctx, "owner", c.ID, models.UpdateCurriculumRequest{
		Content: testContent("v2"),
	})
	require.NoError(t, err)

	t.Run("restore copies old content and appends a version", func(t *testing.T) {
		result, err := svc.RestoreVersion(ctx, "owner", c.ID, 1)
		require.NoError(t, err)

		assert.Equal(t, 3, result.CurrentVersion)
		assert.Equal(t, 1, result.RestoredFromVersion)
		assert.Equal(t, v1Content, result.Curriculum.Content)

		versions, err := svc.ListVersions(ctx, "owner", c.ID)
		require.NoError(t, err)
		require.Len(t, versions, 3)
		assert.Equal(t, v1Content, versions[0].Content)
	})

	t.Run("unknown version", func(t *testing.T) {
		_, err := svc.RestoreVersion(ctx, "owner", c.ID, 99)
		assert.ErrorIs(t, err, ErrVersionNotFound)
	})

	t.Run("non-owner cannot restore", func(t *testing.T) {
		_, err := svc.RestoreVersion(ctx, "intruder", c.ID, 1)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
