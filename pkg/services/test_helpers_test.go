package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/lecternhq/lectern/ent"
	"github.com/lecternhq/lectern/ent/enttest"
	"github.com/lecternhq/lectern/pkg/models"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
)

// newTestClient creates an in-memory SQLite-backed Ent client with the schema
// migrated. Each test gets its own database.
func newTestClient(t *testing.T) *ent.Client {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name())
	client := enttest.Open(t, "sqlite3", dsn)
	t.Cleanup(func() {
		_ = client.Close()
	})
	return client
}

func testContent(summary string) map[string]interface{} {
	return map[string]interface{}{
		"summary":  summary,
		"chapters": []interface{}{},
	}
}

// createTestCurriculum inserts a curriculum (with its first version) for userID.
func createTestCurriculum(t *testing.T, svc *CurriculumService, userID, title string) *ent.Curriculum {
	t.Helper()
	c, err := svc.Create(context.Background(), models.CreateCurriculumRequest{
		UserID:  userID,
		Title:   title,
		Content: testContent("intro to AI"),
	})
	require.NoError(t, err)
	return c
}
