package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateGINIndexes creates full-text search GIN indexes for PostgreSQL.
// These indexes enable efficient full-text search on title and content;
// they are custom SQL Ent schemas cannot express.
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_curricula_title_gin
		ON curricula USING gin(to_tsvector('english', title))`)
	if err != nil {
		return fmt.Errorf("failed to create title GIN index: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_curricula_content_gin
		ON curricula USING gin(to_tsvector('english', content::text))`)
	if err != nil {
		return fmt.Errorf("failed to create content GIN index: %w", err)
	}

	return nil
}
