// Package services contains business logic service layer implementations.
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lecternhq/lectern/ent"
	"github.com/lecternhq/lectern/ent/curriculum"
	"github.com/lecternhq/lectern/ent/curriculumversion"
	"github.com/lecternhq/lectern/pkg/models"
)

const dbTimeout = 5 * time.Second

// CurriculumService manages curricula and their version history
type CurriculumService struct {
	client *ent.Client
}

// NewCurriculumService creates a new CurriculumService
func NewCurriculumService(client *ent.Client) *CurriculumService {
	return &CurriculumService{client: client}
}

func validateTitle(title string) error {
	if title == "" {
		return NewValidationError("title", "required")
	}
	if len(title) > models.MaxTitleLength {
		return NewValidationError("title",
			fmt.Sprintf("must be at most %d characters", models.MaxTitleLength))
	}
	return nil
}

func validateOptionalField(field string, value *string, max int) error {
	if value != nil && len(*value) > max {
		return NewValidationError(field,
			fmt.Sprintf("must be at most %d characters", max))
	}
	return nil
}

// validateContent checks the structured body. Only the summary has a hard
// limit; the rest of the shape is frontend-defined.
func validateContent(content map[string]interface{}) error {
	if summary, ok := content["summary"].(string); ok {
		if len(summary) > models.MaxSummaryLength {
			return NewValidationError("content.summary",
				fmt.Sprintf("must be at most %d characters", models.MaxSummaryLength))
		}
	}
	return nil
}

// ownedCurriculum fetches a curriculum scoped to its owner. Returns
// ErrNotFound both when the curriculum does not exist and when it belongs to
// someone else. Pass tx.Curriculum when the caller is inside a transaction so
// later mutations on the entity run on the same connection.
func ownedCurriculum(ctx context.Context, curricula *ent.CurriculumClient, userID, id string) (*ent.Curriculum, error) {
	c, err := curricula.Query().
		Where(curriculum.IDEQ(id), curriculum.UserIDEQ(userID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get curriculum: %w", err)
	}
	return c, nil
}

// appendVersion writes the next content snapshot for a curriculum. Callers
// run it inside the same transaction as the curriculum write so the row and
// its snapshot land or fail together.
func appendVersion(ctx context.Context, versions *ent.CurriculumVersionClient, curriculumID string, content map[string]interface{}) (int, error) {
	latest, err := versions.Query().
		Where(curriculumversion.CurriculumIDEQ(curriculumID)).
		Order(ent.Desc(curriculumversion.FieldVersionNumber)).
		First(ctx)
	next := 1
	if err == nil {
		next = latest.VersionNumber + 1
	} else if !ent.IsNotFound(err) {
		return 0, fmt.Errorf("failed to query latest version: %w", err)
	}

	_, err = versions.Create().
		SetID(uuid.New().String()).
		SetCurriculumID(curriculumID).
		SetVersionNumber(next).
		SetContent(content).
		SetCreatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to create version: %w", err)
	}
	return next, nil
}

// Create stores a new curriculum and writes its first version snapshot.
func (s *CurriculumService) Create(httpCtx context.Context, req models.CreateCurriculumRequest) (*ent.Curriculum, error) {
	if req.UserID == "" {
		return nil, NewValidationError("user_id", "required")
	}
	if err := validateTitle(req.Title); err != nil {
		return nil, err
	}
	curriculumType := req.Type
	if curriculumType == "" {
		curriculumType = models.TypeOnline
	}
	if !models.ValidCurriculumType(curriculumType) {
		return nil, NewValidationError("type", "must be one of online, offline, hybrid")
	}
	if req.Content == nil {
		return nil, NewValidationError("content", "required")
	}
	if err := validateContent(req.Content); err != nil {
		return nil, err
	}
	if err := validateOptionalField("target_audience", req.TargetAudience, models.MaxTargetAudienceLength); err != nil {
		return nil, err
	}
	if err := validateOptionalField("duration", req.Duration, models.MaxDurationLength); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(httpCtx, dbTimeout)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now()
	create := tx.Curriculum.Create().
		SetID(uuid.New().String()).
		SetUserID(req.UserID).
		SetTitle(req.Title).
		SetType(curriculum.Type(curriculumType)).
		SetContent(req.Content).
		SetCreatedAt(now).
		SetUpdatedAt(now)
	if req.TargetAudience != nil {
		create.SetTargetAudience(*req.TargetAudience)
	}
	if req.Duration != nil {
		create.SetDuration(*req.Duration)
	}
	if req.Metadata != nil {
		create.SetMetadata(req.Metadata)
	}
	if req.IsPublic != nil {
		create.SetIsPublic(*req.IsPublic)
	}

	c, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create curriculum: %w", err)
	}

	if _, err := appendVersion(ctx, tx.CurriculumVersion, c.ID, c.Content); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return c, nil
}

// Get returns a curriculum owned by the given user.
func (s *CurriculumService) Get(httpCtx context.Context, userID, id string) (*ent.Curriculum, error) {
	ctx, cancel := context.WithTimeout(httpCtx, dbTimeout)
	defer cancel()
	return ownedCurriculum(ctx, s.client.Curriculum, userID, id)
}

// GetShared returns a publicly shared curriculum without ownership checks.
func (s *CurriculumService) GetShared(httpCtx context.Context, id string) (*ent.Curriculum, error) {
	ctx, cancel := context.WithTimeout(httpCtx, dbTimeout)
	defer cancel()

	c, err := s.client.Curriculum.Query().
		Where(curriculum.IDEQ(id), curriculum.IsPublic(true)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get shared curriculum: %w", err)
	}
	return c, nil
}

// List returns a page of the user's curricula with optional search, filters
// and sorting.
func (s *CurriculumService) List(httpCtx context.Context, req models.ListCurriculaRequest) (*models.CurriculumListResponse, error) {
	if req.UserID == "" {
		return nil, NewValidationError("user_id", "required")
	}
	if req.Page < 1 {
		req.Page = 1
	}
	if req.Limit < 1 {
		req.Limit = 10
	}
	if req.Limit > 50 {
		req.Limit = 50
	}
	if req.Type != "" && !models.ValidCurriculumType(req.Type) {
		return nil, NewValidationError("type", "must be one of online, offline, hybrid")
	}

	ctx, cancel := context.WithTimeout(httpCtx, dbTimeout)
	defer cancel()

	query := s.client.Curriculum.Query().
		Where(curriculum.UserIDEQ(req.UserID))
	if req.Search != "" {
		query = query.Where(curriculum.TitleContainsFold(req.Search))
	}
	if req.Type != "" {
		query = query.Where(curriculum.TypeEQ(curriculum.Type(req.Type)))
	}
	if req.TargetAudience != "" {
		query = query.Where(curriculum.TargetAudienceEQ(req.TargetAudience))
	}

	total, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count curricula: %w", err)
	}

	sortField := curriculum.FieldUpdatedAt
	switch req.SortBy {
	case "created_at":
		sortField = curriculum.FieldCreatedAt
	case "title":
		sortField = curriculum.FieldTitle
	case "", "updated_at":
	default:
		return nil, NewValidationError("sort", "must be one of created_at, updated_at, title")
	}
	order := ent.Desc(sortField)
	if req.SortOrder == "asc" {
		order = ent.Asc(sortField)
	}

	curricula, err := query.
		Order(order).
		Offset((req.Page - 1) * req.Limit).
		Limit(req.Limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list curricula: %w", err)
	}

	totalPages := (total + req.Limit - 1) / req.Limit
	return &models.CurriculumListResponse{
		Curricula: curricula,
		Pagination: models.Pagination{
			Page:       req.Page,
			Limit:      req.Limit,
			Total:      total,
			TotalPages: totalPages,
			HasNext:    req.Page < totalPages,
			HasPrev:    req.Page > 1,
		},
	}, nil
}

// Update applies a partial update. A content change appends a new version
// snapshot; other field changes do not touch version history.
func (s *CurriculumService) Update(httpCtx context.Context, userID, id string, req models.UpdateCurriculumRequest) (*ent.Curriculum, error) {
	if req.Title != nil {
		if err := validateTitle(*req.Title); err != nil {
			return nil, err
		}
	}
	if req.Type != nil && !models.ValidCurriculumType(*req.Type) {
		return nil, NewValidationError("type", "must be one of online, offline, hybrid")
	}
	if req.Content != nil {
		if err := validateContent(req.Content); err != nil {
			return nil, err
		}
	}
	if err := validateOptionalField("target_audience", req.TargetAudience, models.MaxTargetAudienceLength); err != nil {
		return nil, err
	}
	if err := validateOptionalField("duration", req.Duration, models.MaxDurationLength); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(httpCtx, dbTimeout)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	existing, err := ownedCurriculum(ctx, tx.Curriculum, userID, id)
	if err != nil {
		return nil, err
	}

	update := existing.Update().SetUpdatedAt(time.Now())
	if req.Title != nil {
		update.SetTitle(*req.Title)
	}
	if req.TargetAudience != nil {
		update.SetTargetAudience(*req.TargetAudience)
	}
	if req.Duration != nil {
		update.SetDuration(*req.Duration)
	}
	if req.Type != nil {
		update.SetType(curriculum.Type(*req.Type))
	}
	if req.Content != nil {
		update.SetContent(req.Content)
	}
	if req.Metadata != nil {
		update.SetMetadata(req.Metadata)
	}
	if req.IsPublic != nil {
		update.SetIsPublic(*req.IsPublic)
	}

	updated, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update curriculum: %w", err)
	}

	if req.Content != nil {
		if _, err := appendVersion(ctx, tx.CurriculumVersion, id, updated.Content); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return updated, nil
}

// Delete removes a curriculum. Versions and chat history go with it via
// cascade.
func (s *CurriculumService) Delete(httpCtx context.Context, userID, id string) error {
	ctx, cancel := context.WithTimeout(httpCtx, dbTimeout)
	defer cancel()

	if _, err := ownedCurriculum(ctx, s.client.Curriculum, userID, id); err != nil {
		return err
	}

	if err := s.client.Curriculum.DeleteOneID(id).Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete curriculum: %w", err)
	}
	return nil
}

// Duplicate copies a curriculum into a fresh one with its own version
// history. The copy starts at version 1; chat history is not copied.
func (s *CurriculumService) Duplicate(httpCtx context.Context, userID, id string) (*ent.Curriculum, error) {
	ctx, cancel := context.WithTimeout(httpCtx, dbTimeout)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	original, err := ownedCurriculum(ctx, tx.Curriculum, userID, id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	create := tx.Curriculum.Create().
		SetID(uuid.New().String()).
		SetUserID(userID).
		SetTitle(original.Title + " (copy)").
		SetType(original.Type).
		SetContent(original.Content).
		SetCreatedAt(now).
		SetUpdatedAt(now)
	if original.TargetAudience != nil {
		create.SetTargetAudience(*original.TargetAudience)
	}
	if original.Duration != nil {
		create.SetDuration(*original.Duration)
	}
	if original.Metadata != nil {
		create.SetMetadata(original.Metadata)
	}

	dup, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to duplicate curriculum: %w", err)
	}

	if _, err := appendVersion(ctx, tx.CurriculumVersion, dup.ID, dup.Content); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return dup, nil
}

// ListVersions returns a curriculum's version history, newest first.
func (s *CurriculumService) ListVersions(httpCtx context.Context, userID, id string) ([]*ent.CurriculumVersion, error) {
	ctx, cancel := context.WithTimeout(httpCtx, dbTimeout)
	defer cancel()

	if _, err := ownedCurriculum(ctx, s.client.Curriculum, userID, id); err != nil {
		return nil, err
	}

	versions, err := s.client.CurriculumVersion.Query().
		Where(curriculumversion.CurriculumIDEQ(id)).
		Order(ent.Desc(curriculumversion.FieldVersionNumber)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list versions: %w", err)
	}
	return versions, nil
}

// RestoreResult describes a completed version restore.
type RestoreResult struct {
	Curriculum          *ent.Curriculum `json:"curriculum"`
	CurrentVersion      int             `json:"current_version"`
	RestoredFromVersion int             `json:"restored_from_version"`
}

// RestoreVersion copies an old snapshot's content back onto the curriculum.
// The restore itself is recorded as a new version; history is append-only.
func (s *CurriculumService) RestoreVersion(httpCtx context.Context, userID, id string, versionNumber int) (*RestoreResult, error) {
	ctx, cancel := context.WithTimeout(httpCtx, dbTimeout)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	existing, err := ownedCurriculum(ctx, tx.Curriculum, userID, id)
	if err != nil {
		return nil, err
	}

	version, err := tx.CurriculumVersion.Query().
		Where(
			curriculumversion.CurriculumIDEQ(id),
			curriculumversion.VersionNumberEQ(versionNumber),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrVersionNotFound
		}
		return nil, fmt.Errorf("failed to get version: %w", err)
	}

	updated, err := existing.Update().
		SetContent(version.Content).
		SetUpdatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to restore curriculum: %w", err)
	}

	next, err := appendVersion(ctx, tx.CurriculumVersion, id, version.Content)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return &RestoreResult{
		Curriculum:          updated,
		CurrentVersion:      next,
		RestoredFromVersion: versionNumber,
	}, nil
}
