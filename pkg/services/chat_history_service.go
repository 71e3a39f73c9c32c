package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lecternhq/lectern/ent"
	"github.com/lecternhq/lectern/ent/chatmessage"
	"github.com/lecternhq/lectern/ent/curriculum"
	"github.com/lecternhq/lectern/pkg/models"
)

// ChatHistoryService manages the saved assistant conversation per curriculum
type ChatHistoryService struct {
	client *ent.Client
}

// NewChatHistoryService creates a new ChatHistoryService
func NewChatHistoryService(client *ent.Client) *ChatHistoryService {
	return &ChatHistoryService{client: client}
}

// verifyOwnership checks the curriculum exists and belongs to the user.
func (s *ChatHistoryService) verifyOwnership(ctx context.Context, userID, curriculumID string) error {
	exists, err := s.client.Curriculum.Query().
		Where(curriculum.IDEQ(curriculumID), curriculum.UserIDEQ(userID)).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("failed to verify curriculum ownership: %w", err)
	}
	if !exists {
		return ErrNotFound
	}
	return nil
}

// History returns a curriculum's saved messages, oldest first.
func (s *ChatHistoryService) History(httpCtx context.Context, userID, curriculumID string) ([]*ent.ChatMessage, error) {
	ctx, cancel := context.WithTimeout(httpCtx, dbTimeout)
	defer cancel()

	if err := s.verifyOwnership(ctx, userID, curriculumID); err != nil {
		return nil, err
	}

	messages, err := s.client.ChatMessage.Query().
		Where(chatmessage.CurriculumIDEQ(curriculumID)).
		Order(ent.Asc(chatmessage.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch chat history: %w", err)
	}
	return messages, nil
}

// SaveMessage appends a complete message to a curriculum's conversation.
func (s *ChatHistoryService) SaveMessage(httpCtx context.Context, userID string, req models.AddChatMessageRequest) (*ent.ChatMessage, error) {
	if req.CurriculumID == "" {
		return nil, NewValidationError("curriculum_id", "required")
	}
	if req.Role != models.RoleUser && req.Role != models.RoleAssistant {
		return nil, NewValidationError("role", "must be user or assistant")
	}
	if req.Content == "" {
		return nil, NewValidationError("content", "required")
	}
	if len(req.Content) > models.MaxChatContentLength {
		return nil, NewValidationError("content",
			fmt.Sprintf("must be at most %d characters", models.MaxChatContentLength))
	}

	ctx, cancel := context.WithTimeout(httpCtx, dbTimeout)
	defer cancel()

	if err := s.verifyOwnership(ctx, userID, req.CurriculumID); err != nil {
		return nil, err
	}

	msg, err := s.client.ChatMessage.Create().
		SetID(uuid.New().String()).
		SetCurriculumID(req.CurriculumID).
		SetRole(chatmessage.Role(req.Role)).
		SetContent(req.Content).
		SetCreatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to save chat message: %w", err)
	}
	return msg, nil
}

// Clear deletes all saved messages for a curriculum. Returns the number of
// messages removed.
func (s *ChatHistoryService) Clear(httpCtx context.Context, userID, curriculumID string) (int, error) {
	ctx, cancel := context.WithTimeout(httpCtx, dbTimeout)
	defer cancel()

	if err := s.verifyOwnership(ctx, userID, curriculumID); err != nil {
		return 0, err
	}

	deleted, err := s.client.ChatMessage.Delete().
		Where(chatmessage.CurriculumIDEQ(curriculumID)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to clear chat history: %w", err)
	}
	return deleted, nil
}
