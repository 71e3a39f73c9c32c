package assist

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/lecternhq/lectern/pkg/llm"
	"github.com/lecternhq/lectern/pkg/models"
)

// Service orchestrates assistant operations on top of a model generator.
type Service struct {
	gen    llm.Generator
	logger *slog.Logger
}

// NewService creates an assistant service.
func NewService(gen llm.Generator, logger *slog.Logger) *Service {
	return &Service{
		gen:    gen,
		logger: logger.With("component", "assist"),
	}
}

// chatRequest assembles the provider request: system prompt, trailing history
// window, then the new user message.
func chatRequest(message string, c models.CurriculumContext) llm.Request {
	history := models.TrimHistory(c.ChatHistory)
	messages := make([]llm.Message, 0, len(history)+1)
	for _, turn := range history {
		messages = append(messages, llm.Message{Role: turn.Role, Content: turn.Content})
	}
	messages = append(messages, llm.Message{Role: models.RoleUser, Content: message})

	return llm.Request{
		System:   buildSystemPrompt(c),
		Messages: messages,
	}
}

// ChatResult is a complete (non-streaming) assistant reply.
type ChatResult struct {
	Message     string   `json:"message"`
	Suggestions []string `json:"suggestions"`
}

// Chat returns a complete assistant reply with follow-up suggestions.
func (s *Service) Chat(ctx context.Context, req models.ChatAssistRequest) (*ChatResult, error) {
	text, err := s.gen.Generate(ctx, chatRequest(req.Message, req.Context))
	if err != nil {
		return nil, fmt.Errorf("chat generation failed: %w", err)
	}

	s.logger.Info("chat response generated", "response_length", len(text))
	return &ChatResult{
		Message:     text,
		Suggestions: ExtractSuggestions(text, req.Context),
	}, nil
}

// ChatStream streams an assistant reply as incremental chunks. The caller
// accumulates the full text and calls Suggestions once the stream ends.
func (s *Service) ChatStream(ctx context.Context, req models.ChatAssistRequest) (<-chan llm.StreamChunk, <-chan error) {
	return s.gen.GenerateStream(ctx, chatRequest(req.Message, req.Context))
}

// Suggestions derives follow-up prompts for a completed streamed reply.
func (s *Service) Suggestions(response string, c models.CurriculumContext) []string {
	return ExtractSuggestions(response, c)
}

// EnhanceResult is the outcome of a content enhancement.
type EnhanceResult struct {
	EnhancedContent string   `json:"enhanced_content"`
	Improvements    []string `json:"improvements"`
	OriginalLength  int      `json:"original_length"`
	EnhancedLength  int      `json:"enhanced_length"`
}

// Enhance rewrites curriculum content and summarizes what improved.
// Conversation history is not forwarded; enhancement is a standalone request.
func (s *Service) Enhance(ctx context.Context, req models.EnhanceRequest) (*EnhanceResult, error) {
	c := req.Context
	c.ChatHistory = nil

	enhanced, err := s.gen.Generate(ctx, chatRequest(buildEnhancePrompt(req.Content, c), c))
	if err != nil {
		return nil, fmt.Errorf("content enhancement failed: %w", err)
	}

	s.logger.Info("content enhancement completed",
		"original_length", len(req.Content), "enhanced_length", len(enhanced))
	return &EnhanceResult{
		EnhancedContent: enhanced,
		Improvements:    AnalyzeImprovements(req.Content, enhanced),
		OriginalLength:  len(req.Content),
		EnhancedLength:  len(enhanced),
	}, nil
}

// QuestionsResult holds generated clarifying questions, flat and grouped.
type QuestionsResult struct {
	Questions  []string                  `json:"questions"`
	Categories []models.QuestionCategory `json:"categories"`
}

// Questions generates clarifying questions about the curriculum being drafted.
func (s *Service) Questions(ctx context.Context, req models.QuestionsRequest) (*QuestionsResult, error) {
	c := req.Context
	c.ChatHistory = nil

	response, err := s.gen.Generate(ctx, chatRequest(buildQuestionsPrompt(c), c))
	if err != nil {
		return nil, fmt.Errorf("question generation failed: %w", err)
	}

	questions := parseNumberedQuestions(response)
	s.logger.Info("clarifying questions generated", "count", len(questions))
	return &QuestionsResult{
		Questions:  questions,
		Categories: CategorizeQuestions(questions),
	}, nil
}
