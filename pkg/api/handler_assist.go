package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/lecternhq/lectern/pkg/llm"
	"github.com/lecternhq/lectern/pkg/models"
	"github.com/lecternhq/lectern/pkg/services"
)

// AssistChatRequest is the body for POST /api/v1/assist/chat and /stream.
type AssistChatRequest struct {
	Message string                   `json:"message"`
	Context models.CurriculumContext `json:"context"`
}

// EnhanceContentRequest is the body for POST /api/v1/assist/enhance.
type EnhanceContentRequest struct {
	Content string                   `json:"content"`
	Context models.CurriculumContext `json:"context"`
}

// QuestionsRequest is the body for POST /api/v1/assist/questions.
type QuestionsRequest struct {
	Context models.CurriculumContext `json:"context"`
}

// providerSource identifies the model provider in system warnings.
const providerSource = "anthropic"

// recordProviderResult keeps the /health warning for the model provider in
// sync with the latest request outcome.
func (s *Server) recordProviderResult(err error) {
	if s.warnings == nil {
		return
	}
	switch {
	case errors.Is(err, llm.ErrRateLimited):
		s.warnings.AddWarning(services.WarningCategoryLLMProvider,
			"model provider is rate limiting requests", err.Error(), providerSource)
	case errors.Is(err, llm.ErrQuotaExceeded):
		s.warnings.AddWarning(services.WarningCategoryLLMProvider,
			"model provider quota exhausted", err.Error(), providerSource)
	case err == nil:
		s.warnings.ClearBySource(services.WarningCategoryLLMProvider, providerSource)
	}
}

func validateAssistMessage(message string) *apiError {
	if message == "" {
		return badRequest("message is required")
	}
	if len(message) > models.MaxChatContentLength {
		return badRequest(fmt.Sprintf("message exceeds maximum length of %d characters", models.MaxChatContentLength))
	}
	return nil
}

// assistChatHandler handles POST /api/v1/assist/chat.
// Blocking variant: waits for the full completion and returns it with
// follow-up suggestions.
func (s *Server) assistChatHandler(c *echo.Context) error {
	var req AssistChatRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body")
	}
	if apiErr := validateAssistMessage(req.Message); apiErr != nil {
		return apiErr
	}

	result, err := s.assistant.Chat(c.Request().Context(), models.ChatAssistRequest{
		Message: req.Message,
		Context: req.Context,
	})
	s.recordProviderResult(err)
	if err != nil {
		return mapLLMError(err)
	}
	return c.JSON(http.StatusOK, result)
}

// assistStreamHandler handles POST /api/v1/assist/stream.
// Relays the provider stream as server-sent events:
//
//	data: {"type":"start","message":"..."}
//	data: {"type":"chunk","content":"..."}    repeated
//	data: {"type":"end","suggestions":[...],"fullMessage":"..."}
//
// Exactly one terminal frame (end or error) is sent, none if the client
// disconnects first. fullMessage is the concatenation of all chunk contents.
func (s *Server) assistStreamHandler(c *echo.Context) error {
	var req AssistChatRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body")
	}
	if apiErr := validateAssistMessage(req.Message); apiErr != nil {
		return apiErr
	}

	w := c.Response()
	h := w.Header()
	h.Set("Content-Type", "text/event-stream")
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	rc := http.NewResponseController(w)

	writeEvent := func(ev interface{}) error {
		data, err := json.Marshal(ev)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "data: %s\n\n", data); err != nil {
			return err
		}
		return rc.Flush()
	}

	if err := writeEvent(sseEvent{Type: "start", Message: "Generating response"}); err != nil {
		return nil
	}

	// Client disconnect cancels ctx, which cancels the provider stream.
	ctx := c.Request().Context()
	chunks, errs := s.assistant.ChatStream(ctx, models.ChatAssistRequest{
		Message: req.Message,
		Context: req.Context,
	})

	var fullMessage string
	for {
		select {
		case chunk, ok := <-chunks:
			if !ok {
				// A provider failure closes both channels; the buffered error
				// is already readable, so prefer it over a bogus end frame.
				select {
				case err := <-errs:
					if err != nil {
						if ctx.Err() != nil {
							return nil
						}
						s.recordProviderResult(err)
						s.logger.Error("assist stream failed", "error", err)
						_ = writeEvent(sseEvent{Type: "error", Message: llmErrorMessage(err)})
						return nil
					}
				default:
				}
				suggestions := s.assistant.Suggestions(fullMessage, req.Context)
				if suggestions == nil {
					suggestions = []string{}
				}
				_ = writeEvent(sseEndEvent{
					Type:        "end",
					FullMessage: fullMessage,
					Suggestions: suggestions,
				})
				return nil
			}
			fullMessage += chunk.Content
			if err := writeEvent(sseEvent{Type: "chunk", Content: chunk.Content}); err != nil {
				return nil
			}

		case err := <-errs:
			if err != nil {
				if ctx.Err() != nil {
					// Client went away; no terminal frame.
					return nil
				}
				s.recordProviderResult(err)
				s.logger.Error("assist stream failed", "error", err)
				_ = writeEvent(sseEvent{Type: "error", Message: llmErrorMessage(err)})
				return nil
			}

		case <-ctx.Done():
			return nil
		}
	}
}

// assistEnhanceHandler handles POST /api/v1/assist/enhance.
func (s *Server) assistEnhanceHandler(c *echo.Context) error {
	var req EnhanceContentRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body")
	}
	if req.Content == "" {
		return badRequest("content is required")
	}
	if len(req.Content) > models.MaxEnhanceContentLength {
		return badRequest(fmt.Sprintf("content exceeds maximum length of %d characters", models.MaxEnhanceContentLength))
	}

	result, err := s.assistant.Enhance(c.Request().Context(), models.EnhanceRequest{
		Content: req.Content,
		Context: req.Context,
	})
	s.recordProviderResult(err)
	if err != nil {
		return mapLLMError(err)
	}
	return c.JSON(http.StatusOK, result)
}

// assistQuestionsHandler handles POST /api/v1/assist/questions.
func (s *Server) assistQuestionsHandler(c *echo.Context) error {
	var req QuestionsRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body")
	}

	result, err := s.assistant.Questions(c.Request().Context(), models.QuestionsRequest{
		Context: req.Context,
	})
	s.recordProviderResult(err)
	if err != nil {
		return mapLLMError(err)
	}
	return c.JSON(http.StatusOK, result)
}
