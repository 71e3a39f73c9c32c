package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/lecternhq/lectern/pkg/llm"
	"github.com/lecternhq/lectern/pkg/services"
)

// Error codes carried in the response envelope.
const (
	CodeAuthTokenMissing   = "AUTH_TOKEN_MISSING"
	CodeAuthTokenInvalid   = "AUTH_TOKEN_INVALID"
	CodeValidationError    = "VALIDATION_ERROR"
	CodeCurriculumNotFound = "CURRICULUM_NOT_FOUND"
	CodeVersionNotFound    = "VERSION_NOT_FOUND"
	CodeDatabaseError      = "DATABASE_ERROR"
	CodeLLMRateLimited     = "LLM_RATE_LIMITED"
	CodeLLMQuotaExceeded   = "LLM_QUOTA_EXCEEDED"
	CodeLLMError           = "LLM_ERROR"
	CodeInternalError      = "INTERNAL_ERROR"
)

// apiError is an error a handler wants rendered as the JSON envelope.
type apiError struct {
	Status  int
	Code    string
	Message string
	Details interface{}
}

func (e *apiError) Error() string {
	return e.Message
}

func newAPIError(status int, code, message string) *apiError {
	return &apiError{Status: status, Code: code, Message: message}
}

func badRequest(message string) *apiError {
	return newAPIError(http.StatusBadRequest, CodeValidationError, message)
}

// mapServiceError maps service-layer errors to envelope errors.
func mapServiceError(err error) *apiError {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		e := badRequest(validErr.Error())
		e.Details = map[string]string{"field": validErr.Field}
		return e
	}
	if errors.Is(err, services.ErrNotFound) {
		return newAPIError(http.StatusNotFound, CodeCurriculumNotFound, "curriculum not found")
	}
	if errors.Is(err, services.ErrVersionNotFound) {
		return newAPIError(http.StatusNotFound, CodeVersionNotFound, "version not found")
	}
	if errors.Is(err, services.ErrInvalidInput) {
		return badRequest(err.Error())
	}

	// Unexpected error from the storage layer
	slog.Error("Unexpected service error", "error", err)
	return newAPIError(http.StatusInternalServerError, CodeDatabaseError, "internal server error")
}

// mapLLMError maps provider errors to envelope errors. Rate-limit and quota
// failures get distinct statuses so clients can back off or upgrade.
func mapLLMError(err error) *apiError {
	if errors.Is(err, llm.ErrRateLimited) {
		return newAPIError(http.StatusTooManyRequests, CodeLLMRateLimited,
			"AI service rate limit reached, please retry shortly")
	}
	if errors.Is(err, llm.ErrQuotaExceeded) {
		return newAPIError(http.StatusPaymentRequired, CodeLLMQuotaExceeded,
			"AI service quota exhausted")
	}

	slog.Error("LLM provider error", "error", err)
	return newAPIError(http.StatusBadGateway, CodeLLMError, "AI service request failed")
}

// llmErrorMessage is the SSE variant of mapLLMError: streaming errors arrive
// after the 200 header is written, so only the message can vary.
func llmErrorMessage(err error) string {
	switch {
	case errors.Is(err, llm.ErrRateLimited):
		return "AI service rate limit reached, please retry shortly"
	case errors.Is(err, llm.ErrQuotaExceeded):
		return "AI service quota exhausted"
	default:
		return "AI service request failed"
	}
}
