package api

import (
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/lecternhq/lectern/pkg/database"
	"github.com/lecternhq/lectern/pkg/services"
)

// errorBody is the inner object of the error envelope.
type errorBody struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// errorResponse is the envelope for every non-2xx JSON response.
type errorResponse struct {
	Error     errorBody `json:"error"`
	Timestamp string    `json:"timestamp"`
}

// writeAPIError renders an apiError as the JSON envelope.
func writeAPIError(c *echo.Context, e *apiError) error {
	return c.JSON(e.Status, &errorResponse{
		Error: errorBody{
			Code:    e.Code,
			Message: e.Message,
			Details: e.Details,
		},
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status            string                    `json:"status"`
	Version           string                    `json:"version"`
	Database          *database.HealthStatus    `json:"database,omitempty"`
	ActiveConnections int                       `json:"active_connections"`
	Warnings          []*services.SystemWarning `json:"warnings,omitempty"`
}

// DeleteCurriculumResponse is returned by DELETE /api/v1/curricula/:id.
type DeleteCurriculumResponse struct {
	CurriculumID string `json:"curriculum_id"`
	Message      string `json:"message"`
}

// ClearChatResponse is returned by DELETE /api/v1/curricula/:id/chat.
type ClearChatResponse struct {
	CurriculumID string `json:"curriculum_id"`
	Deleted      int    `json:"deleted"`
}

// sseEvent is a start, chunk or error frame of the assist stream.
type sseEvent struct {
	Type    string `json:"type"`
	Message string `json:"message,omitempty"`
	Content string `json:"content,omitempty"`
}

// sseEndEvent is the terminal end frame. fullMessage and suggestions are
// always present, even when the completion produced no chunks.
type sseEndEvent struct {
	Type        string   `json:"type"`
	FullMessage string   `json:"fullMessage"`
	Suggestions []string `json:"suggestions"`
}
