package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lecternhq/lectern/pkg/llm"
	"github.com/lecternhq/lectern/pkg/services"
)

func TestMapServiceError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "validation error",
			err:        services.NewValidationError("title", "required"),
			wantStatus: http.StatusBadRequest,
			wantCode:   CodeValidationError,
		},
		{
			name:       "wrapped validation error",
			err:        fmt.Errorf("create failed: %w", services.NewValidationError("type", "invalid")),
			wantStatus: http.StatusBadRequest,
			wantCode:   CodeValidationError,
		},
		{
			name:       "not found",
			err:        services.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantCode:   CodeCurriculumNotFound,
		},
		{
			name:       "version not found",
			err:        services.ErrVersionNotFound,
			wantStatus: http.StatusNotFound,
			wantCode:   CodeVersionNotFound,
		},
		{
			name:       "unexpected error",
			err:        errors.New("connection reset"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   CodeDatabaseError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apiErr := mapServiceError(tt.err)
			assert.Equal(t, tt.wantStatus, apiErr.Status)
			assert.Equal(t, tt.wantCode, apiErr.Code)
		})
	}
}

func TestMapLLMError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "rate limited",
			err:        fmt.Errorf("chat generation failed: %w", llm.ErrRateLimited),
			wantStatus: http.StatusTooManyRequests,
			wantCode:   CodeLLMRateLimited,
		},
		{
			name:       "quota exceeded",
			err:        llm.ErrQuotaExceeded,
			wantStatus: http.StatusPaymentRequired,
			wantCode:   CodeLLMQuotaExceeded,
		},
		{
			name:       "generic provider failure",
			err:        errors.New("upstream 500"),
			wantStatus: http.StatusBadGateway,
			wantCode:   CodeLLMError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apiErr := mapLLMError(tt.err)
			assert.Equal(t, tt.wantStatus, apiErr.Status)
			assert.Equal(t, tt.wantCode, apiErr.Code)
		})
	}
}
