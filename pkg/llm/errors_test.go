package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyStatus(t *testing.T) {
	base := errors.New("api failure")

	tests := []struct {
		name     string
		code     int
		sentinel error
	}{
		{name: "rate limited", code: 429, sentinel: ErrRateLimited},
		{name: "quota exceeded", code: 402, sentinel: ErrQuotaExceeded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := classifyStatus(tt.code, base)
			assert.ErrorIs(t, err, tt.sentinel)
			assert.Contains(t, err.Error(), "api failure")
		})
	}

	t.Run("other statuses pass through", func(t *testing.T) {
		err := classifyStatus(500, base)
		assert.Equal(t, base, err)
		assert.NotErrorIs(t, err, ErrRateLimited)
		assert.NotErrorIs(t, err, ErrQuotaExceeded)
	})
}

func TestClassifyError_NonAPIErrors(t *testing.T) {
	assert.NoError(t, classifyError(nil))

	// Context cancellation is not a provider failure and must pass through.
	err := classifyError(context.Canceled)
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, ErrRateLimited)
}
