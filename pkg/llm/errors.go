package llm

import (
	"errors"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
)

// Sentinel errors for provider failures callers branch on.
var (
	// ErrRateLimited means the provider rejected the request for rate limiting.
	ErrRateLimited = errors.New("model provider rate limited")

	// ErrQuotaExceeded means the account has exhausted its usage quota.
	ErrQuotaExceeded = errors.New("model provider quota exceeded")
)

// classifyError maps provider API errors onto sentinel errors by HTTP status.
// Errors that carry no API status (network failures, context cancellation)
// pass through unchanged.
func classifyError(err error) error {
	if err == nil {
		return nil
	}
	var apierr *anthropic.Error
	if !errors.As(err, &apierr) {
		return err
	}
	return classifyStatus(apierr.StatusCode, err)
}

func classifyStatus(code int, err error) error {
	switch code {
	case 429:
		return fmt.Errorf("%w: %v", ErrRateLimited, err)
	case 402:
		return fmt.Errorf("%w: %v", ErrQuotaExceeded, err)
	default:
		return err
	}
}
