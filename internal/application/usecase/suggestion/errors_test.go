// Package suggestion contains AI obligation-classification use cases.
package suggestion

import (
	"context"
	"errors"
	"testing"
)

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name          string
		err           error
		wantCode      string
		wantRetryable bool
	}{
		{
			name:          "deadline exceeded maps to timeout",
			err:           context.DeadlineExceeded,
			wantCode:      ErrCodeAITimeout,
			wantRetryable: true,
		},
		{
			name:          "context canceled maps to timeout",
			err:           context.Canceled,
			wantCode:      ErrCodeAITimeout,
			wantRetryable: true,
		},
		{
			name:          "quota exhaustion maps to rate limited",
			err:           errors.New("googleapi: Error 429: resource exhausted"),
			wantCode:      ErrCodeAIRateLimited,
			wantRetryable: true,
		},
		{
			name:          "invalid api key maps to auth error",
			err:           errors.New("invalid API key provided"),
			wantCode:      ErrCodeAIAuthError,
			wantRetryable: false,
		},
		{
			name:          "connection refused maps to service unavailable",
			err:           errors.New("dial tcp: connection refused"),
			wantCode:      ErrCodeAIServiceUnavailable,
			wantRetryable: true,
		},
		{
			name:          "bad json maps to parse error",
			err:           errors.New("failed to unmarshal response"),
			wantCode:      ErrCodeAIParseError,
			wantRetryable: true,
		},
		{
			name:          "anything else maps to unknown",
			err:           errors.New("something odd happened"),
			wantCode:      ErrCodeAIUnknownError,
			wantRetryable: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyError(tt.err)
			if got.Code != tt.wantCode {
				t.Errorf("expected code %s, got %s", tt.wantCode, got.Code)
			}
			if got.Retryable != tt.wantRetryable {
				t.Errorf("expected retryable %v, got %v", tt.wantRetryable, got.Retryable)
			}
			if got.Message == "" {
				t.Error("expected a non-empty message")
			}
			if got.Timestamp.IsZero() {
				t.Error("expected a timestamp")
			}
		})
	}
}
