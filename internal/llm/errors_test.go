package llm

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantClass FailureClass
	}{
		{"quota in message", errors.New("googleapi: Error 429: quota exceeded for quota metric"), FailureQuota},
		{"rate limit", errors.New("rate limit reached, slow down"), FailureQuota},
		{"resource exhausted", errors.New("rpc error: code = ResourceExhausted desc = RESOURCE_EXHAUSTED"), FailureQuota},
		{"invalid key", errors.New("googleapi: Error 400: API key not valid. Please pass a valid API key."), FailureInvalidKey},
		{"unauthenticated", errors.New("rpc error: code = Unauthenticated"), FailureInvalidKey},
		{"safety block", errors.New("candidate was blocked due to SAFETY"), FailureSafety},
		{"invalid argument", errors.New("rpc error: code = InvalidArgument desc = invalid argument"), FailureMalformed},
		{"unmatched error", errors.New("connection reset by peer"), FailureService},
		{"nil error", nil, FailureUnknown},
		{"non-error panic sentinel", ErrNonErrorFailure, FailureUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyError(tt.err)
			if got.Class != tt.wantClass {
				t.Errorf("ClassifyError(%v).Class = %s, want %s", tt.err, got.Class, tt.wantClass)
			}
			if got.Message == "" {
				t.Error("classified error has empty user-facing message")
			}
		})
	}
}

func TestClassifyError_QuotaMessageIsFixed(t *testing.T) {
	a := ClassifyError(errors.New("quota exceeded"))
	b := ClassifyError(errors.New("you hit the rate limit"))
	if a.Message != b.Message {
		t.Errorf("quota failures produced different messages: %q vs %q", a.Message, b.Message)
	}
	if strings.Contains(a.Message, "quota exceeded for") {
		t.Errorf("raw provider text leaked into fixed message: %q", a.Message)
	}
}

func TestClassifyError_ServiceWrapsRawMessage(t *testing.T) {
	raw := errors.New("connection reset by peer")
	got := ClassifyError(raw)
	if !strings.Contains(got.Message, raw.Error()) {
		t.Errorf("generic service error should carry the raw message, got %q", got.Message)
	}
	if !errors.Is(got, raw) {
		t.Error("cause not preserved through Unwrap")
	}
}

func TestClassifyError_WrappedCause(t *testing.T) {
	wrapped := fmt.Errorf("failed to generate content: %w", errors.New("Error 429: quota exceeded"))
	if got := ClassifyError(wrapped); got.Class != FailureQuota {
		t.Errorf("wrapped quota error classified as %s", got.Class)
	}
}
