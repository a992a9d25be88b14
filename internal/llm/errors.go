package llm

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNonErrorFailure marks a failure whose underlying cause was not an
// error value (a recovered non-error panic). It classifies as
// FailureUnknown with the fixed generic message.
var ErrNonErrorFailure = errors.New("failure with non-error value")

// FailureClass identifies the category of a generation failure.
type FailureClass string

// Failure classes, in order of matching precedence
const (
	FailureInvalidKey FailureClass = "invalid_api_key"
	FailureQuota      FailureClass = "quota_exceeded"
	FailureSafety     FailureClass = "safety_block"
	FailureMalformed  FailureClass = "malformed_request"
	FailureService    FailureClass = "service_error"
	FailureUnknown    FailureClass = "unknown"
)

// Fixed user-facing messages per failure class
const (
	msgInvalidKey = "Your Gemini API key appears to be invalid. Please check your GEMINI_API_KEY configuration."
	msgQuota      = "The Gemini API quota or rate limit has been exceeded. Please wait a moment and try again."
	msgSafety     = "The request was blocked by the service's safety filters. Please adjust your profile text and try again."
	msgMalformed  = "The generation request was malformed. Please review your profile fields and try again."
	msgUnknown    = "An unknown error occurred while communicating with the Gemini API."
)

// GenerationError carries a classified generation failure with its fixed
// user-facing message. The underlying provider error is preserved for logs.
type GenerationError struct {
	Class   FailureClass
	Message string
	Cause   error
}

func (e *GenerationError) Error() string {
	return e.Message
}

func (e *GenerationError) Unwrap() error {
	return e.Cause
}

// substring → class matching tables; checked in declaration order
var failureMatchers = []struct {
	class      FailureClass
	substrings []string
}{
	{FailureInvalidKey, []string{"api key not valid", "api_key_invalid", "invalid api key", "api key is required", "401", "unauthenticated"}},
	{FailureQuota, []string{"quota", "rate limit", "resource_exhausted", "429", "too many requests"}},
	{FailureSafety, []string{"safety", "blocked", "prohibited_content"}},
	{FailureMalformed, []string{"invalid_argument", "invalid argument", "malformed", "400", "bad request"}},
}

// ClassifyError maps a raw provider failure to a GenerationError with a
// fixed user-facing message. Errors matching no known class get a generic
// service-error wrapper around the raw message; a nil error returns the
// fixed unknown-failure message, which covers recovered non-error panics.
func ClassifyError(err error) *GenerationError {
	if err == nil || errors.Is(err, ErrNonErrorFailure) {
		return &GenerationError{Class: FailureUnknown, Message: msgUnknown, Cause: err}
	}

	lower := strings.ToLower(err.Error())
	for _, m := range failureMatchers {
		for _, sub := range m.substrings {
			if strings.Contains(lower, sub) {
				return &GenerationError{Class: m.class, Message: messageFor(m.class), Cause: err}
			}
		}
	}

	return &GenerationError{
		Class:   FailureService,
		Message: fmt.Sprintf("Gemini API error: %s", err.Error()),
		Cause:   err,
	}
}

func messageFor(class FailureClass) string {
	switch class {
	case FailureInvalidKey:
		return msgInvalidKey
	case FailureQuota:
		return msgQuota
	case FailureSafety:
		return msgSafety
	case FailureMalformed:
		return msgMalformed
	default:
		return msgUnknown
	}
}
