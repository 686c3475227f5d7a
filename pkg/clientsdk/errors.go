package clientsdk

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ============================================================================
// Error Kinds
// ============================================================================

// Kind classifies a failed API call. Every failure returned by the SDK carries
// exactly one of these.
type Kind int

const (
	// KindGeneric covers any failure that is not a duplicate shared key:
	// non-2xx statuses, undecodable bodies and transport errors.
	KindGeneric Kind = iota

	// KindDuplicateKey means the API refused to create a client because one
	// with the same shared key already exists.
	KindDuplicateKey
)

// User-facing messages, one per Kind.
const (
	MessageDuplicateKey = "The client with that shared key already exists."
	MessageGeneric      = "Something went wrong! Please try again."
)

func (k Kind) String() string {
	switch k {
	case KindDuplicateKey:
		return "duplicate_key"
	default:
		return "generic"
	}
}

// ============================================================================
// Error - classified SDK error
// ============================================================================

// Error is the only error type the SDK returns from its API methods.
// Error() yields a message that is safe to show to a user; the underlying
// transport or decode failure is kept as the wrapped cause for logging.
type Error struct {
	// Kind is the classification of the failure
	Kind Kind

	// StatusCode is the HTTP status, or 0 when no response was received
	StatusCode int

	// Message is the user-facing message for Kind
	Message string

	cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.cause
}

// Is reports whether target is an *Error of the same Kind, so the package
// sentinels can be used with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// Sentinels for errors.Is comparisons.
var (
	// ErrDuplicateSharedKey matches failures of KindDuplicateKey.
	ErrDuplicateSharedKey = &Error{Kind: KindDuplicateKey, Message: MessageDuplicateKey}

	// ErrRequestFailed matches failures of KindGeneric.
	ErrRequestFailed = &Error{Kind: KindGeneric, Message: MessageGeneric}
)

// newGenericError wraps cause as a KindGeneric error.
func newGenericError(statusCode int, cause error) *Error {
	return &Error{
		Kind:       KindGeneric,
		StatusCode: statusCode,
		Message:    MessageGeneric,
		cause:      cause,
	}
}

// ============================================================================
// Error Parsing Helpers
// ============================================================================

// statusError records a non-2xx response as the cause of a classified error.
type statusError struct {
	StatusCode int
	Body       string
}

func (e *statusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("unexpected status %d", e.StatusCode)
	}
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Body)
}

// maxErrorBody bounds how much of an error body is kept for logging.
const maxErrorBody = 512

// parseErrorResponse classifies a non-2xx response.
// Only a 400 whose body carries data.respondeCode == "01" is a duplicate key;
// everything else is generic.
func parseErrorResponse(resp *http.Response, body []byte) error {
	// Success responses
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	snippet := string(body)
	if len(snippet) > maxErrorBody {
		snippet = snippet[:maxErrorBody]
	}
	cause := &statusError{StatusCode: resp.StatusCode, Body: snippet}

	if resp.StatusCode == http.StatusBadRequest {
		var errResp ErrorResponse
		if err := json.Unmarshal(body, &errResp); err == nil &&
			errResp.Data != nil &&
			errResp.Data.RespondeCode == CodeAlreadyExists {
			return &Error{
				Kind:       KindDuplicateKey,
				StatusCode: resp.StatusCode,
				Message:    MessageDuplicateKey,
				cause:      cause,
			}
		}
	}

	// Fallback: every other failure is opaque to the caller
	return newGenericError(resp.StatusCode, cause)
}

// classify converts any error into an *Error, leaving already classified
// errors untouched.
func classify(err error) error {
	if err == nil {
		return nil
	}
	var sdkErr *Error
	if errors.As(err, &sdkErr) {
		return sdkErr
	}
	return newGenericError(0, err)
}
