package errs

import "strings"

// FieldError represents a field-level validation error.
// Example:
//
//	{ "field": "email", "error": "is required" }
type FieldError struct {
	// Field is the field name/key the error relates to (e.g. "email").
	Field string `json:"field"`

	// Error is the human-readable error message.
	Error string `json:"error"`
}

// HTTPError is the failure envelope sent to API clients.
//
// It implements the `error` interface via Error() and is serialized directly
// to JSON. Only the envelope fields are part of the wire format:
//   - Success: always false.
//   - Category: human-readable category, serialized as "error".
//   - Message: optional detail.
//   - Errors: optional per-field validation errors.
//
// Code and Status stay server-side. Code is a machine-friendly label
// (e.g. "NOT_FOUND") used in logs; Status is the HTTP status to write.
type HTTPError struct {
	Success  bool         `json:"success"`
	Category string       `json:"error"`
	Message  string       `json:"message,omitempty"`
	Errors   []FieldError `json:"errors,omitempty"`

	Code   string `json:"-"`
	Status int    `json:"-"`
}

// Error makes *HTTPError satisfy the built-in `error` interface.
//
// The detail message is appended when present so logs show both parts.
func (e *HTTPError) Error() string {
	if e.Message == "" {
		return e.Category
	}
	return e.Category + ": " + e.Message
}

// Is customizes how errors.Is(...) treats HTTPError.
//
// It only checks whether the target is the same *type* (*HTTPError),
// it does NOT compare Category/Status.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)

	return ok
}

// WithMessage returns a *copy* of this HTTPError with Message replaced.
func (e *HTTPError) WithMessage(message string) *HTTPError {
	return &HTTPError{
		Category: e.Category,
		Message:  message,
		Errors:   e.Errors,
		Code:     e.Code,
		Status:   e.Status,
	}
}

// MakeUpperCaseWithUnderscores converts a string into an UPPER_CASE_WITH_UNDERSCORES format.
//
// Example:
//
//	"Bad Request" -> "BAD_REQUEST"
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
