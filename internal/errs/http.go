package errs

import (
	"net/http"
)

// Categories shared by more than one endpoint.
const (
	CategoryMethodNotAllowed = "Method not allowed"
	CategoryInternal         = "Internal server error"
	CategoryRouteNotFound    = "Route not found"
	CategoryValidation       = "Validation failed"

	// UnknownErrorMessage replaces an empty error description in 500 responses.
	UnknownErrorMessage = "Unknown error"
)

func codeFor(status int) string {
	return MakeUpperCaseWithUnderscores(http.StatusText(status))
}

// NewBadRequestError creates a 400 Bad Request HTTPError.
//
// category is the fixed message the endpoint uses for invalid input,
// e.g. "Email is required". fieldErrors may be nil.
func NewBadRequestError(category string, fieldErrors []FieldError) *HTTPError {
	return &HTTPError{
		Category: category,
		Errors:   fieldErrors,
		Code:     codeFor(http.StatusBadRequest),
		Status:   http.StatusBadRequest,
	}
}

// NewNotFoundError creates a 404 Not Found HTTPError, e.g. "Customer not found".
func NewNotFoundError(category string) *HTTPError {
	return &HTTPError{
		Category: category,
		Code:     codeFor(http.StatusNotFound),
		Status:   http.StatusNotFound,
	}
}

// NewMethodNotAllowedError creates the 405 envelope every endpoint shares.
func NewMethodNotAllowedError() *HTTPError {
	return &HTTPError{
		Category: CategoryMethodNotAllowed,
		Code:     codeFor(http.StatusMethodNotAllowed),
		Status:   http.StatusMethodNotAllowed,
	}
}

// NewRouteNotFoundError creates the 404 envelope for unknown paths.
func NewRouteNotFoundError() *HTTPError {
	return NewNotFoundError(CategoryRouteNotFound)
}

// NewInternalServerError creates a 500 Internal Server Error HTTPError.
//
// detail is the best-effort description of the failure. An empty detail
// becomes "Unknown error" so the message field is always present.
func NewInternalServerError(detail string) *HTTPError {
	if detail == "" {
		detail = UnknownErrorMessage
	}

	return &HTTPError{
		Category: CategoryInternal,
		Message:  detail,
		Code:     codeFor(http.StatusInternalServerError),
		Status:   http.StatusInternalServerError,
	}
}

// ValidationError converts a generic validation error into a 400 Bad Request HTTPError.
func ValidationError(err error) *HTTPError {
	return NewBadRequestError(CategoryValidation, nil).WithMessage(err.Error())
}
