// Package apierrors defines the error taxonomy that crosses the API
// boundary. Handlers map every failure to one of these values; anything
// else is surfaced as a generic internal error so storage and crypto
// detail never reaches the client.
package apierrors

import "net/http"

// APIError carries the HTTP status and client-visible message for a
// failed request. The wrapped cause, if any, is for internal logs only.
type APIError struct {
	Status  int
	Message string
	cause   error
}

func (e *APIError) Error() string {
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.cause
}

// NewErrValidation reports malformed request input.
func NewErrValidation(detail string) *APIError {
	return &APIError{Status: http.StatusBadRequest, Message: detail}
}

// NewErrConflict reports a duplicate value for a unique user field.
func NewErrConflict(field string) *APIError {
	return &APIError{Status: http.StatusConflict, Message: field + " already exists"}
}

// NewErrInvalidCredentials is the single opaque outcome for every
// authentication failure: bad password, missing, forged, malformed or
// expired token, and tokens for since-deleted accounts. Callers must not
// be able to tell these apart from the response.
func NewErrInvalidCredentials() *APIError {
	return &APIError{Status: http.StatusUnauthorized, Message: "invalid credentials"}
}

// NewErrTodoNotFound reports an absent todo id.
func NewErrTodoNotFound() *APIError {
	return &APIError{Status: http.StatusNotFound, Message: "Todo not found"}
}

// NewErrInternalServerError wraps an unexpected failure behind a generic
// message.
func NewErrInternalServerError(err error) *APIError {
	return &APIError{Status: http.StatusInternalServerError, Message: "internal server error", cause: err}
}
