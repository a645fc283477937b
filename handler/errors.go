package handler

import (
	"errors"
	"net/http"
)

var (
	// ErrNilResponse indicates a handler returned nil instead of a Response
	ErrNilResponse = errors.New("handler returned nil response")
	// ErrSSENotInitialized indicates SSE was accessed for a non-Datastar request
	ErrSSENotInitialized = errors.New("SSE not initialized for this request")
)

// HTTPError represents an HTTP error with status code and a message key.
type HTTPError struct {
	Code int
	Key  string
}

func (e HTTPError) Error() string {
	return e.Key
}

// NewHTTPError creates a custom HTTP error with the given status code and key.
func NewHTTPError(code int, key string) HTTPError {
	return HTTPError{Code: code, Key: key}
}

var (
	ErrBadRequest       = HTTPError{Code: http.StatusBadRequest, Key: "bad_request"}
	ErrNotFound         = HTTPError{Code: http.StatusNotFound, Key: "not_found"}
	ErrUnsupportedMedia = HTTPError{Code: http.StatusUnsupportedMediaType, Key: "unsupported_media_type"}
)

type errorResponse struct{ err error }

func (e errorResponse) Render(http.ResponseWriter, *http.Request) error { return e.err }

// Error returns a Response that hands err to the configured ErrorHandler.
func Error(err error) Response {
	return errorResponse{err: err}
}
