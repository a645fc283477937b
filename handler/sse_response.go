package handler

import (
	"net/http"
)

// SSEHandler streams patches over a Datastar connection for as long as it runs.
// The connection is closed when the handler returns.
type SSEHandler func(ctx StreamContext) error

type sseResponse struct {
	handler SSEHandler
}

func (s sseResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if !IsDataStar(r) {
		return NewHTTPError(http.StatusBadRequest, "SSE endpoint requires DataStar connection")
	}

	base := NewContext(w, r)
	sse := base.SSE()
	if sse == nil {
		return ErrSSENotInitialized
	}

	return s.handler(&streamContext{Context: base, sse: sse})
}

// SSE creates a response that runs fn with a StreamContext bound to the
// request's event stream.
func SSE(fn SSEHandler) Response {
	return sseResponse{handler: fn}
}
