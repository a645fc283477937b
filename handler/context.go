package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/starfederation/datastar-go/datastar"
)

// Context wraps http.Request and http.ResponseWriter with context.Context.
// It embeds the request's context and provides access to HTTP components.
type Context interface {
	context.Context
	Request() *http.Request
	ResponseWriter() http.ResponseWriter
	// SSE returns the Datastar event generator for the request, creating it on
	// first use. It returns nil for non-Datastar requests.
	SSE() *datastar.ServerSentEventGenerator
}

// NewContext creates a new Context from HTTP request and response writer.
func NewContext(w http.ResponseWriter, r *http.Request) Context {
	return &httpContext{w: w, r: r}
}

type httpContext struct {
	w   http.ResponseWriter
	r   *http.Request
	sse *datastar.ServerSentEventGenerator
}

func (c *httpContext) Request() *http.Request {
	return c.r
}

func (c *httpContext) ResponseWriter() http.ResponseWriter {
	return c.w
}

// SSE lazily opens the event stream: datastar.NewSSE writes response headers,
// so it must not run before the handler decides how to respond.
func (c *httpContext) SSE() *datastar.ServerSentEventGenerator {
	if c.sse == nil && IsDataStar(c.r) {
		c.sse = sseFor(c.w, c.r)
	}
	return c.sse
}

type sseKey struct{}

// sseHolder shares one event generator between the handler, its response and
// the error handler of a single request.
type sseHolder struct {
	gen *datastar.ServerSentEventGenerator
}

func withSSEHolder(r *http.Request) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), sseKey{}, &sseHolder{}))
}

func sseFor(w http.ResponseWriter, r *http.Request) *datastar.ServerSentEventGenerator {
	h, ok := r.Context().Value(sseKey{}).(*sseHolder)
	if !ok {
		return datastar.NewSSE(w, r)
	}
	if h.gen == nil {
		h.gen = datastar.NewSSE(w, r)
	}
	return h.gen
}

func (c *httpContext) Deadline() (deadline time.Time, ok bool) {
	return c.r.Context().Deadline()
}

func (c *httpContext) Done() <-chan struct{} {
	return c.r.Context().Done()
}

func (c *httpContext) Err() error {
	return c.r.Context().Err()
}

func (c *httpContext) Value(key any) any {
	return c.r.Context().Value(key)
}
