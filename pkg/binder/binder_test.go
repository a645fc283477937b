package binder_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devsomeware/contactkit/pkg/binder"
)

type message struct {
	Name    string `form:"name" json:"name"`
	Email   string `form:"email" json:"email"`
	Message string `form:"message" json:"message"`
	Loading bool   `form:"-" json:"loading"`
	Count   int    `form:"count" json:"-"`
}

func TestForm(t *testing.T) {
	t.Parallel()

	t.Run("urlencoded", func(t *testing.T) {
		t.Parallel()

		body := url.Values{
			"name":    {"Ada"},
			"email":   {"ada@example.com"},
			"message": {"Hello\nworld  "},
			"count":   {"2"},
			"loading": {"true"},
		}.Encode()
		req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		var got message
		require.NoError(t, binder.Form()(req, &got))
		assert.Equal(t, message{Name: "Ada", Email: "ada@example.com", Message: "Hello\nworld  ", Count: 2}, got)
	})

	t.Run("multipart", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		require.NoError(t, mw.WriteField("name", "Ada"))
		require.NoError(t, mw.WriteField("message", "Hi"))
		require.NoError(t, mw.Close())

		req := httptest.NewRequest(http.MethodPost, "/contact", &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())

		var got message
		require.NoError(t, binder.Form()(req, &got))
		assert.Equal(t, "Ada", got.Name)
		assert.Equal(t, "Hi", got.Message)
		assert.Empty(t, got.Email)
	})

	t.Run("not applicable without form content type", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/contact", nil)
		assert.ErrorIs(t, binder.Form()(req, &message{}), binder.ErrBinderNotApplicable)

		req = httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		assert.ErrorIs(t, binder.Form()(req, &message{}), binder.ErrBinderNotApplicable)
	})

	t.Run("invalid int", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader("count=abc"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		err := binder.Form()(req, &message{})
		assert.ErrorIs(t, err, binder.ErrFailedToParseForm)
	})

	t.Run("non pointer target", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader("name=x"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		assert.ErrorIs(t, binder.Form()(req, message{}), binder.ErrFailedToParseForm)
	})
}

func TestSignals(t *testing.T) {
	t.Parallel()

	t.Run("json body", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/contact",
			strings.NewReader(`{"name":"Ada","email":"ada@example.com","message":"Hello","loading":false}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Datastar-Request", "true")

		var got message
		require.NoError(t, binder.Signals()(req, &got))
		assert.Equal(t, "Ada", got.Name)
		assert.Equal(t, "ada@example.com", got.Email)
		assert.Equal(t, "Hello", got.Message)
	})

	t.Run("query parameter on GET", func(t *testing.T) {
		t.Parallel()

		q := url.Values{"datastar": {`{"name":"Ada"}`}}.Encode()
		req := httptest.NewRequest(http.MethodGet, "/contact?"+q, nil)
		req.Header.Set("Datastar-Request", "true")

		var got message
		require.NoError(t, binder.Signals()(req, &got))
		assert.Equal(t, "Ada", got.Name)
	})

	t.Run("not applicable for plain requests", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader("name=Ada"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		assert.ErrorIs(t, binder.Signals()(req, &message{}), binder.ErrBinderNotApplicable)
	})

	t.Run("malformed json", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(`{"name":`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Datastar-Request", "true")
		assert.ErrorIs(t, binder.Signals()(req, &message{}), binder.ErrFailedToParseSignals)
	})
}
