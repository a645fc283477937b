package email_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devsomeware/contactkit/pkg/email"
)

var testCreds = email.Credentials{ServiceID: "service_1", TemplateID: "template_1", PublicKey: "pk_1"}

var testParams = email.TemplateParams{
	FromName:  "Ada",
	ToName:    "Aniket Subudhi",
	FromEmail: "ada@example.com",
	ToEmail:   "a@example.com, b@example.com,,",
	Message:   "Hello",
}

func TestCredentials_Validate(t *testing.T) {
	t.Parallel()

	require.NoError(t, testCreds.Validate())

	err := email.Credentials{ServiceID: "s", PublicKey: " "}.Validate()
	require.ErrorIs(t, err, email.ErrMissingCredentials)
	assert.Contains(t, err.Error(), "TemplateID, PublicKey")
}

func TestTemplateParams_Recipients(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"a@example.com", "b@example.com"}, testParams.Recipients())
	assert.Empty(t, email.TemplateParams{}.Recipients())
}

func TestEmailJSClient_SendEmail(t *testing.T) {
	t.Parallel()

	t.Run("posts template params", func(t *testing.T) {
		t.Parallel()

		var payload map[string]any
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/v1.0/email/send", r.URL.Path)
			assert.Contains(t, r.Header.Get("Content-Type"), "application/json")
			body, _ := io.ReadAll(r.Body)
			assert.NoError(t, json.Unmarshal(body, &payload))
			_, _ = w.Write([]byte("OK"))
		}))
		defer srv.Close()

		client := email.NewEmailJSClient(email.Config{EmailJSBaseURL: srv.URL})
		require.NoError(t, client.SendEmail(context.Background(), testCreds, testParams))

		assert.Equal(t, "service_1", payload["service_id"])
		assert.Equal(t, "template_1", payload["template_id"])
		assert.Equal(t, "pk_1", payload["user_id"])
		assert.NotContains(t, payload, "accessToken")
		assert.Equal(t, map[string]any{
			"from_name":  "Ada",
			"to_name":    "Aniket Subudhi",
			"from_email": "ada@example.com",
			"to_email":   "a@example.com, b@example.com,,",
			"message":    "Hello",
		}, payload["template_params"])
	})

	t.Run("sends access token when configured", func(t *testing.T) {
		t.Parallel()

		var token string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var body struct {
				AccessToken string `json:"accessToken"`
			}
			_ = json.NewDecoder(r.Body).Decode(&body)
			token = body.AccessToken
		}))
		defer srv.Close()

		client := email.NewEmailJSClient(email.Config{EmailJSBaseURL: srv.URL, EmailJSPrivateKey: "secret"})
		require.NoError(t, client.SendEmail(context.Background(), testCreds, testParams))
		assert.Equal(t, "secret", token)
	})

	t.Run("non-200 is a delivery failure", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			http.Error(w, "The Public Key is invalid", http.StatusBadRequest)
		}))
		defer srv.Close()

		client := email.NewEmailJSClient(email.Config{EmailJSBaseURL: srv.URL})
		err := client.SendEmail(context.Background(), testCreds, testParams)

		require.ErrorIs(t, err, email.ErrFailedToSendEmail)
		assert.Contains(t, err.Error(), "400")
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("missing credentials make no call", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
		}))
		defer srv.Close()

		client := email.NewEmailJSClient(email.Config{EmailJSBaseURL: srv.URL})
		err := client.SendEmail(context.Background(), email.Credentials{}, testParams)

		require.ErrorIs(t, err, email.ErrFailedToSendEmail)
		require.ErrorIs(t, err, email.ErrMissingCredentials)
		assert.Zero(t, calls.Load())
	})

	t.Run("transport error", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.NotFoundHandler())
		srv.Close()

		client := email.NewEmailJSClient(email.Config{EmailJSBaseURL: srv.URL})
		err := client.SendEmail(context.Background(), testCreds, testParams)
		require.ErrorIs(t, err, email.ErrFailedToSendEmail)
	})
}

func TestNewPostmarkClient(t *testing.T) {
	t.Parallel()

	valid := email.Config{
		PostmarkServerToken:  "server",
		PostmarkAccountToken: "account",
		SenderEmail:          "noreply@example.com",
	}

	client, err := email.NewPostmarkClient(valid)
	require.NoError(t, err)
	assert.NotNil(t, client)

	tests := []struct {
		name   string
		mutate func(*email.Config)
		msg    string
	}{
		{"server token", func(c *email.Config) { c.PostmarkServerToken = "" }, "PostmarkServerToken is required"},
		{"account token", func(c *email.Config) { c.PostmarkAccountToken = "" }, "PostmarkAccountToken is required"},
		{"sender", func(c *email.Config) { c.SenderEmail = "nope" }, "SenderEmail must be a valid email address"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			client, err := email.NewPostmarkClient(cfg)
			require.ErrorIs(t, err, email.ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.msg)
			assert.Nil(t, client)
		})
	}

	t.Run("missing credentials fail at call time", func(t *testing.T) {
		err := client.SendEmail(context.Background(), email.Credentials{}, testParams)
		require.ErrorIs(t, err, email.ErrMissingCredentials)
	})
}

func TestDevSender_SendEmail(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "out")
	sender := email.NewDevSender(dir)

	require.NoError(t, sender.SendEmail(context.Background(), testCreds, testParams))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	for _, entry := range entries {
		assert.Contains(t, entry.Name(), "ada_at_example.com")
		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		require.NoError(t, err)

		switch {
		case strings.HasSuffix(entry.Name(), ".html"):
			assert.Contains(t, string(data), "Hello Aniket Subudhi,")
			assert.Contains(t, string(data), "mailto:ada@example.com")
		case strings.HasSuffix(entry.Name(), ".json"):
			var meta map[string]any
			require.NoError(t, json.Unmarshal(data, &meta))
			assert.Equal(t, "template_1", meta["template_id"])
		default:
			t.Fatalf("unexpected file %s", entry.Name())
		}
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	sender, err := email.New(email.Config{})
	require.NoError(t, err)
	assert.IsType(t, &email.EmailJSClient{}, sender)

	sender, err = email.New(email.Config{Provider: email.ProviderDev, DevOutputDir: t.TempDir()})
	require.NoError(t, err)
	assert.IsType(t, &email.DevSender{}, sender)

	_, err = email.New(email.Config{Provider: email.ProviderPostmark})
	require.ErrorIs(t, err, email.ErrInvalidConfig)

	_, err = email.New(email.Config{Provider: "carrier-pigeon"})
	require.ErrorIs(t, err, email.ErrUnknownProvider)
}
