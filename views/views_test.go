package views_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devsomeware/contactkit/handler"
	"github.com/devsomeware/contactkit/modules/contact"
	"github.com/devsomeware/contactkit/views"
)

func renderPage(t *testing.T, p contact.PageParams) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, views.ContactViews(views.DefaultContent(), "/contact").Page(p).Render(context.Background(), &buf))
	return buf.String()
}

func TestContactPage_Initial(t *testing.T) {
	t.Parallel()

	html := renderPage(t, contact.PageParams{State: contact.InitialState()})

	assert.Contains(t, html, `<div id="contact-alert"></div>`)
	assert.Contains(t, html, `method="post" action="/contact"`)
	assert.Contains(t, html, `data-on-submit="@post(&#34;/contact&#34;)"`)
	assert.Contains(t, html, `data-signals="{&#34;email&#34;:&#34;&#34;,&#34;loading&#34;:false,&#34;message&#34;:&#34;&#34;,&#34;name&#34;:&#34;&#34;}"`)
	assert.Contains(t, html, `type="email" name="email"`)
	assert.Contains(t, html, `data-bind-name`)
	assert.Contains(t, html, `data-attr-disabled="$loading"`)
	assert.Contains(t, html, `>Send Message</span>`)
	assert.Contains(t, html, `data-text="$loading ? &#34;Sending...&#34; : &#34;Send Message&#34;"`)
	assert.Contains(t, html, `src="/static/terminal.svg" alt="terminal-bg"`)
	assert.Contains(t, html, "Lets talk")
	assert.Contains(t, html, "@keyframes stars-pan")
	assert.Contains(t, html, "background-position-y:-300px")
	assert.NotContains(t, html, "http-equiv")
	assert.Equal(t, 3, bytes.Count([]byte(html), []byte("required")))
}

func TestContactPage_LabelsAreQuotedForExpressions(t *testing.T) {
	t.Parallel()

	c := views.DefaultContent()
	c.SubmitLabel = "Let's go"
	c.SendingLabel = `Say "hi"...`
	c.Illustration = ""

	var buf bytes.Buffer
	page := views.ContactViews(c, "/contact").Page(contact.PageParams{State: contact.InitialState()})
	require.NoError(t, page.Render(context.Background(), &buf))
	html := buf.String()

	assert.Contains(t, html, `data-text="$loading ? &#34;Say \&#34;hi\&#34;...&#34; : &#34;Let&#39;s go&#34;"`)
	assert.NotContains(t, html, "terminal-bg")
}

func TestContactPage_SuccessFallback(t *testing.T) {
	t.Parallel()

	st := contact.Reduce(contact.InitialState(), contact.DeliverySucceeded{})
	html := renderPage(t, contact.PageParams{State: st, RefreshAfter: 3 * time.Second})

	assert.Contains(t, html, `<meta http-equiv="refresh" content="3;url=/contact">`)
	assert.Contains(t, html, "bg-blue-800")
	assert.Contains(t, html, ">Success</span>")
	assert.Contains(t, html, "Thank you for your message 😃")
}

func TestContactPage_KeepsValuesAndLoading(t *testing.T) {
	t.Parallel()

	st := contact.InitialState()
	st.Form = contact.FormState{Name: "Ada", Email: "ada@example.com", Message: "Hello <b>"}
	st.Loading = true
	html := renderPage(t, contact.PageParams{State: st})

	assert.Contains(t, html, `value="Ada"`)
	assert.Contains(t, html, `value="ada@example.com"`)
	assert.Contains(t, html, "Hello &lt;b&gt;</textarea>")
	assert.Contains(t, html, " disabled ")
	assert.Contains(t, html, ">Sending...</span>")
}

func TestAlert(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	alerts := views.ContactViews(views.DefaultContent(), "/contact").Alert

	failed := contact.Reduce(contact.InitialState(), contact.DeliveryFailed{})
	require.NoError(t, alerts(contact.AlertParams{Alert: failed.Alert}).Render(context.Background(), &buf))

	html := buf.String()
	assert.Contains(t, html, `id="contact-alert"`)
	assert.Contains(t, html, "bg-red-800")
	assert.Contains(t, html, ">Failed</span>")
	assert.Contains(t, html, "I didn&#39;t receive your message 😢")
	assert.Contains(t, html, `role="alert"`)
}

func TestLoadContent(t *testing.T) {
	t.Parallel()

	c, err := views.LoadContent("")
	require.NoError(t, err)
	assert.Equal(t, views.DefaultContent(), c)

	path := filepath.Join(t.TempDir(), "content.yaml")
	require.NoError(t, os.WriteFile(path, []byte("heading: Say hi\nbackground_width: 2048\n"), 0o600))

	c, err = views.LoadContent(path)
	require.NoError(t, err)
	assert.Equal(t, "Say hi", c.Heading)
	assert.Equal(t, 2048, c.BackgroundWidth)
	assert.Equal(t, "Full Name", c.NameLabel)

	_, err = views.LoadContent(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, views.ErrLoadingContent)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("heading: [unclosed"), 0o600))
	_, err = views.LoadContent(bad)
	require.ErrorIs(t, err, views.ErrLoadingContent)
}

func TestErrorViews(t *testing.T) {
	t.Parallel()

	var page bytes.Buffer
	require.NoError(t, views.ErrorPage(handler.ErrorPageParams{
		Error:      "bad_request",
		StatusCode: 400,
		RequestID:  "req-1",
		RetryURL:   "/contact",
	}).Render(context.Background(), &page))
	assert.Contains(t, page.String(), "<title>Bad Request</title>")
	assert.Contains(t, page.String(), "Request ID: req-1")
	assert.Contains(t, page.String(), `href="/contact"`)

	var toast bytes.Buffer
	require.NoError(t, views.ErrorToast(handler.ErrorToastParams{Message: "email: field is required", Type: "warning"}).
		Render(context.Background(), &toast))
	assert.Contains(t, toast.String(), "bg-yellow-700")
	assert.Contains(t, toast.String(), "email: field is required")
}
