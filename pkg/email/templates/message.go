package templates

import (
	"strings"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Message is the content of a contact-form email.
type Message struct {
	FromName  string
	FromEmail string
	ToName    string
	Body      string
}

// ContactMessage renders a contact-form submission as a standalone HTML email.
// Line breaks in the body are preserved.
func ContactMessage(m Message) templ.Component {
	return component(h.Doctype(
		h.HTML(
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.TitleEl(g.Text("New message from "+m.FromName)),
			),
			h.Body(
				g.Attr("style", "font-family:Arial,sans-serif;color:#111827;background:#f9fafb;padding:24px"),
				h.Div(
					g.Attr("style", "max-width:560px;margin:0 auto;background:#ffffff;border-radius:8px;padding:24px"),
					h.P(g.Text("Hello "+m.ToName+",")),
					h.P(
						g.Text("You got a new message from "),
						h.Strong(g.Text(m.FromName)),
						g.Text(" ("),
						h.A(h.Href("mailto:"+m.FromEmail), g.Text(m.FromEmail)),
						g.Text("):"),
					),
					h.BlockQuote(
						g.Attr("style", "border-left:4px solid #1e40af;margin:16px 0;padding:8px 16px;white-space:pre-wrap"),
						g.Text(strings.TrimSpace(m.Body)),
					),
				),
			),
		),
	))
}
