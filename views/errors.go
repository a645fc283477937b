package views

import (
	"fmt"
	"net/http"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/devsomeware/contactkit/handler"
)

// ErrorPage renders a full page for a failed regular request.
func ErrorPage(p handler.ErrorPageParams) templ.Component {
	return Component(layout(http.StatusText(p.StatusCode), nil,
		h.Main(
			h.Class("min-h-screen flex flex-col items-center justify-center gap-4 px-4 text-center"),
			h.H1(h.Class("text-4xl font-extrabold"), g.Text(fmt.Sprintf("%d", p.StatusCode))),
			h.P(h.Class("text-lg text-gray-300"), g.Text(p.Error)),
			g.If(p.RequestID != "", h.P(h.Class("text-xs text-gray-500"), g.Text("Request ID: "+p.RequestID))),
			h.A(h.Href(p.RetryURL), h.Class("text-indigo-400 underline"), g.Text("Try again")),
		),
	))
}

// ErrorToast renders a dismissible notice prepended to #toast-container.
func ErrorToast(p handler.ErrorToastParams) templ.Component {
	color := "bg-red-800"
	if p.Type == "warning" {
		color = "bg-yellow-700"
	}
	return Component(h.Div(
		h.Class("p-4 rounded-md text-sm text-white shadow-lg "+color),
		h.Role("alert"),
		g.Attr("data-on-click", "el.remove()"),
		g.Text(p.Message),
	))
}
