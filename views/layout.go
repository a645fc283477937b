package views

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

const (
	datastarScript = "https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0-RC.5/bundles/datastar.js"
	tailwindScript = "https://cdn.tailwindcss.com"
)

// layout wraps body in the document shell shared by every page.
func layout(title string, head []g.Node, body ...g.Node) g.Node {
	return h.Doctype(
		h.HTML(
			h.Lang("en"),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				h.TitleEl(g.Text(title)),
				h.Script(h.Src(tailwindScript)),
				h.Script(h.Type("module"), h.Src(datastarScript)),
				g.Group(head),
			),
			h.Body(
				h.Class("bg-black text-white antialiased"),
				g.Group(body),
				h.Div(h.ID("toast-container"), h.Class("fixed top-5 right-5 z-50 space-y-2")),
			),
		),
	)
}
