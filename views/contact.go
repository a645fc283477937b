package views

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/devsomeware/contactkit/modules/contact"
)

const inputClass = "mt-1 block w-full bg-gray-800 text-white border border-gray-700 rounded-md py-2 px-3 focus:outline-none focus:ring-2 focus:ring-indigo-500"

// ContactViews returns the contact page views. action is the path the form
// posts to and the page refreshes to.
func ContactViews(c Content, action string) *contact.Views {
	return &contact.Views{
		Page: func(p contact.PageParams) templ.Component {
			return Component(ContactPage(c, action, p))
		},
		Alert: func(p contact.AlertParams) templ.Component {
			return Component(Alert(p.Alert))
		},
	}
}

// ContactPage renders the full page for the given state.
func ContactPage(c Content, action string, p contact.PageParams) g.Node {
	var head []g.Node
	if p.RefreshAfter > 0 {
		seconds := int(math.Ceil(p.RefreshAfter.Seconds()))
		head = append(head, h.Meta(g.Attr("http-equiv", "refresh"), h.Content(fmt.Sprintf("%d;url=%s", seconds, action))))
	}
	head = append(head, h.StyleEl(g.Raw(contact.PanKeyframes("stars-pan", c.BackgroundWidth))))

	return layout(c.Title, head,
		Alert(p.State.Alert),
		section(c, action, p.State),
	)
}

// Alert renders the alert container. It is always present so that it can be
// patched by id; it is empty while the alert is hidden.
func Alert(a contact.AlertState) g.Node {
	return h.Div(
		h.ID(contact.AlertID),
		g.If(a.Show, alertBox(a)),
	)
}

func alertBox(a contact.AlertState) g.Node {
	box, badge, label := "bg-blue-800", "bg-blue-500", "Success"
	if a.Kind != contact.AlertSuccess {
		box, badge, label = "bg-red-800", "bg-red-500", "Failed"
	}

	return h.Div(
		h.Class("fixed bottom-5 right-5 flex justify-center items-center z-50"),
		h.Div(
			h.Class("p-5 "+box+" items-center text-indigo-100 leading-none rounded-md flex"),
			h.Role("alert"),
			h.Span(
				h.Class("flex rounded-full "+badge+" uppercase px-2 py-1 text-xs font-semibold mr-3"),
				g.Text(label),
			),
			h.Span(h.Class("mr-2 text-left"), g.Text(a.Text)),
		),
	)
}

func section(c Content, action string, st contact.State) g.Node {
	return h.Section(
		h.ID("contact"),
		h.Class("my-20 stars-pan"),
		g.Attr("style", fmt.Sprintf("background-image:url(%s);background-position-y:%gpx", c.Background, contact.ParallaxOffset(0))),
		g.Attr("data-on-load", contact.ParallaxExpression("el")),
		g.Attr("data-on-scroll__window", contact.ParallaxExpression("el")),
		h.Div(
			h.Class("relative min-h-screen flex items-center justify-center"),
			g.If(c.Illustration != "", h.Img(
				h.Src(c.Illustration),
				h.Alt("terminal-bg"),
				h.Width("1000"),
				h.Height("800"),
				h.Class("absolute mb-8 lg:h-[810px] lg:w-[1100px] lg:left-60 inset-0 left-auto object-cover lg:right-72 lg:top-0 right-0 top-8 h-[800px]"),
			)),
			h.Div(
				h.Class("relative z-10 max-w-2xl w-full px-4"),
				h.H3(h.Class("text-4xl font-extrabold text-white"), g.Text(c.Heading)),
				h.P(h.Class("mt-3 text-lg text-gray-300"), g.Text(c.Intro)),
				form(c, action, st),
			),
		),
	)
}

func form(c Content, action string, st contact.State) g.Node {
	return g.El("form",
		h.Class("mt-12 space-y-6"),
		h.Method("post"),
		h.Action(action),
		g.Attr("data-signals", signals(st)),
		g.Attr("data-on-submit", "@post("+jsString(action)+")"),
		field(c.NameLabel, h.Input(
			h.Type("text"),
			h.Name(string(contact.FieldName)),
			h.Value(st.Form.Name),
			g.Attr("data-bind-name"),
			h.Required(),
			h.Class(inputClass),
			h.Placeholder(c.NamePlaceholder),
		)),
		field(c.EmailLabel, h.Input(
			h.Type("email"),
			h.Name(string(contact.FieldEmail)),
			h.Value(st.Form.Email),
			g.Attr("data-bind-email"),
			h.Required(),
			h.Class(inputClass),
			h.Placeholder(c.EmailPlaceholder),
		)),
		field(c.MessageLabel, h.Textarea(
			h.Name(string(contact.FieldMessage)),
			g.Attr("data-bind-message"),
			h.Required(),
			h.Rows("5"),
			h.Class(inputClass),
			h.Placeholder(c.MessagePlaceholder),
			g.Text(st.Form.Message),
		)),
		h.Button(
			h.Type("submit"),
			g.If(st.Loading, h.Disabled()),
			g.Attr("data-attr-disabled", "$loading"),
			h.Class("inline-flex items-center justify-center px-6 py-3 bg-indigo-600 text-white font-medium rounded-md hover:bg-indigo-700 focus:outline-none focus:ring-2 focus:ring-indigo-500 disabled:opacity-50"),
			h.Span(
				g.Attr("data-text", "$loading ? "+jsString(c.SendingLabel)+" : "+jsString(c.SubmitLabel)),
				g.Text(buttonLabel(c, st.Loading)),
			),
			g.If(c.ArrowIcon != "", h.Img(h.Src(c.ArrowIcon), h.Alt("arrow-up"), h.Width("20"), h.Height("20"), h.Class("ml-2"))),
		),
	)
}

func field(label string, input g.Node) g.Node {
	return h.Label(
		h.Class("block"),
		h.Span(h.Class("text-white"), g.Text(label)),
		input,
	)
}

func buttonLabel(c Content, loading bool) string {
	if loading {
		return c.SendingLabel
	}
	return c.SubmitLabel
}

// jsString quotes s as a JavaScript string literal for Datastar expressions.
func jsString(s string) string {
	data, _ := json.Marshal(s)
	return string(data)
}

// signals is the initial Datastar signal store for the form.
func signals(st contact.State) string {
	data, _ := json.Marshal(map[string]any{
		string(contact.FieldName):    st.Form.Name,
		string(contact.FieldEmail):   st.Form.Email,
		string(contact.FieldMessage): st.Form.Message,
		"loading":                    st.Loading,
	})
	return string(data)
}
