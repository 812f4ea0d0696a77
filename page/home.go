// Package page renders the ShelterAID landing page.
package page

import (
	"io"

	"github.com/shelteraid/shelteraid/core"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

const (
	HomePath  = "/"
	LoginPath = "/login"

	ManualImage     = "/home_manual.png"
	ShelterAIDImage = "/home_shelteraid.png"

	// LoginAction is the form value which activates the login control.
	LoginAction = "login"
)

const (
	dark  = "background-color: #103063ff; margin: 5px 10px 5px 10px"
	light = "background-color: #2B65AF; margin: 5px 10px 5px 10px"
)

// Home is the landing page. It has no state, the zero value is ready to use.
type Home struct{}

func NewHome() *Home {
	return &Home{}
}

// OnLoginRequested asks nav to go to the login page.
func (*Home) OnLoginRequested(nav core.Navigator) {
	nav.NavigateTo(LoginPath)
}

// Render writes the whole HTML document.
func (home *Home) Render(w io.Writer) error {
	return h.Doctype(
		h.HTML(
			h.Lang("en"),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				g.El("title", g.Text("ShelterAID")),
			),
			h.Body(home.Node()),
		),
	).Render(w)
}

// Node returns the render tree of the page body.
func (*Home) Node() g.Node {
	return h.Div(
		h.Class("min-h-screen bg-[#103063ff] text-white"),
		h.Main(
			h.Class("container mx-auto p-4"),
			header(),
			h.Div(
				h.Class("grid mt-10 grid-cols-1 md:grid-cols-2 gap-4"),
				textSection("History", "text-4xl mt-20 mb-10 font-bold", "text-2xl mb-10", historyHTML),
				imageBox(ManualImage, "font-style: italic; font-weight: bold; text-align: right", g.Text("MANUAL ANNOTATION")),
			),
			h.Div(
				h.Class("grid mt-20 mb-10 grid-cols-1 md:grid-cols-2 gap-4"),
				imageBox(ShelterAIDImage, "font-style: italic; font-weight: bold", g.Raw(brand), g.Text("'s PUBLIC HEALTH RESOURCES MAP")),
				textSection("About us", "text-4xl mt-20 mb-10 font-bold", "text-2xl mb-20", aboutHTML),
			),
			mission(),
		),
	)
}

func header() g.Node {
	return h.Div(
		h.Class("p-4 rounded-md flex justify-between items-center"),
		g.Attr("style", light),
		h.H1(
			h.Class("text-4xl font-bold"),
			h.A(
				h.Href(HomePath),
				g.Text("SHELTER"),
				h.Span(h.Class("text-green-500"), g.Text("AID")),
			),
		),
		// a form, so the control works without client script
		h.Form(
			h.Method("post"),
			h.Action(HomePath),
			h.Button(
				h.Type("submit"),
				h.Name("action"),
				h.Value(LoginAction),
				h.Class("bg-green-500 text-white px-4 py-2 rounded"),
				g.Text("Login"),
			),
		),
	)
}

func textSection(title, titleClass, bodyClass, body string) g.Node {
	return h.Div(
		h.Class("space-y-2"),
		h.Div(
			h.Class("p-4 rounded-md"),
			g.Attr("style", dark),
			h.H2(h.Class(titleClass), g.Text(title)),
			h.Div(h.Class(bodyClass), g.Raw(body)),
		),
	)
}

func imageBox(src, captionStyle string, caption ...g.Node) g.Node {
	return h.Div(
		h.Class("p-4 rounded-md"),
		g.Attr("style", light+"; vertical-align: middle"),
		h.Img(h.Src(src), h.Alt("Shelter Image"), h.Class("w-full h-auto mt-2")),
		h.P(
			append([]g.Node{h.Class("mb-2"), g.Attr("style", captionStyle)}, caption...)...,
		),
	)
}

func mission() g.Node {
	return h.Div(
		h.Class("p-4 rounded-md"),
		g.Attr("style", light),
		h.H2(
			h.Class("text-4xl mt-2 mb-4 font-bold"),
			g.Attr("style", "font-style: italic; font-weight: bold; text-align: center"),
			g.Text("Mission"),
		),
		h.Div(
			h.Class("text-3xl mb-10"),
			g.Attr("style", "font-style: italic; text-align: center"),
			g.Raw(missionHTML),
		),
	)
}
