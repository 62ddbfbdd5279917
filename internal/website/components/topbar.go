package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func Topbar() g.Node {
	return Header(
		Class("topbar"),
		Div(
			Class("container"),
			Logo(),
			Nav(
				A(Href("/#home"), g.Text("Home")),
				A(Href("/#ai-tools"), g.Text("AI Tools")),
				A(Href("/#features"), g.Text("Features")),
				A(Href("/#benefits"), g.Text("Benefits")),
				A(Href("/tools/chat"), Class("btn btn-primary"), g.Text("Get Started")),
			),
		),
	)
}
