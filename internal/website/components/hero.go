package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func Hero() g.Node {
	stat := func(value, label string) g.Node {
		return Div(
			Div(Class("gradient-text"), g.Attr("style", "font-size:2rem;font-weight:700"), g.Text(value)),
			Div(Class("muted"), g.Text(label)),
		)
	}
	pill := func(text string) g.Node {
		return Span(g.Text("• "+text))
	}

	return Section(
		ID("home"),
		Class("hero"),
		Div(
			Class("container"),
			Span(Class("btn btn-ghost"), Icon("lucide--sparkles", ""), g.Text(" All-in-One AI Design Platform")),
			H1(
				g.Text("Unleash Your Creativity with "),
				Span(Class("gradient-text"), g.Text("AI-Powered Design")),
			),
			P(
				Class("muted"),
				g.Text("Transform your ideas into stunning visual content in seconds. From logos to videos, social media to websites - create professional designs with the power of AI."),
			),
			Div(
				Class("pills"),
				pill("12 AI-Powered Tools"),
				pill("Professional Quality"),
				pill("Instant Generation"),
			),
			Div(
				g.Attr("style", "margin-top:2rem;display:flex;gap:1rem;justify-content:center"),
				A(Href("#ai-tools"), Class("btn btn-primary"), g.Text("Start Creating Now")),
				A(Href("#features"), Class("btn btn-ghost"), g.Text("Watch Demo")),
			),
			Div(
				Class("stats"),
				stat("12", "AI Tools"),
				stat("10K+", "Designs Created"),
				stat("5⭐", "User Rating"),
				stat("24/7", "AI Support"),
			),
		),
	)
}
