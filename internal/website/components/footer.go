package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func PageFooter() g.Node {
	column := func(title string, links ...string) g.Node {
		return Div(
			H4(g.Text(title)),
			Ul(g.Map(links, func(l string) g.Node { return Li(g.Text(l)) })),
		)
	}

	return Footer(
		Div(
			Class("container"),
			Div(
				Class("grid"),
				Div(
					Logo(),
					P(g.Text("Empowering creators and businesses with AI-powered design tools.")),
					P(Icon("lucide--mail", "Email"), g.Text(" support@lotaya.ai")),
					P(Icon("lucide--phone", "Phone"), g.Text(" +1 (555) 123-4567")),
					P(Icon("lucide--map-pin", "Location"), g.Text(" San Francisco, CA")),
				),
				column("Product", "AI Tools", "Pricing", "API", "Integrations"),
				column("Company", "About", "Careers", "Blog", "Press"),
				column("Resources", "Documentation", "Tutorials", "Community", "Support"),
				column("Legal", "Privacy", "Terms", "Security", "Cookies"),
			),
			P(
				g.Attr("style", "margin-top:2rem;text-align:center"),
				g.Text("© 2025 Lotaya AI. "),
				Span(Class("gradient-text"), g.Text("Transforming creativity since 2025")),
			),
		),
	)
}
