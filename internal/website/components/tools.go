package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/lotayaai/lotaya-io/internal/tools"
)

// ToolGrid renders one card per registered tool, in registry order. Each
// card opens the tool's modal.
func ToolGrid(descriptors []tools.Descriptor) g.Node {
	return Section(
		ID("ai-tools"),
		Class("section"),
		Div(
			Class("container"),
			SectionTitle("Powerful", "AI Tools"),
			P(Class("muted"), g.Attr("style", "text-align:center"),
				g.Text("Everything you need to create professional content, powered by cutting-edge AI technology."),
			),
			Div(
				Class("grid"),
				g.Map(descriptors, func(d tools.Descriptor) g.Node {
					return A(
						Href("/tools/"+d.ID),
						Class("card"),
						g.Attr("data-tool", d.ID),
						IconBadge(d.Icon, d.Color),
						H3(g.Text(d.Name)),
						P(Class("muted"), g.Text(d.Description)),
					)
				}),
			),
		),
	)
}
