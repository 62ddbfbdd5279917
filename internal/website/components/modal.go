package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/lotayaai/lotaya-io/internal/tools"
)

// ToolModal is the dialog shell around an open tool. modal.js drives the
// entrance and exit transitions from data-phase.
func ToolModal(d tools.Descriptor, phase string, body ...g.Node) g.Node {
	closeHref := "/tools/" + d.ID + "/close"
	return Div(
		Class("modal-backdrop"),
		g.Attr("data-modal", d.ID),
		g.Attr("data-phase", phase),
		g.Attr("data-close-href", closeHref),
		Div(
			Class("modal-panel"),
			g.Attr("data-modal-panel", ""),
			g.Attr("role", "dialog"),
			g.Attr("aria-modal", "true"),
			g.Attr("aria-labelledby", "modal-title-"+d.ID),
			Div(
				Class("modal-header"),
				IconBadge(d.Icon, d.Color),
				Div(
					H2(ID("modal-title-"+d.ID), g.Text(d.Name)),
					P(Class("muted"), g.Text(d.Description)),
				),
				A(
					Href(closeHref),
					Class("modal-close"),
					g.Attr("data-modal-close", ""),
					g.Attr("aria-label", "Close"),
					Icon("lucide--x", ""),
				),
			),
			Div(Class("modal-body"), g.Group(body)),
		),
	)
}
