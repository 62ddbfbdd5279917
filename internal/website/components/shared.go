package components

import (
	"fmt"
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func Logo() g.Node {
	return A(
		Href("/"),
		Class("logo"),
		Span(Class("gradient-text"), g.Attr("style", "font-weight:800;font-size:1.4rem"), g.Text("Lotaya AI")),
	)
}

// iconName converts "lucide--palette" to the iconify name "lucide:palette".
func iconName(iconClass string) string {
	parts := strings.Fields(iconClass)
	if len(parts) == 0 {
		return ""
	}
	return strings.Replace(parts[0], "--", ":", 1)
}

func Icon(iconClass, ariaLabel string) g.Node {
	if ariaLabel != "" {
		return Span(
			Class("iconify"),
			g.Attr("data-icon", iconName(iconClass)),
			g.Attr("role", "img"),
			g.Attr("aria-label", ariaLabel),
		)
	}
	return Span(
		Class("iconify"),
		g.Attr("data-icon", iconName(iconClass)),
		g.Attr("aria-hidden", "true"),
	)
}

func IconBadge(icon, color string) g.Node {
	return Span(
		Class("badge"),
		g.Attr("style", fmt.Sprintf("color: var(--%s)", color)),
		Icon(icon, ""),
	)
}

func SectionTitle(plain, highlighted string) g.Node {
	return H2(
		g.Text(plain+" "),
		Span(Class("gradient-text"), g.Text(highlighted)),
	)
}

func NotFound() g.Node {
	return Section(
		Class("section"),
		Div(
			Class("container"),
			g.Attr("style", "text-align:center"),
			H1(g.Text("Tool not found")),
			P(Class("muted"), g.Text("The tool you are looking for does not exist.")),
			A(Href("/#ai-tools"), Class("btn btn-primary"), g.Text("Browse AI Tools")),
		),
	)
}
