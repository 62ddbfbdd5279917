package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type PageConfig struct {
	Title       string
	Description string
	// ScrollLocked marks the body while a tool modal is shown
	ScrollLocked bool
}

func Layout(config PageConfig, content ...g.Node) g.Node {
	if config.Title == "" {
		config.Title = "Lotaya AI - All-in-One AI Design Platform"
	}
	if config.Description == "" {
		config.Description = "Transform your ideas into stunning visual content in seconds. From logos to videos, social media to websites - create professional designs with the power of AI."
	}

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(config.Title)),
				Meta(Name("description"), Content(config.Description)),
				Meta(g.Attr("property", "og:title"), Content(config.Title)),
				Meta(g.Attr("property", "og:description"), Content(config.Description)),
				Meta(g.Attr("property", "og:type"), Content("website")),
				Link(Rel("stylesheet"), Href("/static/styles.css")),
				Script(Src("https://code.iconify.design/1/1.0.7/iconify.min.js")),
			),
			Body(
				g.If(config.ScrollLocked, g.Attr("data-scroll-lock", "")),
				g.Group(content),
				Script(Src("/static/js/modal.js")),
			),
		),
	})
}
