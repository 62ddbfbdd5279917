package components

import (
	"fmt"
	"path"
	"sort"
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/lotayaai/lotaya-io/internal/tools"
	"github.com/lotayaai/lotaya-io/pkg/sdk"
)

// ToolResult renders a succeeded form's payload followed by the "Try
// another" control.
func ToolResult(d tools.Descriptor, payload sdk.Payload) g.Node {
	var body g.Node
	switch d.ID {
	case tools.Domain:
		body = domainResult(payload)
	case tools.Slogan:
		body = sloganResult(payload)
	default:
		body = generationResult(payload)
	}

	return Div(
		Class("result"),
		g.Attr("data-result", d.ID),
		body,
		Form(
			Method("post"),
			Action("/tools/"+d.ID+"/reset"),
			Button(Type("submit"), Class("btn btn-ghost"), g.Text("Try another")),
		),
	)
}

func generationResult(p sdk.Payload) g.Node {
	var res sdk.GenerationResult
	if err := p.Decode(&res); err != nil {
		return P(Class("alert-error"), g.Text("Unexpected response from the server."))
	}

	return g.Group([]g.Node{
		Div(Class("result-message"), Icon("lucide--check-circle", ""), g.Text(" "+res.Message)),
		g.If(res.AssetURL != "", asset(res.AssetURL)),
		g.If(res.JobID != "", P(Class("muted"), g.Text("Job "+res.JobID))),
		g.If(len(res.Metadata) > 0, metadata(res.Metadata)),
	})
}

func asset(url string) g.Node {
	switch strings.ToLower(path.Ext(url)) {
	case ".mp4", ".webm":
		return Video(Src(url), Controls(), Class("asset"))
	case ".mp3", ".wav", ".ogg":
		return Audio(Src(url), Controls(), Class("asset"))
	case ".png", ".jpg", ".jpeg", ".gif", ".webp", ".svg":
		return Img(Src(url), Alt("Generated asset"), Class("asset"))
	default:
		return A(Href(url), Target("_blank"), Rel("noopener"), g.Text("Download"))
	}
}

func metadata(m map[string]any) g.Node {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return Dl(
		Class("metadata"),
		g.Map(keys, func(k string) g.Node {
			return g.Group([]g.Node{Dt(g.Text(k)), Dd(g.Text(formatMeta(m[k])))})
		}),
	)
}

func formatMeta(v any) string {
	switch t := v.(type) {
	case []any:
		parts := make([]string, 0, len(t))
		for _, item := range t {
			parts = append(parts, formatMeta(item))
		}
		return strings.Join(parts, ", ")
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, k+": "+formatMeta(t[k]))
		}
		return strings.Join(parts, "; ")
	case nil:
		return "-"
	default:
		return fmt.Sprint(t)
	}
}

func domainResult(p sdk.Payload) g.Node {
	var res sdk.DomainResult
	if err := p.Decode(&res); err != nil {
		return P(Class("alert-error"), g.Text("Unexpected response from the server."))
	}
	available, taken := res.Counts()

	return g.Group([]g.Node{
		P(
			Class("result-message"),
			Strong(g.Text(fmt.Sprintf("%d available", available))),
			g.Text(fmt.Sprintf(" · %d taken", taken)),
		),
		Ul(
			Class("domain-list"),
			g.Map(res.Suggestions, func(s sdk.DomainSuggestion) g.Node {
				state := "taken"
				if s.Available {
					state = "available"
				}
				return Li(
					Class(state),
					Span(Class("domain"), g.Text(s.Domain)),
					Span(Class("price"), g.Text(s.Price)),
					Span(Class("tag"), g.Text(state)),
				)
			}),
		),
	})
}

func sloganResult(p sdk.Payload) g.Node {
	var res sdk.SloganResult
	if err := p.Decode(&res); err != nil {
		return P(Class("alert-error"), g.Text("Unexpected response from the server."))
	}
	return Ol(
		Class("slogans"),
		g.Map(res.Slogans, func(s string) g.Node { return Li(g.Text(s)) }),
	)
}
