package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Chat message authors.
const (
	MessageUser = "user"
	MessageBot  = "bot"
)

// ChatMessage is one entry of the assistant transcript.
type ChatMessage struct {
	Type        string
	Content     string
	Suggestions []string
}

// ChatTranscript renders the conversation so far. Suggestions of the last
// bot message are rendered as one-click replies.
func ChatTranscript(messages []ChatMessage) g.Node {
	var suggestions []string
	if n := len(messages); n > 0 && messages[n-1].Type == MessageBot {
		suggestions = messages[n-1].Suggestions
	}

	return g.Group([]g.Node{
		Div(
			Class("transcript"),
			g.Attr("aria-live", "polite"),
			g.Map(messages, func(m ChatMessage) g.Node {
				return Div(Class("message "+m.Type), g.Text(m.Content))
			}),
		),
		g.If(len(suggestions) > 0, Form(
			Method("post"),
			Action("/tools/chat"),
			Class("suggestions"),
			g.Map(suggestions, func(s string) g.Node {
				return Button(Type("submit"), Name("message"), Value(s), Class("btn btn-ghost"), g.Text(s))
			}),
		)),
	})
}
