package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type feature struct {
	Icon        string
	Title       string
	Description string
}

var features = []feature{
	{"lucide--zap", "Lightning Fast Generation", "Create professional designs in seconds, not hours. Our AI processes your requests instantly."},
	{"lucide--shield", "Enterprise Security", "Your data and designs are protected with bank-level security and encryption."},
	{"lucide--globe", "Global Language Support", "Create content in multiple languages with culturally appropriate designs."},
	{"lucide--palette", "Unlimited Customization", "Fine-tune every aspect of your designs with advanced AI-powered controls."},
	{"lucide--clock", "24/7 AI Availability", "Our AI never sleeps. Create amazing content whenever inspiration strikes."},
	{"lucide--users", "Team Collaboration", "Share, edit, and collaborate on designs with your team in real-time."},
}

func Features() g.Node {
	return Section(
		ID("features"),
		Class("section"),
		Div(
			Class("container"),
			SectionTitle("Powerful Features of", "Lotaya AI"),
			Div(
				Class("grid"),
				g.Map(features, func(f feature) g.Node {
					return Div(
						Class("card"),
						IconBadge(f.Icon, "primary"),
						H3(g.Text(f.Title)),
						P(Class("muted"), g.Text(f.Description)),
					)
				}),
			),
		),
	)
}
