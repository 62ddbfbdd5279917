package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type benefit struct {
	Icon        string
	Title       string
	Description string
	Stat        string
}

var benefits = []benefit{
	{"lucide--trending-up", "Boost Productivity", "Create content 10x faster than traditional design methods", "10x Faster"},
	{"lucide--clock", "Save Time", "Generate professional designs in minutes, not days", "90% Time Saved"},
	{"lucide--dollar-sign", "Reduce Costs", "Eliminate expensive design agencies and freelancers", "80% Cost Reduction"},
	{"lucide--users", "Scale Your Team", "Empower every team member to create professional content", "Unlimited Users"},
	{"lucide--target", "Improve Consistency", "Maintain brand consistency across all your content", "100% Brand Match"},
	{"lucide--award", "Professional Quality", "Get designer-level results without design experience", "Pro Quality"},
}

func Benefits() g.Node {
	return Section(
		ID("benefits"),
		Class("section"),
		Div(
			Class("container"),
			SectionTitle("Transform Your Business from", "Day One"),
			Div(
				Class("grid"),
				g.Map(benefits, func(b benefit) g.Node {
					return Div(
						Class("card"),
						IconBadge(b.Icon, "success"),
						H3(g.Text(b.Title)),
						P(Class("muted"), g.Text(b.Description)),
						Div(Class("stat"), g.Text(b.Stat)),
					)
				}),
			),
			Div(
				Class("card comparison"),
				g.Attr("style", "margin-top:3rem"),
				Div(
					Div(Class("price"), g.Text("$2,500")),
					Div(g.Text("Average Monthly Design Costs")),
					Div(Class("muted"), g.Text("Traditional Agencies")),
				),
				Icon("lucide--arrow-right", ""),
				Div(
					Div(Class("price gradient-text"), g.Text("$99")),
					Div(g.Text("Monthly Subscription")),
					Div(Class("muted"), g.Text("With Lotaya AI")),
				),
			),
			P(
				g.Attr("style", "text-align:center;margin-top:1.5rem"),
				g.Text("Save "), Strong(Class("gradient-text"), g.Text("$2,401")), g.Text(" every month. "),
				Strong(g.Text("That's $28,812 per year!")),
			),
			Div(
				g.Attr("style", "text-align:center"),
				A(Href("#ai-tools"), Class("btn btn-primary"), g.Text("Start Saving Today")),
			),
		),
	)
}
