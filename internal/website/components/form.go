package components

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/lotayaai/lotaya-io/internal/tools"
)

// ToolForm renders the input form of a tool from its schema, echoing the
// current field values and the last error.
func ToolForm(d tools.Descriptor, snap tools.Snapshot) g.Node {
	busy := snap.Status == tools.StatusSubmitting
	return Form(
		Method("post"),
		Action("/tools/"+d.ID),
		g.Attr("data-tool-form", d.ID),
		g.Map(d.Form.Schema(), func(f tools.FieldSpec) g.Node {
			if f.Hidden {
				return nil
			}
			return field(f, snap.Fields, busy)
		}),
		g.If(snap.Status == tools.StatusFailed && snap.ErrorMessage != "",
			Div(Class("alert-error"), g.Attr("role", "alert"), g.Text(snap.ErrorMessage)),
		),
		Button(
			Type("submit"),
			Class("btn btn-primary"),
			g.If(busy, Disabled()),
			g.Text(submitLabel(d, busy)),
		),
	)
}

func submitLabel(d tools.Descriptor, busy bool) string {
	switch {
	case busy:
		return "Generating..."
	case d.ID == tools.Chat:
		return "Send"
	default:
		return "Generate"
	}
}

func field(f tools.FieldSpec, values tools.Fields, disabled bool) g.Node {
	id := "field-" + f.Name
	var control g.Node

	switch f.Kind {
	case tools.KindTextArea:
		control = Textarea(
			ID(id), Name(f.Name), Rows("3"),
			g.If(f.Placeholder != "", Placeholder(f.Placeholder)),
			g.If(disabled, Disabled()),
			g.Text(values.Display(f.Name)),
		)
	case tools.KindChoice:
		control = choice(id, f, values.Display(f.Name), disabled)
	case tools.KindNumber:
		if len(f.Options) > 0 {
			control = choice(id, f, values.Display(f.Name), disabled)
			break
		}
		control = Input(
			ID(id), Name(f.Name), Type("number"),
			Value(values.Display(f.Name)),
			g.If(f.Bounded(), g.Group([]g.Node{Min(formatFloat(f.Min)), Max(formatFloat(f.Max))})),
			g.If(f.Step != 0, Step(formatFloat(f.Step))),
			g.If(disabled, Disabled()),
		)
	case tools.KindMultiChoice:
		return FieldSet(
			Class("field"),
			Legend(g.Text(f.Label)),
			Div(
				Class("chips"),
				g.Map(f.Options, func(o tools.Option) g.Node {
					return Label(
						Input(
							Type("checkbox"), Name(f.Name), Value(o.Value),
							g.If(values.Has(f.Name, o.Value), Checked()),
							g.If(disabled, Disabled()),
						),
						g.Text(" "+o.Label),
					)
				}),
			),
		)
	default:
		control = Input(
			ID(id), Name(f.Name), Type("text"),
			Value(values.Display(f.Name)),
			g.If(f.Placeholder != "", Placeholder(f.Placeholder)),
			g.If(f.Name == "imageUrl", g.Attr("list", "sample-images")),
			g.If(disabled, Disabled()),
		)
	}

	return Div(
		Class("field"),
		Label(For(id), g.Text(f.Label)),
		control,
		g.If(f.Name == "imageUrl", SampleImagePicker()),
	)
}

func choice(id string, f tools.FieldSpec, current string, disabled bool) g.Node {
	return Select(
		ID(id), Name(f.Name),
		g.If(disabled, Disabled()),
		g.If(current == "", Option(Value(""), g.Text("Select "+f.Label))),
		g.Map(f.Options, func(o tools.Option) g.Node {
			return Option(Value(o.Value), g.If(o.Value == current, Selected()), g.Text(o.Label))
		}),
	)
}

// SampleImagePicker offers the stock photos as suggestions for an image URL
// input.
func SampleImagePicker() g.Node {
	return g.Group([]g.Node{
		DataList(
			ID("sample-images"),
			g.Map(tools.SampleImages, func(o tools.Option) g.Node {
				return Option(Value(o.Value), g.Text(o.Label))
			}),
		),
		Div(
			Class("samples"),
			g.Map(tools.SampleImages, func(o tools.Option) g.Node {
				return Img(Src(o.Value), Alt(o.Label), Loading("lazy"), g.Attr("data-sample", o.Value))
			}),
		),
	})
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
