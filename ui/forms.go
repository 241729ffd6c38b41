package ui

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// ---- Form Components ----

const inputClass = "w-full p-2 border rounded text-gray-900"

func formGroup(labelText string, fieldID string, input g.Node) g.Node {
	return Div(
		Class("space-y-2"),
		Label(For(fieldID), Class("block font-medium"), g.Text(labelText)),
		input,
	)
}

func requiredLabel(text string) string {
	return text + " *"
}

func textInput(id string, attrs ...g.Node) g.Node {
	return Input(append([]g.Node{
		Type("text"),
		ID(id),
		Name(id),
		Class(inputClass),
	}, attrs...)...)
}

func numberInput(id string, attrs ...g.Node) g.Node {
	return Input(append([]g.Node{
		Type("number"),
		ID(id),
		Name(id),
		Class(inputClass),
	}, attrs...)...)
}

func emailInput(id string) g.Node {
	return Input(
		Type("email"),
		ID(id),
		Name(id),
		Class(inputClass),
		Required(),
	)
}

func passwordInput(id string) g.Node {
	return Input(
		Type("password"),
		ID(id),
		Name(id),
		Class(inputClass),
		Required(),
	)
}

// selectOption is a value with its display label.
type selectOption struct {
	Value string
	Label string
}

func plainOptions(values ...string) []selectOption {
	opts := make([]selectOption, 0, len(values))
	for _, v := range values {
		opts = append(opts, selectOption{Value: v, Label: v})
	}
	return opts
}

// selectInput renders a required select. An empty placeholder adds no blank
// choice, so the selected value is always one of opts.
func selectInput(id, placeholder, selected string, opts []selectOption) g.Node {
	nodes := []g.Node{}
	if placeholder != "" {
		nodes = append(nodes, Option(Value(""), g.Text(placeholder)))
	}
	for _, o := range opts {
		attrs := []g.Node{Value(o.Value), g.Text(o.Label)}
		if o.Value == selected {
			attrs = append(attrs, Selected())
		}
		nodes = append(nodes, Option(attrs...))
	}

	return Select(
		ID(id),
		Name(id),
		Class(inputClass),
		Required(),
		g.Group(nodes),
	)
}
