package dom

import (
	"strings"

	"golang.org/x/net/html"
)

// Option is a select option
type Option struct {
	Value    string
	Label    string
	Selected bool
	Disabled bool
}

// Control is a form-associated element and its current state
type Control struct {
	Tag      string
	Type     string
	Name     string
	Value    string
	Checked  bool
	Disabled bool
	Multiple bool
	Options  []Option
}

// IsCheckable reports whether the control is a checkbox or radio button
func (c *Control) IsCheckable() bool {
	return c.Tag == "input" && (c.Type == "checkbox" || c.Type == "radio")
}

// IsButton reports whether the control only triggers actions and never carries data
func (c *Control) IsButton() bool {
	if c.Tag == "button" {
		return true
	}
	if c.Tag != "input" {
		return false
	}
	switch c.Type {
	case "submit", "button", "image", "reset":
		return true
	}
	return false
}

// IsSelect reports whether the control is a select element
func (c *Control) IsSelect() bool {
	return c.Tag == "select"
}

func (c *Control) clone() Control {
	out := *c
	if c.Options != nil {
		out.Options = append([]Option(nil), c.Options...)
	}
	return out
}

// newControl builds a Control from its element's initial markup state
func newControl(n *html.Node, disabledByFieldset bool) *Control {
	name, _ := getAttr(n, "name")
	c := &Control{
		Tag:      n.Data,
		Name:     name,
		Disabled: hasAttr(n, "disabled") || disabledByFieldset,
	}

	switch n.Data {
	case "input":
		c.Type = strings.ToLower(strings.TrimSpace(attrOr(n, "type", "text")))
		if c.Type == "" {
			c.Type = "text"
		}
		c.Value, _ = getAttr(n, "value")
		if c.IsCheckable() {
			if !hasAttr(n, "value") {
				c.Value = "on"
			}
			c.Checked = hasAttr(n, "checked")
		}
	case "textarea":
		c.Type = "textarea"
		c.Value = textContent(n)
	case "button":
		c.Type = strings.ToLower(attrOr(n, "type", "submit"))
		c.Value, _ = getAttr(n, "value")
	case "select":
		c.Multiple = hasAttr(n, "multiple")
		if c.Multiple {
			c.Type = "select-multiple"
		} else {
			c.Type = "select-one"
		}
		c.Options = collectOptions(n)
		if !c.Multiple {
			normalizeSingleSelection(c.Options)
		}
	}

	return c
}

func collectOptions(sel *html.Node) []Option {
	var options []Option
	walk(sel, func(n *html.Node) {
		if n.Data != "option" {
			return
		}
		label := strings.Join(strings.Fields(textContent(n)), " ")
		value, ok := getAttr(n, "value")
		if !ok {
			value = label
		}
		disabled := hasAttr(n, "disabled")
		if n.Parent != nil && n.Parent.Data == "optgroup" && hasAttr(n.Parent, "disabled") {
			disabled = true
		}
		options = append(options, Option{
			Value:    value,
			Label:    label,
			Selected: hasAttr(n, "selected"),
			Disabled: disabled,
		})
	})
	return options
}

// normalizeSingleSelection keeps at most one selected option, the last one
// marked selected, falling back to the first enabled option.
func normalizeSingleSelection(options []Option) {
	last := -1
	for i := range options {
		if options[i].Selected {
			last = i
		}
		options[i].Selected = false
	}
	if last == -1 {
		for i := range options {
			if !options[i].Disabled {
				last = i
				break
			}
		}
	}
	if last >= 0 {
		options[last].Selected = true
	}
}

func attrOr(n *html.Node, key, fallback string) string {
	if v, ok := getAttr(n, key); ok {
		return v
	}
	return fallback
}

// inDisabledFieldset reports whether n sits inside a disabled fieldset,
// outside that fieldset's first legend.
func inDisabledFieldset(n *html.Node) bool {
	child := n
	for p := n.Parent; p != nil; child, p = p, p.Parent {
		if p.Type != html.ElementNode || p.Data != "fieldset" || !hasAttr(p, "disabled") {
			continue
		}
		if child.Data == "legend" && child == firstLegend(p) {
			continue
		}
		return true
	}
	return false
}

func firstLegend(fieldset *html.Node) *html.Node {
	for c := fieldset.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == "legend" {
			return c
		}
	}
	return nil
}
