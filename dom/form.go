package dom

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"golang.org/x/net/html"
)

var (
	// ErrFieldNotFound is returned when no control carries the requested name
	ErrFieldNotFound = errors.New("field not found")
	// ErrInvalidValue is returned when a value cannot be applied to a control
	ErrInvalidValue = errors.New("invalid field value")
)

// SubmitListener is called synchronously for each submit event
type SubmitListener func(e *SubmitEvent)

// Form is a form element, its associated controls and its submit listeners
type Form struct {
	ID     string
	Action string
	Method string

	doc *Document

	mu        sync.RWMutex
	controls  []*Control
	defaults  []Control
	listeners []SubmitListener
}

func newForm(doc *Document, id string, node *html.Node) *Form {
	f := &Form{
		ID:     id,
		Action: attrOr(node, "action", ""),
		Method: strings.ToUpper(attrOr(node, "method", "GET")),
		doc:    doc,
	}

	// Controls owned by the form either sit inside it without a form
	// attribute or point at it through form="id" from anywhere in the page.
	walk(doc.root, func(n *html.Node) {
		switch n.Data {
		case "input", "select", "textarea", "button":
		default:
			return
		}
		if owner, ok := getAttr(n, "form"); ok {
			if owner != id {
				return
			}
		} else if !isDescendant(n, node) {
			return
		}
		f.controls = append(f.controls, newControl(n, inDisabledFieldset(n)))
	})

	f.defaults = make([]Control, len(f.controls))
	for i, c := range f.controls {
		f.defaults[i] = c.clone()
	}

	return f
}

func isDescendant(n, ancestor *html.Node) bool {
	for p := n.Parent; p != nil; p = p.Parent {
		if p == ancestor {
			return true
		}
	}
	return false
}

// Controls returns a snapshot of the form controls in document order
func (f *Form) Controls() []Control {
	f.mu.RLock()
	defer f.mu.RUnlock()

	out := make([]Control, len(f.controls))
	for i, c := range f.controls {
		out[i] = c.clone()
	}
	return out
}

// Names returns the distinct control names in document order
func (f *Form) Names() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()

	var names []string
	for _, c := range f.controls {
		if c.Name == "" || c.IsButton() || slices.Contains(names, c.Name) {
			continue
		}
		names = append(names, c.Name)
	}
	return names
}

// Control returns a snapshot of the first control with name
func (f *Form) Control(name string) (Control, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	for _, c := range f.controls {
		if c.Name == name {
			return c.clone(), true
		}
	}
	return Control{}, false
}

// SetValue sets the current value of the named field
func (f *Form) SetValue(name, value string) error {
	return f.SetValues(name, []string{value})
}

// SetValues sets the current value of every control with name.
//
// Text-like controls sharing a name take the values in order. Checkbox
// groups and multi-selects check exactly the listed values. Radio groups and
// single selects take one value.
func (f *Form) SetValues(name string, values []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	return applyValues(f.controls, name, values)
}

// Reset restores every control to the state its markup declares
func (f *Form) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.controls = f.initialControls()
}

// Fill resets the form and then applies values, keyed by field name. Either
// every assignment is applied or, on error, the form is left untouched.
func (f *Form) Fill(values map[string][]string) error {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	slices.Sort(names)

	f.mu.Lock()
	defer f.mu.Unlock()

	controls := f.initialControls()
	for _, name := range names {
		if err := applyValues(controls, name, values[name]); err != nil {
			return err
		}
	}
	f.controls = controls
	return nil
}

func (f *Form) initialControls() []*Control {
	controls := make([]*Control, len(f.defaults))
	for i := range f.defaults {
		c := f.defaults[i].clone()
		controls[i] = &c
	}
	return controls
}

func applyValues(controls []*Control, name string, values []string) error {
	var group []*Control
	for _, c := range controls {
		if c.Name == name && !c.IsButton() {
			group = append(group, c)
		}
	}
	if len(group) == 0 {
		return fmt.Errorf("%w: %s", ErrFieldNotFound, name)
	}

	first := group[0]
	switch {
	case first.IsSelect():
		return setSelect(first, values)
	case first.IsCheckable():
		return setCheckable(group, values)
	default:
		return setText(group, values)
	}
}

func setText(group []*Control, values []string) error {
	if len(values) > len(group) {
		return fmt.Errorf("%w: %d values for %d %s controls", ErrInvalidValue, len(values), len(group), group[0].Name)
	}
	for i, c := range group {
		if c.IsCheckable() || c.IsSelect() {
			continue
		}
		if i < len(values) {
			c.Value = values[i]
		}
	}
	return nil
}

func setCheckable(group []*Control, values []string) error {
	radio := group[0].Type == "radio"
	if radio && len(values) > 1 {
		return fmt.Errorf("%w: radio group %s takes one value", ErrInvalidValue, group[0].Name)
	}

	for _, v := range values {
		found := false
		for _, c := range group {
			if c.IsCheckable() && c.Value == v {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("%w: %s has no option %q", ErrInvalidValue, group[0].Name, v)
		}
	}

	for _, c := range group {
		if c.IsCheckable() {
			c.Checked = slices.Contains(values, c.Value)
		}
	}
	return nil
}

func setSelect(c *Control, values []string) error {
	if !c.Multiple && len(values) != 1 {
		return fmt.Errorf("%w: select %s takes one value", ErrInvalidValue, c.Name)
	}

	for _, v := range values {
		if !slices.ContainsFunc(c.Options, func(o Option) bool { return o.Value == v }) {
			return fmt.Errorf("%w: %s has no option %q", ErrInvalidValue, c.Name, v)
		}
	}

	for i := range c.Options {
		c.Options[i].Selected = slices.Contains(values, c.Options[i].Value)
	}
	if !c.Multiple {
		// duplicated option values select only the first match
		seen := false
		for i := range c.Options {
			if c.Options[i].Selected {
				c.Options[i].Selected = !seen
				seen = true
			}
		}
	}
	return nil
}

// OnSubmit registers a submit listener. Listeners are never removed.
func (f *Form) OnSubmit(listener SubmitListener) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listeners = append(f.listeners, listener)
}

// Submit raises a submit event. Listeners run synchronously in registration
// order, then the document navigator runs unless a listener prevented it.
func (f *Form) Submit() (*SubmitEvent, error) {
	f.mu.RLock()
	listeners := append([]SubmitListener(nil), f.listeners...)
	f.mu.RUnlock()

	e := &SubmitEvent{Form: f}
	for _, listener := range listeners {
		listener(e)
	}

	if e.DefaultPrevented() {
		return e, nil
	}

	if nav := f.doc.getNavigator(); nav != nil {
		if err := nav.Navigate(f); err != nil {
			return e, fmt.Errorf("failed to navigate form %s: %w", f.ID, err)
		}
	}
	return e, nil
}
