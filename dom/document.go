// Package dom holds an in-memory page document parsed from HTML markup and the
// form model the submit handler binds to.
package dom

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"golang.org/x/net/html"
)

var (
	// ErrFormNotFound is returned when no form element carries the requested id
	ErrFormNotFound = errors.New("form not found")
	// ErrAlreadyReady is returned when Ready is called a second time
	ErrAlreadyReady = errors.New("document already ready")
)

// Navigator performs a form's default action when no submit listener prevented it
type Navigator interface {
	Navigate(form *Form) error
}

// NavigatorFunc adapts a function to a Navigator
type NavigatorFunc func(form *Form) error

// Navigate calls f(form)
func (f NavigatorFunc) Navigate(form *Form) error {
	return f(form)
}

// Document is a parsed page
type Document struct {
	root *html.Node

	mu        sync.Mutex
	ready     bool
	navigator Navigator
	forms     map[string]*Form
}

// Parse parses HTML markup into a Document
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}
	return &Document{
		root:  root,
		forms: make(map[string]*Form),
	}, nil
}

// ParseString parses HTML markup held in a string
func ParseString(markup string) (*Document, error) {
	return Parse(strings.NewReader(markup))
}

// ParseFile parses the HTML file at path
func ParseFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open document %s: %w", path, err)
	}
	defer f.Close()

	return Parse(f)
}

// Render writes the document markup to w
func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.root)
}

// SetNavigator sets the default action run for unprevented submits
func (d *Document) SetNavigator(n Navigator) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.navigator = n
}

func (d *Document) getNavigator() Navigator {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.navigator
}

// Ready runs fn once the document is queryable. It only ever runs once;
// later calls return ErrAlreadyReady without calling fn.
func (d *Document) Ready(fn func(*Document) error) error {
	d.mu.Lock()
	if d.ready {
		d.mu.Unlock()
		return ErrAlreadyReady
	}
	d.ready = true
	d.mu.Unlock()

	return fn(d)
}

// GetElementByID returns the first element with the given id, or nil
func (d *Document) GetElementByID(id string) *html.Node {
	if id == "" {
		return nil
	}
	return findNode(d.root, func(n *html.Node) bool {
		v, ok := getAttr(n, "id")
		return ok && v == id
	})
}

// Form returns the form element with the given id. Repeated lookups return
// the same *Form so control values and listeners are shared.
func (d *Document) Form(id string) (*Form, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if form, ok := d.forms[id]; ok {
		return form, nil
	}

	node := d.GetElementByID(id)
	if node == nil || node.Data != "form" {
		return nil, fmt.Errorf("%w: #%s", ErrFormNotFound, id)
	}

	form := newForm(d, id, node)
	d.forms[id] = form
	return form, nil
}

// findNode returns the first element in document order matching pred
func findNode(n *html.Node, pred func(*html.Node) bool) *html.Node {
	if n.Type == html.ElementNode && pred(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findNode(c, pred); found != nil {
			return found
		}
	}
	return nil
}

// walk calls fn for every element in document order
func walk(n *html.Node, fn func(*html.Node)) {
	if n.Type == html.ElementNode {
		fn(n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, fn)
	}
}

func getAttr(n *html.Node, key string) (string, bool) {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val, true
		}
	}
	return "", false
}

func hasAttr(n *html.Node, key string) bool {
	_, ok := getAttr(n, key)
	return ok
}

func textContent(n *html.Node) string {
	var b strings.Builder
	var f func(*html.Node)
	f = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			f(c)
		}
	}
	f(n)
	return b.String()
}
