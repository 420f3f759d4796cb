package models

import (
	"net/url"
	"strings"
)

// Pair is a single serialized form field
type Pair struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Payload is the ordered list of fields sent for one submission.
// Order matches document order of the form controls.
type Payload []Pair

// Add appends a name/value pair
func (p *Payload) Add(name, value string) {
	*p = append(*p, Pair{Name: name, Value: value})
}

// Names returns the field names in order, duplicates included
func (p Payload) Names() []string {
	names := make([]string, len(p))
	for i, pair := range p {
		names[i] = pair.Name
	}
	return names
}

// Get returns the first value for name
func (p Payload) Get(name string) (string, bool) {
	for _, pair := range p {
		if pair.Name == name {
			return pair.Value, true
		}
	}
	return "", false
}

// Encode renders the payload as application/x-www-form-urlencoded.
// Unlike url.Values.Encode it keeps the original field order.
func (p Payload) Encode() string {
	if len(p) == 0 {
		return ""
	}

	var b strings.Builder
	for i, pair := range p {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(formEscape(pair.Name))
		b.WriteByte('=')
		b.WriteString(formEscape(pair.Value))
	}
	return b.String()
}

// browserSafe undoes the escapes url.QueryEscape applies to characters a
// browser's encodeURIComponent leaves as they are
var browserSafe = strings.NewReplacer(
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// formEscape encodes s the way a jQuery form serialization does: space as
// "+" and only "!'()*" left unescaped beyond the unreserved characters
func formEscape(s string) string {
	return browserSafe.Replace(url.QueryEscape(s))
}

// Values converts the payload to url.Values (order is lost)
func (p Payload) Values() url.Values {
	values := make(url.Values, len(p))
	for _, pair := range p {
		values.Add(pair.Name, pair.Value)
	}
	return values
}
