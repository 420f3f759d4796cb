package dom

import (
	"strings"

	"github.com/blogem/keysubmit/models"
)

var crlf = strings.NewReplacer("\r\n", "\r\n", "\r", "\r\n", "\n", "\r\n")

// Serialize collects the form's successful controls in document order.
//
// Unnamed, disabled and button controls are skipped, as are unchecked
// checkboxes and radios and file inputs. A select contributes one pair per
// selected option. Line breaks are normalised to CRLF.
func Serialize(f *Form) models.Payload {
	f.mu.RLock()
	defer f.mu.RUnlock()

	payload := models.Payload{}
	for _, c := range f.controls {
		if c.Name == "" || c.Disabled || c.IsButton() {
			continue
		}
		if c.Tag == "input" && c.Type == "file" {
			continue
		}

		switch {
		case c.IsCheckable():
			if c.Checked {
				payload.Add(c.Name, normalizeNewlines(c.Value))
			}
		case c.IsSelect():
			for _, opt := range c.Options {
				if opt.Selected && !opt.Disabled {
					payload.Add(c.Name, normalizeNewlines(opt.Value))
				}
			}
		default:
			payload.Add(c.Name, normalizeNewlines(c.Value))
		}
	}
	return payload
}

func normalizeNewlines(s string) string {
	if !strings.ContainsAny(s, "\r\n") {
		return s
	}
	return crlf.Replace(s)
}
