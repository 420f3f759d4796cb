package models

import (
	"fmt"
	"strings"
)

// FieldPresets holds field values loaded from a presets file
type FieldPresets struct {
	FormID string            `yaml:"form_id"`
	Fields map[string]string `yaml:"fields"`
}

// Validate validates the presets
func (p *FieldPresets) Validate() []string {
	var errors []string

	if len(p.Fields) == 0 {
		errors = append(errors, "At least one field is required")
	}

	for name := range p.Fields {
		if strings.TrimSpace(name) == "" {
			errors = append(errors, "Field names must not be empty")
			break
		}
	}

	if p.FormID != "" && strings.ContainsAny(p.FormID, " \t\n") {
		errors = append(errors, fmt.Sprintf("Form id %q must not contain whitespace", p.FormID))
	}

	return errors
}
