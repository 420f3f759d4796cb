package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/blogem/keysubmit/models"
)

// LoadPresets reads field values from a YAML file of the form
//
//	form_id: submit_key
//	fields:
//	  key: abc123
func LoadPresets(path string) (*models.FieldPresets, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read presets %s: %w", path, err)
	}

	var presets models.FieldPresets
	if err := yaml.Unmarshal(raw, &presets); err != nil {
		return nil, fmt.Errorf("failed to parse presets %s: %w", path, err)
	}

	if errors := presets.Validate(); len(errors) > 0 {
		return nil, fmt.Errorf("invalid presets %s: %s", path, strings.Join(errors, ", "))
	}

	return &presets, nil
}
