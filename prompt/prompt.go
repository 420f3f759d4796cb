// Package prompt asks for form field values on the terminal.
package prompt

import (
	"context"
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/blogem/keysubmit/dom"
)

// ErrAborted is returned when the user interrupts a prompt
var ErrAborted = errors.New("prompt aborted")

// Driver asks for single values. Tests swap in a scripted driver.
type Driver interface {
	Input(ctx context.Context, message, def string) (string, error)
	Password(ctx context.Context, message string) (string, error)
}

// NewSurveyDriver returns a Driver backed by survey
func NewSurveyDriver() Driver {
	return &surveyDriver{}
}

type surveyDriver struct{}

func (d *surveyDriver) Input(ctx context.Context, message, def string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var out string
	prompt := &survey.Input{Message: message, Default: def}
	if err := survey.AskOne(prompt, &out); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

func (d *surveyDriver) Password(ctx context.Context, message string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var out string
	prompt := &survey.Password{Message: message}
	if err := survey.AskOne(prompt, &out); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrAborted
	}
	return err
}

// FillMissing prompts for every empty text-like field of form and applies
// the answers. Hidden, checkable, select and button controls are left alone.
//
// Controls sharing a name are answered in document order and applied
// together, so each one keeps its own answer.
func FillMissing(ctx context.Context, form *dom.Form, driver Driver) error {
	var names []string
	groups := make(map[string][]dom.Control)
	for _, c := range form.Controls() {
		if c.Name == "" || c.IsButton() {
			continue
		}
		if _, ok := groups[c.Name]; !ok {
			names = append(names, c.Name)
		}
		groups[c.Name] = append(groups[c.Name], c)
	}

	for _, name := range names {
		group := groups[name]
		values := make([]string, len(group))
		asked := false

		for i, c := range group {
			values[i] = c.Value
			if !promptable(c) || c.Value != "" {
				continue
			}

			message := name + ":"
			if len(group) > 1 {
				message = fmt.Sprintf("%s (%d of %d):", name, i+1, len(group))
			}

			var (
				value string
				err   error
			)
			if c.Type == "password" {
				value, err = driver.Password(ctx, message)
			} else {
				value, err = driver.Input(ctx, message, "")
			}
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", name, err)
			}
			values[i] = value
			asked = true
		}

		if !asked {
			continue
		}
		if err := form.SetValues(name, values); err != nil {
			return err
		}
	}
	return nil
}

func promptable(c dom.Control) bool {
	if c.Name == "" || c.Disabled || c.IsButton() || c.IsCheckable() || c.IsSelect() {
		return false
	}
	switch c.Type {
	case "hidden", "file":
		return false
	}
	return true
}
