package dom

import "sync/atomic"

// SubmitEvent is raised when a form is submitted
type SubmitEvent struct {
	Form *Form

	prevented atomic.Bool
}

// PreventDefault suppresses the form's default navigation
func (e *SubmitEvent) PreventDefault() {
	e.prevented.Store(true)
}

// DefaultPrevented reports whether PreventDefault was called
func (e *SubmitEvent) DefaultPrevented() bool {
	return e.prevented.Load()
}
