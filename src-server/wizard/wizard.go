// Package wizard is the dialogue engine: per-user finite state machines
// driving multi-step data entry. A wizard is a strictly linear sequence of
// steps, each awaiting one input (free text, a single choice, or a toggle
// set committed explicitly), ending in exactly one write through the domain
// query layer.
package wizard

import "context"

type StepKind int

const (
	// StepText awaits a free-text message, validated by Parse.
	StepText StepKind = iota
	// StepChoice awaits a single pick from the options enumerated at
	// prompt time.
	StepChoice
	// StepToggle awaits any number of add/remove toggles against a
	// selection set and advances only on an explicit commit action.
	StepToggle
)

type Step struct {
	Name   string
	Kind   StepKind
	Prompt string

	// Parse validates and normalizes free-text input (StepText only). It
	// returns the value to record or a *ValidationError.
	Parse func(input string) (string, error)
	// Options enumerates the step's choices at prompt time (StepChoice
	// and StepToggle). An empty lookup should come back as a
	// *SetupNeededError.
	Options func(ctx context.Context) ([]Choice, error)
	// Arrange optionally reorders choices for display; nil keeps lookup
	// order.
	Arrange func(choices []Choice) []Choice
}

type Wizard struct {
	Kind  Kind
	Steps []Step
	// Commit performs the wizard's single write once every step is done.
	Commit func(ctx context.Context, ses *Session) error
}
