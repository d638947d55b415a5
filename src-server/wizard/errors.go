package wizard

import "errors"

// Any action referencing a session that is missing, already finished, or
// rendered by a stale menu is an expired session: reported, never fatal,
// never a partial write.
var ErrExpiredSession = errors.New("session expired, please start over")

// ValidationError rejects one free-text input. The step does not advance
// and the session is preserved.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

// SetupNeededError aborts a wizard because a lookup table has nothing in it.
// The message tells the operator which sheet/column to populate.
type SetupNeededError struct {
	Msg string
}

func (e *SetupNeededError) Error() string {
	return e.Msg
}
