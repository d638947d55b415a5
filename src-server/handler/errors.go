package handler

import (
	"errors"
	"fmt"

	"impactbot/src-server/store"
	"impactbot/src-server/wizard"
)

// errorText maps the engine's error taxonomy to what the user sees. Every
// branch is terminal for the request; nothing here crashes a flow.
func errorText(err error) string {
	var validationErr *wizard.ValidationError
	if errors.As(err, &validationErr) {
		return "❌ " + validationErr.Msg
	}
	var setupErr *wizard.SetupNeededError
	if errors.As(err, &setupErr) {
		return "❌ " + setupErr.Msg
	}
	if errors.Is(err, wizard.ErrExpiredSession) {
		return "❌ Session expired. Please start over from /menu."
	}
	if errors.Is(err, store.ErrUnavailable) {
		return "❌ Storage is unavailable right now. Please try again later."
	}
	return fmt.Sprintf("❌ Something went wrong\n```\n%s\n```", err.Error())
}
