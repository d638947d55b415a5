package wizard

import (
	"strings"
	"time"

	"impactbot/src-server/query"

	"github.com/olebedev/when"
)

// parseDateInput accepts a strict YYYY-MM-DD date, or anything the natural
// parser understands ("next friday"), normalized to the strict format so the
// stored value always satisfies the date invariant.
func parseDateInput(w *when.Parser, loc *time.Location) func(string) (string, error) {
	return func(input string) (string, error) {
		input = strings.TrimSpace(input)
		if _, err := time.ParseInLocation(query.DateLayout, input, loc); err == nil {
			return input, nil
		}
		if w != nil {
			result, err := w.Parse(input, time.Now().In(loc))
			// a partial match means the text was mostly prose, not a date
			if err == nil && result != nil && strings.TrimSpace(result.Text) == input {
				return result.Time.In(loc).Format(query.DateLayout), nil
			}
		}
		return "", &ValidationError{Msg: "Invalid date format!\n\nPlease use YYYY-MM-DD format.\nExample: 2025-01-15"}
	}
}

func parseClockInput(input string) (string, error) {
	input = strings.TrimSpace(input)
	if _, err := time.Parse(query.ClockLayout, input); err != nil {
		return "", &ValidationError{Msg: "Invalid time format!\n\nPlease use HH:MM format.\nExample: 20:30"}
	}
	return input, nil
}

func parseZoomLinkInput(input string) (string, error) {
	input = strings.TrimSpace(input)
	if !strings.HasPrefix(input, "http") {
		return "", &ValidationError{Msg: "Invalid Zoom link!\n\nLink must start with 'http'.\nExample: https://zoom.us/j/123456789"}
	}
	return input, nil
}

func parseNameInput(clean func(string) string) func(string) (string, error) {
	return func(input string) (string, error) {
		name := clean(input)
		if name == "" {
			return "", &ValidationError{Msg: "Please type a name."}
		}
		return name, nil
	}
}

func parseRemarksInput(input string) (string, error) {
	return strings.TrimSpace(input), nil
}
