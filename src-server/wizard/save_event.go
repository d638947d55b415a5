package wizard

import (
	"context"
	"strings"
	"time"

	"impactbot/src-server/query"

	"github.com/olebedev/when"
)

// SaveEvent is the 7-step event scheduling wizard: type, date, time, zoom
// link, MC, presenter, then a multi-select of impact speakers committed
// explicitly. The commit appends exactly one Events row.
func SaveEvent(q *query.Queries, w *when.Parser, loc *time.Location) *Wizard {
	return &Wizard{
		Kind: KindSaveEvent,
		Steps: []Step{
			{
				Name:    "type",
				Kind:    StepChoice,
				Prompt:  "📝 Save Event\n\nStep 1/7: Select event type:",
				Options: eventTypeChoices(q),
			},
			{
				Name:   "date",
				Kind:   StepText,
				Prompt: "📅 Step 2/7: Enter event date (YYYY-MM-DD):\n\nExample: 2025-01-15",
				Parse:  parseDateInput(w, loc),
			},
			{
				Name:   "time",
				Kind:   StepText,
				Prompt: "🕐 Step 3/7: Enter event time (HH:MM):\n\nExample: 20:30",
				Parse:  parseClockInput,
			},
			{
				Name:   "zoom_link",
				Kind:   StepText,
				Prompt: "🔗 Step 4/7: Enter Zoom link (must start with http):\n\nExample: https://zoom.us/j/123456789",
				Parse:  parseZoomLinkInput,
			},
			{
				Name:    "mc",
				Kind:    StepChoice,
				Prompt:  "🎙 Step 5/7: Select MC:",
				Options: mcChoices(q),
			},
			{
				Name:    "presenter",
				Kind:    StepChoice,
				Prompt:  "🧑‍🏫 Step 6/7: Select Presenter:",
				Options: presenterChoices(q),
			},
			{
				Name:    "impacts",
				Kind:    StepToggle,
				Prompt:  "✨ Step 7/7: Select Impact Speaker(s) (multi-select):\n\nClick to toggle selection, then click 'Save Event'",
				Options: impactChoices(q),
			},
		},
		Commit: func(ctx context.Context, ses *Session) error {
			return q.SaveEvent(ctx, query.Event{
				Type:      ses.Values["type"],
				Date:      ses.Values["date"],
				Time:      ses.Values["time"],
				ZoomLink:  ses.Values["zoom_link"],
				MC:        ses.Values["mc"],
				Presenter: ses.Values["presenter"],
				Impact:    strings.Join(ses.Selected, ", "),
				Status:    query.StatusScheduled,
				Notes:     "",
			})
		},
	}
}
