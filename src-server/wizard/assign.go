package wizard

import (
	"context"
	"fmt"
	"strconv"

	"impactbot/src-server/query"
)

// Assignment flows look two weeks ahead, matching the admin cadence of
// scheduling the next couple of sessions.
const assignmentWindowDays = 14

// AssignMC picks an upcoming event then an MC; the commit writes one cell.
func AssignMC(q *query.Queries) *Wizard {
	return &Wizard{
		Kind: KindAssignMC,
		Steps: []Step{
			{
				Name:    "event",
				Kind:    StepChoice,
				Prompt:  "🎙 Assign MC\n\nSelect an event to assign MC:",
				Options: upcomingEventChoices(q, assignmentWindowDays),
			},
			{
				Name:    "mc",
				Kind:    StepChoice,
				Prompt:  "🎙 Select MC:",
				Options: mcChoices(q),
			},
		},
		Commit: func(ctx context.Context, ses *Session) error {
			row, err := strconv.Atoi(ses.Values["event"])
			if err != nil {
				return fmt.Errorf("AssignMC commit: bad event row %q: %w", ses.Values["event"], err)
			}
			mc := ses.Values["mc"]
			return q.UpdateEventRoles(ctx, row, query.RolePatch{MC: &mc})
		},
	}
}

// AssignPresenter mirrors AssignMC for the presenter column.
func AssignPresenter(q *query.Queries) *Wizard {
	return &Wizard{
		Kind: KindAssignPresenter,
		Steps: []Step{
			{
				Name:    "event",
				Kind:    StepChoice,
				Prompt:  "🧑‍🏫 Assign Presenter\n\nSelect an event to assign Presenter:",
				Options: upcomingEventChoices(q, assignmentWindowDays),
			},
			{
				Name:    "presenter",
				Kind:    StepChoice,
				Prompt:  "🧑‍🏫 Select Presenter:",
				Options: presenterChoices(q),
			},
		},
		Commit: func(ctx context.Context, ses *Session) error {
			row, err := strconv.Atoi(ses.Values["event"])
			if err != nil {
				return fmt.Errorf("AssignPresenter commit: bad event row %q: %w", ses.Values["event"], err)
			}
			presenter := ses.Values["presenter"]
			return q.UpdateEventRoles(ctx, row, query.RolePatch{Presenter: &presenter})
		},
	}
}

// AssignImpact picks an upcoming event then toggles impact speakers; the
// commit writes the comma-joined set into one cell.
func AssignImpact(q *query.Queries) *Wizard {
	return &Wizard{
		Kind: KindAssignImpact,
		Steps: []Step{
			{
				Name:    "event",
				Kind:    StepChoice,
				Prompt:  "✨ Assign Impact Speaker(s)\n\nSelect an event to assign Impact Speaker(s):",
				Options: upcomingEventChoices(q, assignmentWindowDays),
			},
			{
				Name:    "impacts",
				Kind:    StepToggle,
				Prompt:  "✨ Select Impact Speaker(s) (multi-select):\n\nClick to toggle selection, then click 'Save Assignment'",
				Options: impactChoices(q),
			},
		},
		Commit: func(ctx context.Context, ses *Session) error {
			row, err := strconv.Atoi(ses.Values["event"])
			if err != nil {
				return fmt.Errorf("AssignImpact commit: bad event row %q: %w", ses.Values["event"], err)
			}
			impacts := ses.Selected
			return q.UpdateEventRoles(ctx, row, query.RolePatch{Impacts: &impacts})
		},
	}
}
