package wizard

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"impactbot/src-server/query"
)

func namesToChoices(names []string) []Choice {
	choices := make([]Choice, 0, len(names))
	for _, name := range names {
		choices = append(choices, Choice{Value: name, Label: name})
	}
	return choices
}

func eventTypeChoices(q *query.Queries) func(ctx context.Context) ([]Choice, error) {
	return func(ctx context.Context) ([]Choice, error) {
		types, err := q.EventTypes(ctx)
		if errors.Is(err, query.ErrNoEventTypes) {
			return nil, &SetupNeededError{Msg: "No event types found!\n\nPlease add event types to the 'EventTypes' sheet in column A first."}
		}
		if err != nil {
			return nil, err
		}
		return namesToChoices(types), nil
	}
}

func mcChoices(q *query.Queries) func(ctx context.Context) ([]Choice, error) {
	return func(ctx context.Context) ([]Choice, error) {
		mcs, _, _, err := q.RoleNames(ctx)
		if err != nil {
			return nil, err
		}
		if len(mcs) == 0 {
			return nil, &SetupNeededError{Msg: "No MCs found!\n\nPlease add MCs to the 'UserRoles' sheet in column B first."}
		}
		return namesToChoices(mcs), nil
	}
}

func presenterChoices(q *query.Queries) func(ctx context.Context) ([]Choice, error) {
	return func(ctx context.Context) ([]Choice, error) {
		_, presenters, _, err := q.RoleNames(ctx)
		if err != nil {
			return nil, err
		}
		if len(presenters) == 0 {
			return nil, &SetupNeededError{Msg: "No Presenters found!\n\nPlease add Presenters to the 'UserRoles' sheet in column C first."}
		}
		return namesToChoices(presenters), nil
	}
}

func impactChoices(q *query.Queries) func(ctx context.Context) ([]Choice, error) {
	return func(ctx context.Context) ([]Choice, error) {
		_, _, impacts, err := q.RoleNames(ctx)
		if err != nil {
			return nil, err
		}
		if len(impacts) == 0 {
			return nil, &SetupNeededError{Msg: "No Impact Speakers found!\n\nPlease add Impact Speakers to the 'UserRoles' sheet in column D first."}
		}
		return namesToChoices(impacts), nil
	}
}

func categoryChoices(q *query.Queries) func(ctx context.Context) ([]Choice, error) {
	return func(ctx context.Context) ([]Choice, error) {
		categories, err := q.Categories(ctx)
		if err != nil {
			return nil, err
		}
		if len(categories) == 0 {
			return nil, &SetupNeededError{Msg: "No categories found!\n\nPlease create a 'Recognition-Categories' sheet with categories in column A."}
		}
		return namesToChoices(categories), nil
	}
}

func monthChoices(ctx context.Context) ([]Choice, error) {
	return namesToChoices(query.Months), nil
}

// upcomingEventChoices enumerates events of the next windowDays days, the
// choice value being the event's sheet row so the commit can address it.
func upcomingEventChoices(q *query.Queries, windowDays int) func(ctx context.Context) ([]Choice, error) {
	return func(ctx context.Context) ([]Choice, error) {
		events, err := q.UpcomingEvents(ctx, windowDays)
		if err != nil {
			return nil, err
		}
		if len(events) == 0 {
			return nil, &SetupNeededError{Msg: fmt.Sprintf("No upcoming events found!\n\nNo events scheduled in the next %d days.", windowDays)}
		}
		choices := make([]Choice, 0, len(events))
		for _, ev := range events {
			choices = append(choices, Choice{
				Value: strconv.Itoa(ev.Row),
				Label: fmt.Sprintf("%s %s | %s", ev.Date, ev.Time, ev.Type),
			})
		}
		return choices, nil
	}
}
