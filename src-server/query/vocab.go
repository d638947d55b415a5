package query

import (
	"context"
	"errors"
	"log/slog"
)

// The fixed month vocabulary used by the recognition wizard.
var Months = []string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// ErrNoEventTypes signals that the EventTypes table has nothing usable in
// it. The save-event wizard turns this into a setup-needed message instead
// of a generic failure.
var ErrNoEventTypes = errors.New("no event types configured")

// EventTypes returns the event type vocabulary in sheet order. Unlike the
// other lookups, an empty result (including an unreadable table) is reported
// as ErrNoEventTypes since nothing can be scheduled without it.
func (q *Queries) EventTypes(ctx context.Context) ([]string, error) {
	raw, err := q.store.ReadColumn(ctx, TableEventTypes, 1)
	if err != nil {
		slog.Warn("can't read event types", "error", err)
		raw = nil
	}
	types := q.cleanColumn(raw, false)
	if len(types) == 0 {
		return nil, ErrNoEventTypes
	}
	return types, nil
}

// Categories returns the recognition category vocabulary in sheet order. An
// unreadable table yields an empty list.
func (q *Queries) Categories(ctx context.Context) ([]string, error) {
	raw, err := q.store.ReadColumn(ctx, TableCategories, 1)
	if err != nil {
		slog.Warn("can't read recognition categories, treating as empty", "error", err)
		return nil, nil
	}
	return q.cleanColumn(raw, false), nil
}
