package query

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"
)

// Column layout of the Events table.
const (
	ColEventType = iota + 1
	ColEventDate
	ColEventTime
	ColEventZoomLink
	ColEventMC
	ColEventPresenter
	ColEventImpact
	ColEventStatus
	ColEventNotes

	eventColumns = ColEventNotes
)

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"

	// status written for every freshly saved event
	StatusScheduled = "Scheduled"
)

type Event struct {
	Type      string
	Date      string // YYYY-MM-DD
	Time      string // HH:MM, zero-padded
	ZoomLink  string
	MC        string
	Presenter string
	Impact    string // comma-joined speaker names
	Status    string
	Notes     string
}

// IndexedEvent pairs an event with its 1-based sheet row (header counted as
// row 1) so later cell updates can address it.
type IndexedEvent struct {
	Row int
	Event
}

func cellAt(row []string, col int) string {
	if col < 1 || col > len(row) {
		return ""
	}
	return trim(row[col-1])
}

func eventFromRow(row []string) Event {
	return Event{
		Type:      cellAt(row, ColEventType),
		Date:      cellAt(row, ColEventDate),
		Time:      cellAt(row, ColEventTime),
		ZoomLink:  cellAt(row, ColEventZoomLink),
		MC:        cellAt(row, ColEventMC),
		Presenter: cellAt(row, ColEventPresenter),
		Impact:    cellAt(row, ColEventImpact),
		Status:    cellAt(row, ColEventStatus),
		Notes:     cellAt(row, ColEventNotes),
	}
}

func (e Event) toRow() []string {
	row := make([]string, eventColumns)
	row[ColEventType-1] = e.Type
	row[ColEventDate-1] = e.Date
	row[ColEventTime-1] = e.Time
	row[ColEventZoomLink-1] = e.ZoomLink
	row[ColEventMC-1] = e.MC
	row[ColEventPresenter-1] = e.Presenter
	row[ColEventImpact-1] = e.Impact
	row[ColEventStatus-1] = e.Status
	row[ColEventNotes-1] = e.Notes
	return row
}

// timestamp combines the event's date and time under the fixed timezone.
// Rows that don't parse are not events as far as the time-based views are
// concerned.
func (q *Queries) timestamp(e Event) (time.Time, bool) {
	d, err := time.ParseInLocation(DateLayout, e.Date, q.location)
	if err != nil {
		return time.Time{}, false
	}
	t, err := time.Parse(ClockLayout, e.Time)
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(d.Year(), d.Month(), d.Day(), t.Hour(), t.Minute(), 0, 0, q.location), true
}

// NextEvent returns the nearest event at or after now, if any.
func (q *Queries) NextEvent(ctx context.Context) (Event, bool, error) {
	rows, err := q.store.ReadAll(ctx, TableEvents)
	if err != nil {
		return Event{}, false, fmt.Errorf("NextEvent: %w", err)
	}

	now := q.Now().In(q.location)
	var best Event
	var bestAt time.Time
	found := false
	for _, row := range rows {
		if q.Header(cellAt(row, 1)) {
			continue
		}
		ev := eventFromRow(row)
		at, ok := q.timestamp(ev)
		if !ok || at.Before(now) {
			continue
		}
		if !found || at.Before(bestAt) {
			best, bestAt, found = ev, at, true
		}
	}
	return best, found, nil
}

// EventsOnDate returns the events of one calendar day, ascending by time.
// Lexicographic order on the time string is chronological since it is
// zero-padded HH:MM.
func (q *Queries) EventsOnDate(ctx context.Context, date time.Time) ([]Event, error) {
	rows, err := q.store.ReadAll(ctx, TableEvents)
	if err != nil {
		return nil, fmt.Errorf("EventsOnDate: %w", err)
	}

	target := date.In(q.location).Format(DateLayout)
	var out []Event
	for _, row := range rows {
		if q.Header(cellAt(row, 1)) {
			continue
		}
		ev := eventFromRow(row)
		if ev.Date == target {
			out = append(out, ev)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Time < out[j].Time
	})
	return out, nil
}

// UpcomingEvents returns events dated within [today, today+windowDays]
// inclusive, ascending by (date, time), each paired with its sheet row so
// assignment flows can write back to it. Rows with malformed dates are
// excluded.
func (q *Queries) UpcomingEvents(ctx context.Context, windowDays int) ([]IndexedEvent, error) {
	rows, err := q.store.ReadAll(ctx, TableEvents)
	if err != nil {
		return nil, fmt.Errorf("UpcomingEvents: %w", err)
	}

	now := q.Now().In(q.location)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, q.location)
	last := today.AddDate(0, 0, windowDays)

	var out []IndexedEvent
	for i, row := range rows {
		if q.Header(cellAt(row, 1)) {
			continue
		}
		ev := eventFromRow(row)
		d, err := time.ParseInLocation(DateLayout, ev.Date, q.location)
		if err != nil {
			continue
		}
		if d.Before(today) || d.After(last) {
			continue
		}
		out = append(out, IndexedEvent{Row: i + 1, Event: ev})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].Time < out[j].Time
	})
	return out, nil
}

// SaveEvent appends a fully-formed event row. Validation is the wizard's
// job; this writes whatever it is given.
func (q *Queries) SaveEvent(ctx context.Context, e Event) error {
	if err := q.store.AppendRow(ctx, TableEvents, e.toRow()); err != nil {
		return fmt.Errorf("SaveEvent: %w", err)
	}
	return nil
}

// RolePatch is a partial update of an event's role columns; nil fields are
// left untouched.
type RolePatch struct {
	MC        *string
	Presenter *string
	Impacts   *[]string
}

// UpdateEventRoles writes the provided role fields cell by cell on the given
// sheet row. Impact speakers serialize as a comma-joined list.
func (q *Queries) UpdateEventRoles(ctx context.Context, row int, patch RolePatch) error {
	if patch.MC != nil {
		if err := q.store.UpdateCell(ctx, TableEvents, row, ColEventMC, *patch.MC); err != nil {
			return fmt.Errorf("UpdateEventRoles: %w", err)
		}
	}
	if patch.Presenter != nil {
		if err := q.store.UpdateCell(ctx, TableEvents, row, ColEventPresenter, *patch.Presenter); err != nil {
			return fmt.Errorf("UpdateEventRoles: %w", err)
		}
	}
	if patch.Impacts != nil {
		if err := q.store.UpdateCell(ctx, TableEvents, row, ColEventImpact, strings.Join(*patch.Impacts, ", ")); err != nil {
			return fmt.Errorf("UpdateEventRoles: %w", err)
		}
	}
	return nil
}
