// Package query derives typed views over the raw rows of the tabular store:
// upcoming events, role rosters, recognition history, lookup vocabularies. It
// owns the column layout of every logical table.
package query

import (
	"time"

	"impactbot/src-server/store"
)

// Logical table names on the backing store.
const (
	TableEvents       = "Events"
	TableUserRoles    = "UserRoles"
	TableEventTypes   = "EventTypes"
	TableRecognitions = "Recognitions"
	TableCategories   = "Recognition-Categories"
	TableTemplates    = "Templates"
)

type Queries struct {
	store    store.Store
	location *time.Location

	// Header decides whether a row is a header row by its first cell;
	// pluggable since the vocabulary of header labels keeps growing.
	Header HeaderPredicate
	// Now is the clock used for "upcoming" filtering.
	Now func() time.Time
}

func New(st store.Store, location *time.Location) *Queries {
	return &Queries{
		store:    st,
		location: location,
		Header:   DefaultHeaderPredicate(),
		Now:      time.Now,
	}
}

func (q *Queries) Location() *time.Location {
	return q.location
}

// cleanColumn trims a raw column read down to usable values: whitespace
// stripped, blanks dropped, header cells dropped, duplicates removed with
// first-occurrence sheet order preserved.
func (q *Queries) cleanColumn(raw []string, dedupe bool) []string {
	out := make([]string, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for _, cell := range raw {
		cell = trim(cell)
		if cell == "" || q.Header(cell) {
			continue
		}
		if dedupe {
			if _, ok := seen[cell]; ok {
				continue
			}
			seen[cell] = struct{}{}
		}
		out = append(out, cell)
	}
	return out
}
