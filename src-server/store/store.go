package store

import (
	"context"
	"errors"
	"time"
)

// Any backend failure (network, auth, missing sheet) wraps this sentinel so
// callers only ever have to distinguish "store down" from their own errors.
var ErrUnavailable = errors.New("tabular store unavailable")

// Store reads and writes rows of named logical tables on a row/column
// addressed backend. All indices are 1-based, matching spreadsheet
// addressing; row 1 is conventionally a header row.
//
// No transactionality is exposed: a read followed by a later write is not
// atomic with respect to concurrent writers.
type Store interface {
	// ReadAll returns every row of the table, in order. Rows may have
	// differing lengths; missing trailing cells are simply absent.
	ReadAll(ctx context.Context, table string) ([][]string, error)
	// ReadColumn returns the given 1-based column, one entry per row up to
	// the last row of the table. Rows without that cell yield "".
	ReadColumn(ctx context.Context, table string, col int) ([]string, error)
	// AppendRow appends a row after the last row of the table.
	AppendRow(ctx context.Context, table string, row []string) error
	// UpdateCell overwrites a single cell addressed by 1-based row/col.
	UpdateCell(ctx context.Context, table string, row, col int, value string) error
}

// observe pushes a latency sample without blocking; collectors may not be
// running (tests, local tools).
func observe(ch chan<- float64, start time.Time) {
	if ch == nil {
		return
	}
	select {
	case ch <- float64(time.Since(start).Microseconds()):
	default:
	}
}
