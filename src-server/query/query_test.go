package query_test

import (
	"context"
	"errors"
	"time"

	"impactbot/src-server/query"
	"impactbot/src-server/store"
)

// fakeStore is an in-memory store.Store for exercising the query layer
// without a database.
type fakeStore struct {
	tables  map[string][][]string
	failing bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{tables: map[string][][]string{}}
}

func (f *fakeStore) ReadAll(ctx context.Context, table string) ([][]string, error) {
	if f.failing {
		return nil, store.ErrUnavailable
	}
	return f.tables[table], nil
}

func (f *fakeStore) ReadColumn(ctx context.Context, table string, col int) ([]string, error) {
	if f.failing {
		return nil, store.ErrUnavailable
	}
	var out []string
	for _, row := range f.tables[table] {
		if col >= 1 && col <= len(row) {
			out = append(out, row[col-1])
		} else {
			out = append(out, "")
		}
	}
	return out, nil
}

func (f *fakeStore) AppendRow(ctx context.Context, table string, row []string) error {
	if f.failing {
		return store.ErrUnavailable
	}
	f.tables[table] = append(f.tables[table], row)
	return nil
}

func (f *fakeStore) UpdateCell(ctx context.Context, table string, row, col int, value string) error {
	if f.failing {
		return store.ErrUnavailable
	}
	if row < 1 || col < 1 {
		return errors.New("bad cell address")
	}
	grid := f.tables[table]
	for len(grid) < row {
		grid = append(grid, nil)
	}
	for len(grid[row-1]) < col {
		grid[row-1] = append(grid[row-1], "")
	}
	grid[row-1][col-1] = value
	f.tables[table] = grid
	return nil
}

var _ store.Store = (*fakeStore)(nil)

// newQueries builds a query layer over the fake store with a frozen clock of
// 2025-03-10 12:00 UTC.
func newQueries(fs *fakeStore) *query.Queries {
	q := query.New(fs, time.UTC)
	q.Now = func() time.Time {
		return time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	}
	return q
}
