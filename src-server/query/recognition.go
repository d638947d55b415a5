package query

import (
	"context"
	"fmt"
	"log/slog"
)

// Column layout of the Recognitions table.
const (
	ColRecUpline = iota + 1
	ColRecDownline
	ColRecCategory
	ColRecMonth
	ColRecRemarks

	recognitionColumns = ColRecRemarks
)

type Recognition struct {
	Upline   string
	Downline string
	Category string
	Month    string
	Remarks  string
}

// AddRecognition appends one recognition row verbatim. Recognitions are
// append-only; there is no update or delete path.
func (q *Queries) AddRecognition(ctx context.Context, r Recognition) error {
	row := []string{r.Upline, r.Downline, r.Category, r.Month, r.Remarks}
	if err := q.store.AppendRow(ctx, TableRecognitions, row); err != nil {
		return fmt.Errorf("AddRecognition: %w", err)
	}
	return nil
}

// Recognitions returns recognition entries, optionally filtered by month
// and/or category. Empty filter values match everything.
func (q *Queries) Recognitions(ctx context.Context, month, category string) ([]Recognition, error) {
	rows, err := q.store.ReadAll(ctx, TableRecognitions)
	if err != nil {
		return nil, fmt.Errorf("Recognitions: %w", err)
	}
	var out []Recognition
	for _, row := range rows {
		if q.Header(cellAt(row, 1)) {
			continue
		}
		rec := Recognition{
			Upline:   cellAt(row, ColRecUpline),
			Downline: cellAt(row, ColRecDownline),
			Category: cellAt(row, ColRecCategory),
			Month:    cellAt(row, ColRecMonth),
			Remarks:  cellAt(row, ColRecRemarks),
		}
		if rec.Upline == "" && rec.Downline == "" {
			continue
		}
		if month != "" && rec.Month != month {
			continue
		}
		if category != "" && rec.Category != category {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

// AvailableMonths returns the distinct months actually present in the
// recognitions table, in first-occurrence sheet order. An unreadable table
// yields an empty list.
func (q *Queries) AvailableMonths(ctx context.Context) ([]string, error) {
	raw, err := q.store.ReadColumn(ctx, TableRecognitions, ColRecMonth)
	if err != nil {
		slog.Warn("can't read recognition months, treating as empty", "error", err)
		return nil, nil
	}
	return q.cleanColumn(raw, true), nil
}
