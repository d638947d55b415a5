package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"impactbot/src-server/model"

	"github.com/uptrace/bun"
)

// Sqlite keeps the sheet grid in a local bun-managed table so the bot can run
// without Google credentials (local development, tests).
type Sqlite struct {
	db *bun.DB

	readCh  chan<- float64
	writeCh chan<- float64
}

var _ Store = (*Sqlite)(nil)

func NewSqlite(db *bun.DB, readCh, writeCh chan<- float64) *Sqlite {
	return &Sqlite{db: db, readCh: readCh, writeCh: writeCh}
}

func (s *Sqlite) ReadAll(ctx context.Context, table string) ([][]string, error) {
	start := time.Now()
	var cells []model.Cell
	if err := s.db.NewSelect().
		Model(&cells).
		Where("sheet = ?", table).
		Order("row", "col").
		Scan(ctx); err != nil {
		return nil, fmt.Errorf("(*Sqlite).ReadAll: %w: %v", ErrUnavailable, err)
	}
	observe(s.readCh, start)

	maxRow := 0
	for _, c := range cells {
		if c.Row > maxRow {
			maxRow = c.Row
		}
	}
	rows := make([][]string, maxRow)
	for _, c := range cells {
		row := rows[c.Row-1]
		for len(row) < c.Col {
			row = append(row, "")
		}
		row[c.Col-1] = c.Value
		rows[c.Row-1] = row
	}
	return rows, nil
}

func (s *Sqlite) ReadColumn(ctx context.Context, table string, col int) ([]string, error) {
	if col < 1 {
		return nil, fmt.Errorf("(*Sqlite).ReadColumn: col index must be 1-based, got %d", col)
	}
	start := time.Now()
	// pad to the sheet's last row, not the column's, so rows without this
	// cell still show up as ""
	var maxRow int
	if err := s.db.NewSelect().
		Model((*model.Cell)(nil)).
		ColumnExpr("COALESCE(MAX(row), 0)").
		Where("sheet = ?", table).
		Scan(ctx, &maxRow); err != nil {
		return nil, fmt.Errorf("(*Sqlite).ReadColumn: %w: %v", ErrUnavailable, err)
	}
	var cells []model.Cell
	if err := s.db.NewSelect().
		Model(&cells).
		Where("sheet = ?", table).
		Where("col = ?", col).
		Order("row").
		Scan(ctx); err != nil {
		return nil, fmt.Errorf("(*Sqlite).ReadColumn: %w: %v", ErrUnavailable, err)
	}
	observe(s.readCh, start)

	out := make([]string, maxRow)
	for _, c := range cells {
		out[c.Row-1] = c.Value
	}
	return out, nil
}

func (s *Sqlite) AppendRow(ctx context.Context, table string, row []string) error {
	start := time.Now()
	if err := s.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		var maxRow int
		if err := tx.NewSelect().
			Model((*model.Cell)(nil)).
			ColumnExpr("COALESCE(MAX(row), 0)").
			Where("sheet = ?", table).
			Scan(ctx, &maxRow); err != nil {
			return err
		}
		for i, value := range row {
			cell := model.Cell{
				Sheet: table,
				Row:   maxRow + 1,
				Col:   i + 1,
				Value: value,
			}
			if err := cell.Upsert(ctx, tx); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		return fmt.Errorf("(*Sqlite).AppendRow: %w: %v", ErrUnavailable, err)
	}
	observe(s.writeCh, start)
	return nil
}

func (s *Sqlite) UpdateCell(ctx context.Context, table string, row, col int, value string) error {
	if row < 1 || col < 1 {
		return fmt.Errorf("(*Sqlite).UpdateCell: indices must be 1-based, got row=%d col=%d", row, col)
	}
	start := time.Now()
	cell := model.Cell{Sheet: table, Row: row, Col: col, Value: value}
	if err := cell.Upsert(ctx, s.db); err != nil {
		return fmt.Errorf("(*Sqlite).UpdateCell: %w: %v", ErrUnavailable, err)
	}
	observe(s.writeCh, start)
	return nil
}
