package model

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

// One cell of the local sheet grid. The sqlite store backend keeps the same
// 1-based row/column addressing the remote spreadsheet uses, so the two
// backends are interchangeable behind the store interface.
type Cell struct {
	bun.BaseModel `bun:"table:cells"`

	Sheet string `bun:"sheet,pk"` // required
	Row   int    `bun:"row,pk"`   // required, 1-based
	Col   int    `bun:"col,pk"`   // required, 1-based
	Value string `bun:"value"`
}

func (c *Cell) Upsert(ctx context.Context, db bun.IDB) error {
	switch {
	case c.Sheet == "":
		return fmt.Errorf("(*Cell).Upsert: sheet is blank")
	case c.Row < 1:
		return fmt.Errorf("(*Cell).Upsert: row index must be 1-based, got %d", c.Row)
	case c.Col < 1:
		return fmt.Errorf("(*Cell).Upsert: col index must be 1-based, got %d", c.Col)
	}

	if _, err := db.NewInsert().
		Model(c).
		On("CONFLICT (sheet, row, col) DO UPDATE").
		Set("value = EXCLUDED.value").
		Exec(ctx); err != nil {
		return fmt.Errorf("(*Cell).Upsert: %w", err)
	}
	return nil
}
