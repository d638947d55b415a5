package model

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func CreateSchema(ctx context.Context, db *bun.DB) error {
	for _, m := range []interface{}{
		(*Cell)(nil),
	} {
		if _, err := db.NewCreateTable().
			Model(m).
			IfNotExists().
			Exec(ctx); err != nil {
			return fmt.Errorf("CreateSchema: %w", err)
		}
	}
	return nil
}
