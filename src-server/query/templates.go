package query

import (
	"context"
	"fmt"
	"strings"
)

// Column layout of the Templates table.
const (
	ColTemplateKey = iota + 1
	ColTemplateURL
)

// TemplateURL resolves a template link (slides, guidelines, ...) by key,
// case-insensitively. The second return is false when the key is not set.
func (q *Queries) TemplateURL(ctx context.Context, key string) (string, bool, error) {
	rows, err := q.store.ReadAll(ctx, TableTemplates)
	if err != nil {
		return "", false, fmt.Errorf("TemplateURL: %w", err)
	}
	for _, row := range rows {
		if strings.EqualFold(cellAt(row, ColTemplateKey), trim(key)) {
			url := cellAt(row, ColTemplateURL)
			return url, url != "", nil
		}
	}
	return "", false, nil
}
