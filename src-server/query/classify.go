package query

import "strings"

// CategoryClass tags a recognition category for menu layout. Classification
// is deliberately separate from layout so both stay independently testable.
type CategoryClass int

const (
	CategoryPercent CategoryClass = iota
	CategoryLevel
	CategoryLeadershipClub
	CategoryPaceSetter
	CategoryOther
)

var levelCategories = map[string]struct{}{
	"Gold":               {},
	"Platinum":           {},
	"Executive Platinum": {},
	"Founder Platinum":   {},
	"Core":               {},
}

// ClassifyCategory assigns one tag per category name.
func ClassifyCategory(category string) CategoryClass {
	if strings.HasSuffix(category, "%") {
		return CategoryPercent
	}
	if _, ok := levelCategories[category]; ok {
		return CategoryLevel
	}
	switch {
	case category == "ELC" || strings.Contains(category, "LC"):
		return CategoryLeadershipClub
	case strings.Contains(category, "PaceSetter"):
		return CategoryPaceSetter
	default:
		return CategoryOther
	}
}

// PerRow is how many buttons of a class fit per menu row; PaceSetter names
// run long and get a row each.
func (c CategoryClass) PerRow() int {
	if c == CategoryPaceSetter {
		return 1
	}
	return 2
}

// Chunk paginates items into rows of at most perRow entries, preserving
// order.
func Chunk(items []string, perRow int) [][]string {
	if perRow < 1 {
		perRow = 1
	}
	var rows [][]string
	for len(items) > 0 {
		n := perRow
		if n > len(items) {
			n = len(items)
		}
		rows = append(rows, items[:n])
		items = items[n:]
	}
	return rows
}

// GroupCategories lays categories out as menu rows: bucketed by class in
// class order, original sheet order preserved within each bucket, each
// bucket paginated by its class's row width.
func GroupCategories(categories []string) [][]string {
	buckets := make(map[CategoryClass][]string)
	for _, cat := range categories {
		class := ClassifyCategory(cat)
		buckets[class] = append(buckets[class], cat)
	}
	var rows [][]string
	for _, class := range []CategoryClass{
		CategoryPercent, CategoryLevel, CategoryLeadershipClub, CategoryPaceSetter, CategoryOther,
	} {
		rows = append(rows, Chunk(buckets[class], class.PerRow())...)
	}
	return rows
}
