package store

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// GoogleSheets talks to one spreadsheet through the Sheets API; each logical
// table is a worksheet tab addressed by name.
type GoogleSheets struct {
	srv           *sheets.Service
	spreadsheetID string

	readCh  chan<- float64
	writeCh chan<- float64
}

var _ Store = (*GoogleSheets)(nil)

func NewGoogleSheets(ctx context.Context, spreadsheetID, credentialsJSON string, readCh, writeCh chan<- float64) (*GoogleSheets, error) {
	srv, err := sheets.NewService(ctx,
		option.WithCredentialsJSON([]byte(credentialsJSON)),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("NewGoogleSheets: %w: %v", ErrUnavailable, err)
	}
	return &GoogleSheets{
		srv:           srv,
		spreadsheetID: spreadsheetID,
		readCh:        readCh,
		writeCh:       writeCh,
	}, nil
}

func (g *GoogleSheets) ReadAll(ctx context.Context, table string) ([][]string, error) {
	start := time.Now()
	resp, err := g.srv.Spreadsheets.Values.
		Get(g.spreadsheetID, table).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("(*GoogleSheets).ReadAll: %w: %v", ErrUnavailable, err)
	}
	observe(g.readCh, start)

	rows := make([][]string, 0, len(resp.Values))
	for _, raw := range resp.Values {
		row := make([]string, 0, len(raw))
		for _, cell := range raw {
			row = append(row, fmt.Sprintf("%v", cell))
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (g *GoogleSheets) ReadColumn(ctx context.Context, table string, col int) ([]string, error) {
	if col < 1 {
		return nil, fmt.Errorf("(*GoogleSheets).ReadColumn: col index must be 1-based, got %d", col)
	}
	start := time.Now()
	letter := columnLetter(col)
	resp, err := g.srv.Spreadsheets.Values.
		Get(g.spreadsheetID, fmt.Sprintf("%s!%s:%s", table, letter, letter)).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("(*GoogleSheets).ReadColumn: %w: %v", ErrUnavailable, err)
	}
	observe(g.readCh, start)

	out := make([]string, 0, len(resp.Values))
	for _, raw := range resp.Values {
		if len(raw) == 0 {
			out = append(out, "")
			continue
		}
		out = append(out, fmt.Sprintf("%v", raw[0]))
	}
	return out, nil
}

func (g *GoogleSheets) AppendRow(ctx context.Context, table string, row []string) error {
	start := time.Now()
	raw := make([]interface{}, 0, len(row))
	for _, cell := range row {
		raw = append(raw, cell)
	}
	if _, err := g.srv.Spreadsheets.Values.
		Append(g.spreadsheetID, table, &sheets.ValueRange{
			Values: [][]interface{}{raw},
		}).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do(); err != nil {
		return fmt.Errorf("(*GoogleSheets).AppendRow: %w: %v", ErrUnavailable, err)
	}
	observe(g.writeCh, start)
	return nil
}

func (g *GoogleSheets) UpdateCell(ctx context.Context, table string, row, col int, value string) error {
	if row < 1 || col < 1 {
		return fmt.Errorf("(*GoogleSheets).UpdateCell: indices must be 1-based, got row=%d col=%d", row, col)
	}
	start := time.Now()
	if _, err := g.srv.Spreadsheets.Values.
		Update(g.spreadsheetID, fmt.Sprintf("%s!%s%d", table, columnLetter(col), row), &sheets.ValueRange{
			Values: [][]interface{}{{value}},
		}).
		ValueInputOption("RAW").
		Context(ctx).
		Do(); err != nil {
		return fmt.Errorf("(*GoogleSheets).UpdateCell: %w: %v", ErrUnavailable, err)
	}
	observe(g.writeCh, start)
	return nil
}

// columnLetter turns a 1-based column index into A1-notation letters.
func columnLetter(col int) string {
	letters := ""
	for col > 0 {
		col--
		letters = string(rune('A'+col%26)) + letters
		col /= 26
	}
	return letters
}
