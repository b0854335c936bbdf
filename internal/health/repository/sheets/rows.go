package sheets

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	sheetsapi "google.golang.org/api/sheets/v4"
)

const (
	valueInputRaw  = "RAW"
	insertRows     = "INSERT_ROWS"
	headerIDColumn = "id"
)

// readRows returns the data rows of a tab and the sheet row number of the
// first one, skipping an optional header row.
func (r *implRepository) readRows(ctx context.Context, sheet, columns string) ([][]any, int, error) {
	resp, err := r.svc.Spreadsheets.Values.Get(r.cfg.SpreadsheetID, sheetRange(sheet, columns)).Context(ctx).Do()
	if err != nil {
		return nil, 0, err
	}
	rows, first := resp.Values, 1
	if len(rows) > 0 && strings.EqualFold(cell(rows[0], 0), headerIDColumn) {
		rows, first = rows[1:], 2
	}
	return rows, first, nil
}

func (r *implRepository) appendRow(ctx context.Context, sheet, columns string, row []any) error {
	_, err := r.svc.Spreadsheets.Values.Append(r.cfg.SpreadsheetID, sheetRange(sheet, columns), valueRange(row)).
		ValueInputOption(valueInputRaw).
		InsertDataOption(insertRows).
		Context(ctx).
		Do()
	return err
}

func (r *implRepository) updateCell(ctx context.Context, sheet, cellRef string, value any) error {
	_, err := r.svc.Spreadsheets.Values.Update(r.cfg.SpreadsheetID, sheetRange(sheet, cellRef), valueRange([]any{value})).
		ValueInputOption(valueInputRaw).
		Context(ctx).
		Do()
	return err
}

func sheetRange(sheet, columns string) string {
	return fmt.Sprintf("'%s'!%s", sheet, columns)
}

func cell(row []any, i int) string {
	if i >= len(row) || row[i] == nil {
		return ""
	}
	return strings.TrimSpace(fmt.Sprint(row[i]))
}

func cellInt(row []any, i int) int {
	n, err := strconv.Atoi(cell(row, i))
	if err != nil {
		f, ferr := strconv.ParseFloat(cell(row, i), 64)
		if ferr != nil {
			return 0
		}
		return int(f)
	}
	return n
}

func cellTime(row []any, i int) time.Time {
	t, err := time.Parse(time.RFC3339Nano, cell(row, i))
	if err != nil {
		return time.Time{}
	}
	return t
}

func (r *implRepository) dateOrNow(t time.Time) time.Time {
	if t.IsZero() {
		t = r.now()
	}
	return t.UTC()
}

func valueRange(row []any) *sheetsapi.ValueRange {
	return &sheetsapi.ValueRange{Values: [][]any{row}}
}
