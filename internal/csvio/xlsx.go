package csvio

import (
	"fmt"
	"io"
	"strconv"

	"github.com/theirongolddev/tiptrack/internal/model"

	"github.com/xuri/excelize/v2"
)

// SheetName is the worksheet written by EncodeXLSX.
const SheetName = "Shifts"

// EncodeXLSX writes entries as a single-sheet workbook using the same
// columns as the CSV export. Amounts are stored as numbers.
func EncodeXLSX(w io.Writer, entries []model.ShiftEntry, v Variant) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}

	cols := Columns(v)
	header := make([]any, len(cols))
	for i, c := range cols {
		header[i] = c
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, e := range entries {
		row := []any{e.Date, e.Made.InexactFloat64(), e.TipOut.InexactFloat64()}
		if v == Full {
			if h, _, ok := recordedHours(e); ok {
				row = append(row, h)
			} else {
				row = append(row, "")
			}
		}
		row = append(row, newlines.Replace(e.Restaurant), newlines.Replace(e.Notes))

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

// DecodeXLSX reads the first worksheet of a workbook with the same rules as
// Decode. Date cells stored as spreadsheet serials are converted to
// YYYY-MM-DD.
func DecodeXLSX(r io.Reader) ([]model.ShiftEntry, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, ErrNoHeader
	}
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, ErrNoHeader
	}

	entries, _ := decodeRows(rows[0], rows[1:], sheetDate)
	return entries, nil
}

// sheetDate converts a spreadsheet date serial to YYYY-MM-DD and leaves any
// other text untouched.
func sheetDate(s string) string {
	if model.ValidDate(s) {
		return s
	}
	serial, err := strconv.ParseFloat(s, 64)
	if err != nil || serial < 1 || serial > 2958465 {
		return s
	}
	t, err := excelize.ExcelDateToTime(serial, false)
	if err != nil {
		return s
	}
	return t.Format(model.DateLayout)
}
