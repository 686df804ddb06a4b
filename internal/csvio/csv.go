// Package csvio converts shift entries to and from the tracker's CSV and
// XLSX export formats.
//
// The CSV format is a fixed header followed by one bare-comma-joined row per
// entry. Fields are never quoted, so a comma inside a restaurant name or a
// note shifts the remaining columns on import.
package csvio

import (
	"errors"
	"strings"

	"github.com/theirongolddev/tiptrack/internal/log"
	"github.com/theirongolddev/tiptrack/internal/model"
)

// Variant selects the column set.
type Variant int

const (
	// Full writes date, made, tipOut, hours, restaurant, notes.
	Full Variant = iota
	// Simple omits the hours column.
	Simple
)

// Column names as written in the header row.
const (
	ColDate       = "date"
	ColMade       = "made"
	ColTipOut     = "tipOut"
	ColHours      = "hours"
	ColRestaurant = "restaurant"
	ColNotes      = "notes"
)

// ErrNoHeader is returned when the input has no header row at all.
var ErrNoHeader = errors.New("missing header row")

var newlines = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// Columns returns the header columns for v in output order.
func Columns(v Variant) []string {
	if v == Simple {
		return []string{ColDate, ColMade, ColTipOut, ColRestaurant, ColNotes}
	}
	return []string{ColDate, ColMade, ColTipOut, ColHours, ColRestaurant, ColNotes}
}

// Encode renders entries as CSV text. Rows are separated by "\n" with no
// trailing newline.
func Encode(entries []model.ShiftEntry, v Variant) string {
	lines := make([]string, 0, len(entries)+1)
	lines = append(lines, strings.Join(Columns(v), ","))
	for _, e := range entries {
		lines = append(lines, strings.Join(fields(e, v), ","))
	}
	return strings.Join(lines, "\n")
}

// recordedHours reports the hours to write. Zero hours are written like
// absent ones so both decode the same way.
func recordedHours(e model.ShiftEntry) (float64, string, bool) {
	if e.Hours == nil || e.Hours.IsZero() {
		return 0, "", false
	}
	return e.Hours.InexactFloat64(), e.Hours.String(), true
}

func fields(e model.ShiftEntry, v Variant) []string {
	_, hours, _ := recordedHours(e)
	restaurant := newlines.Replace(e.Restaurant)
	notes := newlines.Replace(e.Notes)

	if v == Simple {
		return []string{e.Date, e.Made.String(), e.TipOut.String(), restaurant, notes}
	}
	return []string{e.Date, e.Made.String(), e.TipOut.String(), hours, restaurant, notes}
}

// Decode parses CSV text into entries. The header is matched by name,
// case-insensitively and in any order. Rows without a date are skipped,
// unparsable amounts become zero, and every entry gets a fresh identifier.
func Decode(text string) ([]model.ShiftEntry, error) {
	text = strings.TrimSpace(strings.TrimPrefix(text, "\ufeff"))
	if text == "" {
		return nil, ErrNoHeader
	}

	lines := strings.Split(text, "\n")
	header := strings.Split(strings.TrimSuffix(lines[0], "\r"), ",")

	rows := make([][]string, 0, len(lines)-1)
	for _, line := range lines[1:] {
		rows = append(rows, strings.Split(strings.TrimSuffix(line, "\r"), ","))
	}

	entries, skipped := decodeRows(header, rows, nil)
	log.For(log.ComponentImport).Debug("decoded csv",
		log.FieldCount, len(entries), log.FieldSkipped, skipped)
	return entries, nil
}

type columnIndex struct {
	date, made, tipOut, hours, restaurant, notes int
}

func indexHeader(header []string) columnIndex {
	idx := columnIndex{-1, -1, -1, -1, -1, -1}
	for i, h := range header {
		name := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		// First occurrence wins, as with a left-to-right search.
		set := func(p *int) {
			if *p < 0 {
				*p = i
			}
		}
		switch name {
		case ColDate:
			set(&idx.date)
		case strings.ToLower(ColMade):
			set(&idx.made)
		case strings.ToLower(ColTipOut):
			set(&idx.tipOut)
		case ColHours:
			set(&idx.hours)
		case ColRestaurant:
			set(&idx.restaurant)
		case ColNotes:
			set(&idx.notes)
		}
	}
	return idx
}

func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// decodeRows applies the per-row rules shared by CSV and XLSX import.
// normDate, when set, rewrites the date cell before the blank check.
func decodeRows(header []string, rows [][]string, normDate func(string) string) ([]model.ShiftEntry, int) {
	idx := indexHeader(header)

	out := make([]model.ShiftEntry, 0, len(rows))
	skipped := 0
	for _, row := range rows {
		date := cellValue(row, idx.date)
		if normDate != nil && date != "" {
			date = normDate(date)
		}
		if date == "" {
			skipped++
			continue
		}
		out = append(out, model.ShiftEntry{
			ID:         model.NewID(),
			Date:       date,
			Made:       model.ParseLenient(cellValue(row, idx.made)),
			TipOut:     model.ParseLenient(cellValue(row, idx.tipOut)),
			Hours:      model.OptionalHours(model.ParseLenient(cellValue(row, idx.hours))),
			Restaurant: cellValue(row, idx.restaurant),
			Notes:      cellValue(row, idx.notes),
		})
	}
	return out, skipped
}
