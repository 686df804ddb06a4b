package report

import (
	"time"

	"github.com/theirongolddev/tiptrack/internal/model"
)

// Window is an inclusive date range, either bound may be empty.
type Window struct {
	Start string
	End   string
}

// String renders the window for titles.
func (w Window) String() string {
	switch {
	case w.Start == "" && w.End == "":
		return "all time"
	case w.Start == "":
		return "through " + w.End
	case w.End == "":
		return "from " + w.Start
	default:
		return w.Start + " to " + w.End
	}
}

// MonthOf returns the first through last day of the month containing t,
// in t's location.
func MonthOf(t time.Time) Window {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	last := first.AddDate(0, 1, -1)
	return Window{Start: first.Format(model.DateLayout), End: last.Format(model.DateLayout)}
}

// ThisMonth is the default reporting window.
func ThisMonth(now time.Time) Window {
	return MonthOf(now)
}

// LastMonth is the calendar month before now's, rolling over the year in
// January.
func LastMonth(now time.Time) Window {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return MonthOf(first.AddDate(0, -1, 0))
}
