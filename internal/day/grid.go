package day

import (
	"time"

	"github.com/alexandrumolea/fingrow/internal/timeutil"
)

// Grid describes the cell layout of one month in a Monday-first calendar.
type Grid struct {
	Month       time.Time // first instant of the month
	DaysInMonth int
	FirstOffset int // cells to leave blank before day 1
	Rows        int
}

// MonthGrid lays out the month containing ref into rows of seven cells.
func MonthGrid(ref time.Time) Grid {
	first := timeutil.StartOfMonth(ref)
	days := first.AddDate(0, 1, -1).Day()

	// Monday-first offset; time.Weekday counts Sunday as 0.
	offset := (int(first.Weekday()) + 6) % 7

	return Grid{
		Month:       first,
		DaysInMonth: days,
		FirstOffset: offset,
		Rows:        (offset + days + 6) / 7,
	}
}

// DayAt maps a cell index (row-major) back to a day number, or 0 for the
// blank leading/trailing cells.
func (g Grid) DayAt(cell int) int {
	d := cell - g.FirstOffset + 1
	if d < 1 || d > g.DaysInMonth {
		return 0
	}
	return d
}

// Date returns the concrete date of a day number within the grid's month.
func (g Grid) Date(dayNum int) time.Time {
	return g.Month.AddDate(0, 0, dayNum-1)
}
