package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexandrumolea/fingrow/internal/timeutil"
)

// PeriodKind selects how the report window is derived.
type PeriodKind int

const (
	Week PeriodKind = iota
	Month
	Custom
)

// ParsePeriodKind maps the CLI flag value to a period kind.
func ParsePeriodKind(raw string) (PeriodKind, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "month":
		return Month, nil
	case "week":
		return Week, nil
	case "custom":
		return Custom, nil
	default:
		return Month, fmt.Errorf("invalid period %q (use week, month or custom)", raw)
	}
}

// Selection is the stateful period cursor. Week and Month periods carry a
// cursor date and can step; Custom carries explicit bounds and cannot.
type Selection struct {
	Kind   PeriodKind
	Cursor time.Time

	// Custom bounds (date precision)
	Start time.Time
	End   time.Time
}

// NewSelection builds a Week or Month selection anchored at the given cursor.
func NewSelection(kind PeriodKind, cursor time.Time) Selection {
	return Selection{Kind: kind, Cursor: cursor}
}

// NewCustomSelection builds a Custom selection; an end before the start is
// clamped up to it.
func NewCustomSelection(start, end time.Time) Selection {
	if end.Before(start) {
		end = start
	}
	return Selection{Kind: Custom, Start: start, End: end}
}

// Range resolves the selection to a concrete [start, end] window.
func (s Selection) Range() (time.Time, time.Time) {
	switch s.Kind {
	case Week:
		return timeutil.StartOfWeek(s.Cursor), timeutil.EndOfWeek(s.Cursor)
	case Month:
		return timeutil.StartOfMonth(s.Cursor), timeutil.EndOfMonth(s.Cursor)
	default:
		return timeutil.StartOfDay(s.Start), timeutil.EndOfDay(s.End)
	}
}

// Step moves the cursor by n periods. Weeks step in 7-day units. Months are
// first normalized to the first of the month so that stepping never skips a
// short month and always round-trips. Custom selections do not step.
func (s *Selection) Step(n int) {
	switch s.Kind {
	case Week:
		s.Cursor = s.Cursor.AddDate(0, 0, 7*n)
	case Month:
		s.Cursor = timeutil.StartOfMonth(s.Cursor).AddDate(0, n, 0)
	}
}

// Label renders the display label for the selection.
func (s Selection) Label() string {
	start, end := s.Range()
	switch s.Kind {
	case Week:
		return fmt.Sprintf("Săptămâna %s", timeutil.FormatDateRange(start, end))
	case Month:
		return timeutil.MonthYear(s.Cursor)
	default:
		return timeutil.FormatDateRange(start, end)
	}
}
