package timeutil

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Week boundaries are anchored to Monday regardless of the host locale.

// StartOfDay returns midnight of the calendar day containing t.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last instant of the calendar day containing t.
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Second)
}

// StartOfWeek returns midnight of the Monday of the week containing t.
func StartOfWeek(t time.Time) time.Time {
	d := StartOfDay(t)
	// time.Weekday counts from Sunday==0
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -offset)
}

// EndOfWeek returns the last instant of the Sunday of the week containing t.
func EndOfWeek(t time.Time) time.Time {
	return StartOfWeek(t).AddDate(0, 0, 7).Add(-time.Second)
}

// StartOfMonth returns midnight of the first day of the month containing t.
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// EndOfMonth returns the last instant of the month containing t.
func EndOfMonth(t time.Time) time.Time {
	return StartOfMonth(t).AddDate(0, 1, 0).Add(-time.Second)
}

// RoundUpToHour advances t to the next full hour when it has a minute
// component, otherwise it only zeroes out seconds. Used when suggesting a
// start time for a draft calendar event.
func RoundUpToHour(t time.Time) time.Time {
	rounded := time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, t.Location())
	if t.Minute() > 0 {
		rounded = rounded.Add(time.Hour)
	}
	return rounded
}

// Romanian month names, index 1-12.
var monthNames = []string{"",
	"ianuarie", "februarie", "martie", "aprilie", "mai", "iunie",
	"iulie", "august", "septembrie", "octombrie", "noiembrie", "decembrie",
}

var monthAbbrevs = []string{"",
	"ian.", "feb.", "mar.", "apr.", "mai", "iun.",
	"iul.", "aug.", "sept.", "oct.", "nov.", "dec.",
}

// FormatDate renders a date in the short dd.MM.yyyy form.
func FormatDate(t time.Time) string {
	return t.Format("02.01.2006")
}

// FormatDateMedium renders a date as "2 feb. 2026".
func FormatDateMedium(t time.Time) string {
	return fmt.Sprintf("%d %s %d", t.Day(), monthAbbrevs[int(t.Month())], t.Year())
}

// FormatTime renders the time-of-day component only.
func FormatTime(t time.Time) string {
	return t.Format("15:04")
}

// FormatDateRange renders an inclusive date range.
func FormatDateRange(start, end time.Time) string {
	return fmt.Sprintf("%s – %s", FormatDate(start), FormatDate(end))
}

// MonthYear renders a capitalized "Month Year" label, e.g. "Februarie 2026".
func MonthYear(t time.Time) string {
	name := monthNames[int(t.Month())]
	return fmt.Sprintf("%s%s %d", strings.ToUpper(name[:1]), name[1:], t.Year())
}

// FormatHours renders an hour count, dropping the decimal for whole values:
// 2 -> "2 ore", 2.5 -> "2.5 ore".
func FormatHours(h float64) string {
	if h == math.Floor(h) {
		return fmt.Sprintf("%.0f ore", h)
	}
	return fmt.Sprintf("%.1f ore", h)
}

// FormatCurrency renders a fixed two-decimal amount with the given symbol.
func FormatCurrency(symbol string, amount float64) string {
	return fmt.Sprintf("%s%.2f", symbol, amount)
}

// FormatGapDuration renders a free-gap length: hours+minutes from one hour
// up, minutes only below that.
func FormatGapDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	if minutes >= 60 {
		return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
	}
	return fmt.Sprintf("%dm", minutes)
}

// SameDay reports whether two instants fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return StartOfDay(a).Equal(StartOfDay(b))
}
