package report

import (
	"github.com/alexandrumolea/fingrow/internal/models"
)

// The first page fits fewer rows because it carries the summary block.
const (
	FirstPageCapacity = 12
	PageCapacity      = 18
)

// Page is the view model for one printable report page. Totals are the
// grand totals of the whole report, repeated on every page, not per-page
// subtotals.
type Page struct {
	PeriodLabel string
	Activities  []models.Activity

	TotalAmount float64
	TotalHours  float64
	Sessions    int

	Number     int // 1-based
	TotalPages int
	First      bool
}

// Paginate splits an ordered, already-filtered activity list into printable
// pages. A report is always at least one page, even when empty, so the
// summary header still renders.
func Paginate(label string, activities []models.Activity) []Page {
	summary := Summarize(activities)

	var chunks [][]models.Activity
	if len(activities) > 0 {
		first := activities
		if len(first) > FirstPageCapacity {
			first = activities[:FirstPageCapacity]
		}
		chunks = append(chunks, first)

		for rest := activities[len(first):]; len(rest) > 0; {
			n := PageCapacity
			if n > len(rest) {
				n = len(rest)
			}
			chunks = append(chunks, rest[:n])
			rest = rest[n:]
		}
	}

	total := len(chunks)
	if total == 0 {
		total = 1
		chunks = [][]models.Activity{nil}
	}

	pages := make([]Page, 0, total)
	for i, chunk := range chunks {
		pages = append(pages, Page{
			PeriodLabel: label,
			Activities:  chunk,
			TotalAmount: summary.TotalAmount,
			TotalHours:  summary.TotalHours,
			Sessions:    summary.Sessions,
			Number:      i + 1,
			TotalPages:  total,
			First:       i == 0,
		})
	}
	return pages
}
