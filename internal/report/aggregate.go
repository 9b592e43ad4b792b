package report

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/alexandrumolea/fingrow/internal/models"
)

// InvoiceFilter narrows a report to invoiced or not-yet-invoiced work.
type InvoiceFilter int

const (
	FilterAll InvoiceFilter = iota
	FilterInvoiced
	FilterNotInvoiced
)

// ParseInvoiceFilter maps the CLI flag value to a filter.
func ParseInvoiceFilter(raw string) (InvoiceFilter, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "all":
		return FilterAll, nil
	case "invoiced":
		return FilterInvoiced, nil
	case "notinvoiced", "not-invoiced":
		return FilterNotInvoiced, nil
	default:
		return FilterAll, fmt.Errorf("invalid invoice filter %q (use all, invoiced or notinvoiced)", raw)
	}
}

func (f InvoiceFilter) matches(a models.Activity) bool {
	switch f {
	case FilterInvoiced:
		return a.Invoiced
	case FilterNotInvoiced:
		return !a.Invoiced
	default:
		return true
	}
}

// Filter returns the activities whose start date falls within [start, end]
// inclusive and which match the invoice filter. Period membership tests the
// start date only: an activity starting inside the period but ending after
// it is included, one starting before it is not. Activities without a start
// date never match.
func Filter(activities []models.Activity, start, end time.Time, filter InvoiceFilter) []models.Activity {
	var out []models.Activity
	for _, a := range activities {
		if a.StartDate == nil {
			continue
		}
		if a.StartDate.Before(start) || a.StartDate.After(end) {
			continue
		}
		if !filter.matches(a) {
			continue
		}
		out = append(out, a)
	}
	return out
}

// Summary holds the derived financial aggregates for a filtered set.
type Summary struct {
	TotalAmount    float64
	TotalHours     float64
	AveragePerHour float64
	Sessions       int
}

// Summarize computes totals over a filtered activity set. The average rate
// is defined as 0 when no hours were worked.
func Summarize(activities []models.Activity) Summary {
	s := Summary{Sessions: len(activities)}
	for _, a := range activities {
		s.TotalAmount += a.TotalAmount
		s.TotalHours += a.Hours
	}
	if s.TotalHours != 0 {
		s.AveragePerHour = s.TotalAmount / s.TotalHours
	}
	return s
}

// BreakdownItem is one row of the per-type aggregate.
type BreakdownItem struct {
	Type  models.ActivityType
	Total float64
	Count int
}

// Breakdown groups activities by type and orders the result by descending
// total. Ties keep first-encounter order.
func Breakdown(activities []models.Activity) []BreakdownItem {
	index := make(map[models.ActivityType]int)
	var items []BreakdownItem

	for _, a := range activities {
		typ := a.ActivityType()
		i, ok := index[typ]
		if !ok {
			i = len(items)
			index[typ] = i
			items = append(items, BreakdownItem{Type: typ})
		}
		items[i].Total += a.TotalAmount
		items[i].Count++
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Total > items[j].Total
	})
	return items
}
