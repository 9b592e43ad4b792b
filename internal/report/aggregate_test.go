package report

import (
	"testing"
	"time"

	"github.com/alexandrumolea/fingrow/internal/models"
	"github.com/alexandrumolea/fingrow/internal/timeutil"
)

func datePtr(y int, m time.Month, d int) *time.Time {
	dt := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &dt
}

func activity(typ models.ActivityType, start *time.Time, hours, rate float64, invoiced bool) models.Activity {
	a := models.Activity{
		Type:        typ.String(),
		StartDate:   start,
		EndDate:     start,
		Hours:       hours,
		CostPerHour: rate,
		TotalAmount: hours * rate,
		Invoiced:    invoiced,
	}
	return a
}

func TestFilterByDateRange(t *testing.T) {
	start := time.Date(2026, time.February, 16, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, time.February, 22, 23, 59, 59, 0, time.UTC)

	tests := []struct {
		name      string
		activity  models.Activity
		wantMatch bool
	}{
		{
			name:      "starts inside range",
			activity:  activity(models.Coaching, datePtr(2026, time.February, 18), 1, 100, false),
			wantMatch: true,
		},
		{
			name:      "starts exactly on range start",
			activity:  activity(models.Coaching, datePtr(2026, time.February, 16), 1, 100, false),
			wantMatch: true,
		},
		{
			name:      "starts before range",
			activity:  activity(models.Coaching, datePtr(2026, time.February, 15), 1, 100, false),
			wantMatch: false,
		},
		{
			name:      "starts after range",
			activity:  activity(models.Coaching, datePtr(2026, time.February, 23), 1, 100, false),
			wantMatch: false,
		},
		{
			name:      "no start date never matches",
			activity:  activity(models.Coaching, nil, 1, 100, false),
			wantMatch: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter([]models.Activity{tt.activity}, start, end, FilterAll)
			if (len(got) == 1) != tt.wantMatch {
				t.Errorf("Filter() matched = %v, want %v", len(got) == 1, tt.wantMatch)
			}
		})
	}
}

// Period membership tests the start date only. An activity that starts
// inside the window but runs past its end still belongs to the period.
func TestFilterStartDateOnly(t *testing.T) {
	start := time.Date(2026, time.February, 16, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, time.February, 22, 23, 59, 59, 0, time.UTC)

	spansOut := activity(models.Workshop, datePtr(2026, time.February, 20), 8, 100, false)
	spansOut.EndDate = datePtr(2026, time.March, 2)

	spansIn := activity(models.Workshop, datePtr(2026, time.February, 10), 8, 100, false)
	spansIn.EndDate = datePtr(2026, time.February, 18)

	got := Filter([]models.Activity{spansOut, spansIn}, start, end, FilterAll)
	if len(got) != 1 {
		t.Fatalf("Filter() returned %d activities, want 1", len(got))
	}
	if !got[0].StartDate.Equal(*spansOut.StartDate) {
		t.Error("expected the activity starting inside the window to match")
	}
}

func TestFilterByInvoiceStatus(t *testing.T) {
	start := time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, time.February, 28, 23, 59, 59, 0, time.UTC)

	activities := []models.Activity{
		activity(models.Coaching, datePtr(2026, time.February, 10), 1, 100, true),
		activity(models.Coaching, datePtr(2026, time.February, 11), 1, 100, false),
		activity(models.Coaching, datePtr(2026, time.February, 12), 1, 100, true),
	}

	tests := []struct {
		name   string
		filter InvoiceFilter
		want   int
	}{
		{"all", FilterAll, 3},
		{"invoiced", FilterInvoiced, 2},
		{"not invoiced", FilterNotInvoiced, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Filter(activities, start, end, tt.filter); len(got) != tt.want {
				t.Errorf("Filter() returned %d activities, want %d", len(got), tt.want)
			}
		})
	}
}

func TestSummarize(t *testing.T) {
	activities := []models.Activity{
		activity(models.Coaching, datePtr(2026, time.February, 10), 2, 150, false),
		activity(models.Workshop, datePtr(2026, time.February, 11), 3, 100, false),
	}

	s := Summarize(activities)
	if s.TotalAmount != 600 {
		t.Errorf("TotalAmount = %v, want 600", s.TotalAmount)
	}
	if s.TotalHours != 5 {
		t.Errorf("TotalHours = %v, want 5", s.TotalHours)
	}
	if s.AveragePerHour != 120 {
		t.Errorf("AveragePerHour = %v, want 120", s.AveragePerHour)
	}
	if s.Sessions != 2 {
		t.Errorf("Sessions = %d, want 2", s.Sessions)
	}
}

func TestSummarizeZeroHours(t *testing.T) {
	activities := []models.Activity{
		activity(models.Coaching, datePtr(2026, time.February, 10), 0, 150, false),
	}

	s := Summarize(activities)
	if s.AveragePerHour != 0 {
		t.Errorf("AveragePerHour = %v, want 0 for zero hours", s.AveragePerHour)
	}
}

func TestBreakdownOrderedByTotal(t *testing.T) {
	activities := []models.Activity{
		activity(models.Coaching, datePtr(2026, time.February, 10), 1, 100, false),
		activity(models.Workshop, datePtr(2026, time.February, 11), 5, 100, false),
		activity(models.Coaching, datePtr(2026, time.February, 12), 1, 100, false),
	}

	items := Breakdown(activities)
	if len(items) != 2 {
		t.Fatalf("Breakdown() returned %d items, want 2", len(items))
	}
	if items[0].Type != models.Workshop || items[0].Total != 500 || items[0].Count != 1 {
		t.Errorf("items[0] = %+v", items[0])
	}
	if items[1].Type != models.Coaching || items[1].Total != 200 || items[1].Count != 2 {
		t.Errorf("items[1] = %+v", items[1])
	}

	// Sum of per-type counts equals the filtered set size.
	total := 0
	for _, it := range items {
		total += it.Count
	}
	if total != len(activities) {
		t.Errorf("count sum = %d, want %d", total, len(activities))
	}
}

func TestBreakdownTiesKeepEncounterOrder(t *testing.T) {
	activities := []models.Activity{
		activity(models.Workshop, datePtr(2026, time.February, 10), 2, 100, false),
		activity(models.Coaching, datePtr(2026, time.February, 11), 2, 100, false),
	}

	items := Breakdown(activities)
	if items[0].Type != models.Workshop || items[1].Type != models.Coaching {
		t.Errorf("tie order = %v, %v; want encounter order", items[0].Type, items[1].Type)
	}
}

func TestBreakdownUnknownTypeFallsBackToOthers(t *testing.T) {
	a := activity(models.Coaching, datePtr(2026, time.February, 10), 1, 100, false)
	a.Type = "Mentoring"

	items := Breakdown([]models.Activity{a})
	if len(items) != 1 || items[0].Type != models.Others {
		t.Errorf("Breakdown() = %+v, want a single Others bucket", items)
	}
}

// Full scenario: one two-hour Monday session at 150/h reported over its week.
func TestWeeklyReportScenario(t *testing.T) {
	monday := datePtr(2026, time.February, 16)
	activities := []models.Activity{
		activity(models.Coaching, monday, 2, 150, false),
	}

	start := timeutil.StartOfWeek(*monday)
	end := timeutil.EndOfWeek(*monday)

	filtered := Filter(activities, start, end, FilterAll)
	if len(filtered) != 1 {
		t.Fatalf("Filter() returned %d activities, want 1", len(filtered))
	}

	s := Summarize(filtered)
	if s.TotalAmount != 300 || s.TotalHours != 2 || s.AveragePerHour != 150 {
		t.Errorf("Summary = %+v", s)
	}

	items := Breakdown(filtered)
	if len(items) != 1 || items[0].Total != 300 || items[0].Count != 1 {
		t.Errorf("Breakdown = %+v", items)
	}
}
