package day

import (
	"testing"
	"time"

	"github.com/alexandrumolea/fingrow/internal/calendar"
	"github.com/alexandrumolea/fingrow/internal/timeutil"
)

func at(hh, mm, ss int) time.Time {
	return time.Date(2026, time.February, 16, hh, mm, ss, 0, time.UTC)
}

func event(title string, start, end time.Time) calendar.Event {
	return calendar.Event{Title: title, Start: start, End: end}
}

func TestMergeTimelineInsertsGap(t *testing.T) {
	events := []calendar.Event{
		event("Standup", at(9, 0, 0), at(10, 0, 0)),
		event("Review", at(11, 0, 0), at(12, 0, 0)),
	}

	items := MergeTimeline(events)
	if len(items) != 3 {
		t.Fatalf("MergeTimeline() returned %d items, want 3", len(items))
	}

	gap := items[1]
	if gap.Kind != ItemFreeGap {
		t.Fatalf("middle item kind = %v, want FreeGap", gap.Kind)
	}
	if !gap.Start.Equal(at(10, 0, 0)) || !gap.End.Equal(at(11, 0, 0)) {
		t.Errorf("gap spans [%v, %v]", gap.Start, gap.End)
	}
	if got := timeutil.FormatGapDuration(gap.Duration()); got != "1h 0m" {
		t.Errorf("gap duration = %q, want \"1h 0m\"", got)
	}
}

func TestMergeTimelineGapThreshold(t *testing.T) {
	tests := []struct {
		name      string
		nextStart time.Time
		wantGap   bool
	}{
		{"5 second pause is contiguous", at(10, 0, 5), false},
		{"exactly 60 seconds is contiguous", at(10, 1, 0), false},
		{"61 seconds becomes a free gap", at(10, 1, 1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events := []calendar.Event{
				event("First", at(9, 0, 0), at(10, 0, 0)),
				event("Second", tt.nextStart, at(11, 0, 0)),
			}

			items := MergeTimeline(events)
			wantLen := 2
			if tt.wantGap {
				wantLen = 3
			}
			if len(items) != wantLen {
				t.Errorf("MergeTimeline() returned %d items, want %d", len(items), wantLen)
			}
		})
	}
}

func TestMergeTimelineKeepsChronologicalOrder(t *testing.T) {
	events := []calendar.Event{
		event("A", at(8, 0, 0), at(9, 0, 0)),
		event("B", at(10, 30, 0), at(11, 0, 0)),
		event("C", at(13, 0, 0), at(14, 0, 0)),
	}

	items := MergeTimeline(events)
	if len(items) != 5 {
		t.Fatalf("MergeTimeline() returned %d items, want 5", len(items))
	}
	for i := 1; i < len(items); i++ {
		if items[i].Start.Before(items[i-1].Start) {
			t.Errorf("items out of order at %d", i)
		}
	}
	if items[1].Kind != ItemFreeGap || items[3].Kind != ItemFreeGap {
		t.Error("expected gaps between all three events")
	}
	if got := timeutil.FormatGapDuration(items[1].Duration()); got != "1h 30m" {
		t.Errorf("first gap = %q", got)
	}
}

func TestMergeTimelineEmpty(t *testing.T) {
	if items := MergeTimeline(nil); len(items) != 0 {
		t.Errorf("MergeTimeline(nil) = %v", items)
	}
}
