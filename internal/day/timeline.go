package day

import (
	"time"

	"github.com/alexandrumolea/fingrow/internal/calendar"
)

// TimelineItemKind tags a timeline entry.
type TimelineItemKind int

const (
	ItemEvent TimelineItemKind = iota
	ItemFreeGap
)

// TimelineItem is one chronological entry of a day's availability view:
// either an external calendar event or a synthesized free gap between two
// of them. Gaps are ephemeral, never persisted.
type TimelineItem struct {
	Kind  TimelineItemKind
	Title string
	Start time.Time
	End   time.Time
	Color string
}

// Duration returns the item's length.
func (t TimelineItem) Duration() time.Duration {
	return t.End.Sub(t.Start)
}

// Only breaks longer than a minute count as free time; back-to-back events
// with scheduling slack stay contiguous.
const minFreeGap = time.Minute

// MergeTimeline walks events sorted by start time and interleaves a FreeGap
// wherever the pause between one event's end and the next event's start
// strictly exceeds the threshold. Internal activities are deliberately not
// part of this view: the timeline shows external availability, the activity
// list shows billable work.
func MergeTimeline(events []calendar.Event) []TimelineItem {
	items := make([]TimelineItem, 0, len(events))

	for i, ev := range events {
		if i > 0 {
			prevEnd := events[i-1].End
			if ev.Start.Sub(prevEnd) > minFreeGap {
				items = append(items, TimelineItem{
					Kind:  ItemFreeGap,
					Title: "Timp liber",
					Start: prevEnd,
					End:   ev.Start,
				})
			}
		}
		items = append(items, TimelineItem{
			Kind:  ItemEvent,
			Title: ev.Title,
			Start: ev.Start,
			End:   ev.End,
			Color: ev.Color,
		})
	}
	return items
}
