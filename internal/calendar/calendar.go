// Package calendar reads busy events from the user's external calendar.
// The report core never talks to it directly; the calendar browser fetches
// events per day and feeds them to the timeline merge.
package calendar

import (
	"context"
	"time"
)

// Event is a read-only external calendar event. It is never persisted.
type Event struct {
	Title string
	Start time.Time
	End   time.Time
	Color string // calendar color tag, as reported by the provider
}

// Service is the external calendar collaborator. Implementations must be
// safe to call with a nil receiver guard at the call site: a nil Service
// means "no calendar configured" and yields no events, never an error.
type Service interface {
	// RequestAccess verifies the credentials grant read access.
	RequestAccess(ctx context.Context) bool

	// FetchEvents returns events in the half-open range [from, to).
	FetchEvents(ctx context.Context, from, to time.Time) ([]Event, error)

	// CreateDraftEvent inserts a one-hour draft event starting at the given
	// date rounded up to the next full hour.
	CreateDraftEvent(ctx context.Context, title string, date time.Time) (*Event, error)
}

// EventsForDay fetches the events of the calendar day containing date,
// sorted by start time. A nil service or a denied/failed fetch produces an
// empty slice; missing external events are not an error state.
func EventsForDay(ctx context.Context, svc Service, date time.Time) []Event {
	if svc == nil {
		return nil
	}
	from := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	to := from.AddDate(0, 0, 1)

	events, err := svc.FetchEvents(ctx, from, to)
	if err != nil {
		return nil
	}
	return events
}
