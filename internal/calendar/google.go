package calendar

import (
	"context"
	"fmt"
	"sort"
	"time"

	gcal "google.golang.org/api/calendar/v3"
	goption "google.golang.org/api/option"

	"github.com/alexandrumolea/fingrow/internal/log"
	"github.com/alexandrumolea/fingrow/internal/timeutil"
)

// googleService reads the user's Google Calendar through the Calendar API.
type googleService struct {
	svc        *gcal.Service
	calendarID string
	logger     *log.Logger
}

// NewGoogle builds a calendar service from a credentials file and calendar
// id. Both empty means the user never configured a calendar: the returned
// Service is nil and callers degrade to an empty timeline.
func NewGoogle(ctx context.Context, credentialsFile, calendarID string) (Service, error) {
	if credentialsFile == "" || calendarID == "" {
		return nil, nil
	}

	svc, err := gcal.NewService(ctx, goption.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("calendar service: %w", err)
	}

	return &googleService{
		svc:        svc,
		calendarID: calendarID,
		logger:     log.Default().WithComponent("calendar"),
	}, nil
}

func (g *googleService) RequestAccess(ctx context.Context) bool {
	// A metadata read is the cheapest way to learn whether the credentials
	// actually grant access. Denial is a normal outcome, not an error.
	_, err := g.svc.Calendars.Get(g.calendarID).Context(ctx).Do()
	if err != nil {
		g.logger.Warn("calendar access denied", "calendar", g.calendarID, "error", err)
		return false
	}
	return true
}

func (g *googleService) FetchEvents(ctx context.Context, from, to time.Time) ([]Event, error) {
	call := g.svc.Events.List(g.calendarID).
		TimeMin(from.Format(time.RFC3339)).
		TimeMax(to.Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime")

	res, err := call.Context(ctx).Do()
	if err != nil {
		g.logger.Warn("event fetch failed", "calendar", g.calendarID, "error", err)
		return nil, err
	}

	events := make([]Event, 0, len(res.Items))
	for _, item := range res.Items {
		start, ok := parseEventTime(item.Start)
		if !ok {
			continue
		}
		end, ok := parseEventTime(item.End)
		if !ok {
			end = start.Add(time.Hour)
		}
		events = append(events, Event{
			Title: item.Summary,
			Start: start,
			End:   end,
			Color: item.ColorId,
		})
	}

	sort.Slice(events, func(i, j int) bool { return events[i].Start.Before(events[j].Start) })
	return events, nil
}

func (g *googleService) CreateDraftEvent(ctx context.Context, title string, date time.Time) (*Event, error) {
	start := timeutil.RoundUpToHour(date)
	end := start.Add(time.Hour)

	inserted, err := g.svc.Events.Insert(g.calendarID, &gcal.Event{
		Summary: title,
		Start:   &gcal.EventDateTime{DateTime: start.Format(time.RFC3339)},
		End:     &gcal.EventDateTime{DateTime: end.Format(time.RFC3339)},
	}).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("insert draft event: %w", err)
	}

	g.logger.Debug("draft event created", "title", title, "start", start)
	return &Event{Title: inserted.Summary, Start: start, End: end, Color: inserted.ColorId}, nil
}

// parseEventTime handles both timed and all-day events.
func parseEventTime(edt *gcal.EventDateTime) (time.Time, bool) {
	if edt == nil {
		return time.Time{}, false
	}
	if edt.DateTime != "" {
		t, err := time.Parse(time.RFC3339, edt.DateTime)
		if err != nil {
			return time.Time{}, false
		}
		return t, true
	}
	if edt.Date != "" {
		t, err := time.Parse("2006-01-02", edt.Date)
		if err != nil {
			return time.Time{}, false
		}
		return t, true
	}
	return time.Time{}, false
}
