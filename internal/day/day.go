// Package day answers "what happens on this date": which activities touch
// it, which indicator dots a month grid should show, and how external
// events and free time interleave on its timeline.
package day

import (
	"time"

	"github.com/alexandrumolea/fingrow/internal/models"
	"github.com/alexandrumolea/fingrow/internal/timeutil"
)

// occursOn is the inclusive multi-day overlap test. The activity's end day
// is taken as max(start, end) so records with a stale end < start still
// show up on their start day. Activities missing either date never match.
func occursOn(a models.Activity, date time.Time) bool {
	if a.StartDate == nil || a.EndDate == nil {
		return false
	}
	check := timeutil.StartOfDay(date)
	first := timeutil.StartOfDay(*a.StartDate)
	last := timeutil.StartOfDay(*a.EndDate)
	if last.Before(first) {
		last = first
	}
	return !check.Before(first) && !check.After(last)
}

// ActivitiesOn returns the activities occurring on the given date, in the
// order they were supplied.
func ActivitiesOn(activities []models.Activity, date time.Time) []models.Activity {
	var out []models.Activity
	for _, a := range activities {
		if occursOn(a, date) {
			out = append(out, a)
		}
	}
	return out
}

// HasActivityOn reports whether any activity occurs on the given date.
func HasActivityOn(activities []models.Activity, date time.Time) bool {
	for _, a := range activities {
		if occursOn(a, date) {
			return true
		}
	}
	return false
}

// TypesOn returns the distinct activity types occurring on the given date,
// in enumeration order. Month grids show at most the first three as dots.
func TypesOn(activities []models.Activity, date time.Time) []models.ActivityType {
	seen := make(map[models.ActivityType]bool)
	for _, a := range ActivitiesOn(activities, date) {
		seen[a.ActivityType()] = true
	}

	var out []models.ActivityType
	for _, typ := range models.AllActivityTypes {
		if seen[typ] {
			out = append(out, typ)
		}
	}
	return out
}
