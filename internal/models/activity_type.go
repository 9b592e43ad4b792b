package models

// ActivityType is the closed set of billable activity kinds.
type ActivityType int

const (
	Coaching ActivityType = iota
	Workshop
	TeamCoaching
	Others
)

// AllActivityTypes lists the types in enumeration order; per-day indicator
// dots and pickers iterate in this order.
var AllActivityTypes = []ActivityType{Coaching, Workshop, TeamCoaching, Others}

// ParseActivityType maps a raw stored string to a type, defaulting to
// Others for anything unrecognized so stale data never becomes an error.
func ParseActivityType(raw string) ActivityType {
	switch raw {
	case "Coaching", "coaching":
		return Coaching
	case "Workshop", "workshop":
		return Workshop
	case "Team Coaching", "team", "team-coaching", "teamcoaching":
		return TeamCoaching
	default:
		return Others
	}
}

// String returns the canonical stored form, which doubles as the display
// name ("Altele" is the Romanian label for Others).
func (t ActivityType) String() string {
	switch t {
	case Coaching:
		return "Coaching"
	case Workshop:
		return "Workshop"
	case TeamCoaching:
		return "Team Coaching"
	default:
		return "Altele"
	}
}

// ColorName returns the symbolic color tag used for calendar dots.
func (t ActivityType) ColorName() string {
	switch t {
	case Coaching:
		return "blue"
	case Workshop:
		return "purple"
	case TeamCoaching:
		return "green"
	default:
		return "orange"
	}
}
