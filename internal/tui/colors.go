package tui

import "github.com/alexandrumolea/fingrow/internal/models"

// Color constants for the fingrow TUI theme
const (
	// Base Colors
	ColorAppBackground = ""        // Use terminal default background
	ColorBorder        = "#3A3F55" // Grey-blue

	// Text Colors
	ColorPrimaryText   = "#E6EAF2" // Primary text (day numbers, titles)
	ColorSecondaryText = "#B1B8C7" // Secondary text
	ColorDisabledText  = "#6D7383" // Disabled/muted text
	ColorHelpText      = "240"     // Dark grey for help text

	// Accent Colors (Blue theme)
	ColorAccentMain   = "#2563EB" // Selected day, accent elements
	ColorAccentBright = "#60A5FA" // Today marker, highlights

	// State Colors
	ColorError   = "#EF4444"
	ColorSuccess = "#22C55E"
	ColorWarning = "#F59E0B"

	// Activity type colors (month grid dots and list markers)
	ColorCoaching     = "#3B82F6" // blue
	ColorWorkshop     = "#8B5CF6" // purple
	ColorTeamCoaching = "#22C55E" // green
	ColorOthers       = "#F97316" // orange
)

// TypeColor returns the hex color used for an activity type everywhere in
// the TUI.
func TypeColor(t models.ActivityType) string {
	switch t {
	case models.Coaching:
		return ColorCoaching
	case models.Workshop:
		return ColorWorkshop
	case models.TeamCoaching:
		return ColorTeamCoaching
	default:
		return ColorOthers
	}
}
