package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexandrumolea/fingrow/internal/calendar"
	"github.com/alexandrumolea/fingrow/internal/config"
	"github.com/alexandrumolea/fingrow/internal/db"
	"github.com/alexandrumolea/fingrow/internal/tui"
)

var calendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Browse activities in an interactive month calendar",
	Long: `Open the interactive calendar browser. Days carry colored dots for
their activity types; the selected day shows its activities alongside the
external calendar events and the free gaps between them.`,
	Args: cobra.NoArgs,
	Run:  withDB(runCalendar),
}

func runCalendar(cmd *cobra.Command, args []string) {
	activities, err := db.GetActivities(true)
	if err != nil {
		fmt.Printf("❌ Error loading activities: %v\n", err)
		return
	}

	svc, err := calendar.NewGoogle(context.Background(),
		config.GoogleCredentialsFile(), config.GoogleCalendarID())
	if err != nil {
		// The calendar is optional; browse without it.
		fmt.Printf("⚠️  External calendar unavailable: %v\n", err)
		svc = nil
	}

	if err := tui.RunCalendarTUI(activities, svc); err != nil {
		fmt.Printf("❌ Error: %v\n", err)
	}
}
