package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexandrumolea/fingrow/internal/calendar"
	"github.com/alexandrumolea/fingrow/internal/config"
	"github.com/alexandrumolea/fingrow/internal/parser"
	"github.com/alexandrumolea/fingrow/internal/timeutil"
)

var eventCmd = &cobra.Command{
	Use:   "event",
	Short: "Create a draft event in the external calendar",
	Long: `Create a one-hour draft event in the configured external calendar,
starting at the next full hour of the given date.

Examples:
  fingrow event --title "Sesiune coaching"
  fingrow event --title "Workshop pregătire" --date 18/02/2026`,
	Args: cobra.NoArgs,
	Run:  runEvent,
}

func runEvent(cmd *cobra.Command, args []string) {
	if err := config.Setup(); err != nil {
		fmt.Printf("❌ Error loading config: %v\n", err)
		return
	}

	dateFlag, _ := cmd.Flags().GetString("date")
	date, err := parser.ParseDate(dateFlag)
	if err != nil {
		fmt.Printf("❌ Error parsing date: %v\n", err)
		return
	}
	when := time.Now()
	if date != nil {
		when = *date
	}

	ctx := context.Background()
	svc, err := calendar.NewGoogle(ctx, config.GoogleCredentialsFile(), config.GoogleCalendarID())
	if err != nil {
		fmt.Printf("❌ External calendar unavailable: %v\n", err)
		return
	}
	if svc == nil {
		fmt.Println("⚠️  No external calendar configured. Set google_credentials_file and google_calendar_id in the config file.")
		return
	}

	title, _ := cmd.Flags().GetString("title")
	event, err := svc.CreateDraftEvent(ctx, title, when)
	if err != nil {
		fmt.Printf("❌ Error creating event: %v\n", err)
		return
	}

	fmt.Printf("✅ Event \"%s\" created: %s %s – %s\n", event.Title,
		timeutil.FormatDate(event.Start),
		timeutil.FormatTime(event.Start),
		timeutil.FormatTime(event.End))
}

func init() {
	eventCmd.Flags().StringP("title", "t", "Sesiune coaching", "Event title")
	eventCmd.Flags().StringP("date", "d", "", "Event date (default: today)")
}
