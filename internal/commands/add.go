package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexandrumolea/fingrow/internal/config"
	"github.com/alexandrumolea/fingrow/internal/db"
	"github.com/alexandrumolea/fingrow/internal/models"
	"github.com/alexandrumolea/fingrow/internal/parser"
	"github.com/alexandrumolea/fingrow/internal/timeutil"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a new activity",
	Long: `Record a paid activity.

Examples:
  fingrow add --type coaching --client "Acme Corp" --hours 2 --rate 150
  fingrow add --type workshop --start 16/02/2026 --end 18/02/2026 --hours 12 --rate 120 --invoiced
  fingrow add --type team --hours 1.5 --rate 200 --notes "Sesiune de follow-up"

Types: coaching, workshop, team, others. Dates accept dd/mm/yyyy,
dd.mm.yyyy, today, yesterday and tomorrow; the start date defaults to
today and the end date to the start date.`,
	Args: cobra.NoArgs,
	Run:  withDB(runAdd),
}

func runAdd(cmd *cobra.Command, args []string) {
	typeFlag, _ := cmd.Flags().GetString("type")
	activityType := models.ParseActivityType(typeFlag)

	startFlag, _ := cmd.Flags().GetString("start")
	startDate, err := parser.ParseDate(startFlag)
	if err != nil {
		fmt.Printf("❌ Error parsing start date: %v\n", err)
		return
	}
	if startDate == nil {
		today := timeutil.StartOfDay(time.Now())
		startDate = &today
	}

	endFlag, _ := cmd.Flags().GetString("end")
	endDate, err := parser.ParseDate(endFlag)
	if err != nil {
		fmt.Printf("❌ Error parsing end date: %v\n", err)
		return
	}
	if endDate == nil {
		endDate = startDate
	}

	hoursFlag, _ := cmd.Flags().GetString("hours")
	hours, err := parser.ParseDecimal(hoursFlag)
	if err != nil {
		fmt.Printf("❌ Error parsing hours: %v\n", err)
		return
	}

	rateFlag, _ := cmd.Flags().GetString("rate")
	rate, err := parser.ParseDecimal(rateFlag)
	if err != nil {
		fmt.Printf("❌ Error parsing rate: %v\n", err)
		return
	}

	var clientID *uint
	if clientName, _ := cmd.Flags().GetString("client"); clientName != "" {
		client, err := db.FindClientByName(clientName)
		if err != nil {
			fmt.Printf("❌ %v (create it first with 'fingrow client add')\n", err)
			return
		}
		clientID = &client.ID
	}

	notes, _ := cmd.Flags().GetString("notes")
	invoiced, _ := cmd.Flags().GetBool("invoiced")

	activity, err := db.CreateActivity(db.CreateActivityRequest{
		Type:        activityType,
		ClientID:    clientID,
		StartDate:   startDate,
		EndDate:     endDate,
		Hours:       hours,
		CostPerHour: rate,
		Notes:       notes,
		Invoiced:    invoiced,
	})
	if err != nil {
		fmt.Printf("❌ Error creating activity: %v\n", err)
		return
	}

	fmt.Printf("✅ Activity #%d recorded: %s\n", activity.ID, activity.ActivityType())
	fmt.Printf("  Client: %s\n", activity.ClientName())
	if activity.StartDate != nil {
		fmt.Printf("  Date: %s\n", timeutil.FormatDate(*activity.StartDate))
	}
	fmt.Printf("  Hours: %s\n", timeutil.FormatHours(activity.Hours))
	fmt.Printf("  Total: %s\n", timeutil.FormatCurrency(config.CurrencySymbol(), activity.TotalAmount))
}

func init() {
	addCmd.Flags().StringP("type", "t", "", "Activity type: coaching, workshop, team, others")
	addCmd.Flags().StringP("client", "c", "", "Client name (must exist)")
	addCmd.Flags().StringP("start", "s", "", "Start date (default: today)")
	addCmd.Flags().StringP("end", "e", "", "End date (default: start date)")
	addCmd.Flags().StringP("hours", "", "", "Hours worked, e.g. 2 or 1.5")
	addCmd.Flags().StringP("rate", "r", "", "Cost per hour")
	addCmd.Flags().StringP("notes", "n", "", "Additional notes")
	addCmd.Flags().BoolP("invoiced", "", false, "Mark as already invoiced")
}
