package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/alexandrumolea/fingrow/internal/config"
	"github.com/alexandrumolea/fingrow/internal/db"
	"github.com/alexandrumolea/fingrow/internal/models"
	"github.com/alexandrumolea/fingrow/internal/parser"
	"github.com/alexandrumolea/fingrow/internal/timeutil"
)

var editCmd = &cobra.Command{
	Use:   "edit [activity ID]",
	Short: "Edit an existing activity",
	Long: `Edit an activity in place. Only the flags you pass are changed; the
total is recomputed from hours and rate.

Examples:
  fingrow edit 12 --hours 3
  fingrow edit 12 --client "Acme Corp" --rate 180
  fingrow edit 12 --client "" (detach the client)`,
	Args: cobra.ExactArgs(1),
	Run:  withDB(runEdit),
}

func runEdit(cmd *cobra.Command, args []string) {
	id, err := strconv.ParseUint(args[0], 10, 32)
	if err != nil {
		fmt.Printf("❌ Invalid activity ID: %s\n", args[0])
		return
	}

	activity, err := db.GetActivityByID(uint(id))
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		return
	}

	if cmd.Flags().Changed("type") {
		typeFlag, _ := cmd.Flags().GetString("type")
		activity.Type = models.ParseActivityType(typeFlag).String()
	}

	if cmd.Flags().Changed("start") {
		startFlag, _ := cmd.Flags().GetString("start")
		startDate, err := parser.ParseDate(startFlag)
		if err != nil {
			fmt.Printf("❌ Error parsing start date: %v\n", err)
			return
		}
		activity.StartDate = startDate
	}

	if cmd.Flags().Changed("end") {
		endFlag, _ := cmd.Flags().GetString("end")
		endDate, err := parser.ParseDate(endFlag)
		if err != nil {
			fmt.Printf("❌ Error parsing end date: %v\n", err)
			return
		}
		activity.EndDate = endDate
	}

	if cmd.Flags().Changed("hours") {
		hoursFlag, _ := cmd.Flags().GetString("hours")
		hours, err := parser.ParseDecimal(hoursFlag)
		if err != nil {
			fmt.Printf("❌ Error parsing hours: %v\n", err)
			return
		}
		activity.Hours = hours
	}

	if cmd.Flags().Changed("rate") {
		rateFlag, _ := cmd.Flags().GetString("rate")
		rate, err := parser.ParseDecimal(rateFlag)
		if err != nil {
			fmt.Printf("❌ Error parsing rate: %v\n", err)
			return
		}
		activity.CostPerHour = rate
	}

	if cmd.Flags().Changed("client") {
		clientName, _ := cmd.Flags().GetString("client")
		if clientName == "" {
			activity.ClientID = nil
			activity.Client = nil
		} else {
			client, err := db.FindClientByName(clientName)
			if err != nil {
				fmt.Printf("❌ %v\n", err)
				return
			}
			activity.ClientID = &client.ID
			activity.Client = client
		}
	}

	if cmd.Flags().Changed("notes") {
		notes, _ := cmd.Flags().GetString("notes")
		activity.Notes = notes
	}

	if err := db.SaveActivity(activity); err != nil {
		fmt.Printf("❌ Error saving activity: %v\n", err)
		return
	}

	fmt.Printf("✅ Activity #%d updated\n", activity.ID)
	fmt.Printf("  Type: %s · Client: %s\n", activity.ActivityType(), activity.ClientName())
	fmt.Printf("  Hours: %s · Total: %s\n",
		timeutil.FormatHours(activity.Hours),
		timeutil.FormatCurrency(config.CurrencySymbol(), activity.TotalAmount))
}

func init() {
	editCmd.Flags().StringP("type", "t", "", "Activity type: coaching, workshop, team, others")
	editCmd.Flags().StringP("client", "c", "", "Client name (empty to detach)")
	editCmd.Flags().StringP("start", "s", "", "Start date")
	editCmd.Flags().StringP("end", "e", "", "End date")
	editCmd.Flags().StringP("hours", "", "", "Hours worked")
	editCmd.Flags().StringP("rate", "r", "", "Cost per hour")
	editCmd.Flags().StringP("notes", "n", "", "Additional notes")
}
