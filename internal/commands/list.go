package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexandrumolea/fingrow/internal/config"
	"github.com/alexandrumolea/fingrow/internal/db"
	"github.com/alexandrumolea/fingrow/internal/models"
	"github.com/alexandrumolea/fingrow/internal/report"
	"github.com/alexandrumolea/fingrow/internal/timeutil"
)

var listCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List activities, newest first",
	Args:    cobra.NoArgs,
	Run:     withDB(runList),
}

func runList(cmd *cobra.Command, args []string) {
	activities, err := db.GetActivities(false)
	if err != nil {
		fmt.Printf("❌ Error loading activities: %v\n", err)
		return
	}

	filterFlag, _ := cmd.Flags().GetString("filter")
	filter, err := report.ParseInvoiceFilter(filterFlag)
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		return
	}
	if filter != report.FilterAll {
		var kept []models.Activity
		for _, a := range activities {
			if (filter == report.FilterInvoiced) == a.Invoiced {
				kept = append(kept, a)
			}
		}
		activities = kept
	}

	if len(activities) == 0 {
		fmt.Println("No activities found. Record one with 'fingrow add'.")
		return
	}

	symbol := config.CurrencySymbol()
	fmt.Printf("%-5s %-12s %-14s %-20s %8s %12s %-10s\n",
		"ID", "DATE", "TYPE", "CLIENT", "HOURS", "TOTAL", "STATUS")

	for _, a := range activities {
		date := "-"
		if a.StartDate != nil {
			date = timeutil.FormatDate(*a.StartDate)
		}

		status := "○ open"
		if a.Invoiced {
			status = "✓ invoiced"
		}

		client := a.ClientName()
		if len(client) > 20 {
			client = client[:17] + "..."
		}

		fmt.Printf("#%-4d %-12s %-14s %-20s %8s %12s %-10s\n",
			a.ID, date, a.ActivityType(), client,
			timeutil.FormatHours(a.Hours),
			timeutil.FormatCurrency(symbol, a.TotalAmount),
			status)
	}

	summary := report.Summarize(activities)
	fmt.Printf("\n%d activities · %s · %s\n",
		summary.Sessions,
		timeutil.FormatHours(summary.TotalHours),
		timeutil.FormatCurrency(symbol, summary.TotalAmount))
}

func init() {
	listCmd.Flags().StringP("filter", "f", "all", "Invoice filter: all, invoiced, notinvoiced")
}
