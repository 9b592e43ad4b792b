package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/alexandrumolea/fingrow/internal/config"
	"github.com/alexandrumolea/fingrow/internal/db"
	"github.com/alexandrumolea/fingrow/internal/timeutil"
)

var invoiceCmd = &cobra.Command{
	Use:   "invoice [activity ID]",
	Short: "Mark an activity as invoiced",
	Args:  cobra.ExactArgs(1),
	Run:   withDB(runSetInvoiced(true)),
}

var uninvoiceCmd = &cobra.Command{
	Use:   "uninvoice [activity ID]",
	Short: "Mark an activity as not invoiced",
	Args:  cobra.ExactArgs(1),
	Run:   withDB(runSetInvoiced(false)),
}

func runSetInvoiced(invoiced bool) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		id, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			fmt.Printf("❌ Invalid activity ID: %s\n", args[0])
			return
		}

		activity, err := db.SetInvoiced(uint(id), invoiced)
		if err != nil {
			fmt.Printf("❌ %v\n", err)
			return
		}

		verb := "marked as not invoiced"
		if invoiced {
			verb = "marked as invoiced"
		}
		fmt.Printf("✅ Activity #%d %s (%s, %s)\n", activity.ID, verb,
			activity.ClientName(),
			timeutil.FormatCurrency(config.CurrencySymbol(), activity.TotalAmount))
	}
}
