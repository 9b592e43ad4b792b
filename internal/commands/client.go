package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/alexandrumolea/fingrow/internal/config"
	"github.com/alexandrumolea/fingrow/internal/db"
	"github.com/alexandrumolea/fingrow/internal/report"
	"github.com/alexandrumolea/fingrow/internal/timeutil"
)

var clientCmd = &cobra.Command{
	Use:   "client",
	Short: "Manage clients",
}

var clientAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Add a new client",
	Args:  cobra.ExactArgs(1),
	Run:   withDB(runClientAdd),
}

var clientListCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List clients",
	Args:    cobra.NoArgs,
	Run:     withDB(runClientList),
}

var clientShowCmd = &cobra.Command{
	Use:   "show [client ID]",
	Short: "Show a client with its activity history",
	Args:  cobra.ExactArgs(1),
	Run:   withDB(runClientShow),
}

var clientDeleteCmd = &cobra.Command{
	Use:     "rm [client ID]",
	Aliases: []string{"delete"},
	Short:   "Delete a client, keeping its activities",
	Args:    cobra.ExactArgs(1),
	Run:     withDB(runClientDelete),
}

func runClientAdd(cmd *cobra.Command, args []string) {
	email, _ := cmd.Flags().GetString("email")
	phone, _ := cmd.Flags().GetString("phone")

	client, err := db.CreateClient(args[0], email, phone)
	if err != nil {
		fmt.Printf("❌ Error creating client: %v\n", err)
		return
	}

	fmt.Printf("✅ Client #%d \"%s\" added\n", client.ID, client.Name)
}

func runClientList(cmd *cobra.Command, args []string) {
	clients, err := db.GetClients()
	if err != nil {
		fmt.Printf("❌ Error loading clients: %v\n", err)
		return
	}

	if len(clients) == 0 {
		fmt.Println("No clients yet. Add one with 'fingrow client add'.")
		return
	}

	fmt.Printf("%-5s %-25s %-25s %-15s\n", "ID", "NAME", "EMAIL", "PHONE")
	for _, c := range clients {
		email := c.Email
		if email == "" {
			email = "-"
		}
		phone := c.Phone
		if phone == "" {
			phone = "-"
		}
		fmt.Printf("#%-4d %-25s %-25s %-15s\n", c.ID, c.Name, email, phone)
	}
}

func runClientShow(cmd *cobra.Command, args []string) {
	id, err := strconv.ParseUint(args[0], 10, 32)
	if err != nil {
		fmt.Printf("❌ Invalid client ID: %s\n", args[0])
		return
	}

	client, err := db.GetClientByID(uint(id))
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		return
	}

	symbol := config.CurrencySymbol()
	summary := report.Summarize(client.Activities)

	fmt.Printf("👤 %s\n", client.Name)
	if client.Email != "" {
		fmt.Printf("  Email: %s\n", client.Email)
	}
	if client.Phone != "" {
		fmt.Printf("  Phone: %s\n", client.Phone)
	}
	fmt.Printf("  %d sessions · %s · %s\n\n",
		summary.Sessions,
		timeutil.FormatHours(summary.TotalHours),
		timeutil.FormatCurrency(symbol, summary.TotalAmount))

	for _, a := range client.Activities {
		date := "-"
		if a.StartDate != nil {
			date = timeutil.FormatDate(*a.StartDate)
		}
		status := "○"
		if a.Invoiced {
			status = "✓"
		}
		fmt.Printf("  %s #%-4d %-12s %-14s %8s %12s\n",
			status, a.ID, date, a.ActivityType(),
			timeutil.FormatHours(a.Hours),
			timeutil.FormatCurrency(symbol, a.TotalAmount))
	}

	if pdfPath, _ := cmd.Flags().GetString("pdf"); pdfPath != "" {
		label := fmt.Sprintf("Activitate %s", client.Name)
		pages := report.Paginate(label, client.Activities)
		if err := report.WritePDF(pdfPath, symbol, pages); err != nil {
			fmt.Printf("❌ Error writing PDF: %v\n", err)
			return
		}
		fmt.Printf("\n📄 PDF exported to %s\n", pdfPath)
	}
}

func runClientDelete(cmd *cobra.Command, args []string) {
	id, err := strconv.ParseUint(args[0], 10, 32)
	if err != nil {
		fmt.Printf("❌ Invalid client ID: %s\n", args[0])
		return
	}

	client, err := db.GetClientByID(uint(id))
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		return
	}

	if err := db.DeleteClient(client.ID); err != nil {
		fmt.Printf("❌ Error deleting client: %v\n", err)
		return
	}

	fmt.Printf("🗑️  Client \"%s\" deleted; its activities were kept without a client\n", client.Name)
}

func init() {
	clientAddCmd.Flags().StringP("email", "e", "", "Client email")
	clientAddCmd.Flags().StringP("phone", "p", "", "Client phone")
	clientShowCmd.Flags().StringP("pdf", "", "", "Export the activity history as PDF to the given path")

	clientCmd.AddCommand(clientAddCmd)
	clientCmd.AddCommand(clientListCmd)
	clientCmd.AddCommand(clientShowCmd)
	clientCmd.AddCommand(clientDeleteCmd)
}
