package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexandrumolea/fingrow/internal/config"
	"github.com/alexandrumolea/fingrow/internal/db"
	"github.com/alexandrumolea/fingrow/internal/parser"
	"github.com/alexandrumolea/fingrow/internal/report"
	"github.com/alexandrumolea/fingrow/internal/timeutil"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show a period report with totals and a per-type breakdown",
	Long: `Show the financial report of a week, month or custom date range.

Examples:
  fingrow report                          (current month)
  fingrow report --period week            (current week)
  fingrow report --offset -1              (previous month)
  fingrow report --from 01/02/2026 --to 15/02/2026
  fingrow report --filter notinvoiced
  fingrow report --csv raport.csv --pdf raport.pdf

An activity belongs to the period of its start date; multi-day activities
are never split across periods.`,
	Args: cobra.NoArgs,
	Run:  withDB(runReport),
}

func runReport(cmd *cobra.Command, args []string) {
	selection, err := buildSelection(cmd)
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		return
	}

	filterFlag, _ := cmd.Flags().GetString("filter")
	filter, err := report.ParseInvoiceFilter(filterFlag)
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		return
	}

	activities, err := db.GetActivities(true)
	if err != nil {
		fmt.Printf("❌ Error loading activities: %v\n", err)
		return
	}

	start, end := selection.Range()
	filtered := report.Filter(activities, start, end, filter)
	summary := report.Summarize(filtered)
	label := selection.Label()
	symbol := config.CurrencySymbol()

	fmt.Printf("📊 %s\n\n", label)
	fmt.Printf("  Total încasat:  %s\n", timeutil.FormatCurrency(symbol, summary.TotalAmount))
	fmt.Printf("  Total ore:      %s\n", timeutil.FormatHours(summary.TotalHours))
	fmt.Printf("  Tarif mediu:    %s/oră\n", timeutil.FormatCurrency(symbol, summary.AveragePerHour))
	fmt.Printf("  Sesiuni:        %d\n", summary.Sessions)

	if breakdown := report.Breakdown(filtered); len(breakdown) > 0 {
		fmt.Println()
		for _, item := range breakdown {
			fmt.Printf("  %-14s %12s  (%d)\n", item.Type,
				timeutil.FormatCurrency(symbol, item.Total), item.Count)
		}
	}

	if len(filtered) > 0 {
		fmt.Println()
		for _, a := range filtered {
			date := "-"
			if a.StartDate != nil {
				date = timeutil.FormatDate(*a.StartDate)
			}
			status := "○"
			if a.Invoiced {
				status = "✓"
			}
			fmt.Printf("  %s #%-4d %-12s %-14s %-20s %8s %12s\n",
				status, a.ID, date, a.ActivityType(), a.ClientName(),
				timeutil.FormatHours(a.Hours),
				timeutil.FormatCurrency(symbol, a.TotalAmount))
		}
	}

	if csvPath, _ := cmd.Flags().GetString("csv"); csvPath != "" {
		if err := os.WriteFile(csvPath, []byte(report.CSV(label, filtered)), 0644); err != nil {
			fmt.Printf("❌ Error writing CSV: %v\n", err)
			return
		}
		fmt.Printf("\n📄 CSV exported to %s\n", csvPath)
	}

	if pdfPath, _ := cmd.Flags().GetString("pdf"); pdfPath != "" {
		pages := report.Paginate(label, filtered)
		if err := report.WritePDF(pdfPath, symbol, pages); err != nil {
			fmt.Printf("❌ Error writing PDF: %v\n", err)
			return
		}
		fmt.Printf("\n📄 PDF exported to %s\n", pdfPath)
	}
}

// buildSelection derives the report window from the period flags. Explicit
// --from/--to bounds win over --period.
func buildSelection(cmd *cobra.Command) (report.Selection, error) {
	fromFlag, _ := cmd.Flags().GetString("from")
	toFlag, _ := cmd.Flags().GetString("to")

	if fromFlag != "" || toFlag != "" {
		if fromFlag == "" || toFlag == "" {
			return report.Selection{}, fmt.Errorf("custom ranges need both --from and --to")
		}
		from, err := parser.ParseDate(fromFlag)
		if err != nil {
			return report.Selection{}, fmt.Errorf("invalid --from date: %w", err)
		}
		to, err := parser.ParseDate(toFlag)
		if err != nil {
			return report.Selection{}, fmt.Errorf("invalid --to date: %w", err)
		}
		return report.NewCustomSelection(*from, *to), nil
	}

	periodFlag, _ := cmd.Flags().GetString("period")
	kind, err := report.ParsePeriodKind(periodFlag)
	if err != nil {
		return report.Selection{}, err
	}
	if kind == report.Custom {
		return report.Selection{}, fmt.Errorf("custom periods need --from and --to")
	}

	selection := report.NewSelection(kind, time.Now())
	offset, _ := cmd.Flags().GetInt("offset")
	selection.Step(offset)
	return selection, nil
}

func init() {
	reportCmd.Flags().StringP("period", "p", "month", "Report period: week or month")
	reportCmd.Flags().IntP("offset", "o", 0, "Period offset, e.g. -1 for the previous period")
	reportCmd.Flags().StringP("from", "", "", "Custom range start date")
	reportCmd.Flags().StringP("to", "", "", "Custom range end date")
	reportCmd.Flags().StringP("filter", "f", "all", "Invoice filter: all, invoiced, notinvoiced")
	reportCmd.Flags().StringP("csv", "", "", "Export as CSV to the given path")
	reportCmd.Flags().StringP("pdf", "", "", "Export as PDF to the given path")
}
