package report

import (
	"fmt"
	"strings"

	"github.com/alexandrumolea/fingrow/internal/models"
	"github.com/alexandrumolea/fingrow/internal/timeutil"
)

// CSV serializes an activity list into the export format consumed by the
// accountant spreadsheet: a title line, a fixed header row, then one row per
// activity. Client names and notes are quoted; notes lose their newlines and
// swap internal commas for semicolons so the row stays parseable.
func CSV(label string, activities []models.Activity) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Raport Activitate: %s\n", label)
	b.WriteString("Data Start,Data End,Client,Tip Activitate,Ore,Cost/Ora,Total,Status,Notite\n")

	for _, a := range activities {
		start := ""
		if a.StartDate != nil {
			start = timeutil.FormatDateMedium(*a.StartDate)
		}
		end := ""
		if a.EndDate != nil {
			end = timeutil.FormatDateMedium(*a.EndDate)
		}

		status := "Nefacturat"
		if a.Invoiced {
			status = "Facturat"
		}

		notes := strings.ReplaceAll(a.Notes, "\n", " ")
		notes = strings.ReplaceAll(notes, ",", ";")

		fmt.Fprintf(&b, "%s,%s,\"%s\",%s,%.1f,%.2f,%.2f,%s,\"%s\"\n",
			start, end, a.ClientName(), a.ActivityType(), a.Hours, a.CostPerHour, a.TotalAmount, status, notes)
	}

	return b.String()
}
