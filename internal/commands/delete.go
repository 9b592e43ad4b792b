package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/alexandrumolea/fingrow/internal/db"
)

var deleteCmd = &cobra.Command{
	Use:     "rm [activity ID]",
	Aliases: []string{"delete"},
	Short:   "Delete an activity",
	Args:    cobra.ExactArgs(1),
	Run:     withDB(runDelete),
}

func runDelete(cmd *cobra.Command, args []string) {
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

	if err := db.DeleteActivity(activity.ID); err != nil {
		fmt.Printf("❌ Error deleting activity: %v\n", err)
		return
	}

	fmt.Printf("🗑️  Activity #%d (%s, %s) deleted\n", activity.ID, activity.ActivityType(), activity.ClientName())
}
