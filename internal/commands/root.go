package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexandrumolea/fingrow/internal/config"
	"github.com/alexandrumolea/fingrow/internal/db"
	"github.com/alexandrumolea/fingrow/internal/log"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"

	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "fingrow",
	Short: "A CLI activity and income tracker for coaches",
	Long: `fingrow is a command-line tool for freelance coaches that tracks paid
activities, clients and invoicing, and turns them into weekly and monthly
reports with CSV and PDF exports.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetDefault(log.New(slog.LevelDebug))
		}
	},
}

// initApp loads the config and opens the database, exiting on failure
func initApp() {
	if err := config.Setup(); err != nil {
		fmt.Printf("❌ Error loading config: %v\n", err)
		os.Exit(1)
	}
	if err := db.Initialize(config.DBPath()); err != nil {
		fmt.Printf("❌ Error opening database: %v\n", err)
		os.Exit(1)
	}
}

// withDB wraps a command function to initialize config and database first
func withDB(fn func(*cobra.Command, []string)) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		initApp()
		fn(cmd, args)
	}
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	// Add subcommands here
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(invoiceCmd)
	rootCmd.AddCommand(uninvoiceCmd)
	rootCmd.AddCommand(clientCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(calendarCmd)
	rootCmd.AddCommand(eventCmd)
	rootCmd.AddCommand(versionCmd)
}
