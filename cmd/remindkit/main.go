package main

import (
	"os"

	"github.com/remindkit/remindkit/internal/cli/commands"
	"github.com/spf13/cobra"
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "remindkit",
		Short: "RemindKit CLI - manage your reminders from the terminal.",
		Long: `remindkit is a command-line interface for the RemindKit reminder service.
Create one-time and recurring reminders, browse them by time window, and
snooze the ones that can wait.`,
	}

	rootCmd.AddCommand(commands.NewReminderCmd())
	rootCmd.AddCommand(commands.NewAgendaCmd())
	rootCmd.AddCommand(commands.NewCategoryCmd())
	rootCmd.AddCommand(commands.NewConfigCmd())
	rootCmd.AddCommand(commands.NewMcpCmd())

	if err := rootCmd.Execute(); err != nil {
		// Cobra prints the error, so we just need to exit.
		os.Exit(1)
	}
}
