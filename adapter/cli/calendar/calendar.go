package calendar

import "github.com/spf13/cobra"

// Cmd groups the calendar commands.
var Cmd = &cobra.Command{
	Use:   "calendar",
	Short: "Manage calendar events",
}

func init() {
	Cmd.AddCommand(addCmd)
	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(dayCmd)
	Cmd.AddCommand(updateCmd)
	Cmd.AddCommand(deleteCmd)
}
