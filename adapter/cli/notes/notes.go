package notes

import "github.com/spf13/cobra"

// Cmd groups the notes commands.
var Cmd = &cobra.Command{
	Use:   "notes",
	Short: "Manage notes",
}

func init() {
	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(dayCmd)
	Cmd.AddCommand(showCmd)
	Cmd.AddCommand(editCmd)
	Cmd.AddCommand(deleteCmd)
}
