package inbox

import "github.com/spf13/cobra"

// Cmd groups the touch-later inbox commands.
var Cmd = &cobra.Command{
	Use:   "inbox",
	Short: "Manage the touch-later inbox",
}

func init() {
	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(calendarCmd)
	Cmd.AddCommand(noteCmd)
}
