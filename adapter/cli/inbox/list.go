package inbox

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mindstash/mindstash/adapter/cli"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List inbox thoughts, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		thoughts := cli.GetApp().Inbox.List()
		if len(thoughts) == 0 {
			fmt.Println("Inbox is empty.")
			return nil
		}
		for _, thought := range thoughts {
			fmt.Printf("%s  %s  %s\n", thought.ID, thought.CreatedAt.Local().Format("2006-01-02 15:04"), thought.Text)
		}
		return nil
	},
}
