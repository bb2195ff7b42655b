package calendar

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/mindstash/mindstash/adapter/cli"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <event-id>",
	Short: "Delete a calendar event",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid event id: %w", err)
		}

		if err := cli.GetApp().Calendar.Delete(cmd.Context(), id); err != nil {
			return fmt.Errorf("failed to delete event: %w", err)
		}

		fmt.Printf("Deleted event %s\n", id)
		return nil
	},
}
