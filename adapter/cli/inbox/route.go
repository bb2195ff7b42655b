package inbox

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/mindstash/mindstash/adapter/cli"
	"github.com/mindstash/mindstash/internal/routing"
)

var calendarCmd = &cobra.Command{
	Use:   "calendar <thought-id>",
	Short: "Route an inbox thought to the calendar",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid thought id: %w", err)
		}

		result, err := cli.GetApp().RouteToCalendarHandler.Handle(cmd.Context(), routing.RouteToCalendarCommand{ThoughtID: id})
		if err != nil {
			return fmt.Errorf("failed to route thought: %w", err)
		}

		fmt.Printf("Created calendar event %s\n", result.EventID)
		return nil
	},
}

var noteCmd = &cobra.Command{
	Use:   "note <thought-id>",
	Short: "Route an inbox thought to notes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid thought id: %w", err)
		}

		result, err := cli.GetApp().RouteToNotesHandler.Handle(cmd.Context(), routing.RouteToNotesCommand{ThoughtID: id})
		if err != nil {
			return fmt.Errorf("failed to route thought: %w", err)
		}

		fmt.Printf("Created note %s\n", result.NoteID)
		return nil
	},
}
