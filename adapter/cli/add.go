package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mindstash/mindstash/internal/routing"
)

var addCmd = &cobra.Command{
	Use:   "add <text>",
	Short: "Capture a thought and route it automatically",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text := strings.Join(args, " ")

		result, err := GetApp().SubmitThoughtHandler.Handle(cmd.Context(), routing.SubmitThoughtCommand{Text: text})
		if err != nil {
			return fmt.Errorf("failed to submit thought: %w", err)
		}

		switch result.State {
		case routing.StateRoutedCalendar:
			fmt.Printf("Added to calendar as event %s\n", result.EventID)
		case routing.StateAwaitingManualRoute:
			fmt.Printf("Saved to inbox as %s. Route it with 'mindstash inbox calendar' or 'mindstash inbox note'.\n", result.ThoughtID)
		case routing.StateFailed:
			// Echo the original text so the user can resubmit it; the
			// thought is not retained anywhere.
			fmt.Printf("Could not classify %q: %s\n", text, result.ErrorMessage)
			fmt.Println("The thought was not saved. Please try again.")
		}
		return nil
	},
}

func init() {
	AddCommand(addCmd)
}
