package calendar

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mindstash/mindstash/adapter/cli"
	"github.com/mindstash/mindstash/internal/calendar/domain"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all calendar events in start order",
	RunE: func(cmd *cobra.Command, args []string) error {
		printEvents(cli.GetApp().Calendar.List())
		return nil
	},
}

var dayCmd = &cobra.Command{
	Use:   "day [YYYY-MM-DD]",
	Short: "List events on a day (default today)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		day := time.Now().Local()
		if len(args) == 1 {
			parsed, err := time.ParseInLocation("2006-01-02", args[0], time.Local)
			if err != nil {
				return fmt.Errorf("invalid day (expected YYYY-MM-DD): %w", err)
			}
			day = parsed
		}
		printEvents(cli.GetApp().Calendar.EventsOn(day))
		return nil
	},
}

func printEvents(events []domain.Event) {
	if len(events) == 0 {
		fmt.Println("No events.")
		return
	}
	for _, event := range events {
		when := fmt.Sprintf("%s - %s",
			event.StartAt.Local().Format("2006-01-02 15:04"),
			event.EndAt.Local().Format("15:04"))
		if event.IsAllDay {
			when = event.StartAt.Local().Format("2006-01-02") + " (all day)"
		}
		fmt.Printf("%s  %s  [%s]  %s\n", event.ID, when, event.Category, event.Title)
	}
}
