package calendar

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mindstash/mindstash/adapter/cli"
	"github.com/mindstash/mindstash/internal/calendar/domain"
)

var (
	addTitle       string
	addStart       string
	addEnd         string
	addDescription string
	addCategory    string
	addAllDay      bool
)

const timeLayout = "2006-01-02 15:04"

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a calendar event manually",
	RunE: func(cmd *cobra.Command, args []string) error {
		start, err := time.ParseInLocation(timeLayout, addStart, time.Local)
		if err != nil {
			return fmt.Errorf("invalid start time (expected %q): %w", timeLayout, err)
		}

		// Default duration is one hour when no end is given.
		end := start.Add(time.Hour)
		if addEnd != "" {
			end, err = time.ParseInLocation(timeLayout, addEnd, time.Local)
			if err != nil {
				return fmt.Errorf("invalid end time (expected %q): %w", timeLayout, err)
			}
		}

		event := domain.Event{
			Title:       addTitle,
			StartAt:     start,
			EndAt:       end,
			Description: addDescription,
			Category:    domain.ParseCategory(addCategory),
			IsAllDay:    addAllDay,
		}
		if addAllDay {
			y, m, d := start.Date()
			event.StartAt = time.Date(y, m, d, 0, 0, 0, 0, time.Local)
			event.EndAt = event.StartAt.AddDate(0, 0, 1)
		}

		created, err := cli.GetApp().Calendar.Create(cmd.Context(), event)
		if err != nil {
			return fmt.Errorf("failed to create event: %w", err)
		}

		fmt.Printf("Created calendar event %s\n", created.ID)
		return nil
	},
}

func init() {
	addCmd.Flags().StringVarP(&addTitle, "title", "t", "", "event title (required)")
	addCmd.Flags().StringVarP(&addStart, "start", "s", "", "start time, e.g. \"2026-03-11 14:00\" (required)")
	addCmd.Flags().StringVarP(&addEnd, "end", "e", "", "end time (defaults to start + 1h)")
	addCmd.Flags().StringVarP(&addDescription, "description", "d", "", "event description")
	addCmd.Flags().StringVarP(&addCategory, "category", "c", "general", "category: general, work, personal, health, social, travel")
	addCmd.Flags().BoolVar(&addAllDay, "all-day", false, "all-day event")
	_ = addCmd.MarkFlagRequired("title")
	_ = addCmd.MarkFlagRequired("start")
}
