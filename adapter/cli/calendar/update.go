package calendar

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/mindstash/mindstash/adapter/cli"
	"github.com/mindstash/mindstash/internal/calendar/domain"
)

var (
	updateTitle    string
	updateStart    string
	updateEnd      string
	updateCategory string
)

var updateCmd = &cobra.Command{
	Use:   "update <event-id>",
	Short: "Edit an event's title, times or category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid event id: %w", err)
		}

		app := cli.GetApp()
		event, ok := app.Calendar.Get(id)
		if !ok {
			return fmt.Errorf("event %s not found", id)
		}

		if updateTitle != "" {
			event.Title = updateTitle
		}
		if updateStart != "" {
			start, err := time.ParseInLocation(timeLayout, updateStart, time.Local)
			if err != nil {
				return fmt.Errorf("invalid start time: %w", err)
			}
			event.StartAt = start
		}
		if updateEnd != "" {
			end, err := time.ParseInLocation(timeLayout, updateEnd, time.Local)
			if err != nil {
				return fmt.Errorf("invalid end time: %w", err)
			}
			event.EndAt = end
		}
		if updateCategory != "" {
			event.Category = domain.ParseCategory(updateCategory)
		}

		if err := app.Calendar.Update(cmd.Context(), event); err != nil {
			return fmt.Errorf("failed to update event: %w", err)
		}

		fmt.Printf("Updated event %s\n", event.ID)
		return nil
	},
}

func init() {
	updateCmd.Flags().StringVarP(&updateTitle, "title", "t", "", "new title")
	updateCmd.Flags().StringVarP(&updateStart, "start", "s", "", "new start time")
	updateCmd.Flags().StringVarP(&updateEnd, "end", "e", "", "new end time")
	updateCmd.Flags().StringVarP(&updateCategory, "category", "c", "", "new category")
}
