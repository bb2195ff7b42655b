package notes

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/mindstash/mindstash/adapter/cli"
	"github.com/mindstash/mindstash/internal/notes/domain"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List notes, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		printNotes(cli.GetApp().Notes.List())
		return nil
	},
}

var dayCmd = &cobra.Command{
	Use:   "day [YYYY-MM-DD]",
	Short: "List notes created on a day (default today)",
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
		printNotes(cli.GetApp().Notes.NotesOn(day))
		return nil
	},
}

func printNotes(notes []domain.Note) {
	if len(notes) == 0 {
		fmt.Println("No notes.")
		return
	}
	for _, note := range notes {
		fmt.Printf("%s  %s  %s\n", note.ID, note.LastModifiedAt.Local().Format("2006-01-02 15:04"), note.Title)
	}
}

var showCmd = &cobra.Command{
	Use:   "show <note-id>",
	Short: "Print a note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid note id: %w", err)
		}

		note, ok := cli.GetApp().Notes.Get(id)
		if !ok {
			return fmt.Errorf("note %s not found", id)
		}

		fmt.Println(note.Title)
		fmt.Println()
		fmt.Println(note.Content)
		return nil
	},
}
