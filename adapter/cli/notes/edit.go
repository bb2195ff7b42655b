package notes

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/mindstash/mindstash/adapter/cli"
)

var (
	editTitle   string
	editContent string
)

var editCmd = &cobra.Command{
	Use:   "edit <note-id>",
	Short: "Edit a note's title or content",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid note id: %w", err)
		}

		app := cli.GetApp()
		note, ok := app.Notes.Get(id)
		if !ok {
			return fmt.Errorf("note %s not found", id)
		}

		title := note.Title
		if cmd.Flags().Changed("title") {
			title = editTitle
		}
		content := note.Content
		if cmd.Flags().Changed("content") {
			content = editContent
		}

		updated, err := app.Notes.Update(cmd.Context(), id, title, content)
		if err != nil {
			return fmt.Errorf("failed to update note: %w", err)
		}

		fmt.Printf("Updated note %s\n", updated.ID)
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <note-id>",
	Short: "Delete a note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid note id: %w", err)
		}

		if err := cli.GetApp().Notes.Delete(cmd.Context(), id); err != nil {
			return fmt.Errorf("failed to delete note: %w", err)
		}

		fmt.Printf("Deleted note %s\n", id)
		return nil
	},
}

func init() {
	editCmd.Flags().StringVarP(&editTitle, "title", "t", "", "new title")
	editCmd.Flags().StringVarP(&editContent, "content", "c", "", "new content")
}
