package routing

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mindstash/mindstash/internal/inbox"
	"github.com/mindstash/mindstash/internal/notes"

	notesdomain "github.com/mindstash/mindstash/internal/notes/domain"
)

// RouteToNotesCommand asks for an inbox thought to become a note. No
// extraction is involved: the raw text becomes the note content.
type RouteToNotesCommand struct {
	ThoughtID uuid.UUID
}

// RouteToNotesResult reports the created note.
type RouteToNotesResult struct {
	State  State
	NoteID uuid.UUID
}

// RouteToNotesHandler moves a deferred thought into the notes collection.
type RouteToNotesHandler struct {
	inbox  *inbox.Store
	notes  *notes.Collection
	logger *slog.Logger
}

// NewRouteToNotesHandler wires the manual notes route.
func NewRouteToNotesHandler(inboxStore *inbox.Store, notesCol *notes.Collection, logger *slog.Logger) *RouteToNotesHandler {
	return &RouteToNotesHandler{inbox: inboxStore, notes: notesCol, logger: logger}
}

// Handle creates the note and removes the thought from the inbox only once
// the insert has succeeded.
func (h *RouteToNotesHandler) Handle(ctx context.Context, cmd RouteToNotesCommand) (*RouteToNotesResult, error) {
	thought, ok := h.inbox.Find(cmd.ThoughtID)
	if !ok {
		return nil, fmt.Errorf("inbox thought %s: not found", cmd.ThoughtID)
	}

	note, err := h.notes.Create(ctx, notesdomain.DeriveTitle(thought.Text), thought.Text)
	if err != nil {
		return nil, err
	}

	if err := h.inbox.Remove(ctx, thought.ID); err != nil {
		if delErr := h.notes.Delete(ctx, note.ID); delErr != nil {
			h.logger.Error("failed to undo note insert after inbox error",
				"note_id", note.ID, "error", delErr)
		}
		return nil, err
	}

	h.logger.Info("inbox thought routed to notes",
		"thought_id", thought.ID, "note_id", note.ID)
	return &RouteToNotesResult{State: StateRoutedNotes, NoteID: note.ID}, nil
}
