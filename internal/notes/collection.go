package notes

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mindstash/mindstash/internal/notes/domain"
	shareddomain "github.com/mindstash/mindstash/internal/shared/domain"
	"github.com/mindstash/mindstash/internal/shared/infrastructure/blobstore"
)

// BlobKey names the persisted notes snapshot.
const BlobKey = "notes"

// Collection owns finalized notes with the same single-writer, full-blob
// persistence discipline as the calendar collection.
type Collection struct {
	mu     sync.Mutex
	blobs  blobstore.Store
	logger *slog.Logger
	notes  map[uuid.UUID]domain.Note
}

// NewCollection loads the persisted notes. Missing or corrupt blobs yield
// an empty collection.
func NewCollection(ctx context.Context, blobs blobstore.Store, logger *slog.Logger) *Collection {
	c := &Collection{blobs: blobs, logger: logger, notes: map[uuid.UUID]domain.Note{}}

	data, err := blobs.Load(ctx, BlobKey)
	if err != nil {
		if !errors.Is(err, blobstore.ErrNoBlob) {
			logger.Warn("failed to load notes, starting empty", "error", err)
		}
		return c
	}
	var notes []domain.Note
	if err := json.Unmarshal(data, &notes); err != nil {
		logger.Warn("corrupt notes blob, starting empty", "error", err)
		return c
	}
	for _, note := range notes {
		c.notes[note.ID] = note
	}
	return c
}

// Create inserts a new note.
func (c *Collection) Create(ctx context.Context, title, content string) (domain.Note, error) {
	note := domain.NewNote(title, content)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.notes[note.ID] = note
	if err := c.persist(ctx); err != nil {
		delete(c.notes, note.ID)
		return domain.Note{}, err
	}
	return note, nil
}

// Update edits an existing note's title and content.
func (c *Collection) Update(ctx context.Context, id uuid.UUID, title, content string) (domain.Note, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	previous, ok := c.notes[id]
	if !ok {
		return domain.Note{}, shareddomain.ErrNotFound
	}

	note := previous
	note.Edit(title, content)
	c.notes[id] = note
	if err := c.persist(ctx); err != nil {
		c.notes[id] = previous
		return domain.Note{}, err
	}
	return note, nil
}

// Delete removes a note by identity. Deleting an absent identity is a no-op.
func (c *Collection) Delete(ctx context.Context, id uuid.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	previous, ok := c.notes[id]
	if !ok {
		return nil
	}
	delete(c.notes, id)
	if err := c.persist(ctx); err != nil {
		c.notes[id] = previous
		return err
	}
	return nil
}

// Get returns the note with the given identity.
func (c *Collection) Get(id uuid.UUID) (domain.Note, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	note, ok := c.notes[id]
	return note, ok
}

// List returns all notes newest-first by creation time.
func (c *Collection) List() []domain.Note {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sorted()
}

// NotesOn returns the notes created within [day 00:00, day+1 00:00) in
// day's timezone, newest first.
func (c *Collection) NotesOn(day time.Time) []domain.Note {
	loc := day.Location()
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, loc)
	dayEnd := dayStart.AddDate(0, 0, 1)

	c.mu.Lock()
	defer c.mu.Unlock()

	var out []domain.Note
	for _, note := range c.sorted() {
		created := note.CreatedAt.In(loc)
		if !created.Before(dayStart) && created.Before(dayEnd) {
			out = append(out, note)
		}
	}
	return out
}

// sorted returns notes newest-first. Callers hold the mutex.
func (c *Collection) sorted() []domain.Note {
	out := make([]domain.Note, 0, len(c.notes))
	for _, note := range c.notes {
		out = append(out, note)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// persist writes the full collection. Callers hold the mutex.
func (c *Collection) persist(ctx context.Context) error {
	data, err := json.Marshal(c.sorted())
	if err != nil {
		return err
	}
	return c.blobs.Save(ctx, BlobKey, data)
}
