package calendar

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mindstash/mindstash/internal/calendar/domain"
	shareddomain "github.com/mindstash/mindstash/internal/shared/domain"
	"github.com/mindstash/mindstash/internal/shared/infrastructure/blobstore"
)

// BlobKey names the persisted calendar snapshot.
const BlobKey = "calendar_events"

// Collection owns finalized calendar events. Mutations are serialized
// under one mutex and re-serialize the whole collection to the blob store,
// returning the write result.
type Collection struct {
	mu     sync.Mutex
	blobs  blobstore.Store
	logger *slog.Logger
	events map[uuid.UUID]domain.Event
}

// NewCollection loads the persisted calendar. Missing or corrupt blobs
// yield an empty collection, logged but never surfaced.
func NewCollection(ctx context.Context, blobs blobstore.Store, logger *slog.Logger) *Collection {
	c := &Collection{blobs: blobs, logger: logger, events: map[uuid.UUID]domain.Event{}}

	data, err := blobs.Load(ctx, BlobKey)
	if err != nil {
		if !errors.Is(err, blobstore.ErrNoBlob) {
			logger.Warn("failed to load calendar, starting empty", "error", err)
		}
		return c
	}
	var events []domain.Event
	if err := json.Unmarshal(data, &events); err != nil {
		logger.Warn("corrupt calendar blob, starting empty", "error", err)
		return c
	}
	for _, event := range events {
		c.events[event.ID] = event
	}
	return c
}

// Create validates and inserts a new event, assigning an identity when the
// caller left it zero.
func (c *Collection) Create(ctx context.Context, event domain.Event) (domain.Event, error) {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	if err := event.Validate(); err != nil {
		return domain.Event{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.events[event.ID] = event
	if err := c.persist(ctx); err != nil {
		delete(c.events, event.ID)
		return domain.Event{}, err
	}
	return event, nil
}

// Update replaces an existing event in place.
func (c *Collection) Update(ctx context.Context, event domain.Event) error {
	if err := event.Validate(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	previous, ok := c.events[event.ID]
	if !ok {
		return shareddomain.ErrNotFound
	}
	c.events[event.ID] = event
	if err := c.persist(ctx); err != nil {
		c.events[event.ID] = previous
		return err
	}
	return nil
}

// Delete removes an event by identity. Deleting an absent identity is a
// no-op.
func (c *Collection) Delete(ctx context.Context, id uuid.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	previous, ok := c.events[id]
	if !ok {
		return nil
	}
	delete(c.events, id)
	if err := c.persist(ctx); err != nil {
		c.events[id] = previous
		return err
	}
	return nil
}

// Get returns the event with the given identity.
func (c *Collection) Get(id uuid.UUID) (domain.Event, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	event, ok := c.events[id]
	return event, ok
}

// List returns all events ascending by start time.
func (c *Collection) List() []domain.Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sorted()
}

// EventsOn returns the events whose start falls within [day 00:00,
// day+1 00:00) in day's timezone, ascending by start time.
func (c *Collection) EventsOn(day time.Time) []domain.Event {
	loc := day.Location()
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, loc)
	dayEnd := dayStart.AddDate(0, 0, 1)

	c.mu.Lock()
	defer c.mu.Unlock()

	var out []domain.Event
	for _, event := range c.sorted() {
		start := event.StartAt.In(loc)
		if !start.Before(dayStart) && start.Before(dayEnd) {
			out = append(out, event)
		}
	}
	return out
}

// sorted returns all events ascending by StartAt. Callers hold the mutex.
func (c *Collection) sorted() []domain.Event {
	out := make([]domain.Event, 0, len(c.events))
	for _, event := range c.events {
		out = append(out, event)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].StartAt.Before(out[j].StartAt)
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
