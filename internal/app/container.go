package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mindstash/mindstash/internal/calendar"
	"github.com/mindstash/mindstash/internal/extraction"
	"github.com/mindstash/mindstash/internal/inbox"
	"github.com/mindstash/mindstash/internal/notes"
	"github.com/mindstash/mindstash/internal/oracle"
	"github.com/mindstash/mindstash/internal/routing"
	"github.com/mindstash/mindstash/internal/shared/infrastructure/blobstore"
	"github.com/mindstash/mindstash/pkg/config"
)

// Container wires the application's dependencies. Collections are plain
// instances owned here and handed to whoever needs them; nothing in the
// core manages its own lifetime.
type Container struct {
	Blobs    blobstore.Store
	Inbox    *inbox.Store
	Calendar *calendar.Collection
	Notes    *notes.Collection

	SubmitThoughtHandler   *routing.SubmitThoughtHandler
	RouteToCalendarHandler *routing.RouteToCalendarHandler
	RouteToNotesHandler    *routing.RouteToNotesHandler
}

// NewContainer builds the full dependency graph from configuration.
func NewContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Container, error) {
	loc := time.Local
	if cfg.Timezone != "" {
		var err error
		loc, err = time.LoadLocation(cfg.Timezone)
		if err != nil {
			return nil, fmt.Errorf("invalid timezone %q: %w", cfg.Timezone, err)
		}
	}

	blobs, err := blobstore.New(ctx, blobstore.Config{
		Backend:     blobstore.Backend(cfg.StorageBackend),
		DataDir:     cfg.DataDir,
		SQLitePath:  cfg.SQLitePath,
		RedisURL:    cfg.RedisURL,
		DatabaseURL: cfg.DatabaseURL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize blob store: %w", err)
	}

	client := oracle.NewHTTPClient(cfg.APIBaseURL, cfg.APIKey, cfg.Model, cfg.MaxTokens)
	classifier := oracle.NewClassifier(client)
	engine := extraction.NewEngine(client, loc, logger)

	inboxStore := inbox.NewStore(ctx, blobs, logger)
	calendarCol := calendar.NewCollection(ctx, blobs, logger)
	notesCol := notes.NewCollection(ctx, blobs, logger)

	return &Container{
		Blobs:    blobs,
		Inbox:    inboxStore,
		Calendar: calendarCol,
		Notes:    notesCol,

		SubmitThoughtHandler: routing.NewSubmitThoughtHandler(
			classifier, engine, inboxStore, calendarCol, time.Now, logger),
		RouteToCalendarHandler: routing.NewRouteToCalendarHandler(
			engine, inboxStore, calendarCol, time.Now, logger),
		RouteToNotesHandler: routing.NewRouteToNotesHandler(
			inboxStore, notesCol, logger),
	}, nil
}

// Close releases the container's resources.
func (c *Container) Close() error {
	return c.Blobs.Close()
}
