package routing

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/mindstash/mindstash/internal/calendar"
	"github.com/mindstash/mindstash/internal/extraction"
	"github.com/mindstash/mindstash/internal/inbox"
)

// RouteToCalendarCommand asks for an inbox thought to become a calendar
// event. Classification is skipped: the route is already decided.
type RouteToCalendarCommand struct {
	ThoughtID uuid.UUID
}

// RouteToCalendarResult reports the created event.
type RouteToCalendarResult struct {
	State   State
	EventID uuid.UUID
}

// RouteToCalendarHandler moves a deferred thought into the calendar.
type RouteToCalendarHandler struct {
	engine   *extraction.Engine
	inbox    *inbox.Store
	calendar *calendar.Collection
	now      func() time.Time
	logger   *slog.Logger
}

// NewRouteToCalendarHandler wires the manual calendar route.
func NewRouteToCalendarHandler(
	engine *extraction.Engine,
	inboxStore *inbox.Store,
	calendarCol *calendar.Collection,
	now func() time.Time,
	logger *slog.Logger,
) *RouteToCalendarHandler {
	if now == nil {
		now = time.Now
	}
	return &RouteToCalendarHandler{
		engine:   engine,
		inbox:    inboxStore,
		calendar: calendarCol,
		now:      now,
		logger:   logger,
	}
}

// Handle extracts an event from the thought and removes it from the inbox
// only once the calendar insert has succeeded. On any failure the thought
// stays in the inbox, so the transition can simply be retried.
func (h *RouteToCalendarHandler) Handle(ctx context.Context, cmd RouteToCalendarCommand) (*RouteToCalendarResult, error) {
	thought, ok := h.inbox.Find(cmd.ThoughtID)
	if !ok {
		return nil, fmt.Errorf("inbox thought %s: not found", cmd.ThoughtID)
	}

	draft := h.engine.Extract(ctx, thought.Text, h.now())
	event, err := h.calendar.Create(ctx, eventFromDraft(draft))
	if err != nil {
		return nil, err
	}

	if err := h.inbox.Remove(ctx, thought.ID); err != nil {
		// Keep single ownership: undo the insert rather than leaving the
		// thought in two collections.
		if delErr := h.calendar.Delete(ctx, event.ID); delErr != nil {
			h.logger.Error("failed to undo calendar insert after inbox error",
				"event_id", event.ID, "error", delErr)
		}
		return nil, err
	}

	h.logger.Info("inbox thought routed to calendar",
		"thought_id", thought.ID, "event_id", event.ID)
	return &RouteToCalendarResult{State: StateRoutedCalendar, EventID: event.ID}, nil
}
