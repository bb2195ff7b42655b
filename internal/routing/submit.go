package routing

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mindstash/mindstash/internal/calendar"
	"github.com/mindstash/mindstash/internal/extraction"
	"github.com/mindstash/mindstash/internal/inbox"
	"github.com/mindstash/mindstash/internal/oracle"

	calendardomain "github.com/mindstash/mindstash/internal/calendar/domain"
	shareddomain "github.com/mindstash/mindstash/internal/shared/domain"
)

// SubmitThoughtCommand carries a raw user submission.
type SubmitThoughtCommand struct {
	Text string
}

// SubmitThoughtResult reports where the thought ended up. EventID is set
// for StateRoutedCalendar, ThoughtID for StateAwaitingManualRoute, and
// ErrorMessage for StateFailed.
type SubmitThoughtResult struct {
	State        State
	EventID      uuid.UUID
	ThoughtID    uuid.UUID
	ErrorMessage string
}

// SubmitThoughtHandler runs the capture-to-disposition pipeline: classify,
// then either extract into the calendar, defer into the inbox, or fail.
type SubmitThoughtHandler struct {
	classifier *oracle.Classifier
	engine     *extraction.Engine
	inbox      *inbox.Store
	calendar   *calendar.Collection
	now        func() time.Time
	logger     *slog.Logger
}

// NewSubmitThoughtHandler wires the submission pipeline.
func NewSubmitThoughtHandler(
	classifier *oracle.Classifier,
	engine *extraction.Engine,
	inboxStore *inbox.Store,
	calendarCol *calendar.Collection,
	now func() time.Time,
	logger *slog.Logger,
) *SubmitThoughtHandler {
	if now == nil {
		now = time.Now
	}
	return &SubmitThoughtHandler{
		classifier: classifier,
		engine:     engine,
		inbox:      inboxStore,
		calendar:   calendarCol,
		now:        now,
		logger:     logger,
	}
}

// Handle executes the lifecycle for one submission. A classification error
// yields StateFailed with the message in the result, not a Go error: the
// pipeline worked, the oracle call did not, and the thought is dropped.
func (h *SubmitThoughtHandler) Handle(ctx context.Context, cmd SubmitThoughtCommand) (*SubmitThoughtResult, error) {
	text := strings.TrimSpace(cmd.Text)
	if text == "" {
		return nil, &shareddomain.ValidationError{
			Message: "text cannot be empty",
			Err:     shareddomain.ErrEmptyText,
		}
	}

	outcome := h.classifier.Classify(ctx, text)
	switch outcome.Route {
	case oracle.RouteCalendar:
		draft := h.engine.Extract(ctx, text, h.now())
		event, err := h.calendar.Create(ctx, eventFromDraft(draft))
		if err != nil {
			return nil, err
		}
		h.logger.Info("thought routed to calendar",
			"event_id", event.ID, "confidence", draft.Confidence)
		return &SubmitThoughtResult{State: StateRoutedCalendar, EventID: event.ID}, nil

	case oracle.RouteDeferred:
		thought, err := h.inbox.Capture(ctx, text)
		if err != nil {
			return nil, err
		}
		h.logger.Info("thought deferred to inbox", "thought_id", thought.ID)
		return &SubmitThoughtResult{State: StateAwaitingManualRoute, ThoughtID: thought.ID}, nil

	default:
		h.logger.Warn("classification failed, thought discarded", "error", outcome.ErrorMessage)
		return &SubmitThoughtResult{State: StateFailed, ErrorMessage: outcome.ErrorMessage}, nil
	}
}

// eventFromDraft finalizes an accepted draft as a calendar event.
func eventFromDraft(draft extraction.Draft) calendardomain.Event {
	return calendardomain.Event{
		Title:       draft.Title,
		StartAt:     draft.StartAt,
		EndAt:       draft.EndAt,
		Description: draft.Description,
		Category:    draft.Category,
		IsAllDay:    draft.IsAllDay,
	}
}
