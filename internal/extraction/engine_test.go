package extraction

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	calendardomain "github.com/mindstash/mindstash/internal/calendar/domain"
	shareddomain "github.com/mindstash/mindstash/internal/shared/domain"
)

type stubClient struct {
	reply string
	err   error
}

func (s *stubClient) Complete(ctx context.Context, prompt string) (string, error) {
	return s.reply, s.err
}

func testEngine(client *stubClient) *Engine {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewEngine(client, time.UTC, logger)
}

// 2026-03-10 is a Tuesday.
var tuesday = time.Date(2026, 3, 10, 10, 30, 0, 0, time.UTC)

func TestExtract_TeamMeetingTomorrow(t *testing.T) {
	client := &stubClient{reply: `{"title":"Team meeting","startDate":"2026-03-11","startTime":"14:00","endDate":"2026-03-11","endTime":"16:00","duration":120,"isAllDay":false,"category":"work","description":"","confidence":0.9}`}

	draft := testEngine(client).Extract(context.Background(), "Team meeting tomorrow 2-4pm", tuesday)

	require.Equal(t, "Team meeting", draft.Title)
	require.Equal(t, time.Date(2026, 3, 11, 14, 0, 0, 0, time.UTC), draft.StartAt)
	require.Equal(t, time.Date(2026, 3, 11, 16, 0, 0, 0, time.UTC), draft.EndAt)
	require.Equal(t, calendardomain.CategoryWork, draft.Category)
	require.False(t, draft.IsAllDay)
	require.Equal(t, 0.9, draft.Confidence)
}

func TestExtract_StripsMarkdownFences(t *testing.T) {
	client := &stubClient{reply: "```json\n{\"title\":\"Call mom\",\"startDate\":\"2026-03-10\",\"startTime\":\"18:00\",\"endDate\":\"2026-03-10\",\"endTime\":\"18:30\",\"duration\":30,\"isAllDay\":false,\"category\":\"personal\",\"description\":\"\",\"confidence\":0.7}\n```"}

	draft := testEngine(client).Extract(context.Background(), "Call mom tonight", tuesday)

	require.Equal(t, "Call mom", draft.Title)
	require.Equal(t, 0.7, draft.Confidence)
	require.Equal(t, calendardomain.CategoryPersonal, draft.Category)
}

func TestExtract_DateWithoutTimeUsesMidnight(t *testing.T) {
	client := &stubClient{reply: `{"title":"Trip prep","startDate":"2026-03-12","startTime":"","endDate":"","endTime":"","duration":0,"isAllDay":false,"category":"travel","description":"","confidence":0.5}`}

	draft := testEngine(client).Extract(context.Background(), "trip prep thursday", tuesday)

	require.Equal(t, time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC), draft.StartAt)
	// No usable end and no duration: one hour default.
	require.Equal(t, draft.StartAt.Add(time.Hour), draft.EndAt)
}

func TestExtract_DurationFillsMissingEnd(t *testing.T) {
	client := &stubClient{reply: `{"title":"Standup","startDate":"2026-03-11","startTime":"09:00","endDate":"","endTime":"","duration":30,"isAllDay":false,"category":"work","description":"","confidence":0.7}`}

	draft := testEngine(client).Extract(context.Background(), "standup tomorrow morning", tuesday)

	require.Equal(t, 30*time.Minute, draft.EndAt.Sub(draft.StartAt))
}

func TestExtract_AllDaySpansMidnightToMidnight(t *testing.T) {
	client := &stubClient{reply: `{"title":"Conference","startDate":"2026-03-13","startTime":"09:00","endDate":"2026-03-13","endTime":"17:00","duration":0,"isAllDay":true,"category":"work","description":"","confidence":0.9}`}

	draft := testEngine(client).Extract(context.Background(), "conference all day friday", tuesday)

	require.True(t, draft.IsAllDay)
	require.Equal(t, time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC), draft.StartAt)
	require.Equal(t, time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), draft.EndAt)
}

func TestExtract_EndBeforeStartGetsFixed(t *testing.T) {
	client := &stubClient{reply: `{"title":"Review","startDate":"2026-03-11","startTime":"15:00","endDate":"2026-03-11","endTime":"14:00","duration":0,"isAllDay":false,"category":"work","description":"","confidence":0.7}`}

	draft := testEngine(client).Extract(context.Background(), "review tomorrow", tuesday)

	require.True(t, draft.EndAt.After(draft.StartAt))
	require.Equal(t, time.Hour, draft.EndAt.Sub(draft.StartAt))
}

func TestExtract_ConfidenceClamped(t *testing.T) {
	client := &stubClient{reply: `{"title":"X","startDate":"2026-03-11","startTime":"10:00","endDate":"2026-03-11","endTime":"11:00","duration":60,"isAllDay":false,"category":"general","description":"","confidence":1.7}`}

	draft := testEngine(client).Extract(context.Background(), "x", tuesday)
	require.Equal(t, 1.0, draft.Confidence)
}

func TestExtract_EmptyTitleFallsBackToInput(t *testing.T) {
	client := &stubClient{reply: `{"title":"","startDate":"2026-03-11","startTime":"10:00","endDate":"2026-03-11","endTime":"11:00","duration":60,"isAllDay":false,"category":"general","description":"","confidence":0.5}`}

	draft := testEngine(client).Extract(context.Background(), "vague plans", tuesday)
	require.Equal(t, "vague plans", draft.Title)
}

func TestExtract_UnknownCategoryDefaultsGeneral(t *testing.T) {
	client := &stubClient{reply: `{"title":"X","startDate":"2026-03-11","startTime":"10:00","endDate":"2026-03-11","endTime":"11:00","duration":60,"isAllDay":false,"category":"mystery","description":"","confidence":0.5}`}

	draft := testEngine(client).Extract(context.Background(), "x", tuesday)
	require.Equal(t, calendardomain.CategoryGeneral, draft.Category)
}

func requireFallback(t *testing.T, draft Draft, text string, now time.Time) {
	t.Helper()
	require.Equal(t, text, draft.Title)
	require.Equal(t, now.Add(time.Hour), draft.StartAt)
	require.Equal(t, now.Add(2*time.Hour), draft.EndAt)
	require.Equal(t, "Parsed from: "+text, draft.Description)
	require.Equal(t, calendardomain.CategoryGeneral, draft.Category)
	require.False(t, draft.IsAllDay)
	require.Equal(t, 0.3, draft.Confidence)
}

func TestExtract_MalformedJSONFallsBack(t *testing.T) {
	client := &stubClient{reply: "I couldn't find an event in that text, sorry!"}

	draft := testEngine(client).Extract(context.Background(), "gibberish input", tuesday)
	requireFallback(t, draft, "gibberish input", tuesday)
}

func TestExtract_UnparseableDateFallsBack(t *testing.T) {
	client := &stubClient{reply: `{"title":"X","startDate":"next tuesday","startTime":"10:00","endDate":"","endTime":"","duration":0,"isAllDay":false,"category":"general","description":"","confidence":0.5}`}

	draft := testEngine(client).Extract(context.Background(), "something", tuesday)
	requireFallback(t, draft, "something", tuesday)
}

func TestExtract_TransportFailureFallsBack(t *testing.T) {
	client := &stubClient{err: &shareddomain.NetworkError{Err: errors.New("connection refused")}}

	draft := testEngine(client).Extract(context.Background(), "meet bob at 5", tuesday)
	requireFallback(t, draft, "meet bob at 5", tuesday)
}

func TestExtract_AlwaysStructurallyValid(t *testing.T) {
	replies := []string{
		"",
		"null",
		"{}",
		`{"title":"only a title"}`,
		`{"startDate":"2026-03-11"}`,
		"```\nnot json\n```",
	}
	for _, reply := range replies {
		draft := testEngine(&stubClient{reply: reply}).Extract(context.Background(), "anything", tuesday)
		require.False(t, draft.EndAt.Before(draft.StartAt))
		require.NotEmpty(t, draft.Title)
		require.GreaterOrEqual(t, draft.Confidence, 0.0)
		require.LessOrEqual(t, draft.Confidence, 1.0)
	}
}
