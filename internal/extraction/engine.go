package extraction

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/mindstash/mindstash/internal/oracle"

	calendardomain "github.com/mindstash/mindstash/internal/calendar/domain"
	shareddomain "github.com/mindstash/mindstash/internal/shared/domain"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// Engine turns free-form text into a calendar event draft by asking the
// oracle for a structured extraction. Extract never fails: any oracle or
// parse failure degrades to a best-effort heuristic draft.
type Engine struct {
	client oracle.Client
	loc    *time.Location
	logger *slog.Logger
}

// NewEngine builds an extraction engine. All calendar math uses loc so
// results are deterministic for a fixed clock and timezone.
func NewEngine(client oracle.Client, loc *time.Location, logger *slog.Logger) *Engine {
	if loc == nil {
		loc = time.Local
	}
	return &Engine{client: client, loc: loc, logger: logger}
}

// payload is the JSON shape the extraction prompt asks the oracle for.
type payload struct {
	Title       string  `json:"title"`
	StartDate   string  `json:"startDate"`
	StartTime   string  `json:"startTime"`
	EndDate     string  `json:"endDate"`
	EndTime     string  `json:"endTime"`
	Duration    int     `json:"duration"`
	IsAllDay    bool    `json:"isAllDay"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Confidence  float64 `json:"confidence"`
}

// Extract produces a draft for text, using now as the reference clock.
func (e *Engine) Extract(ctx context.Context, text string, now time.Time) Draft {
	now = now.In(e.loc)

	reply, err := e.client.Complete(ctx, e.buildPrompt(text, now))
	if err != nil {
		e.logger.Warn("extraction call failed, using fallback draft", "error", err)
		return e.fallback(text, now)
	}

	draft, err := e.parse(reply, text)
	if err != nil {
		e.logger.Warn("extraction output unusable, using fallback draft", "error", err)
		return e.fallback(text, now)
	}
	return draft
}

// parse interprets the oracle's reply as a payload and assembles a draft.
func (e *Engine) parse(reply, text string) (Draft, error) {
	var p payload
	if err := json.Unmarshal([]byte(stripFences(reply)), &p); err != nil {
		return Draft{}, &shareddomain.ParseError{Message: "malformed extraction payload", Err: err}
	}

	startAt, err := e.combine(p.StartDate, p.StartTime)
	if err != nil {
		return Draft{}, &shareddomain.ParseError{Message: "unusable start date", Err: err}
	}

	endDate := p.EndDate
	if endDate == "" {
		endDate = p.StartDate
	}
	endAt, err := e.combine(endDate, p.EndTime)
	if err != nil || !endAt.After(startAt) {
		// No usable end: apply the stated duration, else a one hour block.
		if p.Duration > 0 {
			endAt = startAt.Add(time.Duration(p.Duration) * time.Minute)
		} else {
			endAt = startAt.Add(time.Hour)
		}
	}

	if p.IsAllDay {
		// All-day events span local midnight to midnight the next day.
		y, m, d := startAt.Date()
		startAt = time.Date(y, m, d, 0, 0, 0, 0, e.loc)
		endAt = startAt.AddDate(0, 0, 1)
	}

	title := strings.TrimSpace(p.Title)
	if title == "" {
		title = text
	}

	return Draft{
		Title:       title,
		StartAt:     startAt,
		EndAt:       endAt,
		Description: p.Description,
		Category:    calendardomain.ParseCategory(p.Category),
		IsAllDay:    p.IsAllDay,
		Confidence:  clamp(p.Confidence),
	}, nil
}

// combine builds a timestamp from a YYYY-MM-DD date and HH:MM time in the
// engine's timezone. A parseable date with an unparseable time resolves to
// midnight of that date; an unparseable date is an error.
func (e *Engine) combine(dateStr, timeStr string) (time.Time, error) {
	date, err := time.ParseInLocation(dateLayout, strings.TrimSpace(dateStr), e.loc)
	if err != nil {
		return time.Time{}, err
	}
	clock, err := time.ParseInLocation(timeLayout, strings.TrimSpace(timeStr), e.loc)
	if err != nil {
		return date, nil
	}
	return time.Date(date.Year(), date.Month(), date.Day(),
		clock.Hour(), clock.Minute(), 0, 0, e.loc), nil
}

// fallback trades accuracy for availability: the caller always receives an
// actionable draft even when the oracle was unreachable or unintelligible.
func (e *Engine) fallback(text string, now time.Time) Draft {
	return Draft{
		Title:       text,
		StartAt:     now.Add(time.Hour),
		EndAt:       now.Add(2 * time.Hour),
		Description: "Parsed from: " + text,
		Category:    calendardomain.CategoryGeneral,
		IsAllDay:    false,
		Confidence:  0.3,
	}
}

// stripFences removes a markdown code fence wrapper, which models add
// around JSON output despite instructions not to.
func stripFences(reply string) string {
	reply = strings.TrimSpace(reply)
	reply = strings.TrimPrefix(reply, "```json")
	reply = strings.TrimPrefix(reply, "```")
	reply = strings.TrimSuffix(reply, "```")
	return strings.TrimSpace(reply)
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// buildPrompt embeds the reference clock and the deterministic inference
// rules the oracle must apply. The rules are part of the extraction
// contract: downstream acceptance semantics depend on them.
func (e *Engine) buildPrompt(text string, now time.Time) string {
	var sb strings.Builder

	sb.WriteString("Extract a calendar event from the text below. Return JSON only.\n\n")
	fmt.Fprintf(&sb, "Current date: %s\n", now.Format(dateLayout))
	fmt.Fprintf(&sb, "Current weekday: %s\n", now.Weekday())
	fmt.Fprintf(&sb, "Current time: %s\n\n", now.Format(timeLayout))

	sb.WriteString(`Return a JSON object with this structure:
{
  "title": "short event title",
  "startDate": "YYYY-MM-DD",
  "startTime": "HH:MM",
  "endDate": "YYYY-MM-DD",
  "endTime": "HH:MM",
  "duration": 60,
  "isAllDay": false,
  "category": "general|work|personal|health|social|travel",
  "description": "optional details",
  "confidence": 0.9
}

Rules:
- No date given: use today. "tomorrow": current date + 1 day. "next <weekday>" or a bare weekday name: the next future occurrence of that weekday, never today even if today matches. "next week": current date + 7 days.
- No time given: schedule a default 2-hour block starting at the next reasonable time. Named periods: morning=09:00, afternoon=14:00, evening=18:00, night=20:00. "lunch"=12:00-13:00, "dinner"=18:00-19:30. "all day" sets isAllDay=true.
- Default durations when none is stated: meetings=60min, calls=30min, meals=60-90min, appointments=60min.
- Category by keyword: meeting/conference/presentation=work; doctor/gym/workout/medical=health; dinner/lunch/party/friends=social; family/personal/shopping/errands=personal; otherwise general.
- Confidence: 0.9 when date, time and duration are all explicit; 0.7 when partially inferred; 0.5 when mostly guessed.
- Times use 24-hour HH:MM. Dates use YYYY-MM-DD.

Examples (assuming current date 2026-03-10, a Tuesday):
"Team meeting tomorrow 2-4pm" -> {"title":"Team meeting","startDate":"2026-03-11","startTime":"14:00","endDate":"2026-03-11","endTime":"16:00","duration":120,"isAllDay":false,"category":"work","description":"","confidence":0.9}
"Dentist next Friday" -> {"title":"Dentist","startDate":"2026-03-13","startTime":"09:00","endDate":"2026-03-13","endTime":"10:00","duration":60,"isAllDay":false,"category":"health","description":"","confidence":0.7}
"Lunch with Anna on Thursday" -> {"title":"Lunch with Anna","startDate":"2026-03-12","startTime":"12:00","endDate":"2026-03-12","endTime":"13:00","duration":60,"isAllDay":false,"category":"social","description":"","confidence":0.7}

Return ONLY the JSON, no other text.

Text: `)
	sb.WriteString(text)

	return sb.String()
}
