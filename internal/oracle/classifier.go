package oracle

import (
	"context"
	"strings"
)

// Route is the classification decision for a captured thought.
type Route string

const (
	// RouteCalendar means the text describes a schedulable event.
	RouteCalendar Route = "calendar"
	// RouteDeferred means the text goes to the inbox for manual routing.
	RouteDeferred Route = "deferred"
	// RouteError means the oracle call failed; the thought is dropped.
	RouteError Route = "error"
)

// Outcome is the result of a single classification call. ErrorMessage is
// set only when Route is RouteError. Outcomes are transient and never
// persisted.
type Outcome struct {
	Route        Route
	ErrorMessage string
}

// Classifier decides whether raw text is a calendar event or a deferred
// thought by asking the completion oracle for a single-word answer.
type Classifier struct {
	client Client
}

// NewClassifier builds a classifier on top of a completion client.
func NewClassifier(client Client) *Classifier {
	return &Classifier{client: client}
}

const classifyPrompt = `You are a classifier for a personal capture app. The user submits a short piece of free-form text. Decide whether it describes a schedulable calendar event (something with an actual or implied date/time) or a loose thought the user wants to deal with later.

Respond with exactly one word: CALENDAR or TOUCH.

Examples:
"Dentist appointment next Friday at 3pm" -> CALENDAR
"Team standup tomorrow morning" -> CALENDAR
"Lunch with Sarah on Thursday" -> CALENDAR
"Remember to look into that book recommendation" -> TOUCH
"Idea: build a birdhouse" -> TOUCH
"Why do we even use that vendor?" -> TOUCH

Text: `

// Classify sends text to the oracle and maps the reply to a route.
// The caller must not pass text that is empty after trimming.
func (c *Classifier) Classify(ctx context.Context, text string) Outcome {
	reply, err := c.client.Complete(ctx, classifyPrompt+text)
	if err != nil {
		return Outcome{Route: RouteError, ErrorMessage: err.Error()}
	}

	normalized := strings.ToUpper(strings.TrimSpace(reply))
	switch normalized {
	case "CALENDAR":
		return Outcome{Route: RouteCalendar}
	case "TOUCH":
		return Outcome{Route: RouteDeferred}
	}

	// Lenient fallback: models phrase answers in unexpected ways, so a
	// reply that mentions CALENDAR or EVENT still routes to the calendar,
	// and anything else takes the lower-commitment deferred path.
	if strings.Contains(normalized, "CALENDAR") || strings.Contains(normalized, "EVENT") {
		return Outcome{Route: RouteCalendar}
	}
	return Outcome{Route: RouteDeferred}
}
