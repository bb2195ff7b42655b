package extraction

import (
	"time"

	calendardomain "github.com/mindstash/mindstash/internal/calendar/domain"
)

// Draft is a not-yet-committed calendar event produced by extraction.
// It is transient: accepting a draft turns it into a calendar event, and
// rejected drafts are simply discarded.
type Draft struct {
	Title       string
	StartAt     time.Time
	EndAt       time.Time
	Description string
	Category    calendardomain.Category
	IsAllDay    bool
	Confidence  float64
}
