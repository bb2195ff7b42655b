package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"

	shareddomain "github.com/mindstash/mindstash/internal/shared/domain"
)

// Category groups calendar events for display and filtering.
type Category string

const (
	CategoryGeneral  Category = "general"
	CategoryWork     Category = "work"
	CategoryPersonal Category = "personal"
	CategoryHealth   Category = "health"
	CategorySocial   Category = "social"
	CategoryTravel   Category = "travel"
)

// ParseCategory maps free-form category text onto the enum. Unknown values
// fall back to CategoryGeneral rather than failing, since category strings
// arrive from oracle output.
func ParseCategory(raw string) Category {
	switch Category(strings.ToLower(strings.TrimSpace(raw))) {
	case CategoryWork:
		return CategoryWork
	case CategoryPersonal:
		return CategoryPersonal
	case CategoryHealth:
		return CategoryHealth
	case CategorySocial:
		return CategorySocial
	case CategoryTravel:
		return CategoryTravel
	default:
		return CategoryGeneral
	}
}

// Event is a finalized calendar entry. EndAt is never before StartAt.
type Event struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	StartAt     time.Time `json:"startAt"`
	EndAt       time.Time `json:"endAt"`
	Description string    `json:"description,omitempty"`
	Category    Category  `json:"category,omitempty"`
	IsAllDay    bool      `json:"isAllDay"`
}

// Validate checks the event's time invariant.
func (e Event) Validate() error {
	if strings.TrimSpace(e.Title) == "" {
		return &shareddomain.ValidationError{Message: "event title cannot be empty"}
	}
	if e.EndAt.Before(e.StartAt) {
		return &shareddomain.ValidationError{Message: "event end cannot be before start"}
	}
	return nil
}
