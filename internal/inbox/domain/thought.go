package domain

import (
	"time"

	"github.com/google/uuid"
)

// Thought is a captured piece of free text awaiting routing. Thoughts are
// immutable after creation and owned by exactly one holder at a time:
// the inbox, or transiently the routing pipeline.
type Thought struct {
	ID        uuid.UUID `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewThought creates a thought with a fresh identity.
func NewThought(text string) Thought {
	return Thought{
		ID:        uuid.New(),
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}
}
