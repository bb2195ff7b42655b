package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// UntitledPlaceholder is the title given to notes saved without one.
const UntitledPlaceholder = "Untitled Note"

// Note is a free-form text entry. CreatedAt is immutable; LastModifiedAt
// moves on every title or content mutation.
type Note struct {
	ID             uuid.UUID `json:"id"`
	Title          string    `json:"title"`
	Content        string    `json:"content"`
	CreatedAt      time.Time `json:"createdAt"`
	LastModifiedAt time.Time `json:"lastModifiedAt"`
}

// NewNote creates a note, applying the placeholder title when none is given.
func NewNote(title, content string) Note {
	now := time.Now().UTC()
	return Note{
		ID:             uuid.New(),
		Title:          normalizeTitle(title),
		Content:        content,
		CreatedAt:      now,
		LastModifiedAt: now,
	}
}

// Edit replaces title and content and touches LastModifiedAt.
func (n *Note) Edit(title, content string) {
	n.Title = normalizeTitle(title)
	n.Content = content
	n.LastModifiedAt = time.Now().UTC()
}

func normalizeTitle(title string) string {
	if strings.TrimSpace(title) == "" {
		return UntitledPlaceholder
	}
	return title
}

// DeriveTitle builds a note title from raw text: the first sentence, the
// first 50 characters when there is no sentence break, or the placeholder
// for empty text.
func DeriveTitle(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return UntitledPlaceholder
	}

	if idx := strings.IndexAny(text, ".!?"); idx > 0 {
		return strings.TrimSpace(text[:idx])
	}

	runes := []rune(text)
	if len(runes) > 50 {
		return strings.TrimSpace(string(runes[:50]))
	}
	return text
}
