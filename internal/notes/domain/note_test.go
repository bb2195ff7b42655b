package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDeriveTitle(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"first sentence", "Call mom about dinner. Also buy milk.", "Call mom about dinner"},
		{"question break", "Should I learn piano? Probably.", "Should I learn piano"},
		{"exclamation break", "Ship it! Then celebrate.", "Ship it"},
		{"no break short", "Just a short thought", "Just a short thought"},
		{"no break long", strings.Repeat("a", 80), strings.Repeat("a", 50)},
		{"empty", "", "Untitled Note"},
		{"whitespace only", "   \n\t ", "Untitled Note"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, DeriveTitle(tt.text))
		})
	}
}

func TestNewNote_PlaceholderTitle(t *testing.T) {
	note := NewNote("", "some content")
	require.Equal(t, UntitledPlaceholder, note.Title)
	require.Equal(t, "some content", note.Content)
	require.Equal(t, note.CreatedAt, note.LastModifiedAt)
}

func TestNote_EditTouchesLastModified(t *testing.T) {
	note := NewNote("Original", "body")
	created := note.CreatedAt

	time.Sleep(time.Millisecond)
	note.Edit("Updated", "new body")

	require.Equal(t, "Updated", note.Title)
	require.Equal(t, "new body", note.Content)
	require.Equal(t, created, note.CreatedAt)
	require.True(t, note.LastModifiedAt.After(created))
}

func TestNote_EditEmptyTitleGetsPlaceholder(t *testing.T) {
	note := NewNote("Has title", "body")
	note.Edit("  ", "body")
	require.Equal(t, UntitledPlaceholder, note.Title)
}
