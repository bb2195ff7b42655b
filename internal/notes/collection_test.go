package notes

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/mindstash/mindstash/internal/notes/domain"
	shareddomain "github.com/mindstash/mindstash/internal/shared/domain"
	"github.com/mindstash/mindstash/internal/shared/infrastructure/blobstore"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCollection_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	col := NewCollection(ctx, blobstore.NewMemoryStore(), testLogger())

	note, err := col.Create(ctx, "Groceries", "milk, eggs")
	require.NoError(t, err)

	got, ok := col.Get(note.ID)
	require.True(t, ok)
	require.Equal(t, "Groceries", got.Title)
	require.Equal(t, "milk, eggs", got.Content)
}

func TestCollection_CreateEmptyTitleGetsPlaceholder(t *testing.T) {
	ctx := context.Background()
	col := NewCollection(ctx, blobstore.NewMemoryStore(), testLogger())

	note, err := col.Create(ctx, "", "content only")
	require.NoError(t, err)
	require.Equal(t, domain.UntitledPlaceholder, note.Title)
}

func TestCollection_UpdateTouchesLastModified(t *testing.T) {
	ctx := context.Background()
	col := NewCollection(ctx, blobstore.NewMemoryStore(), testLogger())

	note, err := col.Create(ctx, "Draft", "v1")
	require.NoError(t, err)

	updated, err := col.Update(ctx, note.ID, "Draft", "v2")
	require.NoError(t, err)
	require.Equal(t, "v2", updated.Content)
	require.Equal(t, note.CreatedAt, updated.CreatedAt)
	require.False(t, updated.LastModifiedAt.Before(note.LastModifiedAt))
}

func TestCollection_UpdateUnknownIDFails(t *testing.T) {
	ctx := context.Background()
	col := NewCollection(ctx, blobstore.NewMemoryStore(), testLogger())

	_, err := col.Update(ctx, uuid.New(), "x", "y")
	require.ErrorIs(t, err, shareddomain.ErrNotFound)
}

func TestCollection_DeleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	col := NewCollection(ctx, blobstore.NewMemoryStore(), testLogger())

	note, err := col.Create(ctx, "Temp", "x")
	require.NoError(t, err)

	require.NoError(t, col.Delete(ctx, note.ID))
	require.NoError(t, col.Delete(ctx, note.ID))
	_, ok := col.Get(note.ID)
	require.False(t, ok)
}

func TestCollection_PersistenceRoundTrip(t *testing.T) {
	ctx := context.Background()
	blobs := blobstore.NewMemoryStore()

	col := NewCollection(ctx, blobs, testLogger())
	note, err := col.Create(ctx, "Kept", "across restarts")
	require.NoError(t, err)

	reloaded := NewCollection(ctx, blobs, testLogger())
	got, ok := reloaded.Get(note.ID)
	require.True(t, ok)
	require.Equal(t, "Kept", got.Title)
	require.Equal(t, "across restarts", got.Content)
}

func TestCollection_NotesOnFiltersByCreationDay(t *testing.T) {
	ctx := context.Background()
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	seed := []domain.Note{
		{ID: uuid.New(), Title: "Morning", CreatedAt: day.Add(9 * time.Hour)},
		{ID: uuid.New(), Title: "Midnight", CreatedAt: day},
		{ID: uuid.New(), Title: "Evening", CreatedAt: day.Add(23 * time.Hour)},
		{ID: uuid.New(), Title: "Day before", CreatedAt: day.Add(-time.Minute)},
		{ID: uuid.New(), Title: "Next midnight", CreatedAt: day.AddDate(0, 0, 1)},
	}
	data, err := json.Marshal(seed)
	require.NoError(t, err)

	blobs := blobstore.NewMemoryStore()
	require.NoError(t, blobs.Save(ctx, BlobKey, data))
	col := NewCollection(ctx, blobs, testLogger())

	got := col.NotesOn(day)
	require.Len(t, got, 3)
	require.Equal(t, "Evening", got[0].Title)
	require.Equal(t, "Morning", got[1].Title)
	require.Equal(t, "Midnight", got[2].Title)
}

func TestCollection_CorruptBlobYieldsEmpty(t *testing.T) {
	ctx := context.Background()
	blobs := blobstore.NewMemoryStore()
	require.NoError(t, blobs.Save(ctx, BlobKey, []byte{0x00, 0x01}))

	col := NewCollection(ctx, blobs, testLogger())
	require.Empty(t, col.List())
}
