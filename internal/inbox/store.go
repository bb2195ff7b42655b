package inbox

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/mindstash/mindstash/internal/inbox/domain"
	"github.com/mindstash/mindstash/internal/shared/infrastructure/blobstore"
)

// BlobKey names the persisted inbox snapshot.
const BlobKey = "inbox"

// Store holds deferred thoughts in most-recent-first order. All mutations
// are serialized under one mutex and flush the full collection to the blob
// store before returning, reporting the write result to the caller.
type Store struct {
	mu       sync.Mutex
	blobs    blobstore.Store
	logger   *slog.Logger
	thoughts []domain.Thought
}

// NewStore loads the persisted inbox. A missing or corrupt blob yields an
// empty inbox: corruption is logged, never surfaced.
func NewStore(ctx context.Context, blobs blobstore.Store, logger *slog.Logger) *Store {
	s := &Store{blobs: blobs, logger: logger}

	data, err := blobs.Load(ctx, BlobKey)
	if err != nil {
		if !errors.Is(err, blobstore.ErrNoBlob) {
			logger.Warn("failed to load inbox, starting empty", "error", err)
		}
		return s
	}
	if err := json.Unmarshal(data, &s.thoughts); err != nil {
		logger.Warn("corrupt inbox blob, starting empty", "error", err)
		s.thoughts = nil
	}
	return s
}

// Capture inserts a new thought at the head of the inbox.
func (s *Store) Capture(ctx context.Context, text string) (domain.Thought, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	thought := domain.NewThought(text)
	s.thoughts = append([]domain.Thought{thought}, s.thoughts...)

	if err := s.persist(ctx); err != nil {
		s.thoughts = s.thoughts[1:]
		return domain.Thought{}, err
	}
	return thought, nil
}

// Remove deletes the thought with the given identity. Removing an absent
// identity is a no-op, not an error.
func (s *Store) Remove(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, thought := range s.thoughts {
		if thought.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}

	removed := s.thoughts[idx]
	s.thoughts = append(s.thoughts[:idx:idx], s.thoughts[idx+1:]...)

	if err := s.persist(ctx); err != nil {
		rest := s.thoughts[idx:]
		s.thoughts = append(append(s.thoughts[:idx:idx], removed), rest...)
		return err
	}
	return nil
}

// Find returns the thought with the given identity.
func (s *Store) Find(id uuid.UUID) (domain.Thought, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, thought := range s.thoughts {
		if thought.ID == id {
			return thought, true
		}
	}
	return domain.Thought{}, false
}

// List returns the thoughts newest-first.
func (s *Store) List() []domain.Thought {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Thought, len(s.thoughts))
	copy(out, s.thoughts)
	return out
}

// persist writes the full collection. Callers hold the mutex.
func (s *Store) persist(ctx context.Context) error {
	data, err := json.Marshal(s.thoughts)
	if err != nil {
		return err
	}
	return s.blobs.Save(ctx, BlobKey, data)
}
