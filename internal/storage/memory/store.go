package memory

import (
	"context"
	"sync"

	"github.com/github-code-quality-study/review-api-P03/internal/domain"
)

// Store holds the review collection in insertion order for the process
// lifetime. Reads run concurrently; Append is the only writer.
type Store struct {
	mu      sync.RWMutex
	reviews []domain.Review
}

func New(seed []domain.Review) *Store {
	s := &Store{reviews: make([]domain.Review, len(seed))}
	copy(s.reviews, seed)
	return s
}

// List returns a snapshot copy so callers can filter and reorder
// without aliasing the backing array.
func (s *Store) List(ctx context.Context) ([]domain.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Review, len(s.reviews))
	copy(out, s.reviews)
	return out, nil
}

func (s *Store) Append(ctx context.Context, r domain.Review) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reviews = append(s.reviews, r)
	return nil
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.reviews)
}
