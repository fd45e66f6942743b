package memory

import (
	"context"
	"sync"

	"github.com/ulysse/cms-api/internal/core/domain"
)

// ContactStore keeps inquiry submissions in memory.
type ContactStore struct {
	mu   sync.Mutex
	subs []domain.ContactSubmission
}

func NewContactStore() *ContactStore {
	return &ContactStore{}
}

func (s *ContactStore) Save(_ context.Context, sub *domain.ContactSubmission) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, *sub)
	return nil
}

// All returns a copy of every stored submission in arrival order.
func (s *ContactStore) All() []domain.ContactSubmission {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.ContactSubmission, len(s.subs))
	copy(out, s.subs)
	return out
}
