// Package memory holds the process-local stores used when no durable
// backend is available, plus the seeded content catalog.
package memory

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/ulysse/cms-api/internal/core/domain"
)

// UserStore is an ordered, process-local list of users. The existence check
// and the append in Create share one critical section, so concurrent
// registrations for the same email cannot both succeed.
type UserStore struct {
	mu    sync.Mutex
	users []domain.User
	now   func() time.Time
}

func NewUserStore() *UserStore {
	return &UserStore{now: time.Now}
}

func (s *UserStore) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(email); i >= 0 {
		u := s.users[i]
		return &u, nil
	}
	return nil, domain.ErrUserNotFound
}

func (s *UserStore) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(user.Email) >= 0 {
		return nil, domain.ErrUserExists
	}

	u := *user
	u.ID = strconv.Itoa(len(s.users) + 1)
	if u.CreatedAt.IsZero() {
		u.CreatedAt = s.now().UTC()
	}
	s.users = append(s.users, u)
	return &u, nil
}

// Len returns the number of stored users.
func (s *UserStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.users)
}

func (s *UserStore) indexOf(email string) int {
	for i := range s.users {
		if s.users[i].Email == email {
			return i
		}
	}
	return -1
}
