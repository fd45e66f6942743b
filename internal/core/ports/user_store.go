package ports

import (
	"context"

	"github.com/ulysse/cms-api/internal/core/domain"
)

// UserStore is the credential store. Implementations enforce email
// uniqueness themselves: Create returns domain.ErrUserExists for a taken
// email and FindByEmail returns domain.ErrUserNotFound when nothing matches.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
