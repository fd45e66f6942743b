package ports

import (
	"context"

	"github.com/ulysse/cms-api/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, email, password, role string) (string, *domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
