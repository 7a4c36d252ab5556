package ports

import (
	"context"

	"github.com/tiempovital/admin-api/internal/core/domain"
)

// AuthService authenticates users and issues session tokens.
type AuthService interface {
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	Register(ctx context.Context, input UserInput) (string, *domain.User, error)
}
