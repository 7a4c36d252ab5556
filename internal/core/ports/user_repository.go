package ports

import (
	"context"

	"github.com/tiempovital/admin-api/internal/core/domain"
)

// UserRepository is the only abstraction allowed to perform raw persistence
// I/O for users. Lookups return domain.ErrUserNotFound when no row matches;
// any other error is an infrastructure failure. Update and Delete are
// unconditional at this layer — existence checks happen one layer up.
type UserRepository interface {
	FindAll(ctx context.Context) ([]domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, id string, user *domain.User) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
