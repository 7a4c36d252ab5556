package ports

import (
	"context"

	"github.com/tiempovital/admin-api/internal/core/domain"
)

// UserInput is the transient DTO for user writes. ID is never taken from
// the client; create assigns a fresh one and update forces the path value.
type UserInput struct {
	Name     string
	Email    string
	Password string
	Rol      string
	Image    string
}

// UserService is the use-case surface handlers talk to. Reads come from
// the query side, writes from the command side; handlers never reach
// either directly.
type UserService interface {
	GetAll(ctx context.Context) ([]domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, input UserInput) (*domain.User, error)
	Update(ctx context.Context, id string, input UserInput) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
