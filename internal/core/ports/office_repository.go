package ports

import (
	"context"

	"github.com/tiempovital/admin-api/internal/core/domain"
)

// OfficeRepository is the persistence boundary for offices. Lookups return
// domain.ErrOfficeNotFound when no row matches.
type OfficeRepository interface {
	FindAll(ctx context.Context) ([]domain.Office, error)
	FindByID(ctx context.Context, id string) (*domain.Office, error)
	FindByName(ctx context.Context, name string) (*domain.Office, error)
	FindByUserID(ctx context.Context, userID string) ([]domain.Office, error)
	Create(ctx context.Context, office *domain.Office) (*domain.Office, error)
	Update(ctx context.Context, id string, office *domain.Office) (*domain.Office, error)
	Delete(ctx context.Context, id string) error
	DeleteByUserID(ctx context.Context, userID string) error
}
