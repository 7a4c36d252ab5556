package ports

import (
	"context"

	"github.com/tiempovital/admin-api/internal/core/domain"
)

// OfficeInput is the transient DTO for office writes.
type OfficeInput struct {
	Name    string
	Address string
	City    string
	State   string
	ZipCode string
	Image   string
	UserID  string
}

type OfficeService interface {
	GetAll(ctx context.Context) ([]domain.Office, error)
	GetByID(ctx context.Context, id string) (*domain.Office, error)
	GetByName(ctx context.Context, name string) (*domain.Office, error)
	Create(ctx context.Context, input OfficeInput) (*domain.Office, error)
	Update(ctx context.Context, id string, input OfficeInput) (*domain.Office, error)
	Delete(ctx context.Context, id string) error
}
