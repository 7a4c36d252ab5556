package service

import (
	"context"

	"github.com/tiempovital/admin-api/internal/core/command"
	"github.com/tiempovital/admin-api/internal/core/domain"
	"github.com/tiempovital/admin-api/internal/core/ports"
	"github.com/tiempovital/admin-api/internal/core/query"
)

type OfficeService struct {
	queries  *query.OfficeQueryService
	commands *command.OfficeCommandService
}

func NewOfficeService(queries *query.OfficeQueryService, commands *command.OfficeCommandService) *OfficeService {
	return &OfficeService{queries: queries, commands: commands}
}

func (s *OfficeService) GetAll(ctx context.Context) ([]domain.Office, error) {
	return s.queries.FindAll(ctx)
}

func (s *OfficeService) GetByID(ctx context.Context, id string) (*domain.Office, error) {
	return s.queries.FindByID(ctx, id)
}

func (s *OfficeService) GetByName(ctx context.Context, name string) (*domain.Office, error) {
	return s.queries.FindByName(ctx, name)
}

func (s *OfficeService) Create(ctx context.Context, input ports.OfficeInput) (*domain.Office, error) {
	return s.commands.Create(ctx, input)
}

func (s *OfficeService) Update(ctx context.Context, id string, input ports.OfficeInput) (*domain.Office, error) {
	return s.commands.Update(ctx, id, input)
}

func (s *OfficeService) Delete(ctx context.Context, id string) error {
	return s.commands.Delete(ctx, id)
}
