// Package service contains the application services: thin orchestration of
// one query service and one command service per entity, so handlers only
// ever see a single use-case surface.
package service

import (
	"context"

	"github.com/tiempovital/admin-api/internal/core/command"
	"github.com/tiempovital/admin-api/internal/core/domain"
	"github.com/tiempovital/admin-api/internal/core/ports"
	"github.com/tiempovital/admin-api/internal/core/query"
)

type UserService struct {
	queries  *query.UserQueryService
	commands *command.UserCommandService
}

func NewUserService(queries *query.UserQueryService, commands *command.UserCommandService) *UserService {
	return &UserService{queries: queries, commands: commands}
}

func (s *UserService) GetAll(ctx context.Context) ([]domain.User, error) {
	return s.queries.FindAll(ctx)
}

func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.queries.FindByID(ctx, id)
}

func (s *UserService) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.queries.FindByEmail(ctx, email)
}

func (s *UserService) Create(ctx context.Context, input ports.UserInput) (*domain.User, error) {
	return s.commands.Create(ctx, input)
}

func (s *UserService) Update(ctx context.Context, id string, input ports.UserInput) (*domain.User, error) {
	return s.commands.Update(ctx, id, input)
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	return s.commands.Delete(ctx, id)
}
