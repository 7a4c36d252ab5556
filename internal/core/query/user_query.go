// Package query holds the read side of the command/query split. Query
// services never validate or mutate; they exist so the read path can grow
// caching and projections without touching write logic.
package query

import (
	"context"

	"github.com/tiempovital/admin-api/internal/core/domain"
	"github.com/tiempovital/admin-api/internal/core/ports"
)

// UserQueryService is a pass-through over the user store adapter. User
// lookups stay uncached: the cache serializes through the public JSON
// projection, which deliberately drops the password digest, and the write
// path needs the digest intact.
type UserQueryService struct {
	repo ports.UserRepository
}

func NewUserQueryService(repo ports.UserRepository) *UserQueryService {
	return &UserQueryService{repo: repo}
}

func (s *UserQueryService) FindAll(ctx context.Context) ([]domain.User, error) {
	return s.repo.FindAll(ctx)
}

func (s *UserQueryService) FindByID(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *UserQueryService) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.repo.FindByEmail(ctx, email)
}
