package query

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/tiempovital/admin-api/internal/api/metrics"
	"github.com/tiempovital/admin-api/internal/core/domain"
	"github.com/tiempovital/admin-api/internal/core/ports"
	rediscache "github.com/tiempovital/admin-api/internal/infrastructure/db/redis"
)

// OfficeQueryService reads offices through an optional Redis read-through
// cache on the by-id lookup. Cache failures degrade to a store read; they
// are logged, never surfaced.
type OfficeQueryService struct {
	repo   ports.OfficeRepository
	cache  *rediscache.EntityCache
	logger zerolog.Logger
}

func NewOfficeQueryService(repo ports.OfficeRepository, cache *rediscache.EntityCache, logger zerolog.Logger) *OfficeQueryService {
	return &OfficeQueryService{repo: repo, cache: cache, logger: logger}
}

func (s *OfficeQueryService) FindAll(ctx context.Context) ([]domain.Office, error) {
	return s.repo.FindAll(ctx)
}

func (s *OfficeQueryService) FindByID(ctx context.Context, id string) (*domain.Office, error) {
	key := rediscache.Key("office", id)

	var cached domain.Office
	hit, err := s.cache.Get(ctx, key, &cached)
	if err != nil {
		s.logger.Warn().Err(err).Str("office_id", id).Msg("office cache read failed")
	}
	if hit {
		metrics.CacheLookupsTotal.WithLabelValues("hit").Inc()
		return &cached, nil
	}
	metrics.CacheLookupsTotal.WithLabelValues("miss").Inc()

	office, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, key, office); err != nil {
		s.logger.Warn().Err(err).Str("office_id", id).Msg("office cache write failed")
	}
	return office, nil
}

func (s *OfficeQueryService) FindByName(ctx context.Context, name string) (*domain.Office, error) {
	return s.repo.FindByName(ctx, name)
}

func (s *OfficeQueryService) FindByUserID(ctx context.Context, userID string) ([]domain.Office, error) {
	return s.repo.FindByUserID(ctx, userID)
}
