package command

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tiempovital/admin-api/internal/api/metrics"
	"github.com/tiempovital/admin-api/internal/core/domain"
	"github.com/tiempovital/admin-api/internal/core/ports"
	rediscache "github.com/tiempovital/admin-api/internal/infrastructure/db/redis"
)

// OfficeCommandService owns all office mutations. Creation enforces the
// ownership invariant: userId must reference an existing user.
type OfficeCommandService struct {
	offices ports.OfficeRepository
	users   ports.UserRepository
	cache   *rediscache.EntityCache
	logger  zerolog.Logger
}

func NewOfficeCommandService(offices ports.OfficeRepository, users ports.UserRepository, cache *rediscache.EntityCache, logger zerolog.Logger) *OfficeCommandService {
	return &OfficeCommandService{offices: offices, users: users, cache: cache, logger: logger}
}

func (s *OfficeCommandService) validate(input ports.OfficeInput) error {
	if input.Name == "" || input.Address == "" || input.City == "" ||
		input.State == "" || input.ZipCode == "" || input.UserID == "" {
		return domain.ErrMissingFields
	}
	return nil
}

// ownerExists maps a missing owner to ErrOwnerNotFound so callers can tell
// "bad userId in the payload" apart from "office not found".
func (s *OfficeCommandService) ownerExists(ctx context.Context, userID string) error {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrOwnerNotFound
		}
		return err
	}
	return nil
}

// Create validates required fields, verifies the owner exists, rejects
// duplicate names and persists an office with a fresh server-assigned id.
func (s *OfficeCommandService) Create(ctx context.Context, input ports.OfficeInput) (*domain.Office, error) {
	if err := s.validate(input); err != nil {
		return nil, err
	}
	if err := s.ownerExists(ctx, input.UserID); err != nil {
		return nil, err
	}

	if _, err := s.offices.FindByName(ctx, input.Name); err == nil {
		return nil, domain.ErrOfficeExists
	} else if !errors.Is(err, domain.ErrOfficeNotFound) {
		return nil, err
	}

	office := &domain.Office{
		ID:      uuid.NewString(),
		Name:    input.Name,
		Address: input.Address,
		City:    input.City,
		State:   input.State,
		ZipCode: input.ZipCode,
		Image:   input.Image,
		UserID:  input.UserID,
	}

	created, err := s.offices.Create(ctx, office)
	if err != nil {
		return nil, err
	}

	metrics.EntityWritesTotal.WithLabelValues("office", "create").Inc()
	s.logger.Info().Str("office_id", created.ID).Str("user_id", created.UserID).Msg("office created")
	return created, nil
}

// Update re-validates required fields and writes under the path id,
// ignoring any id in the body.
func (s *OfficeCommandService) Update(ctx context.Context, id string, input ports.OfficeInput) (*domain.Office, error) {
	if err := s.validate(input); err != nil {
		return nil, err
	}

	existing, err := s.offices.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.UserID != existing.UserID {
		if err := s.ownerExists(ctx, input.UserID); err != nil {
			return nil, err
		}
	}

	if input.Name != existing.Name {
		if _, err := s.offices.FindByName(ctx, input.Name); err == nil {
			return nil, domain.ErrOfficeExists
		} else if !errors.Is(err, domain.ErrOfficeNotFound) {
			return nil, err
		}
	}

	image := existing.Image
	if input.Image != "" {
		image = input.Image
	}

	office := &domain.Office{
		ID:      id,
		Name:    input.Name,
		Address: input.Address,
		City:    input.City,
		State:   input.State,
		ZipCode: input.ZipCode,
		Image:   image,
		UserID:  input.UserID,
	}

	updated, err := s.offices.Update(ctx, id, office)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Invalidate(ctx, rediscache.Key("office", id)); err != nil {
		s.logger.Warn().Err(err).Str("office_id", id).Msg("office cache invalidation failed")
	}

	metrics.EntityWritesTotal.WithLabelValues("office", "update").Inc()
	s.logger.Info().Str("office_id", id).Msg("office updated")
	return updated, nil
}

// Delete removes the office after confirming it exists.
func (s *OfficeCommandService) Delete(ctx context.Context, id string) error {
	if _, err := s.offices.FindByID(ctx, id); err != nil {
		return err
	}

	if err := s.offices.Delete(ctx, id); err != nil {
		return err
	}

	if err := s.cache.Invalidate(ctx, rediscache.Key("office", id)); err != nil {
		s.logger.Warn().Err(err).Str("office_id", id).Msg("office cache invalidation failed")
	}

	metrics.EntityWritesTotal.WithLabelValues("office", "delete").Inc()
	s.logger.Info().Str("office_id", id).Msg("office deleted")
	return nil
}
