// Package command holds the write side of the command/query split. Command
// services validate input, assign server-side ids, and enforce entity
// invariants before anything reaches a store adapter.
package command

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tiempovital/admin-api/internal/api/metrics"
	"github.com/tiempovital/admin-api/internal/core/auth"
	"github.com/tiempovital/admin-api/internal/core/domain"
	"github.com/tiempovital/admin-api/internal/core/ports"
	rediscache "github.com/tiempovital/admin-api/internal/infrastructure/db/redis"
)

// UserCommandService owns all user mutations. Passwords are hashed here,
// before the store adapter ever sees them; ids are assigned here, never
// taken from the client.
type UserCommandService struct {
	users   ports.UserRepository
	offices ports.OfficeRepository
	hasher  *auth.PasswordHasher
	cache   *rediscache.EntityCache
	logger  zerolog.Logger
}

func NewUserCommandService(users ports.UserRepository, offices ports.OfficeRepository, hasher *auth.PasswordHasher, cache *rediscache.EntityCache, logger zerolog.Logger) *UserCommandService {
	return &UserCommandService{users: users, offices: offices, hasher: hasher, cache: cache, logger: logger}
}

// Create validates required fields, rejects duplicate emails, hashes the
// password and persists a user with a fresh server-assigned id.
func (s *UserCommandService) Create(ctx context.Context, input ports.UserInput) (*domain.User, error) {
	if input.Name == "" || input.Email == "" || input.Password == "" || input.Rol == "" {
		return nil, domain.ErrMissingFields
	}

	if _, err := s.users.FindByEmail(ctx, input.Email); err == nil {
		return nil, domain.ErrEmailExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	digest, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:       uuid.NewString(),
		Name:     input.Name,
		Email:    input.Email,
		Password: digest,
		Rol:      input.Rol,
		Image:    input.Image,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	metrics.EntityWritesTotal.WithLabelValues("user", "create").Inc()
	s.logger.Info().Str("user_id", created.ID).Str("email", created.Email).Msg("user created")
	return created, nil
}

// Update re-validates required fields and writes under the path id,
// ignoring any id in the body. The password is re-hashed only when a new
// plaintext is supplied; otherwise the stored digest is kept.
func (s *UserCommandService) Update(ctx context.Context, id string, input ports.UserInput) (*domain.User, error) {
	if input.Name == "" || input.Email == "" || input.Rol == "" {
		return nil, domain.ErrMissingFields
	}

	existing, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Email != existing.Email {
		if _, err := s.users.FindByEmail(ctx, input.Email); err == nil {
			return nil, domain.ErrEmailExists
		} else if !errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
	}

	password := existing.Password
	if input.Password != "" {
		if password, err = s.hasher.Hash(input.Password); err != nil {
			return nil, err
		}
	}

	image := existing.Image
	if input.Image != "" {
		image = input.Image
	}

	user := &domain.User{
		ID:       id,
		Name:     input.Name,
		Email:    input.Email,
		Password: password,
		Rol:      input.Rol,
		Image:    image,
	}

	updated, err := s.users.Update(ctx, id, user)
	if err != nil {
		return nil, err
	}

	metrics.EntityWritesTotal.WithLabelValues("user", "update").Inc()
	s.logger.Info().Str("user_id", id).Msg("user updated")
	return updated, nil
}

// Delete removes the user and cascades to the offices it owns.
func (s *UserCommandService) Delete(ctx context.Context, id string) error {
	if _, err := s.users.FindByID(ctx, id); err != nil {
		return err
	}

	owned, err := s.offices.FindByUserID(ctx, id)
	if err != nil {
		return err
	}
	if len(owned) > 0 {
		if err := s.offices.DeleteByUserID(ctx, id); err != nil {
			return err
		}
		keys := make([]string, 0, len(owned))
		for _, o := range owned {
			keys = append(keys, rediscache.Key("office", o.ID))
		}
		if err := s.cache.Invalidate(ctx, keys...); err != nil {
			s.logger.Warn().Err(err).Str("user_id", id).Msg("office cache invalidation failed")
		}
	}

	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}

	metrics.EntityWritesTotal.WithLabelValues("user", "delete").Inc()
	s.logger.Info().Str("user_id", id).Int("offices_removed", len(owned)).Msg("user deleted")
	return nil
}
