package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/tiempovital/admin-api/internal/api/metrics"
	"github.com/tiempovital/admin-api/internal/core/auth"
	"github.com/tiempovital/admin-api/internal/core/command"
	"github.com/tiempovital/admin-api/internal/core/domain"
	"github.com/tiempovital/admin-api/internal/core/ports"
	"github.com/tiempovital/admin-api/internal/core/query"
)

// AuthService orchestrates credential verification and token issuance on
// top of the user query/command services.
type AuthService struct {
	queries  *query.UserQueryService
	commands *command.UserCommandService
	hasher   *auth.PasswordHasher
	tokens   *auth.TokenManager
	logger   zerolog.Logger
}

func NewAuthService(queries *query.UserQueryService, commands *command.UserCommandService, hasher *auth.PasswordHasher, tokens *auth.TokenManager, logger zerolog.Logger) *AuthService {
	return &AuthService{queries: queries, commands: commands, hasher: hasher, tokens: tokens, logger: logger}
}

// Login authenticates email/password and returns a signed session token
// plus the authenticated user. The order matters: existence first, then
// credential verification, then issuance — an unknown email never reaches
// the verifier.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrMissingFields
	}

	user, err := s.queries.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.LoginAttemptsTotal.WithLabelValues("not_found").Inc()
		} else {
			metrics.LoginAttemptsTotal.WithLabelValues("error").Inc()
		}
		return "", nil, err
	}

	if !s.hasher.Verify(password, user.Password) {
		metrics.LoginAttemptsTotal.WithLabelValues("invalid_credentials").Inc()
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		metrics.LoginAttemptsTotal.WithLabelValues("error").Inc()
		return "", nil, err
	}

	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	s.logger.Info().Str("user_id", user.ID).Msg("login succeeded")
	return token, user, nil
}

// Register creates an account through the user command service and logs
// the new user straight in by issuing a token.
func (s *AuthService) Register(ctx context.Context, input ports.UserInput) (string, *domain.User, error) {
	user, err := s.commands.Create(ctx, input)
	if err != nil {
		if errors.Is(err, domain.ErrEmailExists) {
			metrics.RegistrationsTotal.WithLabelValues("conflict").Inc()
		} else if !errors.Is(err, domain.ErrMissingFields) {
			metrics.RegistrationsTotal.WithLabelValues("error").Inc()
		}
		return "", nil, err
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		metrics.RegistrationsTotal.WithLabelValues("error").Inc()
		return "", nil, err
	}

	metrics.RegistrationsTotal.WithLabelValues("created").Inc()
	s.logger.Info().Str("user_id", user.ID).Str("email", user.Email).Msg("user registered")
	return token, user, nil
}
