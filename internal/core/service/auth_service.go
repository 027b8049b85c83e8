package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/bugtrack/bugtrack-api/internal/api/metrics"
	"github.com/bugtrack/bugtrack-api/internal/auth"
	"github.com/bugtrack/bugtrack-api/internal/core/domain"
	"github.com/bugtrack/bugtrack-api/internal/core/ports"
)

// AuthService implements registration and credential verification. It never
// issues tokens; that composition happens in the login handler.
type AuthService struct {
	repo     ports.UserRepository
	hasher   *auth.PasswordHasher
	throttle ports.LoginThrottle
	audit    ports.AuditRecorder
	logger   zerolog.Logger
}

// NewAuthService wires the auth use cases. throttle and audit may be nil;
// both are optional controls layered on top of the core flow.
func NewAuthService(repo ports.UserRepository, hasher *auth.PasswordHasher, throttle ports.LoginThrottle, audit ports.AuditRecorder, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, hasher: hasher, throttle: throttle, audit: audit, logger: logger}
}

// Authenticate turns a username/password pair into the matching user.
// Unknown username and wrong password both return
// domain.ErrInvalidCredentials so the outward result never reveals which
// accounts exist.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	if s.throttled(ctx, username) {
		metrics.LoginsTotal.WithLabelValues("throttled").Inc()
		s.record(username, domain.AuditLoginThrottled, "")
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.noteFailure(ctx, username)
			return nil, domain.ErrInvalidCredentials
		}
		s.logger.Error().Err(err).Msg("user lookup failed")
		return nil, domain.ErrStoreUnavailable
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		s.noteFailure(ctx, username)
		return nil, domain.ErrInvalidCredentials
	}

	if s.throttle != nil {
		if err := s.throttle.ClearFailures(ctx, username); err != nil {
			s.logger.Warn().Err(err).Msg("throttle clear failed")
		}
	}
	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.record(username, domain.AuditLoginSucceeded, "")
	return user, nil
}

// Register creates a new account. The first admin may be registered without
// an admin token; after that, only an admin can mint another admin.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	if input.Username == "" || input.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	role := input.Role
	if role == "" {
		role = domain.RoleDeveloper
	}
	if !domain.ValidRole(role) {
		return nil, domain.ErrInvalidInput
	}

	if role == domain.RoleAdmin && input.ActorRole != domain.RoleAdmin {
		admins, err := s.repo.CountByRole(ctx, domain.RoleAdmin)
		if err != nil {
			s.logger.Error().Err(err).Msg("admin count failed")
			return nil, domain.ErrStoreUnavailable
		}
		if admins > 0 {
			return nil, domain.ErrForbidden
		}
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     input.Username,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			return nil, domain.ErrUserExists
		}
		s.logger.Error().Err(err).Msg("user insert failed")
		return nil, domain.ErrStoreUnavailable
	}

	metrics.RegistrationsTotal.WithLabelValues(role).Inc()
	s.record(input.Username, domain.AuditUserRegistered, role)
	return created, nil
}

func (s *AuthService) throttled(ctx context.Context, username string) bool {
	if s.throttle == nil {
		return false
	}
	blocked, err := s.throttle.TooManyFailures(ctx, username)
	if err != nil {
		// Throttle outage degrades open; bcrypt still paces attempts.
		s.logger.Warn().Err(err).Msg("throttle check failed")
		return false
	}
	return blocked
}

func (s *AuthService) noteFailure(ctx context.Context, username string) {
	metrics.LoginsTotal.WithLabelValues("failure").Inc()
	s.record(username, domain.AuditLoginFailed, "")
	if s.throttle == nil {
		return
	}
	if err := s.throttle.RecordFailure(ctx, username); err != nil {
		s.logger.Warn().Err(err).Msg("throttle record failed")
	}
}

func (s *AuthService) record(actor, action, subject string) {
	if s.audit == nil {
		return
	}
	s.audit.Record(domain.AuditEvent{
		Actor:     actor,
		Action:    action,
		Subject:   subject,
		Timestamp: time.Now().UTC(),
	})
}
