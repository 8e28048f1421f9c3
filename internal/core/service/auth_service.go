package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/freshsupply/marketplace-api/internal/core/domain"
	"github.com/freshsupply/marketplace-api/internal/core/ports"
	"github.com/freshsupply/marketplace-api/internal/pkg/password"
	"github.com/freshsupply/marketplace-api/internal/pkg/token"
)

// LoginLimiter abstracts the per-handle attempt limiter (Redis). A nil limiter
// disables limiting; a limiter error fails open.
type LoginLimiter interface {
	TooManyAttempts(ctx context.Context, email string) (bool, error)
	RecordFailure(ctx context.Context, email string) error
	Reset(ctx context.Context, email string) error
}

// AuthService verifies credentials and issues session tokens for both
// principal variants.
type AuthService struct {
	buyers    ports.BuyerRepository
	suppliers ports.SupplierRepository
	hasher    password.Hasher
	issuer    *token.Issuer
	limiter   LoginLimiter
	audit     ports.AuditRecorder
	log       zerolog.Logger
}

func NewAuthService(
	buyers ports.BuyerRepository,
	suppliers ports.SupplierRepository,
	hasher password.Hasher,
	issuer *token.Issuer,
	limiter LoginLimiter,
	audit ports.AuditRecorder,
	log zerolog.Logger,
) *AuthService {
	return &AuthService{
		buyers:    buyers,
		suppliers: suppliers,
		hasher:    hasher,
		issuer:    issuer,
		limiter:   limiter,
		audit:     audit,
		log:       log,
	}
}

func (s *AuthService) LoginBuyer(ctx context.Context, email, pass string) (string, *domain.Buyer, error) {
	tok, p, err := s.login(ctx, email, pass, domain.RoleBuyer, func(ctx context.Context, email string) (domain.Principal, error) {
		return s.buyers.FindByEmail(ctx, email)
	}, s.buyers.UpdateLastLogin)
	if err != nil {
		return "", nil, err
	}
	return tok, p.(*domain.Buyer), nil
}

func (s *AuthService) LoginSupplier(ctx context.Context, email, pass string) (string, *domain.Supplier, error) {
	tok, p, err := s.login(ctx, email, pass, domain.RoleSupplier, func(ctx context.Context, email string) (domain.Principal, error) {
		return s.suppliers.FindByEmail(ctx, email)
	}, s.suppliers.UpdateLastLogin)
	if err != nil {
		return "", nil, err
	}
	return tok, p.(*domain.Supplier), nil
}

type principalLookup func(ctx context.Context, email string) (domain.Principal, error)
type lastLoginUpdate func(ctx context.Context, id string, at time.Time) error

// login is the shared credential check. An unknown email and a wrong password
// both return ErrInvalidCredentials: the caller must not be able to probe
// which addresses hold accounts.
func (s *AuthService) login(ctx context.Context, email, pass, role string, find principalLookup, touch lastLoginUpdate) (string, domain.Principal, error) {
	if email == "" || pass == "" {
		return "", nil, domain.ErrMissingCredentials
	}
	email = domain.NormalizeEmail(email)

	if s.limiter != nil {
		blocked, err := s.limiter.TooManyAttempts(ctx, email)
		if err != nil {
			s.log.Warn().Err(err).Msg("login limiter unavailable, failing open")
		} else if blocked {
			s.recordLogin(email, role, false, "rate limited")
			return "", nil, domain.ErrTooManyAttempts
		}
	}

	p, err := find(ctx, email)
	if err != nil {
		s.noteFailure(ctx, email)
		s.recordLogin(email, role, false, "unknown email")
		return "", nil, domain.ErrInvalidCredentials
	}

	acct := p.Identity()
	if !acct.IsActive {
		s.recordLogin(email, role, false, "inactive account")
		return "", nil, domain.ErrAccountInactive
	}

	if !s.hasher.Verify(pass, acct.PasswordHash) {
		s.noteFailure(ctx, email)
		s.recordLogin(email, role, false, "wrong password")
		return "", nil, domain.ErrInvalidCredentials
	}

	now := time.Now().UTC()
	if err := touch(ctx, acct.ID, now); err != nil {
		s.log.Warn().Err(err).Str("id", acct.ID).Msg("failed to update last login")
	} else {
		acct.LastLoginAt = &now
	}

	tok, err := s.issuer.Issue(p)
	if err != nil {
		return "", nil, err
	}

	if s.limiter != nil {
		if err := s.limiter.Reset(ctx, email); err != nil {
			s.log.Warn().Err(err).Msg("failed to reset login limiter")
		}
	}

	s.log.Info().Str("id", acct.ID).Str("role", role).Msg("login successful")
	s.recordLogin(email, role, true, "")
	return tok, p, nil
}

func (s *AuthService) noteFailure(ctx context.Context, email string) {
	if s.limiter == nil {
		return
	}
	if err := s.limiter.RecordFailure(ctx, email); err != nil {
		s.log.Warn().Err(err).Msg("failed to record login failure")
	}
}

func (s *AuthService) recordLogin(email, role string, success bool, reason string) {
	if s.audit == nil {
		return
	}
	s.audit.Record(domain.AuthEvent{
		Email:   email,
		Role:    role,
		Action:  domain.AuditLogin,
		Success: success,
		Reason:  reason,
		At:      time.Now().UTC(),
	})
}
