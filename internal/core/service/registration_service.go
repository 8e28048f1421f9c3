package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/freshsupply/marketplace-api/internal/core/domain"
	"github.com/freshsupply/marketplace-api/internal/core/ports"
	"github.com/freshsupply/marketplace-api/internal/pkg/password"
)

// RegistrationService creates buyer and supplier accounts.
type RegistrationService struct {
	buyers    ports.BuyerRepository
	suppliers ports.SupplierRepository
	hasher    password.Hasher
	audit     ports.AuditRecorder
	log       zerolog.Logger
}

func NewRegistrationService(
	buyers ports.BuyerRepository,
	suppliers ports.SupplierRepository,
	hasher password.Hasher,
	audit ports.AuditRecorder,
	log zerolog.Logger,
) *RegistrationService {
	return &RegistrationService{
		buyers:    buyers,
		suppliers: suppliers,
		hasher:    hasher,
		audit:     audit,
		log:       log,
	}
}

func (s *RegistrationService) RegisterBuyer(ctx context.Context, in ports.RegisterBuyerInput) (*domain.Buyer, error) {
	email := domain.NormalizeEmail(in.Email)

	// Cheap pre-check so the common duplicate case skips the hashing cost.
	// The unique index on the collection remains the final authority.
	if _, err := s.buyers.FindByEmail(ctx, email); err == nil {
		s.recordRegister(email, domain.RoleBuyer, false, "duplicate email")
		return nil, domain.ErrDuplicateEmail
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	buyer := &domain.Buyer{
		Account:       newAccount(email, hash, domain.RoleBuyer),
		ShopName:      in.ShopName,
		ShopOwnerName: in.ShopOwnerName,
		ShopLocation:  in.ShopLocation,
		ContactNumber: in.ContactNumber,
	}

	created, err := s.buyers.Create(ctx, buyer)
	if err != nil {
		s.recordRegister(email, domain.RoleBuyer, false, reasonOf(err))
		return nil, err
	}

	s.log.Info().Str("buyer_id", created.ID).Msg("buyer registered")
	s.recordRegister(email, domain.RoleBuyer, true, "")
	return created, nil
}

func (s *RegistrationService) RegisterSupplier(ctx context.Context, in ports.RegisterSupplierInput) (*domain.Supplier, error) {
	email := domain.NormalizeEmail(in.Email)

	if _, err := s.suppliers.FindByEmail(ctx, email); err == nil {
		s.recordRegister(email, domain.RoleSupplier, false, "duplicate email")
		return nil, domain.ErrDuplicateEmail
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	supplier := &domain.Supplier{
		Account:       newAccount(email, hash, domain.RoleSupplier),
		FullName:      in.FullName,
		ContactNumber: in.ContactNumber,
	}

	created, err := s.suppliers.Create(ctx, supplier)
	if err != nil {
		s.recordRegister(email, domain.RoleSupplier, false, reasonOf(err))
		return nil, err
	}

	s.log.Info().Str("supplier_id", created.ID).Msg("supplier registered")
	s.recordRegister(email, domain.RoleSupplier, true, "")
	return created, nil
}

func (s *RegistrationService) recordRegister(email, role string, success bool, reason string) {
	if s.audit == nil {
		return
	}
	s.audit.Record(domain.AuthEvent{
		Email:   email,
		Role:    role,
		Action:  domain.AuditRegister,
		Success: success,
		Reason:  reason,
		At:      time.Now().UTC(),
	})
}

func newAccount(email, hash, role string) domain.Account {
	now := time.Now().UTC()
	return domain.Account{
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		IsActive:     true,
		IsVerified:   false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func reasonOf(err error) string {
	if errors.Is(err, domain.ErrDuplicateEmail) {
		return "duplicate email"
	}
	return "store error"
}
