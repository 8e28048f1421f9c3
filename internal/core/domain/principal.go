package domain

import (
	"errors"
	"strings"
	"time"
)

const (
	RoleBuyer    = "buyer"
	RoleSupplier = "supplier"
)

var ErrMissingCredentials = errors.New("email and password are required")
var ErrInvalidCredentials = errors.New("invalid email or password")
var ErrAccountInactive = errors.New("account is inactive")
var ErrDuplicateEmail = errors.New("account with this email already exists")
var ErrPrincipalNotFound = errors.New("account not found")
var ErrInvalidToken = errors.New("invalid token")
var ErrForbidden = errors.New("access forbidden")
var ErrTooManyAttempts = errors.New("too many login attempts")

// Account holds the credential fields shared by every principal variant.
// PasswordHash is excluded from every JSON rendering.
type Account struct {
	ID           string     `json:"id"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Role         string     `json:"role"`
	IsActive     bool       `json:"is_active"`
	IsVerified   bool       `json:"is_verified"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// Principal is the capability set shared by buyers and suppliers.
type Principal interface {
	Identity() *Account
	// DisplayName is the human-readable name embedded in session tokens.
	DisplayName() string
}

// Buyer is a shop that purchases from suppliers.
type Buyer struct {
	Account
	ShopName      string `json:"shop_name"`
	ShopOwnerName string `json:"shop_owner_name"`
	ShopLocation  string `json:"shop_location"`
	ContactNumber string `json:"contact_number"`
}

func (b *Buyer) Identity() *Account  { return &b.Account }
func (b *Buyer) DisplayName() string { return b.ShopOwnerName }

// Supplier sells produce into the marketplace.
type Supplier struct {
	Account
	FullName      string `json:"full_name"`
	ContactNumber string `json:"contact_number"`
}

func (s *Supplier) Identity() *Account  { return &s.Account }
func (s *Supplier) DisplayName() string { return s.FullName }

// NormalizeEmail applies the canonical form used for storage and lookups.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
