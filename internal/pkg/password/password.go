// Package password isolates the one-way hashing of account secrets so the
// algorithm and work factor stay swappable behind a small interface.
package password

import "golang.org/x/crypto/bcrypt"

const (
	MinCost     = 10
	MaxCost     = 12
	DefaultCost = 12
)

// Hasher hashes and verifies account secrets. Implementations never retain or
// log the plaintext.
type Hasher interface {
	Hash(plain string) (string, error)
	Verify(plain, hash string) bool
}

// BcryptHasher implements Hasher with bcrypt. Comparison is constant-time,
// delegated to the underlying primitive.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a BcryptHasher with the given cost, clamped to
// [MinCost, MaxCost]. A non-positive cost selects DefaultCost.
func NewBcryptHasher(cost int) *BcryptHasher {
	switch {
	case cost <= 0:
		cost = DefaultCost
	case cost < MinCost:
		cost = MinCost
	case cost > MaxCost:
		cost = MaxCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(plain string) (string, error) {
	out, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func (h *BcryptHasher) Verify(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
