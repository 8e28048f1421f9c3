package service

import (
	"context"
	"sync"
	"time"

	"github.com/freshsupply/marketplace-api/internal/core/domain"
)

// stubBuyerRepo is an in-memory BuyerRepository keyed by normalized email.
type stubBuyerRepo struct {
	mu        sync.Mutex
	byEmail   map[string]*domain.Buyer
	createErr error
	nextID    int
}

func newStubBuyerRepo() *stubBuyerRepo {
	return &stubBuyerRepo{byEmail: map[string]*domain.Buyer{}}
}

func (r *stubBuyerRepo) Create(_ context.Context, buyer *domain.Buyer) (*domain.Buyer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return nil, r.createErr
	}
	if _, ok := r.byEmail[buyer.Email]; ok {
		return nil, domain.ErrDuplicateEmail
	}
	r.nextID++
	buyer.ID = "buyer-" + string(rune('0'+r.nextID))
	r.byEmail[buyer.Email] = buyer
	return buyer, nil
}

func (r *stubBuyerRepo) FindByEmail(_ context.Context, email string) (*domain.Buyer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if b, ok := r.byEmail[email]; ok {
		return b, nil
	}
	return nil, domain.ErrPrincipalNotFound
}

func (r *stubBuyerRepo) FindByID(_ context.Context, id string) (*domain.Buyer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.byEmail {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, domain.ErrPrincipalNotFound
}

func (r *stubBuyerRepo) UpdateLastLogin(_ context.Context, id string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.byEmail {
		if b.ID == id {
			b.LastLoginAt = &at
			return nil
		}
	}
	return domain.ErrPrincipalNotFound
}

// stubSupplierRepo mirrors stubBuyerRepo for suppliers.
type stubSupplierRepo struct {
	mu      sync.Mutex
	byEmail map[string]*domain.Supplier
	nextID  int
}

func newStubSupplierRepo() *stubSupplierRepo {
	return &stubSupplierRepo{byEmail: map[string]*domain.Supplier{}}
}

func (r *stubSupplierRepo) Create(_ context.Context, supplier *domain.Supplier) (*domain.Supplier, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byEmail[supplier.Email]; ok {
		return nil, domain.ErrDuplicateEmail
	}
	r.nextID++
	supplier.ID = "supplier-" + string(rune('0'+r.nextID))
	r.byEmail[supplier.Email] = supplier
	return supplier, nil
}

func (r *stubSupplierRepo) FindByEmail(_ context.Context, email string) (*domain.Supplier, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.byEmail[email]; ok {
		return s, nil
	}
	return nil, domain.ErrPrincipalNotFound
}

func (r *stubSupplierRepo) FindByID(_ context.Context, id string) (*domain.Supplier, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.byEmail {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, domain.ErrPrincipalNotFound
}

func (r *stubSupplierRepo) UpdateLastLogin(_ context.Context, id string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.byEmail {
		if s.ID == id {
			s.LastLoginAt = &at
			return nil
		}
	}
	return domain.ErrPrincipalNotFound
}

// fakeHasher marks hashes with a prefix so tests can assert the plaintext was
// never stored while keeping Verify cheap.
type fakeHasher struct{}

func (fakeHasher) Hash(plain string) (string, error) { return "hashed:" + plain, nil }

func (fakeHasher) Verify(plain, hash string) bool { return hash == "hashed:"+plain }

// recordingAudit captures audit events for assertions.
type recordingAudit struct {
	mu     sync.Mutex
	events []domain.AuthEvent
}

func (a *recordingAudit) Record(event domain.AuthEvent) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.events = append(a.events, event)
}

func (a *recordingAudit) last() (domain.AuthEvent, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if len(a.events) == 0 {
		return domain.AuthEvent{}, false
	}
	return a.events[len(a.events)-1], true
}

// stubLimiter is a controllable LoginLimiter.
type stubLimiter struct {
	blocked  bool
	err      error
	failures int
	resets   int
}

func (l *stubLimiter) TooManyAttempts(context.Context, string) (bool, error) {
	return l.blocked, l.err
}

func (l *stubLimiter) RecordFailure(context.Context, string) error {
	l.failures++
	return nil
}

func (l *stubLimiter) Reset(context.Context, string) error {
	l.resets++
	return nil
}
