// Package session holds request-session state that never reaches
// durable storage. Today that is only the per-customer cart.
package session

import (
	"context"
	"sync"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/google/uuid"
)

const defaultCartTTL = 2 * time.Hour

type cartEntry struct {
	cart      entity.Cart
	expiresAt time.Time
}

// cartStore is an in-memory TTL map keyed by customer ID. Expired
// entries are dropped lazily on access and swept periodically.
type cartStore struct {
	mu      sync.Mutex
	entries map[uuid.UUID]cartEntry
	ttl     time.Duration
	now     func() time.Time
}

// NewCartStore creates a cart store with the given TTL; ttl <= 0 uses the default.
func NewCartStore(ttl time.Duration) repository.CartStore {
	if ttl <= 0 {
		ttl = defaultCartTTL
	}

	return &cartStore{
		entries: make(map[uuid.UUID]cartEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Get returns the customer's cart, or an empty cart when none exists.
func (s *cartStore) Get(_ context.Context, customerID uuid.UUID) (*entity.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[customerID]
	if !ok || s.now().After(entry.expiresAt) {
		delete(s.entries, customerID)

		return &entity.Cart{CustomerID: customerID}, nil
	}

	cart := cloneCart(&entry.cart)

	return cart, nil
}

// Put replaces the customer's cart and refreshes its TTL.
func (s *cartStore) Put(_ context.Context, cart *entity.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := cloneCart(cart)
	stored.UpdatedAt = s.now()
	s.entries[cart.CustomerID] = cartEntry{
		cart:      *stored,
		expiresAt: s.now().Add(s.ttl),
	}
	s.sweepLocked()

	return nil
}

// Clear removes the customer's cart.
func (s *cartStore) Clear(_ context.Context, customerID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, customerID)

	return nil
}

// sweepLocked drops expired entries. Called with the lock held.
func (s *cartStore) sweepLocked() {
	now := s.now()
	for id, entry := range s.entries {
		if now.After(entry.expiresAt) {
			delete(s.entries, id)
		}
	}
}

// cloneCart copies lines so callers cannot mutate stored state.
func cloneCart(cart *entity.Cart) *entity.Cart {
	lines := make([]entity.CartLine, len(cart.Lines))
	copy(lines, cart.Lines)

	return &entity.Cart{
		CustomerID: cart.CustomerID,
		Lines:      lines,
		UpdatedAt:  cart.UpdatedAt,
	}
}
