// Package store keeps shopping carts in process memory.
package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/light-bringer/storefront-service/internal/app/cart/domain"
	catalog "github.com/light-bringer/storefront-service/internal/app/catalog/domain"
	"github.com/light-bringer/storefront-service/internal/pkg/clock"
)

// ProductLookup resolves the product a cart line is built from.
type ProductLookup interface {
	Get(id string) (*catalog.Product, bool)
}

// Session limits used by NewSessions.
const (
	DefaultIdleTTL     = 24 * time.Hour
	DefaultMaxSessions = 10000
)

// Sessions maps cart session ids to carts. Carts handed out are clones.
// A cart untouched for longer than the idle TTL is gone, and opening a cart
// at capacity evicts the one idle the longest.
type Sessions struct {
	mu          sync.Mutex
	sessions    map[string]*session
	products    ProductLookup
	clock       clock.Clock
	idleTTL     time.Duration
	maxSessions int
}

type session struct {
	cart     *domain.Cart
	lastSeen time.Time
}

// NewSessions creates an empty session store with the default limits.
func NewSessions(products ProductLookup, clock clock.Clock) *Sessions {
	return NewSessionsWithLimits(products, clock, DefaultIdleTTL, DefaultMaxSessions)
}

// NewSessionsWithLimits creates an empty session store. A non-positive
// maxSessions is treated as 1.
func NewSessionsWithLimits(products ProductLookup, clock clock.Clock, idleTTL time.Duration, maxSessions int) *Sessions {
	if maxSessions < 1 {
		maxSessions = 1
	}
	return &Sessions{
		sessions:    make(map[string]*session),
		products:    products,
		clock:       clock,
		idleTTL:     idleTTL,
		maxSessions: maxSessions,
	}
}

// Create opens a new empty cart.
func (s *Sessions) Create() *domain.Cart {
	now := s.clock.Now()
	cart := domain.NewCart(uuid.New().String(), now)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.pruneExpired(now)
	if len(s.sessions) >= s.maxSessions {
		s.evictIdlest()
	}
	s.sessions[cart.ID()] = &session{cart: cart, lastSeen: now}

	return cart.Clone()
}

// Get returns a copy of the cart.
func (s *Sessions) Get(id string) (*domain.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	return sess.cart.Clone(), nil
}

// AddItem adds quantity units of a catalog product to the cart.
func (s *Sessions) AddItem(id, productID string, quantity int) (*domain.Cart, error) {
	product, ok := s.products.Get(productID)
	if !ok {
		return nil, catalog.ErrProductNotFound
	}
	return s.mutate(id, func(c *domain.Cart) error {
		return c.AddItem(product, quantity, s.clock.Now())
	})
}

// RemoveItem drops a line. Removing a product not in the cart is a no-op.
func (s *Sessions) RemoveItem(id, productID string) (*domain.Cart, error) {
	return s.mutate(id, func(c *domain.Cart) error {
		c.RemoveItem(productID, s.clock.Now())
		return nil
	})
}

// UpdateQuantity sets a line's quantity.
func (s *Sessions) UpdateQuantity(id, productID string, quantity int) (*domain.Cart, error) {
	return s.mutate(id, func(c *domain.Cart) error {
		return c.UpdateQuantity(productID, quantity, s.clock.Now())
	})
}

// Clear empties the cart.
func (s *Sessions) Clear(id string) (*domain.Cart, error) {
	return s.mutate(id, func(c *domain.Cart) error {
		c.Clear(s.clock.Now())
		return nil
	})
}

// mutate applies fn to a clone and stores the clone only when fn succeeds.
func (s *Sessions) mutate(id string, fn func(*domain.Cart) error) (*domain.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.lookup(id)
	if err != nil {
		return nil, err
	}

	next := sess.cart.Clone()
	if err := fn(next); err != nil {
		return nil, err
	}
	sess.cart = next
	return next.Clone(), nil
}

// lookup returns a live session and marks it as seen. An expired session
// is dropped. Callers hold mu.
func (s *Sessions) lookup(id string) (*session, error) {
	now := s.clock.Now()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, domain.ErrCartNotFound
	}
	if s.expired(sess, now) {
		delete(s.sessions, id)
		return nil, domain.ErrCartNotFound
	}
	sess.lastSeen = now
	return sess, nil
}

func (s *Sessions) expired(sess *session, now time.Time) bool {
	return s.idleTTL > 0 && now.Sub(sess.lastSeen) > s.idleTTL
}

func (s *Sessions) pruneExpired(now time.Time) {
	for id, sess := range s.sessions {
		if s.expired(sess, now) {
			delete(s.sessions, id)
		}
	}
}

func (s *Sessions) evictIdlest() {
	var (
		oldestID string
		oldest   time.Time
	)
	for id, sess := range s.sessions {
		if oldestID == "" || sess.lastSeen.Before(oldest) {
			oldestID, oldest = id, sess.lastSeen
		}
	}
	delete(s.sessions, oldestID)
}
