// Package store holds the in-memory catalog collections.
package store

import (
	"sync"

	"github.com/light-bringer/storefront-service/internal/app/catalog/domain"
)

// Products is a copy-on-write product collection in insertion order.
type Products struct {
	mu       sync.RWMutex
	products []*domain.Product

	// writers serializes read-modify-write sequences spanning a commit.
	writers sync.Mutex
}

// NewProducts creates a store holding products in the given order.
// Duplicate ids keep the first occurrence.
func NewProducts(products []*domain.Product) *Products {
	seen := make(map[string]struct{}, len(products))
	list := make([]*domain.Product, 0, len(products))
	for _, p := range products {
		if _, dup := seen[p.ID()]; dup {
			continue
		}
		seen[p.ID()] = struct{}{}
		list = append(list, p)
	}
	return &Products{products: list}
}

// Snapshot returns the current collection. The slice is never modified by
// the store after it is returned.
func (s *Products) Snapshot() []*domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.products
}

// Get returns the product with the given id.
func (s *Products) Get(id string) (*domain.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.indexOf(id)
	if i < 0 {
		return nil, false
	}
	return s.products[i], true
}

// Insert appends a new product.
func (s *Products) Insert(product *domain.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.indexOf(product.ID()) >= 0 {
		return domain.ErrProductExists
	}

	next := make([]*domain.Product, len(s.products), len(s.products)+1)
	copy(next, s.products)
	s.products = append(next, product)
	return nil
}

// Replace swaps the stored record with the same id, keeping its position.
func (s *Products) Replace(product *domain.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(product.ID())
	if i < 0 {
		return domain.ErrProductNotFound
	}

	next := make([]*domain.Product, len(s.products))
	copy(next, s.products)
	next[i] = product
	s.products = next
	return nil
}

// Delete removes the product with the given id and reports whether it existed.
func (s *Products) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return false
	}

	next := make([]*domain.Product, 0, len(s.products)-1)
	next = append(next, s.products[:i]...)
	next = append(next, s.products[i+1:]...)
	s.products = next
	return true
}

// Exclusive runs fn while no other Exclusive call is running. Readers are
// not blocked.
func (s *Products) Exclusive(fn func() error) error {
	s.writers.Lock()
	defer s.writers.Unlock()
	return fn()
}

// Len returns the number of products.
func (s *Products) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.products)
}

func (s *Products) indexOf(id string) int {
	for i, p := range s.products {
		if p.ID() == id {
			return i
		}
	}
	return -1
}
