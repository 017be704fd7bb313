package contracts

import (
	"github.com/light-bringer/storefront-service/internal/app/catalog/domain"
)

// ProductStore is the in-memory catalog owned by the composition root.
//
// Stored records are immutable once published: writers swap whole records
// and Snapshot returns a slice that is never modified afterwards.
type ProductStore interface {
	Snapshot() []*domain.Product
	Get(id string) (*domain.Product, bool)
	Insert(product *domain.Product) error
	Replace(product *domain.Product) error
	Delete(id string) bool

	// Exclusive serializes admin mutations: fn runs while no other
	// Exclusive call is running.
	Exclusive(fn func() error) error
}

// CategoryStore serves the read-only category tree.
type CategoryStore interface {
	All() []domain.Category
	BySlug(slug string) (domain.Category, bool)
}
