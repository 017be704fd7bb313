package contracts

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/storefront-service/internal/app/catalog/domain"
)

// ProductRepository builds product mutations.
// Repositories return mutations, they don't apply them (Golden Mutation Pattern).
type ProductRepository interface {
	// InsertMut creates a mutation for inserting a new product.
	InsertMut(product *domain.Product) (*spanner.Mutation, error)

	// UpdateMut creates a mutation for the dirty fields only. It returns a
	// nil mutation when nothing changed.
	UpdateMut(product *domain.Product) (*spanner.Mutation, error)

	// DeleteMut creates a mutation removing the product row.
	DeleteMut(productID string) *spanner.Mutation
}

// ProductLoader reads the whole catalog at startup.
type ProductLoader interface {
	LoadAll(ctx context.Context) ([]*domain.Product, error)
}
