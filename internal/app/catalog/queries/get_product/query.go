package get_product

import (
	"context"

	"github.com/light-bringer/storefront-service/internal/app/catalog/contracts"
	"github.com/light-bringer/storefront-service/internal/app/catalog/domain"
	"github.com/light-bringer/storefront-service/internal/app/catalog/engine"
)

// Request contains the product ID to retrieve.
type Request struct {
	ProductID string
}

// Query handles the get product query use case.
type Query struct {
	store contracts.ProductStore
}

// NewQuery creates a new get product query.
func NewQuery(store contracts.ProductStore) *Query {
	return &Query{
		store: store,
	}
}

// Execute retrieves a product by ID.
func (q *Query) Execute(_ context.Context, req *Request) (*domain.Product, error) {
	product, ok := engine.ByID(q.store.Snapshot(), req.ProductID)
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return product, nil
}
