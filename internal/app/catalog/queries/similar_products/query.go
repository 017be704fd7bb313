package similar_products

import (
	"context"

	"github.com/light-bringer/storefront-service/internal/app/catalog/contracts"
	"github.com/light-bringer/storefront-service/internal/app/catalog/domain"
	"github.com/light-bringer/storefront-service/internal/app/catalog/engine"
)

// Request names the reference product. Limit <= 0 uses the default of 4.
type Request struct {
	ProductID string
	Limit     int
}

// Query handles the similar products query use case.
type Query struct {
	store contracts.ProductStore
}

// NewQuery creates a new similar products query.
func NewQuery(store contracts.ProductStore) *Query {
	return &Query{
		store: store,
	}
}

// Execute returns other products from the same category.
func (q *Query) Execute(_ context.Context, req *Request) ([]*domain.Product, error) {
	products := q.store.Snapshot()
	if _, ok := engine.ByID(products, req.ProductID); !ok {
		return nil, domain.ErrProductNotFound
	}
	return engine.SimilarTo(products, req.ProductID, req.Limit), nil
}
