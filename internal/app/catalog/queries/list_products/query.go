package list_products

import (
	"context"

	"github.com/light-bringer/storefront-service/internal/app/catalog/contracts"
	"github.com/light-bringer/storefront-service/internal/app/catalog/domain"
	"github.com/light-bringer/storefront-service/internal/app/catalog/engine"
)

// Request selects and orders a slice of the catalog. Zero values select
// everything; the selectors are combined with AND.
type Request struct {
	Category      string
	Subcategory   string // requires Category
	FeaturedOnly  bool
	NewArrivals   bool
	MinPrice      *domain.Money
	MaxPrice      *domain.Money
	Subcategories []string // OR across entries
	Sort          string
}

// Query handles the list products query use case.
type Query struct {
	store contracts.ProductStore
}

// NewQuery creates a new list products query.
func NewQuery(store contracts.ProductStore) *Query {
	return &Query{
		store: store,
	}
}

// Execute returns the matching products in the requested order.
func (q *Query) Execute(_ context.Context, req *Request) ([]*domain.Product, error) {
	key, err := engine.ParseSortKey(req.Sort)
	if err != nil {
		return nil, err
	}
	rng := engine.PriceRange{Min: req.MinPrice, Max: req.MaxPrice}
	if err := rng.Validate(); err != nil {
		return nil, err
	}

	products := q.store.Snapshot()

	switch {
	case req.Category != "" && req.Subcategory != "":
		products = engine.BySubcategory(products, req.Category, req.Subcategory)
	case req.Category != "":
		products = engine.ByCategory(products, req.Category)
	}
	if req.FeaturedOnly {
		products = engine.Featured(products)
	}
	if req.NewArrivals {
		products = engine.NewArrivals(products)
	}

	var priceFilter *engine.PriceRange
	if !rng.IsOpen() {
		priceFilter = &rng
	}
	products = engine.Filter(products, req.Subcategories, priceFilter)

	return engine.Sort(products, key), nil
}
