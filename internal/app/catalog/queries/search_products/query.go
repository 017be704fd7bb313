package search_products

import (
	"context"
	"log"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/light-bringer/storefront-service/internal/app/catalog/contracts"
	"github.com/light-bringer/storefront-service/internal/app/catalog/domain"
	"github.com/light-bringer/storefront-service/internal/app/catalog/engine"
)

const meterName = "github.com/light-bringer/storefront-service/catalog"

// Request is a free-text search with optional refinement. Sort defaults to
// relevance, i.e. search ranking.
type Request struct {
	Query         string
	Sort          string
	Subcategories []string
	MinPrice      *domain.Money
	MaxPrice      *domain.Money
}

// Response carries the results and whether the fallback search produced them.
type Response struct {
	Products []*domain.Product
	Degraded bool
}

// Query handles the search products query use case.
type Query struct {
	store    contracts.ProductStore
	degraded metric.Int64Counter
}

// NewQuery creates a new search products query. The degraded-search counter
// is registered on the global meter provider.
func NewQuery(store contracts.ProductStore) *Query {
	counter, err := otel.Meter(meterName).Int64Counter(
		"catalog.search.degraded",
		metric.WithDescription("Searches answered by the substring fallback"),
	)
	if err != nil {
		log.Printf("search: degraded counter disabled: %v", err)
	}
	return &Query{
		store:    store,
		degraded: counter,
	}
}

// Execute runs the search. A failing scored search is not an error: the
// fallback results are returned with Degraded set.
func (q *Query) Execute(ctx context.Context, req *Request) (*Response, error) {
	key := engine.SortRelevance
	if req.Sort != "" {
		parsed, err := engine.ParseSortKey(req.Sort)
		if err != nil {
			return nil, err
		}
		key = parsed
	}
	rng := engine.PriceRange{Min: req.MinPrice, Max: req.MaxPrice}
	if err := rng.Validate(); err != nil {
		return nil, err
	}

	result := engine.Search(q.store.Snapshot(), req.Query)
	if result.Degraded {
		log.Printf("search: degraded to substring fallback for %q: %v", req.Query, result.Fault)
		if q.degraded != nil {
			q.degraded.Add(ctx, 1, metric.WithAttributes(attribute.Bool("has_results", len(result.Products) > 0)))
		}
	}

	var priceFilter *engine.PriceRange
	if !rng.IsOpen() {
		priceFilter = &rng
	}
	products := engine.Filter(result.Products, req.Subcategories, priceFilter)

	return &Response{
		Products: engine.Sort(products, key),
		Degraded: result.Degraded,
	}, nil
}
