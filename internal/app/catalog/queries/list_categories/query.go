package list_categories

import (
	"context"

	"github.com/light-bringer/storefront-service/internal/app/catalog/contracts"
	"github.com/light-bringer/storefront-service/internal/app/catalog/domain"
)

// Query serves the category tree.
type Query struct {
	store contracts.CategoryStore
}

// NewQuery creates a new list categories query.
func NewQuery(store contracts.CategoryStore) *Query {
	return &Query{
		store: store,
	}
}

// Execute returns every category.
func (q *Query) Execute(_ context.Context) []domain.Category {
	return q.store.All()
}

// BySlug returns one category.
func (q *Query) BySlug(_ context.Context, slug string) (domain.Category, error) {
	category, ok := q.store.BySlug(slug)
	if !ok {
		return domain.Category{}, domain.ErrCategoryNotFound
	}
	return category, nil
}
