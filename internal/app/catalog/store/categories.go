package store

import (
	"github.com/light-bringer/storefront-service/internal/app/catalog/domain"
)

// Categories is the read-only category tree.
type Categories struct {
	list []domain.Category
}

// NewCategories creates a category store in the given order.
func NewCategories(categories []domain.Category) *Categories {
	list := make([]domain.Category, len(categories))
	for i, c := range categories {
		list[i] = c.Clone()
	}
	return &Categories{list: list}
}

// All returns a copy of every category.
func (c *Categories) All() []domain.Category {
	out := make([]domain.Category, len(c.list))
	for i, cat := range c.list {
		out[i] = cat.Clone()
	}
	return out
}

// BySlug returns the category with the given slug.
func (c *Categories) BySlug(slug string) (domain.Category, bool) {
	for _, cat := range c.list {
		if cat.Slug == slug {
			return cat.Clone(), true
		}
	}
	return domain.Category{}, false
}
