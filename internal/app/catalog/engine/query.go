package engine

import (
	"github.com/light-bringer/storefront-service/internal/app/catalog/domain"
)

// DefaultSimilarLimit is used by SimilarTo when limit <= 0.
const DefaultSimilarLimit = 4

// ByID returns the product with the given id.
func ByID(products []*domain.Product, id string) (*domain.Product, bool) {
	for _, p := range products {
		if p != nil && p.ID() == id {
			return p, true
		}
	}
	return nil, false
}

// ByCategory returns products whose category equals name exactly.
func ByCategory(products []*domain.Product, name string) []*domain.Product {
	return where(products, func(p *domain.Product) bool {
		return p.Category() == name
	})
}

// BySubcategory returns products matching both category and subcategory.
func BySubcategory(products []*domain.Product, category, subcategory string) []*domain.Product {
	return where(products, func(p *domain.Product) bool {
		sub, ok := p.Subcategory()
		return ok && p.Category() == category && sub == subcategory
	})
}

// Featured returns products flagged as featured.
func Featured(products []*domain.Product) []*domain.Product {
	return where(products, (*domain.Product).IsFeatured)
}

// NewArrivals returns products flagged as new arrivals.
func NewArrivals(products []*domain.Product) []*domain.Product {
	return where(products, (*domain.Product).IsNewArrival)
}

// ByPriceRange returns products whose effective price lies in [min, max].
func ByPriceRange(products []*domain.Product, min, max *domain.Money) []*domain.Product {
	rng := PriceRange{Min: min, Max: max}
	return where(products, func(p *domain.Product) bool {
		return rng.Contains(p.EffectivePrice())
	})
}

// SimilarTo returns up to limit other products in the same category as the
// product with the given id, in collection order. An unknown id yields none.
func SimilarTo(products []*domain.Product, id string, limit int) []*domain.Product {
	if limit <= 0 {
		limit = DefaultSimilarLimit
	}

	target, ok := ByID(products, id)
	if !ok {
		return []*domain.Product{}
	}

	out := make([]*domain.Product, 0, limit)
	for _, p := range products {
		if len(out) == limit {
			break
		}
		if p == nil || p.ID() == target.ID() {
			continue
		}
		if p.Category() == target.Category() {
			out = append(out, p)
		}
	}
	return out
}

func where(products []*domain.Product, keep func(*domain.Product) bool) []*domain.Product {
	out := make([]*domain.Product, 0)
	for _, p := range products {
		if p != nil && keep(p) {
			out = append(out, p)
		}
	}
	return out
}
