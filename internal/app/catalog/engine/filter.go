package engine

import (
	"github.com/light-bringer/storefront-service/internal/app/catalog/domain"
)

// PriceRange is an inclusive effective-price interval. A nil bound is open.
type PriceRange struct {
	Min *domain.Money
	Max *domain.Money
}

// Validate rejects ranges whose minimum exceeds the maximum.
func (r PriceRange) Validate() error {
	if r.Min != nil && r.Max != nil && r.Min.GreaterThan(r.Max) {
		return domain.ErrInvalidPriceRange
	}
	return nil
}

// Contains reports whether price lies within the range, bounds included.
func (r PriceRange) Contains(price *domain.Money) bool {
	if r.Min != nil && price.LessThan(r.Min) {
		return false
	}
	if r.Max != nil && price.GreaterThan(r.Max) {
		return false
	}
	return true
}

// IsOpen reports whether neither bound is set.
func (r PriceRange) IsOpen() bool {
	return r.Min == nil && r.Max == nil
}

// Filter keeps products whose subcategory is one of subcategories (when any
// are given) and whose effective price lies in rng (when given). The two
// filters are independent and combined with AND.
func Filter(products []*domain.Product, subcategories []string, rng *PriceRange) []*domain.Product {
	selected := make(map[string]struct{}, len(subcategories))
	for _, s := range subcategories {
		selected[s] = struct{}{}
	}

	return where(products, func(p *domain.Product) bool {
		if len(selected) > 0 {
			sub, ok := p.Subcategory()
			if !ok {
				return false
			}
			if _, hit := selected[sub]; !hit {
				return false
			}
		}
		if rng != nil && !rng.Contains(p.EffectivePrice()) {
			return false
		}
		return true
	})
}
