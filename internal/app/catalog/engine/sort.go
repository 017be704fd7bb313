package engine

import (
	"fmt"
	"slices"

	"github.com/light-bringer/storefront-service/internal/app/catalog/domain"
)

// SortKey selects an ordering for Sort.
type SortKey string

const (
	SortFeatured  SortKey = "featured"
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
	SortNewest    SortKey = "newest"
	SortRating    SortKey = "rating"
	// SortRelevance keeps the incoming order, e.g. search ranking.
	SortRelevance SortKey = "relevance"
)

// ParseSortKey parses a sort key. The empty string selects SortFeatured.
func ParseSortKey(s string) (SortKey, error) {
	switch key := SortKey(s); key {
	case "":
		return SortFeatured, nil
	case SortFeatured, SortPriceAsc, SortPriceDesc, SortNewest, SortRating, SortRelevance:
		return key, nil
	default:
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidSortKey, s)
	}
}

// Sort returns a reordered copy of products. All orderings are stable.
// Unknown keys behave like SortFeatured.
func Sort(products []*domain.Product, key SortKey) []*domain.Product {
	out := slices.Clone(products)
	if out == nil {
		out = []*domain.Product{}
	}

	switch key {
	case SortRelevance:
		return out
	case SortPriceAsc:
		slices.SortStableFunc(out, func(a, b *domain.Product) int {
			return a.EffectivePrice().Cmp(b.EffectivePrice())
		})
	case SortPriceDesc:
		slices.SortStableFunc(out, func(a, b *domain.Product) int {
			return b.EffectivePrice().Cmp(a.EffectivePrice())
		})
	case SortNewest:
		slices.SortStableFunc(out, func(a, b *domain.Product) int {
			return b.CreatedAt().Compare(a.CreatedAt())
		})
	case SortRating:
		slices.SortStableFunc(out, func(a, b *domain.Product) int {
			switch {
			case a.Rating() > b.Rating():
				return -1
			case a.Rating() < b.Rating():
				return 1
			default:
				return 0
			}
		})
	default:
		slices.SortStableFunc(out, func(a, b *domain.Product) int {
			switch {
			case a.IsFeatured() == b.IsFeatured():
				return 0
			case a.IsFeatured():
				return -1
			default:
				return 1
			}
		})
	}
	return out
}
