package engine

import (
	"fmt"
	"slices"
	"strings"

	"github.com/light-bringer/storefront-service/internal/app/catalog/domain"
)

// Relevance weights for multi-term search.
const (
	scoreWholeQueryInName = 10
	scoreTermInName       = 5
	scoreTermInDesc       = 3
	scoreTermInCategory   = 2
	scoreTermInSubcat     = 2
	scoreTermInSpecs      = 1
	scoreTermInFeatures   = 1
)

// SearchResult is the outcome of Search. When the scored search fails the
// result is still usable: Degraded is set, Fault carries the cause and
// Products holds the substring fallback.
type SearchResult struct {
	Products []*domain.Product
	Degraded bool
	Fault    error
}

// Search runs the scored search and falls back to a plain substring match
// if it fails. It never returns an error.
func Search(products []*domain.Product, query string) SearchResult {
	normalized := normalize(query)
	if normalized == "" {
		return SearchResult{Products: []*domain.Product{}}
	}

	found, err := scoredSearch(products, normalized)
	if err == nil {
		return SearchResult{Products: found}
	}

	return SearchResult{
		Products: substringSearch(products, normalized),
		Degraded: true,
		Fault:    err,
	}
}

func normalize(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// scoredSearch is the primary tier. query must already be normalized.
func scoredSearch(products []*domain.Product, query string) (found []*domain.Product, err error) {
	defer func() {
		if r := recover(); r != nil {
			found = nil
			err = fmt.Errorf("%w: %v", domain.ErrSearchFault, r)
		}
	}()

	for i, p := range products {
		if p == nil {
			return nil, fmt.Errorf("%w: nil product at index %d", domain.ErrSearchFault, i)
		}
	}

	exact := where(products, func(p *domain.Product) bool {
		return strings.ToLower(p.Name()) == query
	})
	if len(exact) > 0 {
		return exact, nil
	}

	terms := strings.Fields(query)
	if len(terms) == 1 {
		return where(products, func(p *domain.Product) bool {
			return matchesAnyField(p, terms[0])
		}), nil
	}

	type scored struct {
		product *domain.Product
		score   int
	}
	ranked := make([]scored, 0, len(products))
	for _, p := range products {
		if s := Score(p, query, terms); s > 0 {
			ranked = append(ranked, scored{product: p, score: s})
		}
	}
	slices.SortStableFunc(ranked, func(a, b scored) int {
		return b.score - a.score
	})

	found = make([]*domain.Product, len(ranked))
	for i, r := range ranked {
		found[i] = r.product
	}
	return found, nil
}

// Score computes the relevance of p for a normalized query split into terms.
func Score(p *domain.Product, query string, terms []string) int {
	name := strings.ToLower(p.Name())
	desc := strings.ToLower(p.Description())
	category := strings.ToLower(p.Category())
	sub, hasSub := p.Subcategory()
	sub = strings.ToLower(sub)

	score := 0
	if strings.Contains(name, query) {
		score += scoreWholeQueryInName
	}
	for _, term := range terms {
		if strings.Contains(name, term) {
			score += scoreTermInName
		}
		if strings.Contains(desc, term) {
			score += scoreTermInDesc
		}
		if strings.Contains(category, term) {
			score += scoreTermInCategory
		}
		if hasSub && strings.Contains(sub, term) {
			score += scoreTermInSubcat
		}
		if anySpecContains(p, term) {
			score += scoreTermInSpecs
		}
		if anyFeatureContains(p, term) {
			score += scoreTermInFeatures
		}
	}
	return score
}

// substringSearch is the fallback tier: the whole query matched as a
// substring against every searchable field. Nil records are skipped.
func substringSearch(products []*domain.Product, query string) []*domain.Product {
	return where(products, func(p *domain.Product) bool {
		return matchesAnyField(p, query)
	})
}

func matchesAnyField(p *domain.Product, term string) bool {
	if strings.Contains(strings.ToLower(p.Name()), term) ||
		strings.Contains(strings.ToLower(p.Description()), term) ||
		strings.Contains(strings.ToLower(p.Category()), term) {
		return true
	}
	if sub, ok := p.Subcategory(); ok && strings.Contains(strings.ToLower(sub), term) {
		return true
	}
	return anySpecContains(p, term) || anyFeatureContains(p, term)
}

func anySpecContains(p *domain.Product, term string) bool {
	for _, v := range p.Specifications() {
		if strings.Contains(strings.ToLower(v), term) {
			return true
		}
	}
	return false
}

func anyFeatureContains(p *domain.Product, term string) bool {
	for _, f := range p.Features() {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}
