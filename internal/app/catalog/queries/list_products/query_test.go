package list_products

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/storefront-service/internal/app/catalog/domain"
	"github.com/light-bringer/storefront-service/internal/app/catalog/store"
	"github.com/light-bringer/storefront-service/internal/testutil"
)

func ids(list []*domain.Product) []string {
	out := make([]string, len(list))
	for i, p := range list {
		out[i] = p.ID()
	}
	return out
}

func TestQuery_Execute(t *testing.T) {
	q := NewQuery(store.NewProducts(testutil.SampleCatalog()))
	ctx := context.Background()

	tests := []struct {
		name string
		req  Request
		want []string
	}{
		{"everything, featured first", Request{}, []string{"1", "2", "3", "16e", "6"}},
		{"category", Request{Category: "iPhones", Sort: "price-asc"}, []string{"16e", "1", "6"}},
		{"category and subcategory", Request{Category: "iPhones", Subcategory: "Pro"}, []string{"1"}},
		{"featured only", Request{FeaturedOnly: true, Sort: "price-desc"}, []string{"2", "1"}},
		{"new arrivals", Request{NewArrivals: true, Sort: "newest"}, []string{"16e", "3"}},
		{"price range", Request{MinPrice: domain.MustMoney(100000), MaxPrice: domain.MustMoney(110000)}, []string{"1"}},
		{"min price only", Request{MinPrice: domain.MustMoney(115990), Sort: "price-asc"}, []string{"6", "2"}},
		{"subcategory filter", Request{Subcategories: []string{"Pro"}, Sort: "rating"}, []string{"1", "3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := tt.req
			got, err := q.Execute(ctx, &req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestQuery_Execute_Errors(t *testing.T) {
	q := NewQuery(store.NewProducts(testutil.SampleCatalog()))
	ctx := context.Background()

	_, err := q.Execute(ctx, &Request{Sort: "cheapest"})
	assert.ErrorIs(t, err, domain.ErrInvalidSortKey)

	_, err = q.Execute(ctx, &Request{MinPrice: domain.MustMoney(10), MaxPrice: domain.MustMoney(1)})
	assert.ErrorIs(t, err, domain.ErrInvalidPriceRange)
}
