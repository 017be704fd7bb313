package search_products

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/storefront-service/internal/app/catalog/contracts"
	"github.com/light-bringer/storefront-service/internal/app/catalog/domain"
	"github.com/light-bringer/storefront-service/internal/app/catalog/store"
	"github.com/light-bringer/storefront-service/internal/testutil"
)

// brokenStore hands out a snapshot containing a nil record.
type brokenStore struct {
	contracts.ProductStore
}

func (b brokenStore) Snapshot() []*domain.Product {
	return append([]*domain.Product{nil}, b.ProductStore.Snapshot()...)
}

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

	t.Run("keeps relevance order by default", func(t *testing.T) {
		resp, err := q.Execute(ctx, &Request{Query: "iphone pro"})
		require.NoError(t, err)
		assert.False(t, resp.Degraded)
		assert.Equal(t, []string{"1", "6", "2", "3", "16e"}, ids(resp.Products))
	})

	t.Run("sort and refine", func(t *testing.T) {
		resp, err := q.Execute(ctx, &Request{
			Query:    "iphone pro",
			Sort:     "price-asc",
			MaxPrice: domain.MustMoney(110000),
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"3", "16e", "1"}, ids(resp.Products))
	})

	t.Run("blank query", func(t *testing.T) {
		resp, err := q.Execute(ctx, &Request{Query: "  "})
		require.NoError(t, err)
		assert.Empty(t, resp.Products)
	})

	t.Run("bad sort key", func(t *testing.T) {
		_, err := q.Execute(ctx, &Request{Query: "pro", Sort: "best"})
		assert.ErrorIs(t, err, domain.ErrInvalidSortKey)
	})
}

func TestQuery_Execute_Degraded(t *testing.T) {
	q := NewQuery(brokenStore{store.NewProducts(testutil.SampleCatalog())})

	resp, err := q.Execute(context.Background(), &Request{Query: "airpods"})
	require.NoError(t, err)
	assert.True(t, resp.Degraded)
	assert.Equal(t, []string{"3"}, ids(resp.Products))
}
