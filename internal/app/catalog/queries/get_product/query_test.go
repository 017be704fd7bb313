package get_product

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/storefront-service/internal/app/catalog/domain"
	"github.com/light-bringer/storefront-service/internal/app/catalog/store"
	"github.com/light-bringer/storefront-service/internal/testutil"
)

func TestQuery_Execute(t *testing.T) {
	q := NewQuery(store.NewProducts(testutil.SampleCatalog()))

	p, err := q.Execute(context.Background(), &Request{ProductID: "16e"})
	require.NoError(t, err)
	assert.Equal(t, "iPhone 16e", p.Name())

	_, err = q.Execute(context.Background(), &Request{ProductID: "404"})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}
