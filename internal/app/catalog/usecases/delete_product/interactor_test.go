package delete_product

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/storefront-service/internal/app/catalog/repo"
	"github.com/light-bringer/storefront-service/internal/app/catalog/store"
	"github.com/light-bringer/storefront-service/internal/app/outbox"
	"github.com/light-bringer/storefront-service/internal/pkg/committer"
	"github.com/light-bringer/storefront-service/internal/testutil"
)

func TestInteractor_Execute(t *testing.T) {
	products := store.NewProducts(testutil.SampleCatalog())
	applier := &testutil.RecordingApplier{}
	interactor := NewInteractor(products, repo.NewProductRepo(), outbox.NewRepo(), committer.NewCommitter(applier), testutil.NewFixedClock())
	ctx := context.Background()

	deleted, err := interactor.Execute(ctx, &Request{ProductID: "3"})
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.Equal(t, 4, products.Len())
	_, ok := products.Get("3")
	assert.False(t, ok)
	assert.Len(t, applier.LastBatch(), 2)

	deleted, err = interactor.Execute(ctx, &Request{ProductID: "3"})
	require.NoError(t, err)
	assert.False(t, deleted, "absent id is a no-op")
	assert.Equal(t, 1, applier.BatchCount())
}

func TestInteractor_Execute_MemoryOnly(t *testing.T) {
	products := store.NewProducts(testutil.SampleCatalog())
	interactor := NewInteractor(products, repo.NewProductRepo(), outbox.NewRepo(), committer.NewCommitter(nil), testutil.NewFixedClock())

	deleted, err := interactor.Execute(context.Background(), &Request{ProductID: "1"})
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.Equal(t, 4, products.Len())
}
