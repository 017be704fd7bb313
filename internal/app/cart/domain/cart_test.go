package domain

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalog "github.com/light-bringer/storefront-service/internal/app/catalog/domain"
)

var now = time.Date(2024, 9, 10, 0, 0, 0, 0, time.UTC)

func product(t *testing.T, id string, price int64, discount *catalog.Money) *catalog.Product {
	t.Helper()
	return catalog.ReconstructProduct(catalog.ProductSnapshot{
		ID:            id,
		Name:          "Product " + id,
		Category:      "Accessories",
		Price:         catalog.MustMoney(price),
		DiscountPrice: discount,
		Images:        []string{"/img/" + id + "-front.jpg", "/img/" + id + "-back.jpg"},
		Stock:         5,
		CreatedAt:     now,
		UpdatedAt:     now,
	})
}

func TestCart_AddItem(t *testing.T) {
	cart := NewCart("c1", now)
	a := product(t, "a", 100, nil)

	require.NoError(t, cart.AddItem(a, 1, now))
	require.NoError(t, cart.AddItem(a, 2, now))

	items := cart.Items()
	require.Len(t, items, 1, "same product merges into one line")
	assert.Equal(t, 3, items[0].Quantity)
	assert.Equal(t, "Product a", items[0].Name)
	assert.Equal(t, "/img/a-front.jpg", items[0].Image)

	assert.ErrorIs(t, cart.AddItem(a, 0, now), ErrInvalidQuantity)
	assert.Equal(t, 3, cart.TotalItems())
}

func TestCart_AddItem_RejectsQuantityOverflow(t *testing.T) {
	cart := NewCart("c1", now)
	a := product(t, "a", 100, nil)
	require.NoError(t, cart.AddItem(a, math.MaxInt-1, now))

	assert.ErrorIs(t, cart.AddItem(a, 2, now), ErrInvalidQuantity)
	assert.Equal(t, math.MaxInt-1, cart.TotalItems(), "rejected add leaves the line unchanged")

	require.NoError(t, cart.AddItem(a, 1, now))
	assert.Equal(t, math.MaxInt, cart.TotalItems())
}

func TestCart_Totals(t *testing.T) {
	cart := NewCart("c1", now)
	require.NoError(t, cart.AddItem(product(t, "a", 100, nil), 2, now))
	require.NoError(t, cart.AddItem(product(t, "b", 50, catalog.MustMoney(40)), 3, now))

	assert.Equal(t, 5, cart.TotalItems())
	assert.True(t, cart.TotalPrice().Equals(catalog.MustMoney(320)), "discount price is charged")

	empty := NewCart("c2", now)
	assert.True(t, empty.TotalPrice().IsZero())
	assert.Zero(t, empty.TotalItems())
}

func TestCart_UpdateQuantity(t *testing.T) {
	cart := NewCart("c1", now)
	require.NoError(t, cart.AddItem(product(t, "a", 100, nil), 1, now))

	require.NoError(t, cart.UpdateQuantity("a", 4, now))
	assert.Equal(t, 4, cart.TotalItems())

	assert.ErrorIs(t, cart.UpdateQuantity("a", 0, now), ErrInvalidQuantity)
	assert.Equal(t, 4, cart.TotalItems())

	require.NoError(t, cart.UpdateQuantity("missing", 2, now))
	assert.Len(t, cart.Items(), 1)
}

func TestCart_RemoveAndClear(t *testing.T) {
	cart := NewCart("c1", now)
	require.NoError(t, cart.AddItem(product(t, "a", 100, nil), 1, now))
	require.NoError(t, cart.AddItem(product(t, "b", 100, nil), 1, now))
	require.NoError(t, cart.AddItem(product(t, "c", 100, nil), 1, now))

	before := cart.Clone()
	assert.True(t, cart.RemoveItem("b", now))
	assert.False(t, cart.RemoveItem("b", now))

	items := cart.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "a", items[0].ProductID)
	assert.Equal(t, "c", items[1].ProductID)
	assert.Len(t, before.Items(), 3, "clone is unaffected")

	cart.Clear(now)
	assert.Empty(t, cart.Items())
}
