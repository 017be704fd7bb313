// Package domain holds the session-local shopping cart.
package domain

import (
	"math"
	"time"

	catalog "github.com/light-bringer/storefront-service/internal/app/catalog/domain"
)

// Item is one cart line. Name, prices and image are copied from the
// product when the line is first added.
type Item struct {
	ProductID     string
	Name          string
	Price         *catalog.Money
	DiscountPrice *catalog.Money
	Image         string
	Quantity      int
}

// EffectivePrice is the discount price when present, else the list price.
func (i Item) EffectivePrice() *catalog.Money {
	if i.DiscountPrice != nil {
		return i.DiscountPrice
	}
	return i.Price
}

// Subtotal is the effective price times the quantity.
func (i Item) Subtotal() *catalog.Money {
	return i.EffectivePrice().MultiplyInt(i.Quantity)
}

// Cart is an ordered list of items, at most one per product.
type Cart struct {
	id        string
	items     []Item
	createdAt time.Time
	updatedAt time.Time
}

// NewCart creates an empty cart.
func NewCart(id string, now time.Time) *Cart {
	return &Cart{id: id, createdAt: now, updatedAt: now}
}

func (c *Cart) ID() string           { return c.id }
func (c *Cart) CreatedAt() time.Time { return c.createdAt }
func (c *Cart) UpdatedAt() time.Time { return c.updatedAt }

// Items returns a copy of the lines in the order they were added.
func (c *Cart) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// AddItem adds quantity units of product. Adding a product already in the
// cart increases that line's quantity and keeps its original snapshot. A
// merge that would overflow the line quantity is rejected.
func (c *Cart) AddItem(product *catalog.Product, quantity int, now time.Time) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}

	if i := c.indexOf(product.ID()); i >= 0 {
		if c.items[i].Quantity > math.MaxInt-quantity {
			return ErrInvalidQuantity
		}
		c.items[i].Quantity += quantity
		c.updatedAt = now
		return nil
	}

	item := Item{
		ProductID:     product.ID(),
		Name:          product.Name(),
		Price:         product.Price(),
		DiscountPrice: product.DiscountPrice(),
		Quantity:      quantity,
	}
	if images := product.Images(); len(images) > 0 {
		item.Image = images[0]
	}
	c.items = append(c.items, item)
	c.updatedAt = now
	return nil
}

// RemoveItem drops the line for productID and reports whether it existed.
func (c *Cart) RemoveItem(productID string, now time.Time) bool {
	i := c.indexOf(productID)
	if i < 0 {
		return false
	}
	c.items = append(c.items[:i:i], c.items[i+1:]...)
	c.updatedAt = now
	return true
}

// UpdateQuantity sets the quantity of an existing line. An unknown line is
// left alone.
func (c *Cart) UpdateQuantity(productID string, quantity int, now time.Time) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	if i := c.indexOf(productID); i >= 0 {
		c.items[i].Quantity = quantity
		c.updatedAt = now
	}
	return nil
}

// Clear empties the cart.
func (c *Cart) Clear(now time.Time) {
	c.items = nil
	c.updatedAt = now
}

// TotalItems is the sum of all quantities.
func (c *Cart) TotalItems() int {
	total := 0
	for _, item := range c.items {
		total += item.Quantity
	}
	return total
}

// TotalPrice is the sum of effective price times quantity over all lines.
func (c *Cart) TotalPrice() *catalog.Money {
	total := catalog.MustMoney(0)
	for _, item := range c.items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// Clone returns an independent copy.
func (c *Cart) Clone() *Cart {
	return &Cart{
		id:        c.id,
		items:     c.Items(),
		createdAt: c.createdAt,
		updatedAt: c.updatedAt,
	}
}

func (c *Cart) indexOf(productID string) int {
	for i, item := range c.items {
		if item.ProductID == productID {
			return i
		}
	}
	return -1
}
