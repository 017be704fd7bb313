// Package testutil holds fixture builders shared by package tests.
package testutil

import (
	"time"

	"github.com/light-bringer/storefront-service/internal/app/catalog/domain"
	"github.com/light-bringer/storefront-service/internal/pkg/clock"
)

// FixedTime is the default timestamp used by fixtures.
var FixedTime = time.Date(2024, 9, 10, 0, 0, 0, 0, time.UTC)

// NewFixedClock creates a mock clock fixed at FixedTime.
func NewFixedClock() *clock.MockClock {
	return clock.NewMockClock(FixedTime)
}

// ProductBuilder helps create catalog products for tests with a fluent interface.
type ProductBuilder struct {
	snap domain.ProductSnapshot
}

// NewProductBuilder creates a builder with default values.
func NewProductBuilder(id string) *ProductBuilder {
	return &ProductBuilder{snap: domain.ProductSnapshot{
		ID:             id,
		Name:           "Test Product " + id,
		Category:       "Accessories",
		Price:          domain.MustMoney(1000),
		Description:    "Default description",
		Features:       []string{},
		Specifications: map[string]string{},
		Images:         []string{},
		Stock:          10,
		Rating:         4,
		CreatedAt:      FixedTime,
		UpdatedAt:      FixedTime,
	}}
}

// WithName sets the product name.
func (b *ProductBuilder) WithName(name string) *ProductBuilder {
	b.snap.Name = name
	return b
}

// WithDescription sets the description.
func (b *ProductBuilder) WithDescription(description string) *ProductBuilder {
	b.snap.Description = description
	return b
}

// WithCategory sets the category and, when sub is non-empty, the subcategory.
func (b *ProductBuilder) WithCategory(category, sub string) *ProductBuilder {
	b.snap.Category = category
	if sub != "" {
		b.snap.Subcategory = &sub
	} else {
		b.snap.Subcategory = nil
	}
	return b
}

// WithPrice sets the list price.
func (b *ProductBuilder) WithPrice(price int64) *ProductBuilder {
	b.snap.Price = domain.MustMoney(price)
	return b
}

// WithDiscount sets the discount price.
func (b *ProductBuilder) WithDiscount(price int64) *ProductBuilder {
	b.snap.DiscountPrice = domain.MustMoney(price)
	return b
}

// WithFeatures sets the feature list.
func (b *ProductBuilder) WithFeatures(features ...string) *ProductBuilder {
	b.snap.Features = features
	return b
}

// WithSpec adds one specification entry.
func (b *ProductBuilder) WithSpec(key, value string) *ProductBuilder {
	b.snap.Specifications[key] = value
	return b
}

// WithRating sets the rating.
func (b *ProductBuilder) WithRating(rating float64) *ProductBuilder {
	b.snap.Rating = rating
	return b
}

// WithStock sets the stock count.
func (b *ProductBuilder) WithStock(stock int) *ProductBuilder {
	b.snap.Stock = stock
	return b
}

// Featured marks the product as featured.
func (b *ProductBuilder) Featured() *ProductBuilder {
	b.snap.IsFeatured = true
	return b
}

// NewArrival marks the product as a new arrival.
func (b *ProductBuilder) NewArrival() *ProductBuilder {
	b.snap.IsNewArrival = true
	return b
}

// CreatedAt sets the creation timestamp.
func (b *ProductBuilder) CreatedAt(t time.Time) *ProductBuilder {
	b.snap.CreatedAt = t
	b.snap.UpdatedAt = t
	return b
}

// Build returns the product aggregate.
func (b *ProductBuilder) Build() *domain.Product {
	return domain.ReconstructProduct(b.snap)
}

// SampleCatalog returns a small catalog resembling the storefront seed.
func SampleCatalog() []*domain.Product {
	return []*domain.Product{
		NewProductBuilder("1").
			WithName("iPhone 15 Pro Max").
			WithDescription("The ultimate iPhone with titanium design").
			WithCategory("iPhones", "Pro").
			WithPrice(119990).WithDiscount(105990).
			WithFeatures("A17 Pro chip", "48MP Main camera").
			WithSpec("Display", "6.7-inch Super Retina XDR").
			WithRating(4.8).
			Featured().
			CreatedAt(time.Date(2023, 9, 22, 0, 0, 0, 0, time.UTC)).
			Build(),
		NewProductBuilder("2").
			WithName(`MacBook Pro 16"`).
			WithDescription("Supercharged by M3 Max for demanding workflows").
			WithCategory("Mac", "MacBook Pro").
			WithPrice(369900).
			WithFeatures("M3 Max chip", "Liquid Retina XDR display").
			WithSpec("Chip", "Apple M3 Max").
			WithRating(4.9).
			Featured().
			CreatedAt(time.Date(2023, 11, 7, 0, 0, 0, 0, time.UTC)).
			Build(),
		NewProductBuilder("3").
			WithName("AirPods Pro (2nd generation)").
			WithDescription("Active noise cancellation with adaptive audio").
			WithCategory("AirPods", "Pro").
			WithPrice(20990).WithDiscount(17890).
			WithFeatures("H2 chip", "USB-C charging case").
			WithRating(4.7).
			NewArrival().
			CreatedAt(time.Date(2023, 9, 22, 0, 0, 0, 0, time.UTC)).
			Build(),
		NewProductBuilder("16e").
			WithName("iPhone 16e").
			WithDescription("Powerful and affordable").
			WithCategory("iPhones", "").
			WithPrice(59990).
			WithFeatures("A18 chip").
			WithRating(4.5).
			NewArrival().
			CreatedAt(time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC)).
			Build(),
		NewProductBuilder("6").
			WithName("iPhone 15").
			WithDescription("Dynamic Island and a 48MP camera").
			WithCategory("iPhones", "iPhone 15 Series").
			WithPrice(129990).WithDiscount(115990).
			WithFeatures("A16 Bionic chip").
			WithRating(4.6).
			CreatedAt(time.Date(2024, 9, 10, 0, 0, 0, 0, time.UTC)).
			Build(),
	}
}

// SampleCategories returns the categories used by SampleCatalog.
func SampleCategories() []domain.Category {
	return []domain.Category{
		{ID: "1", Name: "Mac", Slug: "mac", Subcategories: []domain.Subcategory{
			{ID: "s6", Name: "MacBook Pro", Slug: "macbook-pro"},
		}},
		{ID: "2", Name: "iPhones", Slug: "iphones", Subcategories: []domain.Subcategory{
			{ID: "s1", Name: "iPhone 15 Series", Slug: "iphone-15"},
		}},
		{ID: "5", Name: "AirPods", Slug: "airpods"},
	}
}
