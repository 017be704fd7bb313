package domain

import (
	"time"

	"github.com/light-bringer/storefront-service/internal/pkg/changes"
)

// Field names for change tracking. They match the products table columns.
const (
	FieldName           = "name"
	FieldCategory       = "category"
	FieldSubcategory    = "subcategory"
	FieldPrice          = "price"
	FieldDiscountPrice  = "discount_price"
	FieldDescription    = "description"
	FieldFeatures       = "features"
	FieldSpecifications = "specifications"
	FieldImages         = "images"
	FieldStock          = "stock"
	FieldRating         = "rating"
	FieldReviews        = "reviews"
	FieldIsFeatured     = "is_featured"
	FieldIsNewArrival   = "is_new_arrival"
)

// MaxRating is the upper bound of the rating scale.
const MaxRating = 5.0

// Product is the aggregate root of the catalog.
//
// Records held by the catalog store are never mutated in place: admin
// operations Clone the stored record, change the clone and swap it in.
type Product struct {
	id             string
	name           string
	category       string
	subcategory    *string
	price          *Money
	discountPrice  *Money
	description    string
	features       []string
	specifications map[string]string
	images         []string
	stock          int
	rating         float64
	reviews        []Review
	isFeatured     bool
	isNewArrival   bool
	createdAt      time.Time
	updatedAt      time.Time

	changes *changes.Tracker
	events  []DomainEvent
}

// ProductAttributes carries the caller-supplied fields of a new product.
// Price and Stock are pointers so that "missing" can be told apart from zero.
type ProductAttributes struct {
	Name           string
	Category       string
	Subcategory    *string
	Price          *Money
	DiscountPrice  *Money
	Description    string
	Features       []string
	Specifications map[string]string
	Images         []string
	Stock          *int
	Rating         float64
	IsFeatured     bool
	IsNewArrival   bool
}

// ProductSnapshot is the complete, exported state of a product. It is used to
// rebuild aggregates from seed data or storage and to read them out.
type ProductSnapshot struct {
	ID             string
	Name           string
	Category       string
	Subcategory    *string
	Price          *Money
	DiscountPrice  *Money
	Description    string
	Features       []string
	Specifications map[string]string
	Images         []string
	Stock          int
	Rating         float64
	Reviews        []Review
	IsFeatured     bool
	IsNewArrival   bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewProduct creates a new Product aggregate. Missing or invalid required
// fields are rejected before anything is built.
func NewProduct(id string, attrs ProductAttributes, now time.Time) (*Product, error) {
	if id == "" {
		return nil, ErrEmptyID
	}
	if attrs.Price == nil {
		return nil, ErrMissingPrice
	}
	if attrs.Stock == nil {
		return nil, ErrMissingStock
	}

	p := &Product{
		id:             id,
		name:           attrs.Name,
		category:       attrs.Category,
		subcategory:    normalizeSubcategory(attrs.Subcategory),
		price:          attrs.Price,
		discountPrice:  attrs.DiscountPrice,
		description:    attrs.Description,
		features:       cloneStrings(attrs.Features),
		specifications: cloneSpecs(attrs.Specifications),
		images:         cloneStrings(attrs.Images),
		stock:          *attrs.Stock,
		rating:         attrs.Rating,
		reviews:        []Review{},
		isFeatured:     attrs.IsFeatured,
		isNewArrival:   attrs.IsNewArrival,
		createdAt:      now,
		updatedAt:      now,
		changes:        changes.NewTracker(),
		events:         make([]DomainEvent, 0),
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	p.recordEvent(&ProductAddedEvent{
		ProductID: p.id,
		Name:      p.name,
		Category:  p.category,
		Price:     p.price,
		AddedAt:   now,
	})

	return p, nil
}

// ReconstructProduct rebuilds a Product from a snapshot without validation or
// events. Callers loading untrusted data should call Validate.
func ReconstructProduct(s ProductSnapshot) *Product {
	reviews := append([]Review(nil), s.Reviews...)
	if reviews == nil {
		reviews = []Review{}
	}
	return &Product{
		id:             s.ID,
		name:           s.Name,
		category:       s.Category,
		subcategory:    normalizeSubcategory(s.Subcategory),
		price:          s.Price,
		discountPrice:  s.DiscountPrice,
		description:    s.Description,
		features:       cloneStrings(s.Features),
		specifications: cloneSpecs(s.Specifications),
		images:         cloneStrings(s.Images),
		stock:          s.Stock,
		rating:         s.Rating,
		reviews:        reviews,
		isFeatured:     s.IsFeatured,
		isNewArrival:   s.IsNewArrival,
		createdAt:      s.CreatedAt,
		updatedAt:      s.UpdatedAt,
		changes:        changes.NewTracker(),
		events:         make([]DomainEvent, 0),
	}
}

// Validate checks the product invariants.
func (p *Product) Validate() error {
	if p.id == "" {
		return ErrEmptyID
	}
	if p.name == "" {
		return ErrEmptyName
	}
	if p.category == "" {
		return ErrInvalidCategory
	}
	if p.price == nil {
		return ErrMissingPrice
	}
	if !p.price.IsPositive() {
		return ErrInvalidPrice
	}
	if p.stock < 0 {
		return ErrInvalidStock
	}
	if p.discountPrice != nil && (!p.discountPrice.IsPositive() || p.discountPrice.GreaterThan(p.price)) {
		return ErrInvalidDiscountPrice
	}
	if p.rating < 0 || p.rating > MaxRating {
		return ErrInvalidRating
	}
	return nil
}

// Getters
func (p *Product) ID() string                  { return p.id }
func (p *Product) Name() string                { return p.name }
func (p *Product) Category() string            { return p.category }
func (p *Product) Price() *Money               { return p.price }
func (p *Product) DiscountPrice() *Money       { return p.discountPrice }
func (p *Product) Description() string         { return p.description }
func (p *Product) Features() []string          { return p.features }
func (p *Product) Images() []string            { return p.images }
func (p *Product) Stock() int                  { return p.stock }
func (p *Product) Rating() float64             { return p.rating }
func (p *Product) Reviews() []Review           { return p.reviews }
func (p *Product) IsFeatured() bool            { return p.isFeatured }
func (p *Product) IsNewArrival() bool          { return p.isNewArrival }
func (p *Product) CreatedAt() time.Time        { return p.createdAt }
func (p *Product) UpdatedAt() time.Time        { return p.updatedAt }
func (p *Product) Changes() *changes.Tracker   { return p.changes }
func (p *Product) DomainEvents() []DomainEvent { return p.events }

// Subcategory returns the subcategory and whether one is set.
func (p *Product) Subcategory() (string, bool) {
	if p.subcategory == nil {
		return "", false
	}
	return *p.subcategory, true
}

// Specifications returns the spec key/value map. Callers must not modify it.
func (p *Product) Specifications() map[string]string {
	return p.specifications
}

// EffectivePrice is the price actually charged: the discount price when
// present, else the list price.
func (p *Product) EffectivePrice() *Money {
	if p.discountPrice != nil {
		return p.discountPrice
	}
	return p.price
}

// Snapshot returns a copy of the product state.
func (p *Product) Snapshot() ProductSnapshot {
	var sub *string
	if p.subcategory != nil {
		v := *p.subcategory
		sub = &v
	}
	return ProductSnapshot{
		ID:             p.id,
		Name:           p.name,
		Category:       p.category,
		Subcategory:    sub,
		Price:          p.price,
		DiscountPrice:  p.discountPrice,
		Description:    p.description,
		Features:       cloneStrings(p.features),
		Specifications: cloneSpecs(p.specifications),
		Images:         cloneStrings(p.images),
		Stock:          p.stock,
		Rating:         p.rating,
		Reviews:        append([]Review(nil), p.reviews...),
		IsFeatured:     p.isFeatured,
		IsNewArrival:   p.isNewArrival,
		CreatedAt:      p.createdAt,
		UpdatedAt:      p.updatedAt,
	}
}

// Clone returns a deep copy with a clean change tracker and no events.
func (p *Product) Clone() *Product {
	return ReconstructProduct(p.Snapshot())
}

// ProductPatch is a partial update. Nil fields are left unchanged.
// An empty Subcategory clears it; ClearDiscount removes the discount price.
type ProductPatch struct {
	Name           *string
	Category       *string
	Subcategory    *string
	Price          *Money
	DiscountPrice  *Money
	ClearDiscount  bool
	Description    *string
	Features       []string
	Specifications map[string]string
	Images         []string
	Stock          *int
	Rating         *float64
	IsFeatured     *bool
	IsNewArrival   *bool
}

// ApplyPatch shallow-merges the patch onto the product and validates the
// result. On error the product must be discarded; use it on a Clone.
func (p *Product) ApplyPatch(patch ProductPatch, now time.Time) error {
	if patch.Name != nil && *patch.Name != p.name {
		p.name = *patch.Name
		p.changes.MarkDirty(FieldName)
	}
	if patch.Category != nil && *patch.Category != p.category {
		p.category = *patch.Category
		p.changes.MarkDirty(FieldCategory)
	}
	if patch.Subcategory != nil {
		current, _ := p.Subcategory()
		if *patch.Subcategory != current {
			p.subcategory = normalizeSubcategory(patch.Subcategory)
			p.changes.MarkDirty(FieldSubcategory)
		}
	}
	if patch.Price != nil && !patch.Price.Equals(p.price) {
		p.price = patch.Price
		p.changes.MarkDirty(FieldPrice)
	}
	if patch.ClearDiscount {
		if p.discountPrice != nil {
			p.discountPrice = nil
			p.changes.MarkDirty(FieldDiscountPrice)
		}
	} else if patch.DiscountPrice != nil && (p.discountPrice == nil || !patch.DiscountPrice.Equals(p.discountPrice)) {
		p.discountPrice = patch.DiscountPrice
		p.changes.MarkDirty(FieldDiscountPrice)
	}
	if patch.Description != nil && *patch.Description != p.description {
		p.description = *patch.Description
		p.changes.MarkDirty(FieldDescription)
	}
	if patch.Features != nil {
		p.features = cloneStrings(patch.Features)
		p.changes.MarkDirty(FieldFeatures)
	}
	if patch.Specifications != nil {
		p.specifications = cloneSpecs(patch.Specifications)
		p.changes.MarkDirty(FieldSpecifications)
	}
	if patch.Images != nil {
		p.images = cloneStrings(patch.Images)
		p.changes.MarkDirty(FieldImages)
	}
	if patch.Stock != nil && *patch.Stock != p.stock {
		p.stock = *patch.Stock
		p.changes.MarkDirty(FieldStock)
	}
	if patch.Rating != nil && *patch.Rating != p.rating {
		p.rating = *patch.Rating
		p.changes.MarkDirty(FieldRating)
	}
	if patch.IsFeatured != nil && *patch.IsFeatured != p.isFeatured {
		p.isFeatured = *patch.IsFeatured
		p.changes.MarkDirty(FieldIsFeatured)
	}
	if patch.IsNewArrival != nil && *patch.IsNewArrival != p.isNewArrival {
		p.isNewArrival = *patch.IsNewArrival
		p.changes.MarkDirty(FieldIsNewArrival)
	}

	if err := p.Validate(); err != nil {
		return err
	}

	if !p.changes.HasChanges() {
		return nil
	}

	p.updatedAt = now
	p.recordEvent(&ProductUpdatedEvent{
		ProductID:     p.id,
		ChangedFields: p.changes.DirtyFields(),
		UpdatedAt:     now,
	})
	return nil
}

// ToggleFeatured flips the featured flag.
func (p *Product) ToggleFeatured(now time.Time) {
	p.isFeatured = !p.isFeatured
	p.updatedAt = now
	p.changes.MarkDirty(FieldIsFeatured)

	p.recordEvent(&ProductFeaturedToggledEvent{
		ProductID:  p.id,
		IsFeatured: p.isFeatured,
		ToggledAt:  now,
	})
}

// MarkDeleted records the deletion event. The store removes the record.
func (p *Product) MarkDeleted(now time.Time) {
	p.recordEvent(&ProductDeletedEvent{
		ProductID: p.id,
		DeletedAt: now,
	})
}

func (p *Product) recordEvent(event DomainEvent) {
	p.events = append(p.events, event)
}

// ClearEvents clears all recorded domain events (called after publishing).
func (p *Product) ClearEvents() {
	p.events = make([]DomainEvent, 0)
}

func normalizeSubcategory(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	v := *s
	return &v
}

func cloneStrings(in []string) []string {
	if in == nil {
		return []string{}
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func cloneSpecs(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
