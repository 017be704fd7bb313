package domain

import "time"

// DomainEvent is the base interface for all domain events.
type DomainEvent interface {
	EventType() string
	AggregateID() string
}

// ProductAddedEvent is emitted when a product is added to the catalog.
type ProductAddedEvent struct {
	ProductID string
	Name      string
	Category  string
	Price     *Money
	AddedAt   time.Time
}

func (e *ProductAddedEvent) EventType() string {
	return "product.added"
}

func (e *ProductAddedEvent) AggregateID() string {
	return e.ProductID
}

// ProductUpdatedEvent is emitted when a patch changes at least one field.
type ProductUpdatedEvent struct {
	ProductID     string
	ChangedFields []string
	UpdatedAt     time.Time
}

func (e *ProductUpdatedEvent) EventType() string {
	return "product.updated"
}

func (e *ProductUpdatedEvent) AggregateID() string {
	return e.ProductID
}

// ProductDeletedEvent is emitted when a product is removed from the catalog.
type ProductDeletedEvent struct {
	ProductID string
	DeletedAt time.Time
}

func (e *ProductDeletedEvent) EventType() string {
	return "product.deleted"
}

func (e *ProductDeletedEvent) AggregateID() string {
	return e.ProductID
}

// ProductFeaturedToggledEvent is emitted when the featured flag flips.
type ProductFeaturedToggledEvent struct {
	ProductID  string
	IsFeatured bool
	ToggledAt  time.Time
}

func (e *ProductFeaturedToggledEvent) EventType() string {
	return "product.featured_toggled"
}

func (e *ProductFeaturedToggledEvent) AggregateID() string {
	return e.ProductID
}
