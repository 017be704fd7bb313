package list_events

import (
	"context"

	"github.com/light-bringer/storefront-service/internal/models/m_outbox"
)

const (
	defaultLimit = 100
	maxLimit     = 1000
)

// Request contains filtering parameters for listing events.
type Request struct {
	EventType   *string // e.g. "product.updated"
	AggregateID *string // product or team member id
	Status      *string // "pending", "completed", "failed"
	Limit       int
}

// EventsReadModel defines the interface for reading events.
type EventsReadModel interface {
	ListEvents(ctx context.Context, req *Request) ([]*m_outbox.Data, error)
}

// Query handles the list events query use case.
type Query struct {
	readModel EventsReadModel
}

// NewQuery creates a new list events query.
func NewQuery(readModel EventsReadModel) *Query {
	return &Query{
		readModel: readModel,
	}
}

// Execute retrieves events newest first. Limit is clamped to [1, 1000] and
// defaults to 100.
func (q *Query) Execute(ctx context.Context, req *Request) ([]*m_outbox.Data, error) {
	clamped := *req
	if clamped.Limit <= 0 {
		clamped.Limit = defaultLimit
	}
	if clamped.Limit > maxLimit {
		clamped.Limit = maxLimit
	}

	return q.readModel.ListEvents(ctx, &clamped)
}
