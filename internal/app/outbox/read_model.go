package outbox

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/light-bringer/storefront-service/internal/app/outbox/queries/list_events"
	"github.com/light-bringer/storefront-service/internal/models/m_outbox"
	"github.com/light-bringer/storefront-service/internal/pkg/query"
)

// EventsReadModel lists outbox events from Spanner.
type EventsReadModel struct {
	client *spanner.Client
}

// NewEventsReadModel creates a new EventsReadModel.
func NewEventsReadModel(client *spanner.Client) *EventsReadModel {
	return &EventsReadModel{client: client}
}

// ListEventsStatement builds the filtered, newest-first event query.
func ListEventsStatement(req *list_events.Request) spanner.Statement {
	q := query.From(m_outbox.TableName).Select(m_outbox.Columns()...)

	if req.EventType != nil {
		q = q.Where(query.Eq(m_outbox.EventType, *req.EventType))
	}
	if req.AggregateID != nil {
		q = q.Where(query.Eq(m_outbox.AggregateID, *req.AggregateID))
	}
	if req.Status != nil {
		q = q.Where(query.Eq(m_outbox.Status, *req.Status))
	}

	return q.OrderBy(m_outbox.CreatedAt, query.Desc).
		OrderBy(m_outbox.EventID, query.Asc).
		Limit(int64(req.Limit)).
		Build()
}

// ListEvents retrieves events from the outbox_events table with filtering.
func (r *EventsReadModel) ListEvents(ctx context.Context, req *list_events.Request) ([]*m_outbox.Data, error) {
	iter := r.client.Single().Query(ctx, ListEventsStatement(req))
	defer iter.Stop()

	events := make([]*m_outbox.Data, 0)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate events: %w", err)
		}

		var event m_outbox.Data
		if err := row.ToStruct(&event); err != nil {
			return nil, fmt.Errorf("failed to parse event: %w", err)
		}
		events = append(events, &event)
	}

	return events, nil
}

// DisabledReadModel is used when the service runs without Spanner.
type DisabledReadModel struct{}

// ListEvents always fails with ErrEventsUnavailable.
func (DisabledReadModel) ListEvents(context.Context, *list_events.Request) ([]*m_outbox.Data, error) {
	return nil, ErrEventsUnavailable
}
