package outbox

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/light-bringer/storefront-service/internal/app/outbox/queries/list_events"
)

func TestListEventsStatement(t *testing.T) {
	t.Run("no filters", func(t *testing.T) {
		stmt := ListEventsStatement(&list_events.Request{Limit: 100})

		assert.Equal(t,
			"SELECT event_id, event_type, aggregate_id, payload, status, created_at, processed_at, retry_count, error_message "+
				"FROM outbox_events ORDER BY created_at DESC, event_id ASC LIMIT @limit",
			stmt.SQL)
		assert.Equal(t, map[string]interface{}{"limit": int64(100)}, stmt.Params)
	})

	t.Run("all filters", func(t *testing.T) {
		eventType := "product.updated"
		aggregateID := "1"
		status := "pending"

		stmt := ListEventsStatement(&list_events.Request{
			EventType:   &eventType,
			AggregateID: &aggregateID,
			Status:      &status,
			Limit:       10,
		})

		assert.Contains(t, stmt.SQL, "WHERE event_type = @p0 AND aggregate_id = @p1 AND status = @p2")
		assert.Equal(t, "product.updated", stmt.Params["p0"])
		assert.Equal(t, "1", stmt.Params["p1"])
		assert.Equal(t, "pending", stmt.Params["p2"])
	})
}

func TestDisabledReadModel(t *testing.T) {
	_, err := DisabledReadModel{}.ListEvents(context.Background(), &list_events.Request{})
	assert.ErrorIs(t, err, ErrEventsUnavailable)
}
