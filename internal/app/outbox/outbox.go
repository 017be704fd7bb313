// Package outbox turns domain events into outbox_events rows written in the
// same commit as the aggregate change, and reads them back.
package outbox

import (
	"encoding/json"
	"errors"
	"fmt"

	"cloud.google.com/go/spanner"
	"github.com/google/uuid"

	"github.com/light-bringer/storefront-service/internal/models/m_outbox"
)

// ErrEventsUnavailable is returned by the read model when the service runs
// without persistence.
var ErrEventsUnavailable = errors.New("event log requires persistence")

// DomainEvent is implemented by the events of every aggregate.
type DomainEvent interface {
	EventType() string
	AggregateID() string
}

// Record is an enriched domain event ready for persistence.
type Record struct {
	EventID     string
	EventType   string
	AggregateID string
	Payload     string // JSON
	Status      string
}

// Writer enriches events and builds their insert mutations.
type Writer interface {
	Enrich(event DomainEvent) (*Record, error)
	InsertMut(rec *Record) *spanner.Mutation
}

// Repo builds outbox mutations.
type Repo struct {
	model *m_outbox.Model
}

// NewRepo creates a new Repo.
func NewRepo() *Repo {
	return &Repo{model: m_outbox.NewModel()}
}

// Enrich converts a domain event to a pending outbox record. The payload is
// the JSON encoding of the event.
func (r *Repo) Enrich(event DomainEvent) (*Record, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s payload: %w", event.EventType(), err)
	}

	return &Record{
		EventID:     uuid.New().String(),
		EventType:   event.EventType(),
		AggregateID: event.AggregateID(),
		Payload:     string(payload),
		Status:      m_outbox.StatusPending,
	}, nil
}

// InsertMut creates a mutation for inserting an outbox record.
func (r *Repo) InsertMut(rec *Record) *spanner.Mutation {
	data := &m_outbox.Data{
		EventID:     rec.EventID,
		EventType:   rec.EventType,
		AggregateID: rec.AggregateID,
		Payload:     spanner.NullJSON{Value: json.RawMessage(rec.Payload), Valid: rec.Payload != ""},
		Status:      rec.Status,
	}
	return r.model.InsertMut(data)
}

// EventMuts enriches every event and returns their insert mutations.
func EventMuts[E DomainEvent](w Writer, events []E) ([]*spanner.Mutation, error) {
	muts := make([]*spanner.Mutation, 0, len(events))
	for _, event := range events {
		rec, err := w.Enrich(event)
		if err != nil {
			return nil, err
		}
		muts = append(muts, w.InsertMut(rec))
	}
	return muts, nil
}
