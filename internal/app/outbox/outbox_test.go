package outbox

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/storefront-service/internal/models/m_outbox"
)

type stubEvent struct {
	ID    string `json:"id"`
	Level string `json:"level"`
}

func (e *stubEvent) EventType() string   { return "team_member.permission_changed" }
func (e *stubEvent) AggregateID() string { return e.ID }

func TestRepo_Enrich(t *testing.T) {
	repo := NewRepo()

	rec, err := repo.Enrich(&stubEvent{ID: "2", Level: "write"})
	require.NoError(t, err)

	assert.NotEmpty(t, rec.EventID)
	assert.Equal(t, "team_member.permission_changed", rec.EventType)
	assert.Equal(t, "2", rec.AggregateID)
	assert.Equal(t, m_outbox.StatusPending, rec.Status)

	var payload map[string]string
	require.NoError(t, json.Unmarshal([]byte(rec.Payload), &payload))
	assert.Equal(t, "write", payload["level"])

	other, err := repo.Enrich(&stubEvent{ID: "2"})
	require.NoError(t, err)
	assert.NotEqual(t, rec.EventID, other.EventID)
}

func TestEventMuts(t *testing.T) {
	repo := NewRepo()

	muts, err := EventMuts(repo, []*stubEvent{{ID: "1"}, {ID: "2"}})
	require.NoError(t, err)
	assert.Len(t, muts, 2)

	muts, err = EventMuts(repo, []*stubEvent{})
	require.NoError(t, err)
	assert.Empty(t, muts)
}
