package delete_team_member

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/storefront-service/internal/app/outbox"
	"github.com/light-bringer/storefront-service/internal/app/team/repo"
	"github.com/light-bringer/storefront-service/internal/app/team/store"
	"github.com/light-bringer/storefront-service/internal/pkg/committer"
	"github.com/light-bringer/storefront-service/internal/testutil"
)

func setup() (*Interactor, *store.Roster, *testutil.RecordingApplier) {
	roster := store.NewRoster(testutil.SampleTeam())
	applier := &testutil.RecordingApplier{}
	interactor := NewInteractor(
		roster,
		repo.NewMemberRepo(),
		outbox.NewRepo(),
		committer.NewCommitter(applier),
		testutil.NewFixedClock(),
	)
	return interactor, roster, applier
}

func TestInteractor_Execute(t *testing.T) {
	interactor, roster, applier := setup()

	deleted, err := interactor.Execute(context.Background(), &Request{MemberID: "4"})
	require.NoError(t, err)
	assert.True(t, deleted)

	_, ok := roster.Get("4")
	assert.False(t, ok)
	assert.Len(t, roster.Snapshot(), 3)
	require.Equal(t, 1, applier.BatchCount())
	assert.Len(t, applier.LastBatch(), 2)
}

func TestInteractor_Execute_UnknownIsNoop(t *testing.T) {
	interactor, roster, applier := setup()

	deleted, err := interactor.Execute(context.Background(), &Request{MemberID: "99"})
	require.NoError(t, err)
	assert.False(t, deleted)
	assert.Len(t, roster.Snapshot(), 4)
	assert.Zero(t, applier.BatchCount())
}

func TestInteractor_Execute_CommitFailure(t *testing.T) {
	interactor, roster, applier := setup()
	applier.Err = errors.New("aborted")

	_, err := interactor.Execute(context.Background(), &Request{MemberID: "2"})
	assert.ErrorIs(t, err, applier.Err)

	_, ok := roster.Get("2")
	assert.True(t, ok)
}
