package update_team_member

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/storefront-service/internal/app/outbox"
	"github.com/light-bringer/storefront-service/internal/app/team/domain"
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

func strPtr(s string) *string { return &s }

func TestInteractor_Execute_RoleChangeKeepsPermissions(t *testing.T) {
	interactor, roster, applier := setup()
	before, _ := roster.Get("3")
	role := domain.RoleManager

	updated, err := interactor.Execute(context.Background(), &Request{
		MemberID: "3",
		Patch:    domain.MemberPatch{Role: &role, Name: strPtr("Sarah Lead")},
	})
	require.NoError(t, err)

	assert.Equal(t, domain.RoleManager, updated.Role())
	assert.Equal(t, "Sarah Lead", updated.Name())
	assert.Equal(t, before.Permissions(), updated.Permissions())
	assert.False(t, updated.Changes().HasChanges())
	assert.Equal(t, "Sarah Staff", before.Name())

	require.Equal(t, 1, applier.BatchCount())
	assert.Len(t, applier.LastBatch(), 2)
}

func TestInteractor_Execute_Errors(t *testing.T) {
	interactor, _, applier := setup()
	ctx := context.Background()

	_, err := interactor.Execute(ctx, &Request{MemberID: "99"})
	assert.ErrorIs(t, err, domain.ErrTeamMemberNotFound)

	_, err = interactor.Execute(ctx, &Request{MemberID: "3", Patch: domain.MemberPatch{Email: strPtr("john@innovix.com")}})
	assert.ErrorIs(t, err, domain.ErrEmailTaken)

	status := domain.Status("suspended")
	_, err = interactor.Execute(ctx, &Request{MemberID: "3", Patch: domain.MemberPatch{Status: &status}})
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)

	assert.Zero(t, applier.BatchCount())
}

func TestInteractor_Execute_NoChanges(t *testing.T) {
	interactor, roster, applier := setup()
	before, _ := roster.Get("2")

	got, err := interactor.Execute(context.Background(), &Request{
		MemberID: "2",
		Patch:    domain.MemberPatch{Name: strPtr("John Manager")},
	})
	require.NoError(t, err)
	assert.Same(t, before, got)
	assert.Zero(t, applier.BatchCount())
}
