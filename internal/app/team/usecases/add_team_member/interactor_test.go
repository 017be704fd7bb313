package add_team_member

import (
	"context"
	"errors"
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

func TestInteractor_Execute(t *testing.T) {
	interactor, roster, applier := setup()

	member, err := interactor.Execute(context.Background(), &Request{
		MemberID: "5",
		Attributes: domain.MemberAttributes{
			Name:  "  Paula Support ",
			Email: "Paula@Innovix.com",
			Role:  domain.RoleStaff,
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "Paula Support", member.Name())
	assert.Equal(t, "paula@innovix.com", member.Email())
	assert.Equal(t, domain.StatusActive, member.Status())
	assert.Equal(t, domain.DefaultPermissions(domain.RoleStaff).Complete(), member.Permissions())
	assert.Empty(t, member.DomainEvents())

	stored, ok := roster.Get("5")
	require.True(t, ok)
	assert.Same(t, member, stored)

	require.Equal(t, 1, applier.BatchCount())
	assert.Len(t, applier.LastBatch(), 2, "member row plus one outbox event")
}

func TestInteractor_Execute_GeneratesID(t *testing.T) {
	interactor, _, _ := setup()

	member, err := interactor.Execute(context.Background(), &Request{
		Attributes: domain.MemberAttributes{Name: "New", Email: "new@innovix.com", Role: domain.RoleManager},
	})
	require.NoError(t, err)
	assert.Len(t, member.ID(), 36)
}

func TestInteractor_Execute_Conflicts(t *testing.T) {
	interactor, _, applier := setup()
	ctx := context.Background()

	_, err := interactor.Execute(ctx, &Request{
		MemberID:   "2",
		Attributes: domain.MemberAttributes{Name: "Dup", Email: "dup@innovix.com", Role: domain.RoleStaff},
	})
	assert.ErrorIs(t, err, domain.ErrTeamMemberExists)

	_, err = interactor.Execute(ctx, &Request{
		MemberID:   "9",
		Attributes: domain.MemberAttributes{Name: "Dup", Email: "JOHN@innovix.com", Role: domain.RoleStaff},
	})
	assert.ErrorIs(t, err, domain.ErrEmailTaken)

	_, err = interactor.Execute(ctx, &Request{
		MemberID:   "9",
		Attributes: domain.MemberAttributes{Name: "Bad", Email: "bad@innovix.com", Role: "owner"},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidRole)

	assert.Zero(t, applier.BatchCount())
}

func TestInteractor_Execute_CommitFailure(t *testing.T) {
	interactor, roster, applier := setup()
	applier.Err = errors.New("unavailable")

	_, err := interactor.Execute(context.Background(), &Request{
		MemberID:   "5",
		Attributes: domain.MemberAttributes{Name: "P", Email: "p@innovix.com", Role: domain.RoleStaff},
	})
	assert.ErrorIs(t, err, applier.Err)

	_, ok := roster.Get("5")
	assert.False(t, ok)
}
