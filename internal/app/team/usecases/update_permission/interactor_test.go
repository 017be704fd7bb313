package update_permission

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

func TestInteractor_Execute(t *testing.T) {
	interactor, roster, applier := setup()
	before, _ := roster.Get("3")

	updated, err := interactor.Execute(context.Background(), &Request{
		MemberID: "3",
		Section:  domain.SectionOrders,
		Level:    domain.Write,
	})
	require.NoError(t, err)

	assert.Equal(t, domain.Write, updated.Permissions().Level(domain.SectionOrders))
	assert.Equal(t, domain.Read, updated.Permissions().Level(domain.SectionProducts), "other sections are kept")
	assert.Equal(t, domain.Read, before.Permissions().Level(domain.SectionOrders))
	assert.True(t, updated.Allows(domain.SectionOrders, domain.Write))

	require.Equal(t, 1, applier.BatchCount())
	assert.Len(t, applier.LastBatch(), 2)
}

func TestInteractor_Execute_SameLevelIsNoop(t *testing.T) {
	interactor, roster, applier := setup()
	before, _ := roster.Get("3")

	got, err := interactor.Execute(context.Background(), &Request{
		MemberID: "3",
		Section:  domain.SectionProducts,
		Level:    domain.Read,
	})
	require.NoError(t, err)
	assert.Same(t, before, got)
	assert.Zero(t, applier.BatchCount())
}

func TestInteractor_Execute_Errors(t *testing.T) {
	interactor, _, applier := setup()
	ctx := context.Background()

	_, err := interactor.Execute(ctx, &Request{MemberID: "99", Section: domain.SectionOrders, Level: domain.Read})
	assert.ErrorIs(t, err, domain.ErrTeamMemberNotFound)

	_, err = interactor.Execute(ctx, &Request{MemberID: "3", Section: "billing", Level: domain.Read})
	assert.ErrorIs(t, err, domain.ErrInvalidSection)

	_, err = interactor.Execute(ctx, &Request{MemberID: "3", Section: domain.SectionOrders, Level: domain.PermissionLevel(7)})
	assert.ErrorIs(t, err, domain.ErrInvalidPermissionLevel)

	assert.Zero(t, applier.BatchCount())
}
