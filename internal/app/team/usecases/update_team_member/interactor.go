package update_team_member

import (
	"context"
	"fmt"

	"github.com/light-bringer/storefront-service/internal/app/outbox"
	"github.com/light-bringer/storefront-service/internal/app/team/contracts"
	"github.com/light-bringer/storefront-service/internal/app/team/domain"
	"github.com/light-bringer/storefront-service/internal/pkg/clock"
	"github.com/light-bringer/storefront-service/internal/pkg/committer"
)

// Request contains the member to update and the details to change.
type Request struct {
	MemberID string
	Patch    domain.MemberPatch
}

// Interactor handles the update team member use case.
type Interactor struct {
	store     contracts.MemberStore
	repo      contracts.MemberRepository
	outbox    outbox.Writer
	committer *committer.Committer
	clock     clock.Clock
}

// NewInteractor creates a new update team member interactor.
func NewInteractor(
	store contracts.MemberStore,
	repo contracts.MemberRepository,
	outboxWriter outbox.Writer,
	committer *committer.Committer,
	clock clock.Clock,
) *Interactor {
	return &Interactor{
		store:     store,
		repo:      repo,
		outbox:    outboxWriter,
		committer: committer,
		clock:     clock,
	}
}

// Execute merges the patch onto the stored member.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*domain.TeamMember, error) {
	var updated *domain.TeamMember

	err := i.store.Exclusive(func() error {
		existing, ok := i.store.Get(req.MemberID)
		if !ok {
			return domain.ErrTeamMemberNotFound
		}

		member := existing.Clone()
		defer member.ClearEvents()

		if err := member.ApplyPatch(req.Patch, i.clock.Now()); err != nil {
			return err
		}
		if !member.Changes().HasChanges() {
			updated = existing
			return nil
		}
		if other, taken := i.store.ByEmail(member.Email()); taken && other.ID() != member.ID() {
			return domain.ErrEmailTaken
		}

		plan := committer.NewPlan()

		mut, err := i.repo.UpdateMut(member)
		if err != nil {
			return err
		}
		plan.Add(mut)

		eventMuts, err := outbox.EventMuts(i.outbox, member.DomainEvents())
		if err != nil {
			return err
		}
		plan.AddMultiple(eventMuts)

		if err := i.committer.Apply(ctx, plan); err != nil {
			return fmt.Errorf("failed to commit transaction: %w", err)
		}

		member.Changes().Clear()
		updated = member
		return i.store.Replace(member)
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}
