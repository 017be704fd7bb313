package update_permission

import (
	"context"
	"fmt"

	"github.com/light-bringer/storefront-service/internal/app/outbox"
	"github.com/light-bringer/storefront-service/internal/app/team/contracts"
	"github.com/light-bringer/storefront-service/internal/app/team/domain"
	"github.com/light-bringer/storefront-service/internal/pkg/clock"
	"github.com/light-bringer/storefront-service/internal/pkg/committer"
)

// Request sets one section of a member's permission map.
type Request struct {
	MemberID string
	Section  domain.Section
	Level    domain.PermissionLevel
}

// Interactor handles the update permission use case.
type Interactor struct {
	store     contracts.MemberStore
	repo      contracts.MemberRepository
	outbox    outbox.Writer
	committer *committer.Committer
	clock     clock.Clock
}

// NewInteractor creates a new update permission interactor.
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

// Execute overwrites the level for one section. Other sections are kept.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*domain.TeamMember, error) {
	var updated *domain.TeamMember

	err := i.store.Exclusive(func() error {
		existing, ok := i.store.Get(req.MemberID)
		if !ok {
			return domain.ErrTeamMemberNotFound
		}

		member := existing.Clone()
		defer member.ClearEvents()

		changed, err := member.SetPermission(req.Section, req.Level, i.clock.Now())
		if err != nil {
			return err
		}
		if !changed {
			updated = existing
			return nil
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
