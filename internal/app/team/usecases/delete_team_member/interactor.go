package delete_team_member

import (
	"context"
	"fmt"

	"github.com/light-bringer/storefront-service/internal/app/outbox"
	"github.com/light-bringer/storefront-service/internal/app/team/contracts"
	"github.com/light-bringer/storefront-service/internal/pkg/clock"
	"github.com/light-bringer/storefront-service/internal/pkg/committer"
)

// Request contains the member ID to delete.
type Request struct {
	MemberID string
}

// Interactor handles the delete team member use case.
type Interactor struct {
	store     contracts.MemberStore
	repo      contracts.MemberRepository
	outbox    outbox.Writer
	committer *committer.Committer
	clock     clock.Clock
}

// NewInteractor creates a new delete team member interactor.
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

// Execute removes the member and reports whether it existed. Deleting an
// unknown id is a no-op.
func (i *Interactor) Execute(ctx context.Context, req *Request) (bool, error) {
	deleted := false

	err := i.store.Exclusive(func() error {
		existing, ok := i.store.Get(req.MemberID)
		if !ok {
			return nil
		}

		member := existing.Clone()
		member.MarkDeleted(i.clock.Now())
		defer member.ClearEvents()

		plan := committer.NewPlan()
		plan.Add(i.repo.DeleteMut(member.ID()))

		eventMuts, err := outbox.EventMuts(i.outbox, member.DomainEvents())
		if err != nil {
			return err
		}
		plan.AddMultiple(eventMuts)

		if err := i.committer.Apply(ctx, plan); err != nil {
			return fmt.Errorf("failed to commit transaction: %w", err)
		}

		deleted = i.store.Delete(member.ID())
		return nil
	})
	if err != nil {
		return false, err
	}

	return deleted, nil
}
