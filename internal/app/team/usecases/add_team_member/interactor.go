package add_team_member

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/light-bringer/storefront-service/internal/app/outbox"
	"github.com/light-bringer/storefront-service/internal/app/team/contracts"
	"github.com/light-bringer/storefront-service/internal/app/team/domain"
	"github.com/light-bringer/storefront-service/internal/pkg/clock"
	"github.com/light-bringer/storefront-service/internal/pkg/committer"
)

// Request contains the new member. An empty MemberID is replaced by a
// generated one.
type Request struct {
	MemberID   string
	Attributes domain.MemberAttributes
}

// Interactor handles the add team member use case.
type Interactor struct {
	store     contracts.MemberStore
	repo      contracts.MemberRepository
	outbox    outbox.Writer
	committer *committer.Committer
	clock     clock.Clock
}

// NewInteractor creates a new add team member interactor.
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

// Execute validates and stores a new member.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*domain.TeamMember, error) {
	id := req.MemberID
	if id == "" {
		id = uuid.New().String()
	}

	var created *domain.TeamMember

	err := i.store.Exclusive(func() error {
		if _, exists := i.store.Get(id); exists {
			return domain.ErrTeamMemberExists
		}

		member, err := domain.NewTeamMember(id, req.Attributes, i.clock.Now())
		if err != nil {
			return err
		}
		defer member.ClearEvents()

		if _, taken := i.store.ByEmail(member.Email()); taken {
			return domain.ErrEmailTaken
		}

		plan := committer.NewPlan()

		mut, err := i.repo.InsertMut(member)
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

		created = member
		return i.store.Insert(member)
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}
