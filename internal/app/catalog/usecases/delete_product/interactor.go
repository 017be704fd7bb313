package delete_product

import (
	"context"
	"fmt"

	"github.com/light-bringer/storefront-service/internal/app/catalog/contracts"
	"github.com/light-bringer/storefront-service/internal/app/outbox"
	"github.com/light-bringer/storefront-service/internal/pkg/clock"
	"github.com/light-bringer/storefront-service/internal/pkg/committer"
)

// Request contains the product ID to delete.
type Request struct {
	ProductID string
}

// Interactor handles the delete product use case.
type Interactor struct {
	store     contracts.ProductStore
	repo      contracts.ProductRepository
	outbox    outbox.Writer
	committer *committer.Committer
	clock     clock.Clock
}

// NewInteractor creates a new delete product interactor.
func NewInteractor(
	store contracts.ProductStore,
	repo contracts.ProductRepository,
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

// Execute removes the product. Deleting an unknown id is a no-op and reports
// false.
func (i *Interactor) Execute(ctx context.Context, req *Request) (bool, error) {
	deleted := false

	err := i.store.Exclusive(func() error {
		existing, ok := i.store.Get(req.ProductID)
		if !ok {
			return nil
		}

		product := existing.Clone()
		defer product.ClearEvents()
		product.MarkDeleted(i.clock.Now())

		plan := committer.NewPlan()
		plan.Add(i.repo.DeleteMut(product.ID()))

		eventMuts, err := outbox.EventMuts(i.outbox, product.DomainEvents())
		if err != nil {
			return err
		}
		plan.AddMultiple(eventMuts)

		if err := i.committer.Apply(ctx, plan); err != nil {
			return fmt.Errorf("failed to commit transaction: %w", err)
		}

		deleted = i.store.Delete(product.ID())
		return nil
	})

	return deleted, err
}
