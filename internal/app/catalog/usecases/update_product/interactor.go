package update_product

import (
	"context"
	"fmt"

	"github.com/light-bringer/storefront-service/internal/app/catalog/contracts"
	"github.com/light-bringer/storefront-service/internal/app/catalog/domain"
	"github.com/light-bringer/storefront-service/internal/app/outbox"
	"github.com/light-bringer/storefront-service/internal/pkg/clock"
	"github.com/light-bringer/storefront-service/internal/pkg/committer"
)

// Request contains the product to update and the fields to merge onto it.
type Request struct {
	ProductID string
	Patch     domain.ProductPatch
}

// Interactor handles the update product use case.
type Interactor struct {
	store     contracts.ProductStore
	repo      contracts.ProductRepository
	outbox    outbox.Writer
	committer *committer.Committer
	clock     clock.Clock
}

// NewInteractor creates a new update product interactor.
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

// Execute shallow-merges the patch onto the stored product. The stored
// record is left untouched when validation or the commit fails.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*domain.Product, error) {
	var updated *domain.Product

	err := i.store.Exclusive(func() error {
		existing, ok := i.store.Get(req.ProductID)
		if !ok {
			return domain.ErrProductNotFound
		}

		product := existing.Clone()
		defer product.ClearEvents()

		if err := product.ApplyPatch(req.Patch, i.clock.Now()); err != nil {
			return err
		}

		if !product.Changes().HasChanges() {
			updated = existing
			return nil
		}

		plan := committer.NewPlan()

		mut, err := i.repo.UpdateMut(product)
		if err != nil {
			return err
		}
		plan.Add(mut)

		eventMuts, err := outbox.EventMuts(i.outbox, product.DomainEvents())
		if err != nil {
			return err
		}
		plan.AddMultiple(eventMuts)

		if err := i.committer.Apply(ctx, plan); err != nil {
			return fmt.Errorf("failed to commit transaction: %w", err)
		}

		product.Changes().Clear()
		updated = product
		return i.store.Replace(product)
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}
