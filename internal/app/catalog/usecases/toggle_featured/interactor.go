package toggle_featured

import (
	"context"
	"fmt"

	"github.com/light-bringer/storefront-service/internal/app/catalog/contracts"
	"github.com/light-bringer/storefront-service/internal/app/catalog/domain"
	"github.com/light-bringer/storefront-service/internal/app/outbox"
	"github.com/light-bringer/storefront-service/internal/pkg/clock"
	"github.com/light-bringer/storefront-service/internal/pkg/committer"
)

// Request contains the product whose featured flag flips.
type Request struct {
	ProductID string
}

// Interactor handles the toggle featured use case.
type Interactor struct {
	store     contracts.ProductStore
	repo      contracts.ProductRepository
	outbox    outbox.Writer
	committer *committer.Committer
	clock     clock.Clock
}

// NewInteractor creates a new toggle featured interactor.
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

// Execute flips the flag and returns the updated product.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*domain.Product, error) {
	var updated *domain.Product

	err := i.store.Exclusive(func() error {
		existing, ok := i.store.Get(req.ProductID)
		if !ok {
			return domain.ErrProductNotFound
		}

		product := existing.Clone()
		defer product.ClearEvents()
		product.ToggleFeatured(i.clock.Now())

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
