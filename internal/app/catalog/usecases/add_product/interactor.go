package add_product

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/light-bringer/storefront-service/internal/app/catalog/contracts"
	"github.com/light-bringer/storefront-service/internal/app/catalog/domain"
	"github.com/light-bringer/storefront-service/internal/app/outbox"
	"github.com/light-bringer/storefront-service/internal/pkg/clock"
	"github.com/light-bringer/storefront-service/internal/pkg/committer"
)

// Request contains the data to add a product. Price and Stock are required.
type Request struct {
	ProductID      string // optional; generated when empty
	Name           string
	Category       string
	Subcategory    *string
	Price          *domain.Money
	DiscountPrice  *domain.Money
	Description    string
	Features       []string
	Specifications map[string]string
	Images         []string
	Stock          *int
	Rating         float64
	IsFeatured     bool
	IsNewArrival   bool
}

// Interactor handles the add product use case.
type Interactor struct {
	store     contracts.ProductStore
	repo      contracts.ProductRepository
	outbox    outbox.Writer
	committer *committer.Committer
	clock     clock.Clock
}

// NewInteractor creates a new add product interactor.
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

// Execute validates and adds the product, returning it.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*domain.Product, error) {
	id := req.ProductID
	if id == "" {
		id = uuid.New().String()
	}

	product, err := domain.NewProduct(id, domain.ProductAttributes{
		Name:           req.Name,
		Category:       req.Category,
		Subcategory:    req.Subcategory,
		Price:          req.Price,
		DiscountPrice:  req.DiscountPrice,
		Description:    req.Description,
		Features:       req.Features,
		Specifications: req.Specifications,
		Images:         req.Images,
		Stock:          req.Stock,
		Rating:         req.Rating,
		IsFeatured:     req.IsFeatured,
		IsNewArrival:   req.IsNewArrival,
	}, i.clock.Now())
	if err != nil {
		return nil, err
	}
	defer product.ClearEvents()

	err = i.store.Exclusive(func() error {
		if _, exists := i.store.Get(id); exists {
			return domain.ErrProductExists
		}

		plan := committer.NewPlan()

		mut, err := i.repo.InsertMut(product)
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

		return i.store.Insert(product)
	})
	if err != nil {
		return nil, err
	}

	return product, nil
}
