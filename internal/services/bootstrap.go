package services

import (
	"context"
	"fmt"
	"log"

	"cloud.google.com/go/spanner"

	catalog "github.com/light-bringer/storefront-service/internal/app/catalog/domain"
	catalogrepo "github.com/light-bringer/storefront-service/internal/app/catalog/repo"
	team "github.com/light-bringer/storefront-service/internal/app/team/domain"
	teamrepo "github.com/light-bringer/storefront-service/internal/app/team/repo"
	"github.com/light-bringer/storefront-service/internal/pkg/clock"
	"github.com/light-bringer/storefront-service/internal/pkg/committer"
	"github.com/light-bringer/storefront-service/internal/seed"
)

// loadCollections returns the starting catalog and roster. Without a client
// they come from the embedded seed. With one they are read from Spanner, and
// an empty database is seeded first.
func loadCollections(ctx context.Context, client *spanner.Client, comm *committer.Committer, clk clock.Clock) ([]*catalog.Product, []*team.TeamMember, error) {
	if client == nil {
		return SeedData(clk)
	}

	products, err := catalogrepo.NewLoader(client).LoadAll(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load products: %w", err)
	}
	members, err := teamrepo.NewLoader(client).LoadAll(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load team: %w", err)
	}
	if len(products) > 0 || len(members) > 0 {
		log.Printf("Loaded %d products and %d team members from Spanner", len(products), len(members))
		return products, members, nil
	}

	products, members, err = SeedData(clk)
	if err != nil {
		return nil, nil, err
	}
	plan, err := SeedPlan(products, members)
	if err != nil {
		return nil, nil, err
	}
	if err := comm.Apply(ctx, plan); err != nil {
		return nil, nil, fmt.Errorf("failed to write seed data: %w", err)
	}
	log.Printf("Seeded Spanner with %d products and %d team members", len(products), len(members))

	return products, members, nil
}

// SeedData reads the embedded seed catalog and roster.
func SeedData(clk clock.Clock) ([]*catalog.Product, []*team.TeamMember, error) {
	products, err := seed.Products()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load seed products: %w", err)
	}
	members, err := seed.Team(clk.Now())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load seed team: %w", err)
	}
	return products, members, nil
}

// SeedPlan builds the insert mutations for a seed catalog and roster.
func SeedPlan(products []*catalog.Product, members []*team.TeamMember) (*committer.CommitPlan, error) {
	productRepo := catalogrepo.NewProductRepo()
	memberRepo := teamrepo.NewMemberRepo()

	plan := committer.NewPlan()
	for _, p := range products {
		mut, err := productRepo.InsertMut(p)
		if err != nil {
			return nil, fmt.Errorf("seed product %s: %w", p.ID(), err)
		}
		plan.Add(mut)
	}
	for _, m := range members {
		mut, err := memberRepo.InsertMut(m)
		if err != nil {
			return nil, fmt.Errorf("seed member %s: %w", m.ID(), err)
		}
		plan.Add(mut)
	}
	return plan, nil
}
