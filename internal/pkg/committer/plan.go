// Package committer collects the Spanner mutations produced by a use case
// and applies them in one commit.
//
// Use cases follow the same flow for every admin mutation:
//
//	// 1. Validate and build the changed aggregate (never touching the store)
//	product, err := existing.Clone().ApplyPatch(patch, now)
//
//	// 2. Repositories return mutations, they don't apply them
//	plan := committer.NewPlan()
//	mut, err := repo.UpdateMut(product)
//	plan.Add(mut)
//
//	// 3. Domain events go into the same plan as outbox rows
//	for _, event := range product.DomainEvents() {
//	    plan.Add(outboxRepo.InsertMut(outboxRepo.EnrichEvent(event, payload)))
//	}
//
//	// 4. Commit, then publish the new record to the in-memory store
//	if err := committer.Apply(ctx, plan); err != nil {
//	    return err
//	}
//	store.Replace(product)
//
// A Committer built without an Applier runs in memory-only mode: plans are
// built and counted but never sent anywhere, so a restart reverts the
// stores to their seed.
package committer

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/spanner"
)

// CommitPlan is an ordered batch of Spanner mutations.
type CommitPlan struct {
	mutations []*spanner.Mutation
}

// NewPlan creates a new empty CommitPlan.
func NewPlan() *CommitPlan {
	return &CommitPlan{
		mutations: make([]*spanner.Mutation, 0),
	}
}

// Add adds a mutation to the plan. Nil mutations are ignored so callers can
// pass through "nothing changed" results from repositories.
func (cp *CommitPlan) Add(mut *spanner.Mutation) {
	if mut != nil {
		cp.mutations = append(cp.mutations, mut)
	}
}

// AddMultiple adds multiple mutations to the plan.
func (cp *CommitPlan) AddMultiple(muts []*spanner.Mutation) {
	for _, mut := range muts {
		cp.Add(mut)
	}
}

// Mutations returns all collected mutations.
func (cp *CommitPlan) Mutations() []*spanner.Mutation {
	return cp.mutations
}

// IsEmpty returns true if the plan has no mutations.
func (cp *CommitPlan) IsEmpty() bool {
	return len(cp.mutations) == 0
}

// Count returns the number of mutations in the plan.
func (cp *CommitPlan) Count() int {
	return len(cp.mutations)
}

// Applier writes a batch of mutations atomically. *spanner.Client satisfies it.
type Applier interface {
	Apply(ctx context.Context, ms []*spanner.Mutation, opts ...spanner.ApplyOption) (time.Time, error)
}

// Committer applies CommitPlans.
type Committer struct {
	applier Applier
}

// NewCommitter creates a Committer backed by applier. A nil applier gives a
// memory-only committer.
func NewCommitter(applier Applier) *Committer {
	return &Committer{applier: applier}
}

// Persistent reports whether plans are actually written somewhere.
func (c *Committer) Persistent() bool {
	return c.applier != nil
}

// Apply commits the plan atomically.
func (c *Committer) Apply(ctx context.Context, plan *CommitPlan) error {
	if plan == nil || plan.IsEmpty() || c.applier == nil {
		return nil
	}

	if _, err := c.applier.Apply(ctx, plan.Mutations()); err != nil {
		return fmt.Errorf("failed to apply commit plan: %w", err)
	}

	return nil
}
