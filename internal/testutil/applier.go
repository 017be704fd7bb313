package testutil

import (
	"context"
	"sync"
	"time"

	"cloud.google.com/go/spanner"
)

// RecordingApplier is a committer.Applier that records every batch instead
// of writing it. Set Err to make Apply fail.
type RecordingApplier struct {
	mu      sync.Mutex
	Batches [][]*spanner.Mutation
	Err     error
}

// Apply records ms, or returns Err when set.
func (r *RecordingApplier) Apply(_ context.Context, ms []*spanner.Mutation, _ ...spanner.ApplyOption) (time.Time, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return time.Time{}, r.Err
	}
	r.Batches = append(r.Batches, ms)
	return FixedTime, nil
}

// BatchCount returns the number of applied batches.
func (r *RecordingApplier) BatchCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.Batches)
}

// LastBatch returns the most recent batch, or nil.
func (r *RecordingApplier) LastBatch() []*spanner.Mutation {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.Batches) == 0 {
		return nil
	}
	return r.Batches[len(r.Batches)-1]
}
