package list_members

import (
	"context"

	"github.com/light-bringer/storefront-service/internal/app/team/contracts"
	"github.com/light-bringer/storefront-service/internal/app/team/domain"
)

// Request optionally narrows the roster by role or status.
type Request struct {
	Role   *domain.Role
	Status *domain.Status
}

// Query lists team members in roster order.
type Query struct {
	store contracts.MemberStore
}

// NewQuery creates a new list members query.
func NewQuery(store contracts.MemberStore) *Query {
	return &Query{store: store}
}

// Execute returns the members matching every given filter.
func (q *Query) Execute(_ context.Context, req *Request) []*domain.TeamMember {
	all := q.store.Snapshot()
	out := make([]*domain.TeamMember, 0, len(all))
	for _, m := range all {
		if req.Role != nil && m.Role() != *req.Role {
			continue
		}
		if req.Status != nil && m.Status() != *req.Status {
			continue
		}
		out = append(out, m)
	}
	return out
}
