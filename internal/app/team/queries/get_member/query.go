package get_member

import (
	"context"

	"github.com/light-bringer/storefront-service/internal/app/team/contracts"
	"github.com/light-bringer/storefront-service/internal/app/team/domain"
)

// Request contains the member ID to retrieve.
type Request struct {
	MemberID string
}

// Query handles the get member query use case.
type Query struct {
	store contracts.MemberStore
}

// NewQuery creates a new get member query.
func NewQuery(store contracts.MemberStore) *Query {
	return &Query{store: store}
}

// Execute retrieves a member by ID.
func (q *Query) Execute(_ context.Context, req *Request) (*domain.TeamMember, error) {
	member, ok := q.store.Get(req.MemberID)
	if !ok {
		return nil, domain.ErrTeamMemberNotFound
	}
	return member, nil
}
