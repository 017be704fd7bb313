package has_permission

import (
	"context"

	"github.com/light-bringer/storefront-service/internal/app/team/contracts"
	"github.com/light-bringer/storefront-service/internal/app/team/domain"
)

// Request names the member, the section and the minimum level required.
type Request struct {
	MemberID string
	Section  domain.Section
	MinLevel domain.PermissionLevel
}

// Query answers permission checks against the roster.
type Query struct {
	store contracts.MemberStore
}

// NewQuery creates a new has permission query.
func NewQuery(store contracts.MemberStore) *Query {
	return &Query{store: store}
}

// Execute reports whether the member may act on the section. An unknown
// member is denied rather than reported as an error.
func (q *Query) Execute(_ context.Context, req *Request) bool {
	member, ok := q.store.Get(req.MemberID)
	if !ok {
		return false
	}
	return member.Allows(req.Section, req.MinLevel)
}
