package list_members

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/light-bringer/storefront-service/internal/app/team/domain"
	"github.com/light-bringer/storefront-service/internal/app/team/store"
	"github.com/light-bringer/storefront-service/internal/testutil"
)

func ids(members []*domain.TeamMember) []string {
	out := make([]string, len(members))
	for i, m := range members {
		out[i] = m.ID()
	}
	return out
}

func TestQuery_Execute(t *testing.T) {
	q := NewQuery(store.NewRoster(testutil.SampleTeam()))
	ctx := context.Background()

	staff := domain.RoleStaff
	active := domain.StatusActive
	inactive := domain.StatusInactive

	tests := []struct {
		name string
		req  *Request
		want []string
	}{
		{name: "no filter keeps roster order", req: &Request{}, want: []string{"1", "2", "3", "4"}},
		{name: "by role", req: &Request{Role: &staff}, want: []string{"3", "4"}},
		{name: "by status", req: &Request{Status: &inactive}, want: []string{"4"}},
		{name: "role and status", req: &Request{Role: &staff, Status: &active}, want: []string{"3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(q.Execute(ctx, tt.req)))
		})
	}
}
