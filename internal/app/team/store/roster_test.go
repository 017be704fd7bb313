package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/storefront-service/internal/app/team/domain"
)

func member(id, email string) *domain.TeamMember {
	return domain.ReconstructTeamMember(domain.MemberSnapshot{
		ID:        id,
		Name:      "Member " + id,
		Email:     email,
		Role:      domain.RoleStaff,
		Status:    domain.StatusActive,
		CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	})
}

func TestRoster(t *testing.T) {
	r := NewRoster([]*domain.TeamMember{
		member("1", "admin@innovix.com"),
		member("2", "john@innovix.com"),
	})

	got, ok := r.ByEmail(" ADMIN@innovix.com ")
	require.True(t, ok)
	assert.Equal(t, "1", got.ID())

	require.NoError(t, r.Insert(member("3", "sarah@innovix.com")))
	assert.ErrorIs(t, r.Insert(member("3", "other@innovix.com")), domain.ErrTeamMemberExists)
	assert.ErrorIs(t, r.Insert(member("4", "john@innovix.com")), domain.ErrEmailTaken)

	before := r.Snapshot()
	require.NoError(t, r.Replace(member("2", "johnny@innovix.com")))
	assert.Equal(t, "john@innovix.com", before[1].Email())
	assert.ErrorIs(t, r.Replace(member("2", "sarah@innovix.com")), domain.ErrEmailTaken)
	assert.ErrorIs(t, r.Replace(member("9", "x@innovix.com")), domain.ErrTeamMemberNotFound)

	assert.True(t, r.Delete("2"))
	assert.False(t, r.Delete("2"))
	assert.Len(t, r.Snapshot(), 2)
	assert.Len(t, before, 3)
}
