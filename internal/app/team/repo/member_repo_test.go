package repo

import (
	"testing"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/storefront-service/internal/app/team/domain"
)

var now = time.Date(2024, 9, 10, 0, 0, 0, 0, time.UTC)

func TestDataRoundTrip(t *testing.T) {
	original, err := domain.NewTeamMember("2", domain.MemberAttributes{
		Name:  "John Manager",
		Email: "john@innovix.com",
		Role:  domain.RoleManager,
	}, now)
	require.NoError(t, err)

	data := DomainToData(original)
	assert.False(t, data.PasswordHash.Valid)

	// JSON columns come back from Spanner as generic values
	data.Permissions = spanner.NullJSON{Value: map[string]interface{}{
		"products": "write",
		"settings": "no_access",
	}, Valid: true}

	restored, err := DataToDomain(data)
	require.NoError(t, err)
	assert.Equal(t, "John Manager", restored.Name())
	assert.Equal(t, domain.Write, restored.Permissions().Level(domain.SectionProducts))
	assert.Equal(t, domain.NoAccess, restored.Permissions().Level(domain.SectionTeam))
}

func TestDataToDomain_RejectsBadRows(t *testing.T) {
	member, err := domain.NewTeamMember("2", domain.MemberAttributes{Name: "A", Email: "a@b.c", Role: domain.RoleStaff}, now)
	require.NoError(t, err)

	data := DomainToData(member)
	data.Role = "owner"
	_, err = DataToDomain(data)
	assert.ErrorIs(t, err, domain.ErrInvalidRole)

	data = DomainToData(member)
	data.Permissions = spanner.NullJSON{Value: map[string]interface{}{"products": "everything"}, Valid: true}
	_, err = DataToDomain(data)
	assert.ErrorIs(t, err, domain.ErrInvalidPermissionLevel)
}

func TestMemberRepo_UpdateMut(t *testing.T) {
	repo := NewMemberRepo()
	member, err := domain.NewTeamMember("2", domain.MemberAttributes{Name: "A", Email: "a@b.c", Role: domain.RoleStaff}, now)
	require.NoError(t, err)

	mut, err := repo.UpdateMut(member)
	require.NoError(t, err)
	assert.Nil(t, mut)

	_, err = member.SetPermission(domain.SectionOrders, domain.Write, now)
	require.NoError(t, err)
	mut, err = repo.UpdateMut(member)
	require.NoError(t, err)
	assert.NotNil(t, mut)
}

func TestLoadAllStatement(t *testing.T) {
	assert.Contains(t, LoadAllStatement().SQL, "FROM team_members ORDER BY created_at ASC, member_id ASC")
}
