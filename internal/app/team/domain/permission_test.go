package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPermissionLevel_Order(t *testing.T) {
	levels := []PermissionLevel{NoAccess, Read, Write, FullAccess}
	for i, a := range levels {
		for j, b := range levels {
			assert.Equal(t, i >= j, a.Meets(b), "%s meets %s", a, b)
		}
	}
}

func TestParsePermissionLevel(t *testing.T) {
	for _, name := range []string{"no_access", "read", "write", "full_access"} {
		level, err := ParsePermissionLevel(name)
		require.NoError(t, err)
		assert.Equal(t, name, level.String())
	}

	_, err := ParsePermissionLevel("admin")
	assert.ErrorIs(t, err, ErrInvalidPermissionLevel)
	assert.Equal(t, "PermissionLevel(7)", PermissionLevel(7).String())
}

func TestParseMinimumLevel(t *testing.T) {
	for _, name := range []string{"read", "write", "full_access"} {
		level, err := ParseMinimumLevel(name)
		require.NoError(t, err)
		assert.Equal(t, name, level.String())
	}

	for _, name := range []string{"no_access", "owner", ""} {
		_, err := ParseMinimumLevel(name)
		assert.ErrorIs(t, err, ErrInvalidPermissionLevel, name)
	}
}

func TestPermissions_JSON(t *testing.T) {
	perms := Permissions{SectionProducts: Write, SectionOrders: NoAccess}

	encoded, err := perms.JSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"products":"write","orders":"no_access"}`, encoded)

	var decoded Permissions
	require.NoError(t, json.Unmarshal([]byte(encoded), &decoded))
	assert.Equal(t, perms, decoded)

	assert.Error(t, json.Unmarshal([]byte(`{"products":"owner"}`), &decoded))
}

func TestPermissions_CompleteAndValidate(t *testing.T) {
	complete := Permissions{SectionTeam: Read}.Complete()
	assert.Len(t, complete, len(AllSections))
	assert.Equal(t, Read, complete.Level(SectionTeam))
	assert.Equal(t, NoAccess, complete.Level(SectionSettings))

	assert.ErrorIs(t, Permissions{"billing": Read}.Validate(), ErrInvalidSection)
	assert.ErrorIs(t, Permissions{SectionTeam: PermissionLevel(9)}.Validate(), ErrInvalidPermissionLevel)
}

func TestDefaultPermissions(t *testing.T) {
	admin := DefaultPermissions(RoleAdmin)
	for _, s := range AllSections {
		assert.Equal(t, FullAccess, admin.Level(s), s)
	}

	manager := DefaultPermissions(RoleManager)
	assert.Equal(t, Write, manager.Level(SectionProducts))
	assert.Equal(t, Read, manager.Level(SectionTeam))
	assert.Equal(t, NoAccess, manager.Level(SectionSettings))

	staff := DefaultPermissions(RoleStaff)
	assert.Equal(t, Read, staff.Level(SectionProducts))
	assert.Equal(t, NoAccess, staff.Level(SectionPromotions))
	for _, p := range []Permissions{manager, staff} {
		assert.NoError(t, p.Validate())
		assert.Len(t, p, len(AllSections))
	}
}

func TestParseSectionRoleStatus(t *testing.T) {
	s, err := ParseSection("orders")
	require.NoError(t, err)
	assert.Equal(t, SectionOrders, s)
	_, err = ParseSection("Orders")
	assert.ErrorIs(t, err, ErrInvalidSection)

	r, err := ParseRole("manager")
	require.NoError(t, err)
	assert.Equal(t, RoleManager, r)
	_, err = ParseRole("owner")
	assert.ErrorIs(t, err, ErrInvalidRole)

	st, err := ParseStatus("inactive")
	require.NoError(t, err)
	assert.Equal(t, StatusInactive, st)
	_, err = ParseStatus("suspended")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}
