package m_team_member

import (
	"sort"

	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the team_members table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a Spanner mutation for inserting a team member.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.Insert(TableName, Columns(), []interface{}{
		data.MemberID,
		data.Name,
		data.Email,
		data.Role,
		data.Status,
		data.Permissions,
		data.PasswordHash,
		data.CreatedAt,
		data.UpdatedAt,
	})
}

// UpdateMut creates a Spanner mutation for updating specific member columns.
func (m *Model) UpdateMut(memberID string, updates map[string]interface{}) *spanner.Mutation {
	if len(updates) == 0 {
		return nil
	}

	names := make([]string, 0, len(updates))
	for col := range updates {
		names = append(names, col)
	}
	sort.Strings(names)

	columns := append(make([]string, 0, len(updates)+1), MemberID)
	values := append(make([]interface{}, 0, len(updates)+1), interface{}(memberID))
	for _, col := range names {
		columns = append(columns, col)
		values = append(values, updates[col])
	}

	return spanner.Update(TableName, columns, values)
}

// DeleteMut creates a Spanner mutation for deleting a team member.
func (m *Model) DeleteMut(memberID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{memberID})
}
