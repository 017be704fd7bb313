package m_team_member

// Field name constants for the team_members table.
const (
	TableName = "team_members"

	MemberID     = "member_id"
	Name         = "name"
	Email        = "email"
	Role         = "role"
	Status       = "status"
	Permissions  = "permissions"
	PasswordHash = "password_hash"
	CreatedAt    = "created_at"
	UpdatedAt    = "updated_at"
)

// Columns lists every column in table order.
func Columns() []string {
	return []string{
		MemberID,
		Name,
		Email,
		Role,
		Status,
		Permissions,
		PasswordHash,
		CreatedAt,
		UpdatedAt,
	}
}
