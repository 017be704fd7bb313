package m_team_member

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Data represents the database model for the team_members table.
// Permissions is a JSON object mapping section name to level name.
type Data struct {
	MemberID     string             `spanner:"member_id"`
	Name         string             `spanner:"name"`
	Email        string             `spanner:"email"`
	Role         string             `spanner:"role"`
	Status       string             `spanner:"status"`
	Permissions  spanner.NullJSON   `spanner:"permissions"`
	PasswordHash spanner.NullString `spanner:"password_hash"`
	CreatedAt    time.Time          `spanner:"created_at"`
	UpdatedAt    time.Time          `spanner:"updated_at"`
}
