package contracts

import (
	"time"

	"github.com/light-bringer/storefront-service/internal/app/team/domain"
)

// MemberDTO is the wire shape of a team member. The password hash is never
// exposed.
type MemberDTO struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Email       string             `json:"email"`
	Role        domain.Role        `json:"role"`
	Status      domain.Status      `json:"status"`
	Permissions domain.Permissions `json:"permissions"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}

// NewMemberDTO converts a member for output.
func NewMemberDTO(m *domain.TeamMember) *MemberDTO {
	return &MemberDTO{
		ID:          m.ID(),
		Name:        m.Name(),
		Email:       m.Email(),
		Role:        m.Role(),
		Status:      m.Status(),
		Permissions: m.Permissions(),
		CreatedAt:   m.CreatedAt(),
		UpdatedAt:   m.UpdatedAt(),
	}
}
