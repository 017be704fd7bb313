package contracts

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/storefront-service/internal/app/team/domain"
)

// MemberStore is the in-memory team roster owned by the composition root.
// Stored members are immutable once published.
type MemberStore interface {
	Snapshot() []*domain.TeamMember
	Get(id string) (*domain.TeamMember, bool)
	ByEmail(email string) (*domain.TeamMember, bool)
	Insert(member *domain.TeamMember) error
	Replace(member *domain.TeamMember) error
	Delete(id string) bool

	// Exclusive serializes admin mutations.
	Exclusive(fn func() error) error
}

// MemberRepository builds team_members mutations (Golden Mutation Pattern).
type MemberRepository interface {
	InsertMut(member *domain.TeamMember) (*spanner.Mutation, error)
	UpdateMut(member *domain.TeamMember) (*spanner.Mutation, error)
	DeleteMut(memberID string) *spanner.Mutation
}

// MemberLoader reads the roster at startup.
type MemberLoader interface {
	LoadAll(ctx context.Context) ([]*domain.TeamMember, error)
}
