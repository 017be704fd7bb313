package domain

import "time"

// DomainEvent is the base interface for all domain events.
type DomainEvent interface {
	EventType() string
	AggregateID() string
}

// TeamMemberAddedEvent is emitted when a member joins the team.
type TeamMemberAddedEvent struct {
	MemberID string
	Name     string
	Email    string
	Role     Role
	AddedAt  time.Time
}

func (e *TeamMemberAddedEvent) EventType() string   { return "team_member.added" }
func (e *TeamMemberAddedEvent) AggregateID() string { return e.MemberID }

// TeamMemberUpdatedEvent is emitted when name, email, role or status change.
type TeamMemberUpdatedEvent struct {
	MemberID      string
	ChangedFields []string
	UpdatedAt     time.Time
}

func (e *TeamMemberUpdatedEvent) EventType() string   { return "team_member.updated" }
func (e *TeamMemberUpdatedEvent) AggregateID() string { return e.MemberID }

// TeamMemberDeletedEvent is emitted when a member is removed.
type TeamMemberDeletedEvent struct {
	MemberID  string
	DeletedAt time.Time
}

func (e *TeamMemberDeletedEvent) EventType() string   { return "team_member.deleted" }
func (e *TeamMemberDeletedEvent) AggregateID() string { return e.MemberID }

// PermissionChangedEvent is emitted when one section's level changes.
type PermissionChangedEvent struct {
	MemberID  string
	Section   Section
	OldLevel  PermissionLevel
	NewLevel  PermissionLevel
	ChangedAt time.Time
}

func (e *PermissionChangedEvent) EventType() string   { return "team_member.permission_changed" }
func (e *PermissionChangedEvent) AggregateID() string { return e.MemberID }
