package domain

import (
	"strings"
	"time"

	"github.com/light-bringer/storefront-service/internal/pkg/changes"
)

// Field names for change tracking. They match the team_members columns.
const (
	FieldName         = "name"
	FieldEmail        = "email"
	FieldRole         = "role"
	FieldStatus       = "status"
	FieldPermissions  = "permissions"
	FieldPasswordHash = "password_hash"
)

// TeamMember is a back-office actor and the aggregate root of the team.
// Stored members are never mutated in place; admin operations work on a Clone.
type TeamMember struct {
	id           string
	name         string
	email        string
	role         Role
	status       Status
	permissions  Permissions
	passwordHash string
	createdAt    time.Time
	updatedAt    time.Time

	changes *changes.Tracker
	events  []DomainEvent
}

// MemberAttributes carries the caller-supplied fields of a new member.
// Nil Permissions selects DefaultPermissions(Role); an empty Status means
// active.
type MemberAttributes struct {
	Name         string
	Email        string
	Role         Role
	Status       Status
	Permissions  Permissions
	PasswordHash string
}

// MemberSnapshot is the complete exported state of a member.
type MemberSnapshot struct {
	ID           string
	Name         string
	Email        string
	Role         Role
	Status       Status
	Permissions  Permissions
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewTeamMember validates attrs and creates a member.
func NewTeamMember(id string, attrs MemberAttributes, now time.Time) (*TeamMember, error) {
	if id == "" {
		return nil, ErrEmptyID
	}
	if attrs.Status == "" {
		attrs.Status = StatusActive
	}
	perms := attrs.Permissions
	if perms == nil {
		perms = DefaultPermissions(attrs.Role)
	}

	m := &TeamMember{
		id:           id,
		name:         strings.TrimSpace(attrs.Name),
		email:        normalizeEmail(attrs.Email),
		role:         attrs.Role,
		status:       attrs.Status,
		permissions:  perms.Complete(),
		passwordHash: attrs.PasswordHash,
		createdAt:    now,
		updatedAt:    now,
		changes:      changes.NewTracker(),
	}
	if err := perms.Validate(); err != nil {
		return nil, err
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}

	m.recordEvent(&TeamMemberAddedEvent{
		MemberID: m.id,
		Name:     m.name,
		Email:    m.email,
		Role:     m.role,
		AddedAt:  now,
	})
	return m, nil
}

// ReconstructTeamMember rebuilds a member from a snapshot without events.
func ReconstructTeamMember(s MemberSnapshot) *TeamMember {
	return &TeamMember{
		id:           s.ID,
		name:         s.Name,
		email:        normalizeEmail(s.Email),
		role:         s.Role,
		status:       s.Status,
		permissions:  s.Permissions.Complete(),
		passwordHash: s.PasswordHash,
		createdAt:    s.CreatedAt,
		updatedAt:    s.UpdatedAt,
		changes:      changes.NewTracker(),
	}
}

// Validate checks the member invariants.
func (m *TeamMember) Validate() error {
	if m.id == "" {
		return ErrEmptyID
	}
	if m.name == "" {
		return ErrEmptyMemberName
	}
	if m.email == "" {
		return ErrEmptyEmail
	}
	if !strings.Contains(m.email, "@") {
		return ErrInvalidEmail
	}
	if _, err := ParseRole(string(m.role)); err != nil {
		return err
	}
	if _, err := ParseStatus(string(m.status)); err != nil {
		return err
	}
	return m.permissions.Validate()
}

// Getters
func (m *TeamMember) ID() string                  { return m.id }
func (m *TeamMember) Name() string                { return m.name }
func (m *TeamMember) Email() string               { return m.email }
func (m *TeamMember) Role() Role                  { return m.role }
func (m *TeamMember) Status() Status              { return m.status }
func (m *TeamMember) PasswordHash() string        { return m.passwordHash }
func (m *TeamMember) CreatedAt() time.Time        { return m.createdAt }
func (m *TeamMember) UpdatedAt() time.Time        { return m.updatedAt }
func (m *TeamMember) DomainEvents() []DomainEvent { return m.events }

// Permissions returns a copy of the permission map.
func (m *TeamMember) Permissions() Permissions {
	return m.permissions.Clone()
}

// IsActive reports whether the member's status is active.
func (m *TeamMember) IsActive() bool {
	return m.status == StatusActive
}

// Allows decides whether the member may act on section at level min.
// Admins are always allowed; inactive members never are; everyone else
// needs a stored level of at least min.
func (m *TeamMember) Allows(section Section, min PermissionLevel) bool {
	if m.role == RoleAdmin {
		return true
	}
	if m.status != StatusActive {
		return false
	}
	return m.permissions.Level(section).Meets(min)
}

// Changes reports the fields modified since the member was built or the
// tracker was last cleared.
func (m *TeamMember) Changes() *changes.Tracker { return m.changes }

// Snapshot returns a copy of the member state.
func (m *TeamMember) Snapshot() MemberSnapshot {
	return MemberSnapshot{
		ID:           m.id,
		Name:         m.name,
		Email:        m.email,
		Role:         m.role,
		Status:       m.status,
		Permissions:  m.permissions.Clone(),
		PasswordHash: m.passwordHash,
		CreatedAt:    m.createdAt,
		UpdatedAt:    m.updatedAt,
	}
}

// Clone returns a deep copy with no events and no changes.
func (m *TeamMember) Clone() *TeamMember {
	return ReconstructTeamMember(m.Snapshot())
}

// MemberPatch updates member details. Nil fields are left unchanged.
// Changing the role does not rewrite stored permissions.
type MemberPatch struct {
	Name   *string
	Email  *string
	Role   *Role
	Status *Status
}

// ApplyPatch merges the patch and validates the result. On error the member
// must be discarded; use it on a Clone.
func (m *TeamMember) ApplyPatch(patch MemberPatch, now time.Time) error {
	if patch.Name != nil {
		if name := strings.TrimSpace(*patch.Name); name != m.name {
			m.name = name
			m.changes.MarkDirty(FieldName)
		}
	}
	if patch.Email != nil {
		if email := normalizeEmail(*patch.Email); email != m.email {
			m.email = email
			m.changes.MarkDirty(FieldEmail)
		}
	}
	if patch.Role != nil && *patch.Role != m.role {
		m.role = *patch.Role
		m.changes.MarkDirty(FieldRole)
	}
	if patch.Status != nil && *patch.Status != m.status {
		m.status = *patch.Status
		m.changes.MarkDirty(FieldStatus)
	}

	if err := m.Validate(); err != nil {
		return err
	}
	if !m.changes.HasChanges() {
		return nil
	}

	m.updatedAt = now
	m.recordEvent(&TeamMemberUpdatedEvent{
		MemberID:      m.id,
		ChangedFields: m.changes.DirtyFields(),
		UpdatedAt:     now,
	})
	return nil
}

// SetPermission overwrites one section's level. It reports whether the
// level changed; setting the current level again records nothing.
func (m *TeamMember) SetPermission(section Section, level PermissionLevel, now time.Time) (bool, error) {
	if !section.Valid() {
		return false, ErrInvalidSection
	}
	if !level.Valid() {
		return false, ErrInvalidPermissionLevel
	}

	old := m.permissions.Level(section)
	if old == level {
		return false, nil
	}

	m.permissions[section] = level
	m.updatedAt = now
	m.changes.MarkDirty(FieldPermissions)
	m.recordEvent(&PermissionChangedEvent{
		MemberID:  m.id,
		Section:   section,
		OldLevel:  old,
		NewLevel:  level,
		ChangedAt: now,
	})
	return true, nil
}

// SetPasswordHash replaces the demo credential hash.
func (m *TeamMember) SetPasswordHash(hash string) {
	m.passwordHash = hash
	m.changes.MarkDirty(FieldPasswordHash)
}

// MarkDeleted records the deletion event. The store removes the record.
func (m *TeamMember) MarkDeleted(now time.Time) {
	m.recordEvent(&TeamMemberDeletedEvent{MemberID: m.id, DeletedAt: now})
}

func (m *TeamMember) recordEvent(event DomainEvent) {
	m.events = append(m.events, event)
}

// ClearEvents clears all recorded domain events (called after publishing).
func (m *TeamMember) ClearEvents() {
	m.events = nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
