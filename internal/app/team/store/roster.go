// Package store holds the in-memory team roster.
package store

import (
	"strings"
	"sync"

	"github.com/light-bringer/storefront-service/internal/app/team/domain"
)

// Roster is a copy-on-write member collection in insertion order.
type Roster struct {
	mu      sync.RWMutex
	members []*domain.TeamMember

	writers sync.Mutex
}

// NewRoster creates a roster. Duplicate ids keep the first occurrence.
func NewRoster(members []*domain.TeamMember) *Roster {
	seen := make(map[string]struct{}, len(members))
	list := make([]*domain.TeamMember, 0, len(members))
	for _, m := range members {
		if _, dup := seen[m.ID()]; dup {
			continue
		}
		seen[m.ID()] = struct{}{}
		list = append(list, m)
	}
	return &Roster{members: list}
}

// Snapshot returns the current roster. The slice is never modified afterwards.
func (r *Roster) Snapshot() []*domain.TeamMember {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.members
}

// Get returns the member with the given id.
func (r *Roster) Get(id string) (*domain.TeamMember, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if i := r.indexOf(id); i >= 0 {
		return r.members[i], true
	}
	return nil, false
}

// ByEmail finds a member by email, ignoring case.
func (r *Roster) ByEmail(email string) (*domain.TeamMember, bool) {
	email = strings.ToLower(strings.TrimSpace(email))
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, m := range r.members {
		if m.Email() == email {
			return m, true
		}
	}
	return nil, false
}

// Insert appends a member. Ids and emails must be unique.
func (r *Roster) Insert(member *domain.TeamMember) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.indexOf(member.ID()) >= 0 {
		return domain.ErrTeamMemberExists
	}
	if r.emailTaken(member.Email(), member.ID()) {
		return domain.ErrEmailTaken
	}

	next := make([]*domain.TeamMember, len(r.members), len(r.members)+1)
	copy(next, r.members)
	r.members = append(next, member)
	return nil
}

// Replace swaps the stored member with the same id.
func (r *Roster) Replace(member *domain.TeamMember) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(member.ID())
	if i < 0 {
		return domain.ErrTeamMemberNotFound
	}
	if r.emailTaken(member.Email(), member.ID()) {
		return domain.ErrEmailTaken
	}

	next := make([]*domain.TeamMember, len(r.members))
	copy(next, r.members)
	next[i] = member
	r.members = next
	return nil
}

// Delete removes a member and reports whether it existed.
func (r *Roster) Delete(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(id)
	if i < 0 {
		return false
	}

	next := make([]*domain.TeamMember, 0, len(r.members)-1)
	next = append(next, r.members[:i]...)
	next = append(next, r.members[i+1:]...)
	r.members = next
	return true
}

// Exclusive runs fn while no other Exclusive call is running.
func (r *Roster) Exclusive(fn func() error) error {
	r.writers.Lock()
	defer r.writers.Unlock()
	return fn()
}

func (r *Roster) indexOf(id string) int {
	for i, m := range r.members {
		if m.ID() == id {
			return i
		}
	}
	return -1
}

func (r *Roster) emailTaken(email, exceptID string) bool {
	for _, m := range r.members {
		if m.ID() != exceptID && m.Email() == email {
			return true
		}
	}
	return false
}
