package repo

import (
	"context"
	"encoding/json"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/light-bringer/storefront-service/internal/app/team/contracts"
	"github.com/light-bringer/storefront-service/internal/app/team/domain"
	"github.com/light-bringer/storefront-service/internal/models/m_team_member"
	"github.com/light-bringer/storefront-service/internal/pkg/query"
)

// MemberRepo implements MemberRepository for Spanner.
type MemberRepo struct {
	model *m_team_member.Model
}

// NewMemberRepo creates a new MemberRepo.
func NewMemberRepo() contracts.MemberRepository {
	return &MemberRepo{model: m_team_member.NewModel()}
}

// InsertMut creates a mutation for inserting a team member.
func (r *MemberRepo) InsertMut(member *domain.TeamMember) (*spanner.Mutation, error) {
	return r.model.InsertMut(DomainToData(member)), nil
}

// UpdateMut creates a mutation for the changed columns, or nil.
func (r *MemberRepo) UpdateMut(member *domain.TeamMember) (*spanner.Mutation, error) {
	changes := member.Changes()
	if !changes.HasChanges() {
		return nil, nil
	}

	updates := make(map[string]interface{})
	if changes.Dirty(domain.FieldName) {
		updates[m_team_member.Name] = member.Name()
	}
	if changes.Dirty(domain.FieldEmail) {
		updates[m_team_member.Email] = member.Email()
	}
	if changes.Dirty(domain.FieldRole) {
		updates[m_team_member.Role] = string(member.Role())
	}
	if changes.Dirty(domain.FieldStatus) {
		updates[m_team_member.Status] = string(member.Status())
	}
	if changes.Dirty(domain.FieldPermissions) {
		updates[m_team_member.Permissions] = spanner.NullJSON{Value: member.Permissions(), Valid: true}
	}
	if changes.Dirty(domain.FieldPasswordHash) {
		updates[m_team_member.PasswordHash] = passwordColumn(member)
	}
	if len(updates) == 0 {
		return nil, nil
	}

	updates[m_team_member.UpdatedAt] = member.UpdatedAt()
	return r.model.UpdateMut(member.ID(), updates), nil
}

// DeleteMut creates a mutation removing the member row.
func (r *MemberRepo) DeleteMut(memberID string) *spanner.Mutation {
	return r.model.DeleteMut(memberID)
}

// Loader reads the roster from Spanner.
type Loader struct {
	client *spanner.Client
}

// NewLoader creates a new Loader.
func NewLoader(client *spanner.Client) contracts.MemberLoader {
	return &Loader{client: client}
}

// LoadAllStatement selects every member, oldest first.
func LoadAllStatement() spanner.Statement {
	return query.From(m_team_member.TableName).
		Select(m_team_member.Columns()...).
		OrderBy(m_team_member.CreatedAt, query.Asc).
		OrderBy(m_team_member.MemberID, query.Asc).
		Build()
}

// LoadAll reads and validates every member.
func (l *Loader) LoadAll(ctx context.Context) ([]*domain.TeamMember, error) {
	iter := l.client.Single().Query(ctx, LoadAllStatement())
	defer iter.Stop()

	members := make([]*domain.TeamMember, 0)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate team members: %w", err)
		}

		var data m_team_member.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse team member: %w", err)
		}

		member, err := DataToDomain(&data)
		if err != nil {
			return nil, fmt.Errorf("team member %s: %w", data.MemberID, err)
		}
		members = append(members, member)
	}
	return members, nil
}

// DomainToData converts a domain TeamMember to database Data.
func DomainToData(member *domain.TeamMember) *m_team_member.Data {
	return &m_team_member.Data{
		MemberID:     member.ID(),
		Name:         member.Name(),
		Email:        member.Email(),
		Role:         string(member.Role()),
		Status:       string(member.Status()),
		Permissions:  spanner.NullJSON{Value: member.Permissions(), Valid: true},
		PasswordHash: passwordColumn(member),
		CreatedAt:    member.CreatedAt(),
		UpdatedAt:    member.UpdatedAt(),
	}
}

// DataToDomain converts database Data to a validated TeamMember.
func DataToDomain(data *m_team_member.Data) (*domain.TeamMember, error) {
	perms := domain.Permissions{}
	if data.Permissions.Valid && data.Permissions.Value != nil {
		raw, err := json.Marshal(data.Permissions.Value)
		if err != nil {
			return nil, fmt.Errorf("invalid permissions: %w", err)
		}
		if err := json.Unmarshal(raw, &perms); err != nil {
			return nil, fmt.Errorf("invalid permissions: %w", err)
		}
	}

	member := domain.ReconstructTeamMember(domain.MemberSnapshot{
		ID:           data.MemberID,
		Name:         data.Name,
		Email:        data.Email,
		Role:         domain.Role(data.Role),
		Status:       domain.Status(data.Status),
		Permissions:  perms,
		PasswordHash: data.PasswordHash.StringVal,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	})
	if err := member.Validate(); err != nil {
		return nil, err
	}
	return member, nil
}

func passwordColumn(member *domain.TeamMember) spanner.NullString {
	hash := member.PasswordHash()
	return spanner.NullString{StringVal: hash, Valid: hash != ""}
}
