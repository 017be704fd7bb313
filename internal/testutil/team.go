package testutil

import (
	team "github.com/light-bringer/storefront-service/internal/app/team/domain"
)

// SampleTeam returns an admin, a manager, an active staff member and an
// inactive staff member with a custom permission map, ids "1" to "4".
func SampleTeam() []*team.TeamMember {
	return []*team.TeamMember{
		mustMember("1", team.MemberAttributes{Name: "Admin User", Email: "admin@innovix.com", Role: team.RoleAdmin}),
		mustMember("2", team.MemberAttributes{Name: "John Manager", Email: "john@innovix.com", Role: team.RoleManager}),
		mustMember("3", team.MemberAttributes{Name: "Sarah Staff", Email: "sarah@innovix.com", Role: team.RoleStaff}),
		mustMember("4", team.MemberAttributes{
			Name:   "Mike Marketing",
			Email:  "mike@innovix.com",
			Role:   team.RoleStaff,
			Status: team.StatusInactive,
			Permissions: team.Permissions{
				team.SectionDashboard:  team.Read,
				team.SectionProducts:   team.Read,
				team.SectionCustomers:  team.Read,
				team.SectionAnalytics:  team.Read,
				team.SectionPromotions: team.Write,
				team.SectionContent:    team.Write,
			},
		}),
	}
}

func mustMember(id string, attrs team.MemberAttributes) *team.TeamMember {
	m, err := team.NewTeamMember(id, attrs, FixedTime)
	if err != nil {
		panic(err)
	}
	m.ClearEvents()
	return m
}
