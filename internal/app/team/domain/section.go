package domain

import "fmt"

// Section is a named administrative area guarded by a permission level.
type Section string

const (
	SectionDashboard  Section = "dashboard"
	SectionProducts   Section = "products"
	SectionOrders     Section = "orders"
	SectionCustomers  Section = "customers"
	SectionAnalytics  Section = "analytics"
	SectionPromotions Section = "promotions"
	SectionContent    Section = "content"
	SectionTeam       Section = "team"
	SectionSettings   Section = "settings"
)

// AllSections lists every section in display order.
var AllSections = []Section{
	SectionDashboard,
	SectionProducts,
	SectionOrders,
	SectionCustomers,
	SectionAnalytics,
	SectionPromotions,
	SectionContent,
	SectionTeam,
	SectionSettings,
}

// ParseSection validates a section name.
func ParseSection(s string) (Section, error) {
	section := Section(s)
	if !section.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidSection, s)
	}
	return section, nil
}

// Valid reports whether s is a known section.
func (s Section) Valid() bool {
	for _, known := range AllSections {
		if s == known {
			return true
		}
	}
	return false
}
