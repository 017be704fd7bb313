// Package seed loads the embedded demo catalog, categories and team.
package seed

import (
	"embed"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/light-bringer/storefront-service/internal/app/auth"
	catalog "github.com/light-bringer/storefront-service/internal/app/catalog/domain"
	team "github.com/light-bringer/storefront-service/internal/app/team/domain"
)

//go:embed data/*.yaml
var files embed.FS

type productRecord struct {
	ID             string            `yaml:"id"`
	Name           string            `yaml:"name"`
	Category       string            `yaml:"category"`
	Subcategory    *string           `yaml:"subcategory"`
	Price          *catalog.Money    `yaml:"price"`
	DiscountPrice  *catalog.Money    `yaml:"discount_price"`
	Description    string            `yaml:"description"`
	Features       []string          `yaml:"features"`
	Specifications map[string]string `yaml:"specifications"`
	Images         []string          `yaml:"images"`
	Stock          int               `yaml:"stock"`
	Rating         float64           `yaml:"rating"`
	Reviews        []catalog.Review  `yaml:"reviews"`
	IsFeatured     bool              `yaml:"is_featured"`
	IsNewArrival   bool              `yaml:"is_new_arrival"`
	CreatedAt      time.Time         `yaml:"created_at"`
	UpdatedAt      time.Time         `yaml:"updated_at"`
}

type memberRecord struct {
	ID          string           `yaml:"id"`
	Name        string           `yaml:"name"`
	Email       string           `yaml:"email"`
	Role        team.Role        `yaml:"role"`
	Status      team.Status      `yaml:"status"`
	Permissions team.Permissions `yaml:"permissions"`
	Password    string           `yaml:"password"`
}

// Products returns the validated seed catalog in file order.
func Products() ([]*catalog.Product, error) {
	var records []productRecord
	if err := decode("data/products.yaml", &records); err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(records))
	products := make([]*catalog.Product, 0, len(records))
	for _, r := range records {
		if _, dup := seen[r.ID]; dup {
			return nil, fmt.Errorf("seed product %s: %w", r.ID, catalog.ErrProductExists)
		}
		seen[r.ID] = struct{}{}

		if r.Price == nil {
			return nil, fmt.Errorf("seed product %s: %w", r.ID, catalog.ErrMissingPrice)
		}
		p := catalog.ReconstructProduct(catalog.ProductSnapshot{
			ID:             r.ID,
			Name:           r.Name,
			Category:       r.Category,
			Subcategory:    r.Subcategory,
			Price:          r.Price,
			DiscountPrice:  r.DiscountPrice,
			Description:    r.Description,
			Features:       r.Features,
			Specifications: r.Specifications,
			Images:         r.Images,
			Stock:          r.Stock,
			Rating:         r.Rating,
			Reviews:        r.Reviews,
			IsFeatured:     r.IsFeatured,
			IsNewArrival:   r.IsNewArrival,
			CreatedAt:      r.CreatedAt,
			UpdatedAt:      r.UpdatedAt,
		})
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("seed product %s: %w", r.ID, err)
		}
		products = append(products, p)
	}
	return products, nil
}

// Categories returns the seed category tree.
func Categories() ([]catalog.Category, error) {
	var categories []catalog.Category
	if err := decode("data/categories.yaml", &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// Team returns the seed roster. Demo passwords are bcrypt-hashed here and
// never kept in plain text.
func Team(now time.Time) ([]*team.TeamMember, error) {
	var records []memberRecord
	if err := decode("data/team.yaml", &records); err != nil {
		return nil, err
	}

	members := make([]*team.TeamMember, 0, len(records))
	for _, r := range records {
		attrs := team.MemberAttributes{
			Name:        r.Name,
			Email:       r.Email,
			Role:        r.Role,
			Status:      r.Status,
			Permissions: r.Permissions,
		}
		if r.Password != "" {
			hash, err := auth.HashPassword(r.Password)
			if err != nil {
				return nil, err
			}
			attrs.PasswordHash = hash
		}

		m, err := team.NewTeamMember(r.ID, attrs, now)
		if err != nil {
			return nil, fmt.Errorf("seed member %s: %w", r.ID, err)
		}
		m.ClearEvents()
		members = append(members, m)
	}
	return members, nil
}

func decode(name string, out interface{}) error {
	raw, err := files.ReadFile(name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := yaml.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return nil
}
