package seed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	catalog "github.com/light-bringer/storefront-service/internal/app/catalog/domain"
	"github.com/light-bringer/storefront-service/internal/app/catalog/engine"
	team "github.com/light-bringer/storefront-service/internal/app/team/domain"
)

func TestProducts(t *testing.T) {
	products, err := Products()
	require.NoError(t, err)
	require.Len(t, products, 7)

	ids := make([]string, len(products))
	for i, p := range products {
		ids[i] = p.ID()
	}
	assert.Equal(t, []string{"1", "2", "3", "4", "5", "16e", "6"}, ids)

	first := products[0]
	assert.Equal(t, "iPhone 15 Pro Max", first.Name())
	assert.True(t, first.Price().Equals(catalog.MustMoney(119990)))
	assert.True(t, first.EffectivePrice().Equals(catalog.MustMoney(105990)))
	assert.Len(t, first.Reviews(), 2)
	assert.Equal(t, time.Date(2023, 10, 15, 0, 0, 0, 0, time.UTC), first.Reviews()[0].Date)
	assert.Equal(t, "6.7-inch Super Retina XDR display with ProMotion", first.Specifications()["display"])

	e16, ok := engine.ByID(products, "16e")
	require.True(t, ok)
	assert.Nil(t, e16.DiscountPrice())
	sub, ok := e16.Subcategory()
	assert.True(t, ok)
	assert.Equal(t, "iPhone 16e", sub)
}

func TestProducts_SearchOverSeed(t *testing.T) {
	products, err := Products()
	require.NoError(t, err)

	result := engine.Search(products, "watch")
	require.False(t, result.Degraded)
	require.NotEmpty(t, result.Products)
	assert.Equal(t, "4", result.Products[0].ID())

	assert.Len(t, engine.ByCategory(products, "iPhones"), 3)
}

func TestCategories(t *testing.T) {
	categories, err := Categories()
	require.NoError(t, err)
	require.Len(t, categories, 7)

	names := make([]string, len(categories))
	for i, c := range categories {
		names[i] = c.Name
	}
	assert.Equal(t, []string{"Mac", "iPhones", "iPad", "Watch", "AirPods", "TV & Home", "Accessories"}, names)
	assert.Equal(t, "iphones", categories[1].Slug)
	assert.Len(t, categories[1].Subcategories, 5)
}

func TestTeam(t *testing.T) {
	now := time.Date(2024, 9, 10, 0, 0, 0, 0, time.UTC)
	members, err := Team(now)
	require.NoError(t, err)
	require.Len(t, members, 4)

	admin := members[0]
	assert.Equal(t, team.RoleAdmin, admin.Role())
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash()), []byte("admin123")))
	assert.Equal(t, team.FullAccess, admin.Permissions().Level(team.SectionSettings))
	assert.Empty(t, admin.DomainEvents())

	manager := members[1]
	assert.Equal(t, team.DefaultPermissions(team.RoleManager).Complete(), manager.Permissions())
	assert.Empty(t, manager.PasswordHash())

	mike := members[3]
	assert.Equal(t, team.StatusInactive, mike.Status())
	assert.Equal(t, team.Write, mike.Permissions().Level(team.SectionPromotions))
	assert.False(t, mike.Allows(team.SectionPromotions, team.Read))
}
