package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/storefront-service/internal/app/catalog/domain"
	"github.com/light-bringer/storefront-service/internal/testutil"
)

func TestSearch_BlankQuery(t *testing.T) {
	catalog := testutil.SampleCatalog()

	for _, q := range []string{"", "   ", "\t\n"} {
		res := Search(catalog, q)
		assert.Empty(t, res.Products)
		assert.False(t, res.Degraded)
		assert.NoError(t, res.Fault)
	}
}

func TestSearch_ExactNameShortCircuits(t *testing.T) {
	catalog := testutil.SampleCatalog()

	res := Search(catalog, "  IPHONE 15 ")
	require.False(t, res.Degraded)
	assert.Equal(t, []string{"6"}, ids(res.Products), "longer names containing the query are excluded")
}

func TestSearch_ExactNameReturnsAllDuplicates(t *testing.T) {
	catalog := []*domain.Product{
		testutil.NewProductBuilder("a").WithName("Magic Mouse").Build(),
		testutil.NewProductBuilder("b").WithName("Magic Keyboard").Build(),
		testutil.NewProductBuilder("c").WithName("magic mouse").Build(),
	}

	assert.Equal(t, []string{"a", "c"}, ids(Search(catalog, "Magic Mouse").Products))
}

func TestSearch_SingleTermSubstringAcrossFields(t *testing.T) {
	catalog := testutil.SampleCatalog()

	tests := []struct {
		query string
		want  []string
	}{
		{"pro", []string{"1", "2", "3"}},
		{"titanium", []string{"1"}},        // description
		{"airpods", []string{"3"}},         // name and category
		{"xdr", []string{"1", "2"}},        // spec value and feature
		{"h2", []string{"3"}},              // feature
		{"series", []string{"6"}},          // subcategory
		{"nothing-matches", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			res := Search(catalog, tt.query)
			assert.False(t, res.Degraded)
			assert.Equal(t, tt.want, ids(res.Products))
		})
	}
}

func TestSearch_MultiTermRanking(t *testing.T) {
	catalog := testutil.SampleCatalog()

	res := Search(catalog, "iphone pro")
	require.False(t, res.Degraded)
	require.NotEmpty(t, res.Products)

	assert.Equal(t, "1", res.Products[0].ID(), "product with both terms in the name ranks first")
	assert.Equal(t, []string{"1", "6", "2", "3", "16e"}, ids(res.Products), "ties keep collection order")
}

func TestSearch_MultiTermScoresAreNonIncreasingAndPositive(t *testing.T) {
	catalog := testutil.SampleCatalog()

	for _, q := range []string{"iphone pro", "chip display", "apple m3 max", "pro max chip"} {
		res := Search(catalog, q)
		require.False(t, res.Degraded, q)

		normalized := strings.ToLower(strings.TrimSpace(q))
		terms := strings.Fields(normalized)

		prev := -1
		for _, p := range res.Products {
			s := Score(p, normalized, terms)
			assert.Positive(t, s, "%s: %s", q, p.ID())
			if prev >= 0 {
				assert.LessOrEqual(t, s, prev, "%s: %s", q, p.ID())
			}
			prev = s
		}

		for _, p := range catalog {
			if Score(p, normalized, terms) == 0 {
				assert.False(t, contains(res.Products, p), "%s: zero-score %s returned", q, p.ID())
			}
		}
	}
}

func TestScore_Weights(t *testing.T) {
	p := testutil.NewProductBuilder("x").
		WithName("Alpha Beta").
		WithDescription("alpha").
		WithCategory("Alpha", "Alpha").
		WithSpec("k", "alpha").
		WithFeatures("alpha").
		Build()

	// whole query in name (10) + alpha: 5+3+2+2+1+1 + beta: name 5
	assert.Equal(t, 29, Score(p, "alpha beta", []string{"alpha", "beta"}))
}

func TestSearch_DegradesInsteadOfFailing(t *testing.T) {
	catalog := testutil.SampleCatalog()
	broken := append([]*domain.Product{nil}, catalog...)

	res := Search(broken, "MacBook Pro")
	assert.True(t, res.Degraded)
	assert.ErrorIs(t, res.Fault, domain.ErrSearchFault)
	assert.Equal(t, []string{"2"}, ids(res.Products))
}

func TestSearch_DegradedWithNoMatches(t *testing.T) {
	res := Search([]*domain.Product{nil}, "anything")
	assert.True(t, res.Degraded)
	assert.Empty(t, res.Products)
}
