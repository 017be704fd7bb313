package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_BasicSelect(t *testing.T) {
	stmt := From("products").
		Select("product_id", "name", "category").
		Build()

	assert.Equal(t, "SELECT product_id, name, category FROM products", stmt.SQL)
	assert.Empty(t, stmt.Params)
}

func TestBuilder_SelectAllColumns(t *testing.T) {
	stmt := From("products").Build()

	assert.Equal(t, "SELECT * FROM products", stmt.SQL)
	assert.Empty(t, stmt.Params)
}

func TestBuilder_SingleWhereCondition(t *testing.T) {
	stmt := From("products").
		Select("product_id", "name").
		Where(Eq("category", "iPhones")).
		Build()

	assert.Equal(t, "SELECT product_id, name FROM products WHERE category = @p0", stmt.SQL)
	assert.Equal(t, map[string]interface{}{
		"p0": "iPhones",
	}, stmt.Params)
}

func TestBuilder_MultipleWhereConditions(t *testing.T) {
	stmt := From("products").
		Select("product_id", "name").
		Where(Eq("category", "iPhones")).
		Where(Eq("is_featured", true)).
		Build()

	assert.Equal(t, "SELECT product_id, name FROM products WHERE category = @p0 AND is_featured = @p1", stmt.SQL)
	assert.Equal(t, map[string]interface{}{
		"p0": "iPhones",
		"p1": true,
	}, stmt.Params)
}

func TestBuilder_OrderByAsc(t *testing.T) {
	stmt := From("products").
		Select("product_id", "name").
		OrderBy("created_at", Asc).
		Build()

	assert.Equal(t, "SELECT product_id, name FROM products ORDER BY created_at ASC", stmt.SQL)
	assert.Empty(t, stmt.Params)
}

func TestBuilder_OrderByDesc(t *testing.T) {
	stmt := From("products").
		Select("product_id", "name").
		OrderBy("created_at", Desc).
		Build()

	assert.Equal(t, "SELECT product_id, name FROM products ORDER BY created_at DESC", stmt.SQL)
	assert.Empty(t, stmt.Params)
}

func TestBuilder_Limit(t *testing.T) {
	stmt := From("products").
		Select("product_id", "name").
		Limit(10).
		Build()

	assert.Equal(t, "SELECT product_id, name FROM products LIMIT @limit", stmt.SQL)
	assert.Equal(t, map[string]interface{}{
		"limit": int64(10),
	}, stmt.Params)
}

func TestBuilder_Offset(t *testing.T) {
	stmt := From("products").
		Select("product_id", "name").
		Offset(20).
		Build()

	assert.Equal(t, "SELECT product_id, name FROM products OFFSET @offset", stmt.SQL)
	assert.Equal(t, map[string]interface{}{
		"offset": int64(20),
	}, stmt.Params)
}

func TestBuilder_LimitAndOffset(t *testing.T) {
	stmt := From("products").
		Select("product_id", "name").
		Limit(10).
		Offset(20).
		Build()

	assert.Equal(t, "SELECT product_id, name FROM products LIMIT @limit OFFSET @offset", stmt.SQL)
	assert.Equal(t, map[string]interface{}{
		"limit":  int64(10),
		"offset": int64(20),
	}, stmt.Params)
}

func TestBuilder_CompleteQuery(t *testing.T) {
	stmt := From("products").
		Select("product_id", "name", "category", "is_featured").
		Where(Eq("category", "iPhones")).
		Where(Eq("is_featured", true)).
		OrderBy("created_at", Desc).
		Limit(50).
		Offset(100).
		Build()

	expectedSQL := "SELECT product_id, name, category, is_featured FROM products WHERE category = @p0 AND is_featured = @p1 ORDER BY created_at DESC LIMIT @limit OFFSET @offset"
	assert.Equal(t, expectedSQL, stmt.SQL)
	assert.Equal(t, map[string]interface{}{
		"p0":     "iPhones",
		"p1":     true,
		"limit":  int64(50),
		"offset": int64(100),
	}, stmt.Params)
}

func TestBuilder_Count(t *testing.T) {
	builder := From("products").
		Select("product_id", "name", "category").
		Where(Eq("category", "iPhones")).
		Where(Eq("is_featured", true)).
		OrderBy("created_at", Desc).
		Limit(50).
		Offset(100)

	// Main query
	mainStmt := builder.Build()
	assert.Contains(t, mainStmt.SQL, "SELECT product_id, name, category FROM products")
	assert.Contains(t, mainStmt.SQL, "LIMIT @limit")
	assert.Contains(t, mainStmt.SQL, "OFFSET @offset")

	// Count query - should reuse WHERE but not pagination/ordering
	countStmt := builder.Count().Build()
	assert.Equal(t, "SELECT COUNT(*) FROM products WHERE category = @p0 AND is_featured = @p1", countStmt.SQL)
	assert.Equal(t, map[string]interface{}{
		"p0": "iPhones",
		"p1": true,
	}, countStmt.Params)

	// Verify original builder is unchanged (immutability)
	mainStmt2 := builder.Build()
	assert.Equal(t, mainStmt.SQL, mainStmt2.SQL)
}

func TestBuilder_CountWithoutFilters(t *testing.T) {
	stmt := From("products").
		Select("product_id", "name").
		Count().
		Build()

	assert.Equal(t, "SELECT COUNT(*) FROM products", stmt.SQL)
	assert.Empty(t, stmt.Params)
}

func TestBuilder_Immutability(t *testing.T) {
	base := From("products").Select("product_id")

	// Add different WHERE conditions
	stmt1 := base.Where(Eq("is_featured", true)).Build()
	stmt2 := base.Where(Eq("category", "iPhones")).Build()

	// Both should have their own conditions
	assert.Contains(t, stmt1.SQL, "is_featured = @p0")
	assert.NotContains(t, stmt1.SQL, "category")

	assert.Contains(t, stmt2.SQL, "category = @p0")
	assert.NotContains(t, stmt2.SQL, "is_featured")
}

func TestBuilder_EmptyWhere(t *testing.T) {
	stmt := From("products").
		Select("product_id", "name").
		OrderBy("created_at", Desc).
		Build()

	assert.Equal(t, "SELECT product_id, name FROM products ORDER BY created_at DESC", stmt.SQL)
	assert.Empty(t, stmt.Params)
}

func TestBuilder_OnlyWhereNoOrderOrPagination(t *testing.T) {
	stmt := From("products").
		Select("product_id").
		Where(Eq("is_featured", true)).
		Build()

	assert.Equal(t, "SELECT product_id FROM products WHERE is_featured = @p0", stmt.SQL)
	assert.Equal(t, map[string]interface{}{
		"p0": true,
	}, stmt.Params)
}

func TestCondition_Eq(t *testing.T) {
	cond := Eq("is_featured", true)
	sql, params := cond.SQL(0)

	assert.Equal(t, "is_featured = @p0", sql)
	assert.Equal(t, map[string]interface{}{
		"p0": true,
	}, params)
}

func TestCondition_EqWithDifferentParamIndex(t *testing.T) {
	cond := Eq("category", "iPhones")
	sql, params := cond.SQL(5)

	assert.Equal(t, "category = @p5", sql)
	assert.Equal(t, map[string]interface{}{
		"p5": "iPhones",
	}, params)
}

func TestCondition_IsNull(t *testing.T) {
	cond := IsNull("discount_price")
	sql, params := cond.SQL(0)

	assert.Equal(t, "discount_price IS NULL", sql)
	assert.Empty(t, params)
}

func TestCondition_IsNotNull(t *testing.T) {
	cond := IsNotNull("discount_price")
	sql, params := cond.SQL(0)

	assert.Equal(t, "discount_price IS NOT NULL", sql)
	assert.Empty(t, params)
}

func TestBuilder_String(t *testing.T) {
	builder := From("products").
		Select("product_id", "name").
		Where(Eq("is_featured", true))

	str := builder.String()
	require.NotEmpty(t, str)
	assert.Contains(t, str, "SQL:")
	assert.Contains(t, str, "Params:")
	assert.Contains(t, str, "products")
}

func TestBuilder_WhereWithIsNull(t *testing.T) {
	stmt := From("products").
		Select("product_id", "name").
		Where(Eq("is_featured", true)).
		Where(IsNull("discount_price")).
		Build()

	assert.Equal(t, "SELECT product_id, name FROM products WHERE is_featured = @p0 AND discount_price IS NULL", stmt.SQL)
	assert.Equal(t, map[string]interface{}{
		"p0": true,
	}, stmt.Params)
}

func TestBuilder_MultipleSelectCalls(t *testing.T) {
	stmt := From("products").
		Select("product_id", "name").
		Select("category", "is_featured").
		Build()

	assert.Equal(t, "SELECT product_id, name, category, is_featured FROM products", stmt.SQL)
	assert.Empty(t, stmt.Params)
}

func TestBuilder_OrderByTieBreaker(t *testing.T) {
	stmt := From("products").
		Select("product_id").
		OrderBy("created_at", Asc).
		OrderBy("product_id", Asc).
		Build()

	assert.Equal(t, "SELECT product_id FROM products ORDER BY created_at ASC, product_id ASC", stmt.SQL)
}

func TestCondition_Comparisons(t *testing.T) {
	sql, params := Lt("processed_at", "2024-01-01").SQL(2)
	assert.Equal(t, "processed_at < @p2", sql)
	assert.Equal(t, map[string]interface{}{"p2": "2024-01-01"}, params)

	sql, params = Gte("stock", int64(1)).SQL(0)
	assert.Equal(t, "stock >= @p0", sql)
	assert.Equal(t, map[string]interface{}{"p0": int64(1)}, params)
}

func TestBuilder_ParamIndexSkipsNullConditions(t *testing.T) {
	stmt := From("outbox_events").
		Select("COUNT(*)").
		Where(Eq("status", "completed")).
		Where(IsNotNull("processed_at")).
		Where(Lt("processed_at", "cutoff")).
		Build()

	assert.Equal(t, "SELECT COUNT(*) FROM outbox_events WHERE status = @p0 AND processed_at IS NOT NULL AND processed_at < @p1", stmt.SQL)
	assert.Equal(t, map[string]interface{}{"p0": "completed", "p1": "cutoff"}, stmt.Params)
}

func TestBuilder_BuildDelete(t *testing.T) {
	t.Run("with conditions", func(t *testing.T) {
		stmt := From("outbox_events").
			Select("event_id").
			Where(Eq("status", "failed")).
			Where(Lt("processed_at", "cutoff")).
			OrderBy("created_at", Desc).
			Limit(10).
			BuildDelete()

		assert.Equal(t, "DELETE FROM outbox_events WHERE status = @p0 AND processed_at < @p1", stmt.SQL)
		assert.Equal(t, map[string]interface{}{"p0": "failed", "p1": "cutoff"}, stmt.Params)
	})

	t.Run("without conditions", func(t *testing.T) {
		stmt := From("outbox_events").BuildDelete()
		assert.Equal(t, "DELETE FROM outbox_events WHERE true", stmt.SQL)
		assert.Empty(t, stmt.Params)
	})
}
