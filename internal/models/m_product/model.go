package m_product

import (
	"sort"

	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the products table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a Spanner mutation for inserting a product.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.Insert(TableName, Columns(), []interface{}{
		data.ProductID,
		data.Name,
		data.Category,
		data.Subcategory,
		data.Price,
		data.DiscountPrice,
		data.Description,
		data.Features,
		data.Specifications,
		data.Images,
		data.Stock,
		data.Rating,
		data.Reviews,
		data.IsFeatured,
		data.IsNewArrival,
		data.CreatedAt,
		data.UpdatedAt,
	})
}

// UpdateMut creates a Spanner mutation for updating specific product columns.
// Columns are written in sorted order after the key.
func (m *Model) UpdateMut(productID string, updates map[string]interface{}) *spanner.Mutation {
	if len(updates) == 0 {
		return nil
	}

	names := make([]string, 0, len(updates))
	for col := range updates {
		names = append(names, col)
	}
	sort.Strings(names)

	columns := make([]string, 0, len(updates)+1)
	values := make([]interface{}, 0, len(updates)+1)

	columns = append(columns, ProductID)
	values = append(values, productID)

	for _, col := range names {
		columns = append(columns, col)
		values = append(values, updates[col])
	}

	return spanner.Update(TableName, columns, values)
}

// DeleteMut creates a Spanner mutation for deleting a product.
func (m *Model) DeleteMut(productID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{productID})
}
