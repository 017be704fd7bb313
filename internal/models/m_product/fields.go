package m_product

// Field name constants for the products table.
const (
	TableName = "products"

	ProductID      = "product_id"
	Name           = "name"
	Category       = "category"
	Subcategory    = "subcategory"
	Price          = "price"
	DiscountPrice  = "discount_price"
	Description    = "description"
	Features       = "features"
	Specifications = "specifications"
	Images         = "images"
	Stock          = "stock"
	Rating         = "rating"
	Reviews        = "reviews"
	IsFeatured     = "is_featured"
	IsNewArrival   = "is_new_arrival"
	CreatedAt      = "created_at"
	UpdatedAt      = "updated_at"
)

// Columns lists every column in table order.
func Columns() []string {
	return []string{
		ProductID,
		Name,
		Category,
		Subcategory,
		Price,
		DiscountPrice,
		Description,
		Features,
		Specifications,
		Images,
		Stock,
		Rating,
		Reviews,
		IsFeatured,
		IsNewArrival,
		CreatedAt,
		UpdatedAt,
	}
}
