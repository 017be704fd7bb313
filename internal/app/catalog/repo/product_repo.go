package repo

import (
	"context"
	"encoding/json"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/light-bringer/storefront-service/internal/app/catalog/contracts"
	"github.com/light-bringer/storefront-service/internal/app/catalog/domain"
	"github.com/light-bringer/storefront-service/internal/models/m_product"
	"github.com/light-bringer/storefront-service/internal/pkg/query"
)

// ProductRepo implements ProductRepository for Spanner.
type ProductRepo struct {
	model *m_product.Model
}

// NewProductRepo creates a new ProductRepo.
func NewProductRepo() contracts.ProductRepository {
	return &ProductRepo{
		model: m_product.NewModel(),
	}
}

// InsertMut creates a mutation for inserting a new product.
func (r *ProductRepo) InsertMut(product *domain.Product) (*spanner.Mutation, error) {
	data, err := DomainToData(product)
	if err != nil {
		return nil, err
	}
	return r.model.InsertMut(data), nil
}

// UpdateMut creates a mutation for updating a product (only dirty fields).
func (r *ProductRepo) UpdateMut(product *domain.Product) (*spanner.Mutation, error) {
	changes := product.Changes()
	if !changes.HasChanges() {
		return nil, nil
	}

	updates := make(map[string]interface{})

	if changes.Dirty(domain.FieldName) {
		updates[m_product.Name] = product.Name()
	}
	if changes.Dirty(domain.FieldCategory) {
		updates[m_product.Category] = product.Category()
	}
	if changes.Dirty(domain.FieldSubcategory) {
		updates[m_product.Subcategory] = subcategoryColumn(product)
	}
	if changes.Dirty(domain.FieldPrice) {
		updates[m_product.Price] = product.Price().Rat()
	}
	if changes.Dirty(domain.FieldDiscountPrice) {
		updates[m_product.DiscountPrice] = discountColumn(product)
	}
	if changes.Dirty(domain.FieldDescription) {
		updates[m_product.Description] = product.Description()
	}
	if changes.Dirty(domain.FieldFeatures) {
		updates[m_product.Features] = product.Features()
	}
	if changes.Dirty(domain.FieldSpecifications) {
		updates[m_product.Specifications] = spanner.NullJSON{Value: product.Specifications(), Valid: true}
	}
	if changes.Dirty(domain.FieldImages) {
		updates[m_product.Images] = product.Images()
	}
	if changes.Dirty(domain.FieldStock) {
		updates[m_product.Stock] = int64(product.Stock())
	}
	if changes.Dirty(domain.FieldRating) {
		updates[m_product.Rating] = product.Rating()
	}
	if changes.Dirty(domain.FieldIsFeatured) {
		updates[m_product.IsFeatured] = product.IsFeatured()
	}
	if changes.Dirty(domain.FieldIsNewArrival) {
		updates[m_product.IsNewArrival] = product.IsNewArrival()
	}

	if len(updates) == 0 {
		return nil, nil
	}

	updates[m_product.UpdatedAt] = product.UpdatedAt()

	return r.model.UpdateMut(product.ID(), updates), nil
}

// DeleteMut creates a mutation removing the product row.
func (r *ProductRepo) DeleteMut(productID string) *spanner.Mutation {
	return r.model.DeleteMut(productID)
}

// Loader reads the catalog from Spanner.
type Loader struct {
	client *spanner.Client
}

// NewLoader creates a new Loader.
func NewLoader(client *spanner.Client) contracts.ProductLoader {
	return &Loader{client: client}
}

// LoadAllStatement selects every product, oldest first.
func LoadAllStatement() spanner.Statement {
	return query.From(m_product.TableName).
		Select(m_product.Columns()...).
		OrderBy(m_product.CreatedAt, query.Asc).
		OrderBy(m_product.ProductID, query.Asc).
		Build()
}

// LoadAll reads and validates every product.
func (l *Loader) LoadAll(ctx context.Context) ([]*domain.Product, error) {
	iter := l.client.Single().Query(ctx, LoadAllStatement())
	defer iter.Stop()

	products := make([]*domain.Product, 0)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate products: %w", err)
		}

		var data m_product.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse product: %w", err)
		}

		product, err := DataToDomain(&data)
		if err != nil {
			return nil, fmt.Errorf("product %s: %w", data.ProductID, err)
		}
		products = append(products, product)
	}

	return products, nil
}

// DomainToData converts a domain Product to database Data.
func DomainToData(product *domain.Product) (*m_product.Data, error) {
	reviews := product.Reviews()
	if reviews == nil {
		reviews = []domain.Review{}
	}

	return &m_product.Data{
		ProductID:      product.ID(),
		Name:           product.Name(),
		Category:       product.Category(),
		Subcategory:    subcategoryColumn(product),
		Price:          *product.Price().Rat(),
		DiscountPrice:  discountColumn(product),
		Description:    product.Description(),
		Features:       product.Features(),
		Specifications: spanner.NullJSON{Value: product.Specifications(), Valid: true},
		Images:         product.Images(),
		Stock:          int64(product.Stock()),
		Rating:         product.Rating(),
		Reviews:        spanner.NullJSON{Value: reviews, Valid: true},
		IsFeatured:     product.IsFeatured(),
		IsNewArrival:   product.IsNewArrival(),
		CreatedAt:      product.CreatedAt(),
		UpdatedAt:      product.UpdatedAt(),
	}, nil
}

// DataToDomain converts database Data to a validated domain Product.
func DataToDomain(data *m_product.Data) (*domain.Product, error) {
	snap := domain.ProductSnapshot{
		ID:           data.ProductID,
		Name:         data.Name,
		Category:     data.Category,
		Price:        domain.NewMoneyFromRat(&data.Price),
		Description:  data.Description,
		Features:     data.Features,
		Images:       data.Images,
		Stock:        int(data.Stock),
		Rating:       data.Rating,
		IsFeatured:   data.IsFeatured,
		IsNewArrival: data.IsNewArrival,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}

	if data.Subcategory.Valid {
		sub := data.Subcategory.StringVal
		snap.Subcategory = &sub
	}
	if data.DiscountPrice.Valid {
		snap.DiscountPrice = domain.NewMoneyFromRat(&data.DiscountPrice.Numeric)
	}
	if err := decodeJSON(data.Specifications, &snap.Specifications); err != nil {
		return nil, fmt.Errorf("invalid specifications: %w", err)
	}
	if err := decodeJSON(data.Reviews, &snap.Reviews); err != nil {
		return nil, fmt.Errorf("invalid reviews: %w", err)
	}

	product := domain.ReconstructProduct(snap)
	if err := product.Validate(); err != nil {
		return nil, err
	}
	return product, nil
}

func subcategoryColumn(product *domain.Product) spanner.NullString {
	sub, ok := product.Subcategory()
	return spanner.NullString{StringVal: sub, Valid: ok}
}

func discountColumn(product *domain.Product) spanner.NullNumeric {
	if d := product.DiscountPrice(); d != nil {
		return spanner.NullNumeric{Numeric: *d.Rat(), Valid: true}
	}
	return spanner.NullNumeric{}
}

// decodeJSON re-encodes a JSON column value into a typed destination.
func decodeJSON(col spanner.NullJSON, dst interface{}) error {
	if !col.Valid || col.Value == nil {
		return nil
	}
	raw, err := json.Marshal(col.Value)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, dst)
}
