package contracts

import (
	"time"

	"github.com/light-bringer/storefront-service/internal/app/catalog/domain"
)

// ProductDTO is the wire shape of a product shared by the HTTP and gRPC
// transports.
type ProductDTO struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Category       string            `json:"category"`
	Subcategory    *string           `json:"subcategory,omitempty"`
	Price          *domain.Money     `json:"price"`
	DiscountPrice  *domain.Money     `json:"discountPrice,omitempty"`
	EffectivePrice *domain.Money     `json:"effectivePrice"`
	Description    string            `json:"description"`
	Features       []string          `json:"features"`
	Specifications map[string]string `json:"specifications"`
	Images         []string          `json:"images"`
	Stock          int               `json:"stock"`
	Rating         float64           `json:"rating"`
	Reviews        []domain.Review   `json:"reviews"`
	IsFeatured     bool              `json:"isFeatured"`
	IsNewArrival   bool              `json:"isNewArrival"`
	CreatedAt      time.Time         `json:"createdAt"`
	UpdatedAt      time.Time         `json:"updatedAt"`
}

// NewProductDTO converts a product for output.
func NewProductDTO(p *domain.Product) *ProductDTO {
	s := p.Snapshot()
	reviews := s.Reviews
	if reviews == nil {
		reviews = []domain.Review{}
	}
	return &ProductDTO{
		ID:             s.ID,
		Name:           s.Name,
		Category:       s.Category,
		Subcategory:    s.Subcategory,
		Price:          s.Price,
		DiscountPrice:  s.DiscountPrice,
		EffectivePrice: p.EffectivePrice(),
		Description:    s.Description,
		Features:       s.Features,
		Specifications: s.Specifications,
		Images:         s.Images,
		Stock:          s.Stock,
		Rating:         s.Rating,
		Reviews:        reviews,
		IsFeatured:     s.IsFeatured,
		IsNewArrival:   s.IsNewArrival,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}

// NewProductDTOs converts a list, keeping order.
func NewProductDTOs(products []*domain.Product) []*ProductDTO {
	out := make([]*ProductDTO, len(products))
	for i, p := range products {
		out[i] = NewProductDTO(p)
	}
	return out
}
