package http

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/light-bringer/storefront-service/internal/app/catalog/contracts"
	"github.com/light-bringer/storefront-service/internal/app/catalog/domain"
	"github.com/light-bringer/storefront-service/internal/app/catalog/queries/get_product"
	"github.com/light-bringer/storefront-service/internal/app/catalog/queries/list_categories"
	"github.com/light-bringer/storefront-service/internal/app/catalog/queries/list_products"
	"github.com/light-bringer/storefront-service/internal/app/catalog/queries/search_products"
	"github.com/light-bringer/storefront-service/internal/app/catalog/queries/similar_products"
)

// CatalogHandler serves the public catalog.
type CatalogHandler struct {
	getProduct      *get_product.Query
	listProducts    *list_products.Query
	searchProducts  *search_products.Query
	similarProducts *similar_products.Query
	listCategories  *list_categories.Query
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(
	getProduct *get_product.Query,
	listProducts *list_products.Query,
	searchProducts *search_products.Query,
	similarProducts *similar_products.Query,
	listCategories *list_categories.Query,
) *CatalogHandler {
	return &CatalogHandler{
		getProduct:      getProduct,
		listProducts:    listProducts,
		searchProducts:  searchProducts,
		similarProducts: similarProducts,
		listCategories:  listCategories,
	}
}

// ProductListResponse is the body of product list endpoints.
type ProductListResponse struct {
	Products []*contracts.ProductDTO `json:"products"`
	Total    int                     `json:"total"`
	Degraded bool                    `json:"degraded,omitempty"`
}

// RegisterRoutes mounts the catalog routes.
func (h *CatalogHandler) RegisterRoutes(r chi.Router) {
	r.Get("/products", h.list)
	r.Get("/products/{id}", h.get)
	r.Get("/products/{id}/similar", h.similar)
	r.Get("/search", h.search)
	r.Get("/categories", h.categories)
	r.Get("/categories/{slug}", h.category)
}

func (h *CatalogHandler) list(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	min, max, err := priceBounds(q)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if q.Get("subcategory") != "" && q.Get("category") == "" {
		respondError(w, http.StatusBadRequest, "subcategory requires category")
		return
	}

	products, err := h.listProducts.Execute(r.Context(), &list_products.Request{
		Category:      q.Get("category"),
		Subcategory:   q.Get("subcategory"),
		FeaturedOnly:  q.Get("featured") == "true",
		NewArrivals:   q.Get("new") == "true",
		MinPrice:      min,
		MaxPrice:      max,
		Subcategories: splitList(q.Get("subcategories")),
		Sort:          q.Get("sort"),
	})
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respond(w, http.StatusOK, ProductListResponse{
		Products: contracts.NewProductDTOs(products),
		Total:    len(products),
	})
}

func (h *CatalogHandler) get(w http.ResponseWriter, r *http.Request) {
	product, err := h.getProduct.Execute(r.Context(), &get_product.Request{ProductID: chi.URLParam(r, "id")})
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respond(w, http.StatusOK, contracts.NewProductDTO(product))
}

func (h *CatalogHandler) similar(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			respondError(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = n
	}

	products, err := h.similarProducts.Execute(r.Context(), &similar_products.Request{
		ProductID: chi.URLParam(r, "id"),
		Limit:     limit,
	})
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respond(w, http.StatusOK, ProductListResponse{
		Products: contracts.NewProductDTOs(products),
		Total:    len(products),
	})
}

func (h *CatalogHandler) search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	min, max, err := priceBounds(q)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.searchProducts.Execute(r.Context(), &search_products.Request{
		Query:         q.Get("q"),
		Sort:          q.Get("sort"),
		Subcategories: splitList(q.Get("subcategories")),
		MinPrice:      min,
		MaxPrice:      max,
	})
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respond(w, http.StatusOK, ProductListResponse{
		Products: contracts.NewProductDTOs(resp.Products),
		Total:    len(resp.Products),
		Degraded: resp.Degraded,
	})
}

func (h *CatalogHandler) categories(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, h.listCategories.Execute(r.Context()))
}

func (h *CatalogHandler) category(w http.ResponseWriter, r *http.Request) {
	category, err := h.listCategories.BySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respond(w, http.StatusOK, category)
}

// priceBounds parses the optional min and max query parameters.
func priceBounds(q url.Values) (min, max *domain.Money, err error) {
	if s := q.Get("min"); s != "" {
		if min, err = domain.ParseMoney(s); err != nil {
			return nil, nil, err
		}
	}
	if s := q.Get("max"); s != "" {
		if max, err = domain.ParseMoney(s); err != nil {
			return nil, nil, err
		}
	}
	return min, max, nil
}

// splitList splits a comma-separated parameter, dropping blanks.
func splitList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
