// Package storefront serves the catalog and the permission check over gRPC.
package storefront

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/light-bringer/storefront-service/internal/app/catalog/contracts"
	"github.com/light-bringer/storefront-service/internal/app/catalog/queries/get_product"
	"github.com/light-bringer/storefront-service/internal/app/catalog/queries/list_categories"
	"github.com/light-bringer/storefront-service/internal/app/catalog/queries/list_products"
	"github.com/light-bringer/storefront-service/internal/app/catalog/queries/search_products"
	"github.com/light-bringer/storefront-service/internal/app/catalog/queries/similar_products"
	"github.com/light-bringer/storefront-service/internal/app/team/domain"
	"github.com/light-bringer/storefront-service/internal/app/team/queries/has_permission"
)

// Handler implements StorefrontServer.
// It's a thin coordinator that delegates to queries.
type Handler struct {
	getProduct      *get_product.Query
	listProducts    *list_products.Query
	searchProducts  *search_products.Query
	similarProducts *similar_products.Query
	listCategories  *list_categories.Query
	hasPermission   *has_permission.Query
}

// NewHandler creates a new gRPC storefront handler.
func NewHandler(
	getProduct *get_product.Query,
	listProducts *list_products.Query,
	searchProducts *search_products.Query,
	similarProducts *similar_products.Query,
	listCategories *list_categories.Query,
	hasPermission *has_permission.Query,
) *Handler {
	return &Handler{
		getProduct:      getProduct,
		listProducts:    listProducts,
		searchProducts:  searchProducts,
		similarProducts: similarProducts,
		listCategories:  listCategories,
		hasPermission:   hasPermission,
	}
}

// GetProduct retrieves a product by ID.
func (h *Handler) GetProduct(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req getProductRequest
	if err := decodeRequest(in, &req); err != nil {
		return nil, err
	}
	if err := validateGetProductRequest(&req); err != nil {
		return nil, err
	}

	product, err := h.getProduct.Execute(ctx, &get_product.Request{ProductID: req.ID})
	if err != nil {
		return nil, mapDomainErrorToGRPC(err)
	}

	return encodeReply(productReply{Product: contracts.NewProductDTO(product)})
}

// ListProducts lists products by category, flags and price, in the requested order.
func (h *Handler) ListProducts(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req listProductsRequest
	if err := decodeRequest(in, &req); err != nil {
		return nil, err
	}
	if err := validateListProductsRequest(&req); err != nil {
		return nil, err
	}

	products, err := h.listProducts.Execute(ctx, &list_products.Request{
		Category:      req.Category,
		Subcategory:   req.Subcategory,
		FeaturedOnly:  req.FeaturedOnly,
		NewArrivals:   req.NewArrivals,
		MinPrice:      req.MinPrice,
		MaxPrice:      req.MaxPrice,
		Subcategories: req.Subcategories,
		Sort:          req.Sort,
	})
	if err != nil {
		return nil, mapDomainErrorToGRPC(err)
	}

	return encodeReply(productsToReply(products, false))
}

// SearchProducts runs a free-text search. A degraded search still succeeds.
func (h *Handler) SearchProducts(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req searchProductsRequest
	if err := decodeRequest(in, &req); err != nil {
		return nil, err
	}

	resp, err := h.searchProducts.Execute(ctx, &search_products.Request{
		Query:         req.Query,
		Sort:          req.Sort,
		Subcategories: req.Subcategories,
		MinPrice:      req.MinPrice,
		MaxPrice:      req.MaxPrice,
	})
	if err != nil {
		return nil, mapDomainErrorToGRPC(err)
	}

	return encodeReply(productsToReply(resp.Products, resp.Degraded))
}

// SimilarProducts returns other products from the same category.
func (h *Handler) SimilarProducts(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req similarProductsRequest
	if err := decodeRequest(in, &req); err != nil {
		return nil, err
	}
	if err := validateSimilarProductsRequest(&req); err != nil {
		return nil, err
	}

	products, err := h.similarProducts.Execute(ctx, &similar_products.Request{
		ProductID: req.ID,
		Limit:     req.Limit,
	})
	if err != nil {
		return nil, mapDomainErrorToGRPC(err)
	}

	return encodeReply(productsToReply(products, false))
}

// ListCategories returns the category tree.
func (h *Handler) ListCategories(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req struct{}
	if err := decodeRequest(in, &req); err != nil {
		return nil, err
	}
	return encodeReply(categoriesReply{Categories: h.listCategories.Execute(ctx)})
}

// HasPermission answers a permission check. Unknown members are denied.
func (h *Handler) HasPermission(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req hasPermissionRequest
	if err := decodeRequest(in, &req); err != nil {
		return nil, err
	}
	if err := validateHasPermissionRequest(&req); err != nil {
		return nil, err
	}

	section, err := domain.ParseSection(req.Section)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	level, err := domain.ParseMinimumLevel(req.MinLevel)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	allowed := h.hasPermission.Execute(ctx, &has_permission.Request{
		MemberID: req.MemberID,
		Section:  section,
		MinLevel: level,
	})

	return encodeReply(permissionReply{Allowed: allowed})
}
