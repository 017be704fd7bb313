package storefront

import (
	"bytes"
	"encoding/json"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	catalog "github.com/light-bringer/storefront-service/internal/app/catalog/domain"
)

type getProductRequest struct {
	ID string `json:"id"`
}

type listProductsRequest struct {
	Category      string         `json:"category"`
	Subcategory   string         `json:"subcategory"`
	FeaturedOnly  bool           `json:"featured_only"`
	NewArrivals   bool           `json:"new_arrivals"`
	MinPrice      *catalog.Money `json:"min_price"`
	MaxPrice      *catalog.Money `json:"max_price"`
	Subcategories []string       `json:"subcategories"`
	Sort          string         `json:"sort"`
}

type searchProductsRequest struct {
	Query         string         `json:"query"`
	Sort          string         `json:"sort"`
	Subcategories []string       `json:"subcategories"`
	MinPrice      *catalog.Money `json:"min_price"`
	MaxPrice      *catalog.Money `json:"max_price"`
}

type similarProductsRequest struct {
	ID    string `json:"id"`
	Limit int    `json:"limit"`
}

type hasPermissionRequest struct {
	MemberID string `json:"member_id"`
	Section  string `json:"section"`
	MinLevel string `json:"min_level"`
}

// decodeRequest reads a Struct into a typed request. Unknown fields are
// rejected.
func decodeRequest(in *structpb.Struct, out interface{}) error {
	raw, err := in.MarshalJSON()
	if err != nil {
		return status.Error(codes.InvalidArgument, "malformed request")
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(out); err != nil {
		return status.Errorf(codes.InvalidArgument, "invalid request: %v", err)
	}
	return nil
}

// validateGetProductRequest validates the GetProduct request.
func validateGetProductRequest(req *getProductRequest) error {
	if req.ID == "" {
		return status.Error(codes.InvalidArgument, "id is required")
	}
	return nil
}

// validateListProductsRequest validates the ListProducts request.
func validateListProductsRequest(req *listProductsRequest) error {
	if req.Subcategory != "" && req.Category == "" {
		return status.Error(codes.InvalidArgument, "subcategory requires category")
	}
	return nil
}

// validateSimilarProductsRequest validates the SimilarProducts request.
func validateSimilarProductsRequest(req *similarProductsRequest) error {
	if req.ID == "" {
		return status.Error(codes.InvalidArgument, "id is required")
	}
	if req.Limit < 0 {
		return status.Error(codes.InvalidArgument, "limit cannot be negative")
	}
	return nil
}

// validateHasPermissionRequest validates the HasPermission request.
func validateHasPermissionRequest(req *hasPermissionRequest) error {
	if req.MemberID == "" {
		return status.Error(codes.InvalidArgument, "member_id is required")
	}
	if req.Section == "" {
		return status.Error(codes.InvalidArgument, "section is required")
	}
	if req.MinLevel == "" {
		return status.Error(codes.InvalidArgument, "min_level is required")
	}
	return nil
}
