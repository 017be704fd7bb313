package storefront

import (
	"encoding/json"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/light-bringer/storefront-service/internal/app/catalog/contracts"
	"github.com/light-bringer/storefront-service/internal/app/catalog/domain"
)

type productReply struct {
	Product *contracts.ProductDTO `json:"product"`
}

type productsReply struct {
	Products []*contracts.ProductDTO `json:"products"`
	Degraded bool                    `json:"degraded,omitempty"`
}

type categoriesReply struct {
	Categories []domain.Category `json:"categories"`
}

type permissionReply struct {
	Allowed bool `json:"allowed"`
}

// encodeReply converts a reply value to a Struct through its JSON form.
func encodeReply(v interface{}) (*structpb.Struct, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, status.Error(codes.Internal, "failed to encode reply")
	}
	out := new(structpb.Struct)
	if err := out.UnmarshalJSON(raw); err != nil {
		return nil, status.Error(codes.Internal, "failed to encode reply")
	}
	return out, nil
}

func productsToReply(products []*domain.Product, degraded bool) productsReply {
	return productsReply{
		Products: contracts.NewProductDTOs(products),
		Degraded: degraded,
	}
}
