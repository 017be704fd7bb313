package storefront

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "storefront.v1.StorefrontService"

// Method names.
const (
	MethodGetProduct      = "GetProduct"
	MethodListProducts    = "ListProducts"
	MethodSearchProducts  = "SearchProducts"
	MethodSimilarProducts = "SimilarProducts"
	MethodListCategories  = "ListCategories"
	MethodHasPermission   = "HasPermission"
)

// StorefrontServer is the server API. Requests and replies are JSON-shaped
// google.protobuf.Struct messages.
type StorefrontServer interface {
	GetProduct(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListProducts(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SearchProducts(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SimilarProducts(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListCategories(context.Context, *structpb.Struct) (*structpb.Struct, error)
	HasPermission(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

type unaryCall func(StorefrontServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

// ServiceDesc describes StorefrontService for grpc.Server.RegisterService.
// Messages are structpb.Struct, so there is no .proto file to reference.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*StorefrontServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(MethodGetProduct, StorefrontServer.GetProduct),
		unary(MethodListProducts, StorefrontServer.ListProducts),
		unary(MethodSearchProducts, StorefrontServer.SearchProducts),
		unary(MethodSimilarProducts, StorefrontServer.SimilarProducts),
		unary(MethodListCategories, StorefrontServer.ListCategories),
		unary(MethodHasPermission, StorefrontServer.HasPermission),
	},
	Streams: []grpc.StreamDesc{},
}

// RegisterStorefrontServer registers srv on s.
func RegisterStorefrontServer(s grpc.ServiceRegistrar, srv StorefrontServer) {
	s.RegisterService(&ServiceDesc, srv)
}

func unary(name string, call unaryCall) grpc.MethodDesc {
	fullMethod := "/" + ServiceName + "/" + name
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
			in := new(structpb.Struct)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(StorefrontServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: fullMethod,
			}
			handler := func(ctx context.Context, req interface{}) (interface{}, error) {
				return call(srv.(StorefrontServer), ctx, req.(*structpb.Struct))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// Client calls StorefrontService methods by name.
type Client struct {
	cc grpc.ClientConnInterface
}

// NewClient creates a client over an existing connection.
func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

// Call invokes method with a request built from fields.
func (c *Client) Call(ctx context.Context, method string, fields map[string]interface{}, opts ...grpc.CallOption) (*structpb.Struct, error) {
	in, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, err
	}
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, "/"+ServiceName+"/"+method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
