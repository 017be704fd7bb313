package storefront

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/light-bringer/storefront-service/internal/app/catalog/queries/get_product"
	"github.com/light-bringer/storefront-service/internal/app/catalog/queries/list_categories"
	"github.com/light-bringer/storefront-service/internal/app/catalog/queries/list_products"
	"github.com/light-bringer/storefront-service/internal/app/catalog/queries/search_products"
	"github.com/light-bringer/storefront-service/internal/app/catalog/queries/similar_products"
	catalogstore "github.com/light-bringer/storefront-service/internal/app/catalog/store"
	"github.com/light-bringer/storefront-service/internal/app/team/queries/has_permission"
	teamstore "github.com/light-bringer/storefront-service/internal/app/team/store"
	"github.com/light-bringer/storefront-service/internal/testutil"
)

const bufSize = 1024 * 1024

func TestRegisterStorefrontServer(t *testing.T) {
	server := grpc.NewServer()
	RegisterStorefrontServer(server, &Handler{})

	info, ok := server.GetServiceInfo()[ServiceName]
	require.True(t, ok)
	assert.Nil(t, info.Metadata, "no descriptor file backs the service")

	var names []string
	for _, m := range info.Methods {
		names = append(names, m.Name)
	}
	assert.ElementsMatch(t, []string{
		MethodGetProduct, MethodListProducts, MethodSearchProducts,
		MethodSimilarProducts, MethodListCategories, MethodHasPermission,
	}, names)
}

// setupGRPCTest creates an in-memory gRPC server for testing.
func setupGRPCTest(t *testing.T) *Client {
	t.Helper()

	products := catalogstore.NewProducts(testutil.SampleCatalog())
	categories := catalogstore.NewCategories(testutil.SampleCategories())
	roster := teamstore.NewRoster(testutil.SampleTeam())

	handler := NewHandler(
		get_product.NewQuery(products),
		list_products.NewQuery(products),
		search_products.NewQuery(products),
		similar_products.NewQuery(products),
		list_categories.NewQuery(categories),
		has_permission.NewQuery(roster),
	)

	lis := bufconn.Listen(bufSize)
	server := grpc.NewServer()
	RegisterStorefrontServer(server, handler)

	go func() {
		if err := server.Serve(lis); err != nil {
			t.Logf("Server error: %v", err)
		}
	}()

	conn, err := grpc.NewClient(
		"passthrough:///bufnet",
		grpc.WithContextDialer(func(context.Context, string) (net.Conn, error) {
			return lis.Dial()
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		conn.Close()
		server.Stop()
	})

	return NewClient(conn)
}

func productIDs(t *testing.T, reply *structpb.Struct) []string {
	t.Helper()
	list := reply.GetFields()["products"].GetListValue().GetValues()
	ids := make([]string, len(list))
	for i, v := range list {
		ids[i] = v.GetStructValue().GetFields()["id"].GetStringValue()
	}
	return ids
}

func requireCode(t *testing.T, err error, code codes.Code) {
	t.Helper()
	require.Error(t, err)
	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, code, st.Code())
}

func TestGRPC_GetProduct(t *testing.T) {
	client := setupGRPCTest(t)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		reply, err := client.Call(ctx, MethodGetProduct, map[string]interface{}{"id": "1"})
		require.NoError(t, err)

		product := reply.GetFields()["product"].GetStructValue().GetFields()
		assert.Equal(t, "iPhone 15 Pro Max", product["name"].GetStringValue())
		assert.Equal(t, float64(119990), product["price"].GetNumberValue())
		assert.Equal(t, float64(105990), product["effectivePrice"].GetNumberValue())
		assert.Equal(t, "Pro", product["subcategory"].GetStringValue())
	})

	t.Run("not found", func(t *testing.T) {
		_, err := client.Call(ctx, MethodGetProduct, map[string]interface{}{"id": "missing"})
		requireCode(t, err, codes.NotFound)
	})

	t.Run("missing id", func(t *testing.T) {
		_, err := client.Call(ctx, MethodGetProduct, map[string]interface{}{})
		requireCode(t, err, codes.InvalidArgument)
	})

	t.Run("unknown field", func(t *testing.T) {
		_, err := client.Call(ctx, MethodGetProduct, map[string]interface{}{"id": "1", "colour": "red"})
		requireCode(t, err, codes.InvalidArgument)
	})
}

func TestGRPC_ListProducts(t *testing.T) {
	client := setupGRPCTest(t)
	ctx := context.Background()

	reply, err := client.Call(ctx, MethodListProducts, map[string]interface{}{
		"category": "iPhones",
		"sort":     "price-asc",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"16e", "1", "6"}, productIDs(t, reply))

	reply, err = client.Call(ctx, MethodListProducts, map[string]interface{}{
		"min_price": 100000,
		"max_price": 120000,
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"1", "6"}, productIDs(t, reply))

	_, err = client.Call(ctx, MethodListProducts, map[string]interface{}{"sort": "cheapest"})
	requireCode(t, err, codes.InvalidArgument)

	_, err = client.Call(ctx, MethodListProducts, map[string]interface{}{"min_price": 10, "max_price": 5})
	requireCode(t, err, codes.InvalidArgument)

	_, err = client.Call(ctx, MethodListProducts, map[string]interface{}{"subcategory": "Pro"})
	requireCode(t, err, codes.InvalidArgument)
}

func TestGRPC_SearchProducts(t *testing.T) {
	client := setupGRPCTest(t)

	reply, err := client.Call(context.Background(), MethodSearchProducts, map[string]interface{}{"query": "iphone pro"})
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "6", "2", "3", "16e"}, productIDs(t, reply))
	assert.False(t, reply.GetFields()["degraded"].GetBoolValue())

	reply, err = client.Call(context.Background(), MethodSearchProducts, map[string]interface{}{"query": "   "})
	require.NoError(t, err)
	assert.Empty(t, productIDs(t, reply))
}

func TestGRPC_SimilarProducts(t *testing.T) {
	client := setupGRPCTest(t)
	ctx := context.Background()

	reply, err := client.Call(ctx, MethodSimilarProducts, map[string]interface{}{"id": "1"})
	require.NoError(t, err)
	assert.Equal(t, []string{"16e", "6"}, productIDs(t, reply))

	reply, err = client.Call(ctx, MethodSimilarProducts, map[string]interface{}{"id": "1", "limit": 1})
	require.NoError(t, err)
	assert.Equal(t, []string{"16e"}, productIDs(t, reply))

	_, err = client.Call(ctx, MethodSimilarProducts, map[string]interface{}{"id": "nope"})
	requireCode(t, err, codes.NotFound)
}

func TestGRPC_ListCategories(t *testing.T) {
	client := setupGRPCTest(t)

	reply, err := client.Call(context.Background(), MethodListCategories, nil)
	require.NoError(t, err)

	categories := reply.GetFields()["categories"].GetListValue().GetValues()
	require.Len(t, categories, 3)
	assert.Equal(t, "iphones", categories[1].GetStructValue().GetFields()["slug"].GetStringValue())
}

func TestGRPC_HasPermission(t *testing.T) {
	client := setupGRPCTest(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		member  string
		section string
		level   string
		want    bool
	}{
		{"admin", "1", "settings", "full_access", true},
		{"manager write", "2", "products", "write", true},
		{"manager settings", "2", "settings", "read", false},
		{"inactive staff", "4", "promotions", "read", false},
		{"unknown member", "42", "dashboard", "read", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reply, err := client.Call(ctx, MethodHasPermission, map[string]interface{}{
				"member_id": tt.member,
				"section":   tt.section,
				"min_level": tt.level,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, reply.GetFields()["allowed"].GetBoolValue())
		})
	}

	t.Run("invalid section", func(t *testing.T) {
		_, err := client.Call(ctx, MethodHasPermission, map[string]interface{}{
			"member_id": "2", "section": "billing", "min_level": "read",
		})
		requireCode(t, err, codes.InvalidArgument)
	})

	t.Run("invalid level", func(t *testing.T) {
		_, err := client.Call(ctx, MethodHasPermission, map[string]interface{}{
			"member_id": "2", "section": "products", "min_level": "owner",
		})
		requireCode(t, err, codes.InvalidArgument)
	})

	t.Run("no_access is not a minimum level", func(t *testing.T) {
		_, err := client.Call(ctx, MethodHasPermission, map[string]interface{}{
			"member_id": "4", "section": "settings", "min_level": "no_access",
		})
		requireCode(t, err, codes.InvalidArgument)
	})
}
