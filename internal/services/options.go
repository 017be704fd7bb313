package services

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/storefront-service/internal/app/auth"
	cartstore "github.com/light-bringer/storefront-service/internal/app/cart/store"
	"github.com/light-bringer/storefront-service/internal/app/catalog/queries/get_product"
	"github.com/light-bringer/storefront-service/internal/app/catalog/queries/list_categories"
	"github.com/light-bringer/storefront-service/internal/app/catalog/queries/list_products"
	"github.com/light-bringer/storefront-service/internal/app/catalog/queries/search_products"
	"github.com/light-bringer/storefront-service/internal/app/catalog/queries/similar_products"
	catalogrepo "github.com/light-bringer/storefront-service/internal/app/catalog/repo"
	catalogstore "github.com/light-bringer/storefront-service/internal/app/catalog/store"
	"github.com/light-bringer/storefront-service/internal/app/catalog/usecases/add_product"
	"github.com/light-bringer/storefront-service/internal/app/catalog/usecases/delete_product"
	"github.com/light-bringer/storefront-service/internal/app/catalog/usecases/toggle_featured"
	"github.com/light-bringer/storefront-service/internal/app/catalog/usecases/update_product"
	"github.com/light-bringer/storefront-service/internal/app/outbox"
	"github.com/light-bringer/storefront-service/internal/app/outbox/queries/list_events"
	"github.com/light-bringer/storefront-service/internal/app/team/queries/get_member"
	"github.com/light-bringer/storefront-service/internal/app/team/queries/has_permission"
	"github.com/light-bringer/storefront-service/internal/app/team/queries/list_members"
	teamrepo "github.com/light-bringer/storefront-service/internal/app/team/repo"
	teamstore "github.com/light-bringer/storefront-service/internal/app/team/store"
	"github.com/light-bringer/storefront-service/internal/app/team/usecases/add_team_member"
	"github.com/light-bringer/storefront-service/internal/app/team/usecases/delete_team_member"
	"github.com/light-bringer/storefront-service/internal/app/team/usecases/update_permission"
	"github.com/light-bringer/storefront-service/internal/app/team/usecases/update_team_member"
	"github.com/light-bringer/storefront-service/internal/pkg/clock"
	"github.com/light-bringer/storefront-service/internal/pkg/committer"
	"github.com/light-bringer/storefront-service/internal/seed"
	"github.com/light-bringer/storefront-service/internal/transport/grpc/storefront"
	httphandler "github.com/light-bringer/storefront-service/internal/transport/http"
)

// Config is what the composition root needs from the environment.
type Config struct {
	// SpannerDB is the database path. Empty runs memory-only: the stores are
	// built from the embedded seed and a restart reverts to it.
	SpannerDB string
	JWTSecret string
	TokenTTL  time.Duration
	Clock     clock.Clock
}

// ServiceOptions holds all dependencies for the application.
//
// The catalog, team and cart stores are created once here and shared by
// reference with every query and use case; nothing else owns state.
type ServiceOptions struct {
	SpannerClient *spanner.Client

	Products   *catalogstore.Products
	Categories *catalogstore.Categories
	Team       *teamstore.Roster
	Carts      *cartstore.Sessions
	Auth       *auth.Service

	StorefrontHandler *storefront.Handler
	HTTPHandler       http.Handler
}

// NewServiceOptions creates and wires up all application dependencies.
func NewServiceOptions(ctx context.Context, cfg Config) (*ServiceOptions, error) {
	clk := cfg.Clock
	if clk == nil {
		clk = clock.NewRealClock()
	}

	// 1. Optional Spanner client
	var (
		spannerClient *spanner.Client
		applier       committer.Applier
		eventsModel   list_events.EventsReadModel = outbox.DisabledReadModel{}
	)
	if cfg.SpannerDB != "" {
		client, err := spanner.NewClient(ctx, cfg.SpannerDB)
		if err != nil {
			return nil, fmt.Errorf("failed to create Spanner client: %w", err)
		}
		spannerClient = client
		applier = client
		eventsModel = outbox.NewEventsReadModel(client)
	}
	comm := committer.NewCommitter(applier)

	// 2. Load the in-memory collections
	productList, memberList, err := loadCollections(ctx, spannerClient, comm, clk)
	if err != nil {
		closeClient(spannerClient)
		return nil, err
	}
	categoryList, err := seed.Categories()
	if err != nil {
		closeClient(spannerClient)
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}

	products := catalogstore.NewProducts(productList)
	categories := catalogstore.NewCategories(categoryList)
	roster := teamstore.NewRoster(memberList)
	carts := cartstore.NewSessions(products, clk)
	authService := auth.NewService(roster, cfg.JWTSecret, cfg.TokenTTL, clk)

	// 3. Create repositories
	productRepo := catalogrepo.NewProductRepo()
	memberRepo := teamrepo.NewMemberRepo()
	outboxRepo := outbox.NewRepo()

	// 4. Create command use cases (write operations)
	addProductUseCase := add_product.NewInteractor(products, productRepo, outboxRepo, comm, clk)
	updateProductUseCase := update_product.NewInteractor(products, productRepo, outboxRepo, comm, clk)
	deleteProductUseCase := delete_product.NewInteractor(products, productRepo, outboxRepo, comm, clk)
	toggleFeaturedUseCase := toggle_featured.NewInteractor(products, productRepo, outboxRepo, comm, clk)
	addMemberUseCase := add_team_member.NewInteractor(roster, memberRepo, outboxRepo, comm, clk)
	updateMemberUseCase := update_team_member.NewInteractor(roster, memberRepo, outboxRepo, comm, clk)
	deleteMemberUseCase := delete_team_member.NewInteractor(roster, memberRepo, outboxRepo, comm, clk)
	updatePermissionUseCase := update_permission.NewInteractor(roster, memberRepo, outboxRepo, comm, clk)

	// 5. Create query use cases (read operations)
	getProductQuery := get_product.NewQuery(products)
	listProductsQuery := list_products.NewQuery(products)
	searchProductsQuery := search_products.NewQuery(products)
	similarProductsQuery := similar_products.NewQuery(products)
	listCategoriesQuery := list_categories.NewQuery(categories)
	hasPermissionQuery := has_permission.NewQuery(roster)
	getMemberQuery := get_member.NewQuery(roster)
	listMembersQuery := list_members.NewQuery(roster)
	listEventsQuery := list_events.NewQuery(eventsModel)

	// 6. Create transport handlers
	storefrontHandler := storefront.NewHandler(
		getProductQuery,
		listProductsQuery,
		searchProductsQuery,
		similarProductsQuery,
		listCategoriesQuery,
		hasPermissionQuery,
	)

	router := httphandler.NewRouter(
		httphandler.NewCatalogHandler(
			getProductQuery,
			listProductsQuery,
			searchProductsQuery,
			similarProductsQuery,
			listCategoriesQuery,
		),
		httphandler.NewCartHandler(carts),
		httphandler.NewAuthHandler(authService),
		httphandler.NewAdminHandler(
			listProductsQuery,
			addProductUseCase,
			updateProductUseCase,
			deleteProductUseCase,
			toggleFeaturedUseCase,
			listMembersQuery,
			getMemberQuery,
			hasPermissionQuery,
			addMemberUseCase,
			updateMemberUseCase,
			deleteMemberUseCase,
			updatePermissionUseCase,
			httphandler.NewEventsHandler(listEventsQuery),
			authService,
		),
	)

	return &ServiceOptions{
		SpannerClient:     spannerClient,
		Products:          products,
		Categories:        categories,
		Team:              roster,
		Carts:             carts,
		Auth:              authService,
		StorefrontHandler: storefrontHandler,
		HTTPHandler:       router,
	}, nil
}

// Close closes all resources.
func (s *ServiceOptions) Close() {
	closeClient(s.SpannerClient)
}

func closeClient(client *spanner.Client) {
	if client != nil {
		client.Close()
	}
}
