package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/light-bringer/storefront-service/internal/app/auth"
	catalogcontracts "github.com/light-bringer/storefront-service/internal/app/catalog/contracts"
	catalog "github.com/light-bringer/storefront-service/internal/app/catalog/domain"
	"github.com/light-bringer/storefront-service/internal/app/catalog/queries/list_products"
	"github.com/light-bringer/storefront-service/internal/app/catalog/usecases/add_product"
	"github.com/light-bringer/storefront-service/internal/app/catalog/usecases/delete_product"
	"github.com/light-bringer/storefront-service/internal/app/catalog/usecases/toggle_featured"
	"github.com/light-bringer/storefront-service/internal/app/catalog/usecases/update_product"
	teamcontracts "github.com/light-bringer/storefront-service/internal/app/team/contracts"
	team "github.com/light-bringer/storefront-service/internal/app/team/domain"
	"github.com/light-bringer/storefront-service/internal/app/team/queries/get_member"
	"github.com/light-bringer/storefront-service/internal/app/team/queries/has_permission"
	"github.com/light-bringer/storefront-service/internal/app/team/queries/list_members"
	"github.com/light-bringer/storefront-service/internal/app/team/usecases/add_team_member"
	"github.com/light-bringer/storefront-service/internal/app/team/usecases/delete_team_member"
	"github.com/light-bringer/storefront-service/internal/app/team/usecases/update_permission"
	"github.com/light-bringer/storefront-service/internal/app/team/usecases/update_team_member"
)

// AdminHandler serves the back office: inventory, team and permissions.
// Every route requires a bearer token and a section permission.
type AdminHandler struct {
	// Inventory
	listProducts   *list_products.Query
	addProduct     *add_product.Interactor
	updateProduct  *update_product.Interactor
	deleteProduct  *delete_product.Interactor
	toggleFeatured *toggle_featured.Interactor

	// Team
	listMembers      *list_members.Query
	getMember        *get_member.Query
	hasPermission    *has_permission.Query
	addMember        *add_team_member.Interactor
	updateMember     *update_team_member.Interactor
	deleteMember     *delete_team_member.Interactor
	updatePermission *update_permission.Interactor

	events   *EventsHandler
	verifier TokenVerifier
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(
	listProducts *list_products.Query,
	addProduct *add_product.Interactor,
	updateProduct *update_product.Interactor,
	deleteProduct *delete_product.Interactor,
	toggleFeatured *toggle_featured.Interactor,
	listMembers *list_members.Query,
	getMember *get_member.Query,
	hasPermission *has_permission.Query,
	addMember *add_team_member.Interactor,
	updateMember *update_team_member.Interactor,
	deleteMember *delete_team_member.Interactor,
	updatePermission *update_permission.Interactor,
	events *EventsHandler,
	verifier TokenVerifier,
) *AdminHandler {
	return &AdminHandler{
		listProducts:     listProducts,
		addProduct:       addProduct,
		updateProduct:    updateProduct,
		deleteProduct:    deleteProduct,
		toggleFeatured:   toggleFeatured,
		listMembers:      listMembers,
		getMember:        getMember,
		hasPermission:    hasPermission,
		addMember:        addMember,
		updateMember:     updateMember,
		deleteMember:     deleteMember,
		updatePermission: updatePermission,
		events:           events,
		verifier:         verifier,
	}
}

// RegisterRoutes mounts the admin routes behind authentication.
func (h *AdminHandler) RegisterRoutes(r chi.Router) {
	gate := func(section team.Section, min team.PermissionLevel) func(http.Handler) http.Handler {
		return RequirePermission(h.hasPermission, section, min)
	}

	r.Route("/admin", func(r chi.Router) {
		r.Use(RequireAuth(h.verifier))

		r.With(gate(team.SectionProducts, team.Read)).Get("/products", h.inventory)
		r.Group(func(r chi.Router) {
			r.Use(gate(team.SectionProducts, team.Write))
			r.Post("/products", h.createProduct)
			r.Patch("/products/{id}", h.patchProduct)
			r.Delete("/products/{id}", h.removeProduct)
			r.Post("/products/{id}/featured", h.featured)
		})

		r.Group(func(r chi.Router) {
			r.Use(gate(team.SectionTeam, team.Read))
			r.Get("/team", h.team)
			r.Get("/team/{id}", h.member)
			r.Post("/permissions/check", h.checkPermission)
		})
		r.Group(func(r chi.Router) {
			r.Use(gate(team.SectionTeam, team.FullAccess))
			r.Post("/team", h.createMember)
			r.Patch("/team/{id}", h.patchMember)
			r.Delete("/team/{id}", h.removeMember)
			r.Put("/team/{id}/permissions/{section}", h.setPermission)
		})

		r.With(gate(team.SectionDashboard, team.Read)).Get("/events", h.events.ServeHTTP)
	})
}

// productInput is the body of product create and patch requests. Absent
// fields are left unchanged on patch.
type productInput struct {
	ID             string            `json:"id"`
	Name           *string           `json:"name"`
	Category       *string           `json:"category"`
	Subcategory    *string           `json:"subcategory"`
	Price          *catalog.Money    `json:"price"`
	DiscountPrice  *catalog.Money    `json:"discountPrice"`
	ClearDiscount  bool              `json:"clearDiscount"`
	Description    *string           `json:"description"`
	Features       []string          `json:"features"`
	Specifications map[string]string `json:"specifications"`
	Images         []string          `json:"images"`
	Stock          *int              `json:"stock"`
	Rating         *float64          `json:"rating"`
	IsFeatured     *bool             `json:"isFeatured"`
	IsNewArrival   *bool             `json:"isNewArrival"`
}

func (h *AdminHandler) inventory(w http.ResponseWriter, r *http.Request) {
	products, err := h.listProducts.Execute(r.Context(), &list_products.Request{
		Category: r.URL.Query().Get("category"),
		Sort:     r.URL.Query().Get("sort"),
	})
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respond(w, http.StatusOK, ProductListResponse{
		Products: catalogcontracts.NewProductDTOs(products),
		Total:    len(products),
	})
}

func (h *AdminHandler) createProduct(w http.ResponseWriter, r *http.Request) {
	var in productInput
	if err := decodeJSON(r, &in); err != nil {
		respondError(w, http.StatusBadRequest, "invalid body")
		return
	}

	product, err := h.addProduct.Execute(r.Context(), &add_product.Request{
		ProductID:      in.ID,
		Name:           deref(in.Name),
		Category:       deref(in.Category),
		Subcategory:    in.Subcategory,
		Price:          in.Price,
		DiscountPrice:  in.DiscountPrice,
		Description:    deref(in.Description),
		Features:       in.Features,
		Specifications: in.Specifications,
		Images:         in.Images,
		Stock:          in.Stock,
		Rating:         deref(in.Rating),
		IsFeatured:     deref(in.IsFeatured),
		IsNewArrival:   deref(in.IsNewArrival),
	})
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respond(w, http.StatusCreated, catalogcontracts.NewProductDTO(product))
}

func (h *AdminHandler) patchProduct(w http.ResponseWriter, r *http.Request) {
	var in productInput
	if err := decodeJSON(r, &in); err != nil {
		respondError(w, http.StatusBadRequest, "invalid body")
		return
	}

	product, err := h.updateProduct.Execute(r.Context(), &update_product.Request{
		ProductID: chi.URLParam(r, "id"),
		Patch: catalog.ProductPatch{
			Name:           in.Name,
			Category:       in.Category,
			Subcategory:    in.Subcategory,
			Price:          in.Price,
			DiscountPrice:  in.DiscountPrice,
			ClearDiscount:  in.ClearDiscount,
			Description:    in.Description,
			Features:       in.Features,
			Specifications: in.Specifications,
			Images:         in.Images,
			Stock:          in.Stock,
			Rating:         in.Rating,
			IsFeatured:     in.IsFeatured,
			IsNewArrival:   in.IsNewArrival,
		},
	})
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respond(w, http.StatusOK, catalogcontracts.NewProductDTO(product))
}

func (h *AdminHandler) removeProduct(w http.ResponseWriter, r *http.Request) {
	if _, err := h.deleteProduct.Execute(r.Context(), &delete_product.Request{ProductID: chi.URLParam(r, "id")}); err != nil {
		respondDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *AdminHandler) featured(w http.ResponseWriter, r *http.Request) {
	product, err := h.toggleFeatured.Execute(r.Context(), &toggle_featured.Request{ProductID: chi.URLParam(r, "id")})
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respond(w, http.StatusOK, catalogcontracts.NewProductDTO(product))
}

type memberInput struct {
	ID          string           `json:"id"`
	Name        *string          `json:"name"`
	Email       *string          `json:"email"`
	Role        *team.Role       `json:"role"`
	Status      *team.Status     `json:"status"`
	Permissions team.Permissions `json:"permissions"`
	Password    string           `json:"password"`
}

type permissionInput struct {
	Level string `json:"level"`
}

type checkInput struct {
	MemberID string `json:"memberId"`
	Section  string `json:"section"`
	MinLevel string `json:"minLevel"`
}

// CheckResponse is the body of a permission check.
type CheckResponse struct {
	Allowed bool `json:"allowed"`
}

func (h *AdminHandler) team(w http.ResponseWriter, r *http.Request) {
	req := &list_members.Request{}
	if s := r.URL.Query().Get("role"); s != "" {
		role := team.Role(s)
		req.Role = &role
	}
	if s := r.URL.Query().Get("status"); s != "" {
		status := team.Status(s)
		req.Status = &status
	}

	members := h.listMembers.Execute(r.Context(), req)
	out := make([]*teamcontracts.MemberDTO, len(members))
	for i, m := range members {
		out[i] = teamcontracts.NewMemberDTO(m)
	}
	respond(w, http.StatusOK, out)
}

func (h *AdminHandler) member(w http.ResponseWriter, r *http.Request) {
	member, err := h.getMember.Execute(r.Context(), &get_member.Request{MemberID: chi.URLParam(r, "id")})
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respond(w, http.StatusOK, teamcontracts.NewMemberDTO(member))
}

func (h *AdminHandler) createMember(w http.ResponseWriter, r *http.Request) {
	var in memberInput
	if err := decodeJSON(r, &in); err != nil {
		respondError(w, http.StatusBadRequest, "invalid body")
		return
	}

	attrs := team.MemberAttributes{
		Name:        deref(in.Name),
		Email:       deref(in.Email),
		Role:        deref(in.Role),
		Status:      deref(in.Status),
		Permissions: in.Permissions,
	}
	if in.Password != "" {
		hash, err := auth.HashPassword(in.Password)
		if err != nil {
			respondDomainError(w, err)
			return
		}
		attrs.PasswordHash = hash
	}

	member, err := h.addMember.Execute(r.Context(), &add_team_member.Request{
		MemberID:   in.ID,
		Attributes: attrs,
	})
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respond(w, http.StatusCreated, teamcontracts.NewMemberDTO(member))
}

func (h *AdminHandler) patchMember(w http.ResponseWriter, r *http.Request) {
	var in memberInput
	if err := decodeJSON(r, &in); err != nil {
		respondError(w, http.StatusBadRequest, "invalid body")
		return
	}
	if in.Permissions != nil || in.Password != "" || in.ID != "" {
		respondError(w, http.StatusBadRequest, "only name, email, role and status can be patched")
		return
	}

	member, err := h.updateMember.Execute(r.Context(), &update_team_member.Request{
		MemberID: chi.URLParam(r, "id"),
		Patch: team.MemberPatch{
			Name:   in.Name,
			Email:  in.Email,
			Role:   in.Role,
			Status: in.Status,
		},
	})
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respond(w, http.StatusOK, teamcontracts.NewMemberDTO(member))
}

func (h *AdminHandler) removeMember(w http.ResponseWriter, r *http.Request) {
	if _, err := h.deleteMember.Execute(r.Context(), &delete_team_member.Request{MemberID: chi.URLParam(r, "id")}); err != nil {
		respondDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *AdminHandler) setPermission(w http.ResponseWriter, r *http.Request) {
	var in permissionInput
	if err := decodeJSON(r, &in); err != nil {
		respondError(w, http.StatusBadRequest, "invalid body")
		return
	}

	section, err := team.ParseSection(chi.URLParam(r, "section"))
	if err != nil {
		respondDomainError(w, err)
		return
	}
	level, err := team.ParsePermissionLevel(in.Level)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	member, err := h.updatePermission.Execute(r.Context(), &update_permission.Request{
		MemberID: chi.URLParam(r, "id"),
		Section:  section,
		Level:    level,
	})
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respond(w, http.StatusOK, teamcontracts.NewMemberDTO(member))
}

func (h *AdminHandler) checkPermission(w http.ResponseWriter, r *http.Request) {
	var in checkInput
	if err := decodeJSON(r, &in); err != nil {
		respondError(w, http.StatusBadRequest, "invalid body")
		return
	}

	section, err := team.ParseSection(in.Section)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	level, err := team.ParseMinimumLevel(in.MinLevel)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	allowed := h.hasPermission.Execute(r.Context(), &has_permission.Request{
		MemberID: in.MemberID,
		Section:  section,
		MinLevel: level,
	})
	respond(w, http.StatusOK, CheckResponse{Allowed: allowed})
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
