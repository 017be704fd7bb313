package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/light-bringer/storefront-service/internal/app/cart/domain"
	"github.com/light-bringer/storefront-service/internal/app/cart/store"
	catalog "github.com/light-bringer/storefront-service/internal/app/catalog/domain"
)

// CartHandler serves session-local shopping carts.
type CartHandler struct {
	sessions *store.Sessions
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(sessions *store.Sessions) *CartHandler {
	return &CartHandler{sessions: sessions}
}

// CartItemResponse is one cart line.
type CartItemResponse struct {
	ProductID     string         `json:"productId"`
	Name          string         `json:"name"`
	Price         *catalog.Money `json:"price"`
	DiscountPrice *catalog.Money `json:"discountPrice,omitempty"`
	Image         string         `json:"image"`
	Quantity      int            `json:"quantity"`
	Subtotal      *catalog.Money `json:"subtotal"`
}

// CartResponse is the body of every cart endpoint.
type CartResponse struct {
	ID         string             `json:"id"`
	Items      []CartItemResponse `json:"items"`
	TotalItems int                `json:"totalItems"`
	TotalPrice *catalog.Money     `json:"totalPrice"`
	UpdatedAt  time.Time          `json:"updatedAt"`
}

type addItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  *int   `json:"quantity"`
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// RegisterRoutes mounts the cart routes.
func (h *CartHandler) RegisterRoutes(r chi.Router) {
	r.Route("/carts", func(r chi.Router) {
		r.Post("/", h.create)
		r.Get("/{cartID}", h.get)
		r.Post("/{cartID}/items", h.addItem)
		r.Delete("/{cartID}/items", h.clear)
		r.Patch("/{cartID}/items/{productID}", h.updateQuantity)
		r.Delete("/{cartID}/items/{productID}", h.removeItem)
	})
}

func (h *CartHandler) create(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusCreated, toCartResponse(h.sessions.Create()))
}

func (h *CartHandler) get(w http.ResponseWriter, r *http.Request) {
	cart, err := h.sessions.Get(chi.URLParam(r, "cartID"))
	h.reply(w, cart, err)
}

func (h *CartHandler) addItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid body")
		return
	}
	if req.ProductID == "" {
		respondError(w, http.StatusBadRequest, "productId is required")
		return
	}
	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	cart, err := h.sessions.AddItem(chi.URLParam(r, "cartID"), req.ProductID, quantity)
	h.reply(w, cart, err)
}

func (h *CartHandler) updateQuantity(w http.ResponseWriter, r *http.Request) {
	var req updateQuantityRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid body")
		return
	}

	cart, err := h.sessions.UpdateQuantity(chi.URLParam(r, "cartID"), chi.URLParam(r, "productID"), req.Quantity)
	h.reply(w, cart, err)
}

func (h *CartHandler) removeItem(w http.ResponseWriter, r *http.Request) {
	cart, err := h.sessions.RemoveItem(chi.URLParam(r, "cartID"), chi.URLParam(r, "productID"))
	h.reply(w, cart, err)
}

func (h *CartHandler) clear(w http.ResponseWriter, r *http.Request) {
	cart, err := h.sessions.Clear(chi.URLParam(r, "cartID"))
	h.reply(w, cart, err)
}

func (h *CartHandler) reply(w http.ResponseWriter, cart *domain.Cart, err error) {
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respond(w, http.StatusOK, toCartResponse(cart))
}

func toCartResponse(cart *domain.Cart) CartResponse {
	items := cart.Items()
	out := make([]CartItemResponse, len(items))
	for i, item := range items {
		out[i] = CartItemResponse{
			ProductID:     item.ProductID,
			Name:          item.Name,
			Price:         item.Price,
			DiscountPrice: item.DiscountPrice,
			Image:         item.Image,
			Quantity:      item.Quantity,
			Subtotal:      item.Subtotal(),
		}
	}
	return CartResponse{
		ID:         cart.ID(),
		Items:      out,
		TotalItems: cart.TotalItems(),
		TotalPrice: cart.TotalPrice(),
		UpdatedAt:  cart.UpdatedAt(),
	}
}
