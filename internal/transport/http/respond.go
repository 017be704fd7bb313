package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/light-bringer/storefront-service/internal/app/auth"
	cart "github.com/light-bringer/storefront-service/internal/app/cart/domain"
	catalog "github.com/light-bringer/storefront-service/internal/app/catalog/domain"
	"github.com/light-bringer/storefront-service/internal/app/outbox"
	team "github.com/light-bringer/storefront-service/internal/app/team/domain"
)

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Error string `json:"error"`
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("http: failed to encode response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respond(w, status, ErrorResponse{Error: message})
}

// respondDomainError writes the status mapped from err. Internal errors are
// logged and not echoed to the client.
func respondDomainError(w http.ResponseWriter, err error) {
	status := mapDomainErrorToHTTP(err)
	if status == http.StatusInternalServerError {
		log.Printf("http: internal error: %v", err)
		respondError(w, status, "internal server error")
		return
	}
	respondError(w, status, err.Error())
}

// mapDomainErrorToHTTP converts domain errors to HTTP status codes.
func mapDomainErrorToHTTP(err error) int {
	switch {
	case errors.Is(err, catalog.ErrProductNotFound),
		errors.Is(err, catalog.ErrCategoryNotFound),
		errors.Is(err, team.ErrTeamMemberNotFound),
		errors.Is(err, cart.ErrCartNotFound):
		return http.StatusNotFound

	case errors.Is(err, catalog.ErrProductExists),
		errors.Is(err, team.ErrTeamMemberExists),
		errors.Is(err, team.ErrEmailTaken):
		return http.StatusConflict

	case errors.Is(err, catalog.ErrEmptyID),
		errors.Is(err, catalog.ErrEmptyName),
		errors.Is(err, catalog.ErrInvalidCategory),
		errors.Is(err, catalog.ErrMissingPrice),
		errors.Is(err, catalog.ErrInvalidPrice),
		errors.Is(err, catalog.ErrMissingStock),
		errors.Is(err, catalog.ErrInvalidStock),
		errors.Is(err, catalog.ErrInvalidDiscountPrice),
		errors.Is(err, catalog.ErrInvalidRating),
		errors.Is(err, catalog.ErrInvalidSortKey),
		errors.Is(err, catalog.ErrInvalidPriceRange),
		errors.Is(err, team.ErrEmptyID),
		errors.Is(err, team.ErrEmptyMemberName),
		errors.Is(err, team.ErrEmptyEmail),
		errors.Is(err, team.ErrInvalidEmail),
		errors.Is(err, team.ErrInvalidRole),
		errors.Is(err, team.ErrInvalidStatus),
		errors.Is(err, team.ErrInvalidPermissionLevel),
		errors.Is(err, team.ErrInvalidSection),
		errors.Is(err, cart.ErrInvalidQuantity):
		return http.StatusBadRequest

	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrInvalidToken):
		return http.StatusUnauthorized

	case errors.Is(err, outbox.ErrEventsUnavailable):
		return http.StatusServiceUnavailable

	default:
		return http.StatusInternalServerError
	}
}

// decodeJSON reads a request body. Unknown fields are rejected.
func decodeJSON(r *http.Request, out interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(out)
}
