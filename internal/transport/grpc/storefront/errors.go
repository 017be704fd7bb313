package storefront

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	catalog "github.com/light-bringer/storefront-service/internal/app/catalog/domain"
	team "github.com/light-bringer/storefront-service/internal/app/team/domain"
)

// mapDomainErrorToGRPC converts domain errors to gRPC status codes.
func mapDomainErrorToGRPC(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, catalog.ErrProductNotFound):
		return status.Error(codes.NotFound, "product not found")

	case errors.Is(err, catalog.ErrCategoryNotFound):
		return status.Error(codes.NotFound, "category not found")

	case errors.Is(err, team.ErrTeamMemberNotFound):
		return status.Error(codes.NotFound, "team member not found")

	case errors.Is(err, catalog.ErrInvalidSortKey),
		errors.Is(err, catalog.ErrInvalidPriceRange),
		errors.Is(err, team.ErrInvalidSection),
		errors.Is(err, team.ErrInvalidPermissionLevel):
		return status.Error(codes.InvalidArgument, err.Error())

	default:
		return status.Error(codes.Internal, "internal server error")
	}
}
