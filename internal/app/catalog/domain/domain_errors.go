package domain

import "errors"

// Domain errors as sentinel values
var (
	// Product errors
	ErrProductNotFound      = errors.New("product not found")
	ErrProductExists        = errors.New("product already exists")
	ErrEmptyID              = errors.New("product id cannot be empty")
	ErrEmptyName            = errors.New("product name cannot be empty")
	ErrInvalidCategory      = errors.New("product category cannot be empty")
	ErrMissingPrice         = errors.New("product price is required")
	ErrInvalidPrice         = errors.New("product price must be positive")
	ErrMissingStock         = errors.New("product stock is required")
	ErrInvalidStock         = errors.New("product stock cannot be negative")
	ErrInvalidDiscountPrice = errors.New("discount price must be positive and not exceed price")
	ErrInvalidRating        = errors.New("rating must be between 0 and 5")

	// Query errors
	ErrInvalidSortKey    = errors.New("unknown sort key")
	ErrInvalidPriceRange = errors.New("price range minimum exceeds maximum")
	ErrSearchFault       = errors.New("scored search failed")

	// Category errors
	ErrCategoryNotFound = errors.New("category not found")
)
