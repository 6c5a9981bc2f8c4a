package services

import "errors"

// Validation errors — bad input, rejected before any state change.
var (
	ErrBadQuantity = errors.New("quantity must be a positive integer")
	ErrBadRating   = errors.New("rating must be between 1 and 5")
)

// Invariant-guard errors — the request conflicts with a business rule and is
// rejected without touching state.
var (
	ErrDifferentRestaurant = errors.New("cart is bound to another restaurant; clear it first")
	ErrEmptyCart           = errors.New("cart is empty")
	ErrItemUnavailable     = errors.New("menu item is not available")
	ErrNotArchivable       = errors.New("only delivered or cancelled orders can be archived")
	ErrNotReviewable       = errors.New("only delivered orders can be reviewed")
	ErrAlreadyReviewed     = errors.New("order has already been reviewed")
)

// Authorization errors.
var (
	ErrPermissionDenied = errors.New("not permitted")
)

// Not-found errors, distinct from permission failures.
var (
	ErrCartNotFound       = errors.New("cart not found")
	ErrCartItemNotFound   = errors.New("cart item not found")
	ErrMenuItemNotFound   = errors.New("menu item not found")
	ErrOrderNotFound      = errors.New("order not found")
	ErrRestaurantNotFound = errors.New("restaurant not found")
	ErrAddressNotFound    = errors.New("address not found")
)
