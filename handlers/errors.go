package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/krish2434/foodcart/services"
	"github.com/krish2434/foodcart/statemachine"
)

// serviceError maps service sentinels onto HTTP status codes. Every error is
// a recoverable per-request failure; unknown errors become a 500 without
// leaking internals.
func serviceError(c *gin.Context, err error) {
	var code int
	switch {
	case errors.Is(err, services.ErrBadQuantity),
		errors.Is(err, services.ErrBadRating):
		code = http.StatusBadRequest
	case errors.Is(err, services.ErrPermissionDenied):
		code = http.StatusForbidden
	case errors.Is(err, services.ErrCartNotFound),
		errors.Is(err, services.ErrCartItemNotFound),
		errors.Is(err, services.ErrMenuItemNotFound),
		errors.Is(err, services.ErrOrderNotFound),
		errors.Is(err, services.ErrRestaurantNotFound),
		errors.Is(err, services.ErrAddressNotFound):
		code = http.StatusNotFound
	case errors.Is(err, services.ErrDifferentRestaurant),
		errors.Is(err, services.ErrAlreadyReviewed):
		code = http.StatusConflict
	case errors.Is(err, services.ErrEmptyCart),
		errors.Is(err, services.ErrItemUnavailable),
		errors.Is(err, services.ErrNotArchivable),
		errors.Is(err, services.ErrNotReviewable),
		errors.Is(err, statemachine.ErrInvalidStatus),
		errors.Is(err, statemachine.ErrTerminalStatus):
		code = http.StatusUnprocessableEntity
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}
	c.JSON(code, gin.H{"error": err.Error()})
}
