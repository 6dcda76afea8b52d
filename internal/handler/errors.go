package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Gusmack1/charlesmackaybooks-order-service/internal/domain"
	"github.com/Gusmack1/charlesmackaybooks-order-service/internal/payment"
)

// writeError maps core errors onto the HTTP surface: validation 400,
// illegal transitions 409, unknown ids 404, provider rejections with the
// provider's message, everything else 500.
func writeError(c *gin.Context, err error) {
	var validationErr *domain.ValidationError
	var transitionErr *domain.TransitionError
	var providerErr *payment.ProviderError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": validationErr.Message,
		})
	case errors.As(err, &transitionErr):
		c.JSON(http.StatusConflict, gin.H{
			"success": false,
			"message": transitionErr.Error(),
		})
	case errors.Is(err, domain.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "order not found",
		})
	case errors.As(err, &providerErr):
		status := providerErr.StatusCode
		if status < 400 || status >= 500 {
			status = http.StatusPaymentRequired
		}
		c.JSON(status, gin.H{
			"success": false,
			"message": providerErr.Message,
			"code":    providerErr.Code,
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "internal error",
		})
	}
}
