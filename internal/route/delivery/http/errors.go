package http

import (
	"github.com/gin-gonic/gin"

	"delivery-route-optimizer/internal/route"
	"delivery-route-optimizer/pkg/response"
)

// respondError translates use-case errors into HTTP responses.
// Validation errors keep their field detail; everything else collapses
// into an opaque 500 so provider internals never leak to clients.
func (h *handler) respondError(c *gin.Context, err error) {
	if vErr, ok := route.AsValidationError(err); ok {
		response.Error(c, vErr, map[string]interface{}{
			"field":  vErr.Field,
			"reason": vErr.Reason,
		})
		return
	}
	response.InternalError(c, err)
}
