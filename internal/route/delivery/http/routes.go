package http

import (
	"github.com/gin-gonic/gin"

	"delivery-route-optimizer/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Only the optimize endpoint is rate limited; the example endpoint
// serves static documentation data.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	routes := rg.Group("/routes")
	{
		routes.POST("/optimize", mw.RateLimit(), h.Optimize)
		routes.GET("/example", h.Example)
	}
}
