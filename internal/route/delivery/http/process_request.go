package http

import (
	"github.com/gin-gonic/gin"
)

// processOptimizeReq binds the optimize request body. Semantic
// validation happens in the use case so field-level errors carry a
// consistent shape.
func (h *handler) processOptimizeReq(c *gin.Context) (optimizeReq, error) {
	var req optimizeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
