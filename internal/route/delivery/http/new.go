package http

import (
	"github.com/gin-gonic/gin"

	"delivery-route-optimizer/internal/route"
	"delivery-route-optimizer/pkg/log"
)

// Handler is the public interface for the route HTTP delivery layer.
type Handler interface {
	Optimize(c *gin.Context)
	Example(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc route.UseCase
}

// New creates a new HTTP handler for the route domain.
func New(l log.Logger, uc route.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
