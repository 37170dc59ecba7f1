package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers court catalog routes.
func RegisterRoutes(g *gin.RouterGroup, h *Handler) {
	group := g.Group("/courts")
	{
		group.GET("", h.List)    // List courts, optionally filtered by sport
		group.GET("/:id", h.Get) // Get court details
		group.POST("", h.Create) // Create court (admin)
	}
}
