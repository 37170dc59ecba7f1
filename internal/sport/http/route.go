package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers sport catalog routes.
func RegisterRoutes(g *gin.RouterGroup, h *Handler) {
	group := g.Group("/sports")
	{
		group.GET("", h.List)                   // List sports
		group.GET("/:id", h.Get)                // Get sport details
		group.POST("", h.Create)                // Create sport (admin)
		group.POST("/:id/image", h.UploadImage) // Upload sport image (admin)
		group.GET("/:id/image", h.GetImage)     // Serve sport image
	}
}
