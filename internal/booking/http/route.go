package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers booking routes, the per-court slot grid, and the
// dashboard stats endpoint.
func RegisterRoutes(g *gin.RouterGroup, h *Handler) {
	group := g.Group("/bookings")
	{
		group.GET("", h.List)                // List bookings, filter by date/court/status
		group.GET("/:id", h.Get)             // Get booking details
		group.POST("", h.Create)             // Create booking
		group.POST("/:id/cancel", h.Cancel)  // Cancel booking
	}

	g.GET("/courts/:id/slots", h.Slots) // Day availability grid for a court
	g.GET("/stats", h.Stats)            // Admin dashboard aggregates
}
