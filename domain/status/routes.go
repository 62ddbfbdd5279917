package status

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers the API root and status check routes
func RegisterRoutes(e *echo.Echo, h *Handler) {
	g := e.Group("/api")
	g.GET("/", h.Root)
	g.GET("", h.Root)
	g.POST("/status", h.Create)
	g.GET("/status", h.List)
}
