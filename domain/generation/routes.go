package generation

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterRoutes registers the generation routes and the metrics endpoint
func RegisterRoutes(e *echo.Echo, h *Handler, limiter *ClientRateLimiter) {
	g := e.Group("/api")

	// Every generator shares the per-client budget
	rl := limiter.Middleware()
	g.POST("/generate-logo", h.GenerateLogo, rl)
	g.POST("/generate-video", h.GenerateVideo, rl)
	g.POST("/generate-brand-kit", h.GenerateBrandKit, rl)
	g.POST("/generate-social-content", h.GenerateSocialContent, rl)
	g.POST("/chat-assistant", h.ChatAssistant, rl)
	g.POST("/generate-website", h.GenerateWebsite, rl)
	g.POST("/generate-voice", h.GenerateVoice, rl)
	g.POST("/edit-photo", h.EditPhoto, rl)
	g.POST("/remove-background", h.RemoveBackground, rl)
	g.POST("/generate-domain", h.GenerateDomain, rl)
	g.POST("/generate-slogan", h.GenerateSlogan, rl)
	g.POST("/generate-business-card", h.GenerateBusinessCard, rl)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}
