package generation

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/lotayaai/lotaya-io/pkg/apperror"
	"github.com/lotayaai/lotaya-io/pkg/logger"
)

// Handler handles generation HTTP requests
type Handler struct {
	svc *Service
	log *slog.Logger
}

// NewHandler creates a new generation handler
func NewHandler(svc *Service, log *slog.Logger) *Handler {
	return &Handler{
		svc: svc,
		log: log.With(logger.Scope("generation.handler")),
	}
}

// serve binds the body, runs the operation and records the outcome. label
// names the operation in failure messages, e.g. "Logo generation failed".
func serve[Req, Resp any](
	h *Handler,
	c echo.Context,
	operation, label string,
	bind func(*fields) (Req, error),
	run func(context.Context, Req) (Resp, error),
) error {
	start := time.Now()
	defer func() {
		Duration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	}()

	f, err := bindFields(c)
	if err != nil {
		RequestsTotal.WithLabelValues(operation, OutcomeInvalid).Inc()
		return err
	}
	req, err := bind(f)
	if err != nil {
		RequestsTotal.WithLabelValues(operation, OutcomeInvalid).Inc()
		return err
	}

	resp, err := run(c.Request().Context(), req)
	if err != nil {
		RequestsTotal.WithLabelValues(operation, OutcomeError).Inc()
		if errors.Is(err, context.Canceled) {
			h.log.Debug("generation canceled by client", slog.String("operation", operation))
		} else {
			h.log.Error("generation failed",
				slog.String("operation", operation),
				logger.Error(err),
			)
		}
		return apperror.NewGenerationFailed(label, err)
	}

	RequestsTotal.WithLabelValues(operation, OutcomeSuccess).Inc()
	return c.JSON(http.StatusOK, resp)
}

// GenerateLogo handles POST /api/generate-logo
func (h *Handler) GenerateLogo(c echo.Context) error {
	return serve(h, c, "generate-logo", "Logo", bindLogo, h.svc.GenerateLogo)
}

// GenerateVideo handles POST /api/generate-video
func (h *Handler) GenerateVideo(c echo.Context) error {
	return serve(h, c, "generate-video", "Video", bindVideo, h.svc.GenerateVideo)
}

// GenerateBrandKit handles POST /api/generate-brand-kit
func (h *Handler) GenerateBrandKit(c echo.Context) error {
	return serve(h, c, "generate-brand-kit", "Brand kit", bindBrandKit, h.svc.GenerateBrandKit)
}

// GenerateSocialContent handles POST /api/generate-social-content
func (h *Handler) GenerateSocialContent(c echo.Context) error {
	return serve(h, c, "generate-social-content", "Social content", bindSocial, h.svc.GenerateSocialContent)
}

// ChatAssistant handles POST /api/chat-assistant
func (h *Handler) ChatAssistant(c echo.Context) error {
	return serve(h, c, "chat-assistant", "Chat reply", bindChat, h.svc.Chat)
}

// GenerateWebsite handles POST /api/generate-website
func (h *Handler) GenerateWebsite(c echo.Context) error {
	return serve(h, c, "generate-website", "Website", bindWebsite, h.svc.GenerateWebsite)
}

// GenerateVoice handles POST /api/generate-voice
func (h *Handler) GenerateVoice(c echo.Context) error {
	return serve(h, c, "generate-voice", "Voice", bindVoice, h.svc.GenerateVoice)
}

// EditPhoto handles POST /api/edit-photo
func (h *Handler) EditPhoto(c echo.Context) error {
	return serve(h, c, "edit-photo", "Photo edit", bindPhoto, h.svc.EditPhoto)
}

// RemoveBackground handles POST /api/remove-background
func (h *Handler) RemoveBackground(c echo.Context) error {
	return serve(h, c, "remove-background", "Background removal", bindBackground, h.svc.RemoveBackground)
}

// GenerateDomain handles POST /api/generate-domain
func (h *Handler) GenerateDomain(c echo.Context) error {
	return serve(h, c, "generate-domain", "Domain", bindDomain, h.svc.GenerateDomains)
}

// GenerateSlogan handles POST /api/generate-slogan
func (h *Handler) GenerateSlogan(c echo.Context) error {
	return serve(h, c, "generate-slogan", "Slogan", bindSlogan, h.svc.GenerateSlogans)
}

// GenerateBusinessCard handles POST /api/generate-business-card
func (h *Handler) GenerateBusinessCard(c echo.Context) error {
	return serve(h, c, "generate-business-card", "Business card", bindBusinessCard, h.svc.GenerateBusinessCard)
}
