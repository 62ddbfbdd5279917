package status

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/lotayaai/lotaya-io/pkg/apperror"
	"github.com/lotayaai/lotaya-io/pkg/logger"
)

// Handler handles the API root and status check requests
type Handler struct {
	repo Repository
	log  *slog.Logger
	now  func() time.Time
}

// NewHandler creates a new status handler
func NewHandler(repo Repository, log *slog.Logger) *Handler {
	return &Handler{
		repo: repo,
		log:  log.With(logger.Scope("status.handler")),
		now:  func() time.Time { return time.Now().UTC() },
	}
}

// Root handles GET /api/
func (h *Handler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, RootResponse{Message: rootMessage})
}

// Create handles POST /api/status
func (h *Handler) Create(c echo.Context) error {
	var req CreateStatusCheckRequest
	if err := c.Bind(&req); err != nil {
		return apperror.NewValidation(apperror.InvalidField("client_name", "invalid request body"))
	}
	if req.ClientName == nil {
		return apperror.NewValidation(apperror.MissingField("client_name"))
	}

	check := &StatusCheck{
		ID:         uuid.NewString(),
		ClientName: *req.ClientName,
		Timestamp:  h.now(),
	}
	if err := h.repo.Create(c.Request().Context(), check); err != nil {
		return apperror.ErrDatabase.WithInternal(err)
	}

	h.log.Debug("status check recorded", slog.String("client_name", check.ClientName))
	return c.JSON(http.StatusOK, check)
}

// List handles GET /api/status
func (h *Handler) List(c echo.Context) error {
	checks, err := h.repo.List(c.Request().Context(), maxListed)
	if err != nil {
		return apperror.ErrDatabase.WithInternal(err)
	}
	return c.JSON(http.StatusOK, checks)
}
