package apperror

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/getsentry/sentry-go"
	"github.com/labstack/echo/v4"
)

// HTTPErrorHandler returns an Echo error handler that renders every error as
// a {"detail": ...} body. Server errors are logged and reported to Sentry when
// a client is configured.
func HTTPErrorHandler(log *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		var body any = map[string]any{"detail": ErrInternal.Message}

		var he *echo.HTTPError
		if appErr, ok := As(err); ok {
			code = appErr.HTTPStatus
			body = appErr.Body()
		} else if errors.As(err, &he) {
			code = he.Code
			switch msg := he.Message.(type) {
			case string:
				body = map[string]any{"detail": msg}
			case map[string]any:
				if _, ok := msg["detail"]; ok {
					body = msg
				}
			case error:
				body = map[string]any{"detail": msg.Error()}
			}
		}

		if code >= 500 {
			log.Error("request error",
				slog.Int("status", code),
				slog.String("method", c.Request().Method),
				slog.String("path", c.Request().URL.Path),
				slog.String("error", err.Error()),
			)
			if hub := sentry.CurrentHub(); hub.Client() != nil {
				hub.CaptureException(err)
			}
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
		} else {
			_ = c.JSON(code, body)
		}
	}
}
