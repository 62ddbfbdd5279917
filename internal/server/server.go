// Package server owns the echo instance of the generation API and its
// lifecycle.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"

	"github.com/lotayaai/lotaya-io/internal/config"
	"github.com/lotayaai/lotaya-io/pkg/apperror"
	"github.com/lotayaai/lotaya-io/pkg/logger"
)

var Module = fx.Module("server",
	fx.Provide(NewEcho),
	fx.Invoke(StartServer),
)

// quietPaths are polled by probes and scrapers; they are neither logged nor
// traced.
var quietPaths = map[string]struct{}{
	"/health":  {},
	"/healthz": {},
	"/ready":   {},
	"/metrics": {},
}

// SkipQuiet is an echo skipper for probe and metrics requests.
func SkipQuiet(c echo.Context) bool {
	_, ok := quietPaths[c.Request().URL.Path]
	return ok
}

// EchoParams are the dependencies for creating an Echo instance
type EchoParams struct {
	fx.In

	Config     *config.Config
	Log        *slog.Logger
	HTTPLogger *logger.HTTPLogger
}

// NewEcho builds the API instance: FastAPI-style error bodies, open CORS for
// the website and CLI, request ids, request logging and panic recovery.
func NewEcho(p EchoParams) *echo.Echo {
	log := p.Log.With(logger.Scope("http"))

	e := echo.New()
	e.Debug = p.Config.Debug
	e.HideBanner = true
	e.HidePort = !p.Config.Debug
	e.HTTPErrorHandler = apperror.HTTPErrorHandler(p.Log)

	e.Use(
		middleware.CORSWithConfig(corsConfig()),
		middleware.RequestID(),
		middleware.RequestLoggerWithConfig(requestLogConfig(log, p.HTTPLogger)),
		middleware.RecoverWithConfig(middleware.RecoverConfig{
			LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
				log.Error("panic recovered",
					slog.String("uri", c.Request().RequestURI),
					logger.Error(err),
					slog.String("stack", string(stack)),
				)
				return err
			},
		}),
	)
	return e
}

func corsConfig() middleware.CORSConfig {
	return middleware.CORSConfig{
		AllowOriginFunc:  func(string) (bool, error) { return true, nil },
		AllowCredentials: true,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}
}

func requestLogConfig(log *slog.Logger, access *logger.HTTPLogger) middleware.RequestLoggerConfig {
	return middleware.RequestLoggerConfig{
		Skipper:      SkipQuiet,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogError:     true,
		LogMethod:    true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("request_id", v.RequestID),
			}
			switch {
			case v.Error != nil && v.Status >= http.StatusInternalServerError:
				log.Error("request failed", append(attrs, logger.Error(v.Error))...)
			case v.Error != nil:
				log.Info("request rejected", append(attrs, logger.Error(v.Error))...)
			default:
				log.Info("request", attrs...)
			}

			access.LogRequest(c.RealIP(), v.Method, v.URI, v.Status, v.Latency, c.Request().UserAgent(), v.RequestID)
			return nil
		},
	}
}

// Addr is the listen address for cfg.
func Addr(cfg *config.Config) string {
	return net.JoinHostPort(cfg.ServerAddress, strconv.Itoa(cfg.ServerPort))
}

// StartServer serves e for the lifetime of the fx app and drains in-flight
// requests within SHUTDOWN_TIMEOUT on stop.
func StartServer(lc fx.Lifecycle, e *echo.Echo, cfg *config.Config, log *slog.Logger) {
	log = log.With(logger.Scope("server"))

	srv := &http.Server{
		Addr:         Addr(cfg),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			log.Info("starting HTTP server",
				slog.String("address", srv.Addr),
				slog.String("environment", cfg.Environment),
			)
			go func() {
				if err := e.StartServer(srv); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("server error", logger.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("shutting down HTTP server")
			ctx, cancel := context.WithTimeout(ctx, cfg.ShutdownTimeout)
			defer cancel()
			return e.Shutdown(ctx)
		},
	})
}
