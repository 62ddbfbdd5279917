package tracing

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/fx"

	"github.com/lotayaai/lotaya-io/internal/config"
	"github.com/lotayaai/lotaya-io/internal/server"
	"github.com/lotayaai/lotaya-io/pkg/logger"
)

// Module installs a TracerProvider (OTLP or no-op) and the Echo middleware.
var Module = fx.Module("tracing",
	fx.Provide(NewTracerProvider),
	fx.Invoke(RegisterTracingLifecycle),
	fx.Invoke(RegisterEchoMiddleware),
)

// tracerProviderResult exposes the SDK provider (nil when disabled) for
// lifecycle management.
type tracerProviderResult struct {
	fx.Out

	SDKProvider *sdktrace.TracerProvider `name:"otelSDKProvider" optional:"true"`
}

// NewTracerProvider creates and globally registers a TracerProvider.
func NewTracerProvider(cfg *config.Config, log *slog.Logger) (tracerProviderResult, error) {
	oc := cfg.Otel
	log = log.With(logger.Scope("tracing"))

	if !oc.Enabled() {
		log.Info("OTel tracing disabled (OTEL_EXPORTER_OTLP_ENDPOINT not set)")
		otel.SetTracerProvider(noop.NewTracerProvider())
		return tracerProviderResult{}, nil
	}

	log.Info("OTel tracing enabled",
		slog.String("endpoint", oc.ExporterEndpoint),
		slog.String("service", oc.ServiceName),
		slog.Float64("sampling_rate", oc.SamplingRate),
	)

	exp, err := otlptracehttp.New(
		context.Background(),
		otlptracehttp.WithEndpointURL(oc.ExporterEndpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		return tracerProviderResult{}, err
	}

	res, err := resource.New(context.Background(),
		resource.WithSchemaURL(semconv.SchemaURL),
		resource.WithAttributes(
			semconv.ServiceName(oc.ServiceName),
		),
		resource.WithFromEnv(),
		resource.WithProcess(),
	)
	if err != nil {
		log.Warn("OTel resource detection failed", logger.Error(err))
		res = resource.Empty()
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(Sampler(oc.SamplingRate)),
	)

	otel.SetTracerProvider(tp)

	return tracerProviderResult{SDKProvider: tp}, nil
}

// Sampler maps a sampling rate to a sampler; rates at or above 1 sample everything.
func Sampler(rate float64) sdktrace.Sampler {
	if rate >= 1.0 {
		return sdktrace.AlwaysSample()
	}
	return sdktrace.TraceIDRatioBased(rate)
}

type sdkProviderParam struct {
	fx.In
	SDKProvider *sdktrace.TracerProvider `name:"otelSDKProvider" optional:"true"`
}

// RegisterTracingLifecycle shuts the SDK provider down gracefully on app stop.
func RegisterTracingLifecycle(lc fx.Lifecycle, p sdkProviderParam, log *slog.Logger) {
	if p.SDKProvider == nil {
		return
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			log.Info("shutting down OTel TracerProvider")
			return p.SDKProvider.Shutdown(ctx)
		},
	})
}

// RegisterEchoMiddleware adds the otelecho middleware, skipping probes and metrics.
func RegisterEchoMiddleware(e *echo.Echo, cfg *config.Config) {
	if !cfg.Otel.Enabled() {
		return
	}
	e.Use(otelecho.Middleware(
		cfg.Otel.ServiceName,
		otelecho.WithSkipper(server.SkipQuiet),
	))
}

// Tracer returns the tracer generation spans are recorded with.
func Tracer() trace.Tracer {
	return otel.Tracer("github.com/lotayaai/lotaya-io/domain/generation")
}
