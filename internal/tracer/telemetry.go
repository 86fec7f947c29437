package tracer

import (
	"context"
	"log/slog"
	"sync"

	"tabadigit-esl/internal/config"
	"tabadigit-esl/internal/logger"

	otelpyroscope "github.com/grafana/otel-profiling-go"
	"github.com/grafana/pyroscope-go"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
)

var (
	once         sync.Once
	shutdownFunc func()
	initErr      error
)

var pyroLogrus = func() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.InfoLevel)
	return l
}()

// Instance initializes OpenTelemetry and the Pyroscope agent once. Either
// backend is skipped when its endpoint is unset, so local runs work without
// an observability stack.
func Instance(globalCtx context.Context) (func(), error) {
	once.Do(func() {
		cfg := config.Instance()
		log := logger.Instance()

		shutdownFunc = func() {}

		// Propagators are registered regardless so incoming traceparent
		// headers still flow through spans.
		otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
			propagation.TraceContext{},
			propagation.Baggage{},
		))

		if cfg.RemoteTraceRpcURI != "" {
			exp, err := otlptracegrpc.New(globalCtx,
				otlptracegrpc.WithInsecure(),
				otlptracegrpc.WithEndpoint(cfg.RemoteTraceRpcURI),
				otlptracegrpc.WithCompressor("gzip"),
			)
			if err != nil {
				log.Error("Failed to create OTLP exporter", slog.String("error", err.Error()))
				initErr = err
				return
			}

			res, err := resource.New(globalCtx,
				resource.WithAttributes(
					semconv.ServiceNameKey.String(cfg.AppName),
					attribute.String("env", "production"),
				),
			)
			if err != nil {
				log.Error("Failed to create resource", slog.String("error", err.Error()))
				initErr = err
				return
			}

			tp := trace.NewTracerProvider(
				trace.WithBatcher(exp),
				trace.WithResource(res),
			)

			otel.SetTracerProvider(otelpyroscope.NewTracerProvider(tp))
			log.Info("OpenTelemetry Tracer initialized")

			shutdownFunc = func() {
				if err := tp.Shutdown(globalCtx); err != nil {
					log.Error("Error shutting down tracer provider", slog.String("error", err.Error()))
				}
			}
		}

		if cfg.RemoteProfilingHttpURI != "" {
			_, err := pyroscope.Start(pyroscope.Config{
				ApplicationName: cfg.AppName,
				ServerAddress:   cfg.RemoteProfilingHttpURI,
				Logger:          pyroLogrus,
			})
			if err != nil {
				log.Error("Pyroscope failed to start", slog.String("error", err.Error()))
			} else {
				log.Info("Pyroscope started successfully")
			}
		}
	})

	return shutdownFunc, initErr
}
