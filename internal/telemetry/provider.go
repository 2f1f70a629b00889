// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package telemetry

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-health-server/internal/config"
	"github.com/MKhiriev/go-health-server/internal/logger"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

// Provider owns the SDK tracer provider, the tracer used for root spans and
// the text map propagator used to continue remote traces.
type Provider struct {
	provider   *sdktrace.TracerProvider
	tracer     trace.Tracer
	propagator propagation.TextMapPropagator
}

// NewProvider builds the tracer provider for the configured sink and
// installs it, together with a W3C trace-context + baggage propagator, as
// the global OpenTelemetry provider.
func NewProvider(ctx context.Context, app config.App, cfg config.Telemetry, logger *logger.Logger) (*Provider, error) {
	res, err := resource.New(ctx,
		resource.WithTelemetrySDK(),
		resource.WithAttributes(
			semconv.ServiceName(app.ServiceName),
			semconv.ServiceVersion(app.Version),
			semconv.DeploymentEnvironment(app.Environment),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("error creating telemetry resource: %w", err)
	}

	opts := []sdktrace.TracerProviderOption{
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(cfg.SampleRatio))),
	}

	switch cfg.Exporter {
	case config.ExporterNone:
	case config.ExporterConsole:
		// spans are written as soon as they end
		opts = append(opts, sdktrace.WithSyncer(newLogExporter(logger)))
	case config.ExporterOTLPGRPC, config.ExporterOTLPHTTP:
		exporter, err := newOTLPExporter(ctx, cfg)
		if err != nil {
			return nil, err
		}
		opts = append(opts, sdktrace.WithBatcher(exporter))
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownExporter, cfg.Exporter)
	}

	tp := sdktrace.NewTracerProvider(opts...)
	propagator := propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagator)

	logger.Info().
		Str("exporter", cfg.Exporter).
		Float64("sample_ratio", cfg.SampleRatio).
		Msg("tracer provider created")

	return &Provider{
		provider:   tp,
		tracer:     tp.Tracer(app.ServiceName),
		propagator: propagator,
	}, nil
}

func newOTLPExporter(ctx context.Context, cfg config.Telemetry) (sdktrace.SpanExporter, error) {
	if cfg.OTLPEndpoint == "" {
		return nil, ErrEmptyOTLPEndpoint
	}

	var (
		exporter sdktrace.SpanExporter
		err      error
	)
	if cfg.Exporter == config.ExporterOTLPGRPC {
		grpcOpts := []otlptracegrpc.Option{otlptracegrpc.WithEndpoint(cfg.OTLPEndpoint)}
		if cfg.OTLPInsecure {
			grpcOpts = append(grpcOpts, otlptracegrpc.WithInsecure())
		}
		exporter, err = otlptracegrpc.New(ctx, grpcOpts...)
	} else {
		httpOpts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(cfg.OTLPEndpoint)}
		if cfg.OTLPInsecure {
			httpOpts = append(httpOpts, otlptracehttp.WithInsecure())
		}
		exporter, err = otlptracehttp.New(ctx, httpOpts...)
	}
	if err != nil {
		return nil, fmt.Errorf("error creating %s exporter: %w", cfg.Exporter, err)
	}

	return exporter, nil
}

// Tracer returns the tracer used to start root spans.
func (p *Provider) Tracer() trace.Tracer {
	return p.tracer
}

// Propagator returns the propagator used to extract remote span contexts
// from inbound requests.
func (p *Provider) Propagator() propagation.TextMapPropagator {
	return p.propagator
}

// Shutdown flushes pending spans and stops the exporter.
func (p *Provider) Shutdown(ctx context.Context) error {
	if err := p.provider.Shutdown(ctx); err != nil {
		return fmt.Errorf("error shutting down tracer provider: %w", err)
	}
	return nil
}
