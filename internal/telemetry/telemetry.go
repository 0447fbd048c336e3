// Package telemetry provides OpenTelemetry tracing for world generation and play.
package telemetry

import (
	"context"
	"os"
	"runtime"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

const (
	serviceName    = "wayfarer"
	serviceVersion = "0.1.0"

	defaultEndpoint = "https://api.honeycomb.io"
	defaultDataset  = "wayfarer"
)

// Options selects where spans are exported.
type Options struct {
	APIKey   string // Honeycomb team key; tracing is disabled when empty
	Dataset  string
	Endpoint string
}

// OptionsFromEnv reads HONEYCOMB_WAYFARER_API_KEY, HONEYCOMB_WAYFARER_DATASET
// and OTEL_EXPORTER_OTLP_ENDPOINT.
func OptionsFromEnv() Options {
	return Options{
		APIKey:   os.Getenv("HONEYCOMB_WAYFARER_API_KEY"),
		Dataset:  os.Getenv("HONEYCOMB_WAYFARER_DATASET"),
		Endpoint: os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
	}
}

// Enabled reports whether the options carry credentials.
func (o Options) Enabled() bool {
	return o.APIKey != ""
}

// Setup installs a global tracer provider exporting over OTLP HTTP. When the
// options are not enabled it leaves the default no-op provider in place.
//
// Returns a shutdown function that should be called on application exit.
func Setup(ctx context.Context, opts Options) (shutdown func(context.Context) error, err error) {
	if !opts.Enabled() {
		return func(context.Context) error { return nil }, nil
	}

	endpoint := opts.Endpoint
	if endpoint == "" {
		endpoint = defaultEndpoint
	}
	dataset := opts.Dataset
	if dataset == "" {
		dataset = defaultDataset
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpointURL(endpoint),
		otlptracehttp.WithHeaders(map[string]string{
			"x-honeycomb-team":    opts.APIKey,
			"x-honeycomb-dataset": dataset,
		}),
	)
	if err != nil {
		return nil, err
	}

	// Own resource without merging Default() to avoid schema URL conflicts
	res, err := resource.New(ctx,
		resource.WithAttributes(
			attribute.String("service.name", serviceName),
			attribute.String("service.version", serviceVersion),
			attribute.String("host.name", getHostname()),
			attribute.String("os.type", runtime.GOOS),
			attribute.String("process.runtime.version", runtime.Version()),
		),
	)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}

// Tracer returns a named tracer for the given component.
func Tracer(name string) trace.Tracer {
	return otel.GetTracerProvider().Tracer("wayfarer/" + name)
}

func getHostname() string {
	hostname, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return hostname
}
