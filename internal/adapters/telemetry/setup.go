package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Setup installs a global OTel tracer provider and returns its shutdown
// function. Without a configured exporter spans are collected and dropped,
// which keeps span creation in the gateway cheap but ready to export.
func Setup() func(context.Context) error {
	provider := sdktrace.NewTracerProvider()
	otel.SetTracerProvider(provider)
	return provider.Shutdown
}
