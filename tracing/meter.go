package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"google.golang.org/grpc/credentials"
)

// MetricsConfigured indicates whether OTel metrics have been configured.
var MetricsConfigured bool

// MetricsConfig holds configuration for OTel metrics export.
type MetricsConfig struct {
	OTLPAddress string            `long:"otlp-address" description:"OTLP gRPC endpoint for metrics export"`
	OTLPHeaders map[string]string `long:"otlp-header"  description:"headers to attach to OTLP metrics requests"`
	OTLPUseTLS  bool              `long:"otlp-use-tls" description:"use TLS for the OTLP metrics connection"`
}

// ConfigureMeterProvider sets the global OTel MeterProvider.
func ConfigureMeterProvider(mp *sdkmetric.MeterProvider) {
	otel.SetMeterProvider(mp)
	MetricsConfigured = true
}

// MeterProvider creates an OTel MeterProvider based on the config. It
// returns (nil, nil, nil) when no metrics export is configured. The returned
// shutdown function should be called on process exit.
func (c MetricsConfig) MeterProvider() (*sdkmetric.MeterProvider, func(context.Context) error, error) {
	if c.OTLPAddress == "" {
		return nil, nil, nil
	}

	opts := []otlpmetricgrpc.Option{
		otlpmetricgrpc.WithEndpoint(c.OTLPAddress),
		otlpmetricgrpc.WithHeaders(c.OTLPHeaders),
	}

	if c.OTLPUseTLS {
		opts = append(opts, otlpmetricgrpc.WithTLSCredentials(credentials.NewClientTLSFromCert(nil, "")))
	} else {
		opts = append(opts, otlpmetricgrpc.WithInsecure())
	}

	exporter, err := otlpmetricgrpc.New(context.Background(), opts...)
	if err != nil {
		return nil, nil, err
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter)),
	)
	return mp, mp.Shutdown, nil
}
