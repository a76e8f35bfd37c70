package tracing

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc/credentials"
)

// Configured indicates whether a tracer provider has been installed.
var Configured bool

// Config holds configuration for trace export.
type Config struct {
	ServiceName string            `long:"service-name" default:"slipway" description:"service name to attach to emitted traces"`
	Attributes  map[string]string `long:"attribute"    description:"additional attributes to attach to emitted traces"`

	Jaeger   JaegerConfig `group:"Jaeger configuration" namespace:"jaeger"`
	OTLP     OTLPConfig   `group:"OTLP configuration"   namespace:"otlp"`
	Sampling SamplingConfig
}

// JaegerConfig holds configuration for the Jaeger trace exporter.
type JaegerConfig struct {
	Endpoint string            `long:"endpoint" description:"jaeger http-based thrift collector"`
	Tags     map[string]string `long:"tags"     description:"tags to add to the components"`
	Service  string            `long:"service"  description:"jaeger process service name" default:"slipway"`
}

// OTLPConfig holds configuration for the OTLP gRPC trace exporter.
type OTLPConfig struct {
	Address string            `long:"address" description:"otlp address to send traces to"`
	Headers map[string]string `long:"header"  description:"headers to attach to each tracing message"`
	UseTLS  bool              `long:"use-tls" description:"whether to use tls or not"`
}

// Prepare installs the globally configured tracer provider if any exporter
// is configured. It is a no-op otherwise.
func (c Config) Prepare() error {
	exporter, err := c.exporter()
	if err != nil {
		return err
	}

	if exporter == nil {
		return nil
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(c.Sampler()),
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(c.resource()),
	)

	ConfigureTraceProvider(provider)
	return nil
}

func (c Config) exporter() (sdktrace.SpanExporter, error) {
	switch {
	case c.OTLP.Address != "":
		return c.otlpExporter()
	case c.Jaeger.Endpoint != "":
		return c.jaegerExporter()
	default:
		return nil, nil
	}
}

func (c Config) otlpExporter() (sdktrace.SpanExporter, error) {
	opts := []otlptracegrpc.Option{
		otlptracegrpc.WithEndpoint(c.OTLP.Address),
		otlptracegrpc.WithHeaders(c.OTLP.Headers),
	}

	if c.OTLP.UseTLS {
		opts = append(opts, otlptracegrpc.WithTLSCredentials(credentials.NewClientTLSFromCert(nil, "")))
	} else {
		opts = append(opts, otlptracegrpc.WithInsecure())
	}

	return otlptrace.New(context.Background(), otlptracegrpc.NewClient(opts...))
}

func (c Config) jaegerExporter() (sdktrace.SpanExporter, error) {
	return jaeger.New(jaeger.WithCollectorEndpoint(
		jaeger.WithEndpoint(c.Jaeger.Endpoint),
	))
}

func (c Config) resource() *resource.Resource {
	attrs := []attribute.KeyValue{
		attribute.String("service.name", c.ServiceName),
	}
	for key, value := range c.Attributes {
		attrs = append(attrs, attribute.String(key, value))
	}
	return resource.NewSchemaless(attrs...)
}

// ConfigureTraceProvider sets the global OTel TracerProvider and the W3C
// trace-context propagator.
func ConfigureTraceProvider(tp trace.TracerProvider) {
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})
	Configured = true
}

// Attrs is a convenience form for string span attributes.
type Attrs map[string]string

// StartSpan starts a span named after the operation. The returned span must
// be finished via End.
func StartSpan(ctx context.Context, operation string, attrs Attrs) (context.Context, trace.Span) {
	ctx, span := otel.Tracer("slipway").Start(ctx, operation)

	if len(attrs) > 0 {
		kv := make([]attribute.KeyValue, 0, len(attrs))
		for key, value := range attrs {
			kv = append(kv, attribute.String(key, value))
		}
		span.SetAttributes(kv...)
	}

	return ctx, span
}

// End finishes the span, recording err as the span status when it represents
// a failure. Context cancellation is recorded but not treated as an error
// status.
func End(span trace.Span, err error) {
	if err != nil && !errors.Is(err, context.Canceled) {
		span.SetStatus(codes.Error, err.Error())
		span.RecordError(err)
	}
	span.End()
}
