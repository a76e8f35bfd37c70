package metric

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelmetric "go.opentelemetry.io/otel/metric"
)

var (
	buildDurationHistogram       otelmetric.Float64Histogram
	provisionDurationHistogram   otelmetric.Float64Histogram
	logPipelineLagHistogram      otelmetric.Float64Histogram
	containersProvisionedCounter otelmetric.Float64Counter
)

// InitOTelMetrics creates OTel instruments for core build metrics.
func InitOTelMetrics() {
	meter := otel.Meter("slipway")

	h, err := meter.Float64Histogram(
		"slipway.build.duration",
		otelmetric.WithDescription("Duration of build execution in seconds"),
		otelmetric.WithUnit("s"),
	)
	if err == nil {
		buildDurationHistogram = h
	}

	h, err = meter.Float64Histogram(
		"slipway.container.provision_duration",
		otelmetric.WithDescription("Container provisioning duration in seconds"),
		otelmetric.WithUnit("s"),
	)
	if err == nil {
		provisionDurationHistogram = h
	}

	h, err = meter.Float64Histogram(
		"slipway.log.pipeline_lag",
		otelmetric.WithDescription("Delay between a log line arriving and being durably stored, in seconds"),
		otelmetric.WithUnit("s"),
	)
	if err == nil {
		logPipelineLagHistogram = h
	}

	c, err := meter.Float64Counter(
		"slipway.containers.provisioned",
		otelmetric.WithDescription("Number of build containers provisioned"),
	)
	if err == nil {
		containersProvisionedCounter = c
	}
}

// RecordBuildDuration records a build execution duration as an OTel histogram observation.
func RecordBuildDuration(ctx context.Context, duration time.Duration, project, status, trigger string) {
	if buildDurationHistogram == nil {
		return
	}
	buildDurationHistogram.Record(ctx, duration.Seconds(),
		otelmetric.WithAttributes(
			attribute.String("build.project", project),
			attribute.String("build.status", status),
			attribute.String("build.trigger", trigger),
		),
	)
}

// RecordProvisionDuration records a container provisioning duration as an OTel histogram observation.
func RecordProvisionDuration(ctx context.Context, duration time.Duration) {
	if provisionDurationHistogram == nil {
		return
	}
	provisionDurationHistogram.Record(ctx, duration.Seconds())
}

// RecordLogPipelineLag records how far behind the durable log store is as an OTel histogram observation.
func RecordLogPipelineLag(ctx context.Context, lag time.Duration) {
	if logPipelineLagHistogram == nil {
		return
	}
	logPipelineLagHistogram.Record(ctx, lag.Seconds())
}

// RecordContainersProvisioned records the number of containers provisioned as an OTel counter.
func RecordContainersProvisioned(ctx context.Context, count float64) {
	if containersProvisionedCounter == nil {
		return
	}
	containersProvisionedCounter.Add(ctx, count)
}
