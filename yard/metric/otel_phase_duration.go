package metric

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelmetric "go.opentelemetry.io/otel/metric"
)

var phaseDurationHistogram otelmetric.Float64Histogram

// InitOTelPhaseDuration creates the OTel histogram instrument for phase duration.
func InitOTelPhaseDuration() {
	meter := otel.Meter("slipway")
	h, err := meter.Float64Histogram(
		"slipway.phase.duration",
		otelmetric.WithDescription("Duration of build phase execution in seconds"),
		otelmetric.WithUnit("s"),
	)
	if err != nil {
		return
	}
	phaseDurationHistogram = h
}

// RecordPhaseDuration records a phase execution duration as an OTel histogram observation.
func RecordPhaseDuration(ctx context.Context, project string, phase string, duration time.Duration) {
	if phaseDurationHistogram == nil {
		return
	}
	phaseDurationHistogram.Record(ctx, duration.Seconds(),
		otelmetric.WithAttributes(
			attribute.String("build.project", project),
			attribute.String("phase.name", phase),
		),
	)
}
