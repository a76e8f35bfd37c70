package tracing

import (
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Sampling strategies the config recognises. Anything else samples
// everything, a bounded volume on a single-node server.
const (
	SampleAlways      = "always"
	SampleNever       = "never"
	SampleProbability = "probability"
)

// SamplingConfig selects which spans are recorded.
type SamplingConfig struct {
	Strategy string  `long:"sampling-strategy" description:"trace sampling strategy: always, never, probability" default:"always"`
	Rate     float64 `long:"sampling-rate"     description:"sampling rate for the probability strategy (0.0 to 1.0)" default:"1.0"`
}

// Sampler builds the sdktrace.Sampler the configured strategy calls for.
func (c Config) Sampler() sdktrace.Sampler {
	switch c.Sampling.Strategy {
	case SampleNever:
		return sdktrace.NeverSample()
	case SampleProbability:
		return sdktrace.TraceIDRatioBased(c.Sampling.rate())
	default:
		return sdktrace.AlwaysSample()
	}
}

// rate tolerates a zero value, which go-flags leaves behind when the
// strategy is set without an explicit rate.
func (c SamplingConfig) rate() float64 {
	if c.Rate == 0 {
		return 1.0
	}
	return c.Rate
}
