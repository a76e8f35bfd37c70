// Package emitter holds the metrics backends selectable at startup. Each
// backend registers itself with the process monitor; its flag group decides
// whether it is the configured one.
package emitter

import (
	"code.cloudfoundry.org/lager/v3"

	"github.com/slipway/slipway/yard/metric"
)

type LagerEmitter struct{}

type LagerConfig struct {
	Enabled bool `long:"emit-to-logs" description:"Emit metrics to logs."`
}

func init() {
	metric.Metrics.RegisterEmitter(&LagerConfig{})
}

func (config *LagerConfig) Description() string { return "Lager" }

func (config *LagerConfig) IsConfigured() bool { return config.Enabled }

func (config *LagerConfig) NewEmitter(_ map[string]string) (metric.Emitter, error) {
	return &LagerEmitter{}, nil
}

func (emitter *LagerEmitter) Emit(logger lager.Logger, event metric.Event) {
	data := lager.Data{
		"value": event.Value,
		"state": string(event.State),
	}

	for k, v := range event.Attributes {
		data[k] = v
	}

	logger.Info(event.Name, data)
}
