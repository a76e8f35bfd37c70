package emitter

import (
	"fmt"
	"regexp"
	"strings"

	"code.cloudfoundry.org/lager/v3"
	"github.com/DataDog/datadog-go/v5/statsd"

	"github.com/slipway/slipway/yard/metric"
)

type DogstatsdEmitter struct {
	client *statsd.Client
}

type DogstatsdConfig struct {
	Host   string `long:"datadog-agent-host" description:"Datadog agent host to expose dogstatsd metrics"`
	Port   string `long:"datadog-agent-port" description:"Datadog agent port to expose dogstatsd metrics"`
	Prefix string `long:"datadog-prefix" description:"Prefix on all metrics to easily find them in Datadog"`
}

func init() {
	metric.Metrics.RegisterEmitter(&DogstatsdConfig{})
}

var specialChars = regexp.MustCompile("[^a-zA-Z0-9_]+")

func (config *DogstatsdConfig) Description() string { return "Datadog" }

func (config *DogstatsdConfig) IsConfigured() bool {
	return config.Host != "" && config.Port != ""
}

func (config *DogstatsdConfig) NewEmitter(_ map[string]string) (metric.Emitter, error) {
	client, err := statsd.New(
		fmt.Sprintf("%s:%s", config.Host, config.Port),
		statsd.WithNamespace(config.Prefix),
		// every event reaches the wire; gauges like "build started" carry a
		// distinct value per build and must not collapse into one sample
		statsd.WithoutClientSideAggregation(),
	)
	if err != nil {
		return nil, err
	}

	return &DogstatsdEmitter{client: client}, nil
}

func (emitter *DogstatsdEmitter) Emit(logger lager.Logger, event metric.Event) {
	logger = logger.Session("dogstatsd")

	name := specialChars.ReplaceAllString(strings.ToLower(event.Name), "_")

	tags := []string{}
	for k, v := range event.Attributes {
		tags = append(tags, fmt.Sprintf("%s:%s", k, v))
	}

	err := emitter.client.Gauge(name, event.Value, tags, 1)
	if err != nil {
		logger.Error("failed-to-send-metric", err, lager.Data{"metric": name})
	}
}
