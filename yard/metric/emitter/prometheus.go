package emitter

import (
	"fmt"
	"net"
	"net/http"

	"code.cloudfoundry.org/lager/v3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/slipway/slipway/yard/metric"
)

type PrometheusEmitter struct {
	buildsQueued  prometheus.Gauge
	buildsRunning prometheus.Gauge

	buildsStarted  prometheus.Counter
	buildsFinished *prometheus.CounterVec
	buildDurations prometheus.Histogram

	containersProvisioned prometheus.Counter
	containersFailed      prometheus.Counter
	containersReaped      prometheus.Counter

	mirrorFetches       prometheus.Counter
	mirrorFetchesFailed prometheus.Counter

	logEntriesPersisted prometheus.Counter
	liveLogDrops        prometheus.Counter
	logEntriesDrained   prometheus.Counter

	buildsDeleted     prometheus.Counter
	artifactsDeleted  prometheus.Counter
	logEntriesDeleted prometheus.Counter

	statusReports        *prometheus.CounterVec
	statusReportDuration prometheus.Histogram

	httpResponseDuration *prometheus.HistogramVec
}

type PrometheusConfig struct {
	BindIP   string `long:"prometheus-bind-ip" description:"IP to listen on to expose Prometheus metrics"`
	BindPort string `long:"prometheus-bind-port" description:"Port to listen on to expose Prometheus metrics"`
}

func init() {
	metric.Metrics.RegisterEmitter(&PrometheusConfig{})
}

func (config *PrometheusConfig) Description() string { return "Prometheus" }

func (config *PrometheusConfig) IsConfigured() bool {
	return config.BindIP != "" && config.BindPort != ""
}

func (config *PrometheusConfig) bind() string {
	return fmt.Sprintf("%s:%s", config.BindIP, config.BindPort)
}

// buildDurationBuckets spans one second to the two-hour timeout ceiling.
var buildDurationBuckets = []float64{1, 30, 60, 120, 300, 600, 900, 1800, 3600, 7200}

func (config *PrometheusConfig) NewEmitter(_ map[string]string) (metric.Emitter, error) {
	registry := prometheus.NewRegistry()

	buildsQueued := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "slipway",
		Subsystem: "builds",
		Name:      "queued",
		Help:      "Builds waiting for a worker, high-water mark per emission interval.",
	})
	registry.MustRegister(buildsQueued)

	buildsRunning := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "slipway",
		Subsystem: "builds",
		Name:      "running",
		Help:      "Builds being executed, high-water mark per emission interval.",
	})
	registry.MustRegister(buildsRunning)

	buildsStarted := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "slipway",
		Subsystem: "builds",
		Name:      "started_total",
		Help:      "Builds that began executing.",
	})
	registry.MustRegister(buildsStarted)

	buildsFinished := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "slipway",
		Subsystem: "builds",
		Name:      "finished_total",
		Help:      "Builds that reached a terminal status.",
	}, []string{"status"})
	registry.MustRegister(buildsFinished)

	buildDurations := prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "slipway",
		Subsystem: "builds",
		Name:      "duration_seconds",
		Help:      "Wall-clock duration of finished builds.",
		Buckets:   buildDurationBuckets,
	})
	registry.MustRegister(buildDurations)

	containersProvisioned := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "slipway",
		Subsystem: "containers",
		Name:      "provisioned_total",
		Help:      "Build containers created.",
	})
	registry.MustRegister(containersProvisioned)

	containersFailed := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "slipway",
		Subsystem: "containers",
		Name:      "failed_total",
		Help:      "Container operations that failed.",
	})
	registry.MustRegister(containersFailed)

	containersReaped := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "slipway",
		Subsystem: "containers",
		Name:      "reaped_total",
		Help:      "Stray build containers removed by the reaper.",
	})
	registry.MustRegister(containersReaped)

	mirrorFetches := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "slipway",
		Subsystem: "mirror",
		Name:      "fetches_total",
		Help:      "Repository mirror fetches.",
	})
	registry.MustRegister(mirrorFetches)

	mirrorFetchesFailed := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "slipway",
		Subsystem: "mirror",
		Name:      "fetches_failed_total",
		Help:      "Repository mirror fetches that failed.",
	})
	registry.MustRegister(mirrorFetchesFailed)

	logEntriesPersisted := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "slipway",
		Subsystem: "logs",
		Name:      "entries_persisted_total",
		Help:      "Log entries written to the database.",
	})
	registry.MustRegister(logEntriesPersisted)

	liveLogDrops := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "slipway",
		Subsystem: "logs",
		Name:      "live_drops_total",
		Help:      "Log entries dropped from live streams by buffer capping.",
	})
	registry.MustRegister(liveLogDrops)

	logEntriesDrained := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "slipway",
		Subsystem: "logs",
		Name:      "entries_drained_total",
		Help:      "Log entries forwarded to the syslog drain.",
	})
	registry.MustRegister(logEntriesDrained)

	buildsDeleted := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "slipway",
		Subsystem: "gc",
		Name:      "builds_deleted_total",
		Help:      "Builds destroyed by the retention sweeper.",
	})
	registry.MustRegister(buildsDeleted)

	artifactsDeleted := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "slipway",
		Subsystem: "gc",
		Name:      "artifacts_deleted_total",
		Help:      "Expired artifacts removed by the retention sweeper.",
	})
	registry.MustRegister(artifactsDeleted)

	logEntriesDeleted := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "slipway",
		Subsystem: "gc",
		Name:      "log_entries_deleted_total",
		Help:      "Log entries deleted by the retention sweeper.",
	})
	registry.MustRegister(logEntriesDeleted)

	statusReports := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "slipway",
		Subsystem: "status_reports",
		Name:      "total",
		Help:      "Commit status posts, by provider response code.",
	}, []string{"status"})
	registry.MustRegister(statusReports)

	statusReportDuration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "slipway",
		Subsystem: "status_reports",
		Name:      "duration_seconds",
		Help:      "Round-trip time of commit status posts.",
	})
	registry.MustRegister(statusReportDuration)

	httpResponseDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "slipway",
		Subsystem: "http",
		Name:      "responses_duration_seconds",
		Help:      "API response time.",
	}, []string{"method", "route", "status"})
	registry.MustRegister(httpResponseDuration)

	listener, err := net.Listen("tcp", config.bind())
	if err != nil {
		return nil, err
	}

	go func() {
		_ = http.Serve(listener, promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}()

	return &PrometheusEmitter{
		buildsQueued:  buildsQueued,
		buildsRunning: buildsRunning,

		buildsStarted:  buildsStarted,
		buildsFinished: buildsFinished,
		buildDurations: buildDurations,

		containersProvisioned: containersProvisioned,
		containersFailed:      containersFailed,
		containersReaped:      containersReaped,

		mirrorFetches:       mirrorFetches,
		mirrorFetchesFailed: mirrorFetchesFailed,

		logEntriesPersisted: logEntriesPersisted,
		liveLogDrops:        liveLogDrops,
		logEntriesDrained:   logEntriesDrained,

		buildsDeleted:     buildsDeleted,
		artifactsDeleted:  artifactsDeleted,
		logEntriesDeleted: logEntriesDeleted,

		statusReports:        statusReports,
		statusReportDuration: statusReportDuration,

		httpResponseDuration: httpResponseDuration,
	}, nil
}

func (emitter *PrometheusEmitter) Emit(logger lager.Logger, event metric.Event) {
	switch event.Name {
	case "builds queued":
		emitter.buildsQueued.Set(event.Value)
	case "builds running":
		emitter.buildsRunning.Set(event.Value)
	case "build started":
		emitter.buildsStarted.Inc()
	case "build finished":
		emitter.buildFinished(event)
	case "containers provisioned":
		emitter.containersProvisioned.Add(event.Value)
	case "failed containers":
		emitter.containersFailed.Add(event.Value)
	case "containers reaped":
		emitter.containersReaped.Add(event.Value)
	case "mirror fetches":
		emitter.mirrorFetches.Add(event.Value)
	case "failed mirror fetches":
		emitter.mirrorFetchesFailed.Add(event.Value)
	case "log entries persisted":
		emitter.logEntriesPersisted.Add(event.Value)
	case "live log drops":
		emitter.liveLogDrops.Add(event.Value)
	case "log entries drained":
		emitter.logEntriesDrained.Add(event.Value)
	case "builds deleted":
		emitter.buildsDeleted.Add(event.Value)
	case "artifacts deleted":
		emitter.artifactsDeleted.Add(event.Value)
	case "log entries deleted":
		emitter.logEntriesDeleted.Add(event.Value)
	case "status report":
		emitter.statusReport(event)
	case "http response time":
		emitter.httpResponseTime(event)
	default:
		logger.Debug("unmapped-event", lager.Data{"event": event.Name})
	}
}

func (emitter *PrometheusEmitter) buildFinished(event metric.Event) {
	emitter.buildsFinished.WithLabelValues(event.Attributes["build_status"]).Inc()
	emitter.buildDurations.Observe(event.Value / 1000)
}

func (emitter *PrometheusEmitter) statusReport(event metric.Event) {
	emitter.statusReports.WithLabelValues(event.Attributes["status"]).Inc()
	emitter.statusReportDuration.Observe(event.Value / 1000)
}

func (emitter *PrometheusEmitter) httpResponseTime(event metric.Event) {
	emitter.httpResponseDuration.WithLabelValues(
		event.Attributes["method"],
		event.Attributes["route"],
		event.Attributes["status"],
	).Observe(event.Value / 1000)
}
