package emitter

import (
	"sync"
	"time"

	"code.cloudfoundry.org/lager/v3"
	influxclient "github.com/influxdata/influxdb1-client/v2"

	"github.com/slipway/slipway/yard/metric"
)

type InfluxDBEmitter struct {
	client        influxclient.Client
	database      string
	batchSize     int
	batchDuration time.Duration

	mu            sync.Mutex
	batch         []metric.Event
	lastBatchTime time.Time
}

type InfluxDBConfig struct {
	URL      string `long:"influxdb-url" description:"InfluxDB server address to emit points to"`
	Database string `long:"influxdb-database" description:"InfluxDB database to write points to"`

	Username string `long:"influxdb-username" description:"InfluxDB server username"`
	Password string `long:"influxdb-password" description:"InfluxDB server password"`

	InsecureSkipVerify bool `long:"influxdb-insecure-skip-verify" description:"Skip SSL verification when emitting to InfluxDB"`

	BatchSize     uint32        `long:"influxdb-batch-size" default:"5000" description:"Number of points to batch together when emitting to InfluxDB"`
	BatchDuration time.Duration `long:"influxdb-batch-duration" default:"300s" description:"The duration to wait before emitting a batch of points to InfluxDB, disregarding the batch size"`
}

func init() {
	metric.Metrics.RegisterEmitter(&InfluxDBConfig{})
}

func (config *InfluxDBConfig) Description() string { return "InfluxDB" }

func (config *InfluxDBConfig) IsConfigured() bool { return config.URL != "" }

func (config *InfluxDBConfig) NewEmitter(_ map[string]string) (metric.Emitter, error) {
	client, err := influxclient.NewHTTPClient(influxclient.HTTPConfig{
		Addr:               config.URL,
		Username:           config.Username,
		Password:           config.Password,
		InsecureSkipVerify: config.InsecureSkipVerify,
	})
	if err != nil {
		return nil, err
	}

	return &InfluxDBEmitter{
		client:        client,
		database:      config.Database,
		batchSize:     int(config.BatchSize),
		batchDuration: config.BatchDuration,
		lastBatchTime: time.Now(),
	}, nil
}

// Emit stages the event; a full or stale batch is shipped in the
// background. Quiet periods can leave a partial batch staged until the
// next event arrives.
func (emitter *InfluxDBEmitter) Emit(logger lager.Logger, event metric.Event) {
	emitter.mu.Lock()
	defer emitter.mu.Unlock()

	emitter.batch = append(emitter.batch, event)

	if len(emitter.batch) >= emitter.batchSize || time.Since(emitter.lastBatchTime) >= emitter.batchDuration {
		batch := make([]metric.Event, len(emitter.batch))
		copy(batch, emitter.batch)
		emitter.batch = emitter.batch[:0]
		emitter.lastBatchTime = time.Now()

		go emitter.submitBatch(logger, batch)
	}
}

func (emitter *InfluxDBEmitter) submitBatch(logger lager.Logger, batch []metric.Event) {
	logger = logger.Session("influxdb")
	logger.Debug("emit-batch", lager.Data{"size": len(batch)})

	points, err := influxclient.NewBatchPoints(influxclient.BatchPointsConfig{
		Database: emitter.database,
	})
	if err != nil {
		logger.Error("failed-to-construct-batch-points", err)
		return
	}

	for _, event := range batch {
		tags := map[string]string{
			"host": event.Host,
		}

		for k, v := range event.Attributes {
			tags[k] = v
		}

		point, err := influxclient.NewPoint(
			event.Name,
			tags,
			map[string]interface{}{
				"value": event.Value,
				"state": string(event.State),
			},
			event.Time,
		)
		if err != nil {
			logger.Error("failed-to-construct-point", err, lager.Data{"event": event.Name})
			continue
		}

		points.AddPoint(point)
	}

	err = emitter.client.Write(points)
	if err != nil {
		logger.Error("failed-to-send-points", err)
	}
}
