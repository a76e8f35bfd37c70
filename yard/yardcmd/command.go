// Package yardcmd assembles the build orchestration server: database,
// container runtime, worker pool, log hub, background sweeps and the API,
// run together as one process group.
package yardcmd

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"time"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
	"github.com/concourse/flag/v2"
	multierror "github.com/hashicorp/go-multierror"
	flags "github.com/jessevdk/go-flags"
	"github.com/tedsuo/ifrit"
	"github.com/tedsuo/ifrit/grouper"
	"github.com/tedsuo/ifrit/http_server"
	"github.com/tedsuo/ifrit/sigmon"

	"github.com/slipway/slipway"
	"github.com/slipway/slipway/tracing"
	"github.com/slipway/slipway/yard/api"
	"github.com/slipway/slipway/yard/coordinator"
	"github.com/slipway/slipway/yard/creds"
	"github.com/slipway/slipway/yard/db"
	"github.com/slipway/slipway/yard/db/encryption"
	"github.com/slipway/slipway/yard/db/lock"
	"github.com/slipway/slipway/yard/engine"
	"github.com/slipway/slipway/yard/gc"
	"github.com/slipway/slipway/yard/logstream"
	"github.com/slipway/slipway/yard/metric"
	_ "github.com/slipway/slipway/yard/metric/emitter" // register the metric emitters
	"github.com/slipway/slipway/yard/queue"
	"github.com/slipway/slipway/yard/report"
	"github.com/slipway/slipway/yard/report/notify"
	"github.com/slipway/slipway/yard/repos"
	"github.com/slipway/slipway/yard/runtime/dockerrt"
	"github.com/slipway/slipway/yard/syslog"
	"github.com/slipway/slipway/yard/worker"
	"github.com/slipway/slipway/yard/wrappa"
)

// RunCommand is the `server` subcommand: every flag the server takes, and
// the assembly of the process group behind them.
type RunCommand struct {
	Logger flag.Lager

	BindIP   flag.IP `long:"bind-ip"   default:"0.0.0.0" description:"IP address on which to listen for API connections."`
	BindPort uint16  `long:"bind-port" default:"8080"    description:"Port on which to listen for API connections."`

	ExternalURL flag.URL `long:"external-url" description:"URL used to reach this server, linked from posted commit statuses."`
	ClusterName string   `long:"cluster-name" description:"A name for this cluster, surfaced through the info endpoint."`

	Postgres         flag.PostgresConfig `group:"PostgreSQL Configuration" namespace:"postgres"`
	DatabaseMaxConns int                 `long:"db-max-conns" default:"32" description:"Maximum open connections in the database pool."`

	EncryptionKey flag.Cipher `long:"encryption-key" description:"A 16 or 32 length key used to encrypt secrets before storing them in the database."`

	WorkerCount        int           `long:"worker-count"         default:"2"   description:"Number of builds to run concurrently."`
	WorkerDrainTimeout time.Duration `long:"worker-drain-timeout" default:"60s" description:"Maximum wait for in-flight builds to wind down on shutdown."`

	BuildDefaultTimeout time.Duration `long:"build-default-timeout" default:"15m" description:"Deadline for builds whose project declares no maximum duration."`
	BuildMaxTimeout     time.Duration `long:"build-max-timeout"     default:"2h"  description:"Hard cap on every build's deadline, regardless of project configuration."`
	BuildDefaultImage   string        `long:"build-default-image"   default:"alpine:3.20" description:"Container image for projects that name none."`

	ArtifactsRoot     flag.Dir      `long:"artifacts-root" required:"true" description:"Directory harvested artifacts are stored under, one subdirectory per build."`
	ArtifactRetention time.Duration `long:"artifact-retention" default:"168h" description:"How long harvested artifacts are kept before the retention sweep takes them."`
	LogRetention      time.Duration `long:"log-retention"      default:"720h" description:"How long the log entries of finished builds are kept. Zero keeps them forever."`
	BuildRetention    time.Duration `long:"build-retention"    description:"How long whole builds are kept. Zero keeps them forever."`
	SweepInterval     time.Duration `long:"retention-sweep-interval" default:"10m" description:"Interval between retention sweeps."`

	ReposRoot flag.Dir `long:"repos-root" required:"true" description:"Directory project working trees are materialised under."`
	GitBinary string   `long:"git-bin" default:"git" description:"git executable used to materialise working trees."`

	DockerBinary string `long:"docker-bin" default:"docker" description:"Container engine CLI used to run builds."`
	DockerSocket string `long:"docker-socket" description:"Engine socket passed to every CLI invocation. Empty uses the CLI's own default."`

	QueueVisibilityTimeout time.Duration `long:"queue-visibility-timeout" description:"How long a dispatched build stays hidden from re-dequeue. Zero derives twice the max build timeout."`
	ReconcileInterval      time.Duration `long:"reconcile-interval" default:"30s" description:"Interval between sweeps for abandoned running builds."`

	Status struct {
		Endpoint string `long:"endpoint" description:"Commit status endpoint template with {repo} and {sha} placeholders, shaped like the GitHub statuses API. Empty disables status posting."`
		Token    string `long:"token"    description:"Bearer token for the commit status endpoint."`
		Context  string `long:"context"  default:"ci/slipway" description:"Context label distinguishing this server's status line on a commit."`
	} `group:"Commit Status Reporting" namespace:"status"`

	Syslog struct {
		Hostname      string        `long:"hostname" default:"slipway-syslog-drainer" description:"Client hostname with which the build logs will be sent to the syslog server."`
		Address       string        `long:"address"  description:"Remote syslog server address with port (Example: 0.0.0.0:514)."`
		Transport     string        `long:"transport" description:"Transport protocol for syslog messages (Options: tcp, udp, tls)."`
		CACert        flag.File     `long:"ca-cert"   description:"PEM-encoded CA certificate used to verify the syslog server when the transport is tls."`
		DrainInterval time.Duration `long:"drain-interval" default:"30s" description:"Interval on which finished builds' logs are forwarded to the syslog server."`
	} `group:"Syslog Drainer Configuration" namespace:"syslog"`

	SecretCache creds.SecretCacheConfig `group:"Secret Caching"`

	Metrics struct {
		HostName   string            `long:"metrics-host-name"   description:"Host string to attach to emitted metrics."`
		Attributes map[string]string `long:"metrics-attribute"   description:"A key-value attribute to attach to emitted metrics. Can be specified multiple times." value-name:"NAME:VALUE"`
		BufferSize uint32            `long:"metrics-buffer-size" default:"1000" description:"The size of the buffer used in emitting event metrics."`
	} `group:"Metrics & Diagnostics"`

	Tracing tracing.Config `group:"Tracing" namespace:"tracing"`
}

// WireDynamicFlags registers the flags of every metric emitter under the
// Metrics & Diagnostics group. Emitter configs self-register at import
// time, so this is the one place that knows about all of them.
func (cmd *RunCommand) WireDynamicFlags(commandFlags *flags.Command) {
	var metricsGroup *flags.Group

	groups := commandFlags.Groups()
	for i := 0; i < len(groups); i++ {
		group := groups[i]

		if metricsGroup == nil && group.ShortDescription == "Metrics & Diagnostics" {
			metricsGroup = group
		}

		groups = append(groups, group.Groups()...)
	}

	if metricsGroup == nil {
		panic("could not find Metrics & Diagnostics group for registering emitters")
	}

	metric.Metrics.WireEmitters(metricsGroup)
}

func (cmd *RunCommand) Execute(args []string) error {
	runner, err := cmd.Runner(args)
	if err != nil {
		return err
	}

	return <-ifrit.Invoke(sigmon.New(runner)).Wait()
}

func (cmd *RunCommand) Runner(positionalArguments []string) (ifrit.Runner, error) {
	if len(positionalArguments) != 0 {
		return nil, fmt.Errorf("unexpected positional arguments: %v", positionalArguments)
	}

	err := cmd.validate()
	if err != nil {
		return nil, err
	}

	logger, _ := cmd.Logger.Logger("slipway")

	err = cmd.Tracing.Prepare()
	if err != nil {
		return nil, err
	}

	metricsHost := cmd.Metrics.HostName
	if metricsHost == "" {
		metricsHost, _ = os.Hostname()
	}

	err = metric.Metrics.Initialize(logger.Session("metrics"), metricsHost, cmd.Metrics.Attributes, cmd.Metrics.BufferSize)
	if err != nil {
		return nil, err
	}

	err = os.MkdirAll(cmd.ArtifactsRoot.Path(), 0755)
	if err != nil {
		return nil, fmt.Errorf("create artifacts root: %w", err)
	}

	err = os.MkdirAll(cmd.ReposRoot.Path(), 0755)
	if err != nil {
		return nil, fmt.Errorf("create repos root: %w", err)
	}

	var strategy encryption.Strategy
	if cmd.EncryptionKey.AEAD != nil {
		strategy = encryption.NewKey(cmd.EncryptionKey.AEAD)
	} else {
		strategy = encryption.NewNoEncryption()
	}

	connectionString := cmd.Postgres.ConnectionString()

	dbConn, err := db.Open(logger.Session("db"), connectionString, strategy, cmd.DatabaseMaxConns, "slipway")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	lockConn, err := cmd.constructLockConn()
	if err != nil {
		return nil, fmt.Errorf("open lock connection: %w", err)
	}

	lockFactory := lock.NewLockFactory(lockConn)

	clk := clock.NewClock()

	projectFactory := db.NewProjectFactory(dbConn)
	buildFactory := db.NewBuildFactory(dbConn)
	buildLifecycle := db.NewBuildLifecycle(dbConn)
	artifactLifecycle := db.NewArtifactLifecycle(dbConn)
	logLifecycle := db.NewLogLifecycle(dbConn)
	outbox := db.NewNotificationOutbox(dbConn)
	syslogDrain := db.NewSyslogDrain(dbConn)

	visibilityTimeout := cmd.QueueVisibilityTimeout
	if visibilityTimeout == 0 {
		visibilityTimeout = 2 * cmd.BuildMaxTimeout
	}

	buildQueue := db.NewBuildQueue(dbConn, visibilityTimeout)

	var secretReader creds.SecretReader = creds.DBSecretReader{}
	if cmd.SecretCache.Enabled {
		secretReader = creds.NewCachedSecrets(creds.DBSecretReader{}, cmd.SecretCache)
	}

	vault := creds.NewVault(strategy, secretReader)

	streamConfig := logstream.NewConfig()
	hub := logstream.NewHub(logger.Session("logstream"), streamConfig, clk)

	reposConfig := repos.NewConfig(cmd.ReposRoot.Path())
	reposConfig.Binary = cmd.GitBinary
	materialiser := repos.NewGitMaterialiser(reposConfig, repos.NewRunner(cmd.GitBinary))

	dockerConfig := dockerrt.NewConfig(cmd.DockerBinary, cmd.DockerSocket)
	dockerCLI := dockerrt.NewCLI(dockerConfig)
	runtimeEngine := dockerrt.NewEngine(dockerCLI, dockerConfig)
	reaper := dockerrt.NewReaper(logger.Session("reaper"), dockerCLI, dockerConfig, buildFactory)

	notifyConfig, err := notify.ConfigFromEnv()
	if err != nil {
		return nil, fmt.Errorf("parse notify config: %w", err)
	}

	reportConfig := report.NewConfig()
	reportConfig.Endpoint = cmd.Status.Endpoint
	reportConfig.Token = cmd.Status.Token
	reportConfig.Context = cmd.Status.Context

	var poster report.Poster
	if reportConfig.Endpoint != "" {
		poster = report.NewHTTPPoster(logger.Session("status-poster"), reportConfig)
	}

	var targetURL string
	if cmd.ExternalURL.URL != nil {
		targetURL = cmd.ExternalURL.String() + "/builds/{build_id}"
	}

	reporter := report.NewReporter(poster, projectFactory, outbox, targetURL, notifyConfig, clk)

	coord := coordinator.NewCoordinator(projectFactory, buildFactory, hub, reporter, clk)
	tracker := coordinator.NewTracker(logger.Session("tracker"), dbConn.Bus())
	reconciler := coordinator.NewReconciler(
		logger,
		buildLifecycle,
		hub,
		reporter,
		clk,
		cmd.ReconcileInterval,
		coordinator.DefaultInfraRetryDelay,
	)

	engineConfig := engine.NewConfig(cmd.ArtifactsRoot.Path())
	engineConfig.DefaultImage = cmd.BuildDefaultImage
	engineConfig.DefaultTimeout = cmd.BuildDefaultTimeout
	engineConfig.MaxTimeout = cmd.BuildMaxTimeout
	engineConfig.ArtifactRetention = cmd.ArtifactRetention

	buildEngine := engine.NewEngine(
		runtimeEngine,
		materialiser,
		vault,
		projectFactory,
		hub,
		streamConfig,
		reporter,
		clk,
		engineConfig,
	)

	buildsQueue := queue.NewQueue(buildQueue, dbConn.Bus(), clk, queue.DefaultPollInterval)

	pool := worker.NewPool(
		logger,
		buildsQueue,
		buildEngine,
		tracker,
		clk,
		cmd.WorkerCount,
		cmd.WorkerDrainTimeout,
	)

	gcRunner := gc.NewRunner(
		logger,
		clk,
		cmd.SweepInterval,
		gc.NewArtifactCollector(artifactLifecycle, lockFactory, cmd.ArtifactsRoot.Path()),
		gc.NewBuildLogCollector(logLifecycle, lockFactory, cmd.LogRetention),
		gc.NewBuildCollector(buildLifecycle, artifactLifecycle, lockFactory, cmd.BuildRetention, cmd.ArtifactsRoot.Path()),
		gc.NewContainerCollector(reaper),
	)

	var wrapper wrappa.MultiWrappa
	wrapper = append(wrapper, wrappa.NewAPIMetricsWrappa(logger.Session("api-metrics")))
	if tracing.Configured {
		wrapper = append(wrapper, wrappa.NewOTelHTTPWrappa())
	}

	apiHandler, err := api.NewHandler(
		logger.Session("api"),
		wrapper,
		slipway.Version,
		slipway.APIVersion,
		cmd.ExternalURL.String(),
		cmd.ClusterName,
		coord,
		coord,
		artifactLifecycle,
	)
	if err != nil {
		return nil, fmt.Errorf("construct api handler: %w", err)
	}

	bindAddr := fmt.Sprintf("%s:%d", cmd.BindIP.IP, cmd.BindPort)

	members := grouper.Members{
		{Name: "api", Runner: http_server.New(bindAddr, apiHandler)},
		{Name: "tracker", Runner: tracker},
		{Name: "workers", Runner: pool},
		{Name: "reconciler", Runner: reconciler},
		{Name: "gc", Runner: gcRunner},
	}

	if cmd.Syslog.Address != "" {
		drainer := syslog.NewDrainer(logger.Session("syslog"), syslog.Config{
			Hostname:  cmd.Syslog.Hostname,
			Transport: cmd.Syslog.Transport,
			Address:   cmd.Syslog.Address,
			CACert:    cmd.Syslog.CACert.Path(),
		}, syslogDrain)

		members = append(members, grouper.Member{
			Name:   "syslog",
			Runner: syslog.NewRunner(logger, drainer, clk, cmd.Syslog.DrainInterval),
		})
	}

	go metric.PeriodicallyEmit(logger.Session("periodic-metrics"), metric.Metrics, 10*time.Second)

	onReady := func() {
		logger.Info("listening", lager.Data{
			"addr":    bindAddr,
			"version": slipway.Version,
		})
	}

	onExit := func() {
		_ = dbConn.Close()
		_ = lockConn.Close()
	}

	return run(grouper.NewParallel(os.Interrupt, members), onReady, onExit), nil
}

func (cmd *RunCommand) validate() error {
	var errs *multierror.Error

	if cmd.WorkerCount <= 0 {
		errs = multierror.Append(errs, errors.New("worker count must be at least 1"))
	}

	if cmd.BuildMaxTimeout < cmd.BuildDefaultTimeout {
		errs = multierror.Append(errs, errors.New("build max timeout must not be below the default timeout"))
	}

	if cmd.QueueVisibilityTimeout != 0 && cmd.QueueVisibilityTimeout <= cmd.BuildMaxTimeout {
		errs = multierror.Append(errs, errors.New("queue visibility timeout must exceed the max build timeout"))
	}

	if cmd.Syslog.Address != "" && cmd.Syslog.Transport == "" {
		errs = multierror.Append(errs, errors.New("syslog transport must be set when an address is configured"))
	}

	return errs.ErrorOrNil()
}

// Advisory locks are scoped to a database session, so the lock factory gets
// a connection pool pinned to exactly one connection for the life of the
// process.
func (cmd *RunCommand) constructLockConn() (*sql.DB, error) {
	lockConn, err := sql.Open("pgx", cmd.Postgres.ConnectionString())
	if err != nil {
		return nil, err
	}

	lockConn.SetMaxOpenConns(1)
	lockConn.SetMaxIdleConns(1)
	lockConn.SetConnMaxLifetime(0)

	return lockConn, nil
}

func run(runner ifrit.Runner, onReady func(), onExit func()) ifrit.Runner {
	return ifrit.RunFunc(func(signals <-chan os.Signal, ready chan<- struct{}) error {
		process := ifrit.Background(runner)

		subExited := process.Wait()
		subReady := process.Ready()

		for {
			select {
			case <-subReady:
				onReady()
				close(ready)
				subReady = nil
			case err := <-subExited:
				onExit()
				return err
			case sig := <-signals:
				process.Signal(sig)
			}
		}
	})
}
