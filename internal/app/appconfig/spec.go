package appconfig

import (
	"time"

	"github.com/RiccardoGrin/board-brawl-sub001/internal/app/appcontext"
)

type ConfigSpec struct {
	// DevOpsAddress is the listen address would listen on for serving devops requests (health, bininfo, metrics).
	// Leaving this empty will disable devops server.
	// This address is only intended to be used in intra-cluster devops requests, and is not intended to be exposed to the public.
	DevOpsAddress string `split_words:"true"`

	// LogJsonStdout is whether to log JSON logs (instead of pretty-print logs) to stdout for the ease of log collection.
	LogJsonStdout bool `split_words:"true" default:"false"`

	// LogFile is the path of the rotated log file. Leaving this empty will disable file logging.
	LogFile string `split_words:"true" default:"logs/app.log"`

	LogFileMaxSizeMB  int `split_words:"true" default:"100"`
	LogFileMaxBackups int `split_words:"true" default:"7"`
	LogFileMaxAgeDays int `split_words:"true" default:"30"`

	// DevMode to indicate development mode. When true, logs are emitted at debug level and
	// bun prints every query it executes.
	DevMode bool `split_words:"true"`

	// TracingEnabled to indicate whether to enable OpenTelemetry tracing.
	TracingEnabled bool `split_words:"true"`

	// TracingExporters to indicate which exporters to use for tracing.
	// Valid values are: otlp, stdout (for debug).
	TracingExporters []string `split_words:"true" default:"otlp"`

	// TracingSampleRate to indicate the sampling rate for tracing.
	// Valid values are: 0.0 (disabled), 1.0 (all traces), or a value between 0.0 and 1.0 (sampling rate).
	TracingSampleRate float64 `split_words:"true" default:"1.0"`

	// infrastructure components connection instructions

	// PostgresDSN is the data source name for the PostgreSQL database. See
	// https://bun.uptrace.dev/postgres/#pgdriver for more details on how to construct a PostgreSQL DSN.
	PostgresDSN string `required:"true" split_words:"true"`

	PostgresMaxOpenConns    int           `split_words:"true" default:"10"`
	PostgresMaxIdleConns    int           `split_words:"true" default:"2"`
	PostgresConnMaxLifeTime time.Duration `split_words:"true" default:"5m"`
	PostgresConnMaxIdleTime time.Duration `split_words:"true" default:"5m"`

	BunDebugVerbose bool `split_words:"true"`

	// ConnectRetryAttempts is how many times to try reaching Postgres and NATS on startup before giving up.
	ConnectRetryAttempts uint `split_words:"true" default:"5"`

	// NatsURL is the URL of the NATS server. See https://pkg.go.dev/github.com/nats-io/nats.go#Connect
	// for more information on how to construct a NATS URL.
	NatsURL string `required:"true" split_words:"true" default:"nats://127.0.0.1:4222"`

	// NatsStream is the JetStream stream change events are published to.
	NatsStream string `required:"true" split_words:"true" default:"BRAWL_CHANGES"`

	// NatsQueue is the queue group and durable consumer name shared by every worker replica.
	NatsQueue string `required:"true" split_words:"true" default:"brawlstats"`

	// NatsDuplicateWindow is the window in which JetStream drops messages that repeat a Nats-Msg-Id.
	NatsDuplicateWindow time.Duration `split_words:"true" default:"2m"`

	// SentryDSN is the DSN of the Sentry server. See https://pkg.go.dev/github.com/getsentry/sentry-go#ClientOptions
	SentryDSN string `split_words:"true"`

	// DatadogProfilerEnabled to indicate whether to enable Datadog profiler.
	DatadogProfilerEnabled bool `split_words:"true" default:"false"`

	// DatadogProfilerAgentAddress is the address of the Datadog profiler agent.
	DatadogProfilerAgentAddress string `split_words:"true" default:"localhost:8126"`

	// HTTPServerShutdownTimeout is the timeout for the devops HTTP server to shut down gracefully.
	HTTPServerShutdownTimeout time.Duration `required:"true" split_words:"true" default:"10s"`

	// WorkerCount is the number of concurrent change event consumers in this process.
	WorkerCount int `required:"true" split_words:"true" default:"8"`

	// WorkerAckWait is how long JetStream waits for an ack before redelivering a change event.
	WorkerAckWait time.Duration `required:"true" split_words:"true" default:"30s"`

	// WorkerMaxDeliver is how many times JetStream delivers a change event before giving up on it.
	WorkerMaxDeliver int `required:"true" split_words:"true" default:"10"`

	// WorkerInvocationTimeout bounds a single handler invocation. Exceeding it fails the invocation
	// and the change event is redelivered.
	WorkerInvocationTimeout time.Duration `required:"true" split_words:"true" default:"20s"`

	// WorkerFetchConcurrency bounds the parallel dependent-record reads of one invocation.
	WorkerFetchConcurrency int `required:"true" split_words:"true" default:"8"`
}

type Config struct {
	// ConfigSpec is the configuration specification injected to the config.
	ConfigSpec

	// AppContext is the application context
	AppContext appcontext.Ctx
}
