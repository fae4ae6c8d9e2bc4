package appconfig

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"

	"github.com/RiccardoGrin/board-brawl-sub001/internal/app/appcontext"
)

const envPrefix = "brawlstats"

func Parse(ctx appcontext.Ctx) (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Debug().
			Str("evt.name", "config.dotenv.skipped").
			Err(err).
			Msg("no .env file loaded")
	}

	var config ConfigSpec
	err = envconfig.Process(envPrefix, &config)
	if err != nil {
		_ = envconfig.Usage(envPrefix, &config)
		return nil, fmt.Errorf("failed to parse configuration: %w. More info on how to configure brawlstats is located at internal/app/appconfig/spec.go", err)
	}

	if err := config.check(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &Config{
		ConfigSpec: config,
		AppContext: ctx,
	}, nil
}

func (c *ConfigSpec) check() error {
	// the InProgress informer fires at half the invocation timeout and must
	// beat the ack wait, or JetStream redelivers an event still being handled
	if c.WorkerInvocationTimeout/2 >= c.WorkerAckWait {
		return fmt.Errorf("half of WORKER_INVOCATION_TIMEOUT (%s) must be shorter than WORKER_ACK_WAIT (%s)", c.WorkerInvocationTimeout, c.WorkerAckWait)
	}
	if c.WorkerCount < 1 {
		return fmt.Errorf("WORKER_COUNT must be at least 1, got %d", c.WorkerCount)
	}
	if c.WorkerFetchConcurrency < 1 {
		return fmt.Errorf("WORKER_FETCH_CONCURRENCY must be at least 1, got %d", c.WorkerFetchConcurrency)
	}
	return nil
}
