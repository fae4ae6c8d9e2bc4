package infra

import (
	"context"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"

	"github.com/RiccardoGrin/board-brawl-sub001/internal/app/appconfig"
	"github.com/RiccardoGrin/board-brawl-sub001/internal/constant"
)

func NATS(lc fx.Lifecycle, conf *appconfig.Config) (*nats.Conn, nats.JetStreamContext, error) {
	errorHandler := func(conn *nats.Conn, sub *nats.Subscription, err error) {
		evt := log.Error().
			Str("evt.name", "nats.error").
			Err(err).
			Str("conn.url", conn.ConnectedUrlRedacted())
		if sub != nil {
			evt = evt.Str("sub.subject", sub.Subject)
		}
		evt.Msg("nats error")
	}

	var nc *nats.Conn
	err := retry.Do(
		func() (err error) {
			nc, err = nats.Connect(conf.NatsURL, nats.PingInterval(time.Second*20), nats.ErrorHandler(errorHandler))
			return err
		},
		retry.Attempts(conf.ConnectRetryAttempts),
		retry.Delay(time.Second),
		retry.OnRetry(func(n uint, err error) {
			log.Warn().
				Str("evt.name", "infra.nats.retry").
				Err(err).
				Uint("attempt", n+1).
				Msg("infra: nats: failed to connect to NATS, retrying")
		}),
	)
	if err != nil {
		log.Error().Err(err).Msg("infra: nats: failed to connect to NATS")
		return nil, nil, err
	}

	js, err := nc.JetStream(nats.PublishAsyncMaxPending(128))
	if err != nil {
		log.Error().Err(err).Msg("infra: nats: failed to initialize NATS JetStream")
		return nil, nil, err
	}

	_, err = js.AddStream(&nats.StreamConfig{
		Name: conf.NatsStream,
		Subjects: []string{
			constant.ChangeSubjectWildcard,
		},
		Retention: nats.WorkQueuePolicy,
		// change events must never be discarded silently: publishers get an error instead
		Discard:    nats.DiscardNew,
		Storage:    nats.FileStorage,
		Replicas:   1,
		Duplicates: conf.NatsDuplicateWindow,
	})
	if err != nil {
		log.Warn().Err(err).Msg("infra: nats: failed to create jetstream stream: is it already created?")
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return nc.Drain()
		},
	})

	return nc, js, nil
}
