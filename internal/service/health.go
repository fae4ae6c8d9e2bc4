package service

import (
	"context"

	"github.com/nats-io/nats.go"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	"github.com/RiccardoGrin/board-brawl-sub001/internal/app/appconfig"
)

var (
	ErrDatabaseNotReachable = errors.New("database not reachable")
	ErrNATSNotReachable     = errors.New("nats not reachable")
	ErrStreamNotReachable   = errors.New("change stream not reachable")
)

type Health struct {
	DB        *bun.DB
	NATS      *nats.Conn
	JetStream nats.JetStreamContext

	stream string
}

func NewHealth(db *bun.DB, nc *nats.Conn, js nats.JetStreamContext, conf *appconfig.Config) *Health {
	return &Health{
		DB:        db,
		NATS:      nc,
		JetStream: js,
		stream:    conf.NatsStream,
	}
}

// Ping fails when a worker could neither read change events nor commit their aggregates.
func (s *Health) Ping(ctx context.Context) error {
	if err := s.DB.PingContext(ctx); err != nil {
		return errors.Wrap(ErrDatabaseNotReachable, err.Error())
	}

	// nats does automatic ping for 20 seconds interval (configured at infra/nats.go)
	status := s.NATS.Status()
	if status != nats.CONNECTED && status != nats.DRAINING_PUBS && status != nats.DRAINING_SUBS {
		return errors.Wrap(ErrNATSNotReachable, status.String())
	}

	if _, err := s.JetStream.StreamInfo(s.stream, nats.Context(ctx)); err != nil {
		return errors.Wrap(ErrStreamNotReachable, err.Error())
	}

	return nil
}
