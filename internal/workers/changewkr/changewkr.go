package changewkr

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/getsentry/sentry-go"
	"github.com/go-playground/validator/v10"
	"github.com/nats-io/nats.go"
	"github.com/pkg/errors"
	"github.com/rs/xid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"

	"github.com/RiccardoGrin/board-brawl-sub001/internal/app/appconfig"
	"github.com/RiccardoGrin/board-brawl-sub001/internal/constant"
	"github.com/RiccardoGrin/board-brawl-sub001/internal/pkg/jetstream"
	"github.com/RiccardoGrin/board-brawl-sub001/internal/pkg/observability"
	"github.com/RiccardoGrin/board-brawl-sub001/internal/pkg/statserr"
	"github.com/RiccardoGrin/board-brawl-sub001/internal/service"
	"github.com/RiccardoGrin/board-brawl-sub001/internal/util"
)

const (
	outcomeAck  = "ack"
	outcomeNak  = "nak"
	outcomeTerm = "term"

	// consumerBufferSize is the channel buffer of one consumer.
	consumerBufferSize = 16
)

type WorkerDeps struct {
	fx.In

	JetStream  nats.JetStreamContext
	Session    *service.Session
	Tournament *service.Tournament
	OwnedGame  *service.OwnedGame
}

type Worker struct {
	WorkerDeps

	conf     *appconfig.Config
	validate *validator.Validate
	tracer   trace.Tracer

	wg sync.WaitGroup
}

func New(conf *appconfig.Config, deps WorkerDeps) *Worker {
	return &Worker{
		WorkerDeps: deps,
		conf:       conf,
		validate:   util.NewValidator(),
		tracer:     otel.Tracer("changewkr"),
	}
}

func Start(lc fx.Lifecycle, conf *appconfig.Config, deps WorkerDeps) {
	w := New(conf, deps)
	ctx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			return w.Run(ctx)
		},
		OnStop: func(context.Context) error {
			cancel()
			w.wg.Wait()
			return nil
		},
	})
}

// Run subscribes conf.WorkerCount consumers to the change stream. It returns
// once every consumer is subscribed; consumers stop when ctx is done.
func (w *Worker) Run(ctx context.Context) error {
	for i := 0; i < w.conf.WorkerCount; i++ {
		msgChan := make(chan *nats.Msg, consumerBufferSize)
		sub, err := w.JetStream.ChanQueueSubscribe(constant.ChangeSubjectWildcard, w.conf.NatsQueue, msgChan,
			nats.BindStream(w.conf.NatsStream),
			nats.ManualAck(),
			nats.AckExplicit(),
			nats.AckWait(w.conf.WorkerAckWait),
			nats.MaxDeliver(w.conf.WorkerMaxDeliver),
			nats.MaxAckPending(w.conf.WorkerCount*consumerBufferSize),
		)
		if err != nil {
			log.Error().
				Str("evt.name", "worker.change.subscribe_failed").
				Err(err).
				Msg("failed to subscribe to " + constant.ChangeSubjectWildcard)
			return errors.Wrap(err, "subscribe to change stream")
		}

		w.wg.Add(1)
		go func(id int) {
			defer w.wg.Done()
			w.consume(ctx, id, sub, msgChan)
		}(i)
	}

	log.Info().
		Str("evt.name", "worker.change.started").
		Int("count", w.conf.WorkerCount).
		Msg("change workers started")
	return nil
}

func (w *Worker) consume(ctx context.Context, id int, sub *nats.Subscription, msgChan chan *nats.Msg) {
	defer func() {
		if err := sub.Drain(); err != nil {
			log.Warn().Err(err).Int("consumer", id).Msg("failed to drain change subscription")
		}
	}()

	for {
		select {
		case msg := <-msgChan:
			w.handle(ctx, msg)
		case <-ctx.Done():
			return
		}
	}
}

// handle runs one invocation and settles msg: ack on success, nak when a
// redelivery may succeed and term when it never will.
func (w *Worker) handle(ctx context.Context, msg *nats.Msg) {
	start := time.Now()
	delivery := jetstream.DeliveryOf(msg)

	L := log.With().
		Str("invocationId", xid.New().String()).
		Str("subject", msg.Subject).
		Str("msgId", delivery.ID).
		Uint64("delivered", delivery.NumDelivered).
		Logger()

	hub := sentry.CurrentHub().Clone()
	hub.Scope().SetTag("subject", msg.Subject)

	ctx, span := w.tracer.Start(ctx, msg.Subject, trace.WithSpanKind(trace.SpanKindConsumer))
	defer span.End()

	taskCtx, cancelTask := context.WithTimeout(sentry.SetHubOnContext(L.WithContext(ctx), hub), w.conf.WorkerInvocationTimeout)
	defer cancelTask()

	inprogressInformer := time.AfterFunc(w.conf.WorkerInvocationTimeout/2, func() {
		if err := msg.InProgress(); err != nil {
			L.Error().Err(err).Msg("failed to set msg InProgress")
		}
	})
	defer inprogressInformer.Stop()

	c := codecFor(msg.Header)
	err := w.process(taskCtx, msg.Subject, c, msg.Data, &L)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}

	outcome := outcomeOf(err)
	span.SetAttributes(attribute.String("change.outcome", outcome))
	observability.ChangeOutcome.WithLabelValues(msg.Subject, outcome).Inc()
	observability.ChangeConsumeDuration.WithLabelValues(msg.Subject).Observe(time.Since(start).Seconds())

	switch outcome {
	case outcomeAck:
		err = msg.Ack()
	case outcomeNak:
		L.Error().
			Str("evt.name", "worker.change.failed").
			Err(err).
			Str("envelope", spew.Sdump(msg.Header, string(msg.Data))).
			Msg("failed to handle change event, requesting redelivery")
		hub.CaptureException(err)
		err = msg.Nak()
	case outcomeTerm:
		observability.ChangeMalformed.WithLabelValues(msg.Subject, "dropped").Inc()
		L.Error().
			Str("evt.name", "worker.change.dropped").
			Err(err).
			Str("eventId", c.EventID(msg.Data)).
			Str("envelope", spew.Sdump(msg.Header, string(msg.Data))).
			Msg("malformed change event, dropping without redelivery")
		hub.CaptureException(err)
		err = msg.Term()
	}
	if err != nil {
		L.Error().Err(err).Str("outcome", outcome).Msg("failed to settle change event")
	}
}

// process decodes the envelope in data and runs the handler for subject.
// The invocation logger is enriched with the event id once it is known.
func (w *Worker) process(ctx context.Context, subject string, c codec, data []byte, L *zerolog.Logger) error {
	event, err := c.Envelope(data)
	if err != nil {
		return err
	}

	*L = L.With().Str("eventId", event.EventID).Str("codec", c.Name()).Logger()
	ctx = L.WithContext(ctx)

	if event.CommittedAt != 0 {
		latency := time.Since(time.UnixMicro(event.CommittedAt))
		observability.ChangeConsumeMessagingLatency.WithLabelValues(subject).Observe(latency.Seconds())
	}

	trace.SpanFromContext(ctx).SetAttributes(
		attribute.String("change.event_id", event.EventID),
		attribute.String("change.committed_at", strconv.FormatInt(event.CommittedAt, 10)),
	)

	return w.dispatch(ctx, subject, c, event)
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return outcomeAck
	case errors.Is(err, statserr.ErrMalformedRecord):
		return outcomeTerm
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return outcomeNak
	case statserr.IsRetryable(err):
		return outcomeNak
	default:
		return outcomeTerm
	}
}
