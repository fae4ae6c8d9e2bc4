package infra

import (
	"github.com/getsentry/sentry-go"
	"github.com/rs/zerolog/log"

	"github.com/RiccardoGrin/board-brawl-sub001/internal/app/appconfig"
	"github.com/RiccardoGrin/board-brawl-sub001/internal/pkg/bininfo"
	"github.com/RiccardoGrin/board-brawl-sub001/internal/pkg/observability"
)

// SentryInit configures the global sentry hub. Handlers clone it per change event.
func SentryInit(conf *appconfig.Config) error {
	if conf.SentryDSN == "" {
		log.Warn().
			Str("evt.name", "infra.sentry.disabled").
			Msg("sentry is disabled due to missing DSN")
		return nil
	}

	log.Info().
		Str("evt.name", "infra.sentry.init").
		Msg("initializing sentry")

	return sentry.Init(sentry.ClientOptions{
		Dsn:              conf.SentryDSN,
		ServerName:       observability.ServiceName,
		Release:          observability.ServiceName + "@" + bininfo.Version,
		Environment:      conf.AppContext.Env.String(),
		Debug:            conf.DevMode,
		AttachStacktrace: true,
		EnableTracing:    conf.TracingEnabled,
		TracesSampleRate: conf.TracingSampleRate,
	})
}
