package server

import (
	"context"
	"net"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"

	"github.com/RiccardoGrin/board-brawl-sub001/internal/app/appconfig"
)

// Run listens on the devops address for the lifetime of the app. An empty
// address leaves the devops server off.
func Run(app *fiber.App, conf *appconfig.Config, lc fx.Lifecycle) {
	if conf.DevOpsAddress == "" {
		log.Info().
			Str("evt.name", "server.devops.disabled").
			Msg("devops server is disabled")
		return
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", conf.DevOpsAddress)
			if err != nil {
				return err
			}

			go func() {
				if err := app.Listener(ln); err != nil {
					log.Error().Err(err).Msg("devops server terminated unexpectedly")
				}
			}()

			log.Info().
				Str("evt.name", "server.devops.started").
				Str("address", conf.DevOpsAddress).
				Msg("devops server started")
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return app.ShutdownWithContext(ctx)
		},
	})
}
