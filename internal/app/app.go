package app

import (
	"time"

	"go.uber.org/fx"

	"github.com/RiccardoGrin/board-brawl-sub001/internal/app/appconfig"
	"github.com/RiccardoGrin/board-brawl-sub001/internal/app/appcontext"
	"github.com/RiccardoGrin/board-brawl-sub001/internal/controller"
	"github.com/RiccardoGrin/board-brawl-sub001/internal/infra"
	"github.com/RiccardoGrin/board-brawl-sub001/internal/pkg/logger"
	"github.com/RiccardoGrin/board-brawl-sub001/internal/repo"
	"github.com/RiccardoGrin/board-brawl-sub001/internal/server"
	"github.com/RiccardoGrin/board-brawl-sub001/internal/service"
	"github.com/RiccardoGrin/board-brawl-sub001/internal/workers/changewkr"
)

func Options(ctx appcontext.Ctx, additionalOpts ...fx.Option) []fx.Option {
	conf, err := appconfig.Parse(ctx)
	if err != nil {
		panic(err)
	}

	// logger and configuration are the only two things that are not in the fx graph
	// because some other packages need them to be initialized before fx starts
	logger.Configure(conf)

	baseOpts := []fx.Option{
		// fx meta
		fx.WithLogger(logger.Fx),

		// Misc
		fx.Supply(conf),

		// Infrastructures
		infra.Module(),

		// Repositories
		repo.Module(),
		fx.Provide(func(store *repo.Store) service.Store { return store }),

		// Services
		service.Module(),

		// Global Singleton Inits
		fx.Invoke(infra.SentryInit),
	}

	if ctx.Env == appcontext.EnvWorker {
		baseOpts = append(baseOpts,
			// Devops server & its controllers
			server.Module(),
			controller.Module(),

			// Workers
			fx.Invoke(changewkr.Start),
		)
	}

	baseOpts = append(baseOpts,
		// fx Extra Options
		fx.StartTimeout(time.Minute),
		// StopTimeout covers draining in-flight change events; anything still unacked
		// after it is redelivered by JetStream.
		fx.StopTimeout(time.Minute),
	)

	return append(baseOpts, additionalOpts...)
}

func New(ctx appcontext.Ctx, additionalOpts ...fx.Option) *fx.App {
	return fx.New(Options(ctx, additionalOpts...)...)
}
