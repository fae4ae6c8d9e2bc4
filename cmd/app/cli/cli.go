package cli

import (
	"context"

	"github.com/rs/zerolog/log"
	"go.uber.org/fx"

	"github.com/RiccardoGrin/board-brawl-sub001/internal/app"
	"github.com/RiccardoGrin/board-brawl-sub001/internal/app/appcontext"
)

func Start(module fx.Option) {
	if err := app.New(appcontext.Declare(appcontext.EnvCLI), module).Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("failed to start cli app")
	}
}

// DepsFn returns a function that starts the cli app and hands back T
// populated from it.
func DepsFn[T any]() func() T {
	return func() T {
		var deps T
		Start(fx.Populate(&deps))
		return deps
	}
}
