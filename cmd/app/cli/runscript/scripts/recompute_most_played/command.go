package script_recompute_most_played

import (
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"

	"github.com/RiccardoGrin/board-brawl-sub001/internal/service"
)

type CommandDeps struct {
	fx.In

	MostPlayedService *service.MostPlayed
}

func Command(depsFn func() CommandDeps) *cli.Command {
	return &cli.Command{
		Name:        "recompute-most-played",
		Description: "recompute the most played game of the given users",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:     "user",
				Usage:    "user id to recompute; repeat for more users",
				Required: true,
			},
			&cli.BoolFlag{
				Name:  "profile",
				Usage: "serve fgprof at 127.0.0.1:6060/debug/fgprof while running",
			},
		},
		Action: func(ctx *cli.Context) error {
			return run(ctx, depsFn(), ctx.StringSlice("user"))
		},
	}
}
