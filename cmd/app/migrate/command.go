package migrate

import (
	"github.com/uptrace/bun"
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"

	cliapp "github.com/RiccardoGrin/board-brawl-sub001/cmd/app/cli"
	"github.com/RiccardoGrin/board-brawl-sub001/internal/migrations"
)

type CommandDeps struct {
	fx.In

	DB *bun.DB
}

func Command() *cli.Command {
	depsFn := cliapp.DepsFn[CommandDeps]()
	return &cli.Command{
		Name:  "migrate",
		Usage: "apply pending database migrations",
		Action: func(ctx *cli.Context) error {
			return migrations.Up(ctx.Context, depsFn().DB)
		},
	}
}
