package runscript

import (
	"github.com/urfave/cli/v2"

	cliapp "github.com/RiccardoGrin/board-brawl-sub001/cmd/app/cli"
	script_recompute_most_played "github.com/RiccardoGrin/board-brawl-sub001/cmd/app/cli/runscript/scripts/recompute_most_played"
)

func Command() *cli.Command {
	return &cli.Command{
		Name:        "run-script",
		Description: "run maintenance go scripts",
		Subcommands: []*cli.Command{
			script_recompute_most_played.Command(cliapp.DepsFn[script_recompute_most_played.CommandDeps]()),
		},
	}
}
