package app

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/RiccardoGrin/board-brawl-sub001/cmd/app/cli/runscript"
	"github.com/RiccardoGrin/board-brawl-sub001/cmd/app/migrate"
	"github.com/RiccardoGrin/board-brawl-sub001/cmd/app/worker"
	"github.com/RiccardoGrin/board-brawl-sub001/internal/pkg/bininfo"
)

func Run() {
	app := &cli.App{
		Name:        "brawlstats",
		Description: "Keeps per-user and per-game board game statistics in step with session, tournament and collection changes. Built with Go, bun and go.uber.org/fx. Consumes change events from NATS JetStream.",
		Version:     bininfo.Version,
		Commands: []*cli.Command{
			worker.Command(),
			migrate.Command(),
			runscript.Command(),
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("failed to run app")
	}
}
