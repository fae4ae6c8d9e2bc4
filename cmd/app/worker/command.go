package worker

import (
	"github.com/urfave/cli/v2"

	"github.com/RiccardoGrin/board-brawl-sub001/internal/app"
	"github.com/RiccardoGrin/board-brawl-sub001/internal/app/appcontext"
)

func Command() *cli.Command {
	return &cli.Command{
		Name:  "start",
		Usage: "start change workers and the devops server",
		Action: func(c *cli.Context) error {
			app.New(appcontext.Declare(appcontext.EnvWorker)).Run()
			return nil
		},
	}
}
