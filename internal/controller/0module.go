package controller

import (
	"go.uber.org/fx"

	controllermeta "github.com/RiccardoGrin/board-brawl-sub001/internal/controller/meta"
)

func Module() fx.Option {
	return fx.Module("controller",
		// Controllers (meta)
		controllermeta.Module(),
	)
}
