package server

import (
	"go.uber.org/fx"

	"github.com/RiccardoGrin/board-brawl-sub001/internal/server/httpserver"
	"github.com/RiccardoGrin/board-brawl-sub001/internal/server/svr"
)

func Module() fx.Option {
	return fx.Module("server",
		fx.Provide(httpserver.Create),
		fx.Provide(svr.CreateEndpointGroups),
		fx.Invoke(Run),
	)
}
