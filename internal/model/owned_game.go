package model

import (
	"github.com/uptrace/bun"

	"github.com/RiccardoGrin/board-brawl-sub001/internal/constant"
)

// OwnedGame is a user's collection entry for a game. The collection service
// owns the table; this engine only mirrors play and win counts onto it.
type OwnedGame struct {
	bun.BaseModel `bun:"owned_games,alias:og"`

	UserID    string `bun:",pk" json:"userId"`
	GameID    string `bun:",pk" json:"gameId"`
	Status    string `json:"status"`
	PlayCount int    `bun:",notnull" json:"playCount"`
	WinCount  int    `bun:",notnull" json:"winCount"`
}

func (o *OwnedGame) IsOwned() bool {
	return o.Status == constant.OwnedGameStatusOwned
}
