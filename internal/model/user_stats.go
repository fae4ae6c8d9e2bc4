package model

import (
	"time"

	"github.com/uptrace/bun"
)

// UserStats is the per-user aggregate document. This engine is its only writer.
type UserStats struct {
	bun.BaseModel `bun:"user_stats,alias:us"`

	UserID            string      `bun:",pk" json:"userId"`
	GamesPlayed       int         `bun:",notnull" json:"gamesPlayed"`
	GamesWon          int         `bun:",notnull" json:"gamesWon"`
	TournamentsPlayed int         `bun:",notnull" json:"tournamentsPlayed"`
	GamesOwned        int         `bun:",notnull" json:"gamesOwned"`
	UnplayedGames     int         `bun:",notnull" json:"unplayedGames"`
	MostPlayed        *MostPlayed `bun:"type:jsonb" json:"mostPlayed"`
	LastUpdated       time.Time   `bun:",notnull" json:"lastUpdated"`
}

type MostPlayed struct {
	GameID    string `json:"gameId"`
	Name      string `json:"name"`
	Thumbnail string `json:"thumbnail"`
	Count     int    `json:"count"`
}
