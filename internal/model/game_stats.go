package model

import (
	"github.com/uptrace/bun"
	"gopkg.in/guregu/null.v3"
)

// GameStats holds one user's counters for one game, along with a copy of the
// game's display fields taken from the latest session that touched it.
type GameStats struct {
	bun.BaseModel `bun:"user_game_stats,alias:ugs"`

	UserID        string    `bun:",pk" json:"userId"`
	GameID        string    `bun:",pk" json:"gameId"`
	GameName      string    `bun:",notnull" json:"gameName"`
	GameThumbnail string    `bun:",notnull" json:"gameThumbnail"`
	PlayCount     int       `bun:",notnull" json:"playCount"`
	WinCount      int       `bun:",notnull" json:"winCount"`
	LastPlayed    null.Time `json:"lastPlayed"`
}

func (s *GameStats) MostPlayed() *MostPlayed {
	return &MostPlayed{
		GameID:    s.GameID,
		Name:      s.GameName,
		Thumbnail: s.GameThumbnail,
		Count:     s.PlayCount,
	}
}
