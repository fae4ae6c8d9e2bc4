package types

import "github.com/RiccardoGrin/board-brawl-sub001/internal/constant"

// OwnedGameRecord is a user's personal collection entry for a game.
type OwnedGameRecord struct {
	UserID    string `json:"userId" validate:"required"`
	GameID    string `json:"gameId" validate:"required"`
	Status    string `json:"status"`
	PlayCount int    `json:"playCount" validate:"gte=0"`
	WinCount  int    `json:"winCount" validate:"gte=0"`
}

func (r *OwnedGameRecord) IsOwned() bool {
	return r.Status == constant.OwnedGameStatusOwned
}
