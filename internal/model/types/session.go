package types

import (
	"time"

	"github.com/RiccardoGrin/board-brawl-sub001/internal/constant"
)

// GameSession is a snapshot of a game-play session as published by the
// session service.
type GameSession struct {
	ID                 string    `json:"id" validate:"required"`
	ParticipantUserIDs []string  `json:"participantUserIds" validate:"nonblankids"`
	WinnerUserIDs      []string  `json:"winnerUserIds" validate:"nonblankids"`
	Status             string    `json:"status" validate:"omitempty,oneof=incomplete complete"`
	GameID             string    `json:"gameId,omitempty"`
	GameName           string    `json:"gameName,omitempty"`
	GameThumbnail      string    `json:"gameThumbnail,omitempty"`
	PlayedAt           time.Time `json:"playedAt"`
}

func (s *GameSession) IsComplete() bool {
	return s.Status == constant.SessionStatusComplete
}
