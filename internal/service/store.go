package service

import (
	"context"
	"time"

	"github.com/RiccardoGrin/board-brawl-sub001/internal/model"
)

// Store is what the stats handlers need from persistence. Point reads return
// statserr.ErrNotFound when the record does not exist.
type Store interface {
	GetOwnedGame(ctx context.Context, userID, gameID string) (*model.OwnedGame, error)
	GetGameStats(ctx context.Context, userID, gameID string) (*model.GameStats, error)
	TopGameStatsByPlayCount(ctx context.Context, userID string) (*model.GameStats, error)
	IsInDefaultCollection(ctx context.Context, userID, gameID string) (bool, error)

	// CommitStatsBatch applies every mutation of batch atomically.
	CommitStatsBatch(ctx context.Context, batch *model.StatsBatch) error
	SetMostPlayed(ctx context.Context, userID string, mostPlayed *model.MostPlayed, at time.Time) error
}
