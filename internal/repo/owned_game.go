package repo

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/RiccardoGrin/board-brawl-sub001/internal/model"
	"github.com/RiccardoGrin/board-brawl-sub001/internal/pkg/statserr"
	"github.com/RiccardoGrin/board-brawl-sub001/internal/repo/selector"
)

type OwnedGame struct {
	db  *bun.DB
	sel selector.S[model.OwnedGame]
}

func NewOwnedGame(db *bun.DB) *OwnedGame {
	return &OwnedGame{
		db:  db,
		sel: selector.New[model.OwnedGame](db),
	}
}

func (r *OwnedGame) GetOwnedGame(ctx context.Context, userID, gameID string) (*model.OwnedGame, error) {
	owned, err := r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("user_id = ?", userID).Where("game_id = ?", gameID)
	})
	return owned, statserr.Transient(err, "get owned game")
}

// incrementQuery mirrors session counters onto the record. It updates nothing
// when the record does not exist: owned games are never created here.
func (r *OwnedGame) incrementQuery(db bun.IDB, key model.GameKey, delta *model.OwnedGameDelta) *bun.UpdateQuery {
	return db.NewUpdate().
		Model((*model.OwnedGame)(nil)).
		Set("play_count = play_count + ?", delta.PlayCount).
		Set("win_count = win_count + ?", delta.WinCount).
		Where("user_id = ?", key.UserID).
		Where("game_id = ?", key.GameID)
}

// backfillQuery raises the record's counters to at least delta, never lowering them.
func (r *OwnedGame) backfillQuery(db bun.IDB, key model.GameKey, delta *model.OwnedGameDelta) *bun.UpdateQuery {
	return db.NewUpdate().
		Model((*model.OwnedGame)(nil)).
		Set("play_count = GREATEST(play_count, ?)", delta.PlayCount).
		Set("win_count = GREATEST(win_count, ?)", delta.WinCount).
		Where("user_id = ?", key.UserID).
		Where("game_id = ?", key.GameID)
}
