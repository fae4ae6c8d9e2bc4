package repo

import (
	"context"

	"github.com/uptrace/bun"
	"gopkg.in/guregu/null.v3"

	"github.com/RiccardoGrin/board-brawl-sub001/internal/model"
	"github.com/RiccardoGrin/board-brawl-sub001/internal/pkg/statserr"
	"github.com/RiccardoGrin/board-brawl-sub001/internal/repo/selector"
)

type GameStats struct {
	db  *bun.DB
	sel selector.S[model.GameStats]
}

func NewGameStats(db *bun.DB) *GameStats {
	return &GameStats{
		db:  db,
		sel: selector.New[model.GameStats](db),
	}
}

func (r *GameStats) GetGameStats(ctx context.Context, userID, gameID string) (*model.GameStats, error) {
	stats, err := r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("user_id = ?", userID).Where("game_id = ?", gameID)
	})
	return stats, statserr.Transient(err, "get game stats")
}

// TopGameStatsByPlayCount returns the user's most played game. Ties go to the
// most recently played game, then to the lowest game id.
func (r *GameStats) TopGameStatsByPlayCount(ctx context.Context, userID string) (*model.GameStats, error) {
	stats, err := r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("user_id = ?", userID).
			OrderExpr("play_count DESC").
			OrderExpr("last_played DESC NULLS LAST").
			OrderExpr("game_id ASC")
	})
	return stats, statserr.Transient(err, "get top game stats")
}

func (r *GameStats) incrementQuery(db bun.IDB, key model.GameKey, delta *model.GameStatsDelta) *bun.InsertQuery {
	row := &model.GameStats{
		UserID:        key.UserID,
		GameID:        key.GameID,
		GameName:      delta.GameName,
		GameThumbnail: delta.GameThumbnail,
		PlayCount:     delta.PlayCount,
		WinCount:      delta.WinCount,
		LastPlayed:    null.NewTime(delta.LastPlayed, !delta.LastPlayed.IsZero()),
	}
	return db.NewInsert().
		Model(row).
		On("CONFLICT (user_id, game_id) DO UPDATE").
		Set("play_count = ?TableAlias.play_count + EXCLUDED.play_count").
		Set("win_count = ?TableAlias.win_count + EXCLUDED.win_count").
		Set("game_name = EXCLUDED.game_name").
		Set("game_thumbnail = EXCLUDED.game_thumbnail").
		Set("last_played = GREATEST(?TableAlias.last_played, EXCLUDED.last_played)")
}
