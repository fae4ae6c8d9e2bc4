package repo

import (
	"context"
	"time"

	"github.com/uptrace/bun"

	"github.com/RiccardoGrin/board-brawl-sub001/internal/model"
	"github.com/RiccardoGrin/board-brawl-sub001/internal/pkg/statserr"
	"github.com/RiccardoGrin/board-brawl-sub001/internal/repo/selector"
)

type UserStats struct {
	db  *bun.DB
	sel selector.S[model.UserStats]
}

func NewUserStats(db *bun.DB) *UserStats {
	return &UserStats{
		db:  db,
		sel: selector.New[model.UserStats](db),
	}
}

func (r *UserStats) GetUserStats(ctx context.Context, userID string) (*model.UserStats, error) {
	stats, err := r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("user_id = ?", userID)
	})
	return stats, statserr.Transient(err, "get user stats")
}

// SetMostPlayed overwrites the most played summary of a user, creating the
// stats row if the user has none yet. A nil mostPlayed clears it.
func (r *UserStats) SetMostPlayed(ctx context.Context, userID string, mostPlayed *model.MostPlayed, at time.Time) error {
	row := &model.UserStats{
		UserID:      userID,
		MostPlayed:  mostPlayed,
		LastUpdated: at,
	}
	_, err := r.db.NewInsert().
		Model(row).
		On("CONFLICT (user_id) DO UPDATE").
		Set("most_played = EXCLUDED.most_played").
		Exec(ctx)
	return statserr.Transient(err, "set most played")
}

// incrementQuery adds delta onto the user's counters, creating the row on
// first touch. Counters are only ever added to in SQL so concurrent
// invocations commute.
func (r *UserStats) incrementQuery(db bun.IDB, userID string, delta *model.UserStatsDelta, at time.Time) *bun.InsertQuery {
	row := &model.UserStats{
		UserID:            userID,
		GamesPlayed:       delta.GamesPlayed,
		GamesWon:          delta.GamesWon,
		TournamentsPlayed: delta.TournamentsPlayed,
		GamesOwned:        delta.GamesOwned,
		UnplayedGames:     delta.UnplayedGames,
		LastUpdated:       at,
	}
	return db.NewInsert().
		Model(row).
		On("CONFLICT (user_id) DO UPDATE").
		Set("games_played = ?TableAlias.games_played + EXCLUDED.games_played").
		Set("games_won = ?TableAlias.games_won + EXCLUDED.games_won").
		Set("tournaments_played = ?TableAlias.tournaments_played + EXCLUDED.tournaments_played").
		Set("games_owned = ?TableAlias.games_owned + EXCLUDED.games_owned").
		Set("unplayed_games = ?TableAlias.unplayed_games + EXCLUDED.unplayed_games").
		Set("last_updated = EXCLUDED.last_updated")
}
