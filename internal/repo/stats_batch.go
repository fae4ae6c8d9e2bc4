package repo

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/uptrace/bun"

	"github.com/RiccardoGrin/board-brawl-sub001/internal/model"
	"github.com/RiccardoGrin/board-brawl-sub001/internal/pkg/statserr"
)

// StatsBatch commits a model.StatsBatch in one transaction. Either every row
// of the batch is written or none is.
type StatsBatch struct {
	db *bun.DB

	userStats *UserStats
	gameStats *GameStats
	ownedGame *OwnedGame
}

func NewStatsBatch(db *bun.DB, userStats *UserStats, gameStats *GameStats, ownedGame *OwnedGame) *StatsBatch {
	return &StatsBatch{
		db:        db,
		userStats: userStats,
		gameStats: gameStats,
		ownedGame: ownedGame,
	}
}

func (r *StatsBatch) CommitStatsBatch(ctx context.Context, batch *model.StatsBatch) error {
	if batch.IsEmpty() {
		return nil
	}

	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		return r.apply(ctx, tx, batch)
	})
	if err != nil {
		return statserr.Transient(err, "commit stats batch")
	}

	log.Debug().
		Str("evt.name", "repo.stats_batch.committed").
		Int("userStats", len(batch.UserStats)).
		Int("gameStats", len(batch.GameStats)).
		Int("ownedIncrements", len(batch.OwnedIncrements)).
		Int("ownedBackfills", len(batch.OwnedBackfills)).
		Msg("stats batch committed")

	return nil
}

// apply writes rows table by table, each in ascending key order.
func (r *StatsBatch) apply(ctx context.Context, tx bun.IDB, batch *model.StatsBatch) error {
	for _, userID := range batch.UserIDs() {
		delta := batch.UserStats[userID]
		if _, err := r.userStats.incrementQuery(tx, userID, delta, batch.At).Exec(ctx); err != nil {
			return err
		}
	}

	for _, key := range model.SortedGameKeys(batch.GameStats) {
		if _, err := r.gameStats.incrementQuery(tx, key, batch.GameStats[key]).Exec(ctx); err != nil {
			return err
		}
	}

	for _, key := range model.SortedGameKeys(batch.OwnedIncrements) {
		if _, err := r.ownedGame.incrementQuery(tx, key, batch.OwnedIncrements[key]).Exec(ctx); err != nil {
			return err
		}
	}

	for _, key := range model.SortedGameKeys(batch.OwnedBackfills) {
		if _, err := r.ownedGame.backfillQuery(tx, key, batch.OwnedBackfills[key]).Exec(ctx); err != nil {
			return err
		}
	}

	return nil
}
