package service

import (
	"time"

	"github.com/samber/lo"

	"github.com/RiccardoGrin/board-brawl-sub001/internal/model"
	"github.com/RiccardoGrin/board-brawl-sub001/internal/model/types"
	"github.com/RiccardoGrin/board-brawl-sub001/internal/pkg/change"
	"github.com/RiccardoGrin/board-brawl-sub001/internal/util/delta"
)

// sessionBatch turns the deltas of one session mutation into a single write.
// owned holds the pre-delta owned-game records of the keys in gameDeltas; keys
// without a record get no owned-game sync.
func sessionBatch(at time.Time, c change.Change[types.GameSession], userDeltas map[string]delta.Stat, gameDeltas map[model.GameKey]delta.Stat, owned map[model.GameKey]*model.OwnedGame) *model.StatsBatch {
	batch := model.NewStatsBatch(at)

	for userID, d := range userDeltas {
		u := batch.User(userID)
		u.GamesPlayed += d.Played
		u.GamesWon += d.Won
	}

	before, _ := c.Before()
	after, hasAfter := c.After()

	for key, d := range gameDeltas {
		snapshot := before
		if hasAfter && after.GameID == key.GameID {
			snapshot = after
		}

		g := batch.Game(key)
		g.GameName = snapshot.GameName
		g.GameThumbnail = snapshot.GameThumbnail
		g.PlayCount += d.Played
		g.WinCount += d.Won
		if d.Played > 0 {
			g.LastPlayed = snapshot.PlayedAt
		}

		record, ok := owned[key]
		if !ok {
			continue
		}
		inc := batch.OwnedIncrement(key)
		inc.PlayCount += d.Played
		inc.WinCount += d.Won
		if u := delta.Unplayed(record.Status, record.PlayCount, d.Played); u != 0 {
			batch.User(key.UserID).UnplayedGames += u
		}
	}

	return batch
}

func tournamentBatch(at time.Time, deltas map[string]int) *model.StatsBatch {
	batch := model.NewStatsBatch(at)
	for userID, d := range deltas {
		batch.User(userID).TournamentsPlayed += d
	}
	return batch
}

// ownedGameCreatedBatch counts a new owned game. When the user already has
// play history for the game, the record is raised to it and the unplayed
// decision is taken on the raised play count.
func ownedGameCreatedBatch(at time.Time, record types.OwnedGameRecord, history *model.GameStats) *model.StatsBatch {
	batch := model.NewStatsBatch(at)
	key := model.GameKey{UserID: record.UserID, GameID: record.GameID}

	playCount := record.PlayCount
	if history != nil && (history.PlayCount > record.PlayCount || history.WinCount > record.WinCount) {
		backfill := model.OwnedGameDelta{
			PlayCount: lo.Max([]int{record.PlayCount, history.PlayCount}),
			WinCount:  lo.Max([]int{record.WinCount, history.WinCount}),
		}
		batch.OwnedBackfill(key, backfill)
		playCount = backfill.PlayCount
	}

	d := delta.OwnedGameCreated(record.Status, playCount)
	u := batch.User(record.UserID)
	u.GamesOwned += d.GamesOwned
	u.UnplayedGames += d.UnplayedGames
	return batch
}

func ownedGameDeletedBatch(at time.Time, record types.OwnedGameRecord) *model.StatsBatch {
	batch := model.NewStatsBatch(at)
	d := delta.OwnedGameDeleted(record)
	u := batch.User(record.UserID)
	u.GamesOwned += d.GamesOwned
	u.UnplayedGames += d.UnplayedGames
	return batch
}

// batchRows is the number of rows a batch writes.
func batchRows(batch *model.StatsBatch) int {
	return len(batch.UserStats) + len(batch.GameStats) + len(batch.OwnedIncrements) + len(batch.OwnedBackfills)
}
