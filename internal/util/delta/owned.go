package delta

import (
	"github.com/RiccardoGrin/board-brawl-sub001/internal/constant"
	"github.com/RiccardoGrin/board-brawl-sub001/internal/model/types"
)

// Owned is the adjustment an owned-game record mutation makes to a user's
// collection counters.
type Owned struct {
	GamesOwned    int
	UnplayedGames int
}

func unplayed(status string, playCount int) bool {
	return status == constant.OwnedGameStatusOwned && playCount == 0
}

// OwnedGameCreated is the delta for a newly created record whose effective
// play count (after any backfill) is playCount.
func OwnedGameCreated(status string, playCount int) Owned {
	d := Owned{GamesOwned: 1}
	if unplayed(status, playCount) {
		d.UnplayedGames = 1
	}
	return d
}

// OwnedGameDeleted is the delta for a deleted record. Only an owned record
// that had never been played leaves the unplayed count.
func OwnedGameDeleted(before types.OwnedGameRecord) Owned {
	d := Owned{GamesOwned: -1}
	if unplayed(before.Status, before.PlayCount) {
		d.UnplayedGames = -1
	}
	return d
}

// Unplayed is the unplayed-games adjustment for an owned record whose play
// count moves from prePlayCount by played. prePlayCount must be read before
// the play delta is applied.
func Unplayed(status string, prePlayCount, played int) int {
	if status != constant.OwnedGameStatusOwned {
		return 0
	}
	switch {
	case prePlayCount == 0 && played > 0:
		return -1
	case prePlayCount > 0 && prePlayCount+played <= 0:
		return 1
	default:
		return 0
	}
}
