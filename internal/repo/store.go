package repo

// Store bundles the repositories the stats handlers read from and write to.
type Store struct {
	*UserStats
	*GameStats
	*OwnedGame
	*Collection
	*StatsBatch
}

func NewStore(userStats *UserStats, gameStats *GameStats, ownedGame *OwnedGame, collection *Collection, statsBatch *StatsBatch) *Store {
	return &Store{
		UserStats:  userStats,
		GameStats:  gameStats,
		OwnedGame:  ownedGame,
		Collection: collection,
		StatsBatch: statsBatch,
	}
}
