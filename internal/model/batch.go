package model

import (
	"sort"
	"time"

	"golang.org/x/exp/maps"
)

type GameKey struct {
	UserID string
	GameID string
}

func (k GameKey) Less(o GameKey) bool {
	if k.UserID != o.UserID {
		return k.UserID < o.UserID
	}
	return k.GameID < o.GameID
}

// UserStatsDelta is added onto a UserStats row, creating it if needed.
type UserStatsDelta struct {
	GamesPlayed       int
	GamesWon          int
	TournamentsPlayed int
	GamesOwned        int
	UnplayedGames     int
}

func (d UserStatsDelta) IsZero() bool {
	return d == UserStatsDelta{}
}

// GameStatsDelta is added onto a GameStats row, creating it if needed. The
// display fields overwrite whatever the row held; LastPlayed only moves the
// stored value forward and is ignored when zero.
type GameStatsDelta struct {
	GameName      string
	GameThumbnail string
	PlayCount     int
	WinCount      int
	LastPlayed    time.Time
}

// OwnedGameDelta is applied to an existing OwnedGame row only. Increment
// deltas are added; backfill deltas raise the stored counts to at least the
// given values and never lower them.
type OwnedGameDelta struct {
	PlayCount int
	WinCount  int
}

// StatsBatch collects every document mutation of one handler invocation so
// that they can be committed as a single unit.
type StatsBatch struct {
	At time.Time

	UserStats       map[string]*UserStatsDelta
	GameStats       map[GameKey]*GameStatsDelta
	OwnedIncrements map[GameKey]*OwnedGameDelta
	OwnedBackfills  map[GameKey]*OwnedGameDelta
}

func NewStatsBatch(at time.Time) *StatsBatch {
	return &StatsBatch{
		At:              at,
		UserStats:       make(map[string]*UserStatsDelta),
		GameStats:       make(map[GameKey]*GameStatsDelta),
		OwnedIncrements: make(map[GameKey]*OwnedGameDelta),
		OwnedBackfills:  make(map[GameKey]*OwnedGameDelta),
	}
}

func (b *StatsBatch) User(userID string) *UserStatsDelta {
	d, ok := b.UserStats[userID]
	if !ok {
		d = &UserStatsDelta{}
		b.UserStats[userID] = d
	}
	return d
}

func (b *StatsBatch) Game(key GameKey) *GameStatsDelta {
	d, ok := b.GameStats[key]
	if !ok {
		d = &GameStatsDelta{}
		b.GameStats[key] = d
	}
	return d
}

func (b *StatsBatch) OwnedIncrement(key GameKey) *OwnedGameDelta {
	d, ok := b.OwnedIncrements[key]
	if !ok {
		d = &OwnedGameDelta{}
		b.OwnedIncrements[key] = d
	}
	return d
}

func (b *StatsBatch) OwnedBackfill(key GameKey, d OwnedGameDelta) {
	b.OwnedBackfills[key] = &d
}

// IsEmpty reports whether committing the batch would change nothing.
func (b *StatsBatch) IsEmpty() bool {
	return len(b.UserStats) == 0 && len(b.GameStats) == 0 &&
		len(b.OwnedIncrements) == 0 && len(b.OwnedBackfills) == 0
}

// UserIDs returns the keys of UserStats in ascending order.
func (b *StatsBatch) UserIDs() []string {
	ids := maps.Keys(b.UserStats)
	sort.Strings(ids)
	return ids
}

// SortedGameKeys returns the keys of m in ascending order. Writers apply rows
// in this order so concurrent batches lock rows consistently.
func SortedGameKeys[V any](m map[GameKey]V) []GameKey {
	keys := maps.Keys(m)
	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })
	return keys
}
