// Package repotest provides an in-memory store with the same commit semantics
// as the bun repositories, for handler tests.
package repotest

import (
	"context"
	"sync"
	"time"

	"github.com/samber/lo"
	"gopkg.in/guregu/null.v3"

	"github.com/RiccardoGrin/board-brawl-sub001/internal/model"
	"github.com/RiccardoGrin/board-brawl-sub001/internal/pkg/statserr"
)

type Memory struct {
	mu sync.Mutex

	UserStats   map[string]*model.UserStats
	GameStats   map[model.GameKey]*model.GameStats
	OwnedGames  map[model.GameKey]*model.OwnedGame
	Collections map[string][]string

	// FailCommitAfter makes CommitStatsBatch fail once that many rows of a
	// batch have been staged. The staged rows are discarded. Negative disables.
	FailCommitAfter int
	// ReadErr is returned from every read when set.
	ReadErr error
	// MostPlayedErr is returned from SetMostPlayed when set.
	MostPlayedErr error

	Commits int
	Reads   int
}

func NewMemory() *Memory {
	return &Memory{
		UserStats:       make(map[string]*model.UserStats),
		GameStats:       make(map[model.GameKey]*model.GameStats),
		OwnedGames:      make(map[model.GameKey]*model.OwnedGame),
		Collections:     make(map[string][]string),
		FailCommitAfter: -1,
	}
}

// PutOwnedGame seeds an owned game record.
func (m *Memory) PutOwnedGame(o model.OwnedGame) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.OwnedGames[model.GameKey{UserID: o.UserID, GameID: o.GameID}] = &o
}

// PutGameStats seeds a per-game stats record.
func (m *Memory) PutGameStats(s model.GameStats) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GameStats[model.GameKey{UserID: s.UserID, GameID: s.GameID}] = &s
}

// SetDefaultCollection replaces the game ids of the user's default collection.
func (m *Memory) SetDefaultCollection(userID string, gameIDs ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Collections[userID] = gameIDs
}

// User returns a copy of the user's stats, or the zero value with only
// UserID set when the user has none.
func (m *Memory) User(userID string) model.UserStats {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.UserStats[userID]; ok {
		return *s
	}
	return model.UserStats{UserID: userID}
}

func (m *Memory) Game(userID, gameID string) (model.GameStats, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.GameStats[model.GameKey{UserID: userID, GameID: gameID}]
	if !ok {
		return model.GameStats{}, false
	}
	return *s, true
}

func (m *Memory) Owned(userID, gameID string) (model.OwnedGame, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.OwnedGames[model.GameKey{UserID: userID, GameID: gameID}]
	if !ok {
		return model.OwnedGame{}, false
	}
	return *o, true
}

func (m *Memory) GetUserStats(ctx context.Context, userID string) (*model.UserStats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.read(); err != nil {
		return nil, err
	}
	s, ok := m.UserStats[userID]
	if !ok {
		return nil, statserr.ErrNotFound
	}
	c := *s
	return &c, nil
}

func (m *Memory) GetOwnedGame(ctx context.Context, userID, gameID string) (*model.OwnedGame, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.read(); err != nil {
		return nil, err
	}
	o, ok := m.OwnedGames[model.GameKey{UserID: userID, GameID: gameID}]
	if !ok {
		return nil, statserr.ErrNotFound
	}
	c := *o
	return &c, nil
}

func (m *Memory) GetGameStats(ctx context.Context, userID, gameID string) (*model.GameStats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.read(); err != nil {
		return nil, err
	}
	s, ok := m.GameStats[model.GameKey{UserID: userID, GameID: gameID}]
	if !ok {
		return nil, statserr.ErrNotFound
	}
	c := *s
	return &c, nil
}

func (m *Memory) TopGameStatsByPlayCount(ctx context.Context, userID string) (*model.GameStats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.read(); err != nil {
		return nil, err
	}

	var top *model.GameStats
	for _, key := range model.SortedGameKeys(m.GameStats) {
		s := m.GameStats[key]
		if key.UserID != userID {
			continue
		}
		if top == nil || ranksAbove(s, top) {
			top = s
		}
	}
	if top == nil {
		return nil, statserr.ErrNotFound
	}
	c := *top
	return &c, nil
}

// ranksAbove orders by play count, then by last played with unset last,
// then by ascending game id.
func ranksAbove(a, b *model.GameStats) bool {
	if a.PlayCount != b.PlayCount {
		return a.PlayCount > b.PlayCount
	}
	if a.LastPlayed.Valid != b.LastPlayed.Valid {
		return a.LastPlayed.Valid
	}
	if a.LastPlayed.Valid && !a.LastPlayed.Time.Equal(b.LastPlayed.Time) {
		return a.LastPlayed.Time.After(b.LastPlayed.Time)
	}
	return a.GameID < b.GameID
}

func (m *Memory) IsInDefaultCollection(ctx context.Context, userID, gameID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.read(); err != nil {
		return false, err
	}
	return lo.Contains(m.Collections[userID], gameID), nil
}

func (m *Memory) SetMostPlayed(ctx context.Context, userID string, mostPlayed *model.MostPlayed, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.MostPlayedErr != nil {
		return m.MostPlayedErr
	}
	s, ok := m.UserStats[userID]
	if !ok {
		s = &model.UserStats{UserID: userID, LastUpdated: at}
		m.UserStats[userID] = s
	}
	if mostPlayed != nil {
		c := *mostPlayed
		mostPlayed = &c
	}
	s.MostPlayed = mostPlayed
	return nil
}

func (m *Memory) CommitStatsBatch(ctx context.Context, batch *model.StatsBatch) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if batch.IsEmpty() {
		return nil
	}

	staged := m.clone()
	rows := 0
	stage := func() error {
		if m.FailCommitAfter >= 0 && rows >= m.FailCommitAfter {
			return statserr.ErrTransientStorage.Msg("injected commit failure after %d rows", rows)
		}
		rows++
		return nil
	}

	for _, userID := range batch.UserIDs() {
		if err := stage(); err != nil {
			return err
		}
		d := batch.UserStats[userID]
		s, ok := staged.users[userID]
		if !ok {
			s = &model.UserStats{UserID: userID}
			staged.users[userID] = s
		}
		s.GamesPlayed += d.GamesPlayed
		s.GamesWon += d.GamesWon
		s.TournamentsPlayed += d.TournamentsPlayed
		s.GamesOwned += d.GamesOwned
		s.UnplayedGames += d.UnplayedGames
		s.LastUpdated = batch.At
	}

	for _, key := range model.SortedGameKeys(batch.GameStats) {
		if err := stage(); err != nil {
			return err
		}
		d := batch.GameStats[key]
		s, ok := staged.games[key]
		if !ok {
			s = &model.GameStats{UserID: key.UserID, GameID: key.GameID}
			staged.games[key] = s
		}
		s.GameName = d.GameName
		s.GameThumbnail = d.GameThumbnail
		s.PlayCount += d.PlayCount
		s.WinCount += d.WinCount
		if !d.LastPlayed.IsZero() && (!s.LastPlayed.Valid || d.LastPlayed.After(s.LastPlayed.Time)) {
			s.LastPlayed = null.TimeFrom(d.LastPlayed)
		}
	}

	for _, key := range model.SortedGameKeys(batch.OwnedIncrements) {
		if err := stage(); err != nil {
			return err
		}
		d := batch.OwnedIncrements[key]
		if o, ok := staged.owned[key]; ok {
			o.PlayCount += d.PlayCount
			o.WinCount += d.WinCount
		}
	}

	for _, key := range model.SortedGameKeys(batch.OwnedBackfills) {
		if err := stage(); err != nil {
			return err
		}
		d := batch.OwnedBackfills[key]
		if o, ok := staged.owned[key]; ok {
			o.PlayCount = lo.Max([]int{o.PlayCount, d.PlayCount})
			o.WinCount = lo.Max([]int{o.WinCount, d.WinCount})
		}
	}

	m.UserStats = staged.users
	m.GameStats = staged.games
	m.OwnedGames = staged.owned
	m.Commits++
	return nil
}

func (m *Memory) read() error {
	m.Reads++
	return m.ReadErr
}

type snapshot struct {
	users map[string]*model.UserStats
	games map[model.GameKey]*model.GameStats
	owned map[model.GameKey]*model.OwnedGame
}

func (m *Memory) clone() snapshot {
	return snapshot{
		users: lo.MapValues(m.UserStats, func(s *model.UserStats, _ string) *model.UserStats { c := *s; return &c }),
		games: lo.MapValues(m.GameStats, func(s *model.GameStats, _ model.GameKey) *model.GameStats { c := *s; return &c }),
		owned: lo.MapValues(m.OwnedGames, func(o *model.OwnedGame, _ model.GameKey) *model.OwnedGame { c := *o; return &c }),
	}
}
