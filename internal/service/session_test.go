package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RiccardoGrin/board-brawl-sub001/internal/constant"
	"github.com/RiccardoGrin/board-brawl-sub001/internal/model"
	"github.com/RiccardoGrin/board-brawl-sub001/internal/model/types"
	"github.com/RiccardoGrin/board-brawl-sub001/internal/pkg/change"
	"github.com/RiccardoGrin/board-brawl-sub001/internal/pkg/statserr"
)

var playedAt = time.Date(2024, 4, 30, 20, 0, 0, 0, time.UTC)

func catanSession(id, status string, participants, winners []string) types.GameSession {
	return types.GameSession{
		ID:                 id,
		ParticipantUserIDs: participants,
		WinnerUserIDs:      winners,
		Status:             status,
		GameID:             "catan",
		GameName:           "Catan",
		GameThumbnail:      "https://img.example/catan.png",
		PlayedAt:           playedAt,
	}
}

// seedUnplayedCatan gives A an owned, never played copy of catan.
func seedUnplayedCatan(s *testServices) {
	s.store.PutOwnedGame(model.OwnedGame{UserID: "A", GameID: "catan", Status: constant.OwnedGameStatusOwned})
	s.store.UserStats["A"] = &model.UserStats{UserID: "A", GamesOwned: 1, UnplayedGames: 1}
}

func TestSessionCompletedUpdatesStats(t *testing.T) {
	ctx := context.Background()
	s := newTestServices()
	seedUnplayedCatan(s)

	incomplete := catanSession("s1", constant.SessionStatusIncomplete, []string{"A", "B"}, []string{"A"})
	complete := catanSession("s1", constant.SessionStatusComplete, []string{"A", "B"}, []string{"A"})

	require.NoError(t, s.session.HandleWrite(ctx, change.Created[types.GameSession]{Record: incomplete}))
	assert.Equal(t, 0, s.store.Commits)

	require.NoError(t, s.session.HandleWrite(ctx, change.Updated[types.GameSession]{Prev: incomplete, Next: complete}))
	assert.Equal(t, 1, s.store.Commits)

	a := s.store.User("A")
	assert.Equal(t, 1, a.GamesPlayed)
	assert.Equal(t, 1, a.GamesWon)
	assert.Equal(t, 0, a.UnplayedGames)
	assert.Equal(t, 1, a.GamesOwned)
	assert.Equal(t, testNow, a.LastUpdated)
	assert.Equal(t, &model.MostPlayed{GameID: "catan", Name: "Catan", Thumbnail: "https://img.example/catan.png", Count: 1}, a.MostPlayed)

	b := s.store.User("B")
	assert.Equal(t, 1, b.GamesPlayed)
	assert.Equal(t, 0, b.GamesWon)
	assert.Equal(t, 0, b.UnplayedGames)

	game, ok := s.store.Game("A", "catan")
	require.True(t, ok)
	assert.Equal(t, 1, game.PlayCount)
	assert.Equal(t, 1, game.WinCount)
	assert.Equal(t, "Catan", game.GameName)
	assert.True(t, game.LastPlayed.Valid)
	assert.Equal(t, playedAt, game.LastPlayed.Time)

	owned, ok := s.store.Owned("A", "catan")
	require.True(t, ok)
	assert.Equal(t, 1, owned.PlayCount)
	assert.Equal(t, 1, owned.WinCount)

	_, ok = s.store.Owned("B", "catan")
	assert.False(t, ok, "owned game records are never created by session writes")
}

func TestSessionSecondPlayKeepsUnplayed(t *testing.T) {
	ctx := context.Background()
	s := newTestServices()
	seedUnplayedCatan(s)

	first := catanSession("s1", constant.SessionStatusComplete, []string{"A"}, nil)
	second := catanSession("s2", constant.SessionStatusComplete, []string{"A"}, nil)

	require.NoError(t, s.session.HandleWrite(ctx, change.Created[types.GameSession]{Record: first}))
	assert.Equal(t, 0, s.store.User("A").UnplayedGames)

	require.NoError(t, s.session.HandleWrite(ctx, change.Created[types.GameSession]{Record: second}))
	assert.Equal(t, 0, s.store.User("A").UnplayedGames)
	assert.Equal(t, 2, s.store.User("A").GamesPlayed)

	owned, _ := s.store.Owned("A", "catan")
	assert.Equal(t, 2, owned.PlayCount)
}

func TestSessionReopenedSoleWinner(t *testing.T) {
	ctx := context.Background()
	s := newTestServices()
	seedUnplayedCatan(s)

	complete := catanSession("s1", constant.SessionStatusComplete, []string{"A"}, []string{"A"})
	incomplete := catanSession("s1", constant.SessionStatusIncomplete, []string{"A"}, []string{"A"})

	require.NoError(t, s.session.HandleWrite(ctx, change.Created[types.GameSession]{Record: complete}))
	require.NoError(t, s.session.HandleWrite(ctx, change.Updated[types.GameSession]{Prev: complete, Next: incomplete}))

	a := s.store.User("A")
	assert.Equal(t, 0, a.GamesPlayed)
	assert.Equal(t, 0, a.GamesWon)
	assert.Equal(t, 1, a.UnplayedGames, "the game is unplayed again")

	game, _ := s.store.Game("A", "catan")
	assert.Equal(t, 0, game.PlayCount)
	assert.Equal(t, 0, game.WinCount)

	owned, _ := s.store.Owned("A", "catan")
	assert.Equal(t, 0, owned.PlayCount)
}

func TestSessionAtomicOnCommitFailure(t *testing.T) {
	ctx := context.Background()
	s := newTestServices()
	seedUnplayedCatan(s)
	s.store.FailCommitAfter = 2

	complete := catanSession("s1", constant.SessionStatusComplete, []string{"A", "B"}, []string{"A"})
	err := s.session.HandleWrite(ctx, change.Created[types.GameSession]{Record: complete})
	require.Error(t, err)
	assert.ErrorIs(t, err, statserr.ErrTransientStorage)
	assert.True(t, statserr.IsRetryable(err))

	a := s.store.User("A")
	assert.Equal(t, 0, a.GamesPlayed)
	assert.Equal(t, 1, a.UnplayedGames)
	assert.Nil(t, a.MostPlayed)
	assert.Equal(t, 0, s.store.User("B").GamesPlayed)
	_, ok := s.store.Game("A", "catan")
	assert.False(t, ok)
	owned, _ := s.store.Owned("A", "catan")
	assert.Equal(t, 0, owned.PlayCount)
}

func TestSessionFetchFailureAborts(t *testing.T) {
	ctx := context.Background()
	s := newTestServices()
	s.store.ReadErr = statserr.ErrTransientStorage.Msg("connection reset")

	complete := catanSession("s1", constant.SessionStatusComplete, []string{"A"}, nil)
	err := s.session.HandleWrite(ctx, change.Created[types.GameSession]{Record: complete})
	assert.ErrorIs(t, err, statserr.ErrTransientStorage)
	assert.Equal(t, 0, s.store.Commits)
}

func TestSessionWithoutGameID(t *testing.T) {
	ctx := context.Background()
	s := newTestServices()
	seedUnplayedCatan(s)

	complete := catanSession("s1", constant.SessionStatusComplete, []string{"A"}, []string{"A"})
	complete.GameID = ""

	require.NoError(t, s.session.HandleWrite(ctx, change.Created[types.GameSession]{Record: complete}))

	a := s.store.User("A")
	assert.Equal(t, 1, a.GamesPlayed)
	assert.Equal(t, 1, a.GamesWon)
	assert.Equal(t, 1, a.UnplayedGames)
	assert.Nil(t, a.MostPlayed)
	assert.Empty(t, s.store.GameStats)
	owned, _ := s.store.Owned("A", "catan")
	assert.Equal(t, 0, owned.PlayCount)
}

func TestSessionMostPlayedFailureIsSwallowed(t *testing.T) {
	ctx := context.Background()
	s := newTestServices()
	s.store.MostPlayedErr = statserr.ErrTransientStorage

	complete := catanSession("s1", constant.SessionStatusComplete, []string{"A"}, nil)
	require.NoError(t, s.session.HandleWrite(ctx, change.Created[types.GameSession]{Record: complete}))

	assert.Equal(t, 1, s.store.User("A").GamesPlayed)
	assert.Nil(t, s.store.User("A").MostPlayed)
}

func TestSessionMovedToAnotherGame(t *testing.T) {
	ctx := context.Background()
	s := newTestServices()
	s.store.PutOwnedGame(model.OwnedGame{UserID: "A", GameID: "azul", Status: constant.OwnedGameStatusOwned})
	s.store.UserStats["A"] = &model.UserStats{UserID: "A", GamesOwned: 1, UnplayedGames: 1}

	before := catanSession("s1", constant.SessionStatusComplete, []string{"A"}, []string{"A"})
	after := before
	after.GameID = "azul"
	after.GameName = "Azul"

	require.NoError(t, s.session.HandleWrite(ctx, change.Created[types.GameSession]{Record: before}))
	require.NoError(t, s.session.HandleWrite(ctx, change.Updated[types.GameSession]{Prev: before, Next: after}))

	a := s.store.User("A")
	assert.Equal(t, 1, a.GamesPlayed)
	assert.Equal(t, 1, a.GamesWon)
	assert.Equal(t, 0, a.UnplayedGames)

	catan, _ := s.store.Game("A", "catan")
	assert.Equal(t, 0, catan.PlayCount)
	azul, _ := s.store.Game("A", "azul")
	assert.Equal(t, 1, azul.PlayCount)
	assert.Equal(t, "Azul", azul.GameName)
	assert.Equal(t, "azul", a.MostPlayed.GameID)

	owned, _ := s.store.Owned("A", "azul")
	assert.Equal(t, 1, owned.PlayCount)
}
