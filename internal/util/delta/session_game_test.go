package delta

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/RiccardoGrin/board-brawl-sub001/internal/constant"
	"github.com/RiccardoGrin/board-brawl-sub001/internal/model"
	"github.com/RiccardoGrin/board-brawl-sub001/internal/model/types"
	"github.com/RiccardoGrin/board-brawl-sub001/internal/pkg/change"
)

func key(userID, gameID string) model.GameKey {
	return model.GameKey{UserID: userID, GameID: gameID}
}

func TestSessionGamesMatchesSessionOnSameGame(t *testing.T) {
	incomplete := session(constant.SessionStatusIncomplete, []string{"A", "B"}, []string{"A"})
	complete := session(constant.SessionStatusComplete, []string{"A", "B"}, []string{"A"})

	d := SessionGames(updated(incomplete, complete))
	assert.Equal(t, map[model.GameKey]Stat{
		key("A", "catan"): {Played: 1, Won: 1},
		key("B", "catan"): {Played: 1},
	}, d)
}

func TestSessionGamesReassignment(t *testing.T) {
	before := session(constant.SessionStatusComplete, []string{"A", "B"}, []string{"A"})
	after := before
	after.GameID = "azul"

	assert.Empty(t, Session(updated(before, after)))
	assert.Equal(t, map[model.GameKey]Stat{
		key("A", "catan"): {Played: -1, Won: -1},
		key("B", "catan"): {Played: -1},
		key("A", "azul"):  {Played: 1, Won: 1},
		key("B", "azul"):  {Played: 1},
	}, SessionGames(updated(before, after)))
}

func TestSessionGamesWithoutGameID(t *testing.T) {
	s := session(constant.SessionStatusComplete, []string{"A"}, []string{"A"})
	s.GameID = ""
	c := change.Created[types.GameSession]{Record: s}

	assert.Equal(t, map[string]Stat{"A": {Played: 1, Won: 1}}, Session(c))
	assert.Empty(t, SessionGames(c))
	assert.True(t, MissingGame(c))

	t.Run("GameAddedLater", func(t *testing.T) {
		withGame := s
		withGame.GameID = "catan"
		c := updated(s, withGame)

		assert.Empty(t, Session(c))
		assert.Equal(t, map[model.GameKey]Stat{key("A", "catan"): {Played: 1, Won: 1}}, SessionGames(c))
	})
}

func TestMissingGameIgnoresIncompleteSides(t *testing.T) {
	s := session(constant.SessionStatusIncomplete, []string{"A"}, nil)
	s.GameID = ""
	assert.False(t, MissingGame(change.Created[types.GameSession]{Record: s}))

	complete := session(constant.SessionStatusComplete, []string{"A"}, nil)
	assert.False(t, MissingGame(change.Created[types.GameSession]{Record: complete}))
}
