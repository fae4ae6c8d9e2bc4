package delta

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/RiccardoGrin/board-brawl-sub001/internal/constant"
	"github.com/RiccardoGrin/board-brawl-sub001/internal/model/types"
)

func TestOwnedGameCreated(t *testing.T) {
	assert.Equal(t, Owned{GamesOwned: 1, UnplayedGames: 1}, OwnedGameCreated(constant.OwnedGameStatusOwned, 0))
	assert.Equal(t, Owned{GamesOwned: 1}, OwnedGameCreated(constant.OwnedGameStatusOwned, 2))
	assert.Equal(t, Owned{GamesOwned: 1}, OwnedGameCreated("wishlist", 0))
}

func TestOwnedGameDeleted(t *testing.T) {
	tests := []struct {
		name   string
		record types.OwnedGameRecord
		want   Owned
	}{
		{"OwnedPlayed", types.OwnedGameRecord{Status: constant.OwnedGameStatusOwned, PlayCount: 3}, Owned{GamesOwned: -1}},
		{"OwnedUnplayed", types.OwnedGameRecord{Status: constant.OwnedGameStatusOwned, PlayCount: 0}, Owned{GamesOwned: -1, UnplayedGames: -1}},
		{"NotOwnedUnplayed", types.OwnedGameRecord{Status: "wishlist", PlayCount: 0}, Owned{GamesOwned: -1}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OwnedGameDeleted(tt.record))
		})
	}
}

func TestUnplayed(t *testing.T) {
	owned := constant.OwnedGameStatusOwned
	tests := []struct {
		name     string
		status   string
		pre      int
		played   int
		expected int
	}{
		{"FirstPlay", owned, 0, 1, -1},
		{"RepeatPlay", owned, 1, 1, 0},
		{"LastPlayRemoved", owned, 1, -1, 1},
		{"OnePlayOfManyRemoved", owned, 3, -1, 0},
		{"WinOnlyChange", owned, 0, 0, 0},
		{"NotOwned", "wishlist", 0, 1, 0},
		{"AlreadyZeroRemoved", owned, 0, -1, 0},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Unplayed(tt.status, tt.pre, tt.played))
		})
	}
}
