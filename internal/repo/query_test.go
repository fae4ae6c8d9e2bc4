package repo

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	"github.com/RiccardoGrin/board-brawl-sub001/internal/model"
)

func testDB() *bun.DB {
	return bun.NewDB(sql.OpenDB(pgdriver.NewConnector()), pgdialect.New())
}

func TestUserStatsIncrementQuery(t *testing.T) {
	db := testDB()
	r := NewUserStats(db)

	q := r.incrementQuery(db, "u1", &model.UserStatsDelta{GamesPlayed: 1, GamesWon: -1}, time.Unix(0, 0).UTC()).String()

	assert.Contains(t, q, `INSERT INTO "user_stats" AS "us"`)
	assert.Contains(t, q, "ON CONFLICT (user_id) DO UPDATE")
	assert.Contains(t, q, `games_played = "us".games_played + EXCLUDED.games_played`)
	assert.Contains(t, q, `games_won = "us".games_won + EXCLUDED.games_won`)
	assert.NotContains(t, q, "most_played =")
}

func TestGameStatsIncrementQuery(t *testing.T) {
	db := testDB()
	r := NewGameStats(db)

	q := r.incrementQuery(db, model.GameKey{UserID: "u1", GameID: "g1"}, &model.GameStatsDelta{
		GameName:  "Azul",
		PlayCount: 1,
	}).String()

	assert.Contains(t, q, `INSERT INTO "user_game_stats" AS "ugs"`)
	assert.Contains(t, q, "ON CONFLICT (user_id, game_id) DO UPDATE")
	assert.Contains(t, q, "game_name = EXCLUDED.game_name")
	assert.Contains(t, q, `last_played = GREATEST("ugs".last_played, EXCLUDED.last_played)`)
	assert.Contains(t, q, "'Azul'")
}

func TestOwnedGameQueries(t *testing.T) {
	db := testDB()
	r := NewOwnedGame(db)
	key := model.GameKey{UserID: "u1", GameID: "g1"}

	inc := r.incrementQuery(db, key, &model.OwnedGameDelta{PlayCount: 1, WinCount: -1}).String()
	assert.Contains(t, inc, `UPDATE "owned_games" AS "og"`)
	assert.Contains(t, inc, "play_count = play_count + 1")
	assert.Contains(t, inc, "win_count = win_count + -1")
	assert.Contains(t, inc, "user_id = 'u1'")
	assert.Contains(t, inc, "game_id = 'g1'")

	fill := r.backfillQuery(db, key, &model.OwnedGameDelta{PlayCount: 4, WinCount: 2}).String()
	assert.Contains(t, fill, "play_count = GREATEST(play_count, 4)")
	assert.Contains(t, fill, "win_count = GREATEST(win_count, 2)")
}
