package service

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/exp/maps"

	"github.com/RiccardoGrin/board-brawl-sub001/internal/constant"
	"github.com/RiccardoGrin/board-brawl-sub001/internal/model"
	"github.com/RiccardoGrin/board-brawl-sub001/internal/model/types"
	"github.com/RiccardoGrin/board-brawl-sub001/internal/pkg/change"
	"github.com/RiccardoGrin/board-brawl-sub001/internal/pkg/observability"
	"github.com/RiccardoGrin/board-brawl-sub001/internal/util/delta"
)

type Session struct {
	store      Store
	fetcher    *Fetcher
	mostPlayed *MostPlayed
	now        func() time.Time
}

func NewSession(store Store, fetcher *Fetcher, mostPlayed *MostPlayed) *Session {
	return &Session{
		store:      store,
		fetcher:    fetcher,
		mostPlayed: mostPlayed,
		now:        time.Now,
	}
}

// HandleWrite applies one session mutation to the participants' stats, the
// per-game stats of the session's game and the matching owned-game records.
func (s *Session) HandleWrite(ctx context.Context, c change.Change[types.GameSession]) error {
	L := log.Ctx(ctx).With().Str("kind", change.Kind(c)).Logger()

	userDeltas := delta.Session(c)
	gameDeltas := delta.SessionGames(c)
	if len(userDeltas) == 0 && len(gameDeltas) == 0 {
		L.Debug().
			Str("evt.name", "service.session.noop").
			Msg("session mutation changes no stats")
		return nil
	}

	if len(userDeltas) > 0 && delta.MissingGame(c) {
		observability.ChangeMalformed.WithLabelValues(constant.ChangeSubjectSessions, "missing_game_id").Inc()
		L.Warn().
			Str("evt.name", "service.session.missing_game").
			Msg("completed session has no game id, skipping per-game stats and owned game sync")
	}

	owned, err := s.fetcher.OwnedGames(ctx, model.SortedGameKeys(gameDeltas))
	if err != nil {
		return err
	}

	batch := sessionBatch(s.now(), c, userDeltas, gameDeltas, owned)
	if err := s.store.CommitStatsBatch(ctx, batch); err != nil {
		return errors.Wrap(err, "commit session stats")
	}
	observability.StatsBatchRows.WithLabelValues("session").Observe(float64(batchRows(batch)))

	L.Info().
		Str("evt.name", "service.session.applied").
		Int("users", len(userDeltas)).
		Int("games", len(gameDeltas)).
		Int("ownedGames", len(owned)).
		Msg("session stats applied")

	if len(gameDeltas) > 0 {
		users := lo.Uniq(lo.Map(maps.Keys(gameDeltas), func(k model.GameKey, _ int) string { return k.UserID }))
		s.mostPlayed.RecomputeUsers(ctx, users)
	}

	return nil
}
