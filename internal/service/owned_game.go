package service

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/RiccardoGrin/board-brawl-sub001/internal/model/types"
	"github.com/RiccardoGrin/board-brawl-sub001/internal/pkg/observability"
	"github.com/RiccardoGrin/board-brawl-sub001/internal/pkg/statserr"
)

type OwnedGame struct {
	store Store
	now   func() time.Time
}

func NewOwnedGame(store Store) *OwnedGame {
	return &OwnedGame{
		store: store,
		now:   time.Now,
	}
}

// HandleCreated counts a newly owned game. Games outside the user's default
// collection are not counted. Play history the user already has for the game
// is copied onto the new record.
func (s *OwnedGame) HandleCreated(ctx context.Context, record types.OwnedGameRecord) error {
	L := log.Ctx(ctx).With().
		Str("userId", record.UserID).
		Str("gameId", record.GameID).
		Logger()

	inDefault, err := s.store.IsInDefaultCollection(ctx, record.UserID, record.GameID)
	if err != nil {
		return errors.Wrap(err, "check default collection")
	}
	if !inDefault {
		L.Info().
			Str("evt.name", "service.owned_game.not_in_default_collection").
			Msg("owned game is not in the default collection, skipping")
		return nil
	}

	history, err := s.store.GetGameStats(ctx, record.UserID, record.GameID)
	if errors.Is(err, statserr.ErrNotFound) {
		history = nil
	} else if err != nil {
		return errors.Wrap(err, "fetch play history")
	}

	batch := ownedGameCreatedBatch(s.now(), record, history)
	if err := s.store.CommitStatsBatch(ctx, batch); err != nil {
		return errors.Wrap(err, "commit owned game creation")
	}
	observability.StatsBatchRows.WithLabelValues("owned_game_created").Observe(float64(batchRows(batch)))

	L.Info().
		Str("evt.name", "service.owned_game.created").
		Bool("backfilled", len(batch.OwnedBackfills) > 0).
		Msg("owned game counted")
	return nil
}

// HandleDeleted uncounts a deleted owned game.
func (s *OwnedGame) HandleDeleted(ctx context.Context, record types.OwnedGameRecord) error {
	batch := ownedGameDeletedBatch(s.now(), record)
	if err := s.store.CommitStatsBatch(ctx, batch); err != nil {
		return errors.Wrap(err, "commit owned game deletion")
	}
	observability.StatsBatchRows.WithLabelValues("owned_game_deleted").Observe(float64(batchRows(batch)))

	log.Ctx(ctx).Info().
		Str("evt.name", "service.owned_game.deleted").
		Str("userId", record.UserID).
		Str("gameId", record.GameID).
		Msg("owned game uncounted")
	return nil
}
