package service

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/RiccardoGrin/board-brawl-sub001/internal/model/types"
	"github.com/RiccardoGrin/board-brawl-sub001/internal/pkg/change"
	"github.com/RiccardoGrin/board-brawl-sub001/internal/pkg/observability"
	"github.com/RiccardoGrin/board-brawl-sub001/internal/util/delta"
)

type Tournament struct {
	store Store
	now   func() time.Time
}

func NewTournament(store Store) *Tournament {
	return &Tournament{
		store: store,
		now:   time.Now,
	}
}

// HandleWrite counts members joining a tournament and uncounts members leaving it.
func (s *Tournament) HandleWrite(ctx context.Context, c change.Change[types.Tournament]) error {
	deltas := delta.Tournament(c)
	if len(deltas) == 0 {
		return nil
	}

	batch := tournamentBatch(s.now(), deltas)
	if err := s.store.CommitStatsBatch(ctx, batch); err != nil {
		return errors.Wrap(err, "commit tournament stats")
	}
	observability.StatsBatchRows.WithLabelValues("tournament").Observe(float64(batchRows(batch)))

	log.Ctx(ctx).Info().
		Str("evt.name", "service.tournament.applied").
		Str("kind", change.Kind(c)).
		Int("users", len(deltas)).
		Msg("tournament membership applied")
	return nil
}
