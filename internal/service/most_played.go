package service

import (
	"context"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/RiccardoGrin/board-brawl-sub001/internal/app/appconfig"
	"github.com/RiccardoGrin/board-brawl-sub001/internal/model"
	"github.com/RiccardoGrin/board-brawl-sub001/internal/pkg/async"
	"github.com/RiccardoGrin/board-brawl-sub001/internal/pkg/observability"
	"github.com/RiccardoGrin/board-brawl-sub001/internal/pkg/statserr"
)

// MostPlayed re-derives UserStats.MostPlayed from the user's per-game stats.
// It always recomputes from scratch, so it is safe to run again at any time.
type MostPlayed struct {
	store       Store
	concurrency int
	now         func() time.Time
}

func NewMostPlayed(store Store, conf *appconfig.Config) *MostPlayed {
	return &MostPlayed{
		store:       store,
		concurrency: conf.WorkerFetchConcurrency,
		now:         time.Now,
	}
}

// Recompute sets the user's most played game to the top of their per-game
// stats, or clears it when they have none.
func (s *MostPlayed) Recompute(ctx context.Context, userID string) (*model.MostPlayed, error) {
	var mostPlayed *model.MostPlayed

	top, err := s.store.TopGameStatsByPlayCount(ctx, userID)
	if err == nil {
		mostPlayed = top.MostPlayed()
	} else if !errors.Is(err, statserr.ErrNotFound) {
		return nil, errors.Wrap(err, "find most played game")
	}

	if err := s.store.SetMostPlayed(ctx, userID, mostPlayed, s.now()); err != nil {
		return nil, errors.Wrap(err, "set most played game")
	}
	return mostPlayed, nil
}

// RecomputeUsers recomputes every user in parallel. Failures are reported and
// then dropped: the primary write has already landed and a later session
// write for the user recomputes the field again.
func (s *MostPlayed) RecomputeUsers(ctx context.Context, userIDs []string) {
	_ = async.ForEach(userIDs, s.concurrency, func(userID string) error {
		if _, err := s.Recompute(ctx, userID); err != nil {
			observability.MostPlayedRecomputeFailures.Inc()
			log.Ctx(ctx).Warn().
				Str("evt.name", "service.most_played.recompute_failed").
				Err(err).
				Str("userId", userID).
				Msg("failed to recompute most played game, skipping")
			captureException(ctx, err)
			return err
		}
		return nil
	})
}

func captureException(ctx context.Context, err error) {
	if hub := sentry.GetHubFromContext(ctx); hub != nil {
		hub.CaptureException(err)
		return
	}
	sentry.CaptureException(err)
}
