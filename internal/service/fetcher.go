package service

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/RiccardoGrin/board-brawl-sub001/internal/app/appconfig"
	"github.com/RiccardoGrin/board-brawl-sub001/internal/model"
	"github.com/RiccardoGrin/board-brawl-sub001/internal/pkg/statserr"
)

// Fetcher resolves the records that decide conditional side effects of a
// delta, such as whether a played game is one the user owns.
type Fetcher struct {
	store       Store
	concurrency int
}

func NewFetcher(store Store, conf *appconfig.Config) *Fetcher {
	return &Fetcher{
		store:       store,
		concurrency: conf.WorkerFetchConcurrency,
	}
}

// OwnedGames reads the owned-game record of every key in parallel. Keys whose
// record does not exist are absent from the result. Any other read error
// aborts the whole fetch.
func (s *Fetcher) OwnedGames(ctx context.Context, keys []model.GameKey) (map[model.GameKey]*model.OwnedGame, error) {
	var (
		mu    sync.Mutex
		owned = make(map[model.GameKey]*model.OwnedGame, len(keys))
	)

	eg, ctx := errgroup.WithContext(ctx)
	if s.concurrency > 0 {
		eg.SetLimit(s.concurrency)
	}

	for _, key := range keys {
		key := key
		eg.Go(func() error {
			record, err := s.store.GetOwnedGame(ctx, key.UserID, key.GameID)
			if errors.Is(err, statserr.ErrNotFound) {
				return nil
			} else if err != nil {
				return errors.Wrapf(err, "fetch owned game %s/%s", key.UserID, key.GameID)
			}

			mu.Lock()
			owned[key] = record
			mu.Unlock()
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return owned, nil
}
