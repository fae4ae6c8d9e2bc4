package script_recompute_most_played

import (
	"net/http"

	"github.com/felixge/fgprof"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"github.com/urfave/cli/v2"
)

func run(ctx *cli.Context, deps CommandDeps, userIDs []string) error {
	if ctx.Bool("profile") {
		http.DefaultServeMux.Handle("/debug/fgprof", fgprof.Handler())
		go func() {
			log.Print(http.ListenAndServe("127.0.0.1:6060", nil))
		}()
	}

	userIDs = lo.Uniq(userIDs)
	log.Info().Strs("users", userIDs).Msg("running script")

	failed := 0
	for _, userID := range userIDs {
		mostPlayed, err := deps.MostPlayedService.Recompute(ctx.Context, userID)
		if err != nil {
			failed++
			log.Error().Err(err).Str("userId", userID).Msg("failed to recompute most played game")
			continue
		}

		evt := log.Info().Str("userId", userID)
		if mostPlayed != nil {
			evt = evt.Str("gameId", mostPlayed.GameID).Int("count", mostPlayed.Count)
		}
		evt.Msg("most played game recomputed")
	}

	if failed > 0 {
		return errors.Errorf("failed to recompute %d of %d users", failed, len(userIDs))
	}

	log.Info().Msg("script finished")

	return nil
}
