// Package delta computes signed counter adjustments from the two sides of a
// source-record mutation. Everything here is pure: the same pair of snapshots
// always produces the same deltas.
package delta

import (
	"github.com/samber/lo"

	"github.com/RiccardoGrin/board-brawl-sub001/internal/model"
	"github.com/RiccardoGrin/board-brawl-sub001/internal/model/types"
	"github.com/RiccardoGrin/board-brawl-sub001/internal/pkg/change"
)

// Stat is the per-user adjustment caused by one session mutation.
type Stat struct {
	Played int
	Won    int
}

func (s Stat) IsZero() bool {
	return s.Played == 0 && s.Won == 0
}

// Add returns the component-wise sum.
func (s Stat) Add(o Stat) Stat {
	return Stat{Played: s.Played + o.Played, Won: s.Won + o.Won}
}

// sessionSide is what one snapshot says about who has played and won.
// A missing snapshot is the empty side.
type sessionSide struct {
	gameID       string
	complete     bool
	participants map[string]struct{}
	winners      map[string]struct{}
}

func sideOf(s types.GameSession) sessionSide {
	return sessionSide{
		gameID:       s.GameID,
		complete:     s.IsComplete(),
		participants: lo.SliceToMap(s.ParticipantUserIDs, func(id string) (string, struct{}) { return id, struct{}{} }),
		winners:      lo.SliceToMap(s.WinnerUserIDs, func(id string) (string, struct{}) { return id, struct{}{} }),
	}
}

func (s sessionSide) played(userID string) bool {
	if !s.complete {
		return false
	}
	_, ok := s.participants[userID]
	return ok
}

func (s sessionSide) won(userID string) bool {
	if !s.played(userID) {
		return false
	}
	_, ok := s.winners[userID]
	return ok
}

func sessionSides(c change.Change[types.GameSession]) (before, after sessionSide) {
	switch c := c.(type) {
	case change.Created[types.GameSession]:
		return sessionSide{}, sideOf(c.Record)
	case change.Updated[types.GameSession]:
		return sideOf(c.Prev), sideOf(c.Next)
	case change.Deleted[types.GameSession]:
		return sideOf(c.Record), sessionSide{}
	}
	return sessionSide{}, sessionSide{}
}

// edge is +1 when a condition becomes true, -1 when it stops being true and 0
// while it is held or absent on both sides.
func edge(was, is bool) int {
	switch {
	case is && !was:
		return 1
	case was && !is:
		return -1
	default:
		return 0
	}
}

// Session returns the non-zero per-user deltas of a session mutation. Only
// users who are participants on at least one side are considered.
func Session(c change.Change[types.GameSession]) map[string]Stat {
	before, after := sessionSides(c)

	deltas := make(map[string]Stat)
	for _, userID := range participants(before, after) {
		d := Stat{
			Played: edge(before.played(userID), after.played(userID)),
			Won:    edge(before.won(userID), after.won(userID)),
		}
		if !d.IsZero() {
			deltas[userID] = d
		}
	}
	return deltas
}

// SessionGames returns the non-zero deltas of a session mutation per user and
// game. A side without a game id credits no game. When the mutation moves the
// session to another game, the old game is debited and the new one credited,
// even for users whose overall counters do not change.
func SessionGames(c change.Change[types.GameSession]) map[model.GameKey]Stat {
	before, after := sessionSides(c)

	deltas := make(map[model.GameKey]Stat)
	for _, gameID := range lo.Without(lo.Uniq([]string{before.gameID, after.gameID}), "") {
		onBefore, onAfter := before.gameID == gameID, after.gameID == gameID
		for _, userID := range participants(before, after) {
			d := Stat{
				Played: edge(onBefore && before.played(userID), onAfter && after.played(userID)),
				Won:    edge(onBefore && before.won(userID), onAfter && after.won(userID)),
			}
			if !d.IsZero() {
				deltas[model.GameKey{UserID: userID, GameID: gameID}] = d
			}
		}
	}
	return deltas
}

// MissingGame reports whether a side of the mutation that counts towards
// played totals carries no game id, so its plays cannot be credited to a game.
func MissingGame(c change.Change[types.GameSession]) bool {
	before, after := sessionSides(c)
	return (before.counts() && before.gameID == "") || (after.counts() && after.gameID == "")
}

func (s sessionSide) counts() bool {
	return s.complete && len(s.participants) > 0
}

// participants is the union of both sides' participants.
func participants(before, after sessionSide) []string {
	ids := make([]string, 0, len(before.participants)+len(after.participants))
	for userID := range before.participants {
		ids = append(ids, userID)
	}
	for userID := range after.participants {
		if _, seen := before.participants[userID]; !seen {
			ids = append(ids, userID)
		}
	}
	return ids
}
