package delta

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/RiccardoGrin/board-brawl-sub001/internal/constant"
	"github.com/RiccardoGrin/board-brawl-sub001/internal/model/types"
	"github.com/RiccardoGrin/board-brawl-sub001/internal/pkg/change"
)

func session(status string, participants, winners []string) types.GameSession {
	return types.GameSession{
		ID:                 "s1",
		ParticipantUserIDs: participants,
		WinnerUserIDs:      winners,
		Status:             status,
		GameID:             "catan",
	}
}

func updated(prev, next types.GameSession) change.Change[types.GameSession] {
	return change.Updated[types.GameSession]{Prev: prev, Next: next}
}

func TestSessionCompletion(t *testing.T) {
	incomplete := session(constant.SessionStatusIncomplete, []string{"A", "B"}, []string{"A"})
	complete := session(constant.SessionStatusComplete, []string{"A", "B"}, []string{"A"})

	t.Run("CreatedIncomplete", func(t *testing.T) {
		assert.Empty(t, Session(change.Created[types.GameSession]{Record: incomplete}))
	})

	t.Run("CompletedByUpdate", func(t *testing.T) {
		d := Session(updated(incomplete, complete))
		assert.Equal(t, map[string]Stat{
			"A": {Played: 1, Won: 1},
			"B": {Played: 1, Won: 0},
		}, d)
	})

	t.Run("ReopenedSoleWinner", func(t *testing.T) {
		d := Session(updated(complete, incomplete))
		assert.Equal(t, Stat{Played: -1, Won: -1}, d["A"])
		assert.Equal(t, Stat{Played: -1, Won: 0}, d["B"])
	})

	t.Run("DeletedComplete", func(t *testing.T) {
		d := Session(change.Deleted[types.GameSession]{Record: complete})
		assert.Equal(t, Stat{Played: -1, Won: -1}, d["A"])
		assert.Equal(t, Stat{Played: -1}, d["B"])
	})

	t.Run("DeletedIncomplete", func(t *testing.T) {
		assert.Empty(t, Session(change.Deleted[types.GameSession]{Record: incomplete}))
	})

	t.Run("UnchangedComplete", func(t *testing.T) {
		assert.Empty(t, Session(updated(complete, complete)))
	})
}

func TestSessionWinnerChanges(t *testing.T) {
	before := session(constant.SessionStatusComplete, []string{"A", "B"}, []string{"A"})
	after := session(constant.SessionStatusComplete, []string{"A", "B"}, []string{"B"})

	d := Session(updated(before, after))
	assert.Equal(t, map[string]Stat{
		"A": {Won: -1},
		"B": {Won: 1},
	}, d)
}

func TestSessionParticipantChanges(t *testing.T) {
	before := session(constant.SessionStatusComplete, []string{"A", "B"}, []string{"B"})
	after := session(constant.SessionStatusComplete, []string{"A", "C"}, []string{"C"})

	d := Session(updated(before, after))
	assert.Equal(t, map[string]Stat{
		"B": {Played: -1, Won: -1},
		"C": {Played: 1, Won: 1},
	}, d)
}

func TestSessionWinnerWithoutParticipation(t *testing.T) {
	// a winner that is not a participant has not played, so it cannot have won
	s := session(constant.SessionStatusComplete, []string{"A"}, []string{"Z"})
	d := Session(change.Created[types.GameSession]{Record: s})
	assert.Equal(t, map[string]Stat{"A": {Played: 1}}, d)
}

func TestSessionDuplicateIDs(t *testing.T) {
	s := session(constant.SessionStatusComplete, []string{"A", "A"}, []string{"A", "A"})
	d := Session(change.Created[types.GameSession]{Record: s})
	assert.Equal(t, map[string]Stat{"A": {Played: 1, Won: 1}}, d)
}

func TestSessionIdempotent(t *testing.T) {
	before := session(constant.SessionStatusIncomplete, []string{"A", "B", "C"}, nil)
	after := session(constant.SessionStatusComplete, []string{"A", "B"}, []string{"B"})
	c := updated(before, after)

	first := Session(c)
	second := Session(c)
	assert.Equal(t, first, second)
}

// state is one cell of {not-participant, participant} x {incomplete, complete}
// for user "U".
type state struct {
	participant bool
	complete    bool
}

func (s state) String() string {
	return fmt.Sprintf("participant=%t,complete=%t", s.participant, s.complete)
}

func (s state) session() types.GameSession {
	status := constant.SessionStatusIncomplete
	if s.complete {
		status = constant.SessionStatusComplete
	}
	participants := []string{"other"}
	winners := []string{}
	if s.participant {
		participants = append(participants, "U")
		winners = append(winners, "U")
	}
	return session(status, participants, winners)
}

func allStates() []state {
	return []state{
		{false, false},
		{false, true},
		{true, false},
		{true, true},
	}
}

func TestSessionTransitionTable(t *testing.T) {
	singleStepNonZero := 0
	for _, from := range allStates() {
		for _, to := range allStates() {
			from, to := from, to
			t.Run(from.String()+"->"+to.String(), func(t *testing.T) {
				d := Session(updated(from.session(), to.session()))["U"]

				wasCounted := from.participant && from.complete
				isCounted := to.participant && to.complete
				switch {
				case isCounted && !wasCounted:
					assert.Equal(t, Stat{Played: 1, Won: 1}, d)
				case wasCounted && !isCounted:
					assert.Equal(t, Stat{Played: -1, Won: -1}, d)
				default:
					assert.True(t, d.IsZero(), "expected no delta, got %+v", d)
				}
			})

			singleStep := (from.participant != to.participant) != (from.complete != to.complete)
			if singleStep && !Session(updated(from.session(), to.session()))["U"].IsZero() {
				singleStepNonZero++
			}
		}
	}
	assert.Equal(t, 4, singleStepNonZero, "only the four single-step transitions across participant+complete move counters")
}

func TestSessionConservation(t *testing.T) {
	// walk a cycle of states returning to the start; deltas must cancel out
	paths := [][]state{
		{{false, false}, {true, false}, {true, true}, {false, true}, {false, false}},
		{{true, true}, {true, false}, {true, true}, {false, true}, {true, true}},
		{{false, true}, {true, true}, {true, false}, {false, false}, {true, true}, {false, true}},
	}

	for i, path := range paths {
		var sum Stat
		for j := 1; j < len(path); j++ {
			sum = sum.Add(Session(updated(path[j-1].session(), path[j].session()))["U"])
		}
		assert.True(t, sum.IsZero(), "path %d: expected deltas to cancel out, got %+v", i, sum)
	}

	t.Run("CreateThenDelete", func(t *testing.T) {
		s := session(constant.SessionStatusComplete, []string{"A", "B"}, []string{"A"})
		created := Session(change.Created[types.GameSession]{Record: s})
		deleted := Session(change.Deleted[types.GameSession]{Record: s})
		for _, userID := range []string{"A", "B"} {
			assert.True(t, created[userID].Add(deleted[userID]).IsZero())
		}
	})
}
