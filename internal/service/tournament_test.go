package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RiccardoGrin/board-brawl-sub001/internal/model/types"
	"github.com/RiccardoGrin/board-brawl-sub001/internal/pkg/change"
)

func TestTournamentMembership(t *testing.T) {
	ctx := context.Background()
	s := newTestServices()

	solo := types.Tournament{ID: "t1", MemberIDs: []string{"A"}}
	pair := types.Tournament{ID: "t1", MemberIDs: []string{"A", "B"}}

	require.NoError(t, s.tournament.HandleWrite(ctx, change.Created[types.Tournament]{Record: solo}))
	require.NoError(t, s.tournament.HandleWrite(ctx, change.Updated[types.Tournament]{Prev: solo, Next: pair}))

	assert.Equal(t, 1, s.store.User("A").TournamentsPlayed)
	assert.Equal(t, 1, s.store.User("B").TournamentsPlayed)
	assert.Equal(t, testNow, s.store.User("B").LastUpdated)

	require.NoError(t, s.tournament.HandleWrite(ctx, change.Deleted[types.Tournament]{Record: pair}))
	assert.Equal(t, 0, s.store.User("A").TournamentsPlayed)
	assert.Equal(t, 0, s.store.User("B").TournamentsPlayed)
}

func TestTournamentUnchangedMembersSkipsWrite(t *testing.T) {
	ctx := context.Background()
	s := newTestServices()

	before := types.Tournament{ID: "t1", MemberIDs: []string{"A", "B"}}
	after := types.Tournament{ID: "t1", MemberIDs: []string{"B", "A"}}

	require.NoError(t, s.tournament.HandleWrite(ctx, change.Updated[types.Tournament]{Prev: before, Next: after}))
	assert.Equal(t, 0, s.store.Commits)
}
