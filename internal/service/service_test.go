package service

import (
	"time"

	"github.com/RiccardoGrin/board-brawl-sub001/internal/app/appconfig"
	"github.com/RiccardoGrin/board-brawl-sub001/internal/repo/repotest"
)

var testNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

type testServices struct {
	store      *repotest.Memory
	session    *Session
	tournament *Tournament
	ownedGame  *OwnedGame
	mostPlayed *MostPlayed
}

func newTestServices() *testServices {
	conf := &appconfig.Config{ConfigSpec: appconfig.ConfigSpec{WorkerFetchConcurrency: 4}}
	store := repotest.NewMemory()
	clock := func() time.Time { return testNow }

	mostPlayed := NewMostPlayed(store, conf)
	mostPlayed.now = clock
	session := NewSession(store, NewFetcher(store, conf), mostPlayed)
	session.now = clock
	tournament := NewTournament(store)
	tournament.now = clock
	ownedGame := NewOwnedGame(store)
	ownedGame.now = clock

	return &testServices{
		store:      store,
		session:    session,
		tournament: tournament,
		ownedGame:  ownedGame,
		mostPlayed: mostPlayed,
	}
}
