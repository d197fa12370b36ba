package usecase

import (
	"errors"
	"testing"

	"github.com/riskibarqy/ballpark/internal/domain/gamerecord"
	"github.com/riskibarqy/ballpark/internal/domain/player"
	"github.com/riskibarqy/ballpark/internal/domain/playerstats"
	"github.com/riskibarqy/ballpark/internal/domain/team"
	"github.com/riskibarqy/ballpark/internal/infrastructure/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStatsServiceForTest() (*PlayerStatsService, *memory.Store) {
	store := memory.NewStore(nil)
	calc := playerstats.NewCalculator(store.Players, store.Records)
	return NewPlayerStatsService(store.Teams, store.Players, calc), store
}

func TestPlayerStatsService_GetPlayerStats(t *testing.T) {
	svc, store := newStatsServiceForTest()
	ctx := t.Context()

	playerID, err := store.Players.Create(ctx, player.Fields{Name: "Kim", Number: 50, Position: player.PositionOutfielder, TeamID: "t"})
	require.NoError(t, err)
	for _, hits := range []int{2, 4} {
		_, err := store.Records.Create(ctx, gamerecord.Fields{PlayerID: playerID, GameID: "g", Hits: hits, Runs: 1})
		require.NoError(t, err)
	}

	stats, err := svc.GetPlayerStats(ctx, playerID)
	require.NoError(t, err)
	assert.Equal(t, playerstats.Stats{TotalGames: 2, TotalHits: 6, TotalRuns: 2, BattingAverage: 3}, stats)
}

func TestPlayerStatsService_GetPlayerStats_UnknownPlayer(t *testing.T) {
	svc, _ := newStatsServiceForTest()

	_, err := svc.GetPlayerStats(t.Context(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPlayerStatsService_GetTeamStats(t *testing.T) {
	svc, store := newStatsServiceForTest()
	ctx := t.Context()

	teamID, err := store.Teams.Create(ctx, team.Fields{Name: "Doosan Bears", City: "Seoul", Founded: 1982})
	require.NoError(t, err)
	kimID, err := store.Players.Create(ctx, player.Fields{Name: "Kim", Number: 50, Position: player.PositionOutfielder, TeamID: teamID})
	require.NoError(t, err)
	yangID, err := store.Players.Create(ctx, player.Fields{Name: "Yang", Number: 25, Position: player.PositionCatcher, TeamID: teamID})
	require.NoError(t, err)
	_, err = store.Records.Create(ctx, gamerecord.Fields{PlayerID: kimID, GameID: "g1", Hits: 1})
	require.NoError(t, err)

	lines, err := svc.GetTeamStats(ctx, teamID)
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, kimID, lines[0].Player.ID)
	assert.Equal(t, 1, lines[0].Stats.TotalGames)
	assert.Equal(t, yangID, lines[1].Player.ID)
	assert.Equal(t, playerstats.Stats{}, lines[1].Stats)

	_, err = svc.GetTeamStats(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
