package memory

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/riskibarqy/ballpark/internal/domain/game"
	"github.com/riskibarqy/ballpark/internal/domain/gamerecord"
	"github.com/riskibarqy/ballpark/internal/domain/player"
	"github.com/riskibarqy/ballpark/internal/domain/team"
	idgen "github.com/riskibarqy/ballpark/internal/platform/id"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_DoosanScenario(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewStore(nil)

	teamID, err := store.Teams.Create(ctx, team.Fields{Name: "Doosan Bears", City: "Seoul", Founded: 1982})
	require.NoError(t, err)
	playerID, err := store.Players.Create(ctx, player.Fields{
		Name:     "Kim",
		Number:   50,
		Position: player.PositionOutfielder,
		TeamID:   teamID,
	})
	require.NoError(t, err)

	got, exists, err := store.Players.GetByID(ctx, playerID)
	require.NoError(t, err)
	require.True(t, exists)
	assert.Equal(t, teamID, got.TeamID)
	assert.Equal(t, playerID, got.ID)

	roster, err := store.Players.ListByTeam(ctx, teamID)
	require.NoError(t, err)
	require.Len(t, roster, 1)
	assert.Equal(t, got, roster[0])
}

func TestStore_GetReturnsCreatedFieldsPlusID(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewStore(nil)

	teamFields := team.Fields{Name: "LG Twins", City: "Seoul", Founded: 1982}
	teamID, err := store.Teams.Create(ctx, teamFields)
	require.NoError(t, err)
	gotTeam, ok, err := store.Teams.GetByID(ctx, teamID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, team.Team{ID: teamID, Fields: teamFields}, gotTeam)
	assert.True(t, idgen.IsValid(teamID), "team id %q", teamID)

	gameFields := game.Fields{
		Date:       time.Date(2025, time.May, 5, 14, 0, 0, 0, time.UTC),
		HomeTeamID: teamID,
		AwayTeamID: "away",
		Stadium:    "Jamsil Baseball Stadium",
	}
	gameID, err := store.Games.Create(ctx, gameFields)
	require.NoError(t, err)
	gotGame, ok, err := store.Games.GetByID(ctx, gameID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, game.Game{ID: gameID, Fields: gameFields}, gotGame)

	recordFields := gamerecord.Fields{PlayerID: "p", GameID: gameID, Hits: 2, Runs: 1, Errors: 0}
	recordID, err := store.Records.Create(ctx, recordFields)
	require.NoError(t, err)
	gotRecord, ok, err := store.Records.GetByID(ctx, recordID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, gamerecord.GameRecord{ID: recordID, Fields: recordFields}, gotRecord)
}

func TestStore_UnknownIDIsAbsent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewStore(nil)

	if _, ok, err := store.Teams.GetByID(ctx, "missing"); err != nil || ok {
		t.Fatalf("expected absent team, got ok=%v err=%v", ok, err)
	}
	if _, ok, err := store.Players.GetByID(ctx, "missing"); err != nil || ok {
		t.Fatalf("expected absent player, got ok=%v err=%v", ok, err)
	}
	if _, ok, err := store.Games.GetByID(ctx, "missing"); err != nil || ok {
		t.Fatalf("expected absent game, got ok=%v err=%v", ok, err)
	}
	if _, ok, err := store.Records.GetByID(ctx, "missing"); err != nil || ok {
		t.Fatalf("expected absent record, got ok=%v err=%v", ok, err)
	}
}

func TestPlayerRepository_ListByTeamKeepsCreationOrder(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewPlayerRepository(idgen.NewUUIDGenerator())

	var wantA, wantB []string
	for i := 0; i < 20; i++ {
		teamID := "team-a"
		if i%3 == 0 {
			teamID = "team-b"
		}
		playerID, err := repo.Create(ctx, player.Fields{Name: "p", Number: i, Position: player.PositionPitcher, TeamID: teamID})
		require.NoError(t, err)
		if teamID == "team-a" {
			wantA = append(wantA, playerID)
		} else {
			wantB = append(wantB, playerID)
		}
	}

	assert.Equal(t, wantA, playerIDs(t, repo, "team-a"))
	assert.Equal(t, wantB, playerIDs(t, repo, "team-b"))
	assert.Empty(t, playerIDs(t, repo, "team-c"))
}

func TestPlayerRepository_ListByTeamReturnsFreshSlice(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewPlayerRepository(idgen.NewUUIDGenerator())
	_, err := repo.Create(ctx, player.Fields{Name: "Kim", TeamID: "t"})
	require.NoError(t, err)

	first, err := repo.ListByTeam(ctx, "t")
	require.NoError(t, err)
	first[0].Name = "mutated"

	second, err := repo.ListByTeam(ctx, "t")
	require.NoError(t, err)
	assert.Equal(t, "Kim", second[0].Name)
}

func TestGameRepository_ListByTeamMatchesHomeOrAway(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewGameRepository(idgen.NewUUIDGenerator())

	homeID, err := repo.Create(ctx, game.Fields{HomeTeamID: "bears", AwayTeamID: "twins", Stadium: "Jamsil"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, game.Fields{HomeTeamID: "giants", AwayTeamID: "twins", Stadium: "Sajik"})
	require.NoError(t, err)
	awayID, err := repo.Create(ctx, game.Fields{HomeTeamID: "giants", AwayTeamID: "bears", Stadium: "Sajik"})
	require.NoError(t, err)

	games, err := repo.ListByTeam(ctx, "bears")
	require.NoError(t, err)
	require.Len(t, games, 2)
	assert.Equal(t, homeID, games[0].ID)
	assert.Equal(t, awayID, games[1].ID)
}

func TestGameRecordRepository_ListByPlayerAndGame(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewGameRecordRepository(idgen.NewUUIDGenerator())

	first, err := repo.Create(ctx, gamerecord.Fields{PlayerID: "kim", GameID: "g1", Hits: 2})
	require.NoError(t, err)
	_, err = repo.Create(ctx, gamerecord.Fields{PlayerID: "yang", GameID: "g1", Hits: 1})
	require.NoError(t, err)
	third, err := repo.Create(ctx, gamerecord.Fields{PlayerID: "kim", GameID: "g2", Hits: 4})
	require.NoError(t, err)

	byPlayer, err := repo.ListByPlayer(ctx, "kim")
	require.NoError(t, err)
	require.Len(t, byPlayer, 2)
	assert.Equal(t, first, byPlayer[0].ID)
	assert.Equal(t, third, byPlayer[1].ID)

	byGame, err := repo.ListByGame(ctx, "g1")
	require.NoError(t, err)
	assert.Len(t, byGame, 2)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestTable_DeterministicGeneratorDoesNotDuplicateOrder(t *testing.T) {
	t.Parallel()

	// The same 16 bytes twice yields the same ID twice; the row is replaced
	// rather than listed twice.
	seed := bytes.Repeat([]byte{0x11}, 32)
	repo := NewTeamRepository(idgen.NewUUIDGeneratorFromReader(bytes.NewReader(seed)))
	ctx := context.Background()

	firstID, err := repo.Create(ctx, team.Fields{Name: "first"})
	require.NoError(t, err)
	secondID, err := repo.Create(ctx, team.Fields{Name: "second"})
	require.NoError(t, err)
	require.Equal(t, firstID, secondID)

	items, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "second", items[0].Name)
}

func TestTeamRepository_CreateFailsWhenGeneratorFails(t *testing.T) {
	t.Parallel()

	repo := NewTeamRepository(idgen.NewUUIDGeneratorFromReader(bytes.NewReader(nil)))
	if _, err := repo.Create(context.Background(), team.Fields{Name: "x"}); err == nil {
		t.Fatalf("expected error when id source is empty")
	}
	items, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestSeed_PopulatesEveryTable(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewStore(nil)

	result, err := Seed(ctx, store)
	require.NoError(t, err)

	assert.Equal(t, map[string]int{"teams": 3, "players": 5, "games": 2, "records": 5}, store.Size())

	bearsID := result.TeamIDs["Doosan Bears"]
	roster, err := store.Players.ListByTeam(ctx, bearsID)
	require.NoError(t, err)
	require.Len(t, roster, 2)
	assert.Equal(t, "Kim Hyun-soo", roster[0].Name)

	games, err := store.Games.ListByTeam(ctx, bearsID)
	require.NoError(t, err)
	assert.Len(t, games, 2)
}

func playerIDs(t *testing.T, repo *PlayerRepository, teamID string) []string {
	t.Helper()

	items, err := repo.ListByTeam(context.Background(), teamID)
	require.NoError(t, err)
	var out []string
	for _, item := range items {
		out = append(out, item.ID)
	}
	return out
}
