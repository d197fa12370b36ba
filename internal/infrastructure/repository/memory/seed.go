package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/riskibarqy/ballpark/internal/domain/game"
	"github.com/riskibarqy/ballpark/internal/domain/gamerecord"
	"github.com/riskibarqy/ballpark/internal/domain/player"
	"github.com/riskibarqy/ballpark/internal/domain/team"
)

// SeedResult carries the generated IDs of seeded rows, keyed by the seed name
// (team name, player name, or "home@away" for games).
type SeedResult struct {
	TeamIDs   map[string]string
	PlayerIDs map[string]string
	GameIDs   map[string]string
}

func SeedTeams() []team.Fields {
	return []team.Fields{
		{Name: "Doosan Bears", City: "Seoul", Founded: 1982},
		{Name: "LG Twins", City: "Seoul", Founded: 1982},
		{Name: "Lotte Giants", City: "Busan", Founded: 1975},
	}
}

type seedPlayer struct {
	team   string
	fields player.Fields
}

func seedPlayers() []seedPlayer {
	return []seedPlayer{
		{team: "Doosan Bears", fields: player.Fields{Name: "Kim Hyun-soo", Number: 50, Position: player.PositionOutfielder}},
		{team: "Doosan Bears", fields: player.Fields{Name: "Yang Eui-ji", Number: 25, Position: player.PositionCatcher}},
		{team: "LG Twins", fields: player.Fields{Name: "Oh Ji-hwan", Number: 10, Position: player.PositionInfielder}},
		{team: "LG Twins", fields: player.Fields{Name: "Lim Chan-kyu", Number: 1, Position: player.PositionPitcher}},
		{team: "Lotte Giants", fields: player.Fields{Name: "Jeon Jun-woo", Number: 8, Position: player.PositionOutfielder}},
	}
}

type seedGame struct {
	home, away string
	date       time.Time
	stadium    string
}

func seedGames() []seedGame {
	return []seedGame{
		{home: "Doosan Bears", away: "LG Twins", date: time.Date(2025, time.April, 1, 18, 30, 0, 0, time.UTC), stadium: "Jamsil Baseball Stadium"},
		{home: "Lotte Giants", away: "Doosan Bears", date: time.Date(2025, time.April, 3, 18, 30, 0, 0, time.UTC), stadium: "Sajik Baseball Stadium"},
	}
}

type seedRecord struct {
	player, game     string
	hits, runs, errs int
}

func seedRecords() []seedRecord {
	return []seedRecord{
		{player: "Kim Hyun-soo", game: "Doosan Bears@LG Twins", hits: 2, runs: 1},
		{player: "Kim Hyun-soo", game: "Lotte Giants@Doosan Bears", hits: 1, runs: 0},
		{player: "Yang Eui-ji", game: "Doosan Bears@LG Twins", hits: 3, runs: 2, errs: 1},
		{player: "Oh Ji-hwan", game: "Doosan Bears@LG Twins", hits: 1, runs: 1},
		{player: "Jeon Jun-woo", game: "Lotte Giants@Doosan Bears", hits: 2, runs: 1},
	}
}

// Seed fills the store with a small KBO sample: teams, rosters, two games and
// their box-score lines.
func Seed(ctx context.Context, store *Store) (SeedResult, error) {
	out := SeedResult{
		TeamIDs:   make(map[string]string),
		PlayerIDs: make(map[string]string),
		GameIDs:   make(map[string]string),
	}

	for _, item := range SeedTeams() {
		teamID, err := store.Teams.Create(ctx, item)
		if err != nil {
			return SeedResult{}, fmt.Errorf("seed team %q: %w", item.Name, err)
		}
		out.TeamIDs[item.Name] = teamID
	}

	for _, item := range seedPlayers() {
		fields := item.fields
		fields.TeamID = out.TeamIDs[item.team]
		playerID, err := store.Players.Create(ctx, fields)
		if err != nil {
			return SeedResult{}, fmt.Errorf("seed player %q: %w", fields.Name, err)
		}
		out.PlayerIDs[fields.Name] = playerID
	}

	for _, item := range seedGames() {
		gameID, err := store.Games.Create(ctx, game.Fields{
			Date:       item.date,
			HomeTeamID: out.TeamIDs[item.home],
			AwayTeamID: out.TeamIDs[item.away],
			Stadium:    item.stadium,
		})
		if err != nil {
			return SeedResult{}, fmt.Errorf("seed game %s@%s: %w", item.home, item.away, err)
		}
		out.GameIDs[item.home+"@"+item.away] = gameID
	}

	for _, item := range seedRecords() {
		_, err := store.Records.Create(ctx, gamerecord.Fields{
			PlayerID: out.PlayerIDs[item.player],
			GameID:   out.GameIDs[item.game],
			Hits:     item.hits,
			Runs:     item.runs,
			Errors:   item.errs,
		})
		if err != nil {
			return SeedResult{}, fmt.Errorf("seed record %s/%s: %w", item.player, item.game, err)
		}
	}

	return out, nil
}
