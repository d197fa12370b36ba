package httpapi

import (
	"github.com/riskibarqy/ballpark/internal/domain/game"
	"github.com/riskibarqy/ballpark/internal/domain/gamerecord"
	"github.com/riskibarqy/ballpark/internal/domain/player"
	"github.com/riskibarqy/ballpark/internal/domain/playerstats"
	"github.com/riskibarqy/ballpark/internal/domain/team"
	"github.com/riskibarqy/ballpark/internal/usecase"
)

const gameDateLayout = "2006-01-02"

type createTeamRequest struct {
	Name    string `json:"name" validate:"required,max=100"`
	City    string `json:"city" validate:"required,max=100"`
	Founded int    `json:"founded" validate:"min=1800,max=2100"`
}

type createPlayerRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Number   int    `json:"number" validate:"min=0,max=99"`
	Position string `json:"position" validate:"required,oneof=Pitcher Catcher Infielder Outfielder 'Designated Hitter'"`
	TeamID   string `json:"team_id" validate:"required,uuid4"`
}

type createGameRequest struct {
	Date       string `json:"date" validate:"required,datetime=2006-01-02"`
	HomeTeamID string `json:"home_team_id" validate:"required,uuid4"`
	AwayTeamID string `json:"away_team_id" validate:"required,uuid4,nefield=HomeTeamID"`
	Stadium    string `json:"stadium" validate:"required,max=150"`
}

type createRecordRequest struct {
	PlayerID string `json:"player_id" validate:"required,uuid4"`
	GameID   string `json:"game_id" validate:"required,uuid4"`
	Hits     int    `json:"hits" validate:"min=0"`
	Runs     int    `json:"runs" validate:"min=0"`
	Errors   int    `json:"errors" validate:"min=0"`
}

type teamDTO struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	City    string `json:"city"`
	Founded int    `json:"founded"`
}

type playerDTO struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Number   int    `json:"number"`
	Position string `json:"position"`
	TeamID   string `json:"team_id"`
}

type gameDTO struct {
	ID         string `json:"id"`
	Date       string `json:"date"`
	HomeTeamID string `json:"home_team_id"`
	AwayTeamID string `json:"away_team_id"`
	Stadium    string `json:"stadium"`
}

type gameRecordDTO struct {
	ID       string `json:"id"`
	PlayerID string `json:"player_id"`
	GameID   string `json:"game_id"`
	Hits     int    `json:"hits"`
	Runs     int    `json:"runs"`
	Errors   int    `json:"errors"`
}

type playerStatsDTO struct {
	TotalGames     int     `json:"total_games"`
	TotalHits      int     `json:"total_hits"`
	TotalRuns      int     `json:"total_runs"`
	TotalErrors    int     `json:"total_errors"`
	BattingAverage float64 `json:"batting_average"`
}

type rosterStatsDTO struct {
	Player playerDTO      `json:"player"`
	Stats  playerStatsDTO `json:"stats"`
}

func teamToDTO(item team.Team) teamDTO {
	return teamDTO{
		ID:      item.ID,
		Name:    item.Name,
		City:    item.City,
		Founded: item.Founded,
	}
}

func playerToDTO(item player.Player) playerDTO {
	return playerDTO{
		ID:       item.ID,
		Name:     item.Name,
		Number:   item.Number,
		Position: string(item.Position),
		TeamID:   item.TeamID,
	}
}

func gameToDTO(item game.Game) gameDTO {
	return gameDTO{
		ID:         item.ID,
		Date:       item.Date.Format(gameDateLayout),
		HomeTeamID: item.HomeTeamID,
		AwayTeamID: item.AwayTeamID,
		Stadium:    item.Stadium,
	}
}

func gameRecordToDTO(item gamerecord.GameRecord) gameRecordDTO {
	return gameRecordDTO{
		ID:       item.ID,
		PlayerID: item.PlayerID,
		GameID:   item.GameID,
		Hits:     item.Hits,
		Runs:     item.Runs,
		Errors:   item.Errors,
	}
}

func statsToDTO(stats playerstats.Stats) playerStatsDTO {
	return playerStatsDTO{
		TotalGames:     stats.TotalGames,
		TotalHits:      stats.TotalHits,
		TotalRuns:      stats.TotalRuns,
		TotalErrors:    stats.TotalErrors,
		BattingAverage: stats.BattingAverage,
	}
}

func rosterStatsToDTO(item usecase.RosterStats) rosterStatsDTO {
	return rosterStatsDTO{
		Player: playerToDTO(item.Player),
		Stats:  statsToDTO(item.Stats),
	}
}

func mapSlice[T, D any](items []T, convert func(T) D) []D {
	out := make([]D, 0, len(items))
	for _, item := range items {
		out = append(out, convert(item))
	}
	return out
}
