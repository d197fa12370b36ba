package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/ballpark/internal/domain/player"
	"github.com/riskibarqy/ballpark/internal/domain/playerstats"
	"github.com/riskibarqy/ballpark/internal/domain/team"
)

// RosterStats pairs a player with the stats computed for them.
type RosterStats struct {
	Player player.Player
	Stats  playerstats.Stats
}

type PlayerStatsService struct {
	teamRepo   team.Repository
	playerRepo player.Repository
	calculator *playerstats.Calculator
}

func NewPlayerStatsService(
	teamRepo team.Repository,
	playerRepo player.Repository,
	calculator *playerstats.Calculator,
) *PlayerStatsService {
	return &PlayerStatsService{
		teamRepo:   teamRepo,
		playerRepo: playerRepo,
		calculator: calculator,
	}
}

func (s *PlayerStatsService) GetPlayerStats(ctx context.Context, playerID string) (playerstats.Stats, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerStatsService.GetPlayerStats")
	defer span.End()

	playerID, err := requireID("player", playerID)
	if err != nil {
		return playerstats.Stats{}, err
	}

	stats, exists, err := s.calculator.ComputeStats(ctx, playerID)
	if err != nil {
		return playerstats.Stats{}, fmt.Errorf("compute player stats: %w", err)
	}
	if !exists {
		return playerstats.Stats{}, fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}

	return stats, nil
}

// GetTeamStats computes stats for every rostered player, in roster order.
func (s *PlayerStatsService) GetTeamStats(ctx context.Context, teamID string) ([]RosterStats, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerStatsService.GetTeamStats")
	defer span.End()

	teamID, err := requireID("team", teamID)
	if err != nil {
		return nil, err
	}

	_, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("get team by id: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	roster, err := s.playerRepo.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("list players by team: %w", err)
	}

	out := make([]RosterStats, 0, len(roster))
	for _, item := range roster {
		stats, ok, err := s.calculator.ComputeStats(ctx, item.ID)
		if err != nil {
			return nil, fmt.Errorf("compute stats for player=%s: %w", item.ID, err)
		}
		if !ok {
			continue
		}
		out = append(out, RosterStats{Player: item, Stats: stats})
	}

	return out, nil
}
