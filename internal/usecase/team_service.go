package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/ballpark/internal/domain/game"
	"github.com/riskibarqy/ballpark/internal/domain/player"
	"github.com/riskibarqy/ballpark/internal/domain/team"
	"github.com/riskibarqy/ballpark/internal/platform/logging"
)

type TeamService struct {
	teamRepo   team.Repository
	playerRepo player.Repository
	gameRepo   game.Repository
	logger     *logging.Logger
}

func NewTeamService(
	teamRepo team.Repository,
	playerRepo player.Repository,
	gameRepo game.Repository,
	logger *logging.Logger,
) *TeamService {
	if logger == nil {
		logger = logging.Default()
	}

	return &TeamService{
		teamRepo:   teamRepo,
		playerRepo: playerRepo,
		gameRepo:   gameRepo,
		logger:     logger,
	}
}

func (s *TeamService) CreateTeam(ctx context.Context, fields team.Fields) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.CreateTeam")
	defer span.End()

	fields.Name = strings.TrimSpace(fields.Name)
	fields.City = strings.TrimSpace(fields.City)
	if err := fields.Validate(); err != nil {
		return team.Team{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	teamID, err := s.teamRepo.Create(ctx, fields)
	if err != nil {
		return team.Team{}, fmt.Errorf("create team: %w", err)
	}

	s.logger.InfoContext(ctx, "team created", "team_id", teamID, "name", fields.Name)
	return team.Team{ID: teamID, Fields: fields}, nil
}

func (s *TeamService) GetTeam(ctx context.Context, teamID string) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.GetTeam")
	defer span.End()

	return s.getTeam(ctx, teamID)
}

func (s *TeamService) ListTeams(ctx context.Context) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.ListTeams")
	defer span.End()

	items, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}

	return items, nil
}

// ListTeamPlayers returns the roster in signing order. The team itself must
// exist even though players are not checked against it on creation.
func (s *TeamService) ListTeamPlayers(ctx context.Context, teamID string) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.ListTeamPlayers")
	defer span.End()

	item, err := s.getTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}

	players, err := s.playerRepo.ListByTeam(ctx, item.ID)
	if err != nil {
		return nil, fmt.Errorf("list players by team: %w", err)
	}

	return players, nil
}

func (s *TeamService) ListTeamGames(ctx context.Context, teamID string) ([]game.Game, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.ListTeamGames")
	defer span.End()

	item, err := s.getTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}

	games, err := s.gameRepo.ListByTeam(ctx, item.ID)
	if err != nil {
		return nil, fmt.Errorf("list games by team: %w", err)
	}

	return games, nil
}

func (s *TeamService) getTeam(ctx context.Context, teamID string) (team.Team, error) {
	teamID, err := requireID("team", teamID)
	if err != nil {
		return team.Team{}, err
	}

	item, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return team.Team{}, fmt.Errorf("get team by id: %w", err)
	}
	if !exists {
		return team.Team{}, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	return item, nil
}
