package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/ballpark/internal/domain/gamerecord"
	"github.com/riskibarqy/ballpark/internal/domain/player"
	"github.com/riskibarqy/ballpark/internal/platform/logging"
)

type PlayerService struct {
	playerRepo player.Repository
	recordRepo gamerecord.Repository
	logger     *logging.Logger
}

func NewPlayerService(playerRepo player.Repository, recordRepo gamerecord.Repository, logger *logging.Logger) *PlayerService {
	if logger == nil {
		logger = logging.Default()
	}

	return &PlayerService{
		playerRepo: playerRepo,
		recordRepo: recordRepo,
		logger:     logger,
	}
}

// CreatePlayer stores the player as given; TeamID is not resolved.
func (s *PlayerService) CreatePlayer(ctx context.Context, fields player.Fields) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.CreatePlayer")
	defer span.End()

	fields.Name = strings.TrimSpace(fields.Name)
	fields.TeamID = strings.TrimSpace(fields.TeamID)
	fields.Position = player.Position(strings.TrimSpace(string(fields.Position)))
	if err := fields.Validate(); err != nil {
		return player.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	playerID, err := s.playerRepo.Create(ctx, fields)
	if err != nil {
		return player.Player{}, fmt.Errorf("create player: %w", err)
	}

	s.logger.InfoContext(ctx, "player created",
		"player_id", playerID,
		"team_id", fields.TeamID,
		"number", fields.Number,
	)
	return player.Player{ID: playerID, Fields: fields}, nil
}

func (s *PlayerService) GetPlayer(ctx context.Context, playerID string) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.GetPlayer")
	defer span.End()

	return s.getPlayer(ctx, playerID)
}

func (s *PlayerService) ListPlayerRecords(ctx context.Context, playerID string) ([]gamerecord.GameRecord, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.ListPlayerRecords")
	defer span.End()

	item, err := s.getPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}

	records, err := s.recordRepo.ListByPlayer(ctx, item.ID)
	if err != nil {
		return nil, fmt.Errorf("list records by player: %w", err)
	}

	return records, nil
}

func (s *PlayerService) getPlayer(ctx context.Context, playerID string) (player.Player, error) {
	playerID, err := requireID("player", playerID)
	if err != nil {
		return player.Player{}, err
	}

	item, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return player.Player{}, fmt.Errorf("get player by id: %w", err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}

	return item, nil
}
