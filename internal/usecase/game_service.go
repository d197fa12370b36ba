package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/ballpark/internal/domain/game"
	"github.com/riskibarqy/ballpark/internal/domain/gamerecord"
	"github.com/riskibarqy/ballpark/internal/platform/logging"
)

type GameService struct {
	gameRepo   game.Repository
	recordRepo gamerecord.Repository
	logger     *logging.Logger
}

func NewGameService(gameRepo game.Repository, recordRepo gamerecord.Repository, logger *logging.Logger) *GameService {
	if logger == nil {
		logger = logging.Default()
	}

	return &GameService{
		gameRepo:   gameRepo,
		recordRepo: recordRepo,
		logger:     logger,
	}
}

func (s *GameService) CreateGame(ctx context.Context, fields game.Fields) (game.Game, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameService.CreateGame")
	defer span.End()

	fields.HomeTeamID = strings.TrimSpace(fields.HomeTeamID)
	fields.AwayTeamID = strings.TrimSpace(fields.AwayTeamID)
	fields.Stadium = strings.TrimSpace(fields.Stadium)
	if err := fields.Validate(); err != nil {
		return game.Game{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	gameID, err := s.gameRepo.Create(ctx, fields)
	if err != nil {
		return game.Game{}, fmt.Errorf("create game: %w", err)
	}

	s.logger.InfoContext(ctx, "game created",
		"game_id", gameID,
		"home_team_id", fields.HomeTeamID,
		"away_team_id", fields.AwayTeamID,
	)
	return game.Game{ID: gameID, Fields: fields}, nil
}

func (s *GameService) GetGame(ctx context.Context, gameID string) (game.Game, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameService.GetGame")
	defer span.End()

	return s.getGame(ctx, gameID)
}

// ListGameRecords returns the box score of one game in entry order.
func (s *GameService) ListGameRecords(ctx context.Context, gameID string) ([]gamerecord.GameRecord, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameService.ListGameRecords")
	defer span.End()

	item, err := s.getGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	records, err := s.recordRepo.ListByGame(ctx, item.ID)
	if err != nil {
		return nil, fmt.Errorf("list records by game: %w", err)
	}

	return records, nil
}

func (s *GameService) CreateRecord(ctx context.Context, fields gamerecord.Fields) (gamerecord.GameRecord, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameService.CreateRecord")
	defer span.End()

	fields.PlayerID = strings.TrimSpace(fields.PlayerID)
	fields.GameID = strings.TrimSpace(fields.GameID)
	if err := fields.Validate(); err != nil {
		return gamerecord.GameRecord{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	recordID, err := s.recordRepo.Create(ctx, fields)
	if err != nil {
		return gamerecord.GameRecord{}, fmt.Errorf("create game record: %w", err)
	}

	s.logger.DebugContext(ctx, "game record created",
		"record_id", recordID,
		"player_id", fields.PlayerID,
		"game_id", fields.GameID,
	)
	return gamerecord.GameRecord{ID: recordID, Fields: fields}, nil
}

func (s *GameService) GetRecord(ctx context.Context, recordID string) (gamerecord.GameRecord, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameService.GetRecord")
	defer span.End()

	recordID, err := requireID("record", recordID)
	if err != nil {
		return gamerecord.GameRecord{}, err
	}

	item, exists, err := s.recordRepo.GetByID(ctx, recordID)
	if err != nil {
		return gamerecord.GameRecord{}, fmt.Errorf("get game record by id: %w", err)
	}
	if !exists {
		return gamerecord.GameRecord{}, fmt.Errorf("%w: record=%s", ErrNotFound, recordID)
	}

	return item, nil
}

func (s *GameService) getGame(ctx context.Context, gameID string) (game.Game, error) {
	gameID, err := requireID("game", gameID)
	if err != nil {
		return game.Game{}, err
	}

	item, exists, err := s.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		return game.Game{}, fmt.Errorf("get game by id: %w", err)
	}
	if !exists {
		return game.Game{}, fmt.Errorf("%w: game=%s", ErrNotFound, gameID)
	}

	return item, nil
}
