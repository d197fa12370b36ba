package memory

import (
	"context"

	"github.com/riskibarqy/ballpark/internal/domain/game"
	idgen "github.com/riskibarqy/ballpark/internal/platform/id"
)

type GameRepository struct {
	rows *table[game.Game]
}

func NewGameRepository(ids idgen.Generator) *GameRepository {
	return &GameRepository{rows: newTable[game.Game](ids)}
}

func (r *GameRepository) Create(_ context.Context, fields game.Fields) (string, error) {
	return r.rows.insert(func(id string) game.Game {
		return game.Game{ID: id, Fields: fields}
	})
}

func (r *GameRepository) GetByID(_ context.Context, gameID string) (game.Game, bool, error) {
	item, ok := r.rows.get(gameID)
	return item, ok, nil
}

func (r *GameRepository) List(_ context.Context) ([]game.Game, error) {
	return r.rows.filter(nil), nil
}

func (r *GameRepository) ListByTeam(_ context.Context, teamID string) ([]game.Game, error) {
	return r.rows.filter(func(item game.Game) bool {
		return item.Involves(teamID)
	}), nil
}
