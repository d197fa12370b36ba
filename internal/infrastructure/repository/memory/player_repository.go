package memory

import (
	"context"

	"github.com/riskibarqy/ballpark/internal/domain/player"
	idgen "github.com/riskibarqy/ballpark/internal/platform/id"
)

type PlayerRepository struct {
	rows *table[player.Player]
}

func NewPlayerRepository(ids idgen.Generator) *PlayerRepository {
	return &PlayerRepository{rows: newTable[player.Player](ids)}
}

func (r *PlayerRepository) Create(_ context.Context, fields player.Fields) (string, error) {
	return r.rows.insert(func(id string) player.Player {
		return player.Player{ID: id, Fields: fields}
	})
}

func (r *PlayerRepository) GetByID(_ context.Context, playerID string) (player.Player, bool, error) {
	item, ok := r.rows.get(playerID)
	return item, ok, nil
}

func (r *PlayerRepository) List(_ context.Context) ([]player.Player, error) {
	return r.rows.filter(nil), nil
}

func (r *PlayerRepository) ListByTeam(_ context.Context, teamID string) ([]player.Player, error) {
	return r.rows.filter(func(item player.Player) bool {
		return item.TeamID == teamID
	}), nil
}
