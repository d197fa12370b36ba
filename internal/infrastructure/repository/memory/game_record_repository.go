package memory

import (
	"context"

	"github.com/riskibarqy/ballpark/internal/domain/gamerecord"
	idgen "github.com/riskibarqy/ballpark/internal/platform/id"
)

type GameRecordRepository struct {
	rows *table[gamerecord.GameRecord]
}

func NewGameRecordRepository(ids idgen.Generator) *GameRecordRepository {
	return &GameRecordRepository{rows: newTable[gamerecord.GameRecord](ids)}
}

func (r *GameRecordRepository) Create(_ context.Context, fields gamerecord.Fields) (string, error) {
	return r.rows.insert(func(id string) gamerecord.GameRecord {
		return gamerecord.GameRecord{ID: id, Fields: fields}
	})
}

func (r *GameRecordRepository) GetByID(_ context.Context, recordID string) (gamerecord.GameRecord, bool, error) {
	item, ok := r.rows.get(recordID)
	return item, ok, nil
}

func (r *GameRecordRepository) List(_ context.Context) ([]gamerecord.GameRecord, error) {
	return r.rows.filter(nil), nil
}

func (r *GameRecordRepository) ListByPlayer(_ context.Context, playerID string) ([]gamerecord.GameRecord, error) {
	return r.rows.filter(func(item gamerecord.GameRecord) bool {
		return item.PlayerID == playerID
	}), nil
}

func (r *GameRecordRepository) ListByGame(_ context.Context, gameID string) ([]gamerecord.GameRecord, error) {
	return r.rows.filter(func(item gamerecord.GameRecord) bool {
		return item.GameID == gameID
	}), nil
}
