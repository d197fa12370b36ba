package playerstats

import (
	"context"
	"fmt"

	"github.com/riskibarqy/ballpark/internal/domain/gamerecord"
	"github.com/riskibarqy/ballpark/internal/domain/player"
)

// PlayerReader is the slice of the player table the calculator needs.
type PlayerReader interface {
	GetByID(ctx context.Context, playerID string) (player.Player, bool, error)
}

// RecordReader is the slice of the record table the calculator needs.
type RecordReader interface {
	ListByPlayer(ctx context.Context, playerID string) ([]gamerecord.GameRecord, error)
}

// Calculator derives Stats from the current table contents on every call.
type Calculator struct {
	players PlayerReader
	records RecordReader
}

func NewCalculator(players PlayerReader, records RecordReader) *Calculator {
	return &Calculator{players: players, records: records}
}

// ComputeStats returns false when playerID does not resolve to a player.
func (c *Calculator) ComputeStats(ctx context.Context, playerID string) (Stats, bool, error) {
	_, exists, err := c.players.GetByID(ctx, playerID)
	if err != nil {
		return Stats{}, false, fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return Stats{}, false, nil
	}

	records, err := c.records.ListByPlayer(ctx, playerID)
	if err != nil {
		return Stats{}, false, fmt.Errorf("list records by player: %w", err)
	}

	return Summarize(records), true, nil
}
