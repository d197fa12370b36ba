package gamerecord

import "context"

// Repository describes game record persistence needs from use cases.
type Repository interface {
	Create(ctx context.Context, fields Fields) (string, error)
	GetByID(ctx context.Context, recordID string) (GameRecord, bool, error)
	List(ctx context.Context) ([]GameRecord, error)
	ListByPlayer(ctx context.Context, playerID string) ([]GameRecord, error)
	ListByGame(ctx context.Context, gameID string) ([]GameRecord, error)
}
