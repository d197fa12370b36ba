package game

import "context"

// Repository describes game persistence needs from use cases.
type Repository interface {
	Create(ctx context.Context, fields Fields) (string, error)
	GetByID(ctx context.Context, gameID string) (Game, bool, error)
	List(ctx context.Context) ([]Game, error)
	// ListByTeam returns games where teamID is the home or the away side.
	ListByTeam(ctx context.Context, teamID string) ([]Game, error)
}
