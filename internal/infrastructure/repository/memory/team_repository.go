package memory

import (
	"context"

	"github.com/riskibarqy/ballpark/internal/domain/team"
	idgen "github.com/riskibarqy/ballpark/internal/platform/id"
)

type TeamRepository struct {
	rows *table[team.Team]
}

func NewTeamRepository(ids idgen.Generator) *TeamRepository {
	return &TeamRepository{rows: newTable[team.Team](ids)}
}

func (r *TeamRepository) Create(_ context.Context, fields team.Fields) (string, error) {
	return r.rows.insert(func(id string) team.Team {
		return team.Team{ID: id, Fields: fields}
	})
}

func (r *TeamRepository) GetByID(_ context.Context, teamID string) (team.Team, bool, error) {
	item, ok := r.rows.get(teamID)
	return item, ok, nil
}

func (r *TeamRepository) List(_ context.Context) ([]team.Team, error) {
	return r.rows.filter(nil), nil
}
