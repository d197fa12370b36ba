package memory

import (
	idgen "github.com/riskibarqy/ballpark/internal/platform/id"
)

// Store groups the four baseball tables behind one identifier generator.
// Discarding the Store discards every entity in it.
type Store struct {
	Teams   *TeamRepository
	Players *PlayerRepository
	Games   *GameRepository
	Records *GameRecordRepository
}

func NewStore(ids idgen.Generator) *Store {
	if ids == nil {
		ids = idgen.NewUUIDGenerator()
	}

	return &Store{
		Teams:   NewTeamRepository(ids),
		Players: NewPlayerRepository(ids),
		Games:   NewGameRepository(ids),
		Records: NewGameRecordRepository(ids),
	}
}

// Size reports the row count of each table, keyed by table name.
func (s *Store) Size() map[string]int {
	return map[string]int{
		"teams":   s.Teams.rows.len(),
		"players": s.Players.rows.len(),
		"games":   s.Games.rows.len(),
		"records": s.Records.rows.len(),
	}
}
