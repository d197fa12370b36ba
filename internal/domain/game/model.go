package game

import (
	"fmt"
	"strings"
	"time"
)

// Fields holds everything that describes a game apart from its identifier.
type Fields struct {
	Date       time.Time
	HomeTeamID string
	AwayTeamID string
	Stadium    string
}

// Game is one scheduled or played match between two teams.
type Game struct {
	ID string
	Fields
}

// Involves reports whether teamID plays in the game on either side.
func (g Game) Involves(teamID string) bool {
	return g.HomeTeamID == teamID || g.AwayTeamID == teamID
}

func (f Fields) Validate() error {
	if f.Date.IsZero() {
		return fmt.Errorf("game date is required")
	}
	if strings.TrimSpace(f.HomeTeamID) == "" {
		return fmt.Errorf("game home team id is required")
	}
	if strings.TrimSpace(f.AwayTeamID) == "" {
		return fmt.Errorf("game away team id is required")
	}
	if f.HomeTeamID == f.AwayTeamID {
		return fmt.Errorf("game home and away team must differ")
	}
	if strings.TrimSpace(f.Stadium) == "" {
		return fmt.Errorf("game stadium is required")
	}

	return nil
}
