package player

import (
	"fmt"
	"strings"
)

// Position is a fielding position. Values outside the constants below are
// stored as given.
type Position string

const (
	PositionPitcher          Position = "Pitcher"
	PositionCatcher          Position = "Catcher"
	PositionInfielder        Position = "Infielder"
	PositionOutfielder       Position = "Outfielder"
	PositionDesignatedHitter Position = "Designated Hitter"
)

// Fields holds everything that describes a player apart from its identifier.
type Fields struct {
	Name     string
	Number   int
	Position Position
	TeamID   string
}

// Player is a rostered athlete. TeamID is not checked against the team table.
type Player struct {
	ID string
	Fields
}

func (f Fields) Validate() error {
	if strings.TrimSpace(f.Name) == "" {
		return fmt.Errorf("player name is required")
	}
	if f.Number < 0 {
		return fmt.Errorf("player number must not be negative")
	}
	if strings.TrimSpace(string(f.Position)) == "" {
		return fmt.Errorf("player position is required")
	}
	if strings.TrimSpace(f.TeamID) == "" {
		return fmt.Errorf("player team id is required")
	}

	return nil
}
