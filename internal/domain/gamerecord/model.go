package gamerecord

import (
	"fmt"
	"strings"
)

// Fields holds one player's batting and fielding line for one game.
type Fields struct {
	PlayerID string
	GameID   string
	Hits     int
	Runs     int
	Errors   int
}

// GameRecord is a stored line. PlayerID and GameID are not checked against
// their tables.
type GameRecord struct {
	ID string
	Fields
}

func (f Fields) Validate() error {
	if strings.TrimSpace(f.PlayerID) == "" {
		return fmt.Errorf("record player id is required")
	}
	if strings.TrimSpace(f.GameID) == "" {
		return fmt.Errorf("record game id is required")
	}
	if f.Hits < 0 || f.Runs < 0 || f.Errors < 0 {
		return fmt.Errorf("record counts must not be negative")
	}

	return nil
}
