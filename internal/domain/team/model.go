package team

import (
	"fmt"
	"strings"
)

// Fields holds everything that describes a team apart from its identifier.
type Fields struct {
	Name    string
	City    string
	Founded int
}

// Team is a baseball club.
type Team struct {
	ID string
	Fields
}

func (f Fields) Validate() error {
	if strings.TrimSpace(f.Name) == "" {
		return fmt.Errorf("team name is required")
	}
	if strings.TrimSpace(f.City) == "" {
		return fmt.Errorf("team city is required")
	}
	if f.Founded <= 0 {
		return fmt.Errorf("team founding year must be greater than zero")
	}

	return nil
}
