package player

import (
	"fmt"
	"strings"
)

// Player is one cricketer row. Identity is the (Name, FullName) pair and a
// lookup matches on either of them.
type Player struct {
	ID           int64
	Name         string
	FullName     string
	Country      string
	PlayingRole  string
	BattingStyle string
	BowlingStyle string
	TotalRuns    int64
	TotalWickets int64
	TeamID       int64
}

func (p Player) Validate() error {
	if strings.TrimSpace(p.Name) == "" && strings.TrimSpace(p.FullName) == "" {
		return fmt.Errorf("player name is required")
	}
	if p.TotalRuns < 0 {
		return fmt.Errorf("player total runs must be >= 0")
	}
	if p.TotalWickets < 0 {
		return fmt.Errorf("player total wickets must be >= 0")
	}

	return nil
}

// ShortName returns the display name, falling back to the full name.
func (p Player) ShortName() string {
	if p.Name != "" {
		return p.Name
	}
	return p.FullName
}
