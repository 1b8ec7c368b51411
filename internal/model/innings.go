package model

import "time"

// Bounds for innings counting fields. T20 and List A records stay far below
// these; they exist to reject junk input, not to model the laws of the game.
const (
	MaxRuns       = 400
	MaxBalls      = 400
	MaxBoundaries = 200
)

// Innings is one batting performance by one player in one match. Records are
// immutable once created and are never deleted. PlayerID holds the string
// form of the owning player's key. Runs are deliberately not cross-checked
// against fours/sixes: a scorecard entered with inconsistent boundary counts
// is stored as given.
type Innings struct {
	ID         string    `json:"id"`
	PlayerID   string    `json:"player_id"`
	Runs       int       `json:"runs"`
	Balls      int       `json:"balls"`
	Fours      int       `json:"fours"`
	Sixes      int       `json:"sixes"`
	Out        bool      `json:"out"`
	Opposition string    `json:"opposition,omitempty"`
	Venue      string    `json:"venue,omitempty"`
	Date       time.Time `json:"date"`
}
