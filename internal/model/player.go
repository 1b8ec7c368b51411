package model

// MaxNameLength caps player names and the optional free-text innings fields.
const MaxNameLength = 100

// Player represents a stored player profile. The role is an open string
// ("Batter", "Bowler", "All-rounder", "Keeper", ...) rather than a closed
// enumeration, matching how records are entered in practice.
type Player struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role,omitempty"`
}
