package model

// CareerTotals holds the raw counts reduced over a player's innings set.
// Backends fill this either store-side (SQL SUM/COUNT, Mongo $group) or by
// an in-process pass; the numbers must come out the same either way.
type CareerTotals struct {
	Runs    int
	Balls   int
	Fours   int
	Sixes   int
	Innings int
	Outs    int
}

// CareerStats is the derived career block, recomputed on every read and
// never persisted.
type CareerStats struct {
	TotalRuns      int     `json:"total_runs"`
	TotalBalls     int     `json:"total_balls"`
	TotalFours     int     `json:"total_fours"`
	TotalSixes     int     `json:"total_sixes"`
	InningsCount   int     `json:"innings_count"`
	NotOuts        int     `json:"not_outs"`
	StrikeRate     float64 `json:"strike_rate"`
	BattingAverage float64 `json:"batting_average"`
}

// PlayerSummary is the list-view shape: player attributes with the career
// block flattened alongside them.
type PlayerSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role,omitempty"`
	CareerStats
}

// InningsDetail decorates a stored innings with its own derived strike rate.
type InningsDetail struct {
	Innings
	StrikeRate float64 `json:"strike_rate"`
}

// PlayerDetail is the detail/export-view shape: player attributes, the full
// innings list (most recent first for the dashboard view, chronological for
// exports) and the career block.
type PlayerDetail struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Role    string          `json:"role,omitempty"`
	Innings []InningsDetail `json:"innings"`
	Career  CareerStats     `json:"career"`
}
