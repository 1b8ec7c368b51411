package cricmath

import "math"

// StrikeRate returns runs scored per 100 balls faced, rounded to 2 decimals.
// Zero or negative balls yields 0.0 even when runs is positive.
func StrikeRate(runs, balls int) float64 {
	if balls <= 0 {
		return 0.0
	}
	return round2(float64(runs) / float64(balls) * 100.0)
}

// BattingAverage returns runs scored per dismissal, rounded to 2 decimals.
// A batter never dismissed reports 0.0 rather than an error.
func BattingAverage(runs, dismissals int) float64 {
	if dismissals <= 0 {
		return 0.0
	}
	return round2(float64(runs) / float64(dismissals))
}

// round2 rounds half away from zero to 2 decimal places.
func round2(v float64) float64 {
	return math.Round(v*100.0) / 100.0
}
