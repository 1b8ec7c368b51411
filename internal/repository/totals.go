package repository

import (
	"database/sql"
	"sort"

	"cricket-scorecard-api/internal/model"
)

// reduceTotals sums an innings set into raw career counts. Backends without
// server-side aggregation (memory, redis) use this; the result is identical
// to what the SQL and Mongo backends compute in the store.
func reduceTotals(innings []model.Innings) model.CareerTotals {
	var t model.CareerTotals
	for _, in := range innings {
		t.Runs += in.Runs
		t.Balls += in.Balls
		t.Fours += in.Fours
		t.Sixes += in.Sixes
		t.Innings++
		if in.Out {
			t.Outs++
		}
	}
	return t
}

// sortInningsByDate orders an innings slice in place. The sort is stable so
// innings sharing a date keep their insertion order.
func sortInningsByDate(innings []model.Innings, order SortOrder) {
	sort.SliceStable(innings, func(i, j int) bool {
		if order == DateAscending {
			return innings[i].Date.Before(innings[j].Date)
		}
		return innings[i].Date.After(innings[j].Date)
	})
}

// scanInningsRows drains a SQL result set of innings rows. Column order is
// fixed across the SQL backends: id, player_id, runs, balls, fours, sixes,
// is_out, opposition, venue, date.
func scanInningsRows(rows *sql.Rows) ([]model.Innings, error) {
	innings := make([]model.Innings, 0)
	for rows.Next() {
		var in model.Innings
		err := rows.Scan(&in.ID, &in.PlayerID, &in.Runs, &in.Balls, &in.Fours, &in.Sixes,
			&in.Out, &in.Opposition, &in.Venue, &in.Date)
		if err != nil {
			return nil, unavailable("scan innings row", err)
		}
		innings = append(innings, in)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable("iterate innings", err)
	}
	return innings, nil
}
