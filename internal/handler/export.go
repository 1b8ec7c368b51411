package handler

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"

	"cricket-scorecard-api/internal/model"
	"cricket-scorecard-api/pkg/apierror"
	"cricket-scorecard-api/pkg/oid"
	"cricket-scorecard-api/pkg/response"

	"github.com/go-chi/chi/v5"
)

// csvHeader is the fixed column layout of career exports. Clients parse
// these names; do not reorder.
var csvHeader = []string{"Date", "Opposition", "Venue", "Runs", "Balls", "4s", "6s", "Out", "Strike Rate"}

// Export handles GET /api/v1/players/{playerID}/export?format=csv|json
// Innings are chronological (oldest first). Any format other than "json"
// falls back to CSV.
func (h *PlayerHandler) Export(w http.ResponseWriter, r *http.Request) {
	key, err := oid.Parse(chi.URLParam(r, "playerID"))
	if err != nil {
		response.Error(w, apierror.BadRequest("Invalid ID format"))
		return
	}

	detail, err := h.scorecard.ExportPlayer(r.Context(), key)
	if err != nil {
		response.Error(w, storeError(err))
		return
	}

	if r.URL.Query().Get("format") == "json" {
		response.OK(w, detail)
		return
	}
	writeCareerCSV(w, detail)
}

// writeCareerCSV streams the innings list as a CSV attachment named after
// the player.
func writeCareerCSV(w http.ResponseWriter, detail *model.PlayerDetail) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s_career.csv"`, detail.Name))

	cw := csv.NewWriter(w)
	cw.Write(csvHeader)
	for _, in := range detail.Innings {
		outcome := "Not Out"
		if in.Out {
			outcome = "Out"
		}
		cw.Write([]string{
			in.Date.Format("2006-01-02"),
			in.Opposition,
			in.Venue,
			strconv.Itoa(in.Runs),
			strconv.Itoa(in.Balls),
			strconv.Itoa(in.Fours),
			strconv.Itoa(in.Sixes),
			outcome,
			strconv.FormatFloat(in.StrikeRate, 'f', 2, 64),
		})
	}
	cw.Flush()
}
