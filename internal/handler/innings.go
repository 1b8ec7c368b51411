package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"
	"unicode/utf8"

	"cricket-scorecard-api/internal/model"
	"cricket-scorecard-api/internal/service"
	"cricket-scorecard-api/pkg/apierror"
	"cricket-scorecard-api/pkg/oid"
	"cricket-scorecard-api/pkg/response"
)

// InningsHandler handles innings-related HTTP requests.
type InningsHandler struct {
	scorecard *service.ScorecardService
}

// NewInningsHandler creates a new innings handler.
func NewInningsHandler(scorecard *service.ScorecardService) *InningsHandler {
	return &InningsHandler{scorecard: scorecard}
}

// CreateInningsRequest is the POST /api/v1/innings payload. Runs and balls
// are pointers so an omitted field is distinguishable from an explicit zero;
// out defaults to true when omitted, matching how scorebooks read.
type CreateInningsRequest struct {
	PlayerID   string     `json:"player_id"`
	Runs       *int       `json:"runs"`
	Balls      *int       `json:"balls"`
	Fours      int        `json:"fours"`
	Sixes      int        `json:"sixes"`
	Out        *bool      `json:"out"`
	Opposition string     `json:"opposition"`
	Venue      string     `json:"venue"`
	Date       *time.Time `json:"date"`
}

// Validate checks required fields and numeric bounds.
func (req *CreateInningsRequest) Validate() []apierror.FieldError {
	var details []apierror.FieldError

	if req.PlayerID == "" {
		details = append(details, apierror.FieldError{Field: "player_id", Message: "player_id is required"})
	}
	if fe := requiredCount("runs", req.Runs, model.MaxRuns); fe != nil {
		details = append(details, *fe)
	}
	if fe := requiredCount("balls", req.Balls, model.MaxBalls); fe != nil {
		details = append(details, *fe)
	}
	if req.Fours < 0 || req.Fours > model.MaxBoundaries {
		details = append(details, countRange("fours", model.MaxBoundaries))
	}
	if req.Sixes < 0 || req.Sixes > model.MaxBoundaries {
		details = append(details, countRange("sixes", model.MaxBoundaries))
	}
	if utf8.RuneCountInString(req.Opposition) > model.MaxNameLength {
		details = append(details, apierror.FieldError{Field: "opposition", Message: "opposition must be at most 100 characters"})
	}
	if utf8.RuneCountInString(req.Venue) > model.MaxNameLength {
		details = append(details, apierror.FieldError{Field: "venue", Message: "venue must be at most 100 characters"})
	}
	return details
}

func requiredCount(field string, value *int, max int) *apierror.FieldError {
	if value == nil {
		return &apierror.FieldError{Field: field, Message: field + " is required"}
	}
	if *value < 0 || *value > max {
		fe := countRange(field, max)
		return &fe
	}
	return nil
}

func countRange(field string, max int) apierror.FieldError {
	return apierror.FieldError{Field: field, Message: fmt.Sprintf("%s must be between 0 and %d", field, max)}
}

// Create handles POST /api/v1/innings
func (h *InningsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateInningsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, apierror.BadRequest("invalid JSON body"))
		return
	}
	defer r.Body.Close()

	if details := req.Validate(); len(details) > 0 {
		response.Error(w, apierror.ValidationError("invalid innings payload", details...))
		return
	}

	playerKey, err := oid.Parse(req.PlayerID)
	if err != nil {
		response.Error(w, apierror.BadRequest("Invalid ID format"))
		return
	}

	innings := model.Innings{
		Runs:       *req.Runs,
		Balls:      *req.Balls,
		Fours:      req.Fours,
		Sixes:      req.Sixes,
		Out:        req.Out == nil || *req.Out,
		Opposition: req.Opposition,
		Venue:      req.Venue,
	}
	if req.Date != nil {
		innings.Date = *req.Date
	}

	id, err := h.scorecard.CreateInnings(r.Context(), playerKey, innings)
	if err != nil {
		response.Error(w, storeError(err))
		return
	}

	response.Created(w, map[string]string{"id": id})
}
