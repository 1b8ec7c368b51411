package handler

import (
	"encoding/json"
	"net/http"
	"unicode/utf8"

	"cricket-scorecard-api/internal/model"
	"cricket-scorecard-api/internal/service"
	"cricket-scorecard-api/pkg/apierror"
	"cricket-scorecard-api/pkg/oid"
	"cricket-scorecard-api/pkg/response"

	"github.com/go-chi/chi/v5"
)

// PlayerHandler handles player-related HTTP requests.
type PlayerHandler struct {
	scorecard *service.ScorecardService
}

// NewPlayerHandler creates a new player handler.
func NewPlayerHandler(scorecard *service.ScorecardService) *PlayerHandler {
	return &PlayerHandler{scorecard: scorecard}
}

// CreatePlayerRequest is the POST /api/v1/players payload.
type CreatePlayerRequest struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

// Validate checks required fields and length bounds.
func (req *CreatePlayerRequest) Validate() []apierror.FieldError {
	var details []apierror.FieldError

	if req.Name == "" {
		details = append(details, apierror.FieldError{Field: "name", Message: "name is required"})
	} else if utf8.RuneCountInString(req.Name) > model.MaxNameLength {
		details = append(details, apierror.FieldError{Field: "name", Message: "name must be at most 100 characters"})
	}
	if utf8.RuneCountInString(req.Role) > model.MaxNameLength {
		details = append(details, apierror.FieldError{Field: "role", Message: "role must be at most 100 characters"})
	}
	return details
}

// Create handles POST /api/v1/players
func (h *PlayerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreatePlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, apierror.BadRequest("invalid JSON body"))
		return
	}
	defer r.Body.Close()

	if details := req.Validate(); len(details) > 0 {
		response.Error(w, apierror.ValidationError("invalid player payload", details...))
		return
	}

	player, err := h.scorecard.CreatePlayer(r.Context(), model.Player{Name: req.Name, Role: req.Role})
	if err != nil {
		response.Error(w, storeError(err))
		return
	}

	response.Created(w, player)
}

// List handles GET /api/v1/players
func (h *PlayerHandler) List(w http.ResponseWriter, r *http.Request) {
	players, err := h.scorecard.ListPlayers(r.Context())
	if err != nil {
		response.Error(w, storeError(err))
		return
	}

	response.OK(w, players)
}

// Get handles GET /api/v1/players/{playerID}
func (h *PlayerHandler) Get(w http.ResponseWriter, r *http.Request) {
	key, err := oid.Parse(chi.URLParam(r, "playerID"))
	if err != nil {
		response.Error(w, apierror.BadRequest("Invalid ID format"))
		return
	}

	detail, err := h.scorecard.GetPlayer(r.Context(), key)
	if err != nil {
		response.Error(w, storeError(err))
		return
	}

	response.OK(w, detail)
}
