package service

import (
	"context"
	"time"

	"cricket-scorecard-api/internal/model"
	"cricket-scorecard-api/internal/repository"
	"cricket-scorecard-api/pkg/oid"
)

// ScorecardService handles player and innings business logic.
type ScorecardService struct {
	repo repository.ScorecardRepository
}

// NewScorecardService creates a new scorecard service.
// Returns nil if repo is nil (required dependency).
func NewScorecardService(repo repository.ScorecardRepository) *ScorecardService {
	if repo == nil {
		return nil
	}
	return &ScorecardService{repo: repo}
}

// CreatePlayer registers a new player and returns it with its generated key.
func (s *ScorecardService) CreatePlayer(ctx context.Context, player model.Player) (*model.Player, error) {
	id, err := s.repo.CreatePlayer(ctx, player)
	if err != nil {
		return nil, err
	}
	player.ID = id
	return &player, nil
}

// CreateInnings records an innings against an existing player. The player
// reference is verified before anything is written; a missing player aborts
// the creation with repository.ErrNotFound and no innings is stored. A zero
// date defaults to the current UTC time.
func (s *ScorecardService) CreateInnings(ctx context.Context, playerID oid.ID, innings model.Innings) (string, error) {
	if _, err := s.repo.GetPlayer(ctx, playerID.Hex()); err != nil {
		return "", err
	}

	innings.PlayerID = playerID.Hex()
	if innings.Date.IsZero() {
		innings.Date = time.Now().UTC()
	}
	return s.repo.CreateInnings(ctx, innings)
}
