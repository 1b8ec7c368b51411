package service

import (
	"context"

	"cricket-scorecard-api/internal/model"
	"cricket-scorecard-api/internal/repository"
	"cricket-scorecard-api/pkg/cricmath"
	"cricket-scorecard-api/pkg/oid"
)

// ListPlayers returns every player with a flat career summary. Career
// numbers are derived here on every call; nothing cached, nothing stored.
func (s *ScorecardService) ListPlayers(ctx context.Context) ([]model.PlayerSummary, error) {
	players, err := s.repo.ListPlayers(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]model.PlayerSummary, 0, len(players))
	for _, p := range players {
		totals, err := s.repo.CareerTotals(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, model.PlayerSummary{
			ID:          p.ID,
			Name:        p.Name,
			Role:        p.Role,
			CareerStats: buildCareerStats(totals),
		})
	}
	return summaries, nil
}

// GetPlayer returns the player's full scorecard with innings newest first.
func (s *ScorecardService) GetPlayer(ctx context.Context, id oid.ID) (*model.PlayerDetail, error) {
	return s.playerDetail(ctx, id, repository.DateDescending)
}

// ExportPlayer returns the player's full scorecard with innings oldest
// first, the order career exports use.
func (s *ScorecardService) ExportPlayer(ctx context.Context, id oid.ID) (*model.PlayerDetail, error) {
	return s.playerDetail(ctx, id, repository.DateAscending)
}

func (s *ScorecardService) playerDetail(ctx context.Context, id oid.ID, order repository.SortOrder) (*model.PlayerDetail, error) {
	player, err := s.repo.GetPlayer(ctx, id.Hex())
	if err != nil {
		return nil, err
	}

	innings, err := s.repo.ListInningsByPlayer(ctx, id.Hex(), order)
	if err != nil {
		return nil, err
	}

	totals, err := s.repo.CareerTotals(ctx, id.Hex())
	if err != nil {
		return nil, err
	}

	details := make([]model.InningsDetail, 0, len(innings))
	for _, in := range innings {
		details = append(details, model.InningsDetail{
			Innings:    in,
			StrikeRate: cricmath.StrikeRate(in.Runs, in.Balls),
		})
	}

	return &model.PlayerDetail{
		ID:      player.ID,
		Name:    player.Name,
		Role:    player.Role,
		Innings: details,
		Career:  buildCareerStats(totals),
	}, nil
}

// buildCareerStats derives the presentation block from raw totals.
func buildCareerStats(t model.CareerTotals) model.CareerStats {
	return model.CareerStats{
		TotalRuns:      t.Runs,
		TotalBalls:     t.Balls,
		TotalFours:     t.Fours,
		TotalSixes:     t.Sixes,
		InningsCount:   t.Innings,
		NotOuts:        t.Innings - t.Outs,
		StrikeRate:     cricmath.StrikeRate(t.Runs, t.Balls),
		BattingAverage: cricmath.BattingAverage(t.Runs, t.Outs),
	}
}
