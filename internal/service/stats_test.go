package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cricket-scorecard-api/internal/model"
	"cricket-scorecard-api/internal/repository"
	"cricket-scorecard-api/pkg/oid"
)

func TestListPlayers(t *testing.T) {
	ctx := context.Background()
	repo := newStubRepo()
	svc := NewScorecardService(repo)

	scorer := repo.addPlayer("Virat Kohli")
	debutant := repo.addPlayer("New Debutant")
	repo.innings[scorer] = []model.Innings{
		{PlayerID: scorer, Runs: 50, Balls: 40, Fours: 6, Sixes: 1, Out: true, Date: time.Now()},
		{PlayerID: scorer, Runs: 30, Balls: 20, Fours: 2, Sixes: 2, Out: false, Date: time.Now()},
	}

	summaries, err := svc.ListPlayers(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	t.Run("career block is derived from totals", func(t *testing.T) {
		got := summaries[0]
		assert.Equal(t, scorer, got.ID)
		assert.Equal(t, 80, got.TotalRuns)
		assert.Equal(t, 60, got.TotalBalls)
		assert.Equal(t, 8, got.TotalFours)
		assert.Equal(t, 3, got.TotalSixes)
		assert.Equal(t, 2, got.InningsCount)
		assert.Equal(t, 1, got.NotOuts)
		assert.InDelta(t, 133.33, got.StrikeRate, 0.0001)
		assert.InDelta(t, 80.0, got.BattingAverage, 0.0001)
	})

	t.Run("player with no innings gets zeros", func(t *testing.T) {
		got := summaries[1]
		assert.Equal(t, debutant, got.ID)
		assert.Zero(t, got.TotalRuns)
		assert.Zero(t, got.InningsCount)
		assert.Equal(t, 0.0, got.StrikeRate)
		assert.Equal(t, 0.0, got.BattingAverage)
	})
}

func TestGetPlayer(t *testing.T) {
	ctx := context.Background()
	repo := newStubRepo()
	svc := NewScorecardService(repo)

	playerID := repo.addPlayer("Kane Williamson")
	repo.innings[playerID] = []model.Innings{
		{PlayerID: playerID, Runs: 33, Balls: 21, Out: true, Date: time.Now()},
	}

	key, err := oid.Parse(playerID)
	require.NoError(t, err)
	detail, err := svc.GetPlayer(ctx, key)
	require.NoError(t, err)

	assert.Equal(t, repository.DateDescending, repo.lastListOrder, "dashboard view lists newest first")
	assert.Equal(t, "Kane Williamson", detail.Name)
	require.Len(t, detail.Innings, 1)
	assert.InDelta(t, 157.14, detail.Innings[0].StrikeRate, 0.0001)
	assert.InDelta(t, 157.14, detail.Career.StrikeRate, 0.0001)
	assert.Equal(t, 1, detail.Career.InningsCount)
}

func TestGetPlayer_NotFound(t *testing.T) {
	svc := NewScorecardService(newStubRepo())

	_, err := svc.GetPlayer(context.Background(), oid.New())
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestExportPlayer(t *testing.T) {
	ctx := context.Background()
	repo := newStubRepo()
	svc := NewScorecardService(repo)

	playerID := repo.addPlayer("Ben Stokes")
	key, err := oid.Parse(playerID)
	require.NoError(t, err)

	_, err = svc.ExportPlayer(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, repository.DateAscending, repo.lastListOrder, "exports list oldest first")
}

func TestPlayerDetail_StoreFailure(t *testing.T) {
	repo := newStubRepo()
	playerID := repo.addPlayer("Babar Azam")
	repo.err = repository.ErrUnavailable
	svc := NewScorecardService(repo)

	key, err := oid.Parse(playerID)
	require.NoError(t, err)
	_, err = svc.GetPlayer(context.Background(), key)
	assert.ErrorIs(t, err, repository.ErrUnavailable)
}
