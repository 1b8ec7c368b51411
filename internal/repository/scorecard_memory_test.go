package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cricket-scorecard-api/internal/model"
	"cricket-scorecard-api/pkg/oid"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestMemoryRepository_Players(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryScorecardRepository()

	t.Run("create and get roundtrip", func(t *testing.T) {
		id, err := repo.CreatePlayer(ctx, model.Player{Name: "Virat Kohli", Role: "batsman"})
		require.NoError(t, err)
		assert.True(t, oid.IsValid(id), "generated key should be a 24-char hex id")

		got, err := repo.GetPlayer(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, id, got.ID)
		assert.Equal(t, "Virat Kohli", got.Name)
		assert.Equal(t, "batsman", got.Role)
	})

	t.Run("get unknown key", func(t *testing.T) {
		_, err := repo.GetPlayer(ctx, oid.New().Hex())
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("list preserves insertion order", func(t *testing.T) {
		repo := NewMemoryScorecardRepository()
		names := []string{"Rohit Sharma", "Steve Smith", "Joe Root"}
		for _, name := range names {
			_, err := repo.CreatePlayer(ctx, model.Player{Name: name})
			require.NoError(t, err)
		}

		players, err := repo.ListPlayers(ctx)
		require.NoError(t, err)
		require.Len(t, players, 3)
		for i, name := range names {
			assert.Equal(t, name, players[i].Name)
		}
	})
}

func TestMemoryRepository_InningsOrdering(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryScorecardRepository()

	playerID, err := repo.CreatePlayer(ctx, model.Player{Name: "Kane Williamson"})
	require.NoError(t, err)

	// Inserted out of chronological order on purpose
	dates := []string{"2023-01-01", "2023-06-01", "2023-03-01"}
	for _, d := range dates {
		_, err := repo.CreateInnings(ctx, model.Innings{
			PlayerID: playerID,
			Runs:     10,
			Balls:    10,
			Out:      true,
			Date:     day(d),
		})
		require.NoError(t, err)
	}

	t.Run("descending", func(t *testing.T) {
		innings, err := repo.ListInningsByPlayer(ctx, playerID, DateDescending)
		require.NoError(t, err)
		require.Len(t, innings, 3)
		assert.Equal(t, day("2023-06-01"), innings[0].Date)
		assert.Equal(t, day("2023-03-01"), innings[1].Date)
		assert.Equal(t, day("2023-01-01"), innings[2].Date)
	})

	t.Run("ascending", func(t *testing.T) {
		innings, err := repo.ListInningsByPlayer(ctx, playerID, DateAscending)
		require.NoError(t, err)
		require.Len(t, innings, 3)
		assert.Equal(t, day("2023-01-01"), innings[0].Date)
		assert.Equal(t, day("2023-03-01"), innings[1].Date)
		assert.Equal(t, day("2023-06-01"), innings[2].Date)
	})

	t.Run("equal dates keep insertion order", func(t *testing.T) {
		repo := NewMemoryScorecardRepository()
		playerID, err := repo.CreatePlayer(ctx, model.Player{Name: "Ben Stokes"})
		require.NoError(t, err)

		first, err := repo.CreateInnings(ctx, model.Innings{PlayerID: playerID, Runs: 1, Balls: 1, Date: day("2023-05-05")})
		require.NoError(t, err)
		second, err := repo.CreateInnings(ctx, model.Innings{PlayerID: playerID, Runs: 2, Balls: 2, Date: day("2023-05-05")})
		require.NoError(t, err)

		innings, err := repo.ListInningsByPlayer(ctx, playerID, DateAscending)
		require.NoError(t, err)
		require.Len(t, innings, 2)
		assert.Equal(t, first, innings[0].ID)
		assert.Equal(t, second, innings[1].ID)
	})

	t.Run("unknown player yields empty slice", func(t *testing.T) {
		innings, err := repo.ListInningsByPlayer(ctx, oid.New().Hex(), DateDescending)
		require.NoError(t, err)
		assert.Empty(t, innings)
	})
}

func TestMemoryRepository_CareerTotals(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryScorecardRepository()

	playerID, err := repo.CreatePlayer(ctx, model.Player{Name: "Babar Azam"})
	require.NoError(t, err)

	t.Run("no innings yields zeros", func(t *testing.T) {
		totals, err := repo.CareerTotals(ctx, playerID)
		require.NoError(t, err)
		assert.Equal(t, model.CareerTotals{}, totals)
	})

	t.Run("sums across innings", func(t *testing.T) {
		_, err := repo.CreateInnings(ctx, model.Innings{
			PlayerID: playerID, Runs: 50, Balls: 40, Fours: 6, Sixes: 1, Out: true, Date: day("2023-01-01"),
		})
		require.NoError(t, err)
		_, err = repo.CreateInnings(ctx, model.Innings{
			PlayerID: playerID, Runs: 30, Balls: 20, Fours: 2, Sixes: 2, Out: false, Date: day("2023-02-01"),
		})
		require.NoError(t, err)

		totals, err := repo.CareerTotals(ctx, playerID)
		require.NoError(t, err)
		assert.Equal(t, model.CareerTotals{
			Runs:    80,
			Balls:   60,
			Fours:   8,
			Sixes:   3,
			Innings: 2,
			Outs:    1,
		}, totals)
	})
}

func TestMemoryRepository_Stats(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryScorecardRepository()

	playerID, err := repo.CreatePlayer(ctx, model.Player{Name: "Travis Head"})
	require.NoError(t, err)
	_, err = repo.CreateInnings(ctx, model.Innings{PlayerID: playerID, Runs: 9, Balls: 12, Date: day("2024-11-01")})
	require.NoError(t, err)

	stats, err := repo.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats["total_players"])
	assert.Equal(t, 1, stats["total_innings"])
	assert.Equal(t, []string{"player", "innings"}, stats["collections"])
}
