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

// stubRepo is a hand-rolled ScorecardRepository double. Fields configure
// canned responses; counters record interactions.
type stubRepo struct {
	players     map[string]model.Player
	playerOrder []string
	innings     map[string][]model.Innings

	err error // when set, every method fails with it

	createInningsCalls int
	lastListOrder      repository.SortOrder
}

func newStubRepo() *stubRepo {
	return &stubRepo{
		players: make(map[string]model.Player),
		innings: make(map[string][]model.Innings),
	}
}

func (r *stubRepo) addPlayer(name string) string {
	id := oid.New().Hex()
	r.players[id] = model.Player{ID: id, Name: name}
	r.playerOrder = append(r.playerOrder, id)
	return id
}

func (r *stubRepo) CreatePlayer(_ context.Context, p model.Player) (string, error) {
	if r.err != nil {
		return "", r.err
	}
	id := oid.New().Hex()
	p.ID = id
	r.players[id] = p
	r.playerOrder = append(r.playerOrder, id)
	return id, nil
}

func (r *stubRepo) GetPlayer(_ context.Context, id string) (*model.Player, error) {
	if r.err != nil {
		return nil, r.err
	}
	p, ok := r.players[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &p, nil
}

func (r *stubRepo) ListPlayers(_ context.Context) ([]model.Player, error) {
	if r.err != nil {
		return nil, r.err
	}
	players := make([]model.Player, 0, len(r.playerOrder))
	for _, id := range r.playerOrder {
		players = append(players, r.players[id])
	}
	return players, nil
}

func (r *stubRepo) CreateInnings(_ context.Context, in model.Innings) (string, error) {
	if r.err != nil {
		return "", r.err
	}
	r.createInningsCalls++
	id := oid.New().Hex()
	in.ID = id
	r.innings[in.PlayerID] = append(r.innings[in.PlayerID], in)
	return id, nil
}

func (r *stubRepo) ListInningsByPlayer(_ context.Context, playerID string, order repository.SortOrder) ([]model.Innings, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.lastListOrder = order
	return r.innings[playerID], nil
}

func (r *stubRepo) CareerTotals(_ context.Context, playerID string) (model.CareerTotals, error) {
	if r.err != nil {
		return model.CareerTotals{}, r.err
	}
	var t model.CareerTotals
	for _, in := range r.innings[playerID] {
		t.Runs += in.Runs
		t.Balls += in.Balls
		t.Fours += in.Fours
		t.Sixes += in.Sixes
		t.Innings++
		if in.Out {
			t.Outs++
		}
	}
	return t, nil
}

func (r *stubRepo) Ping(_ context.Context) error { return r.err }

func (r *stubRepo) Stats(_ context.Context) (map[string]interface{}, error) {
	return map[string]interface{}{}, r.err
}

func (r *stubRepo) Close() error { return nil }

var _ repository.ScorecardRepository = (*stubRepo)(nil)

func TestNewScorecardService(t *testing.T) {
	assert.Nil(t, NewScorecardService(nil))
	assert.NotNil(t, NewScorecardService(newStubRepo()))
}

func TestCreatePlayer(t *testing.T) {
	svc := NewScorecardService(newStubRepo())

	player, err := svc.CreatePlayer(context.Background(), model.Player{Name: "Virat Kohli", Role: "batsman"})
	require.NoError(t, err)
	assert.True(t, oid.IsValid(player.ID))
	assert.Equal(t, "Virat Kohli", player.Name)
	assert.Equal(t, "batsman", player.Role)
}

func TestCreateInnings(t *testing.T) {
	ctx := context.Background()

	t.Run("missing player writes nothing", func(t *testing.T) {
		repo := newStubRepo()
		svc := NewScorecardService(repo)

		_, err := svc.CreateInnings(ctx, oid.New(), model.Innings{Runs: 50, Balls: 40})
		assert.ErrorIs(t, err, repository.ErrNotFound)
		assert.Zero(t, repo.createInningsCalls, "nothing may be written when the player is missing")
	})

	t.Run("sets the player reference", func(t *testing.T) {
		repo := newStubRepo()
		svc := NewScorecardService(repo)
		playerID := repo.addPlayer("Rohit Sharma")

		key, err := oid.Parse(playerID)
		require.NoError(t, err)
		_, err = svc.CreateInnings(ctx, key, model.Innings{Runs: 50, Balls: 40, Date: time.Now()})
		require.NoError(t, err)

		require.Len(t, repo.innings[playerID], 1)
		assert.Equal(t, playerID, repo.innings[playerID][0].PlayerID)
	})

	t.Run("defaults a missing date to now UTC", func(t *testing.T) {
		repo := newStubRepo()
		svc := NewScorecardService(repo)
		playerID := repo.addPlayer("Steve Smith")

		key, err := oid.Parse(playerID)
		require.NoError(t, err)
		_, err = svc.CreateInnings(ctx, key, model.Innings{Runs: 10, Balls: 8})
		require.NoError(t, err)

		stored := repo.innings[playerID][0]
		assert.WithinDuration(t, time.Now().UTC(), stored.Date, time.Minute)
		assert.Equal(t, time.UTC, stored.Date.Location())
	})

	t.Run("keeps a provided date", func(t *testing.T) {
		repo := newStubRepo()
		svc := NewScorecardService(repo)
		playerID := repo.addPlayer("Joe Root")

		date := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)
		key, err := oid.Parse(playerID)
		require.NoError(t, err)
		_, err = svc.CreateInnings(ctx, key, model.Innings{Runs: 10, Balls: 8, Date: date})
		require.NoError(t, err)

		assert.Equal(t, date, repo.innings[playerID][0].Date)
	})

	t.Run("propagates store failures", func(t *testing.T) {
		repo := newStubRepo()
		repo.err = repository.ErrUnavailable
		svc := NewScorecardService(repo)

		_, err := svc.CreateInnings(ctx, oid.New(), model.Innings{Runs: 1, Balls: 1})
		assert.ErrorIs(t, err, repository.ErrUnavailable)
	})
}
