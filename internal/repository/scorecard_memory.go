package repository

import (
	"context"
	"log"
	"sync"

	"cricket-scorecard-api/internal/model"
	"cricket-scorecard-api/pkg/oid"
)

// MemoryScorecardRepository is an in-memory ScorecardRepository. It backs
// dev mode and the test suites; records live for the process lifetime only.
type MemoryScorecardRepository struct {
	mu              sync.RWMutex
	players         map[string]model.Player
	playerOrder     []string
	innings         map[string]model.Innings
	inningsByPlayer map[string][]string
}

// NewMemoryScorecardRepository creates an empty in-memory store.
func NewMemoryScorecardRepository() *MemoryScorecardRepository {
	log.Println("[MemoryRepo] Initialized in-memory store")
	return &MemoryScorecardRepository{
		players:         make(map[string]model.Player),
		innings:         make(map[string]model.Innings),
		inningsByPlayer: make(map[string][]string),
	}
}

// CreatePlayer stores a new player under a generated key.
func (r *MemoryScorecardRepository) CreatePlayer(_ context.Context, player model.Player) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := oid.New().Hex()
	player.ID = id
	r.players[id] = player
	r.playerOrder = append(r.playerOrder, id)
	return id, nil
}

// GetPlayer retrieves a player by key.
func (r *MemoryScorecardRepository) GetPlayer(_ context.Context, id string) (*model.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	player, ok := r.players[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &player, nil
}

// ListPlayers returns every player in insertion order.
func (r *MemoryScorecardRepository) ListPlayers(_ context.Context) ([]model.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	players := make([]model.Player, 0, len(r.playerOrder))
	for _, id := range r.playerOrder {
		players = append(players, r.players[id])
	}
	return players, nil
}

// CreateInnings stores a new innings under a generated key.
func (r *MemoryScorecardRepository) CreateInnings(_ context.Context, innings model.Innings) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := oid.New().Hex()
	innings.ID = id
	r.innings[id] = innings
	r.inningsByPlayer[innings.PlayerID] = append(r.inningsByPlayer[innings.PlayerID], id)
	return id, nil
}

// ListInningsByPlayer returns the player's innings ordered by match date.
func (r *MemoryScorecardRepository) ListInningsByPlayer(_ context.Context, playerID string, order SortOrder) ([]model.Innings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := r.inningsByPlayer[playerID]
	innings := make([]model.Innings, 0, len(ids))
	for _, id := range ids {
		innings = append(innings, r.innings[id])
	}
	sortInningsByDate(innings, order)
	return innings, nil
}

// CareerTotals reduces the player's innings to raw career counts.
func (r *MemoryScorecardRepository) CareerTotals(_ context.Context, playerID string) (model.CareerTotals, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := r.inningsByPlayer[playerID]
	innings := make([]model.Innings, 0, len(ids))
	for _, id := range ids {
		innings = append(innings, r.innings[id])
	}
	return reduceTotals(innings), nil
}

// Ping always succeeds for the in-memory store.
func (r *MemoryScorecardRepository) Ping(_ context.Context) error {
	return nil
}

// Stats returns record counts.
func (r *MemoryScorecardRepository) Stats(_ context.Context) (map[string]interface{}, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return map[string]interface{}{
		"store_type":    "memory",
		"total_players": len(r.players),
		"total_innings": len(r.innings),
		"collections":   []string{KindPlayer.Collection(), KindInnings.Collection()},
	}, nil
}

// Close is a no-op for the in-memory store.
func (r *MemoryScorecardRepository) Close() error {
	return nil
}

var _ ScorecardRepository = (*MemoryScorecardRepository)(nil)
