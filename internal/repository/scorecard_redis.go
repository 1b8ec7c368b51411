package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"cricket-scorecard-api/internal/model"
	"cricket-scorecard-api/pkg/oid"

	"github.com/redis/go-redis/v9"
)

// RedisScorecardConfig holds connection settings for the redis store.
type RedisScorecardConfig struct {
	Addr     string
	Password string
	DB       int
}

// RedisScorecardRepository implements ScorecardRepository on redis. Records
// are JSON documents under per-kind keys; list keys preserve insertion order
// and double as the player-to-innings index. Keys carry no TTL: this is the
// primary store, not a cache.
type RedisScorecardRepository struct {
	client *redis.Client
}

// NewRedisScorecardRepository creates a redis-backed scorecard repository.
func NewRedisScorecardRepository(cfg RedisScorecardConfig) (*RedisScorecardRepository, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     20,
		MinIdleConns: 5,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	log.Printf("[RedisScorecardRepository] Connected - DB:%d", cfg.DB)
	return &RedisScorecardRepository{client: client}, nil
}

func recordKey(kind Kind, id string) string {
	return fmt.Sprintf("cricket:%s:%s", kind.Collection(), id)
}

func playersIndexKey() string {
	return fmt.Sprintf("cricket:%s:ids", playerCollection)
}

func inningsIndexKey() string {
	return fmt.Sprintf("cricket:%s:ids", inningsCollection)
}

func inningsByPlayerKey(playerID string) string {
	return fmt.Sprintf("cricket:%s:by_player:%s", inningsCollection, playerID)
}

// CreatePlayer stores a player document and appends its id to the index list.
func (r *RedisScorecardRepository) CreatePlayer(ctx context.Context, player model.Player) (string, error) {
	id := oid.New().Hex()
	player.ID = id

	data, err := json.Marshal(player)
	if err != nil {
		return "", unavailable("marshal player", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, recordKey(KindPlayer, id), data, 0)
	pipe.RPush(ctx, playersIndexKey(), id)
	if _, err := pipe.Exec(ctx); err != nil {
		return "", unavailable("store player", err)
	}
	return id, nil
}

// GetPlayer retrieves a player document by key.
func (r *RedisScorecardRepository) GetPlayer(ctx context.Context, id string) (*model.Player, error) {
	data, err := r.client.Get(ctx, recordKey(KindPlayer, id)).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, unavailable("get player", err)
	}

	var player model.Player
	if err := json.Unmarshal(data, &player); err != nil {
		return nil, unavailable("decode player", err)
	}
	return &player, nil
}

// ListPlayers returns every player in insertion order.
func (r *RedisScorecardRepository) ListPlayers(ctx context.Context) ([]model.Player, error) {
	ids, err := r.client.LRange(ctx, playersIndexKey(), 0, -1).Result()
	if err != nil {
		return nil, unavailable("list player ids", err)
	}

	players := make([]model.Player, 0, len(ids))
	if len(ids) == 0 {
		return players, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = recordKey(KindPlayer, id)
	}
	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, unavailable("fetch players", err)
	}

	for _, v := range values {
		raw, ok := v.(string)
		if !ok {
			// Index entry with no document; skip rather than fail the listing
			continue
		}
		var player model.Player
		if err := json.Unmarshal([]byte(raw), &player); err != nil {
			return nil, unavailable("decode player", err)
		}
		players = append(players, player)
	}
	return players, nil
}

// CreateInnings stores an innings document and indexes it under its player.
func (r *RedisScorecardRepository) CreateInnings(ctx context.Context, innings model.Innings) (string, error) {
	id := oid.New().Hex()
	innings.ID = id

	data, err := json.Marshal(innings)
	if err != nil {
		return "", unavailable("marshal innings", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, recordKey(KindInnings, id), data, 0)
	pipe.RPush(ctx, inningsIndexKey(), id)
	pipe.RPush(ctx, inningsByPlayerKey(innings.PlayerID), id)
	if _, err := pipe.Exec(ctx); err != nil {
		return "", unavailable("store innings", err)
	}
	return id, nil
}

// ListInningsByPlayer returns the player's innings ordered by match date.
func (r *RedisScorecardRepository) ListInningsByPlayer(ctx context.Context, playerID string, order SortOrder) ([]model.Innings, error) {
	innings, err := r.playerInnings(ctx, playerID)
	if err != nil {
		return nil, err
	}
	sortInningsByDate(innings, order)
	return innings, nil
}

// CareerTotals reduces the player's innings to raw career counts in-process.
func (r *RedisScorecardRepository) CareerTotals(ctx context.Context, playerID string) (model.CareerTotals, error) {
	innings, err := r.playerInnings(ctx, playerID)
	if err != nil {
		return model.CareerTotals{}, err
	}
	return reduceTotals(innings), nil
}

// playerInnings fetches the player's innings documents in insertion order.
func (r *RedisScorecardRepository) playerInnings(ctx context.Context, playerID string) ([]model.Innings, error) {
	ids, err := r.client.LRange(ctx, inningsByPlayerKey(playerID), 0, -1).Result()
	if err != nil {
		return nil, unavailable("list innings ids", err)
	}

	innings := make([]model.Innings, 0, len(ids))
	if len(ids) == 0 {
		return innings, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = recordKey(KindInnings, id)
	}
	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, unavailable("fetch innings", err)
	}

	for _, v := range values {
		raw, ok := v.(string)
		if !ok {
			continue
		}
		var in model.Innings
		if err := json.Unmarshal([]byte(raw), &in); err != nil {
			return nil, unavailable("decode innings", err)
		}
		innings = append(innings, in)
	}
	return innings, nil
}

// Ping verifies the redis connection.
func (r *RedisScorecardRepository) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return unavailable("ping", err)
	}
	return nil
}

// Stats returns statistics about the scorecard keyspace.
func (r *RedisScorecardRepository) Stats(ctx context.Context) (map[string]interface{}, error) {
	stats := map[string]interface{}{
		"store_type":  "redis",
		"collections": []string{playerCollection, inningsCollection},
	}

	players, err := r.client.LLen(ctx, playersIndexKey()).Result()
	if err != nil {
		return nil, unavailable("count players", err)
	}
	innings, err := r.client.LLen(ctx, inningsIndexKey()).Result()
	if err != nil {
		return nil, unavailable("count innings", err)
	}
	stats["total_players"] = players
	stats["total_innings"] = innings

	return stats, nil
}

// Close closes the redis client.
func (r *RedisScorecardRepository) Close() error {
	return r.client.Close()
}

// Ensure RedisScorecardRepository implements ScorecardRepository
var _ ScorecardRepository = (*RedisScorecardRepository)(nil)
