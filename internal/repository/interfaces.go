package repository

import (
	"context"
	"fmt"

	"cricket-scorecard-api/internal/model"
)

// StoreError is a sentinel error type for store-level failures. Backends
// translate driver-specific errors into these so callers can match with
// errors.Is regardless of which backend is configured.
type StoreError string

func (e StoreError) Error() string {
	return string(e)
}

const (
	// ErrNotFound indicates a well-formed key that matches no record.
	ErrNotFound StoreError = "record not found"

	// ErrUnavailable indicates the store could not be reached or a query
	// failed for reasons unrelated to the request itself.
	ErrUnavailable StoreError = "record store unavailable"
)

// unavailable wraps a driver error as ErrUnavailable, keeping the cause in
// the message so logs stay useful while callers match only the sentinel.
func unavailable(action string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrUnavailable, action, err)
}

// SortOrder selects the chronological ordering for innings listings.
type SortOrder int

const (
	// DateDescending lists the most recent innings first.
	DateDescending SortOrder = iota
	// DateAscending lists the oldest innings first.
	DateAscending
)

// ScorecardRepository defines record access for players and their innings.
type ScorecardRepository interface {
	// CreatePlayer persists a new player and returns its generated key.
	CreatePlayer(ctx context.Context, player model.Player) (string, error)

	// GetPlayer retrieves a player by key. Returns ErrNotFound if no
	// player has that key.
	GetPlayer(ctx context.Context, id string) (*model.Player, error)

	// ListPlayers returns every player in insertion order.
	ListPlayers(ctx context.Context) ([]model.Player, error)

	// CreateInnings persists a new innings and returns its generated key.
	// The player reference is not checked here; callers validate it first.
	CreateInnings(ctx context.Context, innings model.Innings) (string, error)

	// ListInningsByPlayer returns all innings recorded against the player,
	// ordered by match date. A player with no innings yields an empty
	// slice, not an error.
	ListInningsByPlayer(ctx context.Context, playerID string, order SortOrder) ([]model.Innings, error)

	// CareerTotals reduces the player's innings to raw career counts.
	// A player with no innings yields all-zero totals.
	CareerTotals(ctx context.Context, playerID string) (model.CareerTotals, error)

	// Ping verifies the store is reachable.
	Ping(ctx context.Context) error

	// Stats returns introspection data about the store contents.
	Stats(ctx context.Context) (map[string]interface{}, error)

	// Close releases the underlying connection.
	Close() error
}
