package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"cricket-scorecard-api/internal/model"
	"cricket-scorecard-api/pkg/oid"

	_ "modernc.org/sqlite" // Pure Go SQLite driver - no CGO required
)

// SQLiteScorecardRepository implements ScorecardRepository using SQLite.
// Thread-safe with WAL mode for high-concurrency reads.
type SQLiteScorecardRepository struct {
	db *sql.DB
	mu sync.RWMutex
}

// NewSQLiteScorecardRepository creates a new SQLite scorecard repository.
// dbPath is the path to the SQLite database file (e.g., "./data/scorecard.db")
func NewSQLiteScorecardRepository(dbPath string) (*SQLiteScorecardRepository, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	// Open with WAL mode and other optimizations
	dsn := fmt.Sprintf("%s?_journal_mode=WAL&_synchronous=NORMAL&_cache_size=10000&_busy_timeout=5000", dbPath)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite: %w", err)
	}

	// SQLite connection pool settings
	db.SetMaxOpenConns(1) // SQLite only supports 1 writer
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0) // Keep connection alive

	// Create tables if not exists
	if err := createSQLiteTables(db); err != nil {
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	log.Printf("[SQLiteScorecardRepository] Initialized with database: %s", dbPath)
	return &SQLiteScorecardRepository{db: db}, nil
}

// createSQLiteTables creates the player and innings tables.
func createSQLiteTables(db *sql.DB) error {
	query := fmt.Sprintf(`
	CREATE TABLE IF NOT EXISTS %[1]s (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT ''
	);
	CREATE TABLE IF NOT EXISTS %[2]s (
		id TEXT PRIMARY KEY,
		player_id TEXT NOT NULL,
		runs INTEGER NOT NULL,
		balls INTEGER NOT NULL,
		fours INTEGER NOT NULL,
		sixes INTEGER NOT NULL,
		is_out INTEGER NOT NULL,
		opposition TEXT NOT NULL DEFAULT '',
		venue TEXT NOT NULL DEFAULT '',
		date DATETIME NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_innings_player ON %[2]s(player_id);
	CREATE INDEX IF NOT EXISTS idx_innings_date ON %[2]s(date);
	`, playerCollection, inningsCollection)
	_, err := db.Exec(query)
	return err
}

// CreatePlayer inserts a new player and returns its generated key.
func (r *SQLiteScorecardRepository) CreatePlayer(ctx context.Context, player model.Player) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := oid.New().Hex()
	query := fmt.Sprintf(`INSERT INTO %s (id, name, role) VALUES (?, ?, ?)`, playerCollection)

	if _, err := r.db.ExecContext(ctx, query, id, player.Name, player.Role); err != nil {
		return "", unavailable("insert player", err)
	}
	return id, nil
}

// GetPlayer retrieves a player by key.
func (r *SQLiteScorecardRepository) GetPlayer(ctx context.Context, id string) (*model.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	query := fmt.Sprintf(`SELECT id, name, role FROM %s WHERE id = ?`, playerCollection)

	var player model.Player
	err := r.db.QueryRowContext(ctx, query, id).Scan(&player.ID, &player.Name, &player.Role)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, unavailable("get player", err)
	}
	return &player, nil
}

// ListPlayers returns every player in insertion order.
func (r *SQLiteScorecardRepository) ListPlayers(ctx context.Context) ([]model.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	query := fmt.Sprintf(`SELECT id, name, role FROM %s`, playerCollection)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, unavailable("list players", err)
	}
	defer rows.Close()

	players := make([]model.Player, 0)
	for rows.Next() {
		var player model.Player
		if err := rows.Scan(&player.ID, &player.Name, &player.Role); err != nil {
			return nil, unavailable("scan player row", err)
		}
		players = append(players, player)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable("iterate players", err)
	}
	return players, nil
}

// CreateInnings inserts a new innings and returns its generated key.
func (r *SQLiteScorecardRepository) CreateInnings(ctx context.Context, innings model.Innings) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := oid.New().Hex()
	query := fmt.Sprintf(`
		INSERT INTO %s (id, player_id, runs, balls, fours, sixes, is_out, opposition, venue, date)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`, inningsCollection)

	_, err := r.db.ExecContext(ctx, query,
		id, innings.PlayerID, innings.Runs, innings.Balls, innings.Fours, innings.Sixes,
		innings.Out, innings.Opposition, innings.Venue, innings.Date)
	if err != nil {
		return "", unavailable("insert innings", err)
	}
	return id, nil
}

// ListInningsByPlayer returns the player's innings ordered by match date.
func (r *SQLiteScorecardRepository) ListInningsByPlayer(ctx context.Context, playerID string, order SortOrder) ([]model.Innings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	dir := "DESC"
	if order == DateAscending {
		dir = "ASC"
	}
	query := fmt.Sprintf(`
		SELECT id, player_id, runs, balls, fours, sixes, is_out, opposition, venue, date
		FROM %s WHERE player_id = ? ORDER BY date %s`, inningsCollection, dir)

	rows, err := r.db.QueryContext(ctx, query, playerID)
	if err != nil {
		return nil, unavailable("list innings", err)
	}
	defer rows.Close()

	return scanInningsRows(rows)
}

// CareerTotals reduces the player's innings to raw career counts in SQL.
func (r *SQLiteScorecardRepository) CareerTotals(ctx context.Context, playerID string) (model.CareerTotals, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	query := fmt.Sprintf(`
		SELECT COALESCE(SUM(runs), 0), COALESCE(SUM(balls), 0),
		       COALESCE(SUM(fours), 0), COALESCE(SUM(sixes), 0),
		       COUNT(*), COALESCE(SUM(CASE WHEN is_out THEN 1 ELSE 0 END), 0)
		FROM %s WHERE player_id = ?`, inningsCollection)

	var totals model.CareerTotals
	err := r.db.QueryRowContext(ctx, query, playerID).Scan(
		&totals.Runs, &totals.Balls, &totals.Fours, &totals.Sixes, &totals.Innings, &totals.Outs)
	if err != nil {
		return model.CareerTotals{}, unavailable("aggregate career totals", err)
	}
	return totals, nil
}

// Ping verifies the database connection.
func (r *SQLiteScorecardRepository) Ping(ctx context.Context) error {
	if err := r.db.PingContext(ctx); err != nil {
		return unavailable("ping", err)
	}
	return nil
}

// Stats returns statistics about the scorecard database.
func (r *SQLiteScorecardRepository) Stats(ctx context.Context) (map[string]interface{}, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stats := map[string]interface{}{
		"store_type":  "sqlite",
		"collections": []string{playerCollection, inningsCollection},
	}

	var players, innings int64
	if err := r.db.QueryRowContext(ctx, fmt.Sprintf("SELECT COUNT(*) FROM %s", playerCollection)).Scan(&players); err != nil {
		return nil, unavailable("count players", err)
	}
	if err := r.db.QueryRowContext(ctx, fmt.Sprintf("SELECT COUNT(*) FROM %s", inningsCollection)).Scan(&innings); err != nil {
		return nil, unavailable("count innings", err)
	}
	stats["total_players"] = players
	stats["total_innings"] = innings

	// Database file size (approximate from page count)
	var pageCount, pageSize int64
	r.db.QueryRowContext(ctx, "PRAGMA page_count").Scan(&pageCount)
	r.db.QueryRowContext(ctx, "PRAGMA page_size").Scan(&pageSize)
	stats["db_size_bytes"] = pageCount * pageSize

	return stats, nil
}

// Close closes the database connection.
func (r *SQLiteScorecardRepository) Close() error {
	return r.db.Close()
}

// Ensure SQLiteScorecardRepository implements ScorecardRepository
var _ ScorecardRepository = (*SQLiteScorecardRepository)(nil)
