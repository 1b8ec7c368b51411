package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"cricket-scorecard-api/internal/model"
	"cricket-scorecard-api/pkg/oid"

	_ "github.com/go-sql-driver/mysql" // MySQL driver
)

// MySQLScorecardRepository implements ScorecardRepository using MySQL.
type MySQLScorecardRepository struct {
	db *sql.DB
}

// NewMySQLScorecardRepository creates a new MySQL scorecard repository.
// dsn format: "user:password@tcp(host:port)/dbname?parseTime=true"
// parseTime must be enabled so DATETIME columns scan into time.Time.
func NewMySQLScorecardRepository(dsn string) (*MySQLScorecardRepository, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open MySQL: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping MySQL: %w", err)
	}

	// Create tables if not exists
	if err := createMySQLTables(db); err != nil {
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	log.Printf("[MySQLScorecardRepository] Initialized with pool: max=%d, idle=%d", 25, 10)
	return &MySQLScorecardRepository{db: db}, nil
}

// createMySQLTables creates the player and innings tables. MySQL lacks
// CREATE INDEX IF NOT EXISTS, so indexes are declared inline.
func createMySQLTables(db *sql.DB) error {
	statements := []string{
		fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			id CHAR(24) PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			role VARCHAR(100) NOT NULL DEFAULT ''
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`, playerCollection),
		fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			id CHAR(24) PRIMARY KEY,
			player_id CHAR(24) NOT NULL,
			runs INT NOT NULL,
			balls INT NOT NULL,
			fours INT NOT NULL,
			sixes INT NOT NULL,
			is_out BOOLEAN NOT NULL,
			opposition VARCHAR(100) NOT NULL DEFAULT '',
			venue VARCHAR(100) NOT NULL DEFAULT '',
			date DATETIME NOT NULL,
			INDEX idx_innings_player (player_id),
			INDEX idx_innings_date (date)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`, inningsCollection),
	}
	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// CreatePlayer inserts a new player and returns its generated key.
func (r *MySQLScorecardRepository) CreatePlayer(ctx context.Context, player model.Player) (string, error) {
	id := oid.New().Hex()
	query := fmt.Sprintf(`INSERT INTO %s (id, name, role) VALUES (?, ?, ?)`, playerCollection)

	if _, err := r.db.ExecContext(ctx, query, id, player.Name, player.Role); err != nil {
		return "", unavailable("insert player", err)
	}
	return id, nil
}

// GetPlayer retrieves a player by key.
func (r *MySQLScorecardRepository) GetPlayer(ctx context.Context, id string) (*model.Player, error) {
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
func (r *MySQLScorecardRepository) ListPlayers(ctx context.Context) ([]model.Player, error) {
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
func (r *MySQLScorecardRepository) CreateInnings(ctx context.Context, innings model.Innings) (string, error) {
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
func (r *MySQLScorecardRepository) ListInningsByPlayer(ctx context.Context, playerID string, order SortOrder) ([]model.Innings, error) {
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
func (r *MySQLScorecardRepository) CareerTotals(ctx context.Context, playerID string) (model.CareerTotals, error) {
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
func (r *MySQLScorecardRepository) Ping(ctx context.Context) error {
	if err := r.db.PingContext(ctx); err != nil {
		return unavailable("ping", err)
	}
	return nil
}

// Stats returns statistics about the scorecard database.
func (r *MySQLScorecardRepository) Stats(ctx context.Context) (map[string]interface{}, error) {
	stats := map[string]interface{}{
		"store_type":  "mysql",
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

	return stats, nil
}

// Close closes the database connection pool.
func (r *MySQLScorecardRepository) Close() error {
	return r.db.Close()
}

// Ensure MySQLScorecardRepository implements ScorecardRepository
var _ ScorecardRepository = (*MySQLScorecardRepository)(nil)
