package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite"

	"github.com/flitgame/flit-server/internal/atlas"
)

// SQLiteDB implements the DB interface using SQLite.
type SQLiteDB struct {
	db *sql.DB
}

// NewSQLiteDB opens (or creates) the database at path. Use ":memory:"
// for tests.
func NewSQLiteDB(path string) (*SQLiteDB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// WAL keeps readers (leaderboards) from blocking result writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return &SQLiteDB{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteDB) Close() error {
	return s.db.Close()
}

// Migrate creates the schema. Every statement is idempotent so the
// server can run it unconditionally at startup.
func (s *SQLiteDB) Migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS profiles (
			player_id TEXT PRIMARY KEY,
			display_name TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS results (
			id TEXT PRIMARY KEY,
			player_id TEXT NOT NULL,
			seed INTEGER NOT NULL,
			target_code TEXT NOT NULL,
			clue_type TEXT NOT NULL,
			hints_used INTEGER NOT NULL,
			fuel_fraction REAL NOT NULL,
			elapsed_ms INTEGER NOT NULL,
			raw_score INTEGER NOT NULL,
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_results_player ON results(player_id)`,
		`CREATE INDEX IF NOT EXISTS idx_results_created ON results(created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_results_score ON results(score DESC)`,
		`CREATE TABLE IF NOT EXISTS player_stats (
			player_id TEXT NOT NULL,
			stat TEXT NOT NULL,
			value INTEGER NOT NULL DEFAULT 0,
			PRIMARY KEY (player_id, stat)
		)`,
		`CREATE TABLE IF NOT EXISTS coin_ledger (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			player_id TEXT NOT NULL,
			delta TEXT NOT NULL,
			reason TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_ledger_player ON coin_ledger(player_id)`,
		`CREATE TABLE IF NOT EXISTS cosmetics (
			player_id TEXT NOT NULL,
			item_id TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (player_id, item_id)
		)`,
		`CREATE TABLE IF NOT EXISTS scan_runs (
			id TEXT PRIMARY KEY,
			seed_start INTEGER NOT NULL,
			seed_end INTEGER NOT NULL,
			options_json TEXT NOT NULL DEFAULT '{}',
			target_op TEXT NOT NULL DEFAULT '',
			target_val REAL NOT NULL DEFAULT 0,
			hit_count INTEGER NOT NULL DEFAULT 0,
			total_evaluated INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS scan_hits (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL,
			seed INTEGER NOT NULL,
			target_code TEXT NOT NULL,
			clue_type TEXT NOT NULL,
			difficulty REAL NOT NULL,
			FOREIGN KEY (run_id) REFERENCES scan_runs(id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_scan_hits_run ON scan_hits(run_id)`,
	}

	for _, migration := range migrations {
		if _, err := s.db.Exec(migration); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}

// SaveResult persists a verified round result.
func (s *SQLiteDB) SaveResult(res *RoundResult) error {
	if res.CreatedAt.IsZero() {
		res.CreatedAt = time.Now().UTC()
	}
	_, err := s.db.Exec(`
		INSERT INTO results (id, player_id, seed, target_code, clue_type,
			hints_used, fuel_fraction, elapsed_ms, raw_score, score, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		res.ID, res.PlayerID, res.Seed, res.TargetCode, string(res.ClueType),
		res.HintsUsed, res.FuelFraction, res.ElapsedMs, res.RawScore, res.Score,
		res.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to save result: %w", err)
	}
	return nil
}

// GetResult fetches one result by ID.
func (s *SQLiteDB) GetResult(id string) (*RoundResult, error) {
	row := s.db.QueryRow(`
		SELECT id, player_id, seed, target_code, clue_type, hints_used,
			fuel_fraction, elapsed_ms, raw_score, score, created_at
		FROM results WHERE id = ?`, id)

	var res RoundResult
	var clueType, createdAt string
	err := row.Scan(&res.ID, &res.PlayerID, &res.Seed, &res.TargetCode, &clueType,
		&res.HintsUsed, &res.FuelFraction, &res.ElapsedMs, &res.RawScore, &res.Score, &createdAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get result: %w", err)
	}
	res.ClueType = atlas.ClueType(clueType)
	res.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return &res, nil
}

// Leaderboard ranks players. Daily takes each player's best round since
// UTC midnight; all-time takes cumulative score.
func (s *SQLiteDB) Leaderboard(q LeaderboardQuery) ([]LeaderboardEntry, error) {
	limit := q.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	var query string
	switch q.Period {
	case PeriodDaily:
		query = `
			SELECT r.player_id, COALESCE(p.display_name, ''), MAX(r.score), COUNT(*)
			FROM results r
			LEFT JOIN profiles p ON p.player_id = r.player_id
			WHERE r.created_at >= strftime('%Y-%m-%dT00:00:00Z', 'now')
			GROUP BY r.player_id
			ORDER BY MAX(r.score) DESC, r.player_id ASC
			LIMIT ?`
	case PeriodAllTime, "":
		query = `
			SELECT r.player_id, COALESCE(p.display_name, ''), SUM(r.score), COUNT(*)
			FROM results r
			LEFT JOIN profiles p ON p.player_id = r.player_id
			GROUP BY r.player_id
			ORDER BY SUM(r.score) DESC, r.player_id ASC
			LIMIT ?`
	default:
		return nil, fmt.Errorf("store: unknown leaderboard period %q", q.Period)
	}

	rows, err := s.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query leaderboard: %w", err)
	}
	defer rows.Close()

	var entries []LeaderboardEntry
	rank := 1
	for rows.Next() {
		var e LeaderboardEntry
		if err := rows.Scan(&e.PlayerID, &e.DisplayName, &e.Score, &e.Rounds); err != nil {
			return nil, fmt.Errorf("failed to scan leaderboard row: %w", err)
		}
		e.Rank = rank
		rank++
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// UpsertProfile creates or updates a player profile.
func (s *SQLiteDB) UpsertProfile(p *Profile) error {
	_, err := s.db.Exec(`
		INSERT INTO profiles (player_id, display_name)
		VALUES (?, ?)
		ON CONFLICT(player_id) DO UPDATE SET display_name = excluded.display_name`,
		p.PlayerID, p.DisplayName)
	if err != nil {
		return fmt.Errorf("failed to upsert profile: %w", err)
	}
	return nil
}

// GetProfile fetches a profile by player ID.
func (s *SQLiteDB) GetProfile(playerID string) (*Profile, error) {
	row := s.db.QueryRow(`
		SELECT player_id, display_name, created_at FROM profiles WHERE player_id = ?`,
		playerID)

	var p Profile
	var createdAt string
	err := row.Scan(&p.PlayerID, &p.DisplayName, &createdAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	p.CreatedAt, _ = time.Parse("2006-01-02 15:04:05", createdAt)
	return &p, nil
}

// IncrementStat adds delta to a named player counter, creating it at
// zero first if needed.
func (s *SQLiteDB) IncrementStat(playerID, stat string, delta int64) error {
	_, err := s.db.Exec(`
		INSERT INTO player_stats (player_id, stat, value)
		VALUES (?, ?, ?)
		ON CONFLICT(player_id, stat) DO UPDATE SET value = value + excluded.value`,
		playerID, stat, delta)
	if err != nil {
		return fmt.Errorf("failed to increment stat: %w", err)
	}
	return nil
}

// GetStats returns all counters for a player.
func (s *SQLiteDB) GetStats(playerID string) (map[string]int64, error) {
	rows, err := s.db.Query(`SELECT stat, value FROM player_stats WHERE player_id = ?`, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]int64)
	for rows.Next() {
		var stat string
		var value int64
		if err := rows.Scan(&stat, &value); err != nil {
			return nil, fmt.Errorf("failed to scan stat: %w", err)
		}
		stats[stat] = value
	}
	return stats, rows.Err()
}

// CoinBalance sums the player's ledger. Deltas are stored as decimal
// strings; summing happens in Go to avoid float drift.
func (s *SQLiteDB) CoinBalance(playerID string) (decimal.Decimal, error) {
	return s.balanceTx(s.db, playerID)
}

type querier interface {
	Query(query string, args ...any) (*sql.Rows, error)
}

func (s *SQLiteDB) balanceTx(q querier, playerID string) (decimal.Decimal, error) {
	rows, err := q.Query(`SELECT delta FROM coin_ledger WHERE player_id = ?`, playerID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to query ledger: %w", err)
	}
	defer rows.Close()

	balance := decimal.Zero
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return decimal.Zero, fmt.Errorf("failed to scan ledger row: %w", err)
		}
		d, err := decimal.NewFromString(raw)
		if err != nil {
			return decimal.Zero, fmt.Errorf("corrupt ledger delta %q: %w", raw, err)
		}
		balance = balance.Add(d)
	}
	return balance, rows.Err()
}

// GrantCoins appends a credit to the player's ledger (round rewards,
// admin grants).
func (s *SQLiteDB) GrantCoins(playerID string, amount decimal.Decimal, reason string) error {
	_, err := s.db.Exec(`
		INSERT INTO coin_ledger (player_id, delta, reason) VALUES (?, ?, ?)`,
		playerID, amount.String(), reason)
	if err != nil {
		return fmt.Errorf("failed to grant coins: %w", err)
	}
	return nil
}

// Transfer atomically moves coins between players. The sender's
// balance is checked inside the transaction so concurrent transfers
// cannot overdraw.
func (s *SQLiteDB) Transfer(senderID, recipientID string, amount decimal.Decimal) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transfer: %w", err)
	}
	defer tx.Rollback()

	balance, err := s.balanceTx(tx, senderID)
	if err != nil {
		return err
	}
	if balance.LessThan(amount) {
		return ErrInsufficientFunds
	}

	if _, err := tx.Exec(`
		INSERT INTO coin_ledger (player_id, delta, reason) VALUES (?, ?, ?)`,
		senderID, amount.Neg().String(), "send:"+recipientID); err != nil {
		return fmt.Errorf("failed to debit sender: %w", err)
	}
	if _, err := tx.Exec(`
		INSERT INTO coin_ledger (player_id, delta, reason) VALUES (?, ?, ?)`,
		recipientID, amount.String(), "receive:"+senderID); err != nil {
		return fmt.Errorf("failed to credit recipient: %w", err)
	}

	return tx.Commit()
}

// Purchase atomically debits the player and records cosmetic ownership.
// Buying an item twice fails with ErrAlreadyOwned.
func (s *SQLiteDB) Purchase(playerID, itemID string, cost decimal.Decimal) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin purchase: %w", err)
	}
	defer tx.Rollback()

	var owned int
	if err := tx.QueryRow(`
		SELECT COUNT(*) FROM cosmetics WHERE player_id = ? AND item_id = ?`,
		playerID, itemID).Scan(&owned); err != nil {
		return fmt.Errorf("failed to check ownership: %w", err)
	}
	if owned > 0 {
		return ErrAlreadyOwned
	}

	balance, err := s.balanceTx(tx, playerID)
	if err != nil {
		return err
	}
	if balance.LessThan(cost) {
		return ErrInsufficientFunds
	}

	if _, err := tx.Exec(`
		INSERT INTO coin_ledger (player_id, delta, reason) VALUES (?, ?, ?)`,
		playerID, cost.Neg().String(), "purchase:"+itemID); err != nil {
		return fmt.Errorf("failed to debit purchase: %w", err)
	}
	if _, err := tx.Exec(`
		INSERT INTO cosmetics (player_id, item_id) VALUES (?, ?)`,
		playerID, itemID); err != nil {
		return fmt.Errorf("failed to record cosmetic: %w", err)
	}

	return tx.Commit()
}

// OwnedCosmetics lists the player's cosmetic item IDs.
func (s *SQLiteDB) OwnedCosmetics(playerID string) ([]string, error) {
	rows, err := s.db.Query(`
		SELECT item_id FROM cosmetics WHERE player_id = ? ORDER BY created_at`, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query cosmetics: %w", err)
	}
	defer rows.Close()

	var items []string
	for rows.Next() {
		var item string
		if err := rows.Scan(&item); err != nil {
			return nil, fmt.Errorf("failed to scan cosmetic: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// SaveScanRun persists scan-run metadata.
func (s *SQLiteDB) SaveScanRun(run *ScanRun) error {
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}
	_, err := s.db.Exec(`
		INSERT INTO scan_runs (id, seed_start, seed_end, options_json,
			target_op, target_val, hit_count, total_evaluated, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.SeedStart, run.SeedEnd, run.OptionsJSON,
		run.TargetOp, run.TargetVal, run.HitCount, run.TotalEvaluated,
		run.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to save scan run: %w", err)
	}
	return nil
}

// SaveScanHits bulk-inserts hits for a run in one transaction.
func (s *SQLiteDB) SaveScanHits(runID string, hits []ScanHit) error {
	if len(hits) == 0 {
		return nil
	}
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin hit insert: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO scan_hits (run_id, seed, target_code, clue_type, difficulty)
		VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare hit insert: %w", err)
	}
	defer stmt.Close()

	for _, hit := range hits {
		if _, err := stmt.Exec(runID, hit.Seed, hit.TargetCode, hit.ClueType, hit.Difficulty); err != nil {
			return fmt.Errorf("failed to insert hit: %w", err)
		}
	}
	return tx.Commit()
}

// GetScanRun fetches scan-run metadata by ID.
func (s *SQLiteDB) GetScanRun(id string) (*ScanRun, error) {
	row := s.db.QueryRow(`
		SELECT id, seed_start, seed_end, options_json, target_op, target_val,
			hit_count, total_evaluated, created_at
		FROM scan_runs WHERE id = ?`, id)

	var run ScanRun
	var createdAt string
	err := row.Scan(&run.ID, &run.SeedStart, &run.SeedEnd, &run.OptionsJSON,
		&run.TargetOp, &run.TargetVal, &run.HitCount, &run.TotalEvaluated, &createdAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get scan run: %w", err)
	}
	run.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return &run, nil
}
