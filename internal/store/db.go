package store

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/flitgame/flit-server/internal/atlas"
)

var (
	// ErrNotFound is returned for lookups of absent rows.
	ErrNotFound = errors.New("store: not found")
	// ErrInsufficientFunds rejects transfers and purchases the sender
	// cannot cover.
	ErrInsufficientFunds = errors.New("store: insufficient coin balance")
	// ErrAlreadyOwned rejects repeat purchases of the same cosmetic.
	ErrAlreadyOwned = errors.New("store: cosmetic already owned")
)

// DB is the persistence interface for round results, player profiles,
// the coin economy, and scan runs.
type DB interface {
	Close() error
	Migrate() error

	SaveResult(res *RoundResult) error
	GetResult(id string) (*RoundResult, error)
	Leaderboard(q LeaderboardQuery) ([]LeaderboardEntry, error)

	UpsertProfile(p *Profile) error
	GetProfile(playerID string) (*Profile, error)
	IncrementStat(playerID, stat string, delta int64) error
	GetStats(playerID string) (map[string]int64, error)

	CoinBalance(playerID string) (decimal.Decimal, error)
	GrantCoins(playerID string, amount decimal.Decimal, reason string) error
	Transfer(senderID, recipientID string, amount decimal.Decimal) error
	Purchase(playerID, itemID string, cost decimal.Decimal) error
	OwnedCosmetics(playerID string) ([]string, error)

	SaveScanRun(run *ScanRun) error
	SaveScanHits(runID string, hits []ScanHit) error
	GetScanRun(id string) (*ScanRun, error)
}

// RoundResult is one verified, scored round submission.
type RoundResult struct {
	ID           string         `json:"id"`
	PlayerID     string         `json:"player_id"`
	Seed         int64          `json:"seed"`
	TargetCode   string         `json:"target_code"`
	ClueType     atlas.ClueType `json:"clue_type"`
	HintsUsed    int            `json:"hints_used"`
	FuelFraction float64        `json:"fuel_fraction"`
	ElapsedMs    int64          `json:"elapsed_ms"`
	RawScore     int            `json:"raw_score"`
	Score        int            `json:"score"`
	CreatedAt    time.Time      `json:"created_at"`
}

// LeaderboardPeriod selects the scoring window.
type LeaderboardPeriod string

const (
	// PeriodDaily ranks each player's best single round since UTC
	// midnight.
	PeriodDaily LeaderboardPeriod = "daily"
	// PeriodAllTime ranks players by cumulative score.
	PeriodAllTime LeaderboardPeriod = "alltime"
)

// LeaderboardQuery selects a leaderboard window and size.
type LeaderboardQuery struct {
	Period LeaderboardPeriod `json:"period"`
	Limit  int               `json:"limit"`
}

// LeaderboardEntry is one ranked row.
type LeaderboardEntry struct {
	Rank        int    `json:"rank"`
	PlayerID    string `json:"player_id"`
	DisplayName string `json:"display_name"`
	Score       int64  `json:"score"`
	Rounds      int64  `json:"rounds"`
}

// Profile is a player's public identity.
type Profile struct {
	PlayerID    string    `json:"player_id"`
	DisplayName string    `json:"display_name"`
	CreatedAt   time.Time `json:"created_at"`
}

// ScanRun records a seed-curation scan for later inspection.
type ScanRun struct {
	ID             string    `json:"id"`
	SeedStart      int64     `json:"seed_start"`
	SeedEnd        int64     `json:"seed_end"`
	OptionsJSON    string    `json:"options_json"`
	TargetOp       string    `json:"target_op"`
	TargetVal      float64   `json:"target_val"`
	HitCount       int       `json:"hit_count"`
	TotalEvaluated uint64    `json:"total_evaluated"`
	CreatedAt      time.Time `json:"created_at"`
}

// ScanHit is one matching seed from a scan run.
type ScanHit struct {
	ID         int64   `json:"id"`
	RunID      string  `json:"run_id"`
	Seed       int64   `json:"seed"`
	TargetCode string  `json:"target_code"`
	ClueType   string  `json:"clue_type"`
	Difficulty float64 `json:"difficulty"`
}
