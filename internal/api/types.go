package api

import (
	"github.com/flitgame/flit-server/internal/atlas"
	"github.com/flitgame/flit-server/internal/game"
	"github.com/flitgame/flit-server/internal/store"
)

// EngineError represents a structured error response with context.
type EngineError struct {
	Type      string                 `json:"type"`
	Message   string                 `json:"message"`
	Context   map[string]interface{} `json:"context,omitempty"`
	RequestID string                 `json:"request_id,omitempty"`
	Timestamp string                 `json:"timestamp,omitempty"`
}

// Error implements the error interface.
func (e EngineError) Error() string {
	return e.Message
}

// Error types with proper categorization.
const (
	ErrTypeValidation    = "validation_error"
	ErrTypeRoundMismatch = "round_mismatch"
	ErrTypeNotFound      = "not_found"
	ErrTypeEmptyPool     = "empty_target_pool"
	ErrTypeEconomy       = "economy_error"
	ErrTypeUnauthorized  = "unauthorized"
	ErrTypeInternal      = "internal_error"
)

// VersionInfo contains server version information.
type VersionInfo struct {
	EngineVersion string `json:"engine_version"`
	GitCommit     string `json:"git_commit,omitempty"`
	BuildTime     string `json:"build_time,omitempty"`
}

// RoundRequest selects the round policies for creation or replay.
type RoundRequest struct {
	Seed          *int64           `json:"seed,omitempty"` // replay only
	Region        string           `json:"region,omitempty"`
	Tier          game.Tier        `json:"tier,omitempty"`
	PreferredClue atlas.ClueType   `json:"preferred_clue,omitempty"`
	AllowedClues  []atlas.ClueType `json:"allowed_clues,omitempty"`
}

func (r RoundRequest) options() game.Options {
	return game.Options{
		Region:        r.Region,
		Tier:          r.Tier,
		PreferredClue: r.PreferredClue,
		AllowedClues:  r.AllowedClues,
	}
}

// RoundResponse is the full round setup a client needs to play.
type RoundResponse struct {
	RoundID    string           `json:"round_id"`
	Seed       int64            `json:"seed"`
	TargetCode string           `json:"target_code"`
	TargetName string           `json:"target_name"`
	Clue       atlas.Clue       `json:"clue"`
	Start      atlas.Coordinate `json:"start"`
	Difficulty float64          `json:"difficulty"`
	Multiplier float64          `json:"multiplier"`
	Date       string           `json:"date,omitempty"` // daily rounds only
}

// SubmitResultRequest reports a finished round for scoring.
type SubmitResultRequest struct {
	PlayerID     string         `json:"player_id"`
	Seed         int64          `json:"seed"`
	Round        RoundRequest   `json:"round"` // options used at creation
	TargetCode   string         `json:"target_code"`
	ClueType     atlas.ClueType `json:"clue_type"`
	HintsUsed    int            `json:"hints_used"`
	FuelFraction float64        `json:"fuel_fraction"`
	ElapsedMs    int64          `json:"elapsed_ms"`
}

// SubmitResultResponse returns the authoritative server-side score.
type SubmitResultResponse struct {
	ResultID   string  `json:"result_id"`
	Score      int     `json:"score"`
	RawScore   int     `json:"raw_score"`
	Multiplier float64 `json:"multiplier"`
	CoinReward string  `json:"coin_reward"`
}

// LeaderboardResponse wraps ranked entries.
type LeaderboardResponse struct {
	Period  store.LeaderboardPeriod  `json:"period"`
	Entries []store.LeaderboardEntry `json:"entries"`
}

// PurchaseRequest buys a catalog cosmetic.
type PurchaseRequest struct {
	PlayerID string `json:"player_id"`
	ItemID   string `json:"item_id"`
}

// SendCoinsRequest transfers coins between players.
type SendCoinsRequest struct {
	SenderID    string `json:"sender_id"`
	RecipientID string `json:"recipient_id"`
	Amount      string `json:"amount"`
}

// GrantCoinsRequest credits a player's ledger (admin only).
type GrantCoinsRequest struct {
	PlayerID string `json:"player_id"`
	Amount   string `json:"amount"`
	Reason   string `json:"reason,omitempty"`
}

// IncrementStatRequest bumps a player counter (admin only).
type IncrementStatRequest struct {
	PlayerID string `json:"player_id"`
	Stat     string `json:"stat"`
	Delta    int64  `json:"delta"`
}
