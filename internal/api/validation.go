package api

import (
	"errors"
	"fmt"

	"github.com/flitgame/flit-server/internal/atlas"
	"github.com/flitgame/flit-server/internal/game"
	"github.com/flitgame/flit-server/internal/scan"
)

// maxScanRange bounds a single scan request. Bigger ranges belong in
// batched runs from the CLI.
const maxScanRange = 10_000_000

func validClueType(ct atlas.ClueType) bool {
	switch ct {
	case atlas.ClueCapital, atlas.ClueFlag, atlas.ClueShape, atlas.ClueTrivia:
		return true
	}
	return false
}

func validTier(t game.Tier) bool {
	switch t {
	case "", game.TierEasy, game.TierNormal, game.TierHard:
		return true
	}
	return false
}

// ValidateRoundRequest checks the round policies before any seed work.
func ValidateRoundRequest(req *RoundRequest, src *atlas.Atlas) error {
	if !validTier(req.Tier) {
		return fmt.Errorf("unknown tier %q", req.Tier)
	}
	if req.Region != "" {
		if _, err := src.Region(req.Region); err != nil {
			return fmt.Errorf("unknown region %q", req.Region)
		}
		if req.Tier != "" {
			return errors.New("tier filters do not apply to region rounds")
		}
	}
	if req.PreferredClue != "" && !validClueType(req.PreferredClue) {
		return fmt.Errorf("unknown clue type %q", req.PreferredClue)
	}
	for _, ct := range req.AllowedClues {
		if !validClueType(ct) {
			return fmt.Errorf("unknown clue type %q", ct)
		}
	}
	return nil
}

// ValidateSubmitRequest checks a result submission before replay.
func ValidateSubmitRequest(req *SubmitResultRequest, src *atlas.Atlas) error {
	if req.PlayerID == "" {
		return errors.New("player_id is required")
	}
	if req.TargetCode == "" {
		return errors.New("target_code is required")
	}
	if req.HintsUsed < 0 {
		return errors.New("hints_used must not be negative")
	}
	if req.ElapsedMs < 0 {
		return errors.New("elapsed_ms must not be negative")
	}
	return ValidateRoundRequest(&req.Round, src)
}

// ValidateScanRequest bounds the scan workload.
func ValidateScanRequest(req *scan.Request) error {
	if req.SeedEnd < req.SeedStart {
		return errors.New("seed_end must not be less than seed_start")
	}
	// Width computed in uint64: the int64 difference overflows for
	// ranges spanning more than half the seed space.
	if uint64(req.SeedEnd)-uint64(req.SeedStart) >= maxScanRange {
		return fmt.Errorf("seed range exceeds the %d seed limit", maxScanRange)
	}
	if req.Limit < 0 {
		return errors.New("limit must not be negative")
	}
	switch req.TargetOp {
	case "", scan.OpEqual, scan.OpGreater, scan.OpGreaterEqual, scan.OpLess, scan.OpLessEqual:
	case scan.OpBetween:
		if req.TargetVal2 < req.TargetVal {
			return errors.New("target_val2 must not be less than target_val")
		}
	default:
		return fmt.Errorf("unknown target op %q", req.TargetOp)
	}
	return nil
}
