package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/flitgame/flit-server/internal/economy"
	"github.com/flitgame/flit-server/internal/engine"
	"github.com/flitgame/flit-server/internal/game"
	"github.com/flitgame/flit-server/internal/scan"
	"github.com/flitgame/flit-server/internal/store"

	"github.com/shopspring/decimal"
)

// buildRound replays the seeded factory and flattens the session into
// the wire payload.
func (s *Server) buildRound(seed int64, req RoundRequest) (*RoundResponse, error) {
	session, err := game.NewSeededSession(s.atlas, seed, req.options())
	if err != nil {
		return nil, err
	}

	target := session.Target()
	return &RoundResponse{
		RoundID:    uuid.NewString(),
		Seed:       seed,
		TargetCode: target.Code,
		TargetName: target.Name,
		Clue:       session.Clue(),
		Start:      session.StartPosition(),
		Difficulty: target.Difficulty,
		Multiplier: game.DifficultyMultiplier(target.Difficulty),
	}, nil
}

func (s *Server) writeRoundError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, game.ErrEmptyPool):
		s.errorHandler.HandleError(w, r,
			NewError(ErrTypeEmptyPool, "No targets match the requested filters").WithCause(err).Build(),
			http.StatusUnprocessableEntity)
	default:
		s.errorHandler.HandleError(w, r, err, http.StatusBadRequest)
	}
}

// handleCreateRound mints a fresh seed and builds a round from it.
func (s *Server) handleCreateRound(w http.ResponseWriter, r *http.Request) {
	var req RoundRequest
	if err := decodeJSON(r, &req); err != nil {
		s.errorHandler.HandleValidationError(w, r, "body", err.Error())
		return
	}
	if err := ValidateRoundRequest(&req, s.atlas); err != nil {
		s.errorHandler.HandleValidationError(w, r, "round", err.Error())
		return
	}

	seed, err := engine.NewSeed()
	if err != nil {
		s.errorHandler.HandleError(w, r, err, http.StatusInternalServerError)
		return
	}

	round, err := s.buildRound(seed, req)
	if err != nil {
		s.writeRoundError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, round)
}

// handleReplayRound rebuilds a round from a caller-supplied seed. Both
// dogfight players call this with the shared seed.
func (s *Server) handleReplayRound(w http.ResponseWriter, r *http.Request) {
	var req RoundRequest
	if err := decodeJSON(r, &req); err != nil {
		s.errorHandler.HandleValidationError(w, r, "body", err.Error())
		return
	}
	if req.Seed == nil {
		s.errorHandler.HandleValidationError(w, r, "seed", "seed is required for replay")
		return
	}
	if err := ValidateRoundRequest(&req, s.atlas); err != nil {
		s.errorHandler.HandleValidationError(w, r, "round", err.Error())
		return
	}

	round, err := s.buildRound(*req.Seed, req)
	if err != nil {
		s.writeRoundError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, round)
}

// handleDailyRound serves today's shared round. The seed derives from
// the server key and the UTC date, so every replica and player agrees.
func (s *Server) handleDailyRound(w http.ResponseWriter, r *http.Request) {
	date := time.Now().UTC().Format("2006-01-02")
	seed := engine.DailySeed(s.dailyKey, date)

	round, err := s.buildRound(seed, RoundRequest{})
	if err != nil {
		s.writeRoundError(w, r, err)
		return
	}
	round.Date = date
	writeJSON(w, http.StatusOK, round)
}

// handleSubmitResult verifies a round submission by replaying its seed,
// recomputes the score server-side, persists it, and pays the coin
// reward. The client's own score is never trusted.
func (s *Server) handleSubmitResult(w http.ResponseWriter, r *http.Request) {
	var req SubmitResultRequest
	if err := decodeJSON(r, &req); err != nil {
		s.errorHandler.HandleValidationError(w, r, "body", err.Error())
		return
	}
	if err := ValidateSubmitRequest(&req, s.atlas); err != nil {
		s.errorHandler.HandleValidationError(w, r, "result", err.Error())
		return
	}

	session, err := game.NewSeededSession(s.atlas, req.Seed, req.Round.options())
	if err != nil {
		s.writeRoundError(w, r, err)
		return
	}

	if session.Target().Code != req.TargetCode || session.Clue().Type != req.ClueType {
		s.errorHandler.HandleError(w, r,
			NewError(ErrTypeRoundMismatch, "Submission does not match the round this seed produces").
				WithContext("expected_target", session.Target().Code).
				WithContext("submitted_target", req.TargetCode).
				Build(),
			http.StatusUnprocessableEntity)
		return
	}

	session.Complete(req.HintsUsed, req.FuelFraction)

	result := &store.RoundResult{
		ID:           uuid.NewString(),
		PlayerID:     req.PlayerID,
		Seed:         req.Seed,
		TargetCode:   req.TargetCode,
		ClueType:     req.ClueType,
		HintsUsed:    session.HintsUsed(),
		FuelFraction: session.FuelFraction(),
		ElapsedMs:    req.ElapsedMs,
		RawScore:     session.RawScore(),
		Score:        session.Score(),
	}
	if err := s.db.SaveResult(result); err != nil {
		s.errorHandler.HandleError(w, r, err, http.StatusInternalServerError)
		return
	}

	reward, err := s.economy.PayRoundReward(req.PlayerID, result.Score)
	if err != nil {
		s.errorHandler.HandleError(w, r, err, http.StatusInternalServerError)
		return
	}
	if err := s.db.IncrementStat(req.PlayerID, "rounds_played", 1); err != nil {
		s.errorHandler.HandleError(w, r, err, http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, SubmitResultResponse{
		ResultID:   result.ID,
		Score:      result.Score,
		RawScore:   result.RawScore,
		Multiplier: game.DifficultyMultiplier(session.Target().Difficulty),
		CoinReward: reward.String(),
	})
}

func (s *Server) handleGetResult(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := s.db.GetResult(id)
	if errors.Is(err, store.ErrNotFound) {
		s.errorHandler.HandleError(w, r,
			NewError(ErrTypeNotFound, "Result not found").WithContext("id", id).Build(),
			http.StatusNotFound)
		return
	}
	if err != nil {
		s.errorHandler.HandleError(w, r, err, http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	period := store.LeaderboardPeriod(r.URL.Query().Get("period"))
	if period == "" {
		period = store.PeriodAllTime
	}
	if period != store.PeriodDaily && period != store.PeriodAllTime {
		s.errorHandler.HandleValidationError(w, r, "period", "period must be daily or alltime")
		return
	}
	limit := parseIntParam(r, "limit", 20)

	entries, err := s.db.Leaderboard(store.LeaderboardQuery{Period: period, Limit: limit})
	if err != nil {
		s.errorHandler.HandleError(w, r, err, http.StatusInternalServerError)
		return
	}
	if entries == nil {
		entries = []store.LeaderboardEntry{}
	}
	writeJSON(w, http.StatusOK, LeaderboardResponse{Period: period, Entries: entries})
}

func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.economy.Catalog())
}

func (s *Server) handlePurchase(w http.ResponseWriter, r *http.Request) {
	var req PurchaseRequest
	if err := decodeJSON(r, &req); err != nil {
		s.errorHandler.HandleValidationError(w, r, "body", err.Error())
		return
	}
	if req.PlayerID == "" || req.ItemID == "" {
		s.errorHandler.HandleValidationError(w, r, "purchase", "player_id and item_id are required")
		return
	}

	item, err := s.economy.PurchaseCosmetic(req.PlayerID, req.ItemID)
	if err != nil {
		s.writeEconomyError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (s *Server) handleSendCoins(w http.ResponseWriter, r *http.Request) {
	var req SendCoinsRequest
	if err := decodeJSON(r, &req); err != nil {
		s.errorHandler.HandleValidationError(w, r, "body", err.Error())
		return
	}
	if req.SenderID == "" || req.RecipientID == "" {
		s.errorHandler.HandleValidationError(w, r, "transfer", "sender_id and recipient_id are required")
		return
	}
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		s.errorHandler.HandleValidationError(w, r, "amount", "amount must be a decimal number")
		return
	}

	if err := s.economy.SendCoins(req.SenderID, req.RecipientID, amount); err != nil {
		s.writeEconomyError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "sent", "amount": amount.String()})
}

func (s *Server) handleBalance(w http.ResponseWriter, r *http.Request) {
	playerID := r.URL.Query().Get("playerId")
	if playerID == "" {
		s.errorHandler.HandleValidationError(w, r, "playerId", "playerId query parameter is required")
		return
	}

	balance, err := s.economy.Balance(playerID)
	if err != nil {
		s.errorHandler.HandleError(w, r, err, http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"player_id": playerID, "balance": balance.String()})
}

func (s *Server) handleOwnedCosmetics(w http.ResponseWriter, r *http.Request) {
	playerID := r.URL.Query().Get("playerId")
	if playerID == "" {
		s.errorHandler.HandleValidationError(w, r, "playerId", "playerId query parameter is required")
		return
	}

	owned, err := s.economy.OwnedCosmetics(playerID)
	if err != nil {
		s.errorHandler.HandleError(w, r, err, http.StatusInternalServerError)
		return
	}
	if owned == nil {
		owned = []string{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"player_id": playerID, "items": owned})
}

func (s *Server) handleUpsertProfile(w http.ResponseWriter, r *http.Request) {
	var p store.Profile
	if err := decodeJSON(r, &p); err != nil {
		s.errorHandler.HandleValidationError(w, r, "body", err.Error())
		return
	}
	if p.PlayerID == "" {
		s.errorHandler.HandleValidationError(w, r, "player_id", "player_id is required")
		return
	}

	if err := s.db.UpsertProfile(&p); err != nil {
		s.errorHandler.HandleError(w, r, err, http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	playerID := chi.URLParam(r, "playerID")

	p, err := s.db.GetProfile(playerID)
	if errors.Is(err, store.ErrNotFound) {
		s.errorHandler.HandleError(w, r,
			NewError(ErrTypeNotFound, "Profile not found").WithContext("player_id", playerID).Build(),
			http.StatusNotFound)
		return
	}
	if err != nil {
		s.errorHandler.HandleError(w, r, err, http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// handleScan runs a seed-curation scan and records it.
func (s *Server) handleScan(w http.ResponseWriter, r *http.Request) {
	var req scan.Request
	if err := decodeJSON(r, &req); err != nil {
		s.errorHandler.HandleValidationError(w, r, "body", err.Error())
		return
	}
	if err := ValidateScanRequest(&req); err != nil {
		s.errorHandler.HandleValidationError(w, r, "scan", err.Error())
		return
	}

	result, err := s.scanner.Scan(r.Context(), req)
	if err != nil {
		s.errorHandler.HandleError(w, r, err, http.StatusBadRequest)
		return
	}

	optionsJSON, _ := json.Marshal(req.Options)
	run := &store.ScanRun{
		ID:             uuid.NewString(),
		SeedStart:      req.SeedStart,
		SeedEnd:        req.SeedEnd,
		OptionsJSON:    string(optionsJSON),
		TargetOp:       string(req.TargetOp),
		TargetVal:      req.TargetVal,
		HitCount:       len(result.Hits),
		TotalEvaluated: result.Summary.TotalEvaluated,
	}
	if err := s.db.SaveScanRun(run); err != nil {
		s.errorHandler.HandleError(w, r, err, http.StatusInternalServerError)
		return
	}
	hits := make([]store.ScanHit, len(result.Hits))
	for i, h := range result.Hits {
		hits[i] = store.ScanHit{
			Seed:       h.Seed,
			TargetCode: h.TargetCode,
			ClueType:   string(h.ClueType),
			Difficulty: h.Difficulty,
		}
	}
	if err := s.db.SaveScanHits(run.ID, hits); err != nil {
		s.errorHandler.HandleError(w, r, err, http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"run_id": run.ID, "result": result})
}

// handleGrantCoins credits a player from the admin CLI. The grant is a
// plain ledger entry with an "admin:" reason for auditability.
func (s *Server) handleGrantCoins(w http.ResponseWriter, r *http.Request) {
	var req GrantCoinsRequest
	if err := decodeJSON(r, &req); err != nil {
		s.errorHandler.HandleValidationError(w, r, "body", err.Error())
		return
	}
	if req.PlayerID == "" {
		s.errorHandler.HandleValidationError(w, r, "player_id", "player_id is required")
		return
	}
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil || !amount.IsPositive() {
		s.errorHandler.HandleValidationError(w, r, "amount", "amount must be a positive decimal number")
		return
	}

	reason := req.Reason
	if reason == "" {
		reason = "grant"
	}
	if err := s.db.GrantCoins(req.PlayerID, amount, "admin:"+reason); err != nil {
		s.errorHandler.HandleError(w, r, err, http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "granted", "amount": amount.String()})
}

func (s *Server) handleIncrementStat(w http.ResponseWriter, r *http.Request) {
	var req IncrementStatRequest
	if err := decodeJSON(r, &req); err != nil {
		s.errorHandler.HandleValidationError(w, r, "body", err.Error())
		return
	}
	if req.PlayerID == "" || req.Stat == "" {
		s.errorHandler.HandleValidationError(w, r, "stat", "player_id and stat are required")
		return
	}

	if err := s.db.IncrementStat(req.PlayerID, req.Stat, req.Delta); err != nil {
		s.errorHandler.HandleError(w, r, err, http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleGetStats(w http.ResponseWriter, r *http.Request) {
	playerID := chi.URLParam(r, "playerID")

	stats, err := s.db.GetStats(playerID)
	if err != nil {
		s.errorHandler.HandleError(w, r, err, http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"player_id": playerID, "stats": stats})
}

func (s *Server) writeEconomyError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusUnprocessableEntity
	switch {
	case errors.Is(err, economy.ErrUnknownItem), errors.Is(err, economy.ErrInvalidAmount),
		errors.Is(err, economy.ErrSelfTransfer):
		status = http.StatusBadRequest
	case errors.Is(err, store.ErrInsufficientFunds), errors.Is(err, store.ErrAlreadyOwned):
		status = http.StatusUnprocessableEntity
	default:
		s.errorHandler.HandleError(w, r, err, http.StatusInternalServerError)
		return
	}
	s.errorHandler.HandleError(w, r,
		NewError(ErrTypeEconomy, err.Error()).Build(), status)
}

func parseIntParam(r *http.Request, name string, def int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	var n int
	for _, c := range raw {
		if c < '0' || c > '9' {
			return def
		}
		n = n*10 + int(c-'0')
	}
	return n
}
