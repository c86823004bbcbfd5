package api

import (
	"bytes"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/flitgame/flit-server/internal/atlas"
	"github.com/flitgame/flit-server/internal/scan"
	"github.com/flitgame/flit-server/internal/store"
)

const testAdminToken = "test-admin-token"

func newTestServer(t *testing.T) *Server {
	t.Helper()
	db, err := store.NewSQLiteDB(":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := db.Migrate(); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}
	return NewServer(db, atlas.New(), []byte("test-daily-key"), testAdminToken)
}

func doJSON(t *testing.T, s *Server, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to marshal request: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.Routes().ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(dst); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
}

func TestHealthEndpoint(t *testing.T) {
	server := newTestServer(t)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	server.Routes().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	var response HealthCheckResponse
	decodeBody(t, w, &response)
	if response.Status != HealthStatusHealthy {
		t.Errorf("Expected healthy status, got %s", response.Status)
	}
	if response.Checks["database"].Status != HealthStatusHealthy {
		t.Error("Expected database check to be healthy")
	}
}

func TestVersionEndpoint(t *testing.T) {
	server := newTestServer(t)

	req := httptest.NewRequest("GET", "/version", nil)
	w := httptest.NewRecorder()
	server.Routes().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	var response VersionInfo
	decodeBody(t, w, &response)
	if response.EngineVersion == "" {
		t.Error("Expected engine version in response")
	}
}

func TestCreateRoundEndpoint(t *testing.T) {
	server := newTestServer(t)

	w := doJSON(t, server, "POST", "/api/v1/rounds", RoundRequest{})
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var response RoundResponse
	decodeBody(t, w, &response)
	if response.RoundID == "" {
		t.Error("Expected round id in response")
	}
	if response.TargetCode == "" {
		t.Error("Expected target code in response")
	}
	if response.Multiplier < 0.5 || response.Multiplier > 1.0 {
		t.Errorf("Multiplier %v out of range", response.Multiplier)
	}
}

func TestReplayRoundDeterministic(t *testing.T) {
	server := newTestServer(t)

	seed := int64(424242)
	req := RoundRequest{Seed: &seed}

	first := doJSON(t, server, "POST", "/api/v1/rounds/replay", req)
	second := doJSON(t, server, "POST", "/api/v1/rounds/replay", req)
	if first.Code != http.StatusOK || second.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d and %d", first.Code, second.Code)
	}

	var a, b RoundResponse
	decodeBody(t, first, &a)
	decodeBody(t, second, &b)

	if a.TargetCode != b.TargetCode || a.Clue != b.Clue || a.Start != b.Start {
		t.Errorf("Replays of seed %d disagree: %+v vs %+v", seed, a, b)
	}
}

func TestReplayRoundRequiresSeed(t *testing.T) {
	server := newTestServer(t)

	w := doJSON(t, server, "POST", "/api/v1/rounds/replay", RoundRequest{})
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400 without seed, got %d", w.Code)
	}
}

func TestCreateRoundRejectsUnknownTier(t *testing.T) {
	server := newTestServer(t)

	w := doJSON(t, server, "POST", "/api/v1/rounds", map[string]string{"tier": "impossible"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400 for unknown tier, got %d", w.Code)
	}

	var response EngineError
	decodeBody(t, w, &response)
	if response.Type != ErrTypeValidation {
		t.Errorf("Expected validation_error, got %s", response.Type)
	}
}

func TestCreateRoundRejectsUnknownRegion(t *testing.T) {
	server := newTestServer(t)

	w := doJSON(t, server, "POST", "/api/v1/rounds", map[string]string{"region": "atlantis"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400 for unknown region, got %d", w.Code)
	}
}

func TestDailyRoundStableWithinDay(t *testing.T) {
	server := newTestServer(t)

	first := doJSON(t, server, "GET", "/api/v1/rounds/daily", nil)
	second := doJSON(t, server, "GET", "/api/v1/rounds/daily", nil)
	if first.Code != http.StatusOK || second.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d and %d", first.Code, second.Code)
	}

	var a, b RoundResponse
	decodeBody(t, first, &a)
	decodeBody(t, second, &b)

	if a.Seed != b.Seed || a.TargetCode != b.TargetCode {
		t.Error("Daily round changed between requests on the same day")
	}
	if a.Date == "" {
		t.Error("Expected date on daily round")
	}
}

// submitRound fetches a replayable round and submits a result for it.
func submitRound(t *testing.T, server *Server, playerID string, seed int64, hints int, fuel float64) SubmitResultResponse {
	t.Helper()

	req := RoundRequest{Seed: &seed}
	w := doJSON(t, server, "POST", "/api/v1/rounds/replay", req)
	if w.Code != http.StatusOK {
		t.Fatalf("Replay failed: %d %s", w.Code, w.Body.String())
	}
	var round RoundResponse
	decodeBody(t, w, &round)

	submit := SubmitResultRequest{
		PlayerID:     playerID,
		Seed:         seed,
		Round:        RoundRequest{},
		TargetCode:   round.TargetCode,
		ClueType:     round.Clue.Type,
		HintsUsed:    hints,
		FuelFraction: fuel,
		ElapsedMs:    42000,
	}
	w = doJSON(t, server, "POST", "/api/v1/results", submit)
	if w.Code != http.StatusOK {
		t.Fatalf("Submit failed: %d %s", w.Code, w.Body.String())
	}
	var response SubmitResultResponse
	decodeBody(t, w, &response)
	return response
}

func TestSubmitResultScoresServerSide(t *testing.T) {
	server := newTestServer(t)

	response := submitRound(t, server, "player-1", 7, 0, 1.0)
	if response.ResultID == "" {
		t.Error("Expected result id")
	}
	if response.RawScore != 10000 {
		t.Errorf("Perfect round raw score = %d, want 10000", response.RawScore)
	}
	if response.Score <= 0 || response.Score > 10000 {
		t.Errorf("Score %d out of range", response.Score)
	}
	if response.CoinReward == "" {
		t.Error("Expected coin reward")
	}

	// Stored result is retrievable.
	w := doJSON(t, server, "GET", "/api/v1/results/"+response.ResultID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Get result failed: %d", w.Code)
	}
	var stored store.RoundResult
	decodeBody(t, w, &stored)
	if stored.Score != response.Score {
		t.Errorf("Stored score %d != reported score %d", stored.Score, response.Score)
	}
}

func TestSubmitResultRejectsMismatchedTarget(t *testing.T) {
	server := newTestServer(t)

	seed := int64(7)
	submit := SubmitResultRequest{
		PlayerID:     "player-1",
		Seed:         seed,
		TargetCode:   "ZZ",
		ClueType:     atlas.ClueFlag,
		FuelFraction: 1.0,
	}
	w := doJSON(t, server, "POST", "/api/v1/results", submit)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("Expected status 422 for mismatched target, got %d", w.Code)
	}

	var response EngineError
	decodeBody(t, w, &response)
	if response.Type != ErrTypeRoundMismatch {
		t.Errorf("Expected round_mismatch, got %s", response.Type)
	}
}

func TestSubmitResultRequiresPlayer(t *testing.T) {
	server := newTestServer(t)

	w := doJSON(t, server, "POST", "/api/v1/results", SubmitResultRequest{Seed: 7, TargetCode: "JP"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400 without player id, got %d", w.Code)
	}
}

func TestLeaderboardEndpoint(t *testing.T) {
	server := newTestServer(t)

	submitRound(t, server, "player-1", 7, 0, 1.0)
	submitRound(t, server, "player-2", 7, 2, 0.5)

	w := doJSON(t, server, "GET", "/api/v1/leaderboard?period=alltime&limit=10", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Leaderboard failed: %d", w.Code)
	}

	var response LeaderboardResponse
	decodeBody(t, w, &response)
	if len(response.Entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(response.Entries))
	}
	if response.Entries[0].PlayerID != "player-1" {
		t.Errorf("Expected player-1 to rank first, got %s", response.Entries[0].PlayerID)
	}
}

func TestLeaderboardRejectsUnknownPeriod(t *testing.T) {
	server := newTestServer(t)

	w := doJSON(t, server, "GET", "/api/v1/leaderboard?period=weekly", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400 for unknown period, got %d", w.Code)
	}
}

func TestShopCatalogAndPurchase(t *testing.T) {
	server := newTestServer(t)

	// Earn some coins first.
	submitRound(t, server, "player-1", 7, 0, 1.0)

	w := doJSON(t, server, "GET", "/api/v1/shop/catalog", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Catalog failed: %d", w.Code)
	}

	// Broke player cannot buy.
	w = doJSON(t, server, "POST", "/api/v1/shop/purchase", PurchaseRequest{PlayerID: "broke", ItemID: "plane_classic_red"})
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("Expected status 422 for insufficient funds, got %d", w.Code)
	}

	// Unknown item is a client error.
	w = doJSON(t, server, "POST", "/api/v1/shop/purchase", PurchaseRequest{PlayerID: "player-1", ItemID: "nonexistent"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400 for unknown item, got %d", w.Code)
	}
}

func TestCoinTransferEndpoint(t *testing.T) {
	server := newTestServer(t)

	submitRound(t, server, "sender", 7, 0, 1.0)

	w := doJSON(t, server, "POST", "/api/v1/coins/send", SendCoinsRequest{
		SenderID:    "sender",
		RecipientID: "recipient",
		Amount:      "5",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("Transfer failed: %d %s", w.Code, w.Body.String())
	}

	w = doJSON(t, server, "GET", "/api/v1/coins/balance?playerId=recipient", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Balance failed: %d", w.Code)
	}
	var balance map[string]string
	decodeBody(t, w, &balance)
	if balance["balance"] != "5" {
		t.Errorf("Recipient balance = %s, want 5", balance["balance"])
	}
}

func TestCoinTransferRejectsBadAmount(t *testing.T) {
	server := newTestServer(t)

	w := doJSON(t, server, "POST", "/api/v1/coins/send", SendCoinsRequest{
		SenderID:    "sender",
		RecipientID: "recipient",
		Amount:      "not-a-number",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400 for bad amount, got %d", w.Code)
	}
}

func TestProfileEndpoints(t *testing.T) {
	server := newTestServer(t)

	w := doJSON(t, server, "PUT", "/api/v1/profile", store.Profile{PlayerID: "player-1", DisplayName: "Amelia"})
	if w.Code != http.StatusOK {
		t.Fatalf("Upsert profile failed: %d", w.Code)
	}

	w = doJSON(t, server, "GET", "/api/v1/profile/player-1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Get profile failed: %d", w.Code)
	}
	var p store.Profile
	decodeBody(t, w, &p)
	if p.DisplayName != "Amelia" {
		t.Errorf("Display name = %q, want Amelia", p.DisplayName)
	}

	w = doJSON(t, server, "GET", "/api/v1/profile/missing", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404 for missing profile, got %d", w.Code)
	}
}

func TestScanEndpointRequiresAdmin(t *testing.T) {
	server := newTestServer(t)

	w := doJSON(t, server, "POST", "/api/v1/scan", map[string]int64{"seed_start": 0, "seed_end": 10})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401 without token, got %d", w.Code)
	}
}

func TestScanEndpointRejectsWrongToken(t *testing.T) {
	server := newTestServer(t)

	raw, _ := json.Marshal(map[string]int64{"seed_start": 0, "seed_end": 10})
	req := httptest.NewRequest("POST", "/api/v1/scan", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer not-the-token")
	w := httptest.NewRecorder()
	server.Routes().ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401 for wrong token, got %d", w.Code)
	}
}

func TestScanRangeCap(t *testing.T) {
	cases := []struct {
		name    string
		start   int64
		end     int64
		wantErr bool
	}{
		{"exactly at cap", 0, maxScanRange - 1, false},
		{"one past cap", 0, maxScanRange, true},
		{"full int64 span", math.MinInt64, math.MaxInt64, true},
		{"wide range near overflow", math.MinInt64, 0, true},
	}
	for _, tc := range cases {
		err := ValidateScanRequest(&scan.Request{SeedStart: tc.start, SeedEnd: tc.end})
		if tc.wantErr && err == nil {
			t.Errorf("%s: expected range cap error", tc.name)
		}
		if !tc.wantErr && err != nil {
			t.Errorf("%s: unexpected error: %v", tc.name, err)
		}
	}
}

func TestScanEndpointWithAdminToken(t *testing.T) {
	server := newTestServer(t)

	raw, _ := json.Marshal(map[string]int64{"seed_start": 0, "seed_end": 50})
	req := httptest.NewRequest("POST", "/api/v1/scan", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+testAdminToken)
	w := httptest.NewRecorder()
	server.Routes().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Scan failed: %d %s", w.Code, w.Body.String())
	}

	var response struct {
		RunID  string `json:"run_id"`
		Result struct {
			Summary struct {
				TotalEvaluated uint64 `json:"total_evaluated"`
			} `json:"summary"`
		} `json:"result"`
	}
	decodeBody(t, w, &response)
	if response.RunID == "" {
		t.Error("Expected run id")
	}
	if response.Result.Summary.TotalEvaluated != 51 {
		t.Errorf("Evaluated %d seeds, want 51", response.Result.Summary.TotalEvaluated)
	}
}

func TestScanEndpointRejectsUnknownRegion(t *testing.T) {
	server := newTestServer(t)

	raw, _ := json.Marshal(map[string]interface{}{
		"seed_start": 0,
		"seed_end":   10,
		"options":    map[string]string{"Region": "atlantis"},
	})
	req := httptest.NewRequest("POST", "/api/v1/scan", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+testAdminToken)
	w := httptest.NewRecorder()
	server.Routes().ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400 for unknown region, got %d", w.Code)
	}
}

func TestGrantCoinsEndpoint(t *testing.T) {
	server := newTestServer(t)

	raw, _ := json.Marshal(GrantCoinsRequest{PlayerID: "player-1", Amount: "150"})
	req := httptest.NewRequest("POST", "/api/v1/admin/coins/grant", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+testAdminToken)
	w := httptest.NewRecorder()
	server.Routes().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Grant failed: %d %s", w.Code, w.Body.String())
	}

	balance := doJSON(t, server, "GET", "/api/v1/coins/balance?playerId=player-1", nil)
	var response map[string]string
	decodeBody(t, balance, &response)
	if response["balance"] != "150" {
		t.Errorf("Balance = %s, want 150", response["balance"])
	}
}

func TestAdminEndpointsDisabledWithoutToken(t *testing.T) {
	db, err := store.NewSQLiteDB(":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := db.Migrate(); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}
	server := NewServer(db, atlas.New(), []byte("test-daily-key"), "")

	w := doJSON(t, server, "POST", "/api/v1/scan", map[string]int64{"seed_start": 0, "seed_end": 10})
	if w.Code != http.StatusForbidden {
		t.Errorf("Expected status 403 when admin token unconfigured, got %d", w.Code)
	}
}

func TestInvalidJSONRejected(t *testing.T) {
	server := newTestServer(t)

	req := httptest.NewRequest("POST", "/api/v1/rounds", bytes.NewReader([]byte("invalid json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	server.Routes().ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400 for invalid JSON, got %d", w.Code)
	}
}
