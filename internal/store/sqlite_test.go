package store

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/flitgame/flit-server/internal/atlas"
)

func newTestDB(t *testing.T) *SQLiteDB {
	t.Helper()
	db, err := NewSQLiteDB(":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.Migrate(); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}
	return db
}

func TestMigrateIdempotent(t *testing.T) {
	db := newTestDB(t)
	if err := db.Migrate(); err != nil {
		t.Fatalf("second migrate failed: %v", err)
	}
}

func TestSaveAndGetResult(t *testing.T) {
	db := newTestDB(t)

	res := &RoundResult{
		ID:           "res1",
		PlayerID:     "p1",
		Seed:         42,
		TargetCode:   "JP",
		ClueType:     atlas.ClueFlag,
		HintsUsed:    2,
		FuelFraction: 0.5,
		ElapsedMs:    31000,
		RawScore:     6000,
		Score:        5700,
	}
	if err := db.SaveResult(res); err != nil {
		t.Fatalf("SaveResult: %v", err)
	}

	got, err := db.GetResult("res1")
	if err != nil {
		t.Fatalf("GetResult: %v", err)
	}
	if got.PlayerID != "p1" || got.Seed != 42 || got.TargetCode != "JP" ||
		got.ClueType != atlas.ClueFlag || got.Score != 5700 {
		t.Errorf("roundtrip mismatch: %+v", got)
	}

	if _, err := db.GetResult("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing result: got %v, want ErrNotFound", err)
	}
}

func TestLeaderboard(t *testing.T) {
	db := newTestDB(t)

	now := time.Now().UTC()
	old := now.Add(-48 * time.Hour)

	results := []*RoundResult{
		{ID: "r1", PlayerID: "alice", Seed: 1, TargetCode: "JP", ClueType: atlas.ClueFlag, Score: 8000, RawScore: 8000, CreatedAt: now},
		{ID: "r2", PlayerID: "alice", Seed: 2, TargetCode: "FR", ClueType: atlas.ClueFlag, Score: 6000, RawScore: 6000, CreatedAt: now},
		{ID: "r3", PlayerID: "bob", Seed: 3, TargetCode: "BR", ClueType: atlas.ClueFlag, Score: 9000, RawScore: 9000, CreatedAt: now},
		{ID: "r4", PlayerID: "carol", Seed: 4, TargetCode: "AU", ClueType: atlas.ClueFlag, Score: 9999, RawScore: 9999, CreatedAt: old},
	}
	for _, r := range results {
		if err := db.SaveResult(r); err != nil {
			t.Fatalf("SaveResult(%s): %v", r.ID, err)
		}
	}
	if err := db.UpsertProfile(&Profile{PlayerID: "alice", DisplayName: "Alice"}); err != nil {
		t.Fatalf("UpsertProfile: %v", err)
	}

	daily, err := db.Leaderboard(LeaderboardQuery{Period: PeriodDaily, Limit: 10})
	if err != nil {
		t.Fatalf("daily leaderboard: %v", err)
	}
	// Carol's old round is outside the daily window.
	if len(daily) != 2 {
		t.Fatalf("daily entries = %d, want 2", len(daily))
	}
	if daily[0].PlayerID != "bob" || daily[0].Score != 9000 || daily[0].Rank != 1 {
		t.Errorf("daily[0] = %+v", daily[0])
	}
	if daily[1].PlayerID != "alice" || daily[1].Score != 8000 {
		t.Errorf("daily[1] = %+v; best-of should win, not sum", daily[1])
	}
	if daily[1].DisplayName != "Alice" {
		t.Errorf("display name not joined: %+v", daily[1])
	}

	alltime, err := db.Leaderboard(LeaderboardQuery{Period: PeriodAllTime, Limit: 10})
	if err != nil {
		t.Fatalf("alltime leaderboard: %v", err)
	}
	if len(alltime) != 3 {
		t.Fatalf("alltime entries = %d, want 3", len(alltime))
	}
	// Alice's two rounds sum past both single rounds.
	if alltime[0].PlayerID != "alice" || alltime[0].Score != 14000 || alltime[0].Rounds != 2 {
		t.Errorf("alltime[0] = %+v", alltime[0])
	}

	if _, err := db.Leaderboard(LeaderboardQuery{Period: "weekly"}); err == nil {
		t.Error("expected error for unknown period")
	}
}

func TestProfiles(t *testing.T) {
	db := newTestDB(t)

	if err := db.UpsertProfile(&Profile{PlayerID: "p1", DisplayName: "Pilot One"}); err != nil {
		t.Fatalf("UpsertProfile: %v", err)
	}
	if err := db.UpsertProfile(&Profile{PlayerID: "p1", DisplayName: "Renamed"}); err != nil {
		t.Fatalf("UpsertProfile update: %v", err)
	}

	p, err := db.GetProfile("p1")
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if p.DisplayName != "Renamed" {
		t.Errorf("display name = %q, want Renamed", p.DisplayName)
	}

	if _, err := db.GetProfile("ghost"); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing profile: got %v", err)
	}
}

func TestStats(t *testing.T) {
	db := newTestDB(t)

	for i := 0; i < 3; i++ {
		if err := db.IncrementStat("p1", "rounds_played", 1); err != nil {
			t.Fatalf("IncrementStat: %v", err)
		}
	}
	if err := db.IncrementStat("p1", "coins_earned", 250); err != nil {
		t.Fatalf("IncrementStat: %v", err)
	}

	stats, err := db.GetStats("p1")
	if err != nil {
		t.Fatalf("GetStats: %v", err)
	}
	if stats["rounds_played"] != 3 || stats["coins_earned"] != 250 {
		t.Errorf("stats = %v", stats)
	}
}

func TestCoinLedger(t *testing.T) {
	db := newTestDB(t)

	if err := db.GrantCoins("p1", decimal.NewFromInt(100), "round_reward"); err != nil {
		t.Fatalf("GrantCoins: %v", err)
	}

	balance, err := db.CoinBalance("p1")
	if err != nil {
		t.Fatalf("CoinBalance: %v", err)
	}
	if !balance.Equal(decimal.NewFromInt(100)) {
		t.Errorf("balance = %s, want 100", balance)
	}

	// Transfer moves coins and refuses overdrafts.
	if err := db.Transfer("p1", "p2", decimal.NewFromInt(40)); err != nil {
		t.Fatalf("Transfer: %v", err)
	}
	b1, _ := db.CoinBalance("p1")
	b2, _ := db.CoinBalance("p2")
	if !b1.Equal(decimal.NewFromInt(60)) || !b2.Equal(decimal.NewFromInt(40)) {
		t.Errorf("balances after transfer: %s / %s", b1, b2)
	}

	err = db.Transfer("p1", "p2", decimal.NewFromInt(1000))
	if !errors.Is(err, ErrInsufficientFunds) {
		t.Errorf("overdraft: got %v, want ErrInsufficientFunds", err)
	}
	if b1, _ := db.CoinBalance("p1"); !b1.Equal(decimal.NewFromInt(60)) {
		t.Errorf("failed transfer mutated balance: %s", b1)
	}
}

func TestPurchase(t *testing.T) {
	db := newTestDB(t)

	if err := db.GrantCoins("p1", decimal.NewFromInt(500), "seed"); err != nil {
		t.Fatalf("GrantCoins: %v", err)
	}

	if err := db.Purchase("p1", "plane_red_baron", decimal.NewFromInt(300)); err != nil {
		t.Fatalf("Purchase: %v", err)
	}

	owned, err := db.OwnedCosmetics("p1")
	if err != nil {
		t.Fatalf("OwnedCosmetics: %v", err)
	}
	if len(owned) != 1 || owned[0] != "plane_red_baron" {
		t.Errorf("owned = %v", owned)
	}

	// Repeat purchase is rejected before any debit.
	err = db.Purchase("p1", "plane_red_baron", decimal.NewFromInt(300))
	if !errors.Is(err, ErrAlreadyOwned) {
		t.Errorf("repeat purchase: got %v, want ErrAlreadyOwned", err)
	}
	if b, _ := db.CoinBalance("p1"); !b.Equal(decimal.NewFromInt(200)) {
		t.Errorf("balance = %s, want 200", b)
	}

	// Unaffordable purchase.
	err = db.Purchase("p1", "trail_rainbow", decimal.NewFromInt(900))
	if !errors.Is(err, ErrInsufficientFunds) {
		t.Errorf("unaffordable purchase: got %v", err)
	}
}

func TestScanRuns(t *testing.T) {
	db := newTestDB(t)

	run := &ScanRun{
		ID:             "run1",
		SeedStart:      0,
		SeedEnd:        999,
		OptionsJSON:    `{"tier":"hard"}`,
		TargetOp:       "ge",
		TargetVal:      0.65,
		HitCount:       2,
		TotalEvaluated: 1000,
	}
	if err := db.SaveScanRun(run); err != nil {
		t.Fatalf("SaveScanRun: %v", err)
	}

	hits := []ScanHit{
		{Seed: 17, TargetCode: "KG", ClueType: "flag", Difficulty: 0.9},
		{Seed: 304, TargetCode: "PY", ClueType: "capital", Difficulty: 0.75},
	}
	if err := db.SaveScanHits("run1", hits); err != nil {
		t.Fatalf("SaveScanHits: %v", err)
	}

	got, err := db.GetScanRun("run1")
	if err != nil {
		t.Fatalf("GetScanRun: %v", err)
	}
	if got.HitCount != 2 || got.TotalEvaluated != 1000 || got.TargetOp != "ge" {
		t.Errorf("scan run roundtrip: %+v", got)
	}

	if _, err := db.GetScanRun("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing run: got %v", err)
	}
}
