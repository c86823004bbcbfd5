package scan

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/flitgame/flit-server/internal/atlas"
	"github.com/flitgame/flit-server/internal/game"
)

func TestScanFindsHardSeeds(t *testing.T) {
	s := NewScanner(atlas.New())

	result, err := s.Scan(context.Background(), Request{
		SeedStart: 0,
		SeedEnd:   499,
		TargetOp:  OpGreaterEqual,
		TargetVal: 0.65,
	})
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}

	if result.Summary.TotalEvaluated != 500 {
		t.Errorf("evaluated %d seeds, want 500", result.Summary.TotalEvaluated)
	}
	if len(result.Hits) == 0 {
		t.Fatal("expected at least one hard-target seed in 500")
	}
	for _, hit := range result.Hits {
		if hit.Difficulty < 0.65 {
			t.Errorf("seed %d rated %v slipped past the criterion", hit.Seed, hit.Difficulty)
		}
	}
}

func TestScanHitsAreReplayable(t *testing.T) {
	src := atlas.New()
	s := NewScanner(src)

	opts := game.Options{Tier: game.TierHard}
	result, err := s.Scan(context.Background(), Request{
		SeedStart: 0,
		SeedEnd:   99,
		Options:   opts,
		Limit:     10,
	})
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}

	for _, hit := range result.Hits {
		session, err := game.NewSeededSession(src, hit.Seed, opts)
		if err != nil {
			t.Fatalf("replay seed %d: %v", hit.Seed, err)
		}
		if session.Target().Code != hit.TargetCode {
			t.Errorf("seed %d: replay target %s != hit %s", hit.Seed, session.Target().Code, hit.TargetCode)
		}
		if session.Clue().Type != hit.ClueType {
			t.Errorf("seed %d: replay clue %s != hit %s", hit.Seed, session.Clue().Type, hit.ClueType)
		}
	}
}

func TestScanClueTypeFilter(t *testing.T) {
	s := NewScanner(atlas.New())

	result, err := s.Scan(context.Background(), Request{
		SeedStart: 0,
		SeedEnd:   199,
		ClueType:  atlas.ClueCapital,
	})
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	for _, hit := range result.Hits {
		if hit.ClueType != atlas.ClueCapital {
			t.Errorf("seed %d: clue type %s escaped the filter", hit.Seed, hit.ClueType)
		}
	}
}

func TestScanTargetCodeFilter(t *testing.T) {
	s := NewScanner(atlas.New())

	result, err := s.Scan(context.Background(), Request{
		SeedStart:  0,
		SeedEnd:    999,
		TargetCode: "JP",
	})
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(result.Hits) == 0 {
		t.Fatal("expected some JP seeds in 1000")
	}
	for _, hit := range result.Hits {
		if hit.TargetCode != "JP" {
			t.Errorf("seed %d: target %s escaped the filter", hit.Seed, hit.TargetCode)
		}
	}
}

func TestScanLimit(t *testing.T) {
	s := NewScanner(atlas.New())

	result, err := s.Scan(context.Background(), Request{
		SeedStart: 0,
		SeedEnd:   999,
		Limit:     5,
	})
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(result.Hits) != 5 {
		t.Errorf("limit not applied: got %d hits", len(result.Hits))
	}
	// Workers must not deadlock on a full hit channel: the whole range
	// still gets evaluated.
	if result.Summary.TotalEvaluated != 1000 {
		t.Errorf("evaluated %d, want 1000", result.Summary.TotalEvaluated)
	}
}

func TestScanInvalidRange(t *testing.T) {
	s := NewScanner(atlas.New())
	if _, err := s.Scan(context.Background(), Request{SeedStart: 10, SeedEnd: 5}); err != ErrInvalidRange {
		t.Errorf("got %v, want ErrInvalidRange", err)
	}
}

func TestScanRejectsBadOptions(t *testing.T) {
	s := NewScanner(atlas.New())

	cases := []struct {
		name string
		opts game.Options
	}{
		{"unknown region", game.Options{Region: "atlantis"}},
		{"unknown tier", game.Options{Tier: "impossible"}},
	}
	for _, tc := range cases {
		result, err := s.Scan(context.Background(), Request{SeedStart: 0, SeedEnd: 99, Options: tc.opts})
		if err == nil {
			t.Errorf("%s: expected an error, got result %+v", tc.name, result.Summary)
		}
		if result != nil {
			t.Errorf("%s: expected nil result alongside the error", tc.name)
		}
	}
}

func TestScanRejectsUnknownRegionWithTypedError(t *testing.T) {
	s := NewScanner(atlas.New())

	_, err := s.Scan(context.Background(), Request{
		SeedStart: 0,
		SeedEnd:   99,
		Options:   game.Options{Region: "atlantis"},
	})
	if !errors.Is(err, atlas.ErrUnknownRegion) {
		t.Errorf("got %v, want ErrUnknownRegion", err)
	}
}

func TestScanDeterministicHitSet(t *testing.T) {
	s := NewScanner(atlas.New())
	req := Request{SeedStart: 0, SeedEnd: 299, TargetOp: OpBetween, TargetVal: 0.2, TargetVal2: 0.4}

	runOnce := func() []Hit {
		result, err := s.Scan(context.Background(), req)
		if err != nil {
			t.Fatalf("Scan: %v", err)
		}
		hits := result.Hits
		sort.Slice(hits, func(i, j int) bool { return hits[i].Seed < hits[j].Seed })
		return hits
	}

	first := runOnce()
	second := runOnce()

	if len(first) != len(second) {
		t.Fatalf("hit counts differ: %d != %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("hit %d differs: %+v != %+v", i, first[i], second[i])
		}
	}
}
