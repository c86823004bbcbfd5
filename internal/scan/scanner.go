// Package scan replays seeded rounds across a seed range to find seeds
// whose round matches a curation criterion. It is the tool behind
// daily-challenge and dogfight seed selection: rather than shipping an
// arbitrary seed, the curator scans for seeds that land in a wanted
// difficulty band or clue type.
package scan

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/flitgame/flit-server/internal/atlas"
	"github.com/flitgame/flit-server/internal/game"
)

// TargetOp compares a round's difficulty rating against the request.
type TargetOp string

const (
	OpEqual        TargetOp = "eq"
	OpGreater      TargetOp = "gt"
	OpGreaterEqual TargetOp = "ge"
	OpLess         TargetOp = "lt"
	OpLessEqual    TargetOp = "le"
	OpBetween      TargetOp = "between"
)

// Request describes a seed-range scan.
type Request struct {
	SeedStart int64        `json:"seed_start"`
	SeedEnd   int64        `json:"seed_end"`
	Options   game.Options `json:"options"`

	// Difficulty criterion. Empty TargetOp accepts every round.
	TargetOp   TargetOp `json:"target_op,omitempty"`
	TargetVal  float64  `json:"target_val,omitempty"`
	TargetVal2 float64  `json:"target_val2,omitempty"` // for "between"
	Tolerance  float64  `json:"tolerance,omitempty"`

	// Optional exact filters applied after the difficulty criterion.
	ClueType   atlas.ClueType `json:"clue_type,omitempty"`
	TargetCode string         `json:"target_code,omitempty"`

	Limit     int `json:"limit,omitempty"`
	TimeoutMs int `json:"timeout_ms,omitempty"`
}

// Hit is one seed whose round matched.
type Hit struct {
	Seed       int64          `json:"seed"`
	TargetCode string         `json:"target_code"`
	ClueType   atlas.ClueType `json:"clue_type"`
	Difficulty float64        `json:"difficulty"`
}

// Summary aggregates a finished scan.
type Summary struct {
	TotalEvaluated uint64  `json:"total_evaluated"`
	HitsFound      int     `json:"hits_found"`
	MinDifficulty  float64 `json:"min_difficulty"`
	MaxDifficulty  float64 `json:"max_difficulty"`
	MeanDifficulty float64 `json:"mean_difficulty"`
	TimedOut       bool    `json:"timed_out,omitempty"`
}

// Result is the complete scan outcome.
type Result struct {
	Hits    []Hit   `json:"hits"`
	Summary Summary `json:"summary"`
	Echo    Request `json:"echo"`
}

// evaluator checks a round's difficulty against the requested band.
type evaluator struct {
	op        TargetOp
	val1      float64
	val2      float64
	tolerance float64
}

func (e *evaluator) matches(rating float64) bool {
	switch e.op {
	case "":
		return true
	case OpEqual:
		return abs(rating-e.val1) <= e.tolerance
	case OpGreater:
		return rating > e.val1+e.tolerance
	case OpGreaterEqual:
		return rating >= e.val1-e.tolerance
	case OpLess:
		return rating < e.val1-e.tolerance
	case OpLessEqual:
		return rating <= e.val1+e.tolerance
	case OpBetween:
		return rating >= e.val1-e.tolerance && rating <= e.val2+e.tolerance
	default:
		return false
	}
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

// job is a batch of seeds handed to one worker.
type job struct {
	start, end int64
}

// Scanner replays seeded rounds in parallel across a seed range.
type Scanner struct {
	src         *atlas.Atlas
	workerCount int
}

// NewScanner creates a scanner over the given atlas with one worker
// per available CPU.
func NewScanner(src *atlas.Atlas) *Scanner {
	return &Scanner{
		src:         src,
		workerCount: runtime.GOMAXPROCS(0),
	}
}

// Scan walks the seed range, replaying the seeded factory for each
// seed and collecting the matches. Hits arrive in nondeterministic
// order across workers; callers needing stable output sort by seed.
func (s *Scanner) Scan(ctx context.Context, req Request) (*Result, error) {
	if req.SeedEnd < req.SeedStart {
		return nil, ErrInvalidRange
	}
	if err := game.ValidateOptions(s.src, req.Options); err != nil {
		return nil, err
	}

	if req.TimeoutMs > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(req.TimeoutMs)*time.Millisecond)
		defer cancel()
	}

	eval := &evaluator{
		op:        req.TargetOp,
		val1:      req.TargetVal,
		val2:      req.TargetVal2,
		tolerance: req.Tolerance,
	}

	jobs := make(chan job, s.workerCount*2)
	hits := make(chan Hit, 256)

	var evaluated uint64
	var wg sync.WaitGroup

	for i := 0; i < s.workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.worker(ctx, jobs, hits, req, eval, &evaluated)
		}()
	}

	go generateJobs(ctx, jobs, req.SeedStart, req.SeedEnd)

	// Close the hit channel once every worker has drained its jobs so
	// the collector below terminates.
	go func() {
		wg.Wait()
		close(hits)
	}()

	result := collect(ctx, hits, req.Limit, &evaluated)
	result.Echo = req
	return result, nil
}

func (s *Scanner) worker(ctx context.Context, jobs <-chan job, hits chan<- Hit, req Request, eval *evaluator, evaluated *uint64) {
	for {
		select {
		case j, ok := <-jobs:
			if !ok {
				return
			}
			s.processJob(ctx, j, hits, req, eval, evaluated)
		case <-ctx.Done():
			return
		}
	}
}

func (s *Scanner) processJob(ctx context.Context, j job, hits chan<- Hit, req Request, eval *evaluator, evaluated *uint64) {
	for seed := j.start; seed <= j.end; seed++ {
		select {
		case <-ctx.Done():
			return
		default:
		}

		session, err := game.NewSeededSession(s.src, seed, req.Options)
		atomic.AddUint64(evaluated, 1)
		if err != nil {
			// Options were validated before the workers started, so a
			// failure here is clue exhaustion for this seed's target;
			// the seed cannot match.
			continue
		}

		target := session.Target()
		if !eval.matches(target.Difficulty) {
			continue
		}
		if req.ClueType != "" && session.Clue().Type != req.ClueType {
			continue
		}
		if req.TargetCode != "" && target.Code != req.TargetCode {
			continue
		}

		hit := Hit{
			Seed:       seed,
			TargetCode: target.Code,
			ClueType:   session.Clue().Type,
			Difficulty: target.Difficulty,
		}
		select {
		case hits <- hit:
		case <-ctx.Done():
			return
		}
	}
}

// generateJobs slices the seed range into batches. Seed scans replay a
// full factory per seed, so batches are smaller than a raw-PRNG scan
// would use.
func generateJobs(ctx context.Context, jobs chan<- job, start, end int64) {
	defer close(jobs)

	const batchSize = 1024

	for current := start; ; {
		batchEnd := current + batchSize - 1
		if batchEnd > end || batchEnd < current { // overflow guard
			batchEnd = end
		}

		select {
		case jobs <- job{start: current, end: batchEnd}:
		case <-ctx.Done():
			return
		}

		if batchEnd == end {
			return
		}
		current = batchEnd + 1
	}
}

func collect(ctx context.Context, hits <-chan Hit, limit int, evaluated *uint64) *Result {
	result := &Result{Hits: []Hit{}}

	var sum float64
	first := true

	for hit := range hits {
		if limit > 0 && len(result.Hits) >= limit {
			// Keep draining so workers never block, but drop extras.
			continue
		}
		result.Hits = append(result.Hits, hit)
		if first || hit.Difficulty < result.Summary.MinDifficulty {
			result.Summary.MinDifficulty = hit.Difficulty
		}
		if first || hit.Difficulty > result.Summary.MaxDifficulty {
			result.Summary.MaxDifficulty = hit.Difficulty
		}
		first = false
		sum += hit.Difficulty
	}

	result.Summary.TotalEvaluated = atomic.LoadUint64(evaluated)
	result.Summary.HitsFound = len(result.Hits)
	if len(result.Hits) > 0 {
		result.Summary.MeanDifficulty = sum / float64(len(result.Hits))
	}
	result.Summary.TimedOut = ctx.Err() != nil

	return result
}
