package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/flitgame/flit-server/internal/atlas"
	"github.com/flitgame/flit-server/internal/game"
	"github.com/flitgame/flit-server/internal/scan"
)

// flit-scan replays seed ranges locally for curation work: finding
// seeds that land on specific targets or difficulty bands without
// going through the API.
func main() {
	var (
		seedStart  = flag.Int64("start", 0, "first seed in the range")
		seedEnd    = flag.Int64("end", 9999, "last seed in the range (inclusive)")
		tier       = flag.String("tier", "", "tier filter: easy, normal, hard")
		region     = flag.String("region", "", "region key for area rounds")
		targetCode = flag.String("target", "", "only report seeds landing on this target code")
		clueType   = flag.String("clue", "", "only report seeds with this clue type")
		minDiff    = flag.Float64("min-difficulty", -1, "only report rounds at or above this difficulty")
		limit      = flag.Int("limit", 25, "stop reporting after this many hits (0 = unlimited)")
		show       = flag.Int64("show", -1, "print the full round setup for a single seed and exit")
	)
	flag.Parse()

	src := atlas.New()

	if *show >= 0 {
		if err := printRound(src, *show, game.Options{
			Tier:   game.Tier(*tier),
			Region: *region,
		}); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	req := scan.Request{
		SeedStart: *seedStart,
		SeedEnd:   *seedEnd,
		Options: game.Options{
			Tier:   game.Tier(*tier),
			Region: *region,
		},
		TargetCode: *targetCode,
		ClueType:   atlas.ClueType(*clueType),
		Limit:      *limit,
	}
	if *minDiff >= 0 {
		req.TargetOp = scan.OpGreaterEqual
		req.TargetVal = *minDiff
	}

	scanner := scan.NewScanner(src)
	result, err := scanner.Scan(context.Background(), req)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	sort.Slice(result.Hits, func(i, j int) bool { return result.Hits[i].Seed < result.Hits[j].Seed })

	fmt.Printf("Evaluated %d seeds, %d hits\n", result.Summary.TotalEvaluated, len(result.Hits))
	if len(result.Hits) > 0 {
		fmt.Printf("Difficulty min=%.2f max=%.2f mean=%.2f\n\n",
			result.Summary.MinDifficulty, result.Summary.MaxDifficulty, result.Summary.MeanDifficulty)
		fmt.Printf("%-12s %-6s %-10s %s\n", "SEED", "CODE", "CLUE", "DIFFICULTY")
		for _, h := range result.Hits {
			fmt.Printf("%-12d %-6s %-10s %.2f\n", h.Seed, h.TargetCode, h.ClueType, h.Difficulty)
		}
	}
}

// printRound replays one seed and dumps everything a round carries,
// plus a score table across hint and fuel combinations.
func printRound(src *atlas.Atlas, seed int64, opts game.Options) error {
	session, err := game.NewSeededSession(src, seed, opts)
	if err != nil {
		return err
	}

	target := session.Target()
	clue := session.Clue()
	start := session.StartPosition()

	fmt.Printf("Seed:       %d\n", seed)
	fmt.Printf("Target:     %s (%s)\n", target.Name, target.Code)
	fmt.Printf("Difficulty: %.2f (multiplier %.3f)\n", target.Difficulty, game.DifficultyMultiplier(target.Difficulty))
	fmt.Printf("Clue:       %s %q\n", clue.Type, clue.Text)
	fmt.Printf("Start:      lat=%.4f lon=%.4f\n\n", start.Lat, start.Lon)

	fmt.Printf("%-6s %-6s %-9s %s\n", "HINTS", "FUEL", "RAW", "SCORE")
	for _, hints := range []int{0, 1, 2, 4} {
		for _, fuel := range []float64{1.0, 0.5, 0.0} {
			s, err := game.NewSeededSession(src, seed, opts)
			if err != nil {
				return err
			}
			s.Complete(hints, fuel)
			fmt.Printf("%-6d %-6.2f %-9d %d\n", hints, fuel, s.RawScore(), s.Score())
		}
	}
	return nil
}
