package game

import (
	"errors"
	"fmt"

	"github.com/flitgame/flit-server/internal/atlas"
	"github.com/flitgame/flit-server/internal/engine"
)

// Tier filters the whole-world candidate pool by difficulty rating.
type Tier string

const (
	TierEasy   Tier = "easy"
	TierNormal Tier = "normal"
	TierHard   Tier = "hard"
)

const (
	easyMaxRating = 0.35
	hardMinRating = 0.65
)

// Start positions avoid extreme polar latitudes; there is nothing to
// find up there and the map projection degrades.
const (
	worldMinLat = -70.0
	worldMaxLat = 70.0
	worldMinLon = -180.0
	worldMaxLon = 180.0
)

// ErrEmptyPool means the difficulty filter left no candidate targets.
// That is a data-configuration problem and the round must not be
// silently degraded into a different tier.
var ErrEmptyPool = errors.New("game: no targets match the requested filters")

// Options are the construction-time policies for a round. The zero
// value is a whole-world round at normal difficulty with every clue
// type allowed.
type Options struct {
	// Region selects a bounded sub-national round (atlas region key).
	// Empty means whole world.
	Region string
	// PreferredClue is used whenever the target can support it.
	PreferredClue atlas.ClueType
	// AllowedClues restricts candidate clue types; nil allows all.
	AllowedClues []atlas.ClueType
	// Tier filters the target pool. Empty means TierNormal.
	Tier Tier
}

// NewRandomSession builds an unseeded round. The seed is minted from
// crypto/rand and returned so the round stays replayable; two players
// can re-run it with NewSeededSession.
func NewRandomSession(src *atlas.Atlas, opts Options) (*Session, int64, error) {
	seed, err := engine.NewSeed()
	if err != nil {
		return nil, 0, err
	}
	s, err := NewSeededSession(src, seed, opts)
	if err != nil {
		return nil, 0, err
	}
	return s, seed, nil
}

// NewSeededSession builds a round deterministically from a seed. Every
// input the round depends on is drawn from a single seeded stream in a
// fixed order (target index, clue, longitude, latitude), so the same
// seed and options always produce the same round. Daily challenges and
// dogfights are built on this property.
func NewSeededSession(src *atlas.Atlas, seed int64, opts Options) (*Session, error) {
	rng := engine.NewStream(seed)
	if opts.Region != "" {
		return newRegionSession(src, rng, opts)
	}
	return newWorldSession(src, rng, opts)
}

func newWorldSession(src *atlas.Atlas, rng *engine.Stream, opts Options) (*Session, error) {
	pool, err := tierPool(src, opts.Tier)
	if err != nil {
		return nil, err
	}
	if len(pool) == 0 {
		return nil, fmt.Errorf("%w: tier=%q", ErrEmptyPool, opts.Tier)
	}

	target := pool[rng.Intn(len(pool))]

	clue, err := pickClue(src, rng, target, opts)
	if err != nil {
		return nil, err
	}

	start := atlas.Coordinate{
		Lon: rng.InRange(worldMinLon, worldMaxLon),
		Lat: rng.InRange(worldMinLat, worldMaxLat),
	}

	return NewSession(target, clue, start)
}

func newRegionSession(src *atlas.Atlas, rng *engine.Stream, opts Options) (*Session, error) {
	region, err := src.Region(opts.Region)
	if err != nil {
		return nil, err
	}
	if len(region.Areas) == 0 {
		return nil, fmt.Errorf("%w: region=%q", ErrEmptyPool, opts.Region)
	}

	area := region.Areas[rng.Intn(len(region.Areas))]
	clue := atlas.AreaClue(area)

	start := atlas.Coordinate{
		Lon: rng.InRange(region.Bounds.MinLon, region.Bounds.MaxLon),
		Lat: rng.InRange(region.Bounds.MinLat, region.Bounds.MaxLat),
	}

	return NewSession(area, clue, start)
}

// ValidateOptions checks round policies without consuming a seed.
// Batch callers like the scanner use it to reject a bad configuration
// once, up front, instead of failing on every seed.
func ValidateOptions(src *atlas.Atlas, opts Options) error {
	if opts.Region != "" {
		region, err := src.Region(opts.Region)
		if err != nil {
			return err
		}
		if len(region.Areas) == 0 {
			return fmt.Errorf("%w: region=%q", ErrEmptyPool, opts.Region)
		}
		return nil
	}
	pool, err := tierPool(src, opts.Tier)
	if err != nil {
		return err
	}
	if len(pool) == 0 {
		return fmt.Errorf("%w: tier=%q", ErrEmptyPool, opts.Tier)
	}
	return nil
}

func tierPool(src *atlas.Atlas, tier Tier) ([]atlas.Target, error) {
	switch tier {
	case TierEasy:
		return src.CountriesFiltered(0, easyMaxRating), nil
	case TierHard:
		return src.CountriesFiltered(hardMinRating, 1), nil
	case TierNormal, "":
		return src.Countries(), nil
	default:
		return nil, fmt.Errorf("game: unknown difficulty tier %q", tier)
	}
}

// pickClue chooses among the target's candidate clues. The preferred
// type wins outright when available; otherwise one draw selects from
// the candidates. The candidate order is fixed by the atlas, so the
// choice is reproducible for a given seed and options.
func pickClue(src *atlas.Atlas, rng *engine.Stream, target atlas.Target, opts Options) (atlas.Clue, error) {
	candidates := src.CluesFor(target.Code, opts.AllowedClues)
	if len(candidates) == 0 {
		return atlas.Clue{}, fmt.Errorf("%w: no clues for %q with allowed types %v",
			ErrEmptyPool, target.Code, opts.AllowedClues)
	}
	if opts.PreferredClue != "" {
		for _, c := range candidates {
			if c.Type == opts.PreferredClue {
				return c, nil
			}
		}
	}
	return candidates[rng.Intn(len(candidates))], nil
}
