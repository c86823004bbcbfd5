// Package game implements the round engine: session lifecycle,
// telemetry capture, and deterministic scoring.
package game

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/flitgame/flit-server/internal/atlas"
)

// ErrClueMismatch is returned when a session is constructed with a clue
// that describes a different target than the one being played.
var ErrClueMismatch = errors.New("game: clue does not describe the session target")

// Session owns one round of play: the ground truth chosen at round
// start, the telemetry recorded during flight, and the score derived
// after completion.
//
// A Session belongs to the game loop that created it and is not safe
// for concurrent use.
type Session struct {
	target        atlas.Target
	clue          atlas.Clue
	startPosition atlas.Coordinate
	startTime     time.Time
	endTime       time.Time
	completed     bool
	flightPath    []atlas.Coordinate
	hintsUsed     int
	fuelFraction  float64
}

// NewSession starts a round against the given target. The clue must
// describe the same target; a mismatch is an integration bug in the
// caller, not a gameplay condition.
func NewSession(target atlas.Target, clue atlas.Clue, start atlas.Coordinate) (*Session, error) {
	if target.Code == "" {
		return nil, fmt.Errorf("game: session requires a target")
	}
	if clue.TargetCode != target.Code {
		return nil, fmt.Errorf("%w: clue=%q target=%q", ErrClueMismatch, clue.TargetCode, target.Code)
	}
	return &Session{
		target:        target,
		clue:          clue,
		startPosition: start,
		startTime:     time.Now(),
		fuelFraction:  1.0,
	}, nil
}

// RecordPosition appends the position to the flight path. Coordinates
// are value types, so the recorded history cannot be mutated through
// the caller's copy. Recording after completion is permitted but no
// longer affects the score.
func (s *Session) RecordPosition(p atlas.Coordinate) {
	s.flightPath = append(s.flightPath, p)
}

// Complete finalizes the round exactly once. The fuel fraction is
// clamped to [0, 1] before storage; upstream fuel tracking drifts a
// little and should never crash a round. Calls after the first are
// ignored, which guards against double-tap completion events.
func (s *Session) Complete(hintsUsed int, fuelFraction float64) {
	if s.completed {
		return
	}
	s.completed = true
	s.hintsUsed = hintsUsed
	s.fuelFraction = clamp01(fuelFraction)
	s.endTime = time.Now()
}

// RawScore is the difficulty-independent score: the maximum minus hint
// and fuel penalties, clamped to [0, MaxScore]. Zero until completion.
func (s *Session) RawScore() int {
	if !s.completed {
		return 0
	}
	return clampScore(MaxScore - HintPenalty(s.hintsUsed) - FuelPenalty(s.fuelFraction))
}

// Score is the final round score: the raw score weighted by the
// target's difficulty multiplier. Zero until completion.
func (s *Session) Score() int {
	if !s.completed {
		return 0
	}
	weighted := math.Round(float64(s.RawScore()) * DifficultyMultiplier(s.target.Difficulty))
	return clampScore(int(weighted))
}

// TargetPosition is where the player must end up. Sub-national areas
// use the boundary centroid. Countries use the recorded capital when
// the atlas has one; territories without a capital fall back to the
// centroid.
func (s *Session) TargetPosition(src *atlas.Atlas) atlas.Coordinate {
	if s.target.Kind == atlas.KindArea {
		return s.target.Centroid()
	}
	if capital, ok := src.Capital(s.target.Code); ok {
		return capital
	}
	return s.target.Centroid()
}

// Target returns the round's ground truth.
func (s *Session) Target() atlas.Target { return s.target }

// Clue returns the round's clue payload.
func (s *Session) Clue() atlas.Clue { return s.clue }

// StartPosition returns the spawn coordinate.
func (s *Session) StartPosition() atlas.Coordinate { return s.startPosition }

// StartTime returns when the session was constructed.
func (s *Session) StartTime() time.Time { return s.startTime }

// EndTime returns the completion timestamp; ok is false before
// Complete has been called.
func (s *Session) EndTime() (time.Time, bool) {
	return s.endTime, s.completed
}

// Completed reports whether the round has been finalized.
func (s *Session) Completed() bool { return s.completed }

// HintsUsed returns the hint count supplied at completion.
func (s *Session) HintsUsed() int { return s.hintsUsed }

// FuelFraction returns the clamped fuel remaining at completion.
func (s *Session) FuelFraction() float64 { return s.fuelFraction }

// Elapsed returns the round duration once completed, or the time since
// start for a live round.
func (s *Session) Elapsed() time.Duration {
	if s.completed {
		return s.endTime.Sub(s.startTime)
	}
	return time.Since(s.startTime)
}

// FlightPath returns a copy of the recorded positions in recording
// order.
func (s *Session) FlightPath() []atlas.Coordinate {
	out := make([]atlas.Coordinate, len(s.flightPath))
	copy(out, s.flightPath)
	return out
}
