package engine

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
)

// Stream is a deterministic float generator used for seeded rounds.
// Two streams built from the same seed produce the same sequence of
// draws, across processes and platforms, which is what daily challenges
// and head-to-head dogfights rely on.
//
// The core is Mulberry32, chosen because it is trivial to implement
// identically on the mobile client for local round verification.
type Stream struct {
	state uint32
}

// NewStream creates a deterministic stream from a 64-bit seed. The two
// halves of the seed are folded together so that seeds differing only
// in their high bits still produce distinct sequences.
func NewStream(seed int64) *Stream {
	s := uint64(seed)
	return &Stream{state: uint32(s) ^ uint32(s>>32)}
}

// next returns the next raw uint32 from the Mulberry32 sequence.
func (s *Stream) next() uint32 {
	s.state += 0x6D2B79F5
	t := s.state
	t = (t ^ (t >> 15)) * (t | 1)
	t ^= t + (t^(t>>7))*(t|61)
	return t ^ (t >> 14)
}

// Float64 returns the next float in [0, 1).
func (s *Stream) Float64() float64 {
	return float64(s.next()) / 4294967296.0
}

// Intn returns a uniform int in [0, n). Panics if n <= 0, matching
// math/rand semantics; an empty pool is a caller bug.
func (s *Stream) Intn(n int) int {
	if n <= 0 {
		panic(fmt.Sprintf("engine: Intn called with n=%d", n))
	}
	idx := int(s.Float64() * float64(n))
	if idx >= n {
		idx = n - 1
	}
	return idx
}

// InRange returns the next float mapped uniformly into [min, max).
func (s *Stream) InRange(min, max float64) float64 {
	return min + s.Float64()*(max-min)
}

// NewSeed mints a non-deterministic seed from crypto/rand for unseeded
// rounds. The seed is returned to the client so the round stays
// replayable after the fact.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("engine: read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// DailySeed derives the shared daily-challenge seed from the server key
// and a date string (YYYY-MM-DD). HMAC-SHA256 keeps the schedule
// unpredictable without the key while every server replica agrees on
// the same seed for a given day.
func DailySeed(key []byte, date string) int64 {
	h := hmac.New(sha256.New, key)
	h.Write([]byte("flit-daily:" + date))
	sum := h.Sum(nil)
	return int64(binary.BigEndian.Uint64(sum[:8]))
}
