// Package atlas is the country, region, and clue data source consumed
// by the round engine. All lookups are in-memory and read-only; the
// tables are generated offline from Natural Earth 10m shapefiles.
package atlas

import (
	"errors"
	"fmt"
	"sort"
)

// Coordinate is a WGS84 latitude/longitude pair in degrees.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Kind distinguishes whole countries from sub-national areas
// (US states, UK counties, and so on).
type Kind string

const (
	KindCountry Kind = "country"
	KindArea    Kind = "area"
)

// Target is the entity a round asks the player to find.
type Target struct {
	Code       string  // ISO 3166-1 alpha-2, or iso_3166_2 for areas
	Name       string
	Kind       Kind
	Difficulty float64 // [0, 1]; 0 = instantly recognizable, 1 = obscure
	Boundary   []Coordinate
	capital    *Coordinate
}

// Centroid returns the arithmetic mean of the target's boundary points.
func (t Target) Centroid() Coordinate {
	if len(t.Boundary) == 0 {
		return Coordinate{}
	}
	var lat, lon float64
	for _, p := range t.Boundary {
		lat += p.Lat
		lon += p.Lon
	}
	n := float64(len(t.Boundary))
	return Coordinate{Lat: lat / n, Lon: lon / n}
}

// Bounds is a geographic bounding box. Lon spans [MinLon, MaxLon) and
// never crosses the antimeridian in our region set.
type Bounds struct {
	MinLat, MaxLat float64
	MinLon, MaxLon float64
}

// Region is a bounded sub-national round pool, e.g. US states.
type Region struct {
	Key    string
	Name   string
	Bounds Bounds
	Areas  []Target
}

var (
	// ErrUnknownTarget is returned for codes absent from the dataset.
	ErrUnknownTarget = errors.New("atlas: unknown target code")
	// ErrUnknownRegion is returned for undefined region keys.
	ErrUnknownRegion = errors.New("atlas: unknown region key")
)

// Atlas bundles the static datasets behind one lookup surface.
type Atlas struct {
	targets map[string]Target
	order   []string // codes in stable sorted order
	regions map[string]Region
}

// New builds the default atlas from the embedded country and region
// tables.
func New() *Atlas {
	a := &Atlas{
		targets: make(map[string]Target, len(countries)),
		regions: make(map[string]Region, len(regions)),
	}
	for _, c := range countries {
		a.targets[c.Code] = c
		a.order = append(a.order, c.Code)
	}
	sort.Strings(a.order)
	for _, r := range regions {
		a.regions[r.Key] = r
		for _, area := range r.Areas {
			a.targets[area.Code] = area
		}
	}
	return a
}

// Target returns the target for the given code.
func (a *Atlas) Target(code string) (Target, error) {
	t, ok := a.targets[code]
	if !ok {
		return Target{}, fmt.Errorf("%w: %q", ErrUnknownTarget, code)
	}
	return t, nil
}

// Countries returns every country-level target in stable code order.
// The ordering matters: seeded rounds index into this slice, so it must
// be identical across processes.
func (a *Atlas) Countries() []Target {
	out := make([]Target, 0, len(a.order))
	for _, code := range a.order {
		out = append(out, a.targets[code])
	}
	return out
}

// CountriesFiltered returns country targets whose difficulty rating
// lies in [min, max], preserving stable order.
func (a *Atlas) CountriesFiltered(min, max float64) []Target {
	var out []Target
	for _, code := range a.order {
		t := a.targets[code]
		if t.Difficulty >= min && t.Difficulty <= max {
			out = append(out, t)
		}
	}
	return out
}

// Capital returns the capital-city coordinate for a country, if the
// dataset records one. Disputed territories may not have one.
func (a *Atlas) Capital(code string) (Coordinate, bool) {
	t, ok := a.targets[code]
	if !ok || t.capital == nil {
		return Coordinate{}, false
	}
	return *t.capital, true
}

// DifficultyRating returns the target's difficulty in [0, 1], or 0 for
// unknown codes.
func (a *Atlas) DifficultyRating(code string) float64 {
	return a.targets[code].Difficulty
}

// Region returns the region for the given key.
func (a *Atlas) Region(key string) (Region, error) {
	r, ok := a.regions[key]
	if !ok {
		return Region{}, fmt.Errorf("%w: %q", ErrUnknownRegion, key)
	}
	return r, nil
}

// RegionKeys lists the defined region keys in stable order.
func (a *Atlas) RegionKeys() []string {
	keys := make([]string, 0, len(a.regions))
	for k := range a.regions {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
