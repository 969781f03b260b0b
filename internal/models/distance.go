package models

import (
	"fmt"
	"strings"
)

// MaximumSprintDistance is the longest distance, in furlongs, still treated as a sprint.
const MaximumSprintDistance = 7.5

// DistanceKey buckets races into sprints and routes.
type DistanceKey int

const (
	Sprint DistanceKey = iota
	Route
)

// DistanceKeys returns both buckets in rendering order.
func DistanceKeys() []DistanceKey {
	return []DistanceKey{Sprint, Route}
}

// DistanceKeyFor buckets a distance given in furlongs.
func DistanceKeyFor(furlongs float64) DistanceKey {
	if furlongs <= MaximumSprintDistance {
		return Sprint
	}
	return Route
}

// Matches reports whether a distance in furlongs falls in this bucket.
func (k DistanceKey) Matches(furlongs float64) bool {
	return DistanceKeyFor(furlongs) == k
}

// ParseDistanceKey parses "sprint" or "route" in any letter case.
func ParseDistanceKey(name string) (DistanceKey, error) {
	switch strings.ToUpper(name) {
	case "SPRINT":
		return Sprint, nil
	case "ROUTE":
		return Route, nil
	default:
		return Sprint, fmt.Errorf("%w: %q", ErrUnknownDistanceKey, name)
	}
}

// Label is the plural column label used in guide headers.
func (k DistanceKey) Label() string {
	if k == Route {
		return "Routes"
	}
	return "Sprints"
}

func (k DistanceKey) String() string {
	if k == Route {
		return "ROUTE"
	}
	return "SPRINT"
}

// Furlongs converts a raw chart distance (hundredths of a furlong) to furlongs.
func Furlongs(hundredths int) float64 {
	return float64(hundredths) / 100
}

// RoundedFurlongs converts a raw chart distance to furlongs rounded to one decimal.
func RoundedFurlongs(hundredths int) float64 {
	return Round(Furlongs(hundredths), 1)
}
