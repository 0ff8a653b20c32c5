package route

import (
	"strconv"
	"unicode/utf8"

	"github.com/katalvlaran/metroroute/metro"
)

// Heuristic estimates the remaining travel time from a station to the goal.
// A* returns optimal routes only when the estimate never exceeds the true
// remaining time for the network at hand.
type Heuristic func(from, goal metro.Station) int64

// Minutes charged by LineIndex per index step and per line change.
const (
	indexStepCost  = 2
	lineChangeCost = 2
)

// LineIndex is the default heuristic for networks keyed as a line letter
// followed by a stop number ("K1", "M4"):
//
//	h = 2·|index(from) − index(goal)|        on the same line
//	h = 2·|index(from) − index(goal)| + 2    otherwise
//
// The index is the integer after the key's first rune. If either key has no
// such suffix the estimate is 0, which falls back to uniform-cost search.
//
// The estimate follows the key numbering, not geography, so it is not
// admissible in general. Use Uniform for networks where it may overestimate.
func LineIndex(from, goal metro.Station) int64 {
	fi, ok := stopIndex(from.Key)
	if !ok {
		return 0
	}
	gi, ok := stopIndex(goal.Key)
	if !ok {
		return 0
	}

	d := fi - gi
	if d < 0 {
		d = -d
	}
	h := indexStepCost * d
	if from.Line != goal.Line {
		h += lineChangeCost
	}

	return h
}

// Uniform always estimates 0; FastestRoute then behaves as Dijkstra.
func Uniform(_, _ metro.Station) int64 { return 0 }

// stopIndex parses the portion of key after its first rune.
func stopIndex(key string) (int64, bool) {
	_, size := utf8.DecodeRuneInString(key)
	if size == 0 || size == len(key) {
		return 0, false
	}
	v, err := strconv.ParseInt(key[size:], 10, 64)
	if err != nil {
		return 0, false
	}

	return v, true
}
