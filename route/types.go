// Package route defines result types, heuristics and functional options
// for route searches over a metro.Network.
package route

import (
	"strings"

	"github.com/katalvlaran/metroroute/metro"
)

// Path is an ordered sequence of stations from the start to the goal, both inclusive.
type Path []metro.Station

// Keys returns the station keys of p in order.
func (p Path) Keys() []string {
	keys := make([]string, len(p))
	for i, st := range p {
		keys[i] = st.Key
	}

	return keys
}

// Hops returns the number of traversed connections (len(p)-1, or 0 for an empty path).
func (p Path) Hops() int {
	if len(p) == 0 {
		return 0
	}

	return len(p) - 1
}

// Transfers counts consecutive stations on different lines.
func (p Path) Transfers() int {
	var n int
	for i := 1; i < len(p); i++ {
		if p[i].Line != p[i-1].Line {
			n++
		}
	}

	return n
}

// String joins the display names with " -> ".
func (p Path) String() string {
	names := make([]string, len(p))
	for i, st := range p {
		names[i] = st.Name
	}

	return strings.Join(names, " -> ")
}

// Route is the outcome of FastestRoute: the path and its exact total travel time.
type Route struct {
	Path Path
	Time int64
}

// Option configures a search via functional arguments.
type Option func(*Options)

// Options holds the heuristic and hooks shared by both searches.
type Options struct {
	// Heuristic estimates the remaining time from a station to the goal.
	// Only FastestRoute consults it. Default: LineIndex.
	Heuristic Heuristic

	// OnExpand is called each time a station is expanded: on dequeue in
	// FewestHops, on closing in FastestRoute.
	OnExpand func(st metro.Station)
}

// DefaultOptions returns Options with the LineIndex heuristic and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Heuristic: LineIndex,
		OnExpand:  func(metro.Station) {},
	}
}

// WithHeuristic replaces the A* heuristic. A nil h is ignored.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h != nil {
			o.Heuristic = h
		}
	}
}

// WithOnExpand registers a callback run for each expanded station.
func WithOnExpand(fn func(st metro.Station)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
