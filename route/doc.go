// Package route answers routing queries over a metro.Network.
//
// What
//
//   - FewestHops: breadth-first search; every connection costs one hop,
//     whatever its travel time. Returns a path with the minimum number of
//     connections between two stations.
//   - FastestRoute: A* search over travel times. Returns the path and its
//     exact total time in minutes, transfer connections included.
//
// Both searches are read-only, synchronous and allocate their own state, so
// any number of them may run against one fully built Network.
//
// Outcomes
//
//	Each search returns (result, ok). ok is false when the network is nil,
//	when either key is unknown, or when the two stations are disconnected.
//	No partial path is ever returned.
//
// Determinism
//
//	Neighbours are explored in connection insertion order, and A* breaks
//	priority ties by push order, so repeated queries return identical paths.
//
// Heuristics
//
//	LineIndex (default) reads the stop number after the first rune of each key
//	and charges 2 minutes per index step plus 2 for a line change. It suits
//	networks numbered like "K1".."K4" and is not admissible in general.
//	Uniform (always 0) turns A* into Dijkstra and is always optimal.
//
// Options
//
//   - WithHeuristic(h): replace the A* estimate.
//   - WithOnExpand(fn): observe each expanded station (logging, tracing).
//
// Usage
//
//	path, ok := route.FewestHops(n, "M1", "K4")
//	r, ok := route.FastestRoute(n, "M1", "K4", route.WithHeuristic(route.Uniform))
//	fmt.Println(r.Time, r.Path)
package route
