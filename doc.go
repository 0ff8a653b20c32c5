// Package metroroute plans journeys across multi-line metro networks.
//
// The module is organized in three packages and one command:
//
//	metro/            station graph: stations, lines, symmetric weighted connections
//	route/            FewestHops (breadth-first) and FastestRoute (A*) searches
//	netfile/          YAML network definitions and the bundled Ankara network
//	cmd/metroroute/   command-line planner (route, demo, lines)
//
// Quick example:
//
//	K1 ──4── K2          red line
//	 │
//	 2                   transfer at Kızılay
//	 │
//	M2 ──5── M1          blue line
//
//	n := metro.NewNetwork()
//	n.AddStation("K1", "Kızılay", "red")
//	...
//	r, ok := route.FastestRoute(n, "M1", "K2")
//
//	go install github.com/katalvlaran/metroroute/cmd/metroroute@latest
package metroroute
