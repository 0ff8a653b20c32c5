// Package metro provides the station graph of a multi-line transit network:
// stations grouped by line and joined by symmetric, weighted connections.
//
// The Network N = (S, C) is built once and read many times:
//
//   - AddStation(key, name, line) registers a station under a line.
//     Re-adding an existing key is a no-op: the first registration wins and
//     neither the name nor the line is updated.
//   - AddConnection(a, b, minutes) joins two registered stations. The travel
//     time is mirrored onto both endpoints, so if a lists b with weight w then
//     b lists a with weight w.
//
// There are no removal or update operations.
//
// Ownership:
//
//	Stations live in a single registry keyed by station key. Adjacency entries
//	(Link) name their neighbour by key instead of pointing at it, so mutually
//	adjacent stations never form reference cycles and every mutation goes
//	through the Network.
//
// Transfers:
//
//	A transfer between lines at one physical location is two station records
//	sharing a display name (e.g. "K1 Kızılay" on the red line and "M2 Kızılay"
//	on the blue line) joined by an ordinary connection. The package has no
//	other notion of "same place, different line".
//
// Determinism:
//
//   - Stations() is sorted by key, Lines() by line id.
//   - LineStations(line) and Links(key) keep insertion order.
//
// Concurrency:
//
//	Every method takes the Network's RWMutex, so individual calls are safe from
//	multiple goroutines. Building the network while a route query runs is the
//	caller's problem: searches read adjacency station by station and would see
//	a half-built topology.
//
// Errors:
//
//	ErrEmptyKey        – zero-length station key
//	ErrStationNotFound – connection or lookup on an unknown key
//	ErrNegativeTime    – connection with travel time < 0
//	ErrSelfConnection  – connection from a station to itself
package metro
