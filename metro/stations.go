// SPDX-License-Identifier: MIT
//
// File: stations.go
// Role: Station lifecycle and queries.
// Determinism:
//   - Stations() returns records sorted by key ascending.
//   - Lines() returns line ids sorted ascending; LineStations keeps insertion order.

package metro

import "sort"

// AddStation registers a station under line if key is not yet present.
//
// Implementation:
//   - Stage 1: Validate non-empty key (ErrEmptyKey).
//   - Stage 2: Under the write lock, return early when key already exists.
//   - Stage 3: Allocate the node and append key to the line index.
//
// Behavior highlights:
//   - Idempotent: an existing key is left untouched, even if name or line differ.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (n *Network) AddStation(key, name, line string) error {
	if key == "" {
		return ErrEmptyKey
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	if _, exists := n.stations[key]; exists {
		return nil // first registration wins
	}

	n.stations[key] = &node{station: Station{Key: key, Name: name, Line: line}}
	n.lines[line] = append(n.lines[line], key)

	return nil
}

// HasStation reports whether key is registered (empty key ⇒ false).
func (n *Network) HasStation(key string) bool {
	if key == "" {
		return false
	}
	n.mu.RLock()
	defer n.mu.RUnlock()
	_, ok := n.stations[key]

	return ok
}

// Station returns the record registered under key.
func (n *Network) Station(key string) (Station, bool) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	nd, ok := n.stations[key]
	if !ok {
		return Station{}, false
	}

	return nd.station, true
}

// Stations returns every registered station sorted by key.
// Complexity: O(S log S).
func (n *Network) Stations() []Station {
	n.mu.RLock()
	defer n.mu.RUnlock()

	out := make([]Station, 0, len(n.stations))
	for _, nd := range n.stations {
		out = append(out, nd.station)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })

	return out
}

// StationCount returns the number of registered stations.
func (n *Network) StationCount() int {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return len(n.stations)
}

// Lines returns every line id that has at least one station, sorted ascending.
func (n *Network) Lines() []string {
	n.mu.RLock()
	defer n.mu.RUnlock()

	ids := make([]string, 0, len(n.lines))
	for id := range n.lines {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// LineStations returns the stations registered under line in insertion order.
// An unknown line yields an empty slice.
func (n *Network) LineStations(line string) []Station {
	n.mu.RLock()
	defer n.mu.RUnlock()

	keys := n.lines[line]
	out := make([]Station, 0, len(keys))
	for _, k := range keys {
		out = append(out, n.stations[k].station)
	}

	return out
}
