// SPDX-License-Identifier: MIT
//
// File: connections.go
// Role: Connection lifecycle and adjacency queries.
// Determinism:
//   - Links(key) returns entries in the order connections were added.
// Concurrency:
//   - AddConnection mutates both endpoints under one write lock, so no reader
//     ever observes a half-mirrored connection.

package metro

import "fmt"

// AddConnection joins keyA and keyB with an undirected connection of the given travel time.
//
// Implementation:
//   - Stage 1: Validate time (ErrNegativeTime) and distinct endpoints (ErrSelfConnection).
//   - Stage 2: Under the write lock, resolve both keys (ErrStationNotFound).
//   - Stage 3: Append Link{keyB,time} to keyA and Link{keyA,time} to keyB.
//
// Behavior highlights:
//   - Parallel connections between the same pair are kept; each call appends.
//   - On error nothing is written.
//
// Errors:
//   - ErrEmptyKey: either key is "".
//   - ErrNegativeTime: time < 0.
//   - ErrSelfConnection: keyA == keyB.
//   - ErrStationNotFound: wrapped with the missing key.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (n *Network) AddConnection(keyA, keyB string, time int64) error {
	if keyA == "" || keyB == "" {
		return ErrEmptyKey
	}
	if time < 0 {
		return fmt.Errorf("%w: %s–%s time=%d", ErrNegativeTime, keyA, keyB, time)
	}
	if keyA == keyB {
		return fmt.Errorf("%w: %q", ErrSelfConnection, keyA)
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	a, ok := n.stations[keyA]
	if !ok {
		return fmt.Errorf("%w: %q", ErrStationNotFound, keyA)
	}
	b, ok := n.stations[keyB]
	if !ok {
		return fmt.Errorf("%w: %q", ErrStationNotFound, keyB)
	}

	a.links = append(a.links, Link{To: keyB, Time: time})
	b.links = append(b.links, Link{To: keyA, Time: time})
	n.connections++

	return nil
}

// Links returns a copy of the adjacency entries of key, in insertion order.
//
// Errors:
//   - ErrStationNotFound: wrapped with the unknown key.
func (n *Network) Links(key string) ([]Link, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	nd, ok := n.stations[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrStationNotFound, key)
	}
	out := make([]Link, len(nd.links))
	copy(out, nd.links)

	return out, nil
}

// ConnectionCount returns the number of undirected connections added so far.
func (n *Network) ConnectionCount() int {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.connections
}
