// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Station, Link and Network declarations, sentinel errors and the constructor.
// Policy:
//   - Stations are owned by exactly one registry (Network.stations).
//   - Adjacency entries reference neighbours by key, never by pointer.
//   - A single sync.RWMutex guards the registry, line index and adjacency.

package metro

import (
	"errors"
	"sync"
)

// Sentinel errors for network construction and lookup.
var (
	// ErrEmptyKey indicates that a station key is the empty string.
	ErrEmptyKey = errors.New("metro: station key is empty")

	// ErrStationNotFound indicates an operation referenced a key absent from the network.
	ErrStationNotFound = errors.New("metro: station not found")

	// ErrNegativeTime indicates a connection with a negative travel time.
	ErrNegativeTime = errors.New("metro: travel time must be non-negative")

	// ErrSelfConnection indicates a connection from a station to itself.
	ErrSelfConnection = errors.New("metro: station cannot connect to itself")
)

// Station is the record exposed to callers for one stop on one line.
//
// Two records may share a Name (a transfer point) but never a Key.
type Station struct {
	// Key uniquely identifies the station within its Network (e.g. "K1").
	Key string

	// Name is the human-readable display name (e.g. "Kızılay").
	Name string

	// Line is the identifier of the line this record belongs to.
	Line string
}

// Link is one directed adjacency entry: the neighbour key and the travel time to it.
// Every undirected connection is stored as two mirrored Links.
type Link struct {
	// To is the key of the neighbouring station.
	To string

	// Time is the travel time in minutes; always >= 0.
	Time int64
}

// node is the registry slot for a station and its outgoing links.
type node struct {
	station Station
	links   []Link
}

// Network is the in-memory transit graph.
//
// stations is the owning arena keyed by station key; lines keeps, per line id,
// the keys inserted under that line in insertion order. connections counts
// undirected connections (each one contributes two Links).
type Network struct {
	mu sync.RWMutex // guards everything below

	stations    map[string]*node    // key → node
	lines       map[string][]string // line id → keys in insertion order
	connections int
}

// NewNetwork creates an empty Network.
// Complexity: O(1)
func NewNetwork() *Network {
	return &Network{
		stations: make(map[string]*node),
		lines:    make(map[string][]string),
	}
}
