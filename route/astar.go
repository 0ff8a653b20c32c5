package route

import (
	"container/heap"

	"github.com/katalvlaran/metroroute/metro"
)

// FastestRoute returns the route from start to goal with the least total
// travel time, searched with A* under the configured Heuristic (LineIndex by
// default).
//
// The second result is false when n is nil, when either key is unknown, or
// when goal is unreachable. start == goal yields ([start], 0).
//
// Algorithm:
//
//  1. Seed the queue with start, g=0, f=h(start,goal).
//  2. Pop the entry with minimum f, ties broken by push order. Skip it if its
//     station is already closed; return its path and g if it is the goal.
//  3. Close the station and relax each link: when the neighbour has no g yet
//     or g+time improves on it, record the new g and push f=g'+h(neighbour,goal).
//  4. An empty queue means no route.
//
// Optimality holds when the heuristic never overestimates the remaining time.
// The returned Time is always the exact sum of the link times along Path,
// because every queue entry carries its own trail.
//
// Complexity: O((S + C) log C) time, O(S + C) memory (lazy decrease-key).
func FastestRoute(n *metro.Network, start, goal string, opts ...Option) (Route, bool) {
	if n == nil {
		return Route{}, false
	}
	src, ok := n.Station(start)
	if !ok {
		return Route{}, false
	}
	dst, ok := n.Station(goal)
	if !ok {
		return Route{}, false
	}

	r := &runner{
		net:    n,
		opts:   buildOptions(opts),
		goal:   dst,
		cost:   make(map[string]int64),
		closed: make(map[string]bool),
		pq:     make(entryPQ, 0, n.StationCount()),
	}
	r.init(src)

	return r.process()
}

// runner holds the mutable state for a single FastestRoute execution.
type runner struct {
	net    *metro.Network
	opts   Options
	goal   metro.Station
	cost   map[string]int64 // best known g per station key
	closed map[string]bool  // finalized stations
	pq     entryPQ
	seq    uint64 // next tie-break counter
}

// init records g(start)=0 and pushes the seed entry.
func (r *runner) init(src metro.Station) {
	r.cost[src.Key] = 0
	heap.Init(&r.pq)
	r.push(src, 0, &trail{station: src})
}

// push enqueues st with cost g and a fresh sequence number.
func (r *runner) push(st metro.Station, g int64, t *trail) {
	heap.Push(&r.pq, &entry{
		station: st,
		g:       g,
		f:       g + r.opts.Heuristic(st, r.goal),
		seq:     r.seq,
		trail:   t,
	})
	r.seq++
}

// process is the main A* loop.
func (r *runner) process() (Route, bool) {
	for r.pq.Len() > 0 {
		cur := heap.Pop(&r.pq).(*entry)
		key := cur.station.Key

		// stale entry from a superseded path
		if r.closed[key] {
			continue
		}
		if key == r.goal.Key {
			return Route{Path: cur.trail.path(), Time: cur.g}, true
		}

		r.closed[key] = true
		r.opts.OnExpand(cur.station)

		if !r.relax(cur) {
			return Route{}, false
		}
	}

	return Route{}, false
}

// relax pushes every neighbour of cur whose best known g improves.
// It reports false only if the network no longer resolves a key.
func (r *runner) relax(cur *entry) bool {
	links, err := r.net.Links(cur.station.Key)
	if err != nil {
		return false
	}
	for _, l := range links {
		g := cur.g + l.Time
		if best, seen := r.cost[l.To]; seen && g >= best {
			continue
		}
		nb, ok := r.net.Station(l.To)
		if !ok {
			return false
		}
		r.cost[l.To] = g
		r.push(nb, g, &trail{station: nb, prev: cur.trail})
	}

	return true
}

// trail is an immutable, parent-linked path. Entries share prefixes, so
// extending a path costs O(1) instead of copying it.
type trail struct {
	station metro.Station
	prev    *trail
}

// path materializes t from the start station to t.station.
func (t *trail) path() Path {
	var n int
	for p := t; p != nil; p = p.prev {
		n++
	}
	out := make(Path, n)
	for p := t; p != nil; p = p.prev {
		n--
		out[n] = p.station
	}

	return out
}

// entry is one queue element: a station reached with cost g along trail.
type entry struct {
	station metro.Station
	g       int64  // accumulated travel time
	f       int64  // g + heuristic
	seq     uint64 // push order, breaks ties on f
	trail   *trail
}

// entryPQ is a min-heap of *entry ordered by (f, seq).
// Superseded entries stay in the heap and are dropped when popped (closed check).
type entryPQ []*entry

// Len returns the number of items in the heap.
func (pq entryPQ) Len() int { return len(pq) }

// Less orders by f, then by push order so equal priorities pop FIFO.
func (pq entryPQ) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq entryPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x onto the heap; called by heap.Push.
func (pq *entryPQ) Push(x interface{}) { *pq = append(*pq, x.(*entry)) }

// Pop removes the last element; called by heap.Pop.
func (pq *entryPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
