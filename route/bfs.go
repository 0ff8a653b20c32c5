package route

import (
	"github.com/katalvlaran/metroroute/metro"
)

// queueItem is a station waiting to be expanded.
type queueItem struct {
	key string
}

// walker encapsulates mutable breadth-first state for one FewestHops call.
type walker struct {
	net     *metro.Network
	opts    Options
	goal    string
	queue   []queueItem
	visited map[string]bool
	parent  map[string]string
}

// FewestHops returns a path from start to goal that traverses the fewest
// connections, treating every connection as one hop whatever its travel time.
//
// The second result is false when n is nil, when either key is unknown, or
// when goal is unreachable from start. start == goal yields the one-station path.
//
// Stations are marked visited when enqueued, so each is queued at most once
// and the first time the goal is dequeued its path has minimum hop count.
// Neighbours are enqueued in connection insertion order, which makes the
// result deterministic among equal-length paths.
//
// Complexity: O(S + C) time, O(S) memory.
func FewestHops(n *metro.Network, start, goal string, opts ...Option) (Path, bool) {
	if n == nil || !n.HasStation(start) || !n.HasStation(goal) {
		return nil, false
	}

	w := &walker{
		net:     n,
		opts:    buildOptions(opts),
		goal:    goal,
		visited: make(map[string]bool),
		parent:  make(map[string]string),
	}
	w.enqueue(start, "")

	found, ok := w.loop()
	if !ok {
		return nil, false
	}

	return w.pathTo(found)
}

// enqueue marks key visited, records its parent and appends it to the queue.
func (w *walker) enqueue(key, parent string) {
	w.visited[key] = true
	if parent != "" {
		w.parent[key] = parent
	}
	w.queue = append(w.queue, queueItem{key: key})
}

// loop drains the queue until the goal is dequeued or the frontier is exhausted.
func (w *walker) loop() (string, bool) {
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]

		if st, ok := w.net.Station(item.key); ok {
			w.opts.OnExpand(st)
		}
		if item.key == w.goal {
			return item.key, true
		}

		links, err := w.net.Links(item.key)
		if err != nil {
			// registered keys always resolve; a miss means the network changed under us
			return "", false
		}
		for _, l := range links {
			if !w.visited[l.To] {
				w.enqueue(l.To, item.key)
			}
		}
	}

	return "", false
}

// pathTo walks parent links back from key and resolves each station record.
func (w *walker) pathTo(key string) (Path, bool) {
	var rev []string
	for cur := key; ; {
		rev = append(rev, cur)
		prev, ok := w.parent[cur]
		if !ok {
			break
		}
		cur = prev
	}

	path := make(Path, 0, len(rev))
	for i := len(rev) - 1; i >= 0; i-- {
		st, ok := w.net.Station(rev[i])
		if !ok {
			return nil, false
		}
		path = append(path, st)
	}

	return path, true
}
