package knight

import "fmt"

// frontierItem pairs a square with its BFS depth.
type frontierItem struct {
	pos   Position
	depth int
}

// walker encapsulates the mutable state of one search call.
// parent is nil for Distance, which needs no path reconstruction.
type walker struct {
	opts     Options
	target   Position
	queue    []frontierItem
	visited  map[Position]struct{}
	parent   map[Position]Position
	explored int
}

// Distance returns the minimum number of knight moves from start to target.
// It returns 0 for start == target without expanding any square.
func Distance(start, target Position, opts ...Option) int {
	if start == target {
		return 0
	}
	w := newWalker(start, target, false, opts)
	_, depth := w.loop()

	return depth
}

// Path returns one shortest sequence of squares from start to target,
// both included. It returns [start] for start == target.
func Path(start, target Position, opts ...Option) []Position {
	return Search(start, target, opts...).Path
}

// Search runs the path search and reports distance, path and explored count.
func Search(start, target Position, opts ...Option) *Result {
	res := &Result{Start: start, Target: target}
	if start == target {
		res.Path = []Position{start}
		return res
	}
	w := newWalker(start, target, true, opts)
	from, depth := w.loop()

	res.Distance = depth
	res.Path = w.pathTo(from)
	res.Explored = w.explored

	return res
}

// newWalker builds a walker with start already on the frontier.
func newWalker(start, target Position, trackParents bool, opts []Option) *walker {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	w := &walker{
		opts:    o,
		target:  target,
		queue:   make([]frontierItem, 0, 64),
		visited: make(map[Position]struct{}, 64),
	}
	if trackParents {
		w.parent = make(map[Position]Position, 64)
	}
	w.visited[start] = struct{}{}
	w.opts.OnEnqueue(start, 0)
	w.queue = append(w.queue, frontierItem{pos: start, depth: 0})

	return w
}

// loop expands the frontier until target is discovered and returns the
// square that discovered it together with the target's depth.
func (w *walker) loop() (Position, int) {
	for len(w.queue) > 0 {
		item := w.dequeue()
		for _, nbr := range Neighbors(item.pos) {
			if _, seen := w.visited[nbr]; seen {
				continue
			}
			if nbr == w.target {
				return item.pos, item.depth + 1
			}
			w.enqueue(nbr, item.depth+1, item.pos)
		}
	}
	// Unreachable on an unbounded board.
	panic(fmt.Errorf("%w: target %v after %d squares", ErrFrontierExhausted, w.target, w.explored))
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker) dequeue() frontierItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.explored++
	w.opts.OnDequeue(item.pos, item.depth)

	return item
}

// enqueue marks p visited at depth d, records its parent on first discovery,
// and adds it to the frontier.
func (w *walker) enqueue(p Position, d int, parent Position) {
	w.visited[p] = struct{}{}
	if w.parent != nil {
		w.parent[p] = parent
	}
	w.opts.OnEnqueue(p, d)
	w.queue = append(w.queue, frontierItem{pos: p, depth: d})
}

// pathTo reconstructs start → target given the square that discovered target.
func (w *walker) pathTo(from Position) []Position {
	// build reversed path
	path := []Position{w.target}
	for cur := from; ; {
		path = append(path, cur)
		prev, ok := w.parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get start → target
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
