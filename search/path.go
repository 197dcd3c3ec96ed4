package search

import (
	"container/heap"
	"math"

	"github.com/gravitas-games/hexkernel/hex"
)

// CostFunc returns the cost of moving from one hex to an adjacent one.
// A result that is zero, negative, or non-finite marks the edge
// impassable: the neighbor is skipped entirely, not treated as expensive.
type CostFunc func(from, to hex.Hex) float64

// HeuristicFunc estimates the remaining cost from a hex to the goal.
// It must never overestimate the true cost for FindPath to stay optimal;
// the engine does not verify this.
type HeuristicFunc func(from, to hex.Hex) float64

// BlockedFunc reports whether a hex blocks line of sight.
type BlockedFunc func(h hex.Hex) bool

// DefaultMaxDistance caps accumulated path cost when no explicit cap is
// given, bounding search effort on open or unreachable maps.
const DefaultMaxDistance = 50

type options struct {
	heuristic   HeuristicFunc
	maxDistance float64
}

// Option adjusts a FindPath run.
type Option func(*options)

// WithHeuristic replaces the default hex-distance heuristic.
func WithHeuristic(h HeuristicFunc) Option {
	return func(o *options) { o.heuristic = h }
}

// WithMaxDistance replaces the default accumulated-cost cap. Nodes whose
// cost-so-far reaches the cap are closed without expanding.
func WithMaxDistance(maxDistance float64) Option {
	return func(o *options) { o.maxDistance = maxDistance }
}

// Line returns the hexes crossed by a straight line from start to end,
// inclusive: distance+1 samples interpolated in cube space and rounded
// to the grid. Consecutive hexes are always adjacent or equal.
func Line(start, end hex.Hex) []hex.Hex {
	d := start.DistanceTo(end)
	if d == 0 {
		return []hex.Hex{start}
	}
	// nudge both endpoints off the grid so no sample lands exactly on
	// a cell edge, where rounding would be tie-dependent
	aq, ar, as := float64(start.Q)+1e-6, float64(start.R)+1e-6, float64(start.S)-2e-6
	bq, br, bs := float64(end.Q)+1e-6, float64(end.R)+1e-6, float64(end.S)-2e-6
	out := make([]hex.Hex, 0, d+1)
	for i := 0; i <= d; i++ {
		t := float64(i) / float64(d)
		out = append(out, hex.Round(lerp(aq, bq, t), lerp(ar, br, t), lerp(as, bs, t)))
	}
	out[0] = start
	out[len(out)-1] = end
	return out
}

// FindPath computes the cheapest path from start to goal under cost
// using A*. The returned path includes both endpoints; nil means the
// goal is unreachable, which is a normal result. Ties on total cost
// break toward the lower heuristic estimate, then toward the node
// queued earliest, so identical inputs always produce identical paths.
func FindPath(start, goal hex.Hex, cost CostFunc, opts ...Option) []hex.Hex {
	if cost == nil {
		return nil
	}
	if start == goal {
		return []hex.Hex{start}
	}
	o := options{maxDistance: DefaultMaxDistance}
	for _, opt := range opts {
		opt(&o)
	}
	heuristic := o.heuristic
	if heuristic == nil {
		heuristic = func(from, to hex.Hex) float64 { return float64(from.DistanceTo(to)) }
	}

	// arena of the best route found to each hex, keyed by coordinate;
	// parent links form a tree rooted at start
	type node struct {
		at     hex.Hex
		g      float64
		parent hex.Key
	}
	startKey := start.Key()
	goalKey := goal.Key()
	nodes := map[hex.Key]*node{startKey: {at: start}}
	closed := map[hex.Key]bool{}

	frontier := &frontierQueue{}
	heap.Init(frontier)
	seq := 0
	push := func(at hex.Hex, f, h float64) {
		heap.Push(frontier, &candidate{at: at, f: f, h: h, seq: seq})
		seq++
	}
	h0 := heuristic(start, goal)
	push(start, h0, h0)

	for frontier.Len() > 0 {
		cur := heap.Pop(frontier).(*candidate)
		ck := cur.at.Key()
		if closed[ck] {
			continue // stale entry for a hex already expanded by a cheaper route
		}
		closed[ck] = true
		if ck == goalKey {
			path := []hex.Hex{cur.at}
			for k := ck; k != startKey; {
				k = nodes[k].parent
				path = append(path, nodes[k].at)
			}
			for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
				path[i], path[j] = path[j], path[i]
			}
			return path
		}
		g := nodes[ck].g
		if g >= o.maxDistance {
			continue // keep closed, but stop expanding past the cap
		}
		for _, nb := range cur.at.Neighbors() {
			nk := nb.Key()
			if closed[nk] {
				continue
			}
			step := cost(cur.at, nb)
			if step <= 0 || math.IsNaN(step) || math.IsInf(step, 0) {
				continue
			}
			tentative := g + step
			if known, ok := nodes[nk]; ok && tentative >= known.g {
				continue
			}
			h := heuristic(nb, goal)
			f := tentative + h
			if math.IsNaN(f) || math.IsInf(f, 0) {
				f = tentative
			}
			nodes[nk] = &node{at: nb, g: tentative, parent: ck}
			push(nb, f, h)
		}
	}
	return nil
}

// PathCost returns the summed edge cost along a path produced by
// FindPath or Line. Paths shorter than two hexes cost nothing.
func PathCost(path []hex.Hex, cost CostFunc) float64 {
	total := 0.0
	for i := 1; i < len(path); i++ {
		total += cost(path[i-1], path[i])
	}
	return total
}

// HasLineOfSight reports whether the straight line between start and
// end is clear of blocked hexes. Only interior hexes are tested; the
// endpoints never obstruct themselves, and adjacent hexes always see
// each other.
func HasLineOfSight(start, end hex.Hex, blocked BlockedFunc) bool {
	if blocked == nil {
		return true
	}
	line := Line(start, end)
	for i := 1; i < len(line)-1; i++ {
		if blocked(line[i]) {
			return false
		}
	}
	return true
}

// VisibleHexes returns every hex within radius of origin that origin
// has line of sight to. Each candidate costs one line walk; callers
// scanning large maps should cache results per origin.
func VisibleHexes(origin hex.Hex, radius int, blocked BlockedFunc) []hex.Hex {
	area := origin.Range(radius)
	out := make([]hex.Hex, 0, len(area))
	for _, h := range area {
		if HasLineOfSight(origin, h, blocked) {
			out = append(out, h)
		}
	}
	return out
}

func lerp(a, b, t float64) float64 { return a + (b-a)*t }

// frontier entries; stale duplicates are filtered against the closed
// set on pop rather than re-keyed in place
type candidate struct {
	at  hex.Hex
	f   float64
	h   float64
	seq int
}

type frontierQueue []*candidate

func (q frontierQueue) Len() int { return len(q) }

func (q frontierQueue) Less(i, j int) bool {
	if q[i].f != q[j].f {
		return q[i].f < q[j].f
	}
	if q[i].h != q[j].h {
		return q[i].h < q[j].h
	}
	return q[i].seq < q[j].seq
}

func (q frontierQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *frontierQueue) Push(x any) { *q = append(*q, x.(*candidate)) }

func (q *frontierQueue) Pop() any {
	old := *q
	n := len(old)
	x := old[n-1]
	*q = old[:n-1]
	return x
}
