package hex

import (
	"errors"
	"fmt"
	"math"
)

// Hex is a cube coordinate on a hexagonal grid, with Q+R+S = 0.
// It is a plain value: every operation returns a new Hex, and two
// Hex values with equal coordinates are interchangeable everywhere.
type Hex struct {
	Q int
	R int
	S int
}

// Key identifies a hex in associative containers. Q and R are packed
// into a single integer; S is redundant for identity.
type Key int64

var (
	// ErrInvariant reports a cube coordinate whose components do not
	// sum to zero. This is a caller bug, not a recoverable condition.
	ErrInvariant = errors.New("cube coordinate invariant q+r+s = 0 violated")

	// ErrDirection reports a direction index outside [0,6).
	ErrDirection = errors.New("direction index out of range")
)

// Directions are the six unit offsets defining adjacency, in the order
// east, north-east, north-west, west, south-west, south-east for a
// pointy-top grid. Ring walking and Neighbor depend on this order.
var Directions = [6]Hex{
	{1, 0, -1}, {1, -1, 0}, {0, -1, 1},
	{-1, 0, 1}, {-1, 1, 0}, {0, 1, -1},
}

// fractional components may carry float error from pixel transforms
const invariantEpsilon = 1e-6

// New builds a Hex from explicit cube components, failing if they do
// not sum to zero.
func New(q, r, s int) (Hex, error) {
	if q+r+s != 0 {
		return Hex{}, fmt.Errorf("hex (%d,%d,%d): %w", q, r, s, ErrInvariant)
	}
	return Hex{Q: q, R: r, S: s}, nil
}

// FromAxial builds a Hex from axial coordinates, deriving S = -q-r.
func FromAxial(q, r int) Hex {
	return Hex{Q: q, R: r, S: -q - r}
}

// FromFractional validates fractional cube components against the zero-sum
// invariant (within a small tolerance) and rounds them to the nearest Hex.
func FromFractional(q, r, s float64) (Hex, error) {
	if math.Abs(q+r+s) > invariantEpsilon {
		return Hex{}, fmt.Errorf("hex (%g,%g,%g): %w", q, r, s, ErrInvariant)
	}
	return Round(q, r, s), nil
}

// FromOffset converts odd-q vertical offset coordinates to a Hex.
func FromOffset(col, row int) Hex {
	q := col
	r := row - (col-(col&1))/2
	return FromAxial(q, r)
}

// ToOffset converts the hex to odd-q vertical offset coordinates.
func (h Hex) ToOffset() (col, row int) {
	col = h.Q
	row = h.R + (h.Q-(h.Q&1))/2
	return
}

// Add returns h+o componentwise.
func (h Hex) Add(o Hex) Hex { return Hex{h.Q + o.Q, h.R + o.R, h.S + o.S} }

// Sub returns h-o componentwise.
func (h Hex) Sub(o Hex) Hex { return Hex{h.Q - o.Q, h.R - o.R, h.S - o.S} }

// Scale returns h scaled by k. A zero-sum triple stays zero-sum.
func (h Hex) Scale(k int) Hex { return Hex{h.Q * k, h.R * k, h.S * k} }

// DistanceTo returns the hex-grid distance to o: half the L1 norm of
// the componentwise difference.
func (h Hex) DistanceTo(o Hex) int {
	d := h.Sub(o)
	return (abs(d.Q) + abs(d.R) + abs(d.S)) / 2
}

// Neighbors returns the six adjacent hexes in direction order.
func (h Hex) Neighbors() [6]Hex {
	var out [6]Hex
	for i, d := range Directions {
		out[i] = h.Add(d)
	}
	return out
}

// Neighbor returns the adjacent hex in the given direction, failing if
// dir is outside [0,6).
func (h Hex) Neighbor(dir int) (Hex, error) {
	if dir < 0 || dir >= len(Directions) {
		return Hex{}, fmt.Errorf("direction %d: %w", dir, ErrDirection)
	}
	return h.Add(Directions[dir]), nil
}

// Key packs Q and R into a single map key.
func (h Hex) Key() Key {
	return Key(int64(h.Q)<<32 | int64(uint32(h.R)))
}

// Round snaps fractional cube components to the nearest Hex. Each axis
// is rounded independently, then the axis with the largest rounding
// residual is recomputed from the other two, restoring Q+R+S = 0 exactly.
func Round(q, r, s float64) Hex {
	rq := math.Round(q)
	rr := math.Round(r)
	rs := math.Round(s)
	dq := math.Abs(rq - q)
	dr := math.Abs(rr - r)
	ds := math.Abs(rs - s)
	switch {
	case dq > dr && dq > ds:
		rq = -rr - rs
	case dr > ds:
		rr = -rq - rs
	default:
		rs = -rq - rr
	}
	return Hex{Q: int(rq), R: int(rr), S: int(rs)}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
