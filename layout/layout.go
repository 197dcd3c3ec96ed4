package layout

import (
	"math"

	"github.com/gravitas-games/hexkernel/hex"
)

// Point is a position in pixel space.
type Point struct {
	X float64
	Y float64
}

// Rect is an axis-aligned box in pixel space.
type Rect struct {
	Min Point
	Max Point
}

// Width returns the horizontal extent of the rect.
func (r Rect) Width() float64 { return r.Max.X - r.Min.X }

// Height returns the vertical extent of the rect.
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// Orientation holds the forward (F) and inverse (B) transform
// coefficients between hex and pixel space, plus the angle of the
// first corner in sixths of a turn. It is fixed configuration data;
// use Pointy or Flat.
type Orientation struct {
	F0, F1, F2, F3 float64
	B0, B1, B2, B3 float64
	StartAngle     float64
}

// Pointy is the pointy-top orientation: hex corners at the top and
// bottom, rows interlocking horizontally.
var Pointy = Orientation{
	F0: math.Sqrt(3), F1: math.Sqrt(3) / 2, F2: 0, F3: 3.0 / 2,
	B0: math.Sqrt(3) / 3, B1: -1.0 / 3, B2: 0, B3: 2.0 / 3,
	StartAngle: 0.5,
}

// Flat is the flat-top orientation: hex corners at the left and right,
// columns interlocking vertically.
var Flat = Orientation{
	F0: 3.0 / 2, F1: 0, F2: math.Sqrt(3) / 2, F3: math.Sqrt(3),
	B0: 2.0 / 3, B1: 0, B2: -1.0 / 3, B3: math.Sqrt(3) / 3,
	StartAngle: 0,
}

// Layout maps hex coordinates to pixel space. Size is the hex radius
// per axis and Origin the pixel position of hex (0,0,0). A Layout is
// read-only and safe to share across calls.
type Layout struct {
	Orientation Orientation
	Size        Point
	Origin      Point
}

// HexToPixel returns the pixel center of h.
func (l Layout) HexToPixel(h hex.Hex) Point {
	o := l.Orientation
	x := (o.F0*float64(h.Q) + o.F1*float64(h.R)) * l.Size.X
	y := (o.F2*float64(h.Q) + o.F3*float64(h.R)) * l.Size.Y
	return Point{X: x + l.Origin.X, Y: y + l.Origin.Y}
}

// PixelToHex returns the hex whose cell contains p, rounding the
// fractional cube coordinates to the nearest valid hex.
func (l Layout) PixelToHex(p Point) hex.Hex {
	o := l.Orientation
	px := (p.X - l.Origin.X) / l.Size.X
	py := (p.Y - l.Origin.Y) / l.Size.Y
	q := o.B0*px + o.B1*py
	r := o.B2*px + o.B3*py
	return hex.Round(q, r, -q-r)
}

// Corners returns the six corner points of h in a fixed winding order,
// starting at the orientation's start angle.
func (l Layout) Corners(h hex.Hex) [6]Point {
	center := l.HexToPixel(h)
	var out [6]Point
	for i := 0; i < 6; i++ {
		angle := 2 * math.Pi * (l.Orientation.StartAngle - float64(i)) / 6
		out[i] = Point{
			X: center.X + l.Size.X*math.Cos(angle),
			Y: center.Y + l.Size.Y*math.Sin(angle),
		}
	}
	return out
}

// Bounds returns the axis-aligned box containing the given hexes,
// expanded from their pixel centers by the larger size axis so the
// corner polygons fit inside. An empty input yields the zero Rect.
func (l Layout) Bounds(hexes []hex.Hex) Rect {
	if len(hexes) == 0 {
		return Rect{}
	}
	first := l.HexToPixel(hexes[0])
	r := Rect{Min: first, Max: first}
	for _, h := range hexes[1:] {
		p := l.HexToPixel(h)
		r.Min.X = math.Min(r.Min.X, p.X)
		r.Min.Y = math.Min(r.Min.Y, p.Y)
		r.Max.X = math.Max(r.Max.X, p.X)
		r.Max.Y = math.Max(r.Max.Y, p.Y)
	}
	margin := math.Max(l.Size.X, l.Size.Y)
	r.Min.X -= margin
	r.Min.Y -= margin
	r.Max.X += margin
	r.Max.Y += margin
	return r
}
