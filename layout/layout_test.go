package layout

import (
	"math"
	"testing"

	"github.com/gravitas-games/hexkernel/hex"
)

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestHexToPixelPointy(t *testing.T) {
	l := Layout{Orientation: Pointy, Size: Point{X: 1, Y: 1}}
	cases := []struct {
		h    hex.Hex
		x, y float64
	}{
		{hex.FromAxial(0, 0), 0, 0},
		{hex.FromAxial(1, 0), math.Sqrt(3), 0},
		{hex.FromAxial(0, 1), math.Sqrt(3) / 2, 1.5},
		{hex.FromAxial(-1, 2), 0, 3},
	}
	for _, c := range cases {
		p := l.HexToPixel(c.h)
		if !approx(p.X, c.x) || !approx(p.Y, c.y) {
			t.Fatalf("%v: expected (%g,%g), got (%g,%g)", c.h, c.x, c.y, p.X, p.Y)
		}
	}
}

func TestHexToPixelFlat(t *testing.T) {
	l := Layout{Orientation: Flat, Size: Point{X: 1, Y: 1}}
	p := l.HexToPixel(hex.FromAxial(1, 0))
	if !approx(p.X, 1.5) || !approx(p.Y, math.Sqrt(3)/2) {
		t.Fatalf("expected (1.5, sqrt3/2), got (%g,%g)", p.X, p.Y)
	}
}

func TestPixelRoundTrip(t *testing.T) {
	layouts := []Layout{
		{Orientation: Pointy, Size: Point{X: 32, Y: 32}},
		{Orientation: Flat, Size: Point{X: 32, Y: 32}},
		{Orientation: Pointy, Size: Point{X: 24, Y: 16}, Origin: Point{X: 400, Y: -120}},
		{Orientation: Flat, Size: Point{X: 10, Y: 14}, Origin: Point{X: -3.5, Y: 99}},
	}
	for _, l := range layouts {
		for _, h := range hex.FromAxial(0, 0).Range(6) {
			if got := l.PixelToHex(l.HexToPixel(h)); got != h {
				t.Fatalf("round-trip changed %v to %v (layout %+v)", h, got, l)
			}
		}
	}
}

func TestPixelToHexNearCenter(t *testing.T) {
	l := Layout{Orientation: Pointy, Size: Point{X: 20, Y: 20}, Origin: Point{X: 100, Y: 100}}
	h := hex.FromAxial(3, -2)
	c := l.HexToPixel(h)
	// points well inside the cell pick the same hex
	for _, d := range []Point{{4, 0}, {-4, 0}, {0, 4}, {0, -4}, {3, 3}} {
		p := Point{X: c.X + d.X, Y: c.Y + d.Y}
		if got := l.PixelToHex(p); got != h {
			t.Fatalf("pick at offset (%g,%g) expected %v, got %v", d.X, d.Y, h, got)
		}
	}
}

func TestCorners(t *testing.T) {
	l := Layout{Orientation: Pointy, Size: Point{X: 10, Y: 10}}
	h := hex.FromAxial(2, 1)
	center := l.HexToPixel(h)
	corners := l.Corners(h)
	if len(corners) != 6 {
		t.Fatalf("expected 6 corners, got %d", len(corners))
	}
	for i, c := range corners {
		dx := c.X - center.X
		dy := c.Y - center.Y
		if !approx(math.Hypot(dx, dy), 10) {
			t.Fatalf("corner %d not at radius 10: (%g,%g)", i, dx, dy)
		}
	}
	// pointy start angle is half a step: first corner at 30 degrees
	first := corners[0]
	if !approx(first.X-center.X, 10*math.Cos(math.Pi/6)) || !approx(first.Y-center.Y, 10*math.Sin(math.Pi/6)) {
		t.Fatalf("unexpected first corner (%g,%g)", first.X-center.X, first.Y-center.Y)
	}
}

func TestBounds(t *testing.T) {
	l := Layout{Orientation: Pointy, Size: Point{X: 10, Y: 10}, Origin: Point{X: 5, Y: 5}}

	if got := l.Bounds(nil); got != (Rect{}) {
		t.Fatalf("empty input should yield the zero rect, got %+v", got)
	}

	single := l.Bounds([]hex.Hex{hex.FromAxial(0, 0)})
	want := Rect{Min: Point{X: -5, Y: -5}, Max: Point{X: 15, Y: 15}}
	if single != want {
		t.Fatalf("expected %+v, got %+v", want, single)
	}

	area := hex.FromAxial(0, 0).Range(2)
	box := l.Bounds(area)
	for _, h := range area {
		for _, c := range l.Corners(h) {
			if c.X < box.Min.X || c.X > box.Max.X || c.Y < box.Min.Y || c.Y > box.Max.Y {
				t.Fatalf("corner (%g,%g) of %v outside bounds %+v", c.X, c.Y, h, box)
			}
		}
	}
}

func TestBoundsUnevenSize(t *testing.T) {
	l := Layout{Orientation: Flat, Size: Point{X: 8, Y: 20}}
	box := l.Bounds([]hex.Hex{hex.FromAxial(0, 0)})
	if !approx(box.Width(), 40) || !approx(box.Height(), 40) {
		t.Fatalf("margin should use the larger axis, got %gx%g", box.Width(), box.Height())
	}
}
