// Package geom builds connecting curves as plain data.
//
// A Path is a list of segments in absolute coordinates. String renders it
// as an SVG path "d" attribute, but nothing here depends on a renderer.
package geom

import (
	"math"
	"strconv"
	"strings"
)

// Point is a 2D position.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }
func (p Point) Scale(k float64) Point { return Point{p.X * k, p.Y * k} }

// Dist is the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 { return math.Hypot(p.X-q.X, p.Y-q.Y) }

// Near reports whether p and q differ by at most eps on each axis.
func (p Point) Near(q Point, eps float64) bool {
	return math.Abs(p.X-q.X) <= eps && math.Abs(p.Y-q.Y) <= eps
}

// Op is a path command.
type Op byte

const (
	OpMove  Op = 'M'
	OpLine  Op = 'L'
	OpQuad  Op = 'Q'
	OpCubic Op = 'C'
)

// Segment is one path command. Pts holds the control points followed by
// the end point: one for M and L, two for Q, three for C.
type Segment struct {
	Op  Op      `json:"op"`
	Pts []Point `json:"pts"`
}

// End returns the point the segment finishes at.
func (s Segment) End() Point { return s.Pts[len(s.Pts)-1] }

// Path is an ordered list of segments.
type Path struct {
	Segments []Segment `json:"segments"`
}

func (p *Path) add(op Op, pts ...Point) *Path {
	p.Segments = append(p.Segments, Segment{Op: op, Pts: pts})
	return p
}

// MoveTo starts a new subpath at to.
func (p *Path) MoveTo(to Point) *Path { return p.add(OpMove, to) }

// LineTo draws a straight line to to.
func (p *Path) LineTo(to Point) *Path { return p.add(OpLine, to) }

// QuadTo draws a quadratic Bézier with control point c.
func (p *Path) QuadTo(c, to Point) *Path { return p.add(OpQuad, c, to) }

// CubicTo draws a cubic Bézier with control points c1 and c2.
func (p *Path) CubicTo(c1, c2, to Point) *Path { return p.add(OpCubic, c1, c2, to) }

// Empty reports whether the path has no segments.
func (p Path) Empty() bool { return len(p.Segments) == 0 }

// Vertices returns the start point of the path followed by the end point
// of every drawing segment. Control points are skipped.
func (p Path) Vertices() []Point {
	out := make([]Point, 0, len(p.Segments))
	for _, s := range p.Segments {
		out = append(out, s.End())
	}
	return out
}

// String renders the path as SVG path data, e.g. "M 1 2 L 3 4".
func (p Path) String() string {
	var b strings.Builder
	for i, s := range p.Segments {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteByte(byte(s.Op))
		for j, pt := range s.Pts {
			if j > 0 {
				b.WriteByte(',')
			}
			b.WriteByte(' ')
			b.WriteString(num(pt.X))
			b.WriteByte(' ')
			b.WriteString(num(pt.Y))
		}
	}
	return b.String()
}

func num(v float64) string {
	// Trim float noise such as 1.0000000000000002.
	v = math.Round(v*1e4) / 1e4
	if v == 0 {
		v = 0 // drop negative zero
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// CatmullRom returns a smooth curve through pts in order. Each span
// between pts[i] and pts[i+1] is a cubic Bézier whose control points sit
// at one sixth of the neighbouring chord. The first and last points stand
// in for their missing neighbours, so the curve never extrapolates past
// either end. Fewer than two points yield an empty path.
func CatmullRom(pts []Point) Path {
	var p Path
	n := len(pts)
	if n < 2 {
		return p
	}
	p.MoveTo(pts[0])
	for i := 0; i < n-1; i++ {
		p0 := pts[max(i-1, 0)]
		p1 := pts[i]
		p2 := pts[i+1]
		p3 := pts[min(i+2, n-1)]

		c1 := p1.Add(p2.Sub(p0).Scale(1.0 / 6))
		c2 := p2.Sub(p3.Sub(p1).Scale(1.0 / 6))
		p.CubicTo(c1, c2, p2)
	}
	return p
}
