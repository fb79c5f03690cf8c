// Package journey lays out the strict campaign: node positions, the path
// connecting them, and which nodes the user may open.
//
// Layouts work on entry counts and return positions by index, so they can
// be tested without a catalogue. Classification is separate and depends only
// on the full ordered catalogue and the watch state, never on the lane a
// node is drawn in.
package journey

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/daviddao/marveljourney/pkg/geom"
)

// ErrInvalidParams reports layout parameters no geometry can satisfy.
var ErrInvalidParams = errors.New("invalid layout parameters")

// Slot is the placement of entry Index.
type Slot struct {
	Index  int        `json:"index"`
	Row    int        `json:"row"`
	Col    int        `json:"col"`
	Center geom.Point `json:"center"`
}

// Layout is the result of a layout strategy. Slots are in index order and
// Path visits their centers in that order.
type Layout struct {
	Width    float64   `json:"width"`
	Height   float64   `json:"height"`
	NodeSize float64   `json:"nodeSize"`
	Cols     int       `json:"cols,omitempty"`
	Slots    []Slot    `json:"slots"`
	Path     geom.Path `json:"-"`
	// D is Path rendered as SVG path data.
	D string `json:"d"`
}

// Rows returns entry indices per row in left-to-right screen order.
func (l Layout) Rows() [][]int {
	var rows [][]int
	slots := make([]Slot, len(l.Slots))
	copy(slots, l.Slots)
	sort.SliceStable(slots, func(i, j int) bool {
		if slots[i].Row != slots[j].Row {
			return slots[i].Row < slots[j].Row
		}
		return slots[i].Col < slots[j].Col
	})
	for _, s := range slots {
		for len(rows) <= s.Row {
			rows = append(rows, nil)
		}
		rows[s.Row] = append(rows[s.Row], s.Index)
	}
	return rows
}

// SnakeParams controls the snake grid.
type SnakeParams struct {
	Node    float64 `json:"node"`
	GapX    float64 `json:"gapX"`
	GapY    float64 `json:"gapY"`
	Padding float64 `json:"padding"`
	// Radius rounds the U-turn between rows.
	Radius float64 `json:"radius"`

	MinCols int `json:"minCols"`
	MaxCols int `json:"maxCols"`
	// DefaultCols is used when the available width is unknown.
	DefaultCols int `json:"defaultCols"`
}

// DefaultSnake returns the campaign board geometry.
func DefaultSnake() SnakeParams {
	return SnakeParams{
		Node:        58,
		GapX:        16,
		GapY:        54,
		Padding:     28,
		Radius:      22,
		MinCols:     5,
		MaxCols:     14,
		DefaultCols: 10,
	}
}

// Validate rejects geometry that cannot produce a layout.
func (p SnakeParams) Validate() error {
	switch {
	case p.Node <= 0:
		return fmt.Errorf("%w: node size %v", ErrInvalidParams, p.Node)
	case p.GapX < 0 || p.GapY < 0 || p.Padding < 0 || p.Radius < 0:
		return fmt.Errorf("%w: negative gap, padding or radius", ErrInvalidParams)
	case p.MinCols < 1 || p.MinCols > p.MaxCols:
		return fmt.Errorf("%w: columns %d..%d", ErrInvalidParams, p.MinCols, p.MaxCols)
	case p.DefaultCols < p.MinCols || p.DefaultCols > p.MaxCols:
		return fmt.Errorf("%w: default columns %d outside %d..%d", ErrInvalidParams, p.DefaultCols, p.MinCols, p.MaxCols)
	}
	return nil
}

// Columns returns how many nodes fit in width, clamped to MinCols..MaxCols.
// A width of zero or less means unknown and yields DefaultCols.
func (p SnakeParams) Columns(width float64) int {
	if width <= 0 {
		return p.DefaultCols
	}
	per := int(math.Floor((width - 2*p.Padding + p.GapX) / (p.Node + p.GapX)))
	return min(max(per, p.MinCols), p.MaxCols)
}

// Snake places n entries in rows of cols. Even rows run left to right, odd
// rows run right to left, so reading order is one continuous line. A short
// final row starts at column zero like every other row.
func Snake(n, cols int, p SnakeParams) (Layout, error) {
	if err := p.Validate(); err != nil {
		return Layout{}, err
	}
	if n < 0 || cols < 1 {
		return Layout{}, fmt.Errorf("%w: %d entries in %d columns", ErrInvalidParams, n, cols)
	}

	step := p.Node + p.GapX
	rowH := p.Node + p.GapY
	rows := (n + cols - 1) / cols

	l := Layout{
		Width:    2*p.Padding + float64(cols)*p.Node + float64(cols-1)*p.GapX,
		Height:   2*p.Padding + float64(rows)*rowH,
		NodeSize: p.Node,
		Cols:     cols,
		Slots:    make([]Slot, n),
	}
	for r := 0; r < rows; r++ {
		start := r * cols
		end := min(start+cols, n)
		for k := start; k < end; k++ {
			c := k - start
			if r%2 == 1 {
				c = end - 1 - k
			}
			l.Slots[k] = Slot{
				Index:  k,
				Row:    r,
				Col:    c,
				Center: geom.Pt(p.Padding+float64(c)*step+p.Node/2, p.Padding+float64(r)*rowH+p.Node/2),
			}
		}
	}
	l.Path = snakePath(l.Slots, p.Radius)
	l.D = l.Path.String()
	return l, nil
}

// snakePath joins same-row neighbours with straight lines and rows with a
// rounded U-turn through the gap between them.
func snakePath(slots []Slot, r float64) geom.Path {
	var path geom.Path
	if len(slots) < 2 {
		return path
	}
	path.MoveTo(slots[0].Center)
	for i := 1; i < len(slots); i++ {
		a, b := slots[i-1].Center, slots[i].Center
		if math.Abs(a.Y-b.Y) < 0.5 {
			path.LineTo(b)
			continue
		}
		// Too little horizontal room for two corners: drop straight down.
		if math.Abs(b.X-a.X) < 2*r {
			path.LineTo(b)
			continue
		}
		dir := -1.0
		if b.X > a.X {
			dir = 1
		}
		midY := (a.Y + b.Y) / 2
		path.LineTo(geom.Pt(a.X, midY-r))
		path.QuadTo(geom.Pt(a.X, midY), geom.Pt(a.X+dir*r, midY))
		path.LineTo(geom.Pt(b.X-dir*r, midY))
		path.QuadTo(geom.Pt(b.X, midY), geom.Pt(b.X, midY+r))
		path.LineTo(b)
	}
	return path
}

// SpiralParams controls the per-lane spiral.
type SpiralParams struct {
	// Box is the side of the square drawing area.
	Box float64 `json:"box"`
	// MinR keeps the centre clear for the progress ring.
	MinR float64 `json:"minR"`
	// Margin is the border kept free beyond half a node.
	Margin float64 `json:"margin"`
	// Turns overrides the automatic turn count when positive.
	Turns float64 `json:"turns,omitempty"`
	// NodeSize overrides the automatic size tier when positive.
	NodeSize float64 `json:"nodeSize,omitempty"`
	// RingR is the radius of the lane progress ring.
	RingR float64 `json:"ringR"`
}

// DefaultSpiral returns the journey map geometry.
func DefaultSpiral() SpiralParams {
	return SpiralParams{Box: 520, MinR: 92, Margin: 18, RingR: 112}
}

// SizeFor returns the node size for a lane of m entries.
func (p SpiralParams) SizeFor(m int) float64 {
	if p.NodeSize > 0 {
		return p.NodeSize
	}
	switch {
	case m >= 30:
		return 44
	case m >= 22:
		return 50
	default:
		return 56
	}
}

// TurnsFor returns the number of revolutions for a lane of m entries.
func (p SpiralParams) TurnsFor(m int) float64 {
	if p.Turns > 0 {
		return p.Turns
	}
	switch {
	case m >= 28:
		return 2.8
	case m >= 20:
		return 2.4
	default:
		return 2.0
	}
}

// MaxR is the outer radius that keeps a node of size inside the box.
func (p SpiralParams) MaxR(size float64) float64 {
	return p.Box/2 - (p.Margin + size/2)
}

func (p SpiralParams) validate(size float64) error {
	switch {
	case p.Box <= 0 || p.MinR < 0 || p.Margin < 0 || p.Turns < 0 || p.NodeSize < 0:
		return fmt.Errorf("%w: spiral box %v, minR %v", ErrInvalidParams, p.Box, p.MinR)
	case p.MaxR(size) < p.MinR:
		return fmt.Errorf("%w: outer radius %v below inner radius %v", ErrInvalidParams, p.MaxR(size), p.MinR)
	}
	return nil
}

// Spiral places m entries on an Archimedean spiral starting at the top and
// growing outward from MinR to MaxR. Path is a Catmull-Rom curve through the
// centers.
func Spiral(m int, p SpiralParams) (Layout, error) {
	if m < 0 {
		return Layout{}, fmt.Errorf("%w: %d entries", ErrInvalidParams, m)
	}
	size := p.SizeFor(m)
	if err := p.validate(size); err != nil {
		return Layout{}, err
	}

	c := geom.Pt(p.Box/2, p.Box/2)
	maxR := p.MaxR(size)
	turns := p.TurnsFor(m)

	l := Layout{Width: p.Box, Height: p.Box, NodeSize: size, Slots: make([]Slot, m)}
	pts := make([]geom.Point, m)
	for i := 0; i < m; i++ {
		angle, r := -math.Pi/2, p.MinR
		if m > 1 {
			t := float64(i) / float64(m-1)
			angle += t * turns * 2 * math.Pi
			r += t * (maxR - p.MinR)
		}
		pts[i] = geom.Pt(c.X+math.Cos(angle)*r, c.Y+math.Sin(angle)*r)
		l.Slots[i] = Slot{Index: i, Center: pts[i]}
	}
	l.Path = geom.CatmullRom(pts)
	l.D = l.Path.String()
	return l, nil
}

// Ring is a progress ring drawn as a dashed circle: Dash is the filled arc
// length, Circumference the full stroke.
type Ring struct {
	Radius        float64 `json:"radius"`
	Dash          float64 `json:"dash"`
	Circumference float64 `json:"circumference"`
}

// NewRing returns a ring of radius r filled to fraction (clamped to 0..1).
func NewRing(r, fraction float64) Ring {
	fraction = math.Max(0, math.Min(1, fraction))
	circ := 2 * math.Pi * r
	return Ring{Radius: r, Dash: fraction * circ, Circumference: circ}
}
