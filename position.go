package cursors

import (
	"math"

	"github.com/gogpu/cursors/host"
)

// AxisValue is a data coordinate bound to a numbered axis.
// Axis 1 (or 0) is the primary axis, 2 the secondary (x2/y2), and so on.
type AxisValue struct {
	Axis  int
	Value float64
}

// Position is the abstract location of a cursor.
//
// Canvas-relative pixels take precedence over data coordinates: if RelativeX
// is set, X comes from it and Y from RelativeY, or failing that from the
// projection of the data Y. RelativeY alone is handled symmetrically. With no
// relative coordinate the data coordinates are projected through their axes.
type Position struct {
	RelativeX *float64
	RelativeY *float64
	X         *AxisValue
	Y         *AxisValue
}

// Relative returns a position in canvas-relative pixels.
func Relative(x, y float64) *Position {
	return &Position{RelativeX: &x, RelativeY: &y}
}

// RelativeXOnly returns a position that fixes only the canvas-relative X.
func RelativeXOnly(x float64) *Position {
	return &Position{RelativeX: &x}
}

// RelativeYOnly returns a position that fixes only the canvas-relative Y.
func RelativeYOnly(y float64) *Position {
	return &Position{RelativeY: &y}
}

// Data returns a position in data coordinates on the primary axes.
func Data(x, y float64) *Position {
	return &Position{X: &AxisValue{Axis: 1, Value: x}, Y: &AxisValue{Axis: 1, Value: y}}
}

// DataOn returns a position in data coordinates on the given axes.
func DataOn(xAxis int, x float64, yAxis int, y float64) *Position {
	return &Position{X: &AxisValue{Axis: xAxis, Value: x}, Y: &AxisValue{Axis: yAxis, Value: y}}
}

// Clone returns a deep copy of the position.
func (p *Position) Clone() *Position {
	if p == nil {
		return nil
	}
	out := &Position{}
	if p.RelativeX != nil {
		v := *p.RelativeX
		out.RelativeX = &v
	}
	if p.RelativeY != nil {
		v := *p.RelativeY
		out.RelativeY = &v
	}
	if p.X != nil {
		v := *p.X
		out.X = &v
	}
	if p.Y != nil {
		v := *p.Y
		out.Y = &v
	}
	return out
}

func (p *Position) setRelativeX(x float64) { p.RelativeX = &x }
func (p *Position) setRelativeY(y float64) { p.RelativeY = &y }

// clamp limits v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func axisNumber(n int) int {
	if n <= 0 {
		return 1
	}
	return n
}

// resolvePosition updates c.X and c.Y from c.Position. A nil position leaves
// the cursor where it is. Clamping to the plot box is always the last step.
func resolvePosition(h host.Chart, c *Cursor) {
	pos := c.Position
	if pos == nil {
		return
	}
	w, ht := h.PlotWidth(), h.PlotHeight()

	switch {
	case pos.RelativeX != nil:
		c.X = clamp(*pos.RelativeX, 0, w)
		if pos.RelativeY != nil {
			c.Y = clamp(*pos.RelativeY, 0, ht)
		} else if y, ok := dataToCanvasY(h, pos.Y); ok {
			c.Y = clamp(y, 0, ht)
		}
	case pos.RelativeY != nil:
		c.Y = clamp(*pos.RelativeY, 0, ht)
		if x, ok := dataToCanvasX(h, pos.X); ok {
			c.X = clamp(x, 0, w)
		}
	default:
		if x, ok := dataToCanvasX(h, pos.X); ok {
			c.X = clamp(x, 0, w)
		}
		if y, ok := dataToCanvasY(h, pos.Y); ok {
			c.Y = clamp(y, 0, ht)
		}
	}
}

func dataToCanvasX(h host.Chart, v *AxisValue) (float64, bool) {
	if v == nil {
		return 0, false
	}
	return project(h.XAxis(axisNumber(v.Axis)), v.Value)
}

func dataToCanvasY(h host.Chart, v *AxisValue) (float64, bool) {
	if v == nil {
		return 0, false
	}
	return project(h.YAxis(axisNumber(v.Axis)), v.Value)
}

func project(a host.Axis, v float64) (float64, bool) {
	if a == nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	px := a.P2C(v)
	if math.IsNaN(px) {
		return 0, false
	}
	return px, true
}

// PointerToCanvas converts an absolute pointer position to coordinates
// relative to the plot box. The result is not clamped.
func PointerToCanvas(h host.Chart, ev host.PointerEvent) (x, y float64) {
	off := h.Offset()
	return ev.PageX - off.X, ev.PageY - off.Y
}
