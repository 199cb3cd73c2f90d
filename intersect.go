package cursors

import (
	"math"

	"github.com/google/uuid"

	"github.com/gogpu/cursors/host"
)

// IntersectionPoint is where a cursor's vertical line crosses one series.
type IntersectionPoint struct {
	// Series is the index of the series in host.Chart.Series.
	Series int
	X, Y   float64
}

// Intersections is the per-redraw result for one cursor. X and Y are the
// cursor position in primary-axis data coordinates; Points holds one entry
// per series with data, in series order.
//
// OffPlot marks a drawn cursor outside the range of a primary axis. Such an
// entry has no points and NaN coordinates.
type Intersections struct {
	CursorID   uuid.UUID
	CursorName string
	X, Y       float64
	Points     []IntersectionPoint
	OffPlot    bool
}

// offPlot returns the notification entry for a drawn cursor without
// intersections.
func offPlot(c *Cursor) Intersections {
	return Intersections{
		CursorID:   c.ID,
		CursorName: c.Name,
		X:          math.NaN(),
		Y:          math.NaN(),
		OffPlot:    true,
	}
}

// findIntersections computes the intersections of c with every series, or
// returns nil when c lies outside the range of either primary axis.
//
// Each series is scanned linearly for the first point right of the cursor,
// so the cost is O(points) per series per redraw.
func findIntersections(h host.Chart, c *Cursor) *Intersections {
	if !c.resolved() {
		return nil
	}
	xa, ya := h.XAxis(1), h.YAxis(1)
	if xa == nil || ya == nil {
		return nil
	}
	x, y := xa.C2P(c.X), ya.C2P(c.Y)
	if !inRange(xa, x) || !inRange(ya, y) {
		return nil
	}

	out := &Intersections{CursorID: c.ID, CursorName: c.Name, X: x, Y: y}
	for i, s := range h.Series() {
		sx := x
		if n := axisNumber(s.XAxis); n != 1 {
			a := h.XAxis(n)
			if a == nil {
				continue
			}
			sx = a.C2P(c.X)
		}
		if sy, ok := interpolate(s.Points, sx); ok {
			out.Points = append(out.Points, IntersectionPoint{Series: i, X: sx, Y: sy})
		}
	}
	return out
}

func inRange(a host.Axis, v float64) bool {
	lo, hi := a.Min(), a.Max()
	if lo > hi {
		lo, hi = hi, lo
	}
	return v >= lo && v <= hi
}

// interpolate returns the Y of pts at x. Points left of the first sample or
// right of the last take that sample's Y. An empty series has no value.
func interpolate(pts []host.Point, x float64) (float64, bool) {
	j := 0
	for j < len(pts) && !(pts[j].X > x) {
		j++
	}
	hasP1, hasP2 := j > 0, j < len(pts)
	switch {
	case !hasP1 && !hasP2:
		return 0, false
	case !hasP1:
		return pts[j].Y, true
	case !hasP2:
		return pts[j-1].Y, true
	}
	p1, p2 := pts[j-1], pts[j]
	return p1.Y + (p2.Y-p1.Y)*(x-p1.X)/(p2.X-p1.X), true
}

// snapToPlot moves c onto its intersection with the series selected by
// c.SnapToPlot. Missing points leave c where it is.
func snapToPlot(h host.Chart, c *Cursor, in *Intersections) {
	if in == nil || c.SnapToPlot < SnapAny {
		return
	}
	series := h.Series()

	var (
		best       IntersectionPoint
		bx, by     float64
		found      bool
		bestOffset = math.Inf(1)
	)
	for i, pt := range in.Points {
		if c.SnapToPlot != SnapAny && i != c.SnapToPlot {
			continue
		}
		if pt.Series >= len(series) {
			continue
		}
		s := series[pt.Series]
		px, okx := project(h.XAxis(axisNumber(s.XAxis)), pt.X)
		py, oky := project(h.YAxis(axisNumber(s.YAxis)), pt.Y)
		if !okx || !oky {
			continue
		}
		if d := math.Abs(py - c.Y); d < bestOffset {
			best, bx, by, found, bestOffset = pt, px, py, true, d
		}
	}
	if !found {
		return
	}
	c.X = clamp(bx, 0, h.PlotWidth())
	c.Y = clamp(by, 0, h.PlotHeight())
	in.Y = best.Y
}
