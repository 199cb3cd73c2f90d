package chart

import (
	"math"
	"slices"

	"github.com/gogpu/gg"

	"github.com/gogpu/cursors/host"
)

// Chart is a line chart with plugin hooks.
//
// Chart is NOT safe for concurrent use.
type Chart struct {
	width, height int
	opts          options

	xaxes, yaxes []*Axis
	series       []host.Series

	optionsProcessed []func()
	bindEvents       []func()
	drawOverlay      []func(*gg.Context)
	shutdown         []func()

	listeners map[host.PointerKind][]listener
	nextID    int
	icon      host.Icon
	redraw    bool
	ready     bool
	closed    bool
}

type listener struct {
	id int
	fn func(host.PointerEvent)
}

var _ host.Hooks = (*Chart)(nil)

// New creates a chart drawn on a width x height canvas.
func New(width, height int, opts ...Option) *Chart {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	c := &Chart{
		width:     width,
		height:    height,
		opts:      o,
		listeners: make(map[host.PointerKind][]listener),
		icon:      host.IconDefault,
	}
	c.ensureAxes(1, 1)
	for n, r := range o.xRanges {
		c.SetXRange(n, r[0], r[1])
	}
	for n, r := range o.yRanges {
		c.SetYRange(n, r[0], r[1])
	}
	c.layout()
	return c
}

// Width returns the canvas width.
func (c *Chart) Width() int { return c.width }

// Height returns the canvas height.
func (c *Chart) Height() int { return c.height }

// PlotWidth returns the width of the plot box.
func (c *Chart) PlotWidth() float64 {
	return math.Max(0, float64(c.width)-c.opts.padding[0]-c.opts.padding[2])
}

// PlotHeight returns the height of the plot box.
func (c *Chart) PlotHeight() float64 {
	return math.Max(0, float64(c.height)-c.opts.padding[1]-c.opts.padding[3])
}

// PlotOffset returns the top-left corner of the plot box on the canvas.
func (c *Chart) PlotOffset() host.Point {
	return host.Point{X: c.opts.padding[0], Y: c.opts.padding[1]}
}

// Offset returns the absolute position of the plot box.
func (c *Chart) Offset() host.Point {
	return host.Point{X: c.opts.page[0] + c.opts.padding[0], Y: c.opts.page[1] + c.opts.padding[1]}
}

// XAxis returns x axis n (1-based), or nil.
func (c *Chart) XAxis(n int) host.Axis {
	if n < 1 || n > len(c.xaxes) {
		return nil
	}
	return c.xaxes[n-1]
}

// YAxis returns y axis n (1-based), or nil.
func (c *Chart) YAxis(n int) host.Axis {
	if n < 1 || n > len(c.yaxes) {
		return nil
	}
	return c.yaxes[n-1]
}

// Series returns the series in drawing order.
func (c *Chart) Series() []host.Series {
	return c.series
}

// AddSeries appends a series, creating its axes if needed.
func (c *Chart) AddSeries(s host.Series) {
	c.series = append(c.series, s)
	c.ensureAxes(axisNumber(s.XAxis), axisNumber(s.YAxis))
	c.autoscale()
	c.TriggerRedraw()
}

// SetSeries replaces all series.
func (c *Chart) SetSeries(series []host.Series) {
	c.series = slices.Clone(series)
	for _, s := range c.series {
		c.ensureAxes(axisNumber(s.XAxis), axisNumber(s.YAxis))
	}
	c.autoscale()
	c.TriggerRedraw()
}

// SetXRange fixes the range of x axis n, creating it if needed.
func (c *Chart) SetXRange(n int, lo, hi float64) {
	n = axisNumber(n)
	c.ensureAxes(n, 1)
	a := c.xaxes[n-1]
	a.setRange(lo, hi)
	a.fixed = true
	c.TriggerRedraw()
}

// SetYRange fixes the range of y axis n, creating it if needed.
func (c *Chart) SetYRange(n int, lo, hi float64) {
	n = axisNumber(n)
	c.ensureAxes(1, n)
	a := c.yaxes[n-1]
	a.setRange(lo, hi)
	a.fixed = true
	c.TriggerRedraw()
}

// Resize changes the canvas size and lays the axes out again.
func (c *Chart) Resize(width, height int) {
	c.width, c.height = width, height
	c.layout()
	c.TriggerRedraw()
}

// TriggerRedraw marks the chart as needing a redraw.
func (c *Chart) TriggerRedraw() { c.redraw = true }

// RedrawPending reports whether a redraw was requested since the last Draw.
func (c *Chart) RedrawPending() bool { return c.redraw }

func axisNumber(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

func (c *Chart) ensureAxes(nx, ny int) {
	for len(c.xaxes) < nx {
		c.xaxes = append(c.xaxes, newAxis(false))
	}
	for len(c.yaxes) < ny {
		c.yaxes = append(c.yaxes, newAxis(true))
	}
	c.layout()
}

func (c *Chart) layout() {
	w, h := c.PlotWidth(), c.PlotHeight()
	for _, a := range c.xaxes {
		a.length = w
	}
	for _, a := range c.yaxes {
		a.length = h
	}
}

// autoscale fits every unfixed axis to the data plotted against it.
func (c *Chart) autoscale() {
	type bounds struct{ lo, hi float64 }
	empty := func(n int) []bounds {
		b := make([]bounds, n)
		for i := range b {
			b[i] = bounds{math.Inf(1), math.Inf(-1)}
		}
		return b
	}
	xb, yb := empty(len(c.xaxes)), empty(len(c.yaxes))
	for _, s := range c.series {
		xi, yi := axisNumber(s.XAxis)-1, axisNumber(s.YAxis)-1
		for _, p := range s.Points {
			if math.IsNaN(p.X) || math.IsNaN(p.Y) {
				continue
			}
			xb[xi].lo, xb[xi].hi = math.Min(xb[xi].lo, p.X), math.Max(xb[xi].hi, p.X)
			yb[yi].lo, yb[yi].hi = math.Min(yb[yi].lo, p.Y), math.Max(yb[yi].hi, p.Y)
		}
	}
	for i, a := range c.xaxes {
		a.autoscale(xb[i].lo, xb[i].hi)
	}
	for i, a := range c.yaxes {
		a.autoscale(yb[i].lo, yb[i].hi)
	}
}
