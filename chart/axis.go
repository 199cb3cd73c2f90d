package chart

import "math"

// Axis is a linear axis mapping a data range onto a pixel length.
// Vertical axes are inverted so larger values are drawn higher.
type Axis struct {
	min, max float64
	length   float64
	inverted bool
	fixed    bool
}

func newAxis(inverted bool) *Axis {
	return &Axis{min: 0, max: 1, inverted: inverted}
}

// Min returns the lower end of the data range.
func (a *Axis) Min() float64 { return a.min }

// Max returns the upper end of the data range.
func (a *Axis) Max() float64 { return a.max }

// Length returns the pixel length of the axis.
func (a *Axis) Length() float64 { return a.length }

// Fixed reports whether the range was set explicitly.
func (a *Axis) Fixed() bool { return a.fixed }

// P2C converts a data value to a pixel offset from the start of the plot box.
func (a *Axis) P2C(v float64) float64 {
	span := a.max - a.min
	if span == 0 {
		return 0
	}
	px := (v - a.min) / span * a.length
	if a.inverted {
		return a.length - px
	}
	return px
}

// C2P converts a pixel offset to a data value.
func (a *Axis) C2P(px float64) float64 {
	if a.length == 0 {
		return a.min
	}
	if a.inverted {
		px = a.length - px
	}
	return a.min + px/a.length*(a.max-a.min)
}

func (a *Axis) setRange(lo, hi float64) {
	if lo > hi {
		lo, hi = hi, lo
	}
	a.min, a.max = lo, hi
}

// autoscale fits the range to [lo, hi] unless it was fixed. An empty or
// degenerate range is widened so P2C stays defined.
func (a *Axis) autoscale(lo, hi float64) {
	if a.fixed {
		return
	}
	if math.IsInf(lo, 1) || math.IsInf(hi, -1) {
		a.setRange(0, 1)
		return
	}
	if lo == hi {
		lo, hi = lo-1, hi+1
	}
	a.setRange(lo, hi)
}

// ticks returns n+1 evenly spaced values across the range.
func (a *Axis) ticks(n int) []float64 {
	if n < 1 {
		n = 1
	}
	out := make([]float64, n+1)
	step := (a.max - a.min) / float64(n)
	for i := range out {
		out[i] = a.min + step*float64(i)
	}
	return out
}
