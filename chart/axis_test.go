package chart

import (
	"math"
	"testing"
)

func TestAxisMapping(t *testing.T) {
	tests := []struct {
		name  string
		axis  Axis
		v, px float64
	}{
		{"x start", Axis{min: 0, max: 10, length: 200}, 0, 0},
		{"x middle", Axis{min: 0, max: 10, length: 200}, 5, 100},
		{"x offset range", Axis{min: -1, max: 1, length: 100}, 0.5, 75},
		{"y top", Axis{min: 0, max: 4, length: 400, inverted: true}, 4, 0},
		{"y bottom", Axis{min: 0, max: 4, length: 400, inverted: true}, 0, 400},
		{"y inside", Axis{min: 0, max: 4, length: 400, inverted: true}, 1, 300},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.axis.P2C(tt.v); math.Abs(got-tt.px) > 1e-9 {
				t.Errorf("P2C(%v) = %v, want %v", tt.v, got, tt.px)
			}
			if got := tt.axis.C2P(tt.px); math.Abs(got-tt.v) > 1e-9 {
				t.Errorf("C2P(%v) = %v, want %v", tt.px, got, tt.v)
			}
		})
	}
}

func TestAxisDegenerate(t *testing.T) {
	a := Axis{min: 3, max: 3, length: 100}
	if got := a.P2C(3); got != 0 {
		t.Errorf("P2C on empty span = %v, want 0", got)
	}
	b := Axis{min: 2, max: 5}
	if got := b.C2P(10); got != 2 {
		t.Errorf("C2P on zero length = %v, want min", got)
	}
}

func TestAxisAutoscale(t *testing.T) {
	tests := []struct {
		name           string
		fixed          bool
		lo, hi         float64
		wantLo, wantHi float64
	}{
		{"data", false, -2, 7, -2, 7},
		{"reversed input", false, 7, -2, -2, 7},
		{"single value", false, 4, 4, 3, 5},
		{"no data", false, math.Inf(1), math.Inf(-1), 0, 1},
		{"fixed", true, -2, 7, 10, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &Axis{min: 10, max: 20, fixed: tt.fixed}
			a.autoscale(tt.lo, tt.hi)
			if a.Min() != tt.wantLo || a.Max() != tt.wantHi {
				t.Errorf("range = [%v, %v], want [%v, %v]", a.Min(), a.Max(), tt.wantLo, tt.wantHi)
			}
		})
	}
}

func TestAxisTicks(t *testing.T) {
	a := Axis{min: 0, max: 10}
	got := a.ticks(4)
	want := []float64{0, 2.5, 5, 7.5, 10}
	if len(got) != len(want) {
		t.Fatalf("ticks = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ticks = %v, want %v", got, want)
			break
		}
	}
	if n := len(a.ticks(0)); n != 2 {
		t.Errorf("ticks(0) returned %d values, want 2", n)
	}
}
