package cursors

import (
	"testing"

	"github.com/gogpu/cursors/host"
)

func pts(xy ...float64) []host.Point {
	out := make([]host.Point, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		out = append(out, host.Point{X: xy[i], Y: xy[i+1]})
	}
	return out
}

func TestInterpolate(t *testing.T) {
	series := pts(0, 1, 1, 1.1, 2, 1.2)
	tests := []struct {
		name   string
		points []host.Point
		x      float64
		want   float64
		ok     bool
	}{
		{"between samples", series, 0.5, 1.05, true},
		{"on a sample", series, 1, 1.1, true},
		{"on the first sample", series, 0, 1, true},
		{"left of the data", series, -3, 1, true},
		{"right of the data", series, 7, 1.2, true},
		{"single sample", pts(4, 2), 1, 2, true},
		{"empty", nil, 1, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := interpolate(tt.points, tt.x)
			if ok != tt.ok || (ok && !approx(got, tt.want)) {
				t.Errorf("interpolate(%v) = %v, %v; want %v, %v", tt.x, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestFindIntersections(t *testing.T) {
	p, fc := newTestPlot(t)
	fc.series = []host.Series{
		{Label: "a", Points: pts(0, 1, 1, 1.1, 2, 1.2)},
		{Label: "empty"},
		{Label: "b", Points: pts(0, 5, 8, 3)},
	}
	c := p.Add(NewConfig(WithName("scan"), WithPosition(Relative(50, 250))))

	in := findIntersections(fc, c)
	if in == nil {
		t.Fatal("findIntersections returned nil")
	}
	if in.CursorID != c.ID || in.CursorName != "scan" {
		t.Errorf("cursor identity = %v/%q", in.CursorID, in.CursorName)
	}
	if !approx(in.X, 0.5) || !approx(in.Y, 3.5) {
		t.Errorf("cursor data position = (%v, %v), want (0.5, 3.5)", in.X, in.Y)
	}
	want := []IntersectionPoint{
		{Series: 0, X: 0.5, Y: 1.05},
		{Series: 2, X: 0.5, Y: 4.875},
	}
	if len(in.Points) != len(want) {
		t.Fatalf("Points = %v, want %v", in.Points, want)
	}
	for i, w := range want {
		got := in.Points[i]
		if got.Series != w.Series || !approx(got.X, w.X) || !approx(got.Y, w.Y) {
			t.Errorf("Points[%d] = %+v, want %+v", i, got, w)
		}
	}
}

func TestFindIntersectionsSecondaryXAxis(t *testing.T) {
	p, fc := newTestPlot(t)
	fc.xaxes = append(fc.xaxes, &fakeAxis{min: 100, max: 200, length: 800})
	fc.series = []host.Series{{XAxis: 2, Points: pts(100, 0, 200, 2)}}
	c := p.Add(NewConfig(WithPosition(Relative(400, 300))))

	in := findIntersections(fc, c)
	if in == nil || len(in.Points) != 1 {
		t.Fatalf("findIntersections = %+v", in)
	}
	if pt := in.Points[0]; !approx(pt.X, 150) || !approx(pt.Y, 1) {
		t.Errorf("point = %+v, want x 150 y 1", pt)
	}
}

func TestFindIntersectionsNil(t *testing.T) {
	t.Run("unresolved", func(t *testing.T) {
		p, fc := newTestPlot(t)
		c := p.Add(NewConfig(WithPosition(DataOn(2, 1, 1, 1))))
		if in := findIntersections(fc, c); in != nil {
			t.Errorf("got %+v, want nil", in)
		}
	})
	t.Run("no primary axis", func(t *testing.T) {
		p, fc := newTestPlot(t)
		c := p.Add(NewConfig(WithPosition(Relative(10, 10))))
		fc.yaxes = nil
		if in := findIntersections(fc, c); in != nil {
			t.Errorf("got %+v, want nil", in)
		}
	})
	t.Run("outside the axis range", func(t *testing.T) {
		p, fc := newTestPlot(t)
		c := p.Add(NewConfig(WithPosition(Relative(10, 10))))
		fc.xaxes[0] = &fakeAxis{min: 0, max: 8, length: 8}
		if in := findIntersections(fc, c); in != nil {
			t.Errorf("got %+v, want nil", in)
		}
	})
}

func TestSnapToPlot(t *testing.T) {
	// Series 0 sits at pixel y 500, series 1 at pixel y 200.
	series := []host.Series{
		{Points: pts(0, 1, 8, 1)},
		{Points: pts(0, 4, 8, 4)},
	}
	tests := []struct {
		name  string
		snap  int
		wantY float64
		dataY float64
	}{
		{"disabled", SnapNone, 250, 3.5},
		{"first series", 0, 500, 1},
		{"second series", 1, 200, 4},
		{"nearest", SnapAny, 200, 4},
		{"missing series", 5, 250, 3.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, fc := newTestPlot(t)
			fc.series = series
			c := p.Add(NewConfig(WithSnapToPlot(tt.snap), WithPosition(Relative(400, 250))))

			in := findIntersections(fc, c)
			snapToPlot(fc, c, in)

			if !approx(c.X, 400) || !approx(c.Y, tt.wantY) {
				t.Errorf("cursor = (%v, %v), want (400, %v)", c.X, c.Y, tt.wantY)
			}
			if !approx(in.Y, tt.dataY) {
				t.Errorf("intersections Y = %v, want %v", in.Y, tt.dataY)
			}
		})
	}
}

func TestSnapIsStableAcrossRedraws(t *testing.T) {
	p, fc := newTestPlot(t)
	fc.series = []host.Series{{Points: pts(0, 0, 8, 6)}}
	c := p.Add(NewConfig(WithSnapToPlot(0), WithPosition(Relative(200, 100))))

	var rc recordingCanvas
	p.DrawOverlay(&rc)
	x1, y1 := c.X, c.Y
	p.DrawOverlay(&rc)

	if !approx(x1, 200) || !approx(y1, 450) {
		t.Errorf("snapped to (%v, %v), want (200, 450)", x1, y1)
	}
	if c.X != x1 || c.Y != y1 {
		t.Errorf("second redraw moved the cursor to (%v, %v)", c.X, c.Y)
	}
	if *c.Position.RelativeY != 100 {
		t.Errorf("snapping must not rewrite the position, got %v", *c.Position.RelativeY)
	}
}

func TestSnapNilIntersections(t *testing.T) {
	fc := newFakeChart()
	c := newCursor(0, NewConfig(WithSnapToPlot(SnapAny)))
	c.X, c.Y = 10, 10
	snapToPlot(fc, c, nil)
	if c.X != 10 || c.Y != 10 {
		t.Errorf("cursor moved to (%v, %v)", c.X, c.Y)
	}
}
