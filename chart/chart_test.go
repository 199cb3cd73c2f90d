package chart

import (
	"bytes"
	"log/slog"
	"slices"
	"strings"
	"testing"

	"github.com/gogpu/gg"

	"github.com/gogpu/cursors/host"
)

func TestNewLayout(t *testing.T) {
	c := New(400, 300, WithPageOffset(100, 50))

	if c.Width() != 400 || c.Height() != 300 {
		t.Errorf("size = %dx%d, want 400x300", c.Width(), c.Height())
	}
	if c.PlotWidth() != 350 || c.PlotHeight() != 260 {
		t.Errorf("plot box = %vx%v, want 350x260", c.PlotWidth(), c.PlotHeight())
	}
	if got := c.PlotOffset(); got != (host.Point{X: 40, Y: 10}) {
		t.Errorf("PlotOffset() = %v, want (40, 10)", got)
	}
	if got := c.Offset(); got != (host.Point{X: 140, Y: 60}) {
		t.Errorf("Offset() = %v, want (140, 60)", got)
	}
	if c.XAxis(1) == nil || c.YAxis(1) == nil {
		t.Fatal("primary axes missing")
	}
	if c.XAxis(2) != nil || c.YAxis(0) != nil {
		t.Error("unknown axes should be nil")
	}
	if got := c.XAxis(1).P2C(1); got != 350 {
		t.Errorf("x axis length: P2C(max) = %v, want 350", got)
	}
}

func TestPlotBoxNeverNegative(t *testing.T) {
	c := New(20, 20)
	if c.PlotWidth() != 0 || c.PlotHeight() != 0 {
		t.Errorf("plot box = %vx%v, want 0x0", c.PlotWidth(), c.PlotHeight())
	}
}

func TestSeriesAutoscale(t *testing.T) {
	c := New(400, 300, WithYRange(1, -2, 2))
	c.AddSeries(host.Series{Points: []host.Point{{X: 1, Y: 5}, {X: 9, Y: -5}}})
	c.AddSeries(host.Series{XAxis: 2, YAxis: 2, Points: []host.Point{{X: 100, Y: 0}, {X: 200, Y: 50}}})

	if a := c.XAxis(1); a.Min() != 1 || a.Max() != 9 {
		t.Errorf("x1 = [%v, %v], want [1, 9]", a.Min(), a.Max())
	}
	if a := c.YAxis(1); a.Min() != -2 || a.Max() != 2 {
		t.Errorf("fixed y1 = [%v, %v], want [-2, 2]", a.Min(), a.Max())
	}
	if a := c.XAxis(2); a == nil || a.Min() != 100 || a.Max() != 200 {
		t.Errorf("x2 = %v", a)
	}
	if a := c.YAxis(2); a == nil || a.Min() != 0 || a.Max() != 50 {
		t.Errorf("y2 = %v", a)
	}
	if got := len(c.Series()); got != 2 {
		t.Errorf("len(Series()) = %d, want 2", got)
	}

	c.SetSeries(nil)
	if a := c.XAxis(1); a.Min() != 0 || a.Max() != 1 {
		t.Errorf("empty x1 = [%v, %v], want [0, 1]", a.Min(), a.Max())
	}
}

func TestResize(t *testing.T) {
	c := New(400, 300, WithPadding(0, 0, 0, 0), WithXRange(1, 0, 10))
	c.Resize(200, 100)
	if got := c.XAxis(1).P2C(5); got != 100 {
		t.Errorf("P2C after resize = %v, want 100", got)
	}
	if got := c.YAxis(1).P2C(0); got != 100 {
		t.Errorf("y P2C after resize = %v, want 100", got)
	}
}

func TestHooksLifecycle(t *testing.T) {
	c := New(200, 100)
	var calls []string
	c.OnBindEvents(func() { calls = append(calls, "bind") })
	c.OnOptionsProcessed(func() { calls = append(calls, "options") })
	c.OnShutdown(func() { calls = append(calls, "shutdown") })

	c.Setup()
	c.Setup()
	c.Shutdown()
	c.Shutdown()
	c.Setup()

	if want := []string{"options", "bind", "shutdown"}; !slices.Equal(calls, want) {
		t.Errorf("calls = %v, want %v", calls, want)
	}
}

func TestListenDispatch(t *testing.T) {
	c := New(200, 100)
	var got []host.PointerEvent
	cancel := c.Listen(host.PointerMove, func(ev host.PointerEvent) { got = append(got, ev) })
	c.Listen(host.PointerDown, func(host.PointerEvent) { t.Error("down listener called for a move") })

	c.Dispatch(host.PointerEvent{Kind: host.PointerMove, PageX: 3, PageY: 4})
	cancel()
	c.Dispatch(host.PointerEvent{Kind: host.PointerMove, PageX: 5, PageY: 6})

	if len(got) != 1 || got[0].PageX != 3 {
		t.Errorf("events = %v, want one at x=3", got)
	}
	if c.Listeners(host.PointerMove) != 0 || c.Listeners(host.PointerDown) != 1 {
		t.Errorf("listeners move/down = %d/%d, want 0/1", c.Listeners(host.PointerMove), c.Listeners(host.PointerDown))
	}
}

func TestShutdownWarnsAboutLeftoverListeners(t *testing.T) {
	var buf bytes.Buffer
	c := New(200, 100, WithLogger(slog.New(slog.NewTextHandler(&buf, nil))))
	c.Listen(host.PointerUp, func(host.PointerEvent) {})

	c.Shutdown()

	if !strings.Contains(buf.String(), "listeners left after shutdown") {
		t.Errorf("log = %q, want a leftover-listener warning", buf.String())
	}
	if c.Listeners(host.PointerUp) != 0 {
		t.Error("Shutdown should drop leftover listeners")
	}
}

func TestIcon(t *testing.T) {
	c := New(200, 100)
	if c.Icon() != host.IconDefault {
		t.Errorf("initial icon = %q, want default", c.Icon())
	}
	c.SetIcon(host.IconMove)
	if c.Icon() != host.IconMove {
		t.Errorf("icon = %q, want move", c.Icon())
	}
}

func TestDraw(t *testing.T) {
	c := New(200, 150, WithXRange(1, 0, 4), WithYRange(1, 0, 2))
	c.AddSeries(host.Series{Points: []host.Point{{X: 0, Y: 0}, {X: 4, Y: 2}}})
	overlays := 0
	c.OnDrawOverlay(func(dc *gg.Context) {
		overlays++
		if dc == nil {
			t.Error("overlay got a nil context")
		}
	})

	dc := gg.NewContext(c.Width(), c.Height())
	t.Cleanup(func() { _ = dc.Close() })

	if !c.RedrawPending() {
		t.Fatal("a new chart should want a redraw")
	}
	if err := c.Draw(dc); err != nil {
		t.Fatalf("Draw() = %v", err)
	}
	if overlays != 1 {
		t.Errorf("overlay hooks ran %d times, want 1", overlays)
	}
	if c.RedrawPending() {
		t.Error("Draw should clear the redraw flag")
	}
	r, g, b, _ := dc.Image().At(2, 2).RGBA()
	if r < 0xf000 || g < 0xf000 || b < 0xf000 {
		t.Errorf("background pixel = %v, want white", dc.Image().At(2, 2))
	}

	c.TriggerRedraw()
	c.DrawOverlay(dc)
	if overlays != 2 || !c.RedrawPending() {
		t.Error("DrawOverlay should run hooks without clearing the redraw flag")
	}
}
