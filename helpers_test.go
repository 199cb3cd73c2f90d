package cursors

import (
	"fmt"
	"image/color"
	"math"
	"slices"
	"testing"

	"github.com/gogpu/gg/text"

	"github.com/gogpu/cursors/host"
)

// fakeAxis is a linear axis over a fixed pixel length.
type fakeAxis struct {
	min, max float64
	length   float64
	inverted bool
}

func (a *fakeAxis) Min() float64 { return a.min }
func (a *fakeAxis) Max() float64 { return a.max }

func (a *fakeAxis) P2C(v float64) float64 {
	px := (v - a.min) / (a.max - a.min) * a.length
	if a.inverted {
		return a.length - px
	}
	return px
}

func (a *fakeAxis) C2P(px float64) float64 {
	if a.inverted {
		px = a.length - px
	}
	return a.min + px/a.length*(a.max-a.min)
}

// fakeChart is an 800x600 plot box. The primary x axis spans [0, 8] and the
// primary y axis [0, 6], so one data unit is 100 pixels.
type fakeChart struct {
	width, height float64
	plotOffset    host.Point
	offset        host.Point
	xaxes, yaxes  []*fakeAxis
	series        []host.Series
	redraws       int

	listeners map[host.PointerKind][]fakeListener
	nextID    int
	icons     []host.Icon
}

type fakeListener struct {
	id int
	fn func(host.PointerEvent)
}

func newFakeChart() *fakeChart {
	return &fakeChart{
		width:     800,
		height:    600,
		xaxes:     []*fakeAxis{{min: 0, max: 8, length: 800}},
		yaxes:     []*fakeAxis{{min: 0, max: 6, length: 600, inverted: true}},
		listeners: make(map[host.PointerKind][]fakeListener),
	}
}

func (f *fakeChart) PlotWidth() float64     { return f.width }
func (f *fakeChart) PlotHeight() float64    { return f.height }
func (f *fakeChart) PlotOffset() host.Point { return f.plotOffset }
func (f *fakeChart) Offset() host.Point     { return f.offset }
func (f *fakeChart) Series() []host.Series  { return f.series }
func (f *fakeChart) TriggerRedraw()         { f.redraws++ }
func (f *fakeChart) SetIcon(icon host.Icon) { f.icons = append(f.icons, icon) }

func (f *fakeChart) XAxis(n int) host.Axis {
	if n < 1 || n > len(f.xaxes) {
		return nil
	}
	return f.xaxes[n-1]
}

func (f *fakeChart) YAxis(n int) host.Axis {
	if n < 1 || n > len(f.yaxes) {
		return nil
	}
	return f.yaxes[n-1]
}

func (f *fakeChart) Listen(kind host.PointerKind, fn func(host.PointerEvent)) func() {
	f.nextID++
	id := f.nextID
	f.listeners[kind] = append(f.listeners[kind], fakeListener{id: id, fn: fn})
	return func() {
		f.listeners[kind] = slices.DeleteFunc(f.listeners[kind], func(l fakeListener) bool { return l.id == id })
	}
}

func (f *fakeChart) listenerCount() int {
	n := 0
	for _, ls := range f.listeners {
		n += len(ls)
	}
	return n
}

// icon returns the last icon set, or "" if none was.
func (f *fakeChart) icon() host.Icon {
	if len(f.icons) == 0 {
		return ""
	}
	return f.icons[len(f.icons)-1]
}

// dispatch sends an event at plot-box pixel (x, y).
func (f *fakeChart) dispatch(kind host.PointerKind, x, y float64, button host.Button) {
	ev := host.PointerEvent{Kind: kind, PageX: x + f.offset.X, PageY: y + f.offset.Y, Button: button}
	for _, l := range slices.Clone(f.listeners[kind]) {
		l.fn(ev)
	}
}

func (f *fakeChart) down(x, y float64) { f.dispatch(host.PointerDown, x, y, host.ButtonPrimary) }
func (f *fakeChart) move(x, y float64) { f.dispatch(host.PointerMove, x, y, host.ButtonPrimary) }
func (f *fakeChart) up(x, y float64)   { f.dispatch(host.PointerUp, x, y, host.ButtonPrimary) }

var _ host.Chart = (*fakeChart)(nil)
var _ host.EventSource = (*fakeChart)(nil)

// newTestPlot returns a plot bound to a fresh fake chart.
func newTestPlot(t *testing.T, opts ...PlotOption) (*Plot, *fakeChart) {
	t.Helper()
	fc := newFakeChart()
	p := New(fc, opts...)
	p.ProcessOptions()
	p.BindEvents(fc)
	t.Cleanup(p.Shutdown)
	return p, fc
}

// op is one recorded Canvas call.
type op struct {
	name string
	args []float64
	text string
	col  color.Color
}

func (o op) String() string {
	if o.text != "" {
		return fmt.Sprintf("%s(%q %v)", o.name, o.text, o.args)
	}
	return fmt.Sprintf("%s%v", o.name, o.args)
}

// recordingCanvas implements Canvas by recording every call.
type recordingCanvas struct {
	ops   []op
	color color.Color
}

func (r *recordingCanvas) rec(name string, args ...float64) {
	r.ops = append(r.ops, op{name: name, args: args, col: r.color})
}

func (r *recordingCanvas) Push()                  { r.rec("Push") }
func (r *recordingCanvas) Pop()                   { r.rec("Pop") }
func (r *recordingCanvas) Translate(x, y float64) { r.rec("Translate", x, y) }
func (r *recordingCanvas) SetColor(c color.Color) {
	r.color = c
	r.rec("SetColor")
}
func (r *recordingCanvas) SetLineWidth(w float64)           { r.rec("SetLineWidth", w) }
func (r *recordingCanvas) MoveTo(x, y float64)              { r.rec("MoveTo", x, y) }
func (r *recordingCanvas) LineTo(x, y float64)              { r.rec("LineTo", x, y) }
func (r *recordingCanvas) ClosePath()                       { r.rec("ClosePath") }
func (r *recordingCanvas) DrawRectangle(x, y, w, h float64) { r.rec("DrawRectangle", x, y, w, h) }
func (r *recordingCanvas) DrawCircle(x, y, radius float64)  { r.rec("DrawCircle", x, y, radius) }
func (r *recordingCanvas) Stroke() error                    { r.rec("Stroke"); return nil }
func (r *recordingCanvas) Fill() error                      { r.rec("Fill"); return nil }
func (r *recordingCanvas) SetFont(text.Face)                { r.rec("SetFont") }
func (r *recordingCanvas) DrawStringAnchored(s string, x, y, ax, ay float64) {
	r.ops = append(r.ops, op{name: "DrawStringAnchored", args: []float64{x, y, ax, ay}, text: s, col: r.color})
}

// count returns how many recorded calls have the given name.
func (r *recordingCanvas) count(name string) int {
	n := 0
	for _, o := range r.ops {
		if o.name == name {
			n++
		}
	}
	return n
}

// texts returns the strings drawn, in order.
func (r *recordingCanvas) texts() []string {
	var out []string
	for _, o := range r.ops {
		if o.name == "DrawStringAnchored" {
			out = append(out, o.text)
		}
	}
	return out
}

// find returns the first text op drawing s.
func (r *recordingCanvas) find(s string) (op, bool) {
	for _, o := range r.ops {
		if o.name == "DrawStringAnchored" && o.text == s {
			return o, true
		}
	}
	return op{}, false
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func sameColor(a, b color.Color) bool {
	if a == nil || b == nil {
		return a == b
	}
	r1, g1, b1, a1 := a.RGBA()
	r2, g2, b2, a2 := b.RGBA()
	return r1 == r2 && g1 == g2 && b1 == b2 && a1 == a2
}
