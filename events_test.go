package cursors

import (
	"slices"
	"testing"

	"github.com/gogpu/cursors/host"
)

func TestDisposer(t *testing.T) {
	var d disposer
	var order []int
	for i := range 3 {
		d.add(func() { order = append(order, i) })
	}
	d.add(nil)

	d.dispose()
	d.dispose()

	if want := []int{2, 1, 0}; !slices.Equal(order, want) {
		t.Errorf("order = %v, want %v", order, want)
	}
}

func TestBindEventsAndShutdown(t *testing.T) {
	fc := newFakeChart()
	p := New(fc)
	p.ProcessOptions()

	p.BindEvents(fc)
	if n := fc.listenerCount(); n != 4 {
		t.Fatalf("listeners = %d, want 4", n)
	}
	p.BindEvents(fc)
	if n := fc.listenerCount(); n != 4 {
		t.Errorf("listeners after rebinding = %d, want 4", n)
	}

	calls := 0
	p.Subscribe(func([]Intersections) { calls++ })

	p.Shutdown()

	if n := fc.listenerCount(); n != 0 {
		t.Errorf("listeners after Shutdown = %d, want 0", n)
	}
	if fc.icon() != host.IconDefault {
		t.Errorf("icon = %q, want default", fc.icon())
	}
	var rc recordingCanvas
	p.DrawOverlay(&rc)
	if calls != 0 {
		t.Errorf("change listener survived Shutdown")
	}

	// Events after shutdown reach nobody.
	p.Add(NewConfig(WithPosition(Relative(100, 100))))
	fc.down(100, 100)
	if p.Selected() != nil {
		t.Error("pointer listener survived Shutdown")
	}
}

func TestSubscribe(t *testing.T) {
	p, _ := newTestPlot(t)
	var got []string
	cancelA := p.Subscribe(func([]Intersections) { got = append(got, "a") })
	p.Subscribe(func([]Intersections) { got = append(got, "b") })
	noop := p.Subscribe(nil)

	var rc recordingCanvas
	p.DrawOverlay(&rc)
	cancelA()
	cancelA()
	noop()
	p.DrawOverlay(&rc)

	if want := []string{"a", "b", "b"}; !slices.Equal(got, want) {
		t.Errorf("calls = %v, want %v", got, want)
	}
	if n := p.listeners.len(); n != 1 {
		t.Errorf("listeners = %d, want 1", n)
	}
}

func TestListenerMayUnsubscribeDuringNotify(t *testing.T) {
	p, _ := newTestPlot(t)
	calls := 0
	var cancel func()
	cancel = p.Subscribe(func([]Intersections) {
		calls++
		cancel()
	})

	var rc recordingCanvas
	p.DrawOverlay(&rc)
	p.DrawOverlay(&rc)

	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}
