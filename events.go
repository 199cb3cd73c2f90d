package cursors

import (
	"slices"

	"github.com/gogpu/cursors/host"
)

// disposer collects cleanup functions and runs them once, newest first.
type disposer struct {
	fns []func()
}

func (d *disposer) add(fn func()) {
	if fn != nil {
		d.fns = append(d.fns, fn)
	}
}

func (d *disposer) dispose() {
	fns := d.fns
	d.fns = nil
	for i := len(fns) - 1; i >= 0; i-- {
		fns[i]()
	}
}

// listenerRegistry holds change listeners in subscription order.
type listenerRegistry struct {
	next    int
	entries []listenerEntry
}

type listenerEntry struct {
	id int
	fn func([]Intersections)
}

func (r *listenerRegistry) add(fn func([]Intersections)) func() {
	r.next++
	id := r.next
	r.entries = append(r.entries, listenerEntry{id: id, fn: fn})
	return func() {
		r.entries = slices.DeleteFunc(r.entries, func(e listenerEntry) bool { return e.id == id })
	}
}

func (r *listenerRegistry) clear() { r.entries = nil }

func (r *listenerRegistry) len() int { return len(r.entries) }

func (r *listenerRegistry) notify(update []Intersections) {
	for _, e := range slices.Clone(r.entries) {
		e.fn(update)
	}
}

// Subscribe registers fn to receive one entry per drawn cursor after each
// redraw, in cursor order. Cursors outside the axis ranges are reported
// with OffPlot set. Hidden and unresolved cursors are left out. The
// returned function unsubscribes.
func (p *Plot) Subscribe(fn func([]Intersections)) (cancel func()) {
	if fn == nil {
		return func() {}
	}
	return p.listeners.add(fn)
}

// BindEvents starts listening to pointer events from src. A previous
// binding is released first.
func (p *Plot) BindEvents(src host.EventSource) {
	p.disposer.dispose()
	p.src = src
	p.disposer.add(src.Listen(host.PointerDown, p.handleDown))
	p.disposer.add(src.Listen(host.PointerMove, p.handleMove))
	p.disposer.add(src.Listen(host.PointerUp, p.handleUp))
	p.disposer.add(src.Listen(host.PointerOut, p.handleUp))
}

// HandlePointer feeds a pointer event to the plot directly, for hosts that
// do not implement EventSource.
func (p *Plot) HandlePointer(ev host.PointerEvent) {
	switch ev.Kind {
	case host.PointerDown:
		p.handleDown(ev)
	case host.PointerMove:
		p.handleMove(ev)
	case host.PointerUp, host.PointerOut:
		p.handleUp(ev)
	}
}
