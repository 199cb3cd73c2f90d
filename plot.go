package cursors

import (
	"slices"

	"github.com/gogpu/gg"
	"github.com/google/uuid"
	"golang.org/x/text/message"

	"github.com/gogpu/cursors/host"
)

// Plot holds the cursors of one chart and the interaction state around them.
//
// A Plot is not safe for concurrent use. The host serializes pointer events
// and overlay draws, and so must callers of Add, Set and Remove.
type Plot struct {
	host host.Chart
	opts plotOptions

	pending []Config
	cursors []*Cursor

	src       host.EventSource
	disposer  disposer
	listeners listenerRegistry

	printer *message.Printer
	fonts   fontCache
	thumbs  *thumbBinding
}

// New creates the cursor context for a chart. Cursors passed with
// WithCursors are created by ProcessOptions.
func New(h host.Chart, opts ...PlotOption) *Plot {
	o := defaultPlotOptions()
	for _, opt := range opts {
		opt(&o)
	}
	p := &Plot{
		host:    h,
		opts:    o,
		pending: slices.Clone(o.cursors),
		printer: message.NewPrinter(o.lang),
	}
	if o.thumbKey != "" {
		p.thumbs = newThumbBinding(p, o.thumbKey)
	}
	return p
}

// Install creates a Plot and registers it with the chart's lifecycle hooks.
func Install(h host.Hooks, opts ...PlotOption) *Plot {
	p := New(h, opts...)
	h.OnOptionsProcessed(p.ProcessOptions)
	h.OnBindEvents(func() { p.BindEvents(h) })
	h.OnDrawOverlay(func(dc *gg.Context) { p.DrawOverlay(dc) })
	h.OnShutdown(p.Shutdown)
	return p
}

// ProcessOptions creates the cursors given at construction. Calling it again
// does nothing.
func (p *Plot) ProcessOptions() {
	pending := p.pending
	p.pending = nil
	for _, cfg := range pending {
		p.Add(cfg)
	}
}

// Add creates a cursor from cfg merged over the defaults, resolves its
// position and requests a redraw.
func (p *Plot) Add(cfg Config) *Cursor {
	c := newCursor(len(p.cursors), cfg)
	resolvePosition(p.host, c)
	p.cursors = append(p.cursors, c)
	p.thumbs.add(c)
	Logger().Debug("cursors: add", "name", c.Name, "id", c.ID, "mode", c.Mode)
	p.host.TriggerRedraw()
	return c
}

// Remove deletes c, releasing any drag or highlight it held. Unknown
// cursors are ignored.
func (p *Plot) Remove(c *Cursor) {
	i := p.index(c)
	if i < 0 {
		return
	}
	p.cursors = slices.Delete(p.cursors, i, i+1)
	if c.Selected() || c.Highlighted() {
		p.setIcon(host.IconDefault)
	}
	c.State = State{}
	p.thumbs.remove(c)
	Logger().Debug("cursors: remove", "name", c.Name, "id", c.ID)
	p.host.TriggerRedraw()
}

// Set merges the supplied fields of cfg into c and re-resolves its
// position. The interaction state is left alone. Unknown cursors are ignored.
func (p *Plot) Set(c *Cursor, cfg Config) {
	if p.index(c) < 0 {
		return
	}
	c.apply(cfg)
	resolvePosition(p.host, c)
	p.thumbs.sync(c)
	p.host.TriggerRedraw()
}

// Cursors returns the cursors in creation order. The slice is a copy; the
// cursors are not.
func (p *Plot) Cursors() []*Cursor {
	return slices.Clone(p.cursors)
}

// Intersections returns the result of the last redraw for c, or nil when c
// is unknown or was off the plot.
func (p *Plot) Intersections(c *Cursor) *Intersections {
	if p.index(c) < 0 {
		return nil
	}
	return c.Intersections
}

// Lookup finds a cursor by ID.
func (p *Plot) Lookup(id uuid.UUID) (*Cursor, bool) {
	for _, c := range p.cursors {
		if c.ID == id {
			return c, true
		}
	}
	return nil, false
}

// Selected returns the cursor being dragged, if any.
func (p *Plot) Selected() *Cursor {
	for _, c := range p.cursors {
		if c.Selected() {
			return c
		}
	}
	return nil
}

// Shutdown unregisters every pointer and change listener and resets the
// pointer icon.
func (p *Plot) Shutdown() {
	p.disposer.dispose()
	p.listeners.clear()
	p.thumbs.close()
	p.thumbs = nil
	p.setIcon(host.IconDefault)
	p.src = nil
}

func (p *Plot) index(c *Cursor) int {
	if c == nil {
		return -1
	}
	return slices.Index(p.cursors, c)
}

func (p *Plot) setIcon(icon host.Icon) {
	if p.src != nil {
		p.src.SetIcon(icon)
	}
}
