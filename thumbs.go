package cursors

import (
	"github.com/gogpu/cursors/host"
	"github.com/gogpu/cursors/thumb"
)

// thumbOwner tags the thumbs a plot creates on a shared layer.
type thumbOwner struct {
	plot   *Plot
	cursor *Cursor
	axis   Axes
}

type cursorThumbs struct {
	x, y *thumb.Thumb
}

// thumbBinding keeps one drag handle per line of every cursor with
// ShowThumbs on a shared thumb layer. Vertical lines get a handle on the bottom edge of the plot box,
// horizontal lines one on the left edge. Layer coordinates are page
// coordinates. A nil binding does nothing.
type thumbBinding struct {
	p        *Plot
	layer    *thumb.Layer
	cancel   func()
	byCursor map[*Cursor]*cursorThumbs
}

func newThumbBinding(p *Plot, key string) *thumbBinding {
	b := &thumbBinding{
		p:        p,
		layer:    thumb.Acquire(key, thumb.WithLogger(Logger())),
		byCursor: make(map[*Cursor]*cursorThumbs),
	}
	b.cancel = b.layer.Subscribe(b.onEvent)
	return b
}

// Thumbs returns the handles of c on the shared layer, nil where c has none.
func (p *Plot) Thumbs(c *Cursor) (x, y *thumb.Thumb) {
	if p.thumbs == nil {
		return nil, nil
	}
	ct := p.thumbs.byCursor[c]
	if ct == nil {
		return nil, nil
	}
	return ct.x, ct.y
}

func (b *thumbBinding) add(c *Cursor) {
	if b == nil {
		return
	}
	b.byCursor[c] = &cursorThumbs{}
	b.sync(c)
}

// sync creates, moves or drops the handles of c to match its mode and
// position.
func (b *thumbBinding) sync(c *Cursor) {
	if b == nil {
		return
	}
	ct, ok := b.byCursor[c]
	if !ok {
		return
	}
	active := c.ShowThumbs && c.Movable && c.Show && c.resolved()
	h := b.p.host
	off := h.Offset()
	w, ht := h.PlotWidth(), h.PlotHeight()
	r := b.p.opts.thumbRadius

	ct.x = b.place(ct.x, c, AxisX, active && c.HasVerticalLine(),
		off.X+c.X, off.Y+ht, thumb.Horizontal(off.Y+ht, off.X, off.X+w), r)
	ct.y = b.place(ct.y, c, AxisY, active && c.HasHorizontalLine(),
		off.X, off.Y+c.Y, thumb.Vertical(off.X, off.Y, off.Y+ht), r)
}

func (b *thumbBinding) place(t *thumb.Thumb, c *Cursor, axis Axes, want bool, x, y float64, con thumb.Constraint, r float64) *thumb.Thumb {
	switch {
	case !want:
		if t != nil {
			b.layer.Remove(t)
		}
		return nil
	case t == nil:
		return b.layer.Add(x, y, r,
			thumb.WithConstraint(con),
			thumb.WithColor(ParseColor(c.Color)),
			thumb.WithOwner(thumbOwner{plot: b.p, cursor: c, axis: axis}),
		)
	default:
		b.layer.SetPosition(t, x, y)
		b.layer.SetConstraint(t, con)
		return t
	}
}

func (b *thumbBinding) remove(c *Cursor) {
	if b == nil {
		return
	}
	ct, ok := b.byCursor[c]
	if !ok {
		return
	}
	if ct.x != nil {
		b.layer.Remove(ct.x)
	}
	if ct.y != nil {
		b.layer.Remove(ct.y)
	}
	delete(b.byCursor, c)
}

// owns reports whether t is one of this plot's handles.
func (b *thumbBinding) owns(t *thumb.Thumb) bool {
	o, ok := t.Owner.(thumbOwner)
	return ok && o.plot == b.p
}

func (b *thumbBinding) onEvent(ev thumb.Event) {
	if !b.owns(ev.Thumb) {
		return
	}
	owner := ev.Thumb.Owner.(thumbOwner)
	p, c := b.p, owner.cursor
	switch ev.Kind {
	case thumb.MoveStart:
		// A thumb drag selects its cursor like a drag on the matching line.
		region := RegionVertical
		if owner.axis == AxisY {
			region = RegionHorizontal
		}
		for _, o := range p.cursors {
			o.State = State{}
		}
		c.State = dragState(region)
		p.setIcon(dragIcon(c.Mode))
		p.host.TriggerRedraw()
	case thumb.Move:
		off := p.host.Offset()
		x := clamp(ev.X-off.X, 0, p.host.PlotWidth())
		y := clamp(ev.Y-off.Y, 0, p.host.PlotHeight())
		if owner.axis == AxisX {
			p.commit(c, AxisX, x, c.Y)
		} else {
			p.commit(c, AxisY, c.X, y)
		}
		p.host.TriggerRedraw()
	case thumb.MoveEnd:
		c.State = State{}
		p.setIcon(host.IconDefault)
		Logger().Debug("cursors: thumb drag commit", "name", c.Name, "x", c.X, "y", c.Y)
		p.host.TriggerRedraw()
	}
}

func (b *thumbBinding) press(ev host.PointerEvent) bool {
	if b == nil {
		return false
	}
	return b.layer.PressFunc(ev.PageX, ev.PageY, b.owns)
}

// dragging reports whether the layer's active drag is on one of this
// plot's handles.
func (b *thumbBinding) dragging() bool {
	t := b.layer.Active()
	return t != nil && b.owns(t)
}

func (b *thumbBinding) move(ev host.PointerEvent) bool {
	if b == nil || !b.dragging() {
		return false
	}
	return b.layer.Drag(ev.PageX, ev.PageY)
}

func (b *thumbBinding) end(host.PointerEvent) bool {
	if b == nil || !b.dragging() {
		return false
	}
	return b.layer.End()
}

// draw paints this plot's handles. dc is untranslated, so page coordinates
// are shifted by the difference between the canvas and page offsets.
func (b *thumbBinding) draw(dc Canvas) {
	if b == nil {
		return
	}
	for c := range b.byCursor {
		b.sync(c)
	}
	po, off := b.p.host.PlotOffset(), b.p.host.Offset()
	err := b.layer.Draw(dc, po.X-off.X, po.Y-off.Y, b.owns)
	if err != nil {
		Logger().Debug("cursors: thumb draw failed", "err", err)
	}
}

func (b *thumbBinding) close() {
	if b == nil {
		return
	}
	b.cancel()
	for c := range b.byCursor {
		b.remove(c)
	}
	b.layer.Release()
}
