package cursors

import "github.com/gogpu/cursors/host"

// pointer converts ev to plot-box pixels, clamped to the box.
func (p *Plot) pointer(ev host.PointerEvent) (x, y float64) {
	x, y = PointerToCanvas(p.host, ev)
	return clamp(x, 0, p.host.PlotWidth()), clamp(y, 0, p.host.PlotHeight())
}

func (p *Plot) handleDown(ev host.PointerEvent) {
	if p.thumbs.press(ev) {
		return
	}
	x, y := p.pointer(ev)

	if sel := p.Selected(); sel != nil {
		// A press while dragging ends the drag at the press location.
		p.commit(sel, AxisXY, x, y)
		sel.State = State{}
		p.setIcon(host.IconDefault)
		Logger().Debug("cursors: drag released by press", "name", sel.Name, "x", sel.X, "y", sel.Y)
		p.host.TriggerRedraw()
		return
	}

	target, region := p.hitTest(x, y)
	if target == nil {
		return
	}
	if !target.MouseButton.Accepts(ev.Button) {
		return
	}
	for _, c := range p.cursors {
		if c != target {
			c.State = State{}
		}
	}
	target.State = dragState(region)
	p.setIcon(dragIcon(target.Mode))
	Logger().Debug("cursors: drag start", "name", target.Name, "region", region, "dragmode", target.State.DragMode)
	p.host.TriggerRedraw()
}

func (p *Plot) handleMove(ev host.PointerEvent) {
	if p.thumbs.move(ev) {
		return
	}
	x, y := p.pointer(ev)

	if sel := p.Selected(); sel != nil {
		p.commit(sel, sel.State.DragMode, x, y)
		p.host.TriggerRedraw()
		return
	}

	var (
		icon    host.Icon
		changed bool
	)
	for _, c := range p.cursors {
		r := p.regionAt(c, x, y)
		if r != RegionNone {
			if !c.Highlighted() || c.State.Region != r {
				changed = changed || !c.Highlighted()
				c.State = highlightState(r)
				Logger().Debug("cursors: highlight", "name", c.Name, "region", r)
			}
			icon = hoverIcon(r)
			continue
		}
		if c.Highlighted() {
			c.State = State{}
			changed = true
			icon = host.IconDefault
		}
	}
	if icon != "" {
		p.setIcon(icon)
	}
	if changed {
		p.host.TriggerRedraw()
	}
}

func (p *Plot) handleUp(ev host.PointerEvent) {
	if p.thumbs.end(ev) {
		return
	}
	sel := p.Selected()
	if sel == nil {
		return
	}
	if !sel.MouseButton.Accepts(ev.Button) {
		return
	}
	x, y := p.pointer(ev)
	p.commit(sel, sel.State.DragMode, x, y)
	sel.State = State{}
	p.setIcon(host.IconDefault)
	Logger().Debug("cursors: drag commit", "name", sel.Name, "x", sel.X, "y", sel.Y)
	p.host.TriggerRedraw()
}

// commit moves c to (x, y) along the axes in mask, updating both its
// position and its resolved pixels. x and y are already clamped.
func (p *Plot) commit(c *Cursor, mask Axes, x, y float64) {
	if c.Position == nil {
		c.Position = &Position{}
	}
	if mask.HasX() {
		c.Position.setRelativeX(x)
		c.X = x
	}
	if mask.HasY() {
		c.Position.setRelativeY(y)
		c.Y = y
	}
	p.thumbs.sync(c)
}
