package chart

import (
	"slices"

	"github.com/gogpu/gg"

	"github.com/gogpu/cursors/host"
)

// OnOptionsProcessed registers fn to run during Setup, before events are
// bound.
func (c *Chart) OnOptionsProcessed(fn func()) {
	c.optionsProcessed = append(c.optionsProcessed, fn)
}

// OnBindEvents registers fn to run during Setup, after options.
func (c *Chart) OnBindEvents(fn func()) {
	c.bindEvents = append(c.bindEvents, fn)
}

// OnDrawOverlay registers fn to run at the end of every Draw.
func (c *Chart) OnDrawOverlay(fn func(dc *gg.Context)) {
	c.drawOverlay = append(c.drawOverlay, fn)
}

// OnShutdown registers fn to run from Shutdown.
func (c *Chart) OnShutdown(fn func()) {
	c.shutdown = append(c.shutdown, fn)
}

// Setup runs the options-processed hooks and then the bind-events hooks.
// Calling it again does nothing.
func (c *Chart) Setup() {
	if c.ready || c.closed {
		return
	}
	c.ready = true
	for _, fn := range c.optionsProcessed {
		fn()
	}
	for _, fn := range c.bindEvents {
		fn()
	}
	c.opts.logger.Debug("chart: setup", "series", len(c.series), "plugins", len(c.drawOverlay))
}

// Shutdown runs the shutdown hooks and drops every hook and listener.
func (c *Chart) Shutdown() {
	if c.closed {
		return
	}
	c.closed = true
	for _, fn := range c.shutdown {
		fn()
	}
	c.optionsProcessed, c.bindEvents, c.drawOverlay, c.shutdown = nil, nil, nil, nil
	if n := c.listenerCount(); n > 0 {
		c.opts.logger.Warn("chart: listeners left after shutdown", "count", n)
	}
	clear(c.listeners)
}

// Listen registers fn for pointer events of the given kind.
func (c *Chart) Listen(kind host.PointerKind, fn func(host.PointerEvent)) (cancel func()) {
	c.nextID++
	id := c.nextID
	c.listeners[kind] = append(c.listeners[kind], listener{id: id, fn: fn})
	return func() {
		c.listeners[kind] = slices.DeleteFunc(c.listeners[kind], func(l listener) bool { return l.id == id })
	}
}

// Listeners returns the number of listeners registered for kind.
func (c *Chart) Listeners(kind host.PointerKind) int {
	return len(c.listeners[kind])
}

func (c *Chart) listenerCount() int {
	n := 0
	for _, ls := range c.listeners {
		n += len(ls)
	}
	return n
}

// Dispatch delivers a pointer event to the listeners of its kind.
func (c *Chart) Dispatch(ev host.PointerEvent) {
	for _, l := range slices.Clone(c.listeners[ev.Kind]) {
		l.fn(ev)
	}
}

// SetIcon sets the pointer icon.
func (c *Chart) SetIcon(icon host.Icon) {
	if icon != c.icon {
		c.opts.logger.Debug("chart: icon", "icon", icon)
	}
	c.icon = icon
}

// Icon returns the current pointer icon.
func (c *Chart) Icon() host.Icon { return c.icon }
