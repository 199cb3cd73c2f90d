package thumb

import (
	"image/color"
	"log/slog"
	"slices"
	"sync"
)

// Constraint maps a requested thumb center to the center the thumb may
// occupy. lastX and lastY are the current center.
type Constraint func(x, y, lastX, lastY float64) (float64, float64)

// Horizontal keeps a thumb on the line y and between minX and maxX.
func Horizontal(y, minX, maxX float64) Constraint {
	return func(x, _, _, _ float64) (float64, float64) {
		return min(max(x, minX), maxX), y
	}
}

// Vertical keeps a thumb on the line x and between minY and maxY.
func Vertical(x, minY, maxY float64) Constraint {
	return func(_, y, _, _ float64) (float64, float64) {
		return x, min(max(y, minY), maxY)
	}
}

// EventKind identifies a drag event.
type EventKind uint8

// Drag events.
const (
	MoveStart EventKind = iota
	Move
	MoveEnd
)

// String returns a string representation of the event kind.
func (k EventKind) String() string {
	switch k {
	case MoveStart:
		return "movestart"
	case Move:
		return "move"
	case MoveEnd:
		return "moveend"
	default:
		return "unknown"
	}
}

// Event reports the progress of a drag. X and Y are the thumb center after
// the constraint was applied.
type Event struct {
	Kind  EventKind
	Thumb *Thumb
	X, Y  float64
}

// Thumb is one drag handle.
type Thumb struct {
	x, y       float64
	radius     float64
	color      color.Color
	constraint Constraint

	// Owner is set by the creator and never read by the layer.
	Owner any
}

// ThumbOption configures a Thumb when it is added.
type ThumbOption func(*Thumb)

// WithConstraint restricts where the thumb can be dragged.
func WithConstraint(c Constraint) ThumbOption {
	return func(t *Thumb) { t.constraint = c }
}

// WithColor sets the fill color.
func WithColor(c color.Color) ThumbOption {
	return func(t *Thumb) { t.color = c }
}

// WithOwner tags the thumb with its creator.
func WithOwner(owner any) ThumbOption {
	return func(t *Thumb) { t.Owner = owner }
}

func (t *Thumb) contains(x, y float64) bool {
	dx, dy := x-t.x, y-t.y
	return dx*dx+dy*dy <= t.radius*t.radius
}

// Layer is a set of thumbs shared by the charts of one container.
// It is safe for concurrent use.
type Layer struct {
	key    string
	logger *slog.Logger

	mu           sync.Mutex
	refs         int
	thumbs       []*Thumb
	active       *Thumb
	grabX, grabY float64
	nextID       int
	handlers     []handler
}

type handler struct {
	id int
	fn func(Event)
}

// LayerOption configures a Layer when it is first created.
type LayerOption func(*Layer)

// WithLogger sets the layer's logger. The default discards everything.
func WithLogger(l *slog.Logger) LayerOption {
	return func(layer *Layer) {
		if l != nil {
			layer.logger = l
		}
	}
}

var (
	registryMu sync.Mutex
	registry   = make(map[string]*Layer)
)

// Acquire returns the layer for key, creating it on first use. Options only
// apply when the layer is created. Every call must be paired with Release.
func Acquire(key string, opts ...LayerOption) *Layer {
	registryMu.Lock()
	defer registryMu.Unlock()

	l, ok := registry[key]
	if !ok {
		l = &Layer{key: key, logger: slog.New(slog.DiscardHandler)}
		for _, opt := range opts {
			opt(l)
		}
		registry[key] = l
		l.logger.Debug("thumb: layer created", "key", key)
	}
	l.mu.Lock()
	l.refs++
	l.mu.Unlock()
	return l
}

// Lookup returns the live layer for key, if any.
func Lookup(key string) (*Layer, bool) {
	registryMu.Lock()
	defer registryMu.Unlock()
	l, ok := registry[key]
	return l, ok
}

// Release gives up one reference to the layer. Releasing the last reference
// ends any drag, drops every thumb and subscriber, and removes the layer
// from the registry. Extra calls are ignored.
func (l *Layer) Release() {
	registryMu.Lock()
	defer registryMu.Unlock()

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.refs == 0 {
		return
	}
	l.refs--
	if l.refs > 0 {
		return
	}
	l.thumbs = nil
	l.active = nil
	l.handlers = nil
	if registry[l.key] == l {
		delete(registry, l.key)
	}
	l.logger.Debug("thumb: layer dropped", "key", l.key)
}

// Key returns the container key of the layer.
func (l *Layer) Key() string { return l.key }

// Refs returns the number of outstanding Acquire calls.
func (l *Layer) Refs() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.refs
}

// Add creates a thumb centered on (x, y).
func (l *Layer) Add(x, y, radius float64, opts ...ThumbOption) *Thumb {
	t := &Thumb{x: x, y: y, radius: radius, color: color.Gray{Y: 0x80}}
	for _, opt := range opts {
		opt(t)
	}
	l.mu.Lock()
	l.thumbs = append(l.thumbs, t)
	l.mu.Unlock()
	return t
}

// Remove deletes t from the layer, ending its drag if it was active.
func (l *Layer) Remove(t *Thumb) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.thumbs = slices.DeleteFunc(l.thumbs, func(o *Thumb) bool { return o == t })
	if l.active == t {
		l.active = nil
	}
}

// Thumbs returns the thumbs in the order they were added.
func (l *Layer) Thumbs() []*Thumb {
	l.mu.Lock()
	defer l.mu.Unlock()
	return slices.Clone(l.thumbs)
}

// Position returns the center of t.
func (l *Layer) Position(t *Thumb) (x, y float64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return t.x, t.y
}

// SetPosition moves t without emitting events. The constraint is not
// applied.
func (l *Layer) SetPosition(t *Thumb, x, y float64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	t.x, t.y = x, y
}

// SetConstraint replaces the constraint of t.
func (l *Layer) SetConstraint(t *Thumb, c Constraint) {
	l.mu.Lock()
	defer l.mu.Unlock()
	t.constraint = c
}

// HitTest returns the topmost thumb containing (x, y), or nil.
func (l *Layer) HitTest(x, y float64) *Thumb {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.hitTest(x, y, nil)
}

// hitTest returns the topmost thumb containing (x, y) for which keep
// reports true. A nil keep accepts every thumb.
func (l *Layer) hitTest(x, y float64, keep func(*Thumb) bool) *Thumb {
	for i := len(l.thumbs) - 1; i >= 0; i-- {
		t := l.thumbs[i]
		if t.contains(x, y) && (keep == nil || keep(t)) {
			return t
		}
	}
	return nil
}

// Active returns the thumb being dragged, or nil.
func (l *Layer) Active() *Thumb {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.active
}

// Press starts dragging the thumb under (x, y) and reports whether one was
// hit.
func (l *Layer) Press(x, y float64) bool {
	return l.PressFunc(x, y, nil)
}

// PressFunc is like Press but only considers thumbs for which keep reports
// true. Thumbs that keep rejects do not shadow the ones below them.
func (l *Layer) PressFunc(x, y float64, keep func(*Thumb) bool) bool {
	l.mu.Lock()
	t := l.hitTest(x, y, keep)
	if t == nil {
		l.mu.Unlock()
		return false
	}
	l.active = t
	l.grabX, l.grabY = x-t.x, y-t.y
	ev := Event{Kind: MoveStart, Thumb: t, X: t.x, Y: t.y}
	l.mu.Unlock()

	l.logger.Debug("thumb: drag start", "key", l.key, "x", ev.X, "y", ev.Y)
	l.emit(ev)
	return true
}

// Drag moves the active thumb so that it keeps its offset from the pointer,
// subject to its constraint. It reports whether a drag is active.
func (l *Layer) Drag(x, y float64) bool {
	l.mu.Lock()
	t := l.active
	if t == nil {
		l.mu.Unlock()
		return false
	}
	cx, cy := x-l.grabX, y-l.grabY
	if t.constraint != nil {
		cx, cy = t.constraint(cx, cy, t.x, t.y)
	}
	t.x, t.y = cx, cy
	ev := Event{Kind: Move, Thumb: t, X: t.x, Y: t.y}
	l.mu.Unlock()

	l.emit(ev)
	return true
}

// End finishes the active drag and reports whether there was one.
func (l *Layer) End() bool {
	l.mu.Lock()
	t := l.active
	if t == nil {
		l.mu.Unlock()
		return false
	}
	l.active = nil
	ev := Event{Kind: MoveEnd, Thumb: t, X: t.x, Y: t.y}
	l.mu.Unlock()

	l.logger.Debug("thumb: drag end", "key", l.key, "x", ev.X, "y", ev.Y)
	l.emit(ev)
	return true
}

// Subscribe registers fn for drag events. The returned function
// unsubscribes.
func (l *Layer) Subscribe(fn func(Event)) (cancel func()) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.nextID++
	id := l.nextID
	l.handlers = append(l.handlers, handler{id: id, fn: fn})
	return func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		l.handlers = slices.DeleteFunc(l.handlers, func(h handler) bool { return h.id == id })
	}
}

func (l *Layer) emit(ev Event) {
	l.mu.Lock()
	hs := slices.Clone(l.handlers)
	l.mu.Unlock()
	for _, h := range hs {
		h.fn(ev)
	}
}
