package host

import "github.com/gogpu/gg"

// Point is a pair of coordinates, in data or pixel space depending on use.
type Point struct {
	X, Y float64
}

// Axis maps data values along one direction to canvas pixels.
type Axis interface {
	// Min and Max are the current data range of the axis.
	Min() float64
	Max() float64

	// P2C converts a data value to a canvas pixel offset.
	P2C(v float64) float64

	// C2P converts a canvas pixel offset to a data value.
	C2P(px float64) float64
}

// Series is one plotted data series. Points are ordered by X.
//
// XAxis and YAxis are 1-based axis numbers (1 for x/y, 2 for x2/y2, ...).
// Zero means the first axis.
type Series struct {
	Label  string
	Points []Point
	XAxis  int
	YAxis  int
}

// Chart is the host charting surface as seen by a plugin.
type Chart interface {
	// PlotWidth and PlotHeight are the dimensions of the plot box in pixels.
	PlotWidth() float64
	PlotHeight() float64

	// PlotOffset is the position of the plot box inside the drawing canvas.
	PlotOffset() Point

	// Offset is the absolute (page) position of the plot box.
	Offset() Point

	// XAxis and YAxis return the numbered axis, or nil if it does not exist.
	XAxis(n int) Axis
	YAxis(n int) Axis

	// Series returns the plotted series in drawing order.
	Series() []Series

	// TriggerRedraw schedules a redraw of the overlay.
	TriggerRedraw()
}

// Button is a pointer button code: 0 primary, 1 auxiliary, 2 secondary.
type Button int

// Pointer button codes.
const (
	ButtonPrimary   Button = 0
	ButtonAuxiliary Button = 1
	ButtonSecondary Button = 2
)

// PointerKind identifies the kind of a pointer event.
type PointerKind uint8

const (
	// PointerDown is a button press.
	PointerDown PointerKind = iota
	// PointerMove is pointer motion, with or without a button held.
	PointerMove
	// PointerUp is a button release.
	PointerUp
	// PointerOut is the pointer leaving the tracked element.
	PointerOut
)

// String returns a string representation of the pointer kind.
func (k PointerKind) String() string {
	switch k {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	case PointerOut:
		return "out"
	default:
		return "unknown"
	}
}

// PointerEvent is a pointer event in absolute (page) coordinates.
type PointerEvent struct {
	Kind   PointerKind
	PageX  float64
	PageY  float64
	Button Button
}

// Icon is a pointer icon name, using CSS cursor keywords.
type Icon string

// Pointer icons used by overlays.
const (
	IconDefault   Icon = "default"
	IconPointer   Icon = "pointer"
	IconColResize Icon = "col-resize"
	IconRowResize Icon = "row-resize"
	IconEWResize  Icon = "ew-resize"
	IconNSResize  Icon = "ns-resize"
	IconMove      Icon = "move"
)

// EventSource delivers pointer events from the element the overlay is drawn
// on and owns that element's pointer icon.
type EventSource interface {
	// Listen registers fn for events of the given kind. The returned
	// function unregisters it; calling it more than once is safe.
	Listen(kind PointerKind, fn func(PointerEvent)) (cancel func())

	// SetIcon changes the pointer icon of the element.
	SetIcon(icon Icon)
}

// Hooks is a chart that drives plugins through lifecycle hooks.
type Hooks interface {
	Chart
	EventSource

	// OnOptionsProcessed runs fn once the chart has processed its options.
	OnOptionsProcessed(fn func())

	// OnBindEvents runs fn when the chart binds its event handlers.
	OnBindEvents(fn func())

	// OnDrawOverlay runs fn on every overlay redraw. The context is
	// untranslated; the plot box starts at PlotOffset.
	OnDrawOverlay(fn func(dc *gg.Context))

	// OnShutdown runs fn when the chart is destroyed.
	OnShutdown(fn func())
}
