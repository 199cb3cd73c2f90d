package cursors

import "github.com/gogpu/cursors/host"

// StateKind is the interaction state of a cursor.
type StateKind uint8

// Interaction states.
const (
	Idle StateKind = iota
	Highlighted
	Dragging
)

// String returns a string representation of the state kind.
func (k StateKind) String() string {
	switch k {
	case Idle:
		return "idle"
	case Highlighted:
		return "highlighted"
	case Dragging:
		return "dragging"
	default:
		return "unknown"
	}
}

// Region is the part of a cursor under the pointer.
type Region uint8

// Hit regions.
const (
	RegionNone Region = iota
	RegionManipulator
	RegionVertical
	RegionHorizontal
)

// String returns a string representation of the region.
func (r Region) String() string {
	switch r {
	case RegionNone:
		return "none"
	case RegionManipulator:
		return "manipulator"
	case RegionVertical:
		return "vertical"
	case RegionHorizontal:
		return "horizontal"
	default:
		return "unknown"
	}
}

// Axes is a mask of the axes a drag updates.
type Axes uint8

// Axis masks.
const (
	AxisX  Axes = 1 << 0
	AxisY  Axes = 1 << 1
	AxisXY      = AxisX | AxisY
)

// HasX reports whether the mask includes the X axis.
func (a Axes) HasX() bool { return a&AxisX != 0 }

// HasY reports whether the mask includes the Y axis.
func (a Axes) HasY() bool { return a&AxisY != 0 }

// String returns "x", "y", "xy" or "".
func (a Axes) String() string {
	s := ""
	if a.HasX() {
		s += "x"
	}
	if a.HasY() {
		s += "y"
	}
	return s
}

// State is the interaction state of one cursor:
// Idle, Highlighted(Region) or Dragging(Region, DragMode).
type State struct {
	Kind     StateKind
	Region   Region
	DragMode Axes
}

// dragModeFor returns the axes a drag started on region r updates. The
// manipulator moves the cursor freely whatever its mode.
func dragModeFor(r Region) Axes {
	switch r {
	case RegionVertical:
		return AxisX
	case RegionHorizontal:
		return AxisY
	case RegionManipulator:
		return AxisXY
	default:
		return 0
	}
}

// hoverIcon is the pointer icon shown while hovering region r.
func hoverIcon(r Region) host.Icon {
	switch r {
	case RegionManipulator:
		return host.IconPointer
	case RegionVertical:
		return host.IconColResize
	case RegionHorizontal:
		return host.IconRowResize
	default:
		return host.IconDefault
	}
}

// dragIcon is the pointer icon shown while dragging a cursor of mode m.
func dragIcon(m Mode) host.Icon {
	switch m {
	case ModeX:
		return host.IconEWResize
	case ModeY:
		return host.IconNSResize
	default:
		return host.IconMove
	}
}

func highlightState(r Region) State {
	return State{Kind: Highlighted, Region: r}
}

func dragState(r Region) State {
	return State{Kind: Dragging, Region: r, DragMode: dragModeFor(r)}
}
