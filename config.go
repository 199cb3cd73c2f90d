package cursors

import (
	"slices"

	"github.com/gogpu/cursors/host"
)

// Mode selects which lines a cursor draws.
type Mode string

// Cursor modes.
const (
	ModeX  Mode = "x"
	ModeY  Mode = "y"
	ModeXY Mode = "xy"
)

// HasX reports whether the mode draws a vertical line (moves along X).
func (m Mode) HasX() bool { return m == ModeX || m == ModeXY }

// HasY reports whether the mode draws a horizontal line (moves along Y).
func (m Mode) HasY() bool { return m == ModeY || m == ModeXY }

// Valid reports whether m is one of the known modes.
func (m Mode) Valid() bool { return m == ModeX || m == ModeY || m == ModeXY }

// axes returns the axis mask matching the mode.
func (m Mode) axes() Axes {
	var a Axes
	if m.HasX() {
		a |= AxisX
	}
	if m.HasY() {
		a |= AxisY
	}
	return a
}

// MouseButton restricts which pointer button may select and drag a cursor.
type MouseButton string

// Mouse button filters.
const (
	ButtonAll    MouseButton = "all"
	ButtonLeft   MouseButton = "left"
	ButtonMiddle MouseButton = "middle"
	ButtonRight  MouseButton = "right"
)

// Accepts reports whether an event with the given button code passes the
// filter. Unknown filters accept every button, like ButtonAll.
func (b MouseButton) Accepts(code host.Button) bool {
	switch b {
	case ButtonAll:
		return true
	case ButtonLeft:
		return code == host.ButtonPrimary
	case ButtonMiddle:
		return code == host.ButtonAuxiliary
	case ButtonRight:
		return code == host.ButtonSecondary
	default:
		return true
	}
}

// LabelPosition places intersection value labels relative to their marker.
type LabelPosition string

// Intersection label positions. The corners place the value diagonally off
// the marker; above and below center it over or under the marker.
const (
	LabelBottomRight LabelPosition = "bottom-right"
	LabelBottomLeft  LabelPosition = "bottom-left"
	LabelTopRight    LabelPosition = "top-right"
	LabelTopLeft     LabelPosition = "top-left"
	LabelAbove       LabelPosition = "above"
	LabelBelow       LabelPosition = "below"
)

// Valid reports whether p is one of the known label positions.
func (p LabelPosition) Valid() bool {
	switch p {
	case LabelBottomRight, LabelBottomLeft, LabelTopRight, LabelTopLeft, LabelAbove, LabelBelow:
		return true
	default:
		return false
	}
}

// Selection chooses which series get intersection markers: none, all, or an
// explicit list of positions in the intersection result.
type Selection struct {
	all    bool
	series []int
}

// ShowNone selects no series.
func ShowNone() Selection { return Selection{} }

// ShowAll selects every series.
func ShowAll() Selection { return Selection{all: true} }

// ShowSeries selects the listed series positions.
func ShowSeries(idx ...int) Selection {
	return Selection{series: slices.Clone(idx)}
}

// Enabled reports whether anything is selected.
func (s Selection) Enabled() bool { return s.all || len(s.series) > 0 }

// All reports whether every series is selected.
func (s Selection) All() bool { return s.all }

// Series returns the explicit list, or nil for ShowAll and ShowNone.
func (s Selection) Series() []int { return slices.Clone(s.series) }

// Includes reports whether position i is selected.
func (s Selection) Includes(i int) bool {
	return s.all || slices.Contains(s.series, i)
}

// Sentinels for series-index fields.
const (
	// SnapAny snaps to the series whose intersection is nearest in Y.
	SnapAny = -1
	// SnapNone disables snapping.
	SnapNone = -2
	// NoSeries disables the values-relative-to-series text.
	NoSeries = -1
)

// Config is the configuration schema of a cursor. A nil field means "not
// supplied": defaults fill it on Add, and Set leaves the cursor's value alone.
type Config struct {
	Name                       *string
	Mode                       *Mode
	Position                   *Position
	Color                      *string
	LineWidth                  *float64
	Dashes                     *int
	Symbol                     *string
	FontSize                   *float64
	FontFamily                 *string
	IntersectionColor          *string
	IntersectionLabelPosition  *LabelPosition
	Movable                    *bool
	MouseButton                *MouseButton
	Show                       *bool
	ShowIntersections          *Selection
	ShowLabel                  *bool
	ShowThumbs                 *bool
	ShowValuesRelativeToSeries *int
	SnapToPlot                 *int
}

// Default cursor settings.
const (
	DefaultColor                     = "gray"
	DefaultLineWidth                 = 1.0
	DefaultDashes                    = 1
	DefaultSymbol                    = "cross"
	DefaultFontSize                  = 10.0
	DefaultFontFamily                = "sans-serif"
	DefaultIntersectionColor         = "darkgray"
	DefaultIntersectionLabelPosition = LabelBottomRight
)

// DefaultConfig returns a fully populated configuration without a name or
// position. The name is derived from the cursor's ordinal when added.
func DefaultConfig() Config {
	return NewConfig(
		WithMode(ModeXY),
		WithColor(DefaultColor),
		WithLineWidth(DefaultLineWidth),
		WithDashes(DefaultDashes),
		WithSymbol(DefaultSymbol),
		WithFontSize(DefaultFontSize),
		WithFontFamily(DefaultFontFamily),
		WithIntersectionColor(DefaultIntersectionColor),
		WithIntersectionLabelPosition(DefaultIntersectionLabelPosition),
		WithMovable(true),
		WithMouseButton(ButtonAll),
		WithShow(true),
		WithShowIntersections(ShowNone()),
		WithShowLabel(false),
		WithShowThumbs(false),
		WithValuesRelativeToSeries(NoSeries),
		WithSnapToPlot(SnapNone),
	)
}

// MergeConfig returns base with every non-nil field of over applied on top.
// The merge is shallow: a supplied Position replaces the base position.
func MergeConfig(base, over Config) Config {
	out := base
	mergeField(&out.Name, over.Name)
	mergeField(&out.Mode, over.Mode)
	if over.Position != nil {
		out.Position = over.Position.Clone()
	}
	mergeField(&out.Color, over.Color)
	mergeField(&out.LineWidth, over.LineWidth)
	mergeField(&out.Dashes, over.Dashes)
	mergeField(&out.Symbol, over.Symbol)
	mergeField(&out.FontSize, over.FontSize)
	mergeField(&out.FontFamily, over.FontFamily)
	mergeField(&out.IntersectionColor, over.IntersectionColor)
	mergeField(&out.IntersectionLabelPosition, over.IntersectionLabelPosition)
	mergeField(&out.Movable, over.Movable)
	mergeField(&out.MouseButton, over.MouseButton)
	mergeField(&out.Show, over.Show)
	mergeField(&out.ShowIntersections, over.ShowIntersections)
	mergeField(&out.ShowLabel, over.ShowLabel)
	mergeField(&out.ShowThumbs, over.ShowThumbs)
	mergeField(&out.ShowValuesRelativeToSeries, over.ShowValuesRelativeToSeries)
	mergeField(&out.SnapToPlot, over.SnapToPlot)
	return out
}

func mergeField[T any](dst **T, src *T) {
	if src != nil {
		v := *src
		*dst = &v
	}
}

// Option sets one field of a Config.
//
// Example:
//
//	p.Add(cursors.NewConfig(
//	    cursors.WithName("peak"),
//	    cursors.WithMode(cursors.ModeX),
//	    cursors.WithPosition(cursors.Data(1.5, 0)),
//	))
type Option func(*Config)

// NewConfig builds a Config from options. Fields not touched stay nil.
func NewConfig(opts ...Option) Config {
	var c Config
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

func ptr[T any](v T) *T { return &v }

// WithName sets the cursor name.
func WithName(name string) Option { return func(c *Config) { c.Name = ptr(name) } }

// WithMode sets which lines the cursor draws.
func WithMode(m Mode) Option { return func(c *Config) { c.Mode = ptr(m) } }

// WithPosition sets the cursor position.
func WithPosition(p *Position) Option { return func(c *Config) { c.Position = p.Clone() } }

// WithColor sets the line and label color (CSS name or hex).
func WithColor(color string) Option { return func(c *Config) { c.Color = ptr(color) } }

// WithLineWidth sets the line width; zero hides the lines.
func WithLineWidth(w float64) Option { return func(c *Config) { c.LineWidth = ptr(w) } }

// WithDashes sets the number of dash strokes; 1 or less draws a solid line.
func WithDashes(n int) Option { return func(c *Config) { c.Dashes = ptr(n) } }

// WithSymbol sets the manipulator symbol; "none" hides it.
func WithSymbol(s string) Option { return func(c *Config) { c.Symbol = ptr(s) } }

// WithFontSize sets the label font size in points.
func WithFontSize(size float64) Option { return func(c *Config) { c.FontSize = ptr(size) } }

// WithFontFamily sets the label font family.
func WithFontFamily(family string) Option { return func(c *Config) { c.FontFamily = ptr(family) } }

// WithIntersectionColor sets the color of intersection markers and values.
func WithIntersectionColor(color string) Option {
	return func(c *Config) { c.IntersectionColor = ptr(color) }
}

// WithIntersectionLabelPosition places intersection value labels.
func WithIntersectionLabelPosition(p LabelPosition) Option {
	return func(c *Config) { c.IntersectionLabelPosition = ptr(p) }
}

// WithMovable sets whether the cursor can be dragged.
func WithMovable(m bool) Option { return func(c *Config) { c.Movable = ptr(m) } }

// WithMouseButton restricts the button that drags the cursor.
func WithMouseButton(b MouseButton) Option { return func(c *Config) { c.MouseButton = ptr(b) } }

// WithShow sets whether the cursor is drawn at all.
func WithShow(show bool) Option { return func(c *Config) { c.Show = ptr(show) } }

// WithShowIntersections selects the series that get intersection markers.
func WithShowIntersections(s Selection) Option {
	return func(c *Config) { c.ShowIntersections = ptr(s) }
}

// WithShowLabel sets whether the cursor name is drawn.
func WithShowLabel(show bool) Option { return func(c *Config) { c.ShowLabel = ptr(show) } }

// WithShowThumbs sets whether the cursor gets drag handles on the plot's
// thumb layer. It has no effect unless the plot was created WithThumbs.
func WithShowThumbs(show bool) Option { return func(c *Config) { c.ShowThumbs = ptr(show) } }

// WithValuesRelativeToSeries draws the intersection with series i as text.
// NoSeries turns it off.
func WithValuesRelativeToSeries(i int) Option {
	return func(c *Config) { c.ShowValuesRelativeToSeries = ptr(i) }
}

// WithSnapToPlot snaps the cursor to its intersection with series i.
// SnapAny picks the nearest series, SnapNone turns snapping off.
func WithSnapToPlot(i int) Option { return func(c *Config) { c.SnapToPlot = ptr(i) } }
