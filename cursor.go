package cursors

import (
	"fmt"
	"math"

	"github.com/google/uuid"
)

// Cursor is one crosshair on a chart.
//
// Fields mirror Config with defaults applied. Change them through Plot.Set
// so the position is re-resolved and a redraw is requested.
type Cursor struct {
	ID   uuid.UUID
	Name string
	Mode Mode

	// Position is the abstract location; X and Y are its resolution in
	// plot-box pixels, recomputed on every redraw and always inside the box.
	// They are NaN until the position first resolves.
	Position *Position
	X, Y     float64

	Color                     string
	LineWidth                 float64
	Dashes                    int
	Symbol                    string
	FontSize                  float64
	FontFamily                string
	IntersectionColor         string
	IntersectionLabelPosition LabelPosition

	Movable     bool
	MouseButton MouseButton
	Show        bool

	ShowIntersections          Selection
	ShowLabel                  bool
	ShowThumbs                 bool
	ShowValuesRelativeToSeries int
	SnapToPlot                 int

	State State

	// Intersections is the result of the last redraw, nil when the cursor
	// was off the plot.
	Intersections *Intersections
}

// defaultPosition is where a cursor without a position starts.
func defaultPosition() *Position { return Relative(10, 20) }

func newCursor(ordinal int, cfg Config) *Cursor {
	c := &Cursor{
		ID:   uuid.New(),
		Name: fmt.Sprintf("unnamed %d", ordinal),
		X:    math.NaN(),
		Y:    math.NaN(),
	}
	c.apply(MergeConfig(DefaultConfig(), cfg))
	if c.Position == nil {
		c.Position = defaultPosition()
	}
	return c
}

// apply copies every supplied field of cfg onto the cursor.
func (c *Cursor) apply(cfg Config) {
	setField(&c.Name, cfg.Name)
	setField(&c.Mode, cfg.Mode)
	if cfg.Position != nil {
		c.Position = cfg.Position.Clone()
	}
	setField(&c.Color, cfg.Color)
	setField(&c.LineWidth, cfg.LineWidth)
	setField(&c.Dashes, cfg.Dashes)
	setField(&c.Symbol, cfg.Symbol)
	setField(&c.FontSize, cfg.FontSize)
	setField(&c.FontFamily, cfg.FontFamily)
	setField(&c.IntersectionColor, cfg.IntersectionColor)
	setField(&c.IntersectionLabelPosition, cfg.IntersectionLabelPosition)
	setField(&c.Movable, cfg.Movable)
	setField(&c.MouseButton, cfg.MouseButton)
	setField(&c.Show, cfg.Show)
	setField(&c.ShowIntersections, cfg.ShowIntersections)
	setField(&c.ShowLabel, cfg.ShowLabel)
	setField(&c.ShowThumbs, cfg.ShowThumbs)
	setField(&c.ShowValuesRelativeToSeries, cfg.ShowValuesRelativeToSeries)
	setField(&c.SnapToPlot, cfg.SnapToPlot)
}

func setField[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// Config returns the cursor's configuration with every field populated.
func (c *Cursor) Config() Config {
	return NewConfig(
		WithName(c.Name),
		WithMode(c.Mode),
		WithPosition(c.Position),
		WithColor(c.Color),
		WithLineWidth(c.LineWidth),
		WithDashes(c.Dashes),
		WithSymbol(c.Symbol),
		WithFontSize(c.FontSize),
		WithFontFamily(c.FontFamily),
		WithIntersectionColor(c.IntersectionColor),
		WithIntersectionLabelPosition(c.IntersectionLabelPosition),
		WithMovable(c.Movable),
		WithMouseButton(c.MouseButton),
		WithShow(c.Show),
		WithShowIntersections(c.ShowIntersections),
		WithShowLabel(c.ShowLabel),
		WithShowThumbs(c.ShowThumbs),
		WithValuesRelativeToSeries(c.ShowValuesRelativeToSeries),
		WithSnapToPlot(c.SnapToPlot),
	)
}

// HasVerticalLine reports whether the cursor draws a vertical line.
func (c *Cursor) HasVerticalLine() bool { return c.Mode.HasX() }

// HasHorizontalLine reports whether the cursor draws a horizontal line.
func (c *Cursor) HasHorizontalLine() bool { return c.Mode.HasY() }

// Selected reports whether the cursor is being dragged.
func (c *Cursor) Selected() bool { return c.State.Kind == Dragging }

// Highlighted reports whether the pointer hovers the cursor.
func (c *Cursor) Highlighted() bool { return c.State.Kind == Highlighted }

// resolved reports whether X and Y hold a pixel position.
func (c *Cursor) resolved() bool {
	return !math.IsNaN(c.X) && !math.IsNaN(c.Y)
}

// String returns a short description for logs.
func (c *Cursor) String() string {
	return fmt.Sprintf("%s(%s @ %.1f,%.1f %s)", c.Name, c.Mode, c.X, c.Y, c.State.Kind)
}
