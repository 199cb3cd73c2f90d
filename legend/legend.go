package legend

import (
	"fmt"
	"image/color"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/cursors"
	"github.com/gogpu/cursors/host"
)

// Value is the value of one series under a cursor.
type Value struct {
	Series string
	Y      float64
}

// Row is one cursor in the legend.
type Row struct {
	Cursor  string
	X, Y    float64
	Values  []Value
	OffPlot bool
}

// Legend is a panel listing cursor positions and series values.
type Legend struct {
	chart   host.Chart
	printer *message.Printer
	cancel  func()
	rows    []Row

	fontSize   float64
	padding    float64
	background color.Color
	foreground color.Color
}

// Option configures a Legend.
type Option func(*Legend)

// WithLanguage sets the locale used to format values.
func WithLanguage(tag language.Tag) Option {
	return func(l *Legend) { l.printer = message.NewPrinter(tag) }
}

// WithFontSize sets the text size.
func WithFontSize(size float64) Option {
	return func(l *Legend) {
		if size > 0 {
			l.fontSize = size
		}
	}
}

// WithColors sets the panel background and text colors.
func WithColors(background, foreground color.Color) Option {
	return func(l *Legend) { l.background, l.foreground = background, foreground }
}

// Attach creates a legend fed by p's change notifications. chart supplies
// the series labels.
func Attach(p *cursors.Plot, chart host.Chart, opts ...Option) *Legend {
	l := &Legend{
		chart:      chart,
		printer:    message.NewPrinter(language.English),
		fontSize:   11,
		padding:    6,
		background: color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xe0},
		foreground: colornames.Black,
	}
	for _, opt := range opts {
		opt(l)
	}
	l.cancel = p.Subscribe(l.Update)
	return l
}

// Detach stops listening to the plot. The last rows stay available.
func (l *Legend) Detach() {
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
}

// Update replaces the rows with the given intersections.
func (l *Legend) Update(update []cursors.Intersections) {
	series := l.chart.Series()
	rows := make([]Row, 0, len(update))
	for _, in := range update {
		row := Row{Cursor: in.CursorName, X: in.X, Y: in.Y, OffPlot: in.OffPlot}
		for _, pt := range in.Points {
			label := fmt.Sprintf("series %d", pt.Series)
			if pt.Series < len(series) && series[pt.Series].Label != "" {
				label = series[pt.Series].Label
			}
			row.Values = append(row.Values, Value{Series: label, Y: pt.Y})
		}
		rows = append(rows, row)
	}
	l.rows = rows
}

// Rows returns the current rows.
func (l *Legend) Rows() []Row {
	out := make([]Row, len(l.rows))
	copy(out, l.rows)
	return out
}

// Lines returns the legend text, one line per cursor followed by one
// indented line per series.
func (l *Legend) Lines() []string {
	var lines []string
	for _, r := range l.rows {
		if r.OffPlot {
			lines = append(lines, l.printer.Sprintf("%s: off plot", r.Cursor))
			continue
		}
		lines = append(lines, l.printer.Sprintf("%s: x=%.2f y=%.2f", r.Cursor, r.X, r.Y))
		for _, v := range r.Values {
			lines = append(lines, l.printer.Sprintf("  %s: %.2f", v.Series, v.Y))
		}
	}
	return lines
}

var legendFont = sync.OnceValues(func() (*text.FontSource, error) {
	return text.NewFontSource(gomono.TTF)
})

// Draw paints the panel with its top-left corner at (x, y). An empty
// legend draws nothing.
func (l *Legend) Draw(dc *gg.Context, x, y float64) error {
	lines := l.Lines()
	if len(lines) == 0 {
		return nil
	}
	src, err := legendFont()
	if err != nil {
		return fmt.Errorf("legend: loading font: %w", err)
	}
	dc.SetFont(src.Face(l.fontSize))

	var width, lineHeight float64
	for _, s := range lines {
		w, h := dc.MeasureString(s)
		width = max(width, w)
		lineHeight = max(lineHeight, h)
	}

	dc.SetColor(l.background)
	dc.DrawRectangle(x, y, width+2*l.padding, lineHeight*float64(len(lines))+2*l.padding)
	if err := dc.Fill(); err != nil {
		return err
	}
	dc.SetColor(l.foreground)
	for i, s := range lines {
		dc.DrawStringAnchored(s, x+l.padding, y+l.padding+lineHeight*float64(i), 0, 1)
	}
	return nil
}
