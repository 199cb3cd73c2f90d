package chart

import (
	"image/color"
	"log/slog"
)

// Option configures a Chart during creation.
type Option func(*options)

type options struct {
	padding    [4]float64 // left, top, right, bottom
	page       [2]float64
	xRanges    map[int][2]float64
	yRanges    map[int][2]float64
	background color.Color
	foreground color.Color
	palette    []color.Color
	ticks      int
	logger     *slog.Logger
}

func defaultOptions() options {
	return options{
		padding:    [4]float64{40, 10, 10, 30},
		xRanges:    make(map[int][2]float64),
		yRanges:    make(map[int][2]float64),
		background: color.White,
		foreground: color.Gray{Y: 0x40},
		palette: []color.Color{
			color.RGBA{R: 0xed, G: 0xc2, B: 0x40, A: 0xff},
			color.RGBA{R: 0xaf, G: 0xd8, B: 0xf8, A: 0xff},
			color.RGBA{R: 0xcb, G: 0x4b, B: 0x4b, A: 0xff},
			color.RGBA{R: 0x4d, G: 0xa7, B: 0x4d, A: 0xff},
			color.RGBA{R: 0x94, G: 0x40, B: 0xed, A: 0xff},
		},
		ticks:  5,
		logger: slog.New(slog.DiscardHandler),
	}
}

// WithPadding sets the space between the canvas edge and the plot box.
func WithPadding(left, top, right, bottom float64) Option {
	return func(o *options) {
		o.padding = [4]float64{left, top, right, bottom}
	}
}

// WithPageOffset sets the absolute position of the canvas, used to convert
// pointer events to canvas coordinates.
func WithPageOffset(x, y float64) Option {
	return func(o *options) {
		o.page = [2]float64{x, y}
	}
}

// WithXRange fixes the range of x axis n (1-based).
func WithXRange(n int, lo, hi float64) Option {
	return func(o *options) {
		o.xRanges[n] = [2]float64{lo, hi}
	}
}

// WithYRange fixes the range of y axis n (1-based).
func WithYRange(n int, lo, hi float64) Option {
	return func(o *options) {
		o.yRanges[n] = [2]float64{lo, hi}
	}
}

// WithBackground sets the canvas background color.
func WithBackground(c color.Color) Option {
	return func(o *options) {
		o.background = c
	}
}

// WithPalette sets the colors series are drawn with, in order.
func WithPalette(colors ...color.Color) Option {
	return func(o *options) {
		if len(colors) > 0 {
			o.palette = colors
		}
	}
}

// WithTicks sets the number of tick intervals per axis.
func WithTicks(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.ticks = n
		}
	}
}

// WithLogger sets the chart's logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
