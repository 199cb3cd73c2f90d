package cursors

import "golang.org/x/text/language"

// PlotOption configures a Plot during creation.
// Use functional options to customize Plot behavior.
//
// Example:
//
//	// Default behavior
//	p := cursors.New(chart)
//
//	// Initial cursors and a wider grab margin
//	p := cursors.New(chart,
//	    cursors.WithCursors(cursors.NewConfig(cursors.WithName("a"))),
//	    cursors.WithGrabMargin(12),
//	)
type PlotOption func(*plotOptions)

// plotOptions holds optional configuration for Plot creation.
type plotOptions struct {
	cursors      []Config
	grabMargin   float64
	symbolSize   float64
	labelPadding float64
	markerSize   float64
	priority     HitPriority
	lang         language.Tag
	thumbKey     string
	thumbRadius  float64
}

// Geometry defaults, in pixels.
const (
	DefaultSymbolSize   = 8.0
	DefaultGrabMargin   = 8.0
	DefaultLabelPadding = 10.0
	DefaultMarkerSize   = 8.0
	DefaultThumbRadius  = 6.0
)

// defaultPlotOptions returns the default plot options.
func defaultPlotOptions() plotOptions {
	return plotOptions{
		grabMargin:   DefaultGrabMargin,
		symbolSize:   DefaultSymbolSize,
		labelPadding: DefaultLabelPadding,
		markerSize:   DefaultMarkerSize,
		priority:     PriorityLastMatch,
		lang:         language.English,
		thumbRadius:  DefaultThumbRadius,
	}
}

// WithCursors sets the cursors created when the plot processes its options.
func WithCursors(cfgs ...Config) PlotOption {
	return func(o *plotOptions) {
		o.cursors = append(o.cursors, cfgs...)
	}
}

// WithGrabMargin sets how far from a line, in pixels, the pointer may be
// and still grab it. Non-positive values are ignored.
func WithGrabMargin(px float64) PlotOption {
	return func(o *plotOptions) {
		if px > 0 {
			o.grabMargin = px
		}
	}
}

// WithSymbolSize sets the manipulator glyph size in pixels.
// Non-positive values are ignored.
func WithSymbolSize(px float64) PlotOption {
	return func(o *plotOptions) {
		if px > 0 {
			o.symbolSize = px
		}
	}
}

// WithLabelPadding sets the gap between a cursor and its label.
func WithLabelPadding(px float64) PlotOption {
	return func(o *plotOptions) {
		if px >= 0 {
			o.labelPadding = px
		}
	}
}

// WithHitPriority selects how overlapping hit regions are resolved.
func WithHitPriority(p HitPriority) PlotOption {
	return func(o *plotOptions) {
		o.priority = p
	}
}

// WithLanguage sets the locale used to format values.
func WithLanguage(tag language.Tag) PlotOption {
	return func(o *plotOptions) {
		o.lang = tag
	}
}

// WithThumbs attaches the plot to the shared thumb layer identified by key.
// Cursors opt in to handles with ShowThumbs. Charts in the same container
// should use the same key.
func WithThumbs(key string) PlotOption {
	return func(o *plotOptions) {
		o.thumbKey = key
	}
}

// WithThumbRadius sets the radius of thumb handles.
func WithThumbRadius(px float64) PlotOption {
	return func(o *plotOptions) {
		if px > 0 {
			o.thumbRadius = px
		}
	}
}
