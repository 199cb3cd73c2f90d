// Command cursordemo draws a chart with interactive cursors, replays a
// pointer drag on it and saves the frames as PNG files.
//
// Usage:
//
//	cursordemo [-config cursors.yaml] [-from 420,30] [-to 300,200] [-steps 4] [-output frame]
//
// Without -config the demo uses three cursors on a sin/cos chart.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/gogpu/gg"

	"github.com/gogpu/cursors"
	"github.com/gogpu/cursors/chart"
	"github.com/gogpu/cursors/host"
	"github.com/gogpu/cursors/legend"
)

func main() {
	var (
		width   = flag.Int("width", 800, "image width")
		height  = flag.Int("height", 600, "image height")
		config  = flag.String("config", "", "YAML or TOML cursor config")
		from    = flag.String("from", "440,30", "drag start, canvas pixels")
		to      = flag.String("to", "300,200", "drag end, canvas pixels")
		steps   = flag.Int("steps", 4, "pointer moves between start and end")
		output  = flag.String("output", "cursors", "output file prefix")
		verbose = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	cursors.SetLogger(logger)

	if err := run(logger, *width, *height, *config, *from, *to, *steps, *output); err != nil {
		logger.Error("cursordemo failed", "err", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger, width, height int, config, from, to string, steps int, output string) error {
	opts, err := plotOptions(config)
	if err != nil {
		return err
	}
	start, err := parsePoint(from)
	if err != nil {
		return fmt.Errorf("-from: %w", err)
	}
	end, err := parsePoint(to)
	if err != nil {
		return fmt.Errorf("-to: %w", err)
	}

	c := chart.New(width, height, chart.WithYRange(1, -1.2, 1.2), chart.WithLogger(logger))
	c.SetSeries(demoSeries())
	p := cursors.Install(c, opts...)
	lg := legend.Attach(p, c)
	c.OnDrawOverlay(func(dc *gg.Context) {
		if err := lg.Draw(dc, float64(width)-220, 20); err != nil {
			logger.Warn("legend draw failed", "err", err)
		}
	})
	c.Setup()
	defer c.Shutdown()

	frame := 0
	save := func() error {
		dc := gg.NewContext(width, height)
		defer dc.Close()
		if err := c.Draw(dc); err != nil {
			return err
		}
		name := fmt.Sprintf("%s-%02d.png", output, frame)
		frame++
		if err := dc.SavePNG(name); err != nil {
			return fmt.Errorf("saving %s: %w", name, err)
		}
		logger.Info("frame saved", "file", name, "lines", strings.Join(lg.Lines(), "; "))
		return nil
	}

	if err := save(); err != nil {
		return err
	}
	for _, ev := range gesture(c, start, end, steps) {
		c.Dispatch(ev)
		if c.RedrawPending() {
			if err := save(); err != nil {
				return err
			}
		}
	}
	return nil
}

func plotOptions(path string) ([]cursors.PlotOption, error) {
	if path == "" {
		return []cursors.PlotOption{cursors.WithCursors(defaultCursors()...)}, nil
	}
	fc, err := cursors.LoadConfigFile(path)
	if err != nil {
		return nil, err
	}
	return fc.PlotOptions(), nil
}

func defaultCursors() []cursors.Config {
	return []cursors.Config{
		cursors.NewConfig(
			cursors.WithName("Red cursor"),
			cursors.WithMode(cursors.ModeX),
			cursors.WithColor("#e00000"),
			cursors.WithShowLabel(true),
			cursors.WithSymbol("triangle"),
			cursors.WithPosition(cursors.Relative(200, 300)),
		),
		cursors.NewConfig(
			cursors.WithName("Blue cursor"),
			cursors.WithColor("#0000e0"),
			cursors.WithShowIntersections(cursors.ShowAll()),
			cursors.WithSnapToPlot(1),
			cursors.WithSymbol("diamond"),
			cursors.WithPosition(cursors.Relative(400, 20)),
		),
		cursors.NewConfig(
			cursors.WithName("Green cursor"),
			cursors.WithMode(cursors.ModeY),
			cursors.WithColor("#008000"),
			cursors.WithShowIntersections(cursors.ShowAll()),
			cursors.WithPosition(cursors.Relative(100, 200)),
		),
	}
}

func demoSeries() []host.Series {
	var sin, cos []host.Point
	for i := 0; i < 140; i++ {
		x := float64(i) / 10
		sin = append(sin, host.Point{X: x, Y: math.Sin(x)})
		cos = append(cos, host.Point{X: x, Y: math.Cos(x)})
	}
	return []host.Series{
		{Label: "sin(x)", Points: sin},
		{Label: "cos(x)", Points: cos},
	}
}

// gesture returns a press at start, steps moves and a release at end, in
// page coordinates.
func gesture(c *chart.Chart, start, end host.Point, steps int) []host.PointerEvent {
	off := c.Offset()
	po := c.PlotOffset()
	page := func(pt host.Point) (float64, float64) {
		return pt.X - po.X + off.X, pt.Y - po.Y + off.Y
	}

	x0, y0 := page(start)
	x1, y1 := page(end)
	evs := []host.PointerEvent{{Kind: host.PointerDown, PageX: x0, PageY: y0}}
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		evs = append(evs, host.PointerEvent{Kind: host.PointerMove, PageX: x0 + (x1-x0)*t, PageY: y0 + (y1-y0)*t})
	}
	return append(evs, host.PointerEvent{Kind: host.PointerUp, PageX: x1, PageY: y1})
}

func parsePoint(s string) (host.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return host.Point{}, fmt.Errorf("want x,y, got %q", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return host.Point{}, err
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return host.Point{}, err
	}
	return host.Point{X: x, Y: y}, nil
}
