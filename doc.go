// Package cursors draws interactive, draggable crosshair cursors over a 2D
// chart.
//
// # Overview
//
// A [Plot] is the cursor context of one chart. It owns the cursors, resolves
// their positions to plot-box pixels, hit-tests pointer events, runs the
// drag state machine, intersects cursors with the chart's series and draws
// everything onto a [Canvas] on each overlay redraw. The chart itself is
// reached only through the interfaces of package host.
//
// # Quick Start
//
//	c := chart.New(800, 600)
//	c.AddSeries(host.Series{Label: "sin", Points: pts})
//
//	p := cursors.Install(c, cursors.WithCursors(
//	    cursors.NewConfig(
//	        cursors.WithName("peak"),
//	        cursors.WithMode(cursors.ModeX),
//	        cursors.WithPosition(cursors.Relative(200, 300)),
//	        cursors.WithShowIntersections(cursors.ShowAll()),
//	    ),
//	))
//	c.Setup()
//
//	dc := gg.NewContext(800, 600)
//	c.Draw(dc)
//
// # Positions
//
// A cursor position is either canvas-relative pixels or data coordinates on
// numbered axes (1 for x/y, 2 for x2/y2, ...). Relative pixels win. The
// resolved pixels are always clamped to the plot box.
//
// # Interaction
//
// Each cursor is Idle, Highlighted while hovered, or Dragging. Pressing on
// the manipulator glyph or one of the lines starts a drag that moves the
// cursor along the axes of the grabbed region; releasing the button or
// leaving the element commits it. At most one cursor is dragged at a time.
// [WithHitPriority] selects how overlapping regions are resolved.
//
// # Change notifications
//
// After every redraw the plot passes the intersections of all visible
// cursors to the functions registered with [Plot.Subscribe].
//
// # Logging
//
// The package logs through [Logger], silent by default. Use [SetLogger] to
// route drag and configuration events to an slog handler.
package cursors
