// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package cursorcanvas renders a chart and its cursor overlay into a
// GPU-backed canvas.
//
// A Surface pairs a chart.Chart with a ggcanvas.Canvas of the same size.
// Frame redraws the chart into the canvas only when the chart asked for a
// redraw, so idle frames cost nothing but the texture blit.
//
// # Usage
//
//	c := chart.New(800, 600)
//	p := cursors.Install(c, cursors.WithCursors(cfgs...))
//	c.Setup()
//
//	s, err := cursorcanvas.New(app.GPUContextProvider(), c)
//	if err != nil {
//	    return err
//	}
//	defer s.Close()
//
//	app.OnDraw(func(dc *gogpu.Context) {
//	    _ = s.RenderTo(dc.AsTextureDrawer())
//	})
//
// Pointer events from the window go to the chart with chart.Dispatch.
package cursorcanvas
