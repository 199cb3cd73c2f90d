// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package cursorcanvas

import (
	"errors"
	"fmt"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/integration/ggcanvas"
	"github.com/gogpu/gpucontext"

	"github.com/gogpu/cursors/chart"
)

// ErrNilChart is returned when New is called without a chart.
var ErrNilChart = errors.New("cursorcanvas: nil chart")

// Surface draws a chart into a GPU canvas.
//
// Surface is NOT safe for concurrent use.
type Surface struct {
	canvas *ggcanvas.Canvas
	chart  *chart.Chart
	frames int
}

// New creates a surface sized to the chart's canvas.
func New(provider gpucontext.DeviceProvider, c *chart.Chart) (*Surface, error) {
	if c == nil {
		return nil, ErrNilChart
	}
	canvas, err := ggcanvas.New(provider, c.Width(), c.Height())
	if err != nil {
		return nil, fmt.Errorf("cursorcanvas: %w", err)
	}
	return &Surface{canvas: canvas, chart: c}, nil
}

// Canvas returns the underlying canvas.
func (s *Surface) Canvas() *ggcanvas.Canvas { return s.canvas }

// Frames returns how many times the chart was drawn.
func (s *Surface) Frames() int { return s.frames }

// Frame redraws the chart if this is the first frame or the chart requested
// a redraw. It reports whether anything was drawn.
func (s *Surface) Frame() (bool, error) {
	if s.frames > 0 && !s.chart.RedrawPending() {
		return false, nil
	}
	var drawErr error
	err := s.canvas.Draw(func(dc *gg.Context) {
		drawErr = s.chart.Draw(dc)
	})
	if err != nil {
		return false, err
	}
	if drawErr != nil {
		return false, fmt.Errorf("cursorcanvas: draw: %w", drawErr)
	}
	s.frames++
	return true, nil
}

// RenderTo runs Frame and draws the canvas texture onto dc.
func (s *Surface) RenderTo(dc gpucontext.TextureDrawer) error {
	if _, err := s.Frame(); err != nil {
		return err
	}
	return s.canvas.RenderTo(dc)
}

// Resize changes the size of both the canvas and the chart.
func (s *Surface) Resize(width, height int) error {
	if err := s.canvas.Resize(width, height); err != nil {
		return err
	}
	s.chart.Resize(width, height)
	return nil
}

// Close releases the canvas. The chart is left alone. Close is idempotent.
func (s *Surface) Close() error {
	return s.canvas.Close()
}
