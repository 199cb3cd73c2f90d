package chart

import (
	"strconv"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

var tickFont = sync.OnceValues(func() (*text.FontSource, error) {
	return text.NewFontSource(goregular.TTF)
})

// Draw paints the background, axes and series, then runs the overlay
// hooks, and clears the redraw flag.
func (c *Chart) Draw(dc *gg.Context) error {
	c.redraw = false

	dc.SetColor(c.opts.background)
	dc.DrawRectangle(0, 0, float64(c.width), float64(c.height))
	if err := dc.Fill(); err != nil {
		return err
	}
	if err := c.drawAxes(dc); err != nil {
		return err
	}
	if err := c.drawSeries(dc); err != nil {
		return err
	}
	c.DrawOverlay(dc)
	return nil
}

// DrawOverlay runs only the overlay hooks.
func (c *Chart) DrawOverlay(dc *gg.Context) {
	for _, fn := range c.drawOverlay {
		fn(dc)
	}
}

func (c *Chart) drawAxes(dc *gg.Context) error {
	off := c.PlotOffset()
	w, h := c.PlotWidth(), c.PlotHeight()

	dc.SetColor(c.opts.foreground)
	dc.SetLineWidth(1)
	dc.DrawRectangle(off.X+0.5, off.Y+0.5, w, h)
	if err := dc.Stroke(); err != nil {
		return err
	}

	src, err := tickFont()
	if err != nil {
		c.opts.logger.Warn("chart: tick font unavailable", "err", err)
		return nil
	}
	dc.SetFont(src.Face(9))

	xa, ya := c.xaxes[0], c.yaxes[0]
	for _, v := range xa.ticks(c.opts.ticks) {
		x := off.X + xa.P2C(v)
		dc.MoveTo(x, off.Y+h)
		dc.LineTo(x, off.Y+h+4)
		dc.DrawStringAnchored(formatTick(v), x, off.Y+h+6, 0.5, 1)
	}
	for _, v := range ya.ticks(c.opts.ticks) {
		y := off.Y + ya.P2C(v)
		dc.MoveTo(off.X-4, y)
		dc.LineTo(off.X, y)
		dc.DrawStringAnchored(formatTick(v), off.X-6, y, 1, 0.5)
	}
	return dc.Stroke()
}

func formatTick(v float64) string {
	return strconv.FormatFloat(v, 'g', 4, 64)
}

func (c *Chart) drawSeries(dc *gg.Context) error {
	off := c.PlotOffset()
	dc.Push()
	defer dc.Pop()
	dc.Translate(off.X, off.Y)
	dc.SetLineWidth(2)

	for i, s := range c.series {
		xa, ya := c.xaxes[axisNumber(s.XAxis)-1], c.yaxes[axisNumber(s.YAxis)-1]
		if len(s.Points) < 2 {
			continue
		}
		dc.SetColor(c.opts.palette[i%len(c.opts.palette)])
		for j, p := range s.Points {
			x, y := xa.P2C(p.X), ya.P2C(p.Y)
			if j == 0 {
				dc.MoveTo(x, y)
			} else {
				dc.LineTo(x, y)
			}
		}
		if err := dc.Stroke(); err != nil {
			return err
		}
	}
	return nil
}
